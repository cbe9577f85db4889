package services

import (
	"context"
	"strings"
	"voyago/internal/models/db_models"
)

// In-memory repository fakes. Tests seed exactly the rows they assert on.

type fakeAirportRepo struct {
	byCode map[string]db_models.Airport
	byCity map[string]db_models.Airport
}

func newFakeAirportRepo(airports ...db_models.Airport) *fakeAirportRepo {
	r := &fakeAirportRepo{
		byCode: make(map[string]db_models.Airport),
		byCity: make(map[string]db_models.Airport),
	}
	for _, a := range airports {
		r.byCode[a.Code] = a
		r.byCity[strings.ToLower(a.City)] = a
	}
	return r
}

func (r *fakeAirportRepo) GetByCode(_ context.Context, code string) (*db_models.Airport, error) {
	if a, ok := r.byCode[strings.ToUpper(code)]; ok {
		return &a, nil
	}
	return nil, nil
}

func (r *fakeAirportRepo) GetByCity(_ context.Context, city string) (*db_models.Airport, error) {
	if a, ok := r.byCity[strings.ToLower(city)]; ok {
		return &a, nil
	}
	return nil, nil
}

func (r *fakeAirportRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byCode)), nil
}

func (r *fakeAirportRepo) InsertBatch(_ context.Context, airports []db_models.Airport) error {
	for _, a := range airports {
		r.byCode[a.Code] = a
		r.byCity[strings.ToLower(a.City)] = a
	}
	return nil
}

func (r *fakeAirportRepo) ListAll(_ context.Context) ([]db_models.Airport, error) {
	out := make([]db_models.Airport, 0, len(r.byCode))
	for _, a := range r.byCode {
		out = append(out, a)
	}
	return out, nil
}

type fakeHotelRepo struct {
	rows []db_models.Hotel
	err  error
}

func (r *fakeHotelRepo) ListByCategories(_ context.Context, categories []string, maxPrice float64) ([]db_models.Hotel, error) {
	if r.err != nil {
		return nil, r.err
	}
	allowed := make(map[string]bool, len(categories))
	for _, c := range categories {
		allowed[c] = true
	}
	var out []db_models.Hotel
	for _, h := range r.rows {
		if !allowed[h.Category] {
			continue
		}
		if maxPrice > 0 && h.PricePerNight > maxPrice {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

func (r *fakeHotelRepo) ListByMinRating(_ context.Context, minRating, maxPrice float64) ([]db_models.Hotel, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []db_models.Hotel
	for _, h := range r.rows {
		if h.Rating < minRating {
			continue
		}
		if maxPrice > 0 && h.PricePerNight > maxPrice {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

func (r *fakeHotelRepo) Count(_ context.Context) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.rows)), nil
}

func (r *fakeHotelRepo) InsertBatch(_ context.Context, hotels []db_models.Hotel) error {
	r.rows = append(r.rows, hotels...)
	return nil
}

type fakePlanner struct {
	response string
	err      error
}

func (p *fakePlanner) ProposeSchedule(_ context.Context, _, _ string, _, _ int, _ []string) (string, error) {
	return p.response, p.err
}
