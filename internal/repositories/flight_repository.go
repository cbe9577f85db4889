package repositories

import (
	"context"
	"gorm.io/gorm"
	"strings"
	"voyago/internal/models/db_models"
)

type FlightRepository interface {
	// ListByRoute returns seeded catalog flights for a route, cheapest first.
	ListByRoute(ctx context.Context, origin, destination string, limit int) ([]db_models.Flight, error)
	Count(ctx context.Context) (int64, error)
	InsertBatch(ctx context.Context, flights []db_models.Flight) error
}

type flightRepository struct {
	db *gorm.DB
}

func NewFlightRepository(db *gorm.DB) FlightRepository {
	return &flightRepository{db: db}
}

func (r *flightRepository) ListByRoute(ctx context.Context, origin, destination string, limit int) ([]db_models.Flight, error) {
	if limit <= 0 {
		limit = 20
	}

	var flights []db_models.Flight
	err := r.db.WithContext(ctx).
		Where("departure = ? AND arrival = ?", strings.ToUpper(origin), strings.ToUpper(destination)).
		Order("price ASC").
		Limit(limit).
		Find(&flights).Error
	if err != nil {
		return nil, err
	}
	return flights, nil
}

func (r *flightRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Flight{}).Count(&count).Error
	return count, err
}

func (r *flightRepository) InsertBatch(ctx context.Context, flights []db_models.Flight) error {
	if len(flights) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(flights, 100).Error
}
