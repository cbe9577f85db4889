package repositories

import (
	"context"
	"gorm.io/gorm"
	"voyago/internal/models/db_models"
)

type HotelRepository interface {
	// ListByCategories returns catalog hotels in the given category tiers,
	// optionally capped by nightly price (maxPrice <= 0 means uncapped).
	ListByCategories(ctx context.Context, categories []string, maxPrice float64) ([]db_models.Hotel, error)
	// ListByMinRating returns hotels at or above a rating, optionally price-capped.
	ListByMinRating(ctx context.Context, minRating, maxPrice float64) ([]db_models.Hotel, error)
	Count(ctx context.Context) (int64, error)
	InsertBatch(ctx context.Context, hotels []db_models.Hotel) error
}

type hotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) ListByCategories(ctx context.Context, categories []string, maxPrice float64) ([]db_models.Hotel, error) {
	q := r.db.WithContext(ctx).Where("category IN ?", categories)
	if maxPrice > 0 {
		q = q.Where("price_per_night <= ?", maxPrice)
	}

	var hotels []db_models.Hotel
	if err := q.Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *hotelRepository) ListByMinRating(ctx context.Context, minRating, maxPrice float64) ([]db_models.Hotel, error) {
	q := r.db.WithContext(ctx).Where("rating >= ?", minRating)
	if maxPrice > 0 {
		q = q.Where("price_per_night <= ?", maxPrice)
	}

	var hotels []db_models.Hotel
	if err := q.Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *hotelRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Hotel{}).Count(&count).Error
	return count, err
}

func (r *hotelRepository) InsertBatch(ctx context.Context, hotels []db_models.Hotel) error {
	if len(hotels) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(hotels, 100).Error
}
