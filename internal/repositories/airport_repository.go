package repositories

import (
	"context"
	"errors"
	"gorm.io/gorm"
	"strings"
	"voyago/internal/models/db_models"
)

type AirportRepository interface {
	GetByCode(ctx context.Context, code string) (*db_models.Airport, error)
	GetByCity(ctx context.Context, city string) (*db_models.Airport, error)
	Count(ctx context.Context) (int64, error)
	InsertBatch(ctx context.Context, airports []db_models.Airport) error
	ListAll(ctx context.Context) ([]db_models.Airport, error)
}

type airportRepository struct {
	db *gorm.DB
}

func NewAirportRepository(db *gorm.DB) AirportRepository {
	return &airportRepository{db: db}
}

func (r *airportRepository) GetByCode(ctx context.Context, code string) (*db_models.Airport, error) {
	var airport db_models.Airport
	err := r.db.WithContext(ctx).
		Where("code = ?", strings.ToUpper(code)).
		First(&airport).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &airport, nil
}

func (r *airportRepository) GetByCity(ctx context.Context, city string) (*db_models.Airport, error) {
	var airport db_models.Airport
	err := r.db.WithContext(ctx).
		Where("LOWER(city) = ?", strings.ToLower(city)).
		First(&airport).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &airport, nil
}

func (r *airportRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Airport{}).Count(&count).Error
	return count, err
}

func (r *airportRepository) InsertBatch(ctx context.Context, airports []db_models.Airport) error {
	if len(airports) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(airports, 100).Error
}

func (r *airportRepository) ListAll(ctx context.Context) ([]db_models.Airport, error) {
	var airports []db_models.Airport
	err := r.db.WithContext(ctx).Find(&airports).Error
	return airports, err
}
