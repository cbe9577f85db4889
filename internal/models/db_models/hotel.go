package db_models

import (
	"github.com/lib/pq"
	"time"
)

// Hotel is one row of the backing hotel catalog. Category is one of the
// fixed tiers: luxury, upscale, midscale, economy.
type Hotel struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"index"`
	PricePerNight float64
	Rating        float64
	Location      string         `gorm:"index"`
	Amenities     pq.StringArray `gorm:"type:text[]"`
	Category      string         `gorm:"index"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
}
