package db_models

import "time"

// Flight is one row of the seeded flight catalog.
type Flight struct {
	ID                uint `gorm:"primaryKey"`
	Airline           string
	Price             float64
	Duration          string
	Stops             int
	Departure         string `gorm:"index;size:3"`
	Arrival           string `gorm:"index;size:3"`
	DepartureFullname string
	ArrivalFullname   string
	DistanceKM        float64
	CreatedAt         time.Time `gorm:"autoCreateTime"`
}
