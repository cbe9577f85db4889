package db_models

// Airport backs the airport details catalog used to resolve city names to
// primary airport codes and codes to full names.
type Airport struct {
	Code      string `gorm:"primaryKey;size:3"`
	Name      string
	City      string
	Country   string
	Latitude  float64
	Longitude float64
}
