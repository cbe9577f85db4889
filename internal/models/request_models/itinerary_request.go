package request_models

type ItineraryRequest struct {
	Origin       string  `json:"origin"`
	Destination  string  `json:"destination"`
	DurationDays int     `json:"duration_days"`
	Budget       float64 `json:"budget"`
	Mood         string  `json:"mood"`
	TravelDates  string  `json:"travel_dates,omitempty"`
	ReturnFlight *bool   `json:"return_flight,omitempty"`
}

// WantsReturn defaults to a round trip when return_flight is omitted.
func (r *ItineraryRequest) WantsReturn() bool {
	return r.ReturnFlight == nil || *r.ReturnFlight
}
