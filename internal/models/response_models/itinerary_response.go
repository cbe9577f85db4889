package response_models

type FlightOption struct {
	Airline           string  `json:"airline"`
	Price             float64 `json:"price"`
	Duration          string  `json:"duration"`
	Stops             int     `json:"stops"`
	Departure         string  `json:"departure"`
	Arrival           string  `json:"arrival"`
	DepartureFullname string  `json:"departure_fullname,omitempty"`
	ArrivalFullname   string  `json:"arrival_fullname,omitempty"`
}

type FlightPools struct {
	Outbound []FlightOption `json:"outbound"`
	Return   []FlightOption `json:"return,omitempty"`
}

type HotelOption struct {
	Name          string   `json:"name"`
	PricePerNight float64  `json:"price_per_night"`
	Rating        float64  `json:"rating"`
	Location      string   `json:"location"`
	Amenities     []string `json:"amenities"`
	Category      string   `json:"category,omitempty"`
}

// ActivityEntry cost estimates are mutable: the budget allocator rescales
// them during reconciliation.
type ActivityEntry struct {
	Time          string  `json:"time"`
	Activity      string  `json:"activity"`
	Location      string  `json:"location"`
	CostEstimate  float64 `json:"cost_estimate"`
	DurationHours float64 `json:"duration_hours"`
}

type DayPlan struct {
	Day        int             `json:"day"`
	Activities []ActivityEntry `json:"activities"`
}

type ItineraryResponse struct {
	Summary            string        `json:"summary"`
	TotalEstimatedCost float64       `json:"total_estimated_cost"`
	Flights            FlightPools   `json:"flights"`
	Hotels             []HotelOption `json:"hotels"`
	DailyPlan          []DayPlan     `json:"daily_plan"`
	Recommendations    []string      `json:"recommendations"`
}

type PlaceResult struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Address      string  `json:"address"`
	Distance     float64 `json:"distance"`
	Rating       float64 `json:"rating,omitempty"`
	Website      string  `json:"website,omitempty"`
	OpeningHours string  `json:"opening_hours,omitempty"`
}
