package response_models

// Allocation is the budget allocator's outcome: the discrete flight and hotel
// picks, the reconciled day plans, and the cost breakdown. Nil picks mean no
// candidate fit any ceiling; their costs are zero.
type Allocation struct {
	Outbound      *FlightOption
	Return        *FlightOption
	Hotel         *HotelOption
	DayPlans      []DayPlan
	OutboundCost  float64
	ReturnCost    float64
	HotelCost     float64
	ActivityTotal float64
	TotalCost     float64
}
