package services

import (
	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

// BudgetServiceInterface reconciles candidate pools and a day plan against the
// trip budget. Flights and the hotel are hard discrete picks resolved first
// under soft ceilings; activities are continuously divisible and absorb all
// remaining pressure. Staged and greedy, not a global optimizer.
type BudgetServiceInterface interface {
	Allocate(pools *response_models.FlightPools, hotels []response_models.HotelOption, plan []response_models.DayPlan, budget float64, wantsReturn bool, days int) response_models.Allocation
}

type budgetService struct{}

func NewBudgetService() BudgetServiceInterface {
	return &budgetService{}
}

func (s *budgetService) Allocate(pools *response_models.FlightPools, hotels []response_models.HotelOption, plan []response_models.DayPlan, budget float64, wantsReturn bool, days int) response_models.Allocation {
	alloc := response_models.Allocation{DayPlans: plan}

	// Stage 1: flight budget ceiling. Round trips reserve half the budget for
	// flights, split evenly per leg; one-way trips reserve 40%.
	maxFlightBudget := budget * 0.4
	outboundCeiling := maxFlightBudget
	if wantsReturn {
		maxFlightBudget = budget * 0.5
		outboundCeiling = maxFlightBudget * 0.5
	}

	// Stage 2: outbound pick.
	if pools != nil {
		alloc.Outbound = pickFlight(pools.Outbound, outboundCeiling, budget*0.3)
		if alloc.Outbound != nil {
			alloc.OutboundCost = alloc.Outbound.Price
		}
	}

	// Stage 3: return pick, same two-tier ceiling.
	if pools != nil && wantsReturn && len(pools.Return) > 0 {
		alloc.Return = pickFlight(pools.Return, maxFlightBudget*0.5, budget*0.3)
		if alloc.Return != nil {
			alloc.ReturnCost = alloc.Return.Price
		}
	}

	// Stage 4: hotel pick against a nightly ceiling from what flights left over.
	remaining := budget - (alloc.OutboundCost + alloc.ReturnCost)
	if days > 0 {
		alloc.Hotel = pickHotel(hotels, remaining*0.4/float64(days), remaining*0.5/float64(days))
		if alloc.Hotel != nil {
			alloc.HotelCost = alloc.Hotel.PricePerNight
		}
	}

	// Stage 5: proportional activity shrink when the plan overshoots what is
	// left after the hotel.
	remainingAfterHotel := remaining - alloc.HotelCost*float64(days)
	activityTotal := sumActivityCosts(alloc.DayPlans)
	if activityTotal > remainingAfterHotel && activityTotal > 0 {
		ratio := remainingAfterHotel / activityTotal
		if ratio < 0 {
			ratio = 0
		}
		scaleActivities(alloc.DayPlans, ratio)
		activityTotal = sumActivityCosts(alloc.DayPlans)
	}

	// Stage 6: final clawback, shrinking activities only. Flights and hotel
	// are never revisited; when activities are already zero the total may
	// legitimately exceed the budget.
	total := alloc.OutboundCost + alloc.ReturnCost + alloc.HotelCost*float64(days) + activityTotal
	if total > budget && activityTotal > 0 {
		excess := total - budget
		reduction := excess
		if reduction > activityTotal {
			reduction = activityTotal
		}
		scaleActivities(alloc.DayPlans, (activityTotal-reduction)/activityTotal)
		activityTotal = sumActivityCosts(alloc.DayPlans)
		total = alloc.OutboundCost + alloc.ReturnCost + alloc.HotelCost*float64(days) + activityTotal
	}

	alloc.ActivityTotal = utils.Round2(activityTotal)
	alloc.TotalCost = utils.Round2(total)
	return alloc
}

// pickFlight filters to the primary ceiling and minimizes price with a
// 10%-per-stop penalty. An empty filter relaxes to the fallback ceiling and
// takes the plain cheapest. Nil when nothing fits either ceiling.
func pickFlight(pool []response_models.FlightOption, ceiling, relaxedCeiling float64) *response_models.FlightOption {
	var best *response_models.FlightOption
	bestScore := 0.0
	for i := range pool {
		f := &pool[i]
		if f.Price > ceiling {
			continue
		}
		score := f.Price * (1 + 0.1*float64(f.Stops))
		if best == nil || score < bestScore {
			best = f
			bestScore = score
		}
	}
	if best != nil {
		return best
	}

	for i := range pool {
		f := &pool[i]
		if f.Price > relaxedCeiling {
			continue
		}
		if best == nil || f.Price < best.Price {
			best = f
		}
	}
	return best
}

// pickHotel takes the highest-rated hotel under the nightly ceiling, then the
// cheapest under the relaxed ceiling, then nil.
func pickHotel(pool []response_models.HotelOption, ceiling, relaxedCeiling float64) *response_models.HotelOption {
	var best *response_models.HotelOption
	for i := range pool {
		h := &pool[i]
		if h.PricePerNight > ceiling {
			continue
		}
		if best == nil || h.Rating > best.Rating {
			best = h
		}
	}
	if best != nil {
		return best
	}

	for i := range pool {
		h := &pool[i]
		if h.PricePerNight > relaxedCeiling {
			continue
		}
		if best == nil || h.PricePerNight < best.PricePerNight {
			best = h
		}
	}
	return best
}

func sumActivityCosts(plan []response_models.DayPlan) float64 {
	var total float64
	for _, day := range plan {
		for _, act := range day.Activities {
			total += act.CostEstimate
		}
	}
	return total
}

func scaleActivities(plan []response_models.DayPlan, ratio float64) {
	for di := range plan {
		for ai := range plan[di].Activities {
			act := &plan[di].Activities[ai]
			act.CostEstimate = utils.Round2(act.CostEstimate * ratio)
		}
	}
}
