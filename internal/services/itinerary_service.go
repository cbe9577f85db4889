package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"voyago/internal/catalog"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

const (
	defaultActivitiesPerDay = 3
	topOptionCount          = 3
)

// ItineraryServiceInterface is the one operation the engine exposes: turn a
// trip request into a fully costed itinerary.
type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.ItineraryRequest) (*response_models.ItineraryResponse, error)
}

type itineraryService struct {
	candidates CandidateServiceInterface
	scheduler  ScheduleServiceInterface
	budget     BudgetServiceInterface
	catalog    *catalog.ActivityCatalog
	planner    utils.PlannerClientInterface
}

// NewItineraryService wires the pipeline. planner may be nil; the rule-based
// scheduler then handles every request.
func NewItineraryService(
	candidates CandidateServiceInterface,
	scheduler ScheduleServiceInterface,
	budget BudgetServiceInterface,
	activityCatalog *catalog.ActivityCatalog,
	planner utils.PlannerClientInterface,
) ItineraryServiceInterface {
	return &itineraryService{
		candidates: candidates,
		scheduler:  scheduler,
		budget:     budget,
		catalog:    activityCatalog,
		planner:    planner,
	}
}

func (s *itineraryService) GenerateItinerary(ctx context.Context, req request_models.ItineraryRequest) (*response_models.ItineraryResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	wantsReturn := req.WantsReturn()

	pools, err := s.candidates.GenerateFlights(ctx, req.Origin, req.Destination, req.Budget, wantsReturn)
	if err != nil {
		return nil, err
	}

	hotels, err := s.candidates.GenerateHotels(ctx, req.Destination, req.Budget, req.Mood)
	if err != nil {
		return nil, err
	}

	plan := s.buildPlan(ctx, req)

	alloc := s.budget.Allocate(pools, hotels, plan, req.Budget, wantsReturn, req.DurationDays)

	return s.compose(req, pools, hotels, alloc, wantsReturn), nil
}

// buildPlan asks the AI planner for a schedule when one is configured and
// falls back to the rule-based scheduler on any failure or structural
// violation. The fallback path is authoritative; the planner is best-effort.
func (s *itineraryService) buildPlan(ctx context.Context, req request_models.ItineraryRequest) []response_models.DayPlan {
	if s.planner != nil {
		plan, err := s.planFromAI(ctx, req)
		if err == nil {
			return plan
		}
		log.Printf("AI planner rejected, using rule-based schedule: %v", err)
	}

	plan, err := s.scheduler.BuildSchedule(ctx, req.Mood, req.Destination, req.Budget, req.DurationDays, defaultActivitiesPerDay)
	if err != nil {
		// Inputs were validated upstream; an error here means a programming
		// mistake, so fail loudly with an empty plan rather than panic.
		log.Printf("Rule-based schedule failed: %v", err)
		return nil
	}
	return plan
}

func (s *itineraryService) planFromAI(ctx context.Context, req request_models.ItineraryRequest) ([]response_models.DayPlan, error) {
	allowed := s.catalog.AllActivities(req.Mood)
	raw, err := s.planner.ProposeSchedule(ctx, req.Destination, req.Mood, req.DurationDays, defaultActivitiesPerDay, allowed)
	if err != nil {
		return nil, err
	}
	return s.scheduler.BuildFromProposal(raw, req.Mood, req.Destination, req.Budget, req.DurationDays, defaultActivitiesPerDay)
}

func (s *itineraryService) compose(
	req request_models.ItineraryRequest,
	pools *response_models.FlightPools,
	hotels []response_models.HotelOption,
	alloc response_models.Allocation,
	wantsReturn bool,
) *response_models.ItineraryResponse {
	resp := &response_models.ItineraryResponse{
		Summary: fmt.Sprintf("%d-day %s trip to %s from %s",
			req.DurationDays, strings.ToLower(req.Mood), req.Destination, req.Origin),
		TotalEstimatedCost: alloc.TotalCost,
		Flights: response_models.FlightPools{
			Outbound: topFlights(pools.Outbound),
			Return:   topFlights(pools.Return),
		},
		Hotels:          topHotels(hotels),
		DailyPlan:       alloc.DayPlans,
		Recommendations: buildRecommendations(req, alloc, wantsReturn),
	}
	return resp
}

func topFlights(pool []response_models.FlightOption) []response_models.FlightOption {
	if len(pool) > topOptionCount {
		return pool[:topOptionCount]
	}
	return pool
}

func topHotels(pool []response_models.HotelOption) []response_models.HotelOption {
	if len(pool) > topOptionCount {
		return pool[:topOptionCount]
	}
	return pool
}

func buildRecommendations(req request_models.ItineraryRequest, alloc response_models.Allocation, wantsReturn bool) []string {
	flightRec := fmt.Sprintf("Book flights early to get the best price (outbound from $%.2f", alloc.OutboundCost)
	if wantsReturn {
		flightRec += fmt.Sprintf(", return from $%.2f)", alloc.ReturnCost)
	} else {
		flightRec += ")"
	}

	return []string{
		flightRec,
		fmt.Sprintf("Hotel costs will be around $%.2f for %d nights", alloc.HotelCost*float64(req.DurationDays), req.DurationDays),
		"Consider purchasing a city pass for attractions",
		"Make restaurant reservations in advance",
	}
}

func validateRequest(req request_models.ItineraryRequest) error {
	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" {
		return fmt.Errorf("%w: origin and destination are required", utils.ErrInvalidInput)
	}
	if req.DurationDays <= 0 {
		return fmt.Errorf("%w: duration_days must be at least 1", utils.ErrInvalidInput)
	}
	if req.Budget <= 0 {
		return fmt.Errorf("%w: budget must be positive", utils.ErrInvalidInput)
	}
	return nil
}
