package services

import (
	"context"
	"errors"
	"testing"
	"voyago/internal/catalog"
	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItineraryServiceForTest(planner utils.PlannerClientInterface) ItineraryServiceInterface {
	hotels := &fakeHotelRepo{rows: []db_models.Hotel{
		catalogHotel("Hilton Paris", "Paris", "midscale", 120, 4.2),
		catalogHotel("Novotel Paris", "Paris", "midscale", 90, 4.0),
		catalogHotel("Sofitel Paris", "Paris", "upscale", 160, 4.5),
	}}

	cat := catalog.NewActivityCatalog()
	rng := utils.NewLockedRand(42)
	candidates := NewCandidateService(testAirports(), hotels, cat, rng)
	scheduler := NewScheduleService(cat, rng)
	return NewItineraryService(candidates, scheduler, NewBudgetService(), cat, planner)
}

func culturalRequest() request_models.ItineraryRequest {
	return request_models.ItineraryRequest{
		Origin:       "New York",
		Destination:  "Paris",
		DurationDays: 3,
		Budget:       2500,
		Mood:         "Cultural",
	}
}

func TestGenerateItineraryComposesFullResponse(t *testing.T) {
	svc := newItineraryServiceForTest(nil)

	resp, err := svc.GenerateItinerary(context.Background(), culturalRequest())
	require.NoError(t, err)

	assert.Equal(t, "3-day cultural trip to Paris from New York", resp.Summary)
	assert.Greater(t, resp.TotalEstimatedCost, 0.0)

	assert.Len(t, resp.Flights.Outbound, 3)
	assert.Len(t, resp.Flights.Return, 3)
	assert.LessOrEqual(t, len(resp.Hotels), 3)
	assert.NotEmpty(t, resp.Hotels)

	require.Len(t, resp.DailyPlan, 3)
	for i, day := range resp.DailyPlan {
		assert.Equal(t, i+1, day.Day)
		assert.Len(t, day.Activities, 3)
	}

	require.Len(t, resp.Recommendations, 4)
	assert.Contains(t, resp.Recommendations[0], "Book flights early")
	assert.Contains(t, resp.Recommendations[0], "return from $")
	assert.Contains(t, resp.Recommendations[1], "for 3 nights")
}

func TestGenerateItineraryOneWayRecommendationOmitsReturn(t *testing.T) {
	svc := newItineraryServiceForTest(nil)

	req := culturalRequest()
	oneWay := false
	req.ReturnFlight = &oneWay

	resp, err := svc.GenerateItinerary(context.Background(), req)
	require.NoError(t, err)

	assert.Empty(t, resp.Flights.Return)
	assert.NotContains(t, resp.Recommendations[0], "return from $")
}

func TestGenerateItineraryValidatesRequest(t *testing.T) {
	svc := newItineraryServiceForTest(nil)

	tests := []struct {
		name   string
		mutate func(*request_models.ItineraryRequest)
	}{
		{"blank origin", func(r *request_models.ItineraryRequest) { r.Origin = "  " }},
		{"blank destination", func(r *request_models.ItineraryRequest) { r.Destination = "" }},
		{"zero days", func(r *request_models.ItineraryRequest) { r.DurationDays = 0 }},
		{"negative budget", func(r *request_models.ItineraryRequest) { r.Budget = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := culturalRequest()
			tt.mutate(&req)
			_, err := svc.GenerateItinerary(context.Background(), req)
			assert.ErrorIs(t, err, utils.ErrInvalidInput)
		})
	}
}

func TestGenerateItineraryUsesValidPlannerProposal(t *testing.T) {
	proposal := `{"daily_activities":[
		{"day":1,"activities":[
			{"activity":"Museum Visit","time":"09:00","duration_hours":2},
			{"activity":"Art Gallery","time":"14:00","duration_hours":2},
			{"activity":"Food Tour","time":"19:00","duration_hours":3}]},
		{"day":2,"activities":[
			{"activity":"Historical Tour","time":"10:00","duration_hours":2},
			{"activity":"Local Market","time":"15:00","duration_hours":1},
			{"activity":"Evening Concert","time":"20:00","duration_hours":2}]},
		{"day":3,"activities":[
			{"activity":"Temple/Church Visit","time":"09:00","duration_hours":1},
			{"activity":"Cultural Workshop","time":"14:00","duration_hours":2},
			{"activity":"Traditional Show","time":"19:00","duration_hours":2}]}]}`

	svc := newItineraryServiceForTest(&fakePlanner{response: proposal})

	resp, err := svc.GenerateItinerary(context.Background(), culturalRequest())
	require.NoError(t, err)

	require.Len(t, resp.DailyPlan, 3)
	assert.Equal(t, "Museum Visit", resp.DailyPlan[0].Activities[0].Activity)
	assert.Equal(t, "Traditional Show", resp.DailyPlan[2].Activities[2].Activity)
}

func TestGenerateItineraryFallsBackOnPlannerFailure(t *testing.T) {
	tests := []struct {
		name    string
		planner *fakePlanner
	}{
		{"planner error", &fakePlanner{err: errors.New("quota exceeded")}},
		{"garbage output", &fakePlanner{response: "here is your trip plan!"}},
		{"wrong day count", &fakePlanner{response: `{"daily_activities":[{"day":1,"activities":[{"activity":"Museum Visit","time":"09:00"}]}]}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newItineraryServiceForTest(tt.planner)

			resp, err := svc.GenerateItinerary(context.Background(), culturalRequest())
			require.NoError(t, err)

			// The rule-based fallback still produces a complete plan.
			require.Len(t, resp.DailyPlan, 3)
			for _, day := range resp.DailyPlan {
				assert.Len(t, day.Activities, 3)
			}
		})
	}
}

func TestGenerateItineraryEmptyHotelCatalogAborts(t *testing.T) {
	cat := catalog.NewActivityCatalog()
	rng := utils.NewLockedRand(42)
	candidates := NewCandidateService(testAirports(), &fakeHotelRepo{}, cat, rng)
	scheduler := NewScheduleService(cat, rng)
	svc := NewItineraryService(candidates, scheduler, NewBudgetService(), cat, nil)

	_, err := svc.GenerateItinerary(context.Background(), culturalRequest())
	assert.ErrorIs(t, err, utils.ErrCatalogUnavailable)
}

func TestGenerateItineraryAdditivity(t *testing.T) {
	svc := newItineraryServiceForTest(nil)

	resp, err := svc.GenerateItinerary(context.Background(), culturalRequest())
	require.NoError(t, err)

	var activityTotal float64
	for _, day := range resp.DailyPlan {
		for _, act := range day.Activities {
			activityTotal += act.CostEstimate
		}
	}

	// Total = flights + hotel*nights + activities. The chosen flight and hotel
	// are not echoed separately, but the total can never be below activities
	// alone nor above budget plus the zero-activity degenerate margin.
	assert.GreaterOrEqual(t, resp.TotalEstimatedCost+0.01, activityTotal)
	assert.LessOrEqual(t, resp.TotalEstimatedCost, 2500.0+0.01)
}
