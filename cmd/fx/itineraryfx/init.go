package itineraryfx

import (
	"go.uber.org/fx"
	"log"
	"os"
	"voyago/internal/api/controllers"
	"voyago/internal/catalog"
	"voyago/internal/repositories"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

var Module = fx.Provide(
	ProvidePlannerClient,
	ProvideCandidateService,
	ProvideScheduleService,
	ProvideBudgetService,
	ProvideItineraryService,
	ProvideItineraryController)

// ProvidePlannerClient creates the optional AI planner from environment
// configuration. Without an API key the itinerary pipeline runs fully
// rule-based, so a missing key is not fatal.
func ProvidePlannerClient() utils.PlannerClientInterface {
	provider := os.Getenv("PLANNER_PROVIDER")
	if provider == "" {
		provider = "gemini"
	}

	var apiKey, model string
	switch provider {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = os.Getenv("OPENAI_MODEL")
	default:
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = os.Getenv("GEMINI_MODEL")
	}

	if apiKey == "" {
		log.Printf("No %s API key configured, AI planner disabled", provider)
		return nil
	}

	client, err := utils.NewPlannerClient(provider, apiKey, model)
	if err != nil {
		log.Printf("Planner client init failed, AI planner disabled: %v", err)
		return nil
	}

	log.Printf("Initialized %s planner client", provider)
	return client
}

func ProvideCandidateService(
	airportRepo repositories.AirportRepository,
	hotelRepo repositories.HotelRepository,
	activityCatalog *catalog.ActivityCatalog,
	rng *utils.LockedRand,
) services.CandidateServiceInterface {
	return services.NewCandidateService(airportRepo, hotelRepo, activityCatalog, rng)
}

func ProvideScheduleService(
	activityCatalog *catalog.ActivityCatalog,
	rng *utils.LockedRand,
) services.ScheduleServiceInterface {
	return services.NewScheduleService(activityCatalog, rng)
}

func ProvideBudgetService() services.BudgetServiceInterface {
	return services.NewBudgetService()
}

func ProvideItineraryService(
	candidateService services.CandidateServiceInterface,
	scheduleService services.ScheduleServiceInterface,
	budgetService services.BudgetServiceInterface,
	activityCatalog *catalog.ActivityCatalog,
	planner utils.PlannerClientInterface,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(candidateService, scheduleService, budgetService, activityCatalog, planner)
}

func ProvideItineraryController(
	itineraryService services.ItineraryServiceInterface,
	candidateService services.CandidateServiceInterface,
) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService, candidateService)
}
