package placesfx

import (
	"go.uber.org/fx"
	"os"
	"time"
	"voyago/internal/api/controllers"
	"voyago/internal/catalog"
	"voyago/internal/services"
	mem "voyago/pkg/memcache"
)

var Module = fx.Provide(
	provideResponseCache,
	providePlacesService,
	providePlacesController)

func provideResponseCache() mem.ResponseCacheStore {
	return mem.NewResponseCache(time.Hour)
}

func providePlacesService(
	cache mem.ResponseCacheStore,
	activityCatalog *catalog.ActivityCatalog,
) services.PlacesServiceInterface {
	return services.NewPlacesService(os.Getenv("GEOAPIFY_API_KEY"), cache, activityCatalog)
}

func providePlacesController(
	placesService services.PlacesServiceInterface,
) *controllers.PlacesController {
	return controllers.NewPlacesController(placesService)
}
