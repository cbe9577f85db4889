package catalogfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"time"
	"voyago/internal/api/controllers"
	"voyago/internal/catalog"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

var Module = fx.Provide(
	provideActivityCatalog,
	provideRand,
	provideAirportRepo,
	provideHotelRepo,
	provideFlightRepo,
	provideCatalogController)

func provideActivityCatalog() *catalog.ActivityCatalog {
	return catalog.NewActivityCatalog()
}

func provideRand() *utils.LockedRand {
	return utils.NewLockedRand(time.Now().UnixNano())
}

func provideAirportRepo(db *gorm.DB) repositories.AirportRepository {
	return repositories.NewAirportRepository(db)
}

func provideHotelRepo(db *gorm.DB) repositories.HotelRepository {
	return repositories.NewHotelRepository(db)
}

func provideFlightRepo(db *gorm.DB) repositories.FlightRepository {
	return repositories.NewFlightRepository(db)
}

func provideCatalogController(
	airportRepo repositories.AirportRepository,
	flightRepo repositories.FlightRepository,
) *controllers.CatalogController {
	return controllers.NewCatalogController(airportRepo, flightRepo)
}
