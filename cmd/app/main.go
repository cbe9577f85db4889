package main

import (
	"context"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"log"
	"os"
	"voyago/cmd/fx/catalogfx"
	"voyago/cmd/fx/dbfx"
	"voyago/cmd/fx/itineraryfx"
	"voyago/cmd/fx/placesfx"
	"voyago/internal/api/controllers"
	"voyago/internal/infra"
	"voyago/internal/repositories"
	"voyago/pkg/middleware"
	"voyago/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	app := fx.New(
		dbfx.Module,
		catalogfx.Module,
		itineraryfx.Module,
		placesfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(SeedCatalog),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func SeedCatalog(
	airportRepo repositories.AirportRepository,
	hotelRepo repositories.HotelRepository,
	flightRepo repositories.FlightRepository,
	rng *utils.LockedRand,
) {
	if err := infra.SeedCatalog(context.Background(), airportRepo, hotelRepo, flightRepo, rng); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	catalogController *controllers.CatalogController,
	placesController *controllers.PlacesController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, catalogController, placesController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	catalogController *controllers.CatalogController,
	placesController *controllers.PlacesController) {

	itineraryGroup := r.Group("/itinerary")
	itineraryGroup.POST("/generate", itineraryController.GenerateItinerary)
	itineraryGroup.GET("/flights", itineraryController.SearchFlights)
	itineraryGroup.GET("/hotels", itineraryController.SearchHotels)

	catalogGroup := r.Group("/catalog")
	catalogGroup.GET("/airports", catalogController.ListAirports)
	catalogGroup.GET("/flights", catalogController.ListStoredFlights)

	placesGroup := r.Group("/places")
	placesGroup.GET("/search", placesController.SearchPlaces)
}
