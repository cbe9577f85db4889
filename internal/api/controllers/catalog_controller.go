package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

// CatalogController exposes the seeded backing catalog directly, mostly for
// inspection and client autocomplete.
type CatalogController struct {
	airportRepo repositories.AirportRepository
	flightRepo  repositories.FlightRepository
}

func NewCatalogController(
	airportRepo repositories.AirportRepository,
	flightRepo repositories.FlightRepository,
) *CatalogController {
	return &CatalogController{
		airportRepo: airportRepo,
		flightRepo:  flightRepo,
	}
}

// ListAirports godoc
// @Summary List known airports
// @Tags Catalog
// @Produce json
// @Success 200 {array} db_models.Airport
// @Router /catalog/airports [get]
func (ctl *CatalogController) ListAirports(c *gin.Context) {
	airports, err := ctl.airportRepo.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, utils.ErrDatabaseError)
		return
	}

	utils.RespondSuccess(c, airports, "Airports fetched successfully")
}

// ListStoredFlights godoc
// @Summary List stored catalog flights for a route
// @Description Return seeded flight inventory between two airport codes, cheapest first
// @Tags Catalog
// @Produce json
// @Param origin query string true "Origin IATA code"
// @Param destination query string true "Destination IATA code"
// @Success 200 {array} db_models.Flight
// @Failure 400 {object} utils.APIResponse
// @Router /catalog/flights [get]
func (ctl *CatalogController) ListStoredFlights(c *gin.Context) {
	origin := c.Query("origin")
	destination := c.Query("destination")
	if origin == "" || destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "origin and destination are required")
		return
	}

	limit, err := parseOptionalInt(c.Query("limit"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit")
		return
	}

	flights, err := ctl.flightRepo.ListByRoute(c.Request.Context(), origin, destination, limit)
	if err != nil {
		utils.HandleServiceError(c, utils.ErrDatabaseError)
		return
	}

	utils.RespondSuccess(c, flights, "Flights fetched successfully")
}
