package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"strconv"
	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	candidateService services.CandidateServiceInterface
}

func NewItineraryController(
	itineraryService services.ItineraryServiceInterface,
	candidateService services.CandidateServiceInterface,
) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		candidateService: candidateService,
	}
}

// GenerateItinerary godoc
// @Summary Generate a trip itinerary
// @Description Build a budget-constrained itinerary with flights, a hotel and a day-by-day plan
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.ItineraryRequest true "Trip request"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /itinerary/generate [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	itinerary, err := i.itineraryService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}

// SearchFlights godoc
// @Summary Search flight candidates
// @Description Return the synthesized flight candidate pools for a route and budget
// @Tags Itinerary
// @Produce json
// @Param origin query string true "Origin city or IATA code"
// @Param destination query string true "Destination city or IATA code"
// @Param budget query number false "Trip budget in USD"
// @Param return query bool false "Round trip" default(true)
// @Success 200 {object} response_models.FlightPools
// @Failure 400 {object} utils.APIResponse
// @Router /itinerary/flights [get]
func (i *ItineraryController) SearchFlights(c *gin.Context) {
	origin := c.Query("origin")
	destination := c.Query("destination")
	if origin == "" || destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "origin and destination are required")
		return
	}

	budget, err := parseOptionalFloat(c.Query("budget"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid budget")
		return
	}

	wantsReturn := true
	if raw := c.Query("return"); raw != "" {
		wantsReturn, err = strconv.ParseBool(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid return flag")
			return
		}
	}

	pools, err := i.candidateService.GenerateFlights(c.Request.Context(), origin, destination, budget, wantsReturn)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pools, "Flights fetched successfully")
}

// SearchHotels godoc
// @Summary Search hotel candidates
// @Description Return the hotel candidate pool for a destination, budget and mood
// @Tags Itinerary
// @Produce json
// @Param destination query string true "Destination city"
// @Param budget query number false "Nightly budget in USD"
// @Param mood query string false "Trip mood" default(cultural)
// @Success 200 {array} response_models.HotelOption
// @Failure 400 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /itinerary/hotels [get]
func (i *ItineraryController) SearchHotels(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "destination is required")
		return
	}

	budget, err := parseOptionalFloat(c.Query("budget"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid budget")
		return
	}

	mood := c.DefaultQuery("mood", "cultural")

	hotels, err := i.candidateService.GenerateHotels(c.Request.Context(), destination, budget, mood)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, hotels, "Hotels fetched successfully")
}

func parseOptionalFloat(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}
