package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"strconv"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type PlacesController struct {
	placesService services.PlacesServiceInterface
}

func NewPlacesController(placesService services.PlacesServiceInterface) *PlacesController {
	return &PlacesController{
		placesService: placesService,
	}
}

// SearchPlaces godoc
// @Summary Search places near a coordinate
// @Description Look up points of interest matching the trip mood around a location
// @Tags Places
// @Produce json
// @Param mood query string false "Trip mood" default(cultural)
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param radius query int false "Search radius in meters" default(5000)
// @Param limit query int false "Maximum results" default(20)
// @Success 200 {array} response_models.PlaceResult
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /places/search [get]
func (p *PlacesController) SearchPlaces(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid latitude")
		return
	}

	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid longitude")
		return
	}

	radius, err := parseOptionalInt(c.Query("radius"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid radius")
		return
	}

	limit, err := parseOptionalInt(c.Query("limit"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit")
		return
	}

	mood := c.DefaultQuery("mood", "cultural")

	places, err := p.placesService.SearchPlaces(c.Request.Context(), mood, lat, lon, radius, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Places fetched successfully")
}

func parseOptionalInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
