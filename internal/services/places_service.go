package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
	"voyago/internal/catalog"
	"voyago/internal/models/response_models"
	"voyago/pkg/memcache"
	"voyago/pkg/utils"
)

const geoapifyBaseURL = "https://api.geoapify.com/v2/places"

// PlacesServiceInterface looks up real points of interest near a coordinate,
// filtered by the trip mood's place categories. Responses are cached by a
// deterministic parameter key; the itinerary core never depends on a hit.
type PlacesServiceInterface interface {
	SearchPlaces(ctx context.Context, mood string, lat, lon float64, radius, limit int) ([]response_models.PlaceResult, error)
}

type placesService struct {
	apiKey  string
	baseURL string
	client  *http.Client
	cache   mem.ResponseCacheStore
	catalog *catalog.ActivityCatalog
}

func NewPlacesService(apiKey string, cache mem.ResponseCacheStore, activityCatalog *catalog.ActivityCatalog) PlacesServiceInterface {
	return &placesService{
		apiKey:  apiKey,
		baseURL: geoapifyBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		cache:   cache,
		catalog: activityCatalog,
	}
}

func (s *placesService) SearchPlaces(ctx context.Context, mood string, lat, lon float64, radius, limit int) ([]response_models.PlaceResult, error) {
	if radius <= 0 {
		radius = 5000
	}
	if limit <= 0 {
		limit = 20
	}

	categories := s.catalog.PlaceCategoriesForMood(mood)
	cacheKey := fmt.Sprintf("places_%s_%g_%g_%d_%d", strings.Join(categories, "_"), lat, lon, radius, limit)
	if cached, ok := s.cache.Get(cacheKey); ok {
		if places, ok := cached.([]response_models.PlaceResult); ok {
			return places, nil
		}
	}

	places, err := s.fetchPlaces(ctx, categories, lat, lon, radius, limit)
	if err != nil {
		log.Printf("Place lookup failed: %v", err)
		return nil, utils.ErrPlaceLookupFailed
	}

	s.cache.Set(cacheKey, places)
	return places, nil
}

// geoapifyFeatureCollection is the slice of the places API response we read.
type geoapifyFeatureCollection struct {
	Features []struct {
		Properties struct {
			Name         string   `json:"name"`
			Categories   []string `json:"categories"`
			Formatted    string   `json:"formatted"`
			Distance     float64  `json:"distance"`
			Website      string   `json:"website"`
			OpeningHours string   `json:"opening_hours"`
			Rate         struct {
				Rating float64 `json:"rating"`
			} `json:"rate"`
		} `json:"properties"`
	} `json:"features"`
}

func (s *placesService) fetchPlaces(ctx context.Context, categories []string, lat, lon float64, radius, limit int) ([]response_models.PlaceResult, error) {
	params := url.Values{}
	params.Set("categories", strings.Join(categories, ","))
	params.Set("filter", fmt.Sprintf("circle:%g,%g,%d", lon, lat, radius))
	params.Set("bias", fmt.Sprintf("proximity:%g,%g", lon, lat))
	params.Set("limit", fmt.Sprintf("%d", limit))
	params.Set("apiKey", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places API returned status %d", resp.StatusCode)
	}

	var collection geoapifyFeatureCollection
	if err := json.NewDecoder(resp.Body).Decode(&collection); err != nil {
		return nil, err
	}

	places := make([]response_models.PlaceResult, 0, len(collection.Features))
	for _, feature := range collection.Features {
		props := feature.Properties
		category := ""
		if len(props.Categories) > 0 {
			category = props.Categories[0]
		}
		places = append(places, response_models.PlaceResult{
			Name:         props.Name,
			Category:     category,
			Address:      props.Formatted,
			Distance:     props.Distance,
			Rating:       props.Rate.Rating,
			Website:      props.Website,
			OpeningHours: props.OpeningHours,
		})
	}
	return places, nil
}
