package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"voyago/internal/catalog"
	"voyago/internal/models/db_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

const (
	flightsPerLeg    = 5
	minHotelPoolSize = 5
	maxHotelPoolSize = 10
)

// CandidateServiceInterface synthesizes bounded candidate pools of flights and
// hotels for a trip request. Pools are mock inventory priced relative to the
// traveler's budget, not live fares.
type CandidateServiceInterface interface {
	GenerateFlights(ctx context.Context, origin, destination string, budget float64, wantsReturn bool) (*response_models.FlightPools, error)
	GenerateHotels(ctx context.Context, destination string, budget float64, mood string) ([]response_models.HotelOption, error)
}

type candidateService struct {
	airportRepo repositories.AirportRepository
	hotelRepo   repositories.HotelRepository
	catalog     *catalog.ActivityCatalog
	rng         *utils.LockedRand
}

func NewCandidateService(
	airportRepo repositories.AirportRepository,
	hotelRepo repositories.HotelRepository,
	activityCatalog *catalog.ActivityCatalog,
	rng *utils.LockedRand,
) CandidateServiceInterface {
	return &candidateService{
		airportRepo: airportRepo,
		hotelRepo:   hotelRepo,
		catalog:     activityCatalog,
		rng:         rng,
	}
}

// GenerateFlights builds an outbound pool and, for round trips, a return pool.
// Prices draw from [0.4, 0.95] of the per-leg budget; without a budget the
// fallback band is [300, 1200] USD. Each pool is sorted cheapest first.
func (s *candidateService) GenerateFlights(ctx context.Context, origin, destination string, budget float64, wantsReturn bool) (*response_models.FlightPools, error) {
	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return nil, utils.ErrInvalidInput
	}

	legBudget := budget
	if wantsReturn && budget > 0 {
		legBudget = budget / 2
	}

	originCode, originName := s.resolveAirport(ctx, origin)
	destCode, destName := s.resolveAirport(ctx, destination)

	pools := &response_models.FlightPools{
		Outbound: s.synthesizeLeg(originCode, destCode, originName, destName, legBudget),
	}
	if wantsReturn {
		pools.Return = s.synthesizeLeg(destCode, originCode, destName, originName, legBudget)
	}
	return pools, nil
}

func (s *candidateService) synthesizeLeg(depCode, arrCode, depName, arrName string, legBudget float64) []response_models.FlightOption {
	airlines := s.catalog.Airlines()

	options := make([]response_models.FlightOption, 0, flightsPerLeg)
	for i := 0; i < flightsPerLeg; i++ {
		var price float64
		if legBudget > 0 {
			price = s.rng.Uniform(0.4*legBudget, 0.95*legBudget)
		} else {
			price = s.rng.Uniform(300, 1200)
		}
		stops := s.rng.Intn(3)

		options = append(options, response_models.FlightOption{
			Airline:           airlines[s.rng.Intn(len(airlines))],
			Price:             utils.Round2(price),
			Duration:          s.synthesizeDuration(stops),
			Stops:             stops,
			Departure:         depCode,
			Arrival:           arrCode,
			DepartureFullname: depName,
			ArrivalFullname:   arrName,
		})
	}

	sort.Slice(options, func(i, j int) bool { return options[i].Price < options[j].Price })
	return options
}

func (s *candidateService) synthesizeDuration(stops int) string {
	hours := 2 + s.rng.Intn(10)
	hours += stops * (1 + s.rng.Intn(2))
	minutes := s.rng.Intn(12) * 5
	return fmt.Sprintf("%dh %02dm", hours, minutes)
}

// resolveAirport maps a city name or IATA code to a code plus full airport
// name. Unresolvable places keep the raw input as the code, uppercased when it
// already looks like one.
func (s *candidateService) resolveAirport(ctx context.Context, place string) (code, fullname string) {
	place = strings.TrimSpace(place)

	if len(place) == 3 && place == strings.ToUpper(place) {
		if airport, err := s.airportRepo.GetByCode(ctx, place); err == nil && airport != nil {
			return airport.Code, airport.Name
		} else if err != nil {
			log.Printf("Airport lookup by code %q failed: %v", place, err)
		}
	}

	if airport, err := s.airportRepo.GetByCity(ctx, place); err == nil && airport != nil {
		return airport.Code, airport.Name
	} else if err != nil {
		log.Printf("Airport lookup by city %q failed: %v", place, err)
	}

	if len(place) == 3 {
		return strings.ToUpper(place), ""
	}
	return place, ""
}

// GenerateHotels assembles a hotel pool for the destination: catalog rows in
// the mood's category tiers under budget, destination-matched, backfilled with
// synthetic properties below five candidates, ranked by mood and capped at ten.
func (s *candidateService) GenerateHotels(ctx context.Context, destination string, budget float64, mood string) ([]response_models.HotelOption, error) {
	if strings.TrimSpace(destination) == "" {
		return nil, utils.ErrInvalidInput
	}

	total, err := s.hotelRepo.Count(ctx)
	if err != nil {
		log.Printf("Hotel catalog count failed: %v", err)
		return nil, utils.ErrCatalogUnavailable
	}
	if total == 0 {
		return nil, utils.ErrCatalogUnavailable
	}

	categories := s.catalog.HotelCategoriesForMood(mood)
	rows, err := s.hotelRepo.ListByCategories(ctx, categories, budget)
	if err != nil {
		log.Printf("Hotel catalog query failed: %v", err)
		return nil, utils.ErrCatalogUnavailable
	}

	// Adjacent-category backfill: when the mood's category tiers run short,
	// discerning moods admit hotels from any tier above their rating floor
	// before any synthetic generation.
	if len(rows) < minHotelPoolSize {
		if floor := s.catalog.QualityFloor(mood); floor > 0 {
			extra, err := s.hotelRepo.ListByMinRating(ctx, floor, budget)
			if err != nil {
				log.Printf("Hotel catalog rating query failed: %v", err)
				return nil, utils.ErrCatalogUnavailable
			}
			seen := make(map[string]bool, len(rows))
			for _, row := range rows {
				seen[row.Name+"|"+row.Location] = true
			}
			for _, row := range extra {
				if !seen[row.Name+"|"+row.Location] {
					rows = append(rows, row)
				}
			}
		}
	}

	destLower := strings.ToLower(strings.TrimSpace(destination))
	pool := make([]response_models.HotelOption, 0, len(rows))
	for _, row := range rows {
		if !strings.Contains(strings.ToLower(row.Location), destLower) &&
			!strings.Contains(strings.ToLower(row.Name), destLower) {
			continue
		}
		pool = append(pool, hotelOptionFromRow(row))
	}

	for len(pool) < minHotelPoolSize {
		pool = append(pool, s.synthesizeHotel(destination, budget, len(pool)))
	}

	// Soft quality floor: drop low-rated options for discerning moods, but
	// never empty the pool doing it.
	if floor := s.catalog.QualityFloor(mood); floor > 0 {
		floored := pool[:0:0]
		for _, h := range pool {
			if h.Rating >= floor {
				floored = append(floored, h)
			}
		}
		if len(floored) > 0 {
			pool = floored
		}
	}

	s.rankHotels(pool, mood, budget)

	if len(pool) > maxHotelPoolSize {
		pool = pool[:maxHotelPoolSize]
	}
	return pool, nil
}

// Luxury travelers weight rating over price; everyone else sorts by price.
func (s *candidateService) rankHotels(pool []response_models.HotelOption, mood string, budget float64) {
	if strings.EqualFold(mood, "luxury") {
		sort.SliceStable(pool, func(i, j int) bool {
			return luxuryScore(pool[i], budget) < luxuryScore(pool[j], budget)
		})
		return
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].PricePerNight < pool[j].PricePerNight
	})
}

// Without a budget the price fraction is zero and the score degenerates to
// rating descending.
func luxuryScore(h response_models.HotelOption, budget float64) float64 {
	score := -(h.Rating / 5) * 0.7
	if budget > 0 {
		score += (h.PricePerNight / budget) * 0.3
	}
	return score
}

var syntheticHotelNames = []string{
	"Grand Hotel %s",
	"%s Plaza Hotel",
	"The %s Boutique",
	"%s Riverside Inn",
	"Hotel Central %s",
}

func (s *candidateService) synthesizeHotel(destination string, budget float64, index int) response_models.HotelOption {
	var price float64
	if budget > 0 {
		price = s.rng.Uniform(0.4*budget, 0.95*budget)
	} else {
		price = s.rng.Uniform(100, 500)
	}

	nameTpl := syntheticHotelNames[index%len(syntheticHotelNames)]
	return response_models.HotelOption{
		Name:          fmt.Sprintf(nameTpl, destination),
		PricePerNight: utils.Round2(price),
		Rating:        utils.Round1(s.rng.Uniform(3.5, 5.0)),
		Location:      fmt.Sprintf("%s City Center", destination),
		Amenities:     []string{"WiFi", "Breakfast Included", "Air Conditioning"},
	}
}

func hotelOptionFromRow(row db_models.Hotel) response_models.HotelOption {
	return response_models.HotelOption{
		Name:          row.Name,
		PricePerNight: row.PricePerNight,
		Rating:        row.Rating,
		Location:      row.Location,
		Amenities:     []string(row.Amenities),
		Category:      row.Category,
	}
}
