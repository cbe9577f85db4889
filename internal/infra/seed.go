package infra

import (
	"context"
	"fmt"
	"log"
	"math"
	"voyago/internal/models/db_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"

	"github.com/lib/pq"
)

// Catalog seeding. Populates the airport, hotel and flight tables with
// synthesized mock inventory when they are empty, so a fresh database serves
// candidate pools immediately.

const (
	seedHotelCount  = 500
	seedFlightCount = 500
)

var seedAirports = []db_models.Airport{
	{Code: "JFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "United States", Latitude: 40.6413, Longitude: -73.7781},
	{Code: "CDG", Name: "Charles de Gaulle Airport", City: "Paris", Country: "France", Latitude: 49.0097, Longitude: 2.5479},
	{Code: "LHR", Name: "Heathrow Airport", City: "London", Country: "United Kingdom", Latitude: 51.4700, Longitude: -0.4543},
	{Code: "NRT", Name: "Narita International Airport", City: "Tokyo", Country: "Japan", Latitude: 35.7719, Longitude: 140.3929},
	{Code: "DXB", Name: "Dubai International Airport", City: "Dubai", Country: "United Arab Emirates", Latitude: 25.2532, Longitude: 55.3657},
	{Code: "SIN", Name: "Singapore Changi Airport", City: "Singapore", Country: "Singapore", Latitude: 1.3644, Longitude: 103.9915},
	{Code: "HKG", Name: "Hong Kong International Airport", City: "Hong Kong", Country: "Hong Kong", Latitude: 22.3080, Longitude: 113.9185},
	{Code: "SYD", Name: "Sydney Kingsford Smith Airport", City: "Sydney", Country: "Australia", Latitude: -33.9399, Longitude: 151.1753},
	{Code: "LAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "United States", Latitude: 33.9416, Longitude: -118.4085},
	{Code: "ORD", Name: "O'Hare International Airport", City: "Chicago", Country: "United States", Latitude: 41.9742, Longitude: -87.9073},
	{Code: "MIA", Name: "Miami International Airport", City: "Miami", Country: "United States", Latitude: 25.7959, Longitude: -80.2870},
	{Code: "YYZ", Name: "Toronto Pearson International Airport", City: "Toronto", Country: "Canada", Latitude: 43.6777, Longitude: -79.6248},
	{Code: "YVR", Name: "Vancouver International Airport", City: "Vancouver", Country: "Canada", Latitude: 49.1967, Longitude: -123.1815},
	{Code: "AMS", Name: "Amsterdam Airport Schiphol", City: "Amsterdam", Country: "Netherlands", Latitude: 52.3105, Longitude: 4.7683},
	{Code: "FRA", Name: "Frankfurt Airport", City: "Frankfurt", Country: "Germany", Latitude: 50.0379, Longitude: 8.5622},
	{Code: "FCO", Name: "Leonardo da Vinci International Airport", City: "Rome", Country: "Italy", Latitude: 41.8003, Longitude: 12.2389},
	{Code: "MAD", Name: "Adolfo Suarez Madrid-Barajas Airport", City: "Madrid", Country: "Spain", Latitude: 40.4983, Longitude: -3.5676},
	{Code: "BCN", Name: "Josep Tarradellas Barcelona-El Prat Airport", City: "Barcelona", Country: "Spain", Latitude: 41.2974, Longitude: 2.0833},
	{Code: "BER", Name: "Berlin Brandenburg Airport", City: "Berlin", Country: "Germany", Latitude: 52.3667, Longitude: 13.5033},
	{Code: "MUC", Name: "Munich Airport", City: "Munich", Country: "Germany", Latitude: 48.3537, Longitude: 11.7750},
	{Code: "IST", Name: "Istanbul Airport", City: "Istanbul", Country: "Turkey", Latitude: 41.2753, Longitude: 28.7519},
	{Code: "BKK", Name: "Suvarnabhumi Airport", City: "Bangkok", Country: "Thailand", Latitude: 13.6900, Longitude: 100.7501},
	{Code: "GIG", Name: "Rio de Janeiro-Galeao International Airport", City: "Rio de Janeiro", Country: "Brazil", Latitude: -22.8100, Longitude: -43.2506},
	{Code: "VIE", Name: "Vienna International Airport", City: "Vienna", Country: "Austria", Latitude: 48.1103, Longitude: 16.5697},
}

// Airline alliances and their member airlines; alliance drives the price multiplier.
var airlineAlliances = map[string][]string{
	"Star Alliance": {
		"United Airlines", "Lufthansa", "Air Canada", "ANA", "Singapore Airlines",
		"Turkish Airlines", "Swiss Air", "Austrian Airlines", "LOT Polish Airlines",
		"TAP Air Portugal", "Air New Zealand",
	},
	"Oneworld": {
		"American Airlines", "British Airways", "Qantas", "Cathay Pacific",
		"Japan Airlines", "Qatar Airways", "Finnair", "Iberia", "Malaysia Airlines",
	},
	"SkyTeam": {
		"Delta Air Lines", "Air France", "KLM", "Korean Air", "China Airlines",
		"Aeromexico", "Vietnam Airlines", "China Eastern",
	},
	"Independent": {
		"Emirates", "Etihad Airways", "Virgin Atlantic", "Norwegian Air",
		"Ryanair", "EasyJet", "Southwest Airlines", "JetBlue",
	},
}

type hotelTier struct {
	chains       []string
	priceMin     float64
	priceMax     float64
	ratingMin    float64
	ratingMax    float64
	minAmenities int
}

var hotelTiers = map[string]hotelTier{
	"luxury": {
		chains: []string{
			"Four Seasons", "Ritz-Carlton", "Mandarin Oriental", "Peninsula",
			"Shangri-La", "Aman", "Rosewood", "St. Regis", "Park Hyatt", "Waldorf Astoria",
		},
		priceMin: 500, priceMax: 2000, ratingMin: 4.3, ratingMax: 5.0, minAmenities: 5,
	},
	"upscale": {
		chains: []string{
			"JW Marriott", "Grand Hyatt", "InterContinental", "Westin",
			"Sofitel", "W Hotels", "Kimpton", "Conrad", "Le Meridien",
		},
		priceMin: 300, priceMax: 800, ratingMin: 4.0, ratingMax: 4.8, minAmenities: 4,
	},
	"midscale": {
		chains: []string{
			"Hilton", "Marriott", "Hyatt", "Sheraton", "Renaissance",
			"Crowne Plaza", "Radisson", "Novotel", "DoubleTree",
		},
		priceMin: 150, priceMax: 400, ratingMin: 3.8, ratingMax: 4.5, minAmenities: 3,
	},
	"economy": {
		chains: []string{
			"Holiday Inn", "Best Western", "Comfort Inn", "Hampton Inn",
			"Ibis", "La Quinta", "Days Inn", "Quality Inn", "Travelodge",
		},
		priceMin: 50, priceMax: 200, ratingMin: 3.0, ratingMax: 4.2, minAmenities: 2,
	},
}

var tierAmenities = map[string][]string{
	"luxury": {
		"WiFi", "Breakfast Included", "Pool", "Spa", "Fitness Center",
		"Fine Dining Restaurant", "Bar & Lounge", "24/7 Room Service",
		"Concierge", "Valet Parking", "Business Center", "Ocean View",
		"City View", "Penthouse Suite", "Private Balcony", "Butler Service",
		"Executive Lounge", "Michelin-Star Restaurant", "Rooftop Bar",
	},
	"upscale": {
		"WiFi", "Breakfast Included", "Pool", "Spa", "Fitness Center",
		"Restaurant", "Bar", "Room Service", "Concierge", "Parking",
		"Business Center", "City View", "Balcony", "Club Lounge", "Airport Shuttle",
	},
	"midscale": {
		"WiFi", "Breakfast Included", "Pool", "Fitness Center",
		"Restaurant", "Bar", "Room Service", "Parking",
		"Business Center", "Airport Shuttle", "Family Rooms",
	},
	"economy": {
		"WiFi", "Breakfast Included", "Parking", "Vending Machines",
		"Basic Fitness Room", "Business Corner", "Airport Shuttle", "Family Rooms",
	},
}

// SeedCatalog fills empty catalog tables with mock inventory.
func SeedCatalog(
	ctx context.Context,
	airportRepo repositories.AirportRepository,
	hotelRepo repositories.HotelRepository,
	flightRepo repositories.FlightRepository,
	rng *utils.LockedRand,
) error {
	if count, err := airportRepo.Count(ctx); err != nil {
		return fmt.Errorf("counting airports: %w", err)
	} else if count == 0 {
		if err := airportRepo.InsertBatch(ctx, seedAirports); err != nil {
			return fmt.Errorf("seeding airports: %w", err)
		}
		log.Printf("Seeded %d airports", len(seedAirports))
	}

	if count, err := hotelRepo.Count(ctx); err != nil {
		return fmt.Errorf("counting hotels: %w", err)
	} else if count == 0 {
		hotels := generateHotels(rng)
		if err := hotelRepo.InsertBatch(ctx, hotels); err != nil {
			return fmt.Errorf("seeding hotels: %w", err)
		}
		log.Printf("Seeded %d hotels", len(hotels))
	}

	if count, err := flightRepo.Count(ctx); err != nil {
		return fmt.Errorf("counting flights: %w", err)
	} else if count == 0 {
		flights := generateFlights(rng)
		if err := flightRepo.InsertBatch(ctx, flights); err != nil {
			return fmt.Errorf("seeding flights: %w", err)
		}
		log.Printf("Seeded %d flights", len(flights))
	}

	return nil
}

func hotelDestinations() []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range seedAirports {
		if !seen[a.City] {
			seen[a.City] = true
			out = append(out, a.City)
		}
		if !seen[a.Country] {
			seen[a.Country] = true
			out = append(out, a.Country)
		}
	}
	for _, city := range []string{"Venice", "Hong Kong", "Bangkok"} {
		if !seen[city] {
			seen[city] = true
			out = append(out, city)
		}
	}
	return out
}

func generateHotels(rng *utils.LockedRand) []db_models.Hotel {
	destinations := hotelDestinations()
	hotels := make([]db_models.Hotel, 0, seedHotelCount)

	for i := 0; i < seedHotelCount; i++ {
		category := pickWeightedCategory(rng)
		tier := hotelTiers[category]
		location := destinations[rng.Intn(len(destinations))]
		chain := tier.chains[rng.Intn(len(tier.chains))]

		// Location-based price variation of +/-20% on top of the tier range.
		variation := rng.Uniform(0.8, 1.2)
		price := utils.Round2(rng.Uniform(tier.priceMin, tier.priceMax) * variation)

		hotels = append(hotels, db_models.Hotel{
			Name:          fmt.Sprintf("%s %s", chain, location),
			PricePerNight: price,
			Rating:        utils.Round1(rng.Uniform(tier.ratingMin, tier.ratingMax)),
			Location:      location,
			Amenities:     pq.StringArray(pickAmenities(rng, category, tier.minAmenities)),
			Category:      category,
		})
	}
	return hotels
}

// 10% luxury, 20% upscale, 40% midscale, 30% economy.
func pickWeightedCategory(rng *utils.LockedRand) string {
	roll := rng.Float64()
	switch {
	case roll < 0.1:
		return "luxury"
	case roll < 0.3:
		return "upscale"
	case roll < 0.7:
		return "midscale"
	default:
		return "economy"
	}
}

func pickAmenities(rng *utils.LockedRand, category string, minCount int) []string {
	pool := tierAmenities[category]
	maxCount := len(pool) - 2
	if maxCount < minCount+3 {
		maxCount = minCount + 3
	}
	if maxCount > len(pool) {
		maxCount = len(pool)
	}
	count := minCount + rng.Intn(maxCount-minCount+1)

	// Partial Fisher-Yates over a copy, taking the first count entries.
	shuffled := make([]string, len(pool))
	copy(shuffled, pool)
	for i := 0; i < count; i++ {
		j := i + rng.Intn(len(shuffled)-i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled[:count]
}

func generateFlights(rng *utils.LockedRand) []db_models.Flight {
	type rosterEntry struct {
		airline  string
		alliance string
	}
	var roster []rosterEntry
	for _, alliance := range []string{"Star Alliance", "Oneworld", "SkyTeam", "Independent"} {
		for _, airline := range airlineAlliances[alliance] {
			roster = append(roster, rosterEntry{airline: airline, alliance: alliance})
		}
	}

	flights := make([]db_models.Flight, 0, seedFlightCount)
	for i := 0; i < seedFlightCount; i++ {
		origin := seedAirports[rng.Intn(len(seedAirports))]
		dest := seedAirports[rng.Intn(len(seedAirports))]
		for dest.Code == origin.Code {
			dest = seedAirports[rng.Intn(len(seedAirports))]
		}

		distance := haversineKM(origin.Latitude, origin.Longitude, dest.Latitude, dest.Longitude)
		stops := pickStops(rng, distance)
		entry := roster[rng.Intn(len(roster))]

		flights = append(flights, db_models.Flight{
			Airline:           entry.airline,
			Price:             flightPrice(rng, distance, entry.alliance, stops),
			Duration:          flightDuration(rng, distance, stops),
			Stops:             stops,
			Departure:         origin.Code,
			Arrival:           dest.Code,
			DepartureFullname: origin.Name,
			ArrivalFullname:   dest.Name,
			DistanceKM:        utils.Round2(distance),
		})
	}
	return flights
}

func haversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKM = 6371

	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }
	lat1, lon1, lat2, lon2 = toRad(lat1), toRad(lon1), toRad(lat2), toRad(lon2)

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Pow(math.Sin(dLat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLon/2), 2)
	return earthRadiusKM * 2 * math.Asin(math.Sqrt(a))
}

func routeCategory(distance float64) string {
	switch {
	case distance <= 1500:
		return "short_haul"
	case distance <= 3500:
		return "medium_haul"
	default:
		return "long_haul"
	}
}

// Direct flights dominate short routes; long hauls usually connect.
func pickStops(rng *utils.LockedRand, distance float64) int {
	roll := rng.Float64()
	switch routeCategory(distance) {
	case "short_haul":
		if roll < 0.7 {
			return 0
		} else if roll < 0.95 {
			return 1
		}
		return 2
	case "medium_haul":
		if roll < 0.4 {
			return 0
		} else if roll < 0.9 {
			return 1
		}
		return 2
	default:
		if roll < 0.2 {
			return 0
		} else if roll < 0.8 {
			return 1
		}
		return 2
	}
}

func flightPrice(rng *utils.LockedRand, distance float64, alliance string, stops int) float64 {
	// USD per km by route category.
	baseRates := map[string][2]float64{
		"short_haul":  {0.15, 0.25},
		"medium_haul": {0.12, 0.20},
		"long_haul":   {0.10, 0.18},
	}
	allianceMultipliers := map[string][2]float64{
		"Star Alliance": {1.1, 1.3},
		"Oneworld":      {1.1, 1.3},
		"SkyTeam":       {1.0, 1.2},
		"Independent":   {0.8, 1.0},
	}
	// Direct flight premium, multi-stop discount.
	stopsMultipliers := map[int][2]float64{
		0: {1.1, 1.3},
		1: {0.9, 1.1},
		2: {0.7, 0.9},
	}

	base := baseRates[routeCategory(distance)]
	am := allianceMultipliers[alliance]
	sm := stopsMultipliers[stops]

	minPrice := distance * base[0] * am[0] * sm[0]
	maxPrice := distance * base[1] * am[1] * sm[1]
	return utils.Round2(rng.Uniform(minPrice, maxPrice))
}

func flightDuration(rng *utils.LockedRand, distance float64, stops int) string {
	// Average commercial cruise speed ~850 km/h, plus 1-2h per stop.
	totalHours := distance / 850
	for i := 0; i < stops; i++ {
		totalHours += rng.Uniform(1, 2)
	}
	totalHours += rng.Uniform(-0.5, 1)
	if totalHours < 0.5 {
		totalHours = 0.5
	}

	hours := int(totalHours)
	minutes := int((totalHours - float64(hours)) * 60)
	minutes = (minutes + 2) / 5 * 5
	if minutes >= 60 {
		hours++
		minutes -= 60
	}
	return fmt.Sprintf("%dh %02dm", hours, minutes)
}
