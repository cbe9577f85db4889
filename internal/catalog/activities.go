package catalog

// Declarative activity data. Everything tunable about moods, costs and
// durations lives here; the scheduler and candidate generator only read it
// through ActivityCatalog lookups.

type costRange struct {
	Min float64
	Max float64
}

// moodSlotActivities maps mood -> time slot -> activity names.
var moodSlotActivities = map[string]map[string][]string{
	"luxury": {
		SlotMorning:   {"Private Tour", "Spa Treatment", "Private Shopping"},
		SlotAfternoon: {"Wine Tasting", "Yacht Experience", "Helicopter Tour"},
		SlotEvening:   {"Michelin Star Dining", "Theater Show", "Private Tour"},
	},
	"romantic": {
		SlotMorning:   {"Garden Visit", "Couples Massage", "Private Picnic"},
		SlotAfternoon: {"Wine Tasting", "Cooking Class", "Cultural Workshop"},
		SlotEvening:   {"Sunset Cruise", "Rooftop Dinner", "Evening Concert"},
	},
	"adventure": {
		SlotMorning:   {"Hiking", "Surfing Lesson", "Rock Climbing"},
		SlotAfternoon: {"Water Sports", "Bike Tour", "Scuba Diving"},
		SlotEvening:   {"Food Tour", "Traditional Show", "Local Market"},
	},
	"cultural": {
		SlotMorning:   {"Museum Visit", "Historical Tour", "Temple/Church Visit"},
		SlotAfternoon: {"Art Gallery", "Cultural Workshop", "Local Market"},
		SlotEvening:   {"Traditional Show", "Food Tour", "Evening Concert"},
	},
	"relaxation": {
		SlotMorning:   {"Yoga Class", "Beach Time", "Garden Visit"},
		SlotAfternoon: {"Spa Day", "Thermal Bath", "Meditation Session"},
		SlotEvening:   {"Sunset Cruise", "Massage", "Scenic Drive"},
	},
}

// defaultSlotActivities serves unknown moods.
var defaultSlotActivities = map[string][]string{
	SlotMorning:   {"Museum Visit", "Historical Tour", "Local Market"},
	SlotAfternoon: {"Art Gallery", "Cultural Workshop", "Food Tour"},
	SlotEvening:   {"Traditional Show", "Local Dining", "Evening Walk"},
}

// baseCosts maps cost category -> activity name -> USD range.
var baseCosts = map[string]map[string]costRange{
	"luxury": {
		"Michelin Star Dining": {200, 400},
		"Private Tour":         {150, 300},
		"Spa Treatment":        {150, 300},
		"Helicopter Tour":      {300, 600},
		"Wine Tasting":         {100, 200},
		"Cooking Class":        {150, 250},
		"Theater Show":         {100, 200},
		"Private Shopping":     {0, 0}, // cost depends on purchases
		"Yacht Experience":     {500, 1000},
	},
	"cultural": {
		"Museum Visit":       {15, 30},
		"Historical Tour":    {30, 60},
		"Art Gallery":        {15, 25},
		"Local Market":       {0, 20},
		"Cultural Workshop":  {40, 80},
		"Temple/Church Visit": {0, 10},
		"Food Tour":          {60, 120},
		"Traditional Show":   {40, 80},
	},
	"adventure": {
		"Hiking":         {20, 50},
		"Bike Tour":      {30, 70},
		"Water Sports":   {50, 150},
		"Rock Climbing":  {40, 80},
		"Zip Lining":     {50, 100},
		"Kayaking":       {40, 80},
		"Surfing Lesson": {60, 120},
		"Scuba Diving":   {100, 200},
	},
	"relaxation": {
		"Spa Day":            {80, 200},
		"Beach Time":         {0, 20},
		"Yoga Class":         {20, 40},
		"Garden Visit":       {10, 25},
		"Meditation Session": {30, 60},
		"Thermal Bath":       {40, 80},
		"Massage":            {60, 150},
		"Scenic Drive":       {50, 100},
	},
	"romantic": {
		"Sunset Cruise":   {60, 120},
		"Couples Massage": {150, 250},
		"Rooftop Dinner":  {100, 200},
		"Wine Tasting":    {60, 120},
		"Private Picnic":  {50, 100},
		"Dance Class":     {50, 100},
		"Cooking Class":   {80, 150},
		"Evening Concert": {50, 150},
	},
	"family": {
		"Theme Park":      {50, 120},
		"Zoo Visit":       {25, 50},
		"Aquarium":        {25, 50},
		"Family Workshop": {30, 60},
		"Mini Golf":       {20, 40},
		"Science Museum":  {20, 40},
		"Water Park":      {40, 80},
		"Family Show":     {40, 80},
	},
}

// defaultCostRange applies when an activity has no entry in its category
// (the cultural Museum Visit range).
var defaultCostRange = costRange{15, 30}

// cityMultipliers adjusts costs for expensive destinations; unlisted cities use 1.0.
var cityMultipliers = map[string]float64{
	"New York":      1.5,
	"Tokyo":         1.4,
	"London":        1.4,
	"Paris":         1.3,
	"Singapore":     1.3,
	"Hong Kong":     1.3,
	"Dubai":         1.3,
	"Sydney":        1.2,
	"Los Angeles":   1.2,
	"San Francisco": 1.4,
	"Zurich":        1.5,
	"Oslo":          1.4,
	"Copenhagen":    1.3,
	"Amsterdam":     1.2,
}

// Duration bands in hours.
var durationBands = map[string]costRange{
	"short":  {1, 2},
	"medium": {2, 4},
	"long":   {4, 6},
}

var longActivities = map[string]bool{
	"Private Tour":     true,
	"Food Tour":        true,
	"Theme Park":       true,
	"Spa Day":          true,
	"Yacht Experience": true,
}

var shortActivities = map[string]bool{
	"Local Market":        true,
	"Temple/Church Visit": true,
	"Garden Visit":        true,
	"Mini Golf":           true,
}

// similarKeywordBuckets tags activities that should not recur in the same
// time slot on consecutive days (coarse tag matching, not semantics).
var similarKeywordBuckets = map[string][]string{
	"tour":       {"tour", "guided", "walking"},
	"class":      {"class", "workshop", "lesson"},
	"cruise":     {"cruise", "boat", "sailing", "yacht"},
	"show":       {"show", "concert", "performance", "theater"},
	"spa":        {"spa", "massage", "wellness", "treatment"},
	"dining":     {"dining", "restaurant", "culinary", "dinner"},
	"shopping":   {"shopping", "boutique", "market"},
	"helicopter": {"helicopter", "aerial", "flight"},
}

// moodHotelCategories maps mood -> acceptable hotel category tiers.
var moodHotelCategories = map[string][]string{
	"luxury":     {"luxury"},
	"romantic":   {"luxury", "upscale"},
	"cultural":   {"upscale", "midscale"},
	"adventure":  {"midscale", "economy"},
	"relaxation": {"upscale", "midscale"},
	"family":     {"midscale", "economy"},
}

var defaultHotelCategories = []string{"midscale"}

// moodQualityFloors is the soft minimum hotel rating per mood.
var moodQualityFloors = map[string]float64{
	"luxury":     4.5,
	"romantic":   4.0,
	"relaxation": 4.0,
}

// airlines is the fixed roster for synthesized flight candidates.
var airlines = []string{
	"Air France", "British Airways", "Lufthansa", "Delta Air Lines",
	"United Airlines", "American Airlines", "KLM", "Swiss Air",
	"Qatar Airways", "Emirates", "Singapore Airlines", "Cathay Pacific",
}

// moodPlaceCategories maps mood -> place-search categories for the external
// place lookup collaborator.
var moodPlaceCategories = map[string][]string{
	"luxury":     {"catering.restaurant.fine_dining", "entertainment.culture.theatre", "commercial.shopping_mall"},
	"romantic":   {"catering.restaurant.fine_dining", "entertainment.culture.theatre", "natural"},
	"adventure":  {"sport.fitness_center", "natural", "entertainment.water_park"},
	"cultural":   {"entertainment.culture.museum", "entertainment.culture.theatre", "tourism.sights"},
	"relaxation": {"natural", "commercial.spa", "leisure.park"},
	"family":     {"entertainment.water_park", "entertainment.theme_park", "entertainment.aquarium"},
}

var defaultPlaceCategories = []string{"tourism.sights"}
