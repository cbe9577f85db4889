package catalog

import "strings"

const (
	SlotMorning   = "morning"
	SlotAfternoon = "afternoon"
	SlotEvening   = "evening"
)

// ActivityCatalog exposes the declarative mood/activity configuration.
// Similar-activity tags are precomputed per activity name at construction so
// compatibility checks are plain set lookups.
type ActivityCatalog struct {
	similarTags map[string][]string
}

func NewActivityCatalog() *ActivityCatalog {
	c := &ActivityCatalog{
		similarTags: make(map[string][]string),
	}

	for _, slots := range moodSlotActivities {
		for _, names := range slots {
			for _, name := range names {
				if _, ok := c.similarTags[name]; !ok {
					c.similarTags[name] = computeSimilarTags(name)
				}
			}
		}
	}
	for _, names := range defaultSlotActivities {
		for _, name := range names {
			if _, ok := c.similarTags[name]; !ok {
				c.similarTags[name] = computeSimilarTags(name)
			}
		}
	}

	return c
}

// Slots returns the time-of-day buckets in schedule order.
func (c *ActivityCatalog) Slots() []string {
	return []string{SlotMorning, SlotAfternoon, SlotEvening}
}

// SlotActivities returns the activity names for a mood and slot. Unknown
// moods fall back to the cultural default set.
func (c *ActivityCatalog) SlotActivities(mood, slot string) []string {
	if slots, ok := moodSlotActivities[strings.ToLower(mood)]; ok {
		if names, ok := slots[slot]; ok {
			return names
		}
	}
	return defaultSlotActivities[slot]
}

// AllActivities returns every activity name available for a mood, across slots.
func (c *ActivityCatalog) AllActivities(mood string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, slot := range c.Slots() {
		for _, name := range c.SlotActivities(mood, slot) {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	return out
}

// CostRange returns the base USD cost range for an activity within a cost
// category. Names absent from the category get the cultural default range.
func (c *ActivityCatalog) CostRange(activity, category string) (float64, float64) {
	if ranges, ok := baseCosts[strings.ToLower(category)]; ok {
		if r, ok := ranges[activity]; ok {
			return r.Min, r.Max
		}
	} else {
		// Unknown category: locate the activity in any category.
		for _, ranges := range baseCosts {
			if r, ok := ranges[activity]; ok {
				return r.Min, r.Max
			}
		}
	}
	return defaultCostRange.Min, defaultCostRange.Max
}

// CityMultiplier returns the cost-of-living multiplier for a city, 1.0 when unlisted.
func (c *ActivityCatalog) CityMultiplier(city string) float64 {
	if m, ok := cityMultipliers[city]; ok {
		return m
	}
	return 1.0
}

// DurationBand returns the [min,max] hour band for an activity name; names in
// neither the long nor short set are medium.
func (c *ActivityCatalog) DurationBand(activity string) (float64, float64) {
	band := "medium"
	if longActivities[activity] {
		band = "long"
	} else if shortActivities[activity] {
		band = "short"
	}
	r := durationBands[band]
	return r.Min, r.Max
}

// SimilarTags returns the similarity buckets an activity name belongs to.
func (c *ActivityCatalog) SimilarTags(activity string) []string {
	if tags, ok := c.similarTags[activity]; ok {
		return tags
	}
	return computeSimilarTags(activity)
}

// SharesSimilarTag reports whether two activities fall in a common bucket.
func (c *ActivityCatalog) SharesSimilarTag(a, b string) bool {
	tagsA := c.SimilarTags(a)
	if len(tagsA) == 0 {
		return false
	}
	tagsB := c.SimilarTags(b)
	for _, ta := range tagsA {
		for _, tb := range tagsB {
			if ta == tb {
				return true
			}
		}
	}
	return false
}

// HotelCategoriesForMood returns the acceptable hotel tiers for a mood.
func (c *ActivityCatalog) HotelCategoriesForMood(mood string) []string {
	if cats, ok := moodHotelCategories[strings.ToLower(mood)]; ok {
		return cats
	}
	return defaultHotelCategories
}

// QualityFloor returns the soft minimum hotel rating for a mood, 0 when none.
func (c *ActivityCatalog) QualityFloor(mood string) float64 {
	return moodQualityFloors[strings.ToLower(mood)]
}

// Airlines returns the roster used for flight candidate synthesis.
func (c *ActivityCatalog) Airlines() []string {
	return airlines
}

// PlaceCategoriesForMood returns place-search categories for a mood.
func (c *ActivityCatalog) PlaceCategoriesForMood(mood string) []string {
	if cats, ok := moodPlaceCategories[strings.ToLower(mood)]; ok {
		return cats
	}
	return defaultPlaceCategories
}

func computeSimilarTags(activity string) []string {
	lower := strings.ToLower(activity)
	var tags []string
	for bucket, keywords := range similarKeywordBuckets {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				tags = append(tags, bucket)
				break
			}
		}
	}
	return tags
}
