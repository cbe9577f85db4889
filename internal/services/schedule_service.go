package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"voyago/internal/catalog"
	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

// Share of the trip budget reserved for activities, spread evenly per slot.
const activityBudgetShare = 0.4

// Exact-name repeats are banned within this many recent picks, expressed in
// days worth of activities.
const repeatWindowDays = 3

// Similar-tag picks are banned in the same slot across this many prior days.
const similarLookbackDays = 2

var slotStartHours = map[string]int{
	catalog.SlotMorning:   9,
	catalog.SlotAfternoon: 14,
	catalog.SlotEvening:   19,
}

// ScheduleServiceInterface fills day plans with mood-appropriate activities.
// BuildSchedule is the deterministic rule-based path; BuildFromProposal
// validates a planner's raw JSON proposal and enriches it with costs, falling
// back is the caller's job.
type ScheduleServiceInterface interface {
	BuildSchedule(ctx context.Context, mood, destination string, budget float64, days, perDay int) ([]response_models.DayPlan, error)
	BuildFromProposal(raw, mood, destination string, budget float64, days, perDay int) ([]response_models.DayPlan, error)
}

type scheduleService struct {
	catalog *catalog.ActivityCatalog
	rng     *utils.LockedRand
}

func NewScheduleService(activityCatalog *catalog.ActivityCatalog, rng *utils.LockedRand) ScheduleServiceInterface {
	return &scheduleService{catalog: activityCatalog, rng: rng}
}

func (s *scheduleService) BuildSchedule(ctx context.Context, mood, destination string, budget float64, days, perDay int) ([]response_models.DayPlan, error) {
	if days <= 0 || perDay <= 0 {
		return nil, utils.ErrInvalidInput
	}

	slots := s.catalog.Slots()
	perActivityBudget := 0.0
	if budget > 0 {
		perActivityBudget = activityBudgetShare * budget / float64(days*perDay)
	}

	var recent []string
	// slotHistory[slot] holds the picks made in that slot, one per day.
	slotHistory := make(map[string][]string)

	plan := make([]response_models.DayPlan, 0, days)
	for day := 1; day <= days; day++ {
		entries := make([]response_models.ActivityEntry, 0, perDay)
		for i := 0; i < perDay; i++ {
			slot := slots[i%len(slots)]
			name := s.pickActivity(mood, slot, recent, slotHistory[slot])

			recent = append(recent, name)
			if window := repeatWindowDays * perDay; len(recent) > window {
				recent = recent[len(recent)-window:]
			}
			slotHistory[slot] = append(slotHistory[slot], name)

			entries = append(entries, response_models.ActivityEntry{
				Time:          s.slotTime(slot),
				Activity:      name,
				Location:      destination,
				CostEstimate:  s.estimateCost(name, mood, destination, perActivityBudget),
				DurationHours: s.estimateDuration(name),
			})
		}
		plan = append(plan, response_models.DayPlan{Day: day, Activities: entries})
	}
	return plan, nil
}

// pickActivity filters the slot's catalog against the exact-repeat window and
// the similar-tag lookback, then draws uniformly. An over-constrained filter
// falls back to the full slot catalog.
func (s *scheduleService) pickActivity(mood, slot string, recent, slotHistory []string) string {
	pool := s.catalog.SlotActivities(mood, slot)

	recentSet := make(map[string]bool, len(recent))
	for _, name := range recent {
		recentSet[name] = true
	}

	lookback := slotHistory
	if len(lookback) > similarLookbackDays {
		lookback = lookback[len(lookback)-similarLookbackDays:]
	}

	filtered := make([]string, 0, len(pool))
	for _, name := range pool {
		if recentSet[name] {
			continue
		}
		similar := false
		for _, prior := range lookback {
			if s.catalog.SharesSimilarTag(name, prior) {
				similar = true
				break
			}
		}
		if similar {
			continue
		}
		filtered = append(filtered, name)
	}

	if len(filtered) == 0 {
		filtered = pool
	}
	return filtered[s.rng.Intn(len(filtered))]
}

func (s *scheduleService) slotTime(slot string) string {
	hour := slotStartHours[slot] + s.rng.Intn(3) - 1
	return fmt.Sprintf("%02d:00", hour)
}

// estimateCost draws from the activity's base range scaled by the city
// multiplier. A per-slot budget below 60% of the scaled minimum pins the cost
// at that minimum viable floor; otherwise it caps the range ceiling.
func (s *scheduleService) estimateCost(name, mood, city string, perActivityBudget float64) float64 {
	min, max := s.catalog.CostRange(name, mood)
	mult := s.catalog.CityMultiplier(city)
	min *= mult
	max *= mult

	if perActivityBudget > 0 {
		minViable := min * 0.6
		if perActivityBudget < minViable {
			return utils.Round2(minViable)
		}
		if perActivityBudget < max {
			max = perActivityBudget
		}
		if max < min {
			min, max = max, min
		}
	}

	return utils.Round2(s.rng.Uniform(min, max))
}

func (s *scheduleService) estimateDuration(name string) float64 {
	min, max := s.catalog.DurationBand(name)
	return utils.Round1(s.rng.Uniform(min, max))
}

// plannerProposal mirrors the JSON contract the AI planner is prompted with.
type plannerProposal struct {
	DailyActivities []struct {
		Day        int `json:"day"`
		Activities []struct {
			Activity      string  `json:"activity"`
			Time          string  `json:"time"`
			DurationHours float64 `json:"duration_hours"`
		} `json:"activities"`
	} `json:"daily_activities"`
}

// BuildFromProposal parses and strictly validates a planner proposal. Any
// structural violation (wrong day count, wrong per-day activity count,
// missing name or time, activity outside the mood catalog) rejects the whole
// proposal so the caller can fall back to BuildSchedule.
func (s *scheduleService) BuildFromProposal(raw, mood, destination string, budget float64, days, perDay int) ([]response_models.DayPlan, error) {
	if days <= 0 || perDay <= 0 {
		return nil, utils.ErrInvalidInput
	}

	var proposal plannerProposal
	if err := json.Unmarshal([]byte(raw), &proposal); err != nil {
		return nil, fmt.Errorf("%w: malformed proposal: %v", utils.ErrPlannerUnavailable, err)
	}
	if len(proposal.DailyActivities) != days {
		return nil, fmt.Errorf("%w: proposal has %d days, want %d", utils.ErrPlannerUnavailable, len(proposal.DailyActivities), days)
	}

	allowed := make(map[string]bool)
	for _, name := range s.catalog.AllActivities(mood) {
		allowed[name] = true
	}

	perActivityBudget := 0.0
	if budget > 0 {
		perActivityBudget = activityBudgetShare * budget / float64(days*perDay)
	}

	plan := make([]response_models.DayPlan, 0, days)
	for i, day := range proposal.DailyActivities {
		if day.Day != i+1 {
			return nil, fmt.Errorf("%w: day %d out of order", utils.ErrPlannerUnavailable, day.Day)
		}
		if len(day.Activities) != perDay {
			return nil, fmt.Errorf("%w: day %d has %d activities, want %d", utils.ErrPlannerUnavailable, day.Day, len(day.Activities), perDay)
		}

		entries := make([]response_models.ActivityEntry, 0, len(day.Activities))
		for _, act := range day.Activities {
			name := strings.TrimSpace(act.Activity)
			if name == "" || strings.TrimSpace(act.Time) == "" {
				return nil, fmt.Errorf("%w: day %d has an activity missing name or time", utils.ErrPlannerUnavailable, day.Day)
			}
			if !allowed[name] {
				return nil, fmt.Errorf("%w: activity %q not in catalog", utils.ErrPlannerUnavailable, name)
			}

			duration := act.DurationHours
			if duration <= 0 {
				duration = s.estimateDuration(name)
			}

			entries = append(entries, response_models.ActivityEntry{
				Time:          act.Time,
				Activity:      name,
				Location:      destination,
				CostEstimate:  s.estimateCost(name, mood, destination, perActivityBudget),
				DurationHours: duration,
			})
		}
		plan = append(plan, response_models.DayPlan{Day: day.Day, Activities: entries})
	}
	return plan, nil
}
