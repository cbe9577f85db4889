package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONResponseStripsFences(t *testing.T) {
	raw := "```json\n{\"daily_activities\":[]}\n```"
	assert.Equal(t, `{"daily_activities":[]}`, cleanJSONResponse(raw))
}

func TestCleanJSONResponseExtractsObjectFromProse(t *testing.T) {
	raw := `Sure! Here is your schedule: {"daily_activities":[{"day":1}]} Enjoy your trip!`
	assert.Equal(t, `{"daily_activities":[{"day":1}]}`, cleanJSONResponse(raw))
}

func TestCleanJSONResponseHandlesNestedBraces(t *testing.T) {
	raw := `prefix {"a":{"b":{"c":1}},"d":"}"} suffix`
	assert.Equal(t, `{"a":{"b":{"c":1}},"d":"}"}`, cleanJSONResponse(raw))
}

func TestCleanJSONResponseKeepsArrays(t *testing.T) {
	raw := "```\n[1,2,3]\n```"
	assert.Equal(t, `[1,2,3]`, cleanJSONResponse(raw))
}

func TestCleanJSONResponseIgnoresBracesInsideStrings(t *testing.T) {
	raw := `{"note":"open { and close }"}`
	assert.Equal(t, raw, cleanJSONResponse(raw))
}

func TestBuildSchedulePromptListsConstraints(t *testing.T) {
	prompt := buildSchedulePrompt("Paris", "cultural", 3, 3, []string{"Museum Visit", "Food Tour"})

	assert.Contains(t, prompt, "3-day schedule for a cultural trip to Paris")
	assert.Contains(t, prompt, "Museum Visit, Food Tour")
	assert.Contains(t, prompt, `{"daily_activities"`)
	assert.Contains(t, prompt, "Each day needs exactly 3 activities")
}

func TestNewPlannerClientRejectsUnknownProvider(t *testing.T) {
	_, err := NewPlannerClient("cohere", "key", "model")
	assert.Error(t, err)
}

func TestLockedRandUniformBounds(t *testing.T) {
	r := NewLockedRand(1)
	for i := 0; i < 1000; i++ {
		v := r.Uniform(10, 20)
		assert.GreaterOrEqual(t, v, 10.0)
		assert.Less(t, v, 20.0)
	}

	// Degenerate range collapses to the lower bound.
	assert.Equal(t, 5.0, r.Uniform(5, 5))
}

func TestRoundingHelpers(t *testing.T) {
	assert.Equal(t, 12.35, Round2(12.346))
	assert.Equal(t, 2.5, Round1(2.46))
}
