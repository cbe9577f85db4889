package utils

import (
	"context"
	"fmt"
	"strings"
)

// PlannerClientInterface is the optional natural-language planner collaborator.
// It proposes a day-by-day activity schedule as raw JSON; callers validate the
// structure strictly and fall back to the rule-based scheduler on any violation.
type PlannerClientInterface interface {
	ProposeSchedule(ctx context.Context, destination, mood string, days, perDay int, allowedActivities []string) (string, error)
}

// NewPlannerClient Factory function to create either OpenAI or Gemini planner based on config
func NewPlannerClient(provider, apiKey, model string) (PlannerClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIPlannerClient(apiKey, model), nil
	case "gemini":
		return NewGeminiPlannerClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported planner provider: %s", provider)
	}
}

func buildSchedulePrompt(destination, mood string, days, perDay int, allowed []string) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Generate a %d-day schedule for a %s trip to %s.\n", days, mood, destination))
	prompt.WriteString(fmt.Sprintf("Activities per day: %d\n\n", perDay))
	prompt.WriteString("Available activities: ")
	prompt.WriteString(strings.Join(allowed, ", "))
	prompt.WriteString("\n\nRESPOND WITH ONLY A JSON OBJECT IN THIS EXACT FORMAT (no other text):\n")
	prompt.WriteString(`{"daily_activities":[{"day":1,"activities":[{"activity":"Activity Name","time":"09:00","duration_hours":2.5}]}]}`)
	prompt.WriteString("\n\nRULES:\n")
	prompt.WriteString("1. Use ONLY activities from the available list\n")
	prompt.WriteString(fmt.Sprintf("2. Each day needs exactly %d activities\n", perDay))
	prompt.WriteString("3. Use times between 09:00-22:00\n")
	prompt.WriteString("4. Duration must be a number (2.5, not \"2.5 hours\")\n")
	prompt.WriteString("5. NO extra fields or text\n")

	return prompt.String()
}

// cleanJSONResponse strips markdown fences and surrounding prose, keeping the
// outermost JSON object or array.
func cleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	objStart := strings.Index(response, "{")
	arrStart := strings.Index(response, "[")

	if objStart != -1 && (arrStart == -1 || objStart < arrStart) {
		if end := findMatching(response, objStart, '{', '}'); end != -1 {
			response = response[objStart : end+1]
		}
	} else if arrStart != -1 {
		if end := findMatching(response, arrStart, '[', ']'); end != -1 {
			response = response[arrStart : end+1]
		}
	}

	return strings.TrimSpace(response)
}

func findMatching(s string, start int, open, close byte) int {
	if start >= len(s) || s[start] != open {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
