package plan

import (
	"encoding/json"
	"strings"
)

// parseResponse turns raw model output into a schema-complete plan. It never
// fails: any field the model omitted or garbled is patched from the goal
// catalog, and undecodable output yields the full default plan.
func parseResponse(raw string, goal Goal, experience Experience) Plan {
	payload := extractJSON(raw)
	if payload == "" {
		return DefaultPlan(goal, experience)
	}

	var decoded struct {
		Title           *string                `json:"title"`
		Description     *string                `json:"description"`
		WeeklySchedule  map[string]DaySchedule `json:"weekly_schedule"`
		NutritionAdvice *string                `json:"nutrition_advice"`
		Tips            []string               `json:"tips"`
	}
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		return DefaultPlan(goal, experience)
	}

	fallback := DefaultPlan(goal, experience)

	p := Plan{
		Title:           fallback.Title,
		Description:     fallback.Description,
		WeeklySchedule:  fallback.WeeklySchedule,
		NutritionAdvice: fallback.NutritionAdvice,
		Tips:            fallback.Tips,
	}
	if decoded.Title != nil && strings.TrimSpace(*decoded.Title) != "" {
		p.Title = *decoded.Title
	}
	if decoded.Description != nil && strings.TrimSpace(*decoded.Description) != "" {
		p.Description = *decoded.Description
	}
	if len(decoded.WeeklySchedule) > 0 {
		p.WeeklySchedule = normalizeSchedule(decoded.WeeklySchedule)
	}
	if decoded.NutritionAdvice != nil && strings.TrimSpace(*decoded.NutritionAdvice) != "" {
		p.NutritionAdvice = *decoded.NutritionAdvice
	}
	if len(decoded.Tips) > 0 {
		p.Tips = topUpTips(decoded.Tips, fallback.Tips)
	}
	return p
}

// extractJSON strips markdown code fences and isolates the outermost JSON
// object. Returns "" when no object is present.
func extractJSON(raw string) string {
	if _, after, found := strings.Cut(raw, "```json"); found {
		raw = after
		if before, _, cut := strings.Cut(raw, "```"); cut {
			raw = before
		}
	} else if _, after, found := strings.Cut(raw, "```"); found {
		raw = after
		if before, _, cut := strings.Cut(raw, "```"); cut {
			raw = before
		}
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return raw[start : end+1]
}

// normalizeSchedule lowercases weekday keys. The entries themselves are kept
// as the model produced them.
func normalizeSchedule(schedule map[string]DaySchedule) map[string]DaySchedule {
	normalized := make(map[string]DaySchedule, len(schedule))
	for day, entry := range schedule {
		normalized[strings.ToLower(strings.TrimSpace(day))] = entry
	}
	return normalized
}

// topUpTips guarantees at least three tips by borrowing from the defaults.
func topUpTips(tips, defaults []string) []string {
	const minTips = 3
	result := append([]string(nil), tips...)
	for _, tip := range defaults {
		if len(result) >= minTips {
			break
		}
		result = append(result, tip)
	}
	return result
}
