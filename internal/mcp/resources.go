package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) dailySummary(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	today := h.planner.TodaysWorkout()

	summary := map[string]any{
		"today": today,
		"water": h.hydration.Status(),
	}
	if plan, ok := h.planner.ActivePlan(); ok {
		summary["active_plan"] = map[string]any{
			"name":            plan.Name,
			"completed_days":  plan.CompletedDays,
			"completion_rate": plan.CompletionRate,
		}
	}
	if today.WorkoutID != nil {
		if wk, ok := h.workouts.Get(*today.WorkoutID); ok {
			summary["todays_workout"] = wk
		}
	}

	return jsonResource(req.Params.URI, summary)
}

func (h *handlers) exerciseCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	exercises := h.catalog.Exercises()
	out := make([]map[string]any, 0, len(exercises))
	for _, ex := range exercises {
		out = append(out, map[string]any{
			"id":                    ex.ID,
			"name":                  ex.Name,
			"muscle_group":          h.catalog.MuscleGroupLabel(ex.MuscleGroupID),
			"default_sets":          ex.DefaultSets,
			"default_reps":          ex.DefaultReps,
			"default_rest_time_sec": ex.DefaultRestTime,
		})
	}

	catalog := map[string]any{
		"muscle_groups": h.catalog.MuscleGroups(),
		"exercises":     out,
	}
	return jsonResource(req.Params.URI, catalog)
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
