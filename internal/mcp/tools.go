package mcp

import (
	"context"
	"fmt"

	"github.com/claude/ironweek/internal/hydration"
	"github.com/claude/ironweek/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolGetTodaysWorkout = mcp.NewTool("get_todays_workout",
	mcp.WithDescription("Resolve today's weekday against the active weekly plan. Returns the scheduled workout with its exercises, or a rest-day marker."),
)

var toolGetWeeklyProgress = mcp.NewTool("get_weekly_progress",
	mcp.WithDescription("Get the active plan's seven-day schedule with per-day completion state and the overall completion rate."),
)

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List all exercises in the catalog with their muscle group labels and default set/rep/rest parameters."),
)

var toolSearchExercises = mcp.NewTool("search_exercises",
	mcp.WithDescription("Search exercises by name (case-insensitive substring match)."),
	mcp.WithString("query", mcp.Required(), mcp.Description("Name fragment to search for (e.g. 'press')")),
)

var toolGetWaterStatus = mcp.NewTool("get_water_status",
	mcp.WithDescription("Get today's hydration status: daily goal, running intake, progress percentage, and logged entries."),
)

var toolLogWater = mcp.NewTool("log_water",
	mcp.WithDescription("Log a water intake entry in milliliters."),
	mcp.WithNumber("amount", mcp.Required(), mcp.Description("Amount in milliliters (e.g. 250)")),
	mcp.WithString("note", mcp.Description("Optional note (e.g. 'post workout')")),
)

// --- Tool handlers ---

func (h *handlers) getTodaysWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	today := h.planner.TodaysWorkout()

	payload := map[string]any{
		"day":          today.Day,
		"rest":         today.Rest,
		"is_completed": today.IsCompleted,
	}
	if today.PlanID != nil {
		payload["plan_name"] = today.PlanName
	}
	if today.Notes != "" {
		payload["notes"] = today.Notes
	}
	if today.WorkoutID != nil {
		if wk, ok := h.workouts.Get(*today.WorkoutID); ok {
			payload["workout"] = wk
			payload["exercises"] = models.ResolveExercises(wk.ExerciseIDs, h.catalog.GetExercise)
		}
	}

	result, err := mcp.NewToolResultJSON(payload)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWeeklyProgress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	plan, ok := h.planner.ActivePlan()
	if !ok {
		return mcp.NewToolResultError("no active plan"), nil
	}

	result, err := mcp.NewToolResultJSON(plan)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.exerciseListResult(h.catalog.Exercises())
}

func (h *handlers) searchExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query parameter is required"), nil
	}
	return h.exerciseListResult(h.catalog.SearchExercises(query))
}

// exerciseListResult decorates exercises with resolved muscle group labels.
func (h *handlers) exerciseListResult(exercises []models.Exercise) (*mcp.CallToolResult, error) {
	out := make([]map[string]any, 0, len(exercises))
	for _, ex := range exercises {
		out = append(out, map[string]any{
			"id":                    ex.ID,
			"name":                  ex.Name,
			"muscle_group":          h.catalog.MuscleGroupLabel(ex.MuscleGroupID),
			"default_sets":          ex.DefaultSets,
			"default_reps":          ex.DefaultReps,
			"default_rest_time_sec": ex.DefaultRestTime,
			"weight_unit":           ex.WeightUnit,
			"progression_type":      ex.ProgressionType,
		})
	}
	result, err := mcp.NewToolResultJSON(out)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWaterStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(h.hydration.Status())
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) logWater(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	amount, err := req.RequireFloat("amount")
	if err != nil {
		return mcp.NewToolResultError("amount parameter is required"), nil
	}
	if int(amount) > hydration.MaxEntryAmount {
		return mcp.NewToolResultError(fmt.Sprintf("amount exceeds %d ml", hydration.MaxEntryAmount)), nil
	}

	entry, err := h.hydration.AddWater(ctx, int(amount), req.GetString("note", ""))
	if err != nil {
		return mcp.NewToolResultError("log failed: " + err.Error()), nil
	}

	payload := map[string]any{
		"entry":  entry,
		"status": h.hydration.Status(),
	}
	result, err := mcp.NewToolResultJSON(payload)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
