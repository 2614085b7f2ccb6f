// Package mcp exposes the tracker to AI assistants over the Model Context
// Protocol: read tools for the schedule and catalog, plus a water-logging
// tool.
package mcp

import (
	"log/slog"

	"github.com/claude/ironweek/internal/catalog"
	"github.com/claude/ironweek/internal/hydration"
	"github.com/claude/ironweek/internal/planner"
	"github.com/claude/ironweek/internal/workouts"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(cat *catalog.Store, wk *workouts.Store, pl *planner.Store, hy *hydration.Store, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("IronWeek", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("IronWeek training planner. Query the exercise catalog, weekly plan, and today's scheduled workout, and log water intake."),
	)

	h := &handlers{catalog: cat, workouts: wk, planner: pl, hydration: hy, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetTodaysWorkout, Handler: h.getTodaysWorkout},
		server.ServerTool{Tool: toolGetWeeklyProgress, Handler: h.getWeeklyProgress},
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
		server.ServerTool{Tool: toolSearchExercises, Handler: h.searchExercises},
		server.ServerTool{Tool: toolGetWaterStatus, Handler: h.getWaterStatus},
		server.ServerTool{Tool: toolLogWater, Handler: h.logWater},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resDailySummary, Handler: h.dailySummary},
		server.ServerResource{Resource: resExerciseCatalog, Handler: h.exerciseCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	catalog   *catalog.Store
	workouts  *workouts.Store
	planner   *planner.Store
	hydration *hydration.Store
	log       *slog.Logger
}

// --- Resource definitions ---

var resDailySummary = mcp.NewResource(
	"ironweek://daily_summary",
	"Daily Summary",
	mcp.WithResourceDescription("Today's scheduled workout, weekly plan progress, and hydration status"),
	mcp.WithMIMEType("application/json"),
)

var resExerciseCatalog = mcp.NewResource(
	"ironweek://exercise_catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("All exercises with their muscle groups and default set/rep parameters"),
	mcp.WithMIMEType("application/json"),
)
