package workouts

import (
	"github.com/claude/ironweek/internal/models"
	"github.com/google/uuid"
)

// Selection tracks which exercises are picked while composing a workout.
type Selection map[uuid.UUID]bool

// SelectVisible adds every exercise in visible to the selection. It operates
// only on the filtered subset the caller is currently looking at, never the
// full catalog: "select all" must respect active search and filter state.
func SelectVisible(sel Selection, visible []models.Exercise) Selection {
	if sel == nil {
		sel = Selection{}
	}
	for _, ex := range visible {
		sel[ex.ID] = true
	}
	return sel
}

// ClearVisible removes every exercise in visible from the selection,
// leaving picks outside the current filter untouched.
func ClearVisible(sel Selection, visible []models.Exercise) Selection {
	if sel == nil {
		return Selection{}
	}
	for _, ex := range visible {
		delete(sel, ex.ID)
	}
	return sel
}

// Ordered returns the selected subset of ordered, preserving order's
// sequence. Used to turn a catalog listing plus selection into the workout's
// exercise id list.
func Ordered(sel Selection, ordered []models.Exercise) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(sel))
	for _, ex := range ordered {
		if sel[ex.ID] {
			ids = append(ids, ex.ID)
		}
	}
	return ids
}
