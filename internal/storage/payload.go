package storage

import "fmt"

// MigrateFunc transforms a stored payload from one schema version to the
// next. Migrations are pure: they see only the payload bytes, never the
// backing store, so each step can be tested in isolation.
type MigrateFunc func([]byte) ([]byte, error)

// MigratePayload upgrades payload from version `from` to version `to` by
// applying steps in sequence. steps[i] migrates version i+1 to version i+2,
// so a store at schema version N carries N-1 steps. A payload already at the
// target version passes through untouched.
func MigratePayload(payload []byte, from, to int, steps []MigrateFunc) ([]byte, error) {
	if from < 1 {
		return nil, fmt.Errorf("invalid stored version %d", from)
	}
	if from > to {
		return nil, fmt.Errorf("stored version %d is newer than supported version %d", from, to)
	}
	if to-1 > len(steps) {
		return nil, fmt.Errorf("no migration path from version %d to %d", from, to)
	}

	for v := from; v < to; v++ {
		migrated, err := steps[v-1](payload)
		if err != nil {
			return nil, fmt.Errorf("migrating payload v%d to v%d: %w", v, v+1, err)
		}
		payload = migrated
	}
	return payload, nil
}
