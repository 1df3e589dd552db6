package session

import (
	"fmt"
	"sort"

	"github.com/rentbooks-dev/rentbooks/internal/model"
)

// Snapshot is a saved month's statistics, keyed by "YYYY-MM".
type Snapshot struct {
	Key   string
	Stats model.MonthlyStats
}

// SaveSnapshot stores a point-in-time copy of a month's statistics.
// Snapshots are immutable: saving an already-saved month is an error.
func (s *Store) SaveSnapshot(key string, stats model.MonthlyStats) error {
	if _, ok := s.snapshots[key]; ok {
		return fmt.Errorf("snapshot for %s already saved", key)
	}
	s.snapshots[key] = stats
	return nil
}

// GetSnapshot returns the snapshot for a month key.
func (s *Store) GetSnapshot(key string) (model.MonthlyStats, bool) {
	stats, ok := s.snapshots[key]
	return stats, ok
}

// Snapshots returns all saved snapshots sorted by month key.
func (s *Store) Snapshots() []Snapshot {
	keys := make([]string, 0, len(s.snapshots))
	for k := range s.snapshots {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Snapshot, 0, len(keys))
	for _, k := range keys {
		out = append(out, Snapshot{Key: k, Stats: s.snapshots[k]})
	}
	return out
}
