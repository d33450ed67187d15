// Package leaderboard persists the best endless-mode scores.
package leaderboard

import (
	"slices"
	"sync"

	"github.com/tomz197/spaceimpact/internal/loop/config"
)

// Store holds a leaderboard. Load never fails: missing or unreadable data
// is an empty board. Add merges a score and persists the result as one
// step, so concurrent games cannot drop each other's scores. It returns the
// merged board even when persisting fails.
type Store interface {
	Load() []int
	Add(score int) ([]int, error)
}

// Merge inserts score into board and returns the top entries, highest first.
// board is not modified.
func Merge(board []int, score int) []int {
	merged := make([]int, 0, len(board)+1)
	merged = append(merged, board...)
	merged = append(merged, score)
	return normalize(merged)
}

// normalize sorts scores descending and truncates to the board size.
func normalize(scores []int) []int {
	slices.SortStableFunc(scores, func(a, b int) int { return b - a })
	if len(scores) > config.LeaderboardSize {
		scores = scores[:config.LeaderboardSize]
	}
	return scores
}

// MemoryStore keeps the board in memory. The zero value is ready to use.
type MemoryStore struct {
	mu     sync.Mutex
	scores []int
}

// NewMemoryStore creates a store seeded with scores.
func NewMemoryStore(scores ...int) *MemoryStore {
	return &MemoryStore{scores: normalize(slices.Clone(scores))}
}

// Load returns a copy of the stored board.
func (m *MemoryStore) Load() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.scores)
}

// Save replaces the stored board.
func (m *MemoryStore) Save(scores []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores = slices.Clone(scores)
	return nil
}

// Add merges score into the board.
func (m *MemoryStore) Add(score int) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores = Merge(m.scores, score)
	return slices.Clone(m.scores), nil
}
