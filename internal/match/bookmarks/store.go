// Package bookmarks tracks per-session suggestion marks: expanded detail
// rows and the save-for-later list. The two sets have different lifecycles,
// expansion marks are scoped to one search and cleared on reset while saved
// marks survive resets.
package bookmarks

import (
	"context"
	"sort"
	"sync"
)

// Store persists suggestion marks for a session.
type Store interface {
	// ToggleExpanded flips the expanded mark for a suggestion and returns the
	// new state.
	ToggleExpanded(ctx context.Context, sessionID, suggestionID string) (bool, error)
	// ToggleSaved flips the saved-for-later mark and returns the new state.
	ToggleSaved(ctx context.Context, sessionID, suggestionID string) (bool, error)
	// Expanded lists expanded suggestion ids in sorted order.
	Expanded(ctx context.Context, sessionID string) ([]string, error)
	// Saved lists saved suggestion ids in sorted order.
	Saved(ctx context.Context, sessionID string) ([]string, error)
	// ClearExpanded drops all expansion marks for the session. Saved marks
	// are never cleared here.
	ClearExpanded(ctx context.Context, sessionID string) error
}

// MemoryStore is the in-process fallback used when Redis is disabled.
type MemoryStore struct {
	mu       sync.Mutex
	expanded map[string]map[string]bool
	saved    map[string]map[string]bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		expanded: make(map[string]map[string]bool),
		saved:    make(map[string]map[string]bool),
	}
}

func toggle(sets map[string]map[string]bool, sessionID, suggestionID string) bool {
	set := sets[sessionID]
	if set == nil {
		set = make(map[string]bool)
		sets[sessionID] = set
	}
	if set[suggestionID] {
		delete(set, suggestionID)
		return false
	}
	set[suggestionID] = true
	return true
}

func members(sets map[string]map[string]bool, sessionID string) []string {
	out := make([]string, 0, len(sets[sessionID]))
	for id := range sets[sessionID] {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (s *MemoryStore) ToggleExpanded(_ context.Context, sessionID, suggestionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return toggle(s.expanded, sessionID, suggestionID), nil
}

func (s *MemoryStore) ToggleSaved(_ context.Context, sessionID, suggestionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return toggle(s.saved, sessionID, suggestionID), nil
}

func (s *MemoryStore) Expanded(_ context.Context, sessionID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return members(s.expanded, sessionID), nil
}

func (s *MemoryStore) Saved(_ context.Context, sessionID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return members(s.saved, sessionID), nil
}

func (s *MemoryStore) ClearExpanded(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.expanded, sessionID)
	return nil
}
