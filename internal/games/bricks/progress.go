package bricks

import "sync"

// Progress is the persisted part of a session.
type Progress struct {
	Score int `json:"score"`
	Level int `json:"level"`
}

// Normalize replaces out-of-range values with the fresh-start defaults.
func (p Progress) Normalize() Progress {
	if p.Score < 0 {
		p.Score = 0
	}
	if p.Level < 1 {
		p.Level = 1
	}
	return p
}

// ProgressStore persists progress between sessions.
// LoadProgress returns false when nothing usable is stored.
type ProgressStore interface {
	SaveProgress(p Progress) error
	LoadProgress() (Progress, bool)
}

// MemoryStore keeps progress in memory. It is used when no database is
// configured.
type MemoryStore struct {
	mu    sync.Mutex
	saved *Progress
	Saves int // Number of successful saves
}

var _ ProgressStore = (*MemoryStore)(nil)

// SaveProgress records p.
func (m *MemoryStore) SaveProgress(p Progress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = &p
	m.Saves++
	return nil
}

// LoadProgress returns the last saved progress.
func (m *MemoryStore) LoadProgress() (Progress, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saved == nil {
		return Progress{}, false
	}
	return *m.saved, true
}

// ClearProgress forgets the saved progress.
func (m *MemoryStore) ClearProgress() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = nil
	return nil
}
