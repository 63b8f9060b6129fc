package storage

import (
	"encoding/json"
	"fmt"

	"github.com/vovakirdan/tui-bricks/internal/games/bricks"
)

// DefaultSlot is the save key for local play.
const DefaultSlot = "brickBreakerState"

// SlotKey returns the save key for a player. Remote players each get their
// own slot; an empty name maps to the local slot.
func SlotKey(player string) string {
	if player == "" {
		return DefaultSlot
	}
	return "progress:" + player
}

// ProgressSlot stores one player's progress as a JSON blob.
type ProgressSlot struct {
	store *Store
	key   string
}

// Slot returns the progress slot stored under key.
func (s *Store) Slot(key string) *ProgressSlot {
	return &ProgressSlot{store: s, key: key}
}

// SlotFor returns the progress slot of a player.
func (s *Store) SlotFor(player string) *ProgressSlot {
	return s.Slot(SlotKey(player))
}

// Key returns the slot's save key.
func (p *ProgressSlot) Key() string {
	return p.key
}

// SaveProgress implements bricks.ProgressStore.
func (p *ProgressSlot) SaveProgress(prog bricks.Progress) error {
	data, err := json.Marshal(prog)
	if err != nil {
		return fmt.Errorf("storage: cannot encode progress: %w", err)
	}
	return p.store.SaveBlob(p.key, data)
}

// LoadProgress implements bricks.ProgressStore. Missing fields take their
// fresh-start defaults; unreadable data counts as no save.
func (p *ProgressSlot) LoadProgress() (bricks.Progress, bool) {
	data, ok, err := p.store.LoadBlob(p.key)
	if err != nil || !ok {
		return bricks.Progress{}, false
	}

	var prog *bricks.Progress
	if err := json.Unmarshal(data, &prog); err != nil || prog == nil {
		return bricks.Progress{}, false
	}
	return prog.Normalize(), true
}

// HasProgress reports whether a usable save exists.
func (p *ProgressSlot) HasProgress() bool {
	_, ok := p.LoadProgress()
	return ok
}

// ClearProgress deletes the slot.
func (p *ProgressSlot) ClearProgress() error {
	return p.store.DeleteBlob(p.key)
}

var _ bricks.ProgressStore = (*ProgressSlot)(nil)
