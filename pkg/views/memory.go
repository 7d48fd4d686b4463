package views

import (
	"context"
	"sort"
	"sync"
	"time"
)

type memoryEntry struct {
	view      View
	expiresAt time.Time
}

// MemoryRepository keeps views in process, each expiring ttl after it was saved
type MemoryRepository struct {
	mu    sync.RWMutex
	ttl   time.Duration
	now   func() time.Time
	views map[string]memoryEntry
}

var _ Repository = (*MemoryRepository)(nil)

// NewMemoryRepository creates the repository; ttl <= 0 keeps views forever
func NewMemoryRepository(ttl time.Duration) *MemoryRepository {
	return &MemoryRepository{
		ttl:   ttl,
		now:   time.Now,
		views: make(map[string]memoryEntry),
	}
}

func (r *MemoryRepository) Save(_ context.Context, v View) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := memoryEntry{view: v}
	if r.ttl > 0 {
		entry.expiresAt = r.now().Add(r.ttl)
	}
	r.views[v.ID] = entry
	return nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (View, error) {
	r.mu.RLock()
	entry, ok := r.views[id]
	r.mu.RUnlock()

	if !ok || r.expired(entry) {
		return View{}, ErrNotFound(id)
	}
	return entry.view, nil
}

// List returns the live views of a screen, oldest first
func (r *MemoryRepository) List(_ context.Context, screen string) ([]View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]View, 0)
	for id, entry := range r.views {
		if r.expired(entry) {
			delete(r.views, id)
			continue
		}
		if entry.view.Screen == screen {
			out = append(out, entry.view)
		}
	}
	sortViews(out)
	return out, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.views[id]
	if !ok || r.expired(entry) {
		return ErrNotFound(id)
	}
	delete(r.views, id)
	return nil
}

func (r *MemoryRepository) expired(e memoryEntry) bool {
	return !e.expiresAt.IsZero() && !r.now().Before(e.expiresAt)
}

func sortViews(vs []View) {
	sort.SliceStable(vs, func(i, j int) bool {
		if vs[i].CreatedAt.Equal(vs[j].CreatedAt) {
			return vs[i].Name < vs[j].Name
		}
		return vs[i].CreatedAt.Before(vs[j].CreatedAt)
	})
}
