package store

import (
	"context"
	"slices"
	"sync"

	"github.com/Abraxas-365/talentdesk/pkg/kernel"
)

// MemoryRepository keeps a collection in process memory; state is lost on restart
type MemoryRepository[T Entity[T]] struct {
	entity string
	mu     sync.RWMutex
	items  []T
	index  map[kernel.RecordID]int
	seq    *kernel.Sequence
}

func NewMemoryRepository[T Entity[T]](entity string) *MemoryRepository[T] {
	return &MemoryRepository[T]{
		entity: entity,
		index:  make(map[kernel.RecordID]int),
		seq:    kernel.NewSequence(0),
	}
}

func (r *MemoryRepository[T]) Entity() string {
	return r.entity
}

func (r *MemoryRepository[T]) List(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.items), nil
}

func (r *MemoryRepository[T]) Get(_ context.Context, id kernel.RecordID) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		var zero T
		return zero, ErrNotFound(r.entity, id)
	}
	return r.items[i], nil
}

func (r *MemoryRepository[T]) Create(_ context.Context, item T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := item.WithID(r.seq.Next())
	r.index[created.GetID()] = len(r.items)
	r.items = append(r.items, created)
	return created, nil
}

func (r *MemoryRepository[T]) Update(_ context.Context, item T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[item.GetID()]
	if !ok {
		var zero T
		return zero, ErrNotFound(r.entity, item.GetID())
	}
	r.items[i] = item
	return item, nil
}

func (r *MemoryRepository[T]) Delete(_ context.Context, id kernel.RecordID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return ErrNotFound(r.entity, id)
	}

	r.items = slices.Delete(r.items, i, i+1)
	delete(r.index, id)
	for j := i; j < len(r.items); j++ {
		r.index[r.items[j].GetID()] = j
	}
	return nil
}

func (r *MemoryRepository[T]) Seed(_ context.Context, items ...T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		id := item.GetID()
		if id.IsZero() {
			item = item.WithID(r.seq.Next())
			id = item.GetID()
		}
		if _, exists := r.index[id]; exists {
			return ErrDuplicateID(r.entity, id)
		}
		r.seq.Observe(id)
		r.index[id] = len(r.items)
		r.items = append(r.items, item)
	}
	return nil
}

func (r *MemoryRepository[T]) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}
