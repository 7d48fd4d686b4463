package storesrv

import (
	"context"
	"sync"
	"time"

	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
	"github.com/Abraxas-365/talentdesk/pkg/logx"
	"github.com/Abraxas-365/talentdesk/pkg/metrics"
	"github.com/Abraxas-365/talentdesk/pkg/store"
	"github.com/Abraxas-365/talentdesk/pkg/validatex"
)

// Hook adjusts a record before it is validated and stored
type Hook[T any] func(ctx context.Context, item T) (T, error)

// Service proporciona las operaciones CRUD y de filtrado de una colección.
// Writes are serialized so every read-modify-write sees the latest record.
type Service[T store.Record[T]] struct {
	mu        sync.Mutex
	repo      store.Repository[T]
	adapter   *filter.Adapter
	now       func() time.Time
	onCreate  []Hook[T]
	onUpdate  []Hook[T]
	onCreated []func(ctx context.Context, item T)
	onDelete  []func(ctx context.Context, item T)
	checks    []func(existing, incoming T) error
	merge     func(existing, incoming T) T
}

type Option[T store.Record[T]] func(*Service[T])

// WithCreateHook runs h on every new record, after trimming
func WithCreateHook[T store.Record[T]](h Hook[T]) Option[T] {
	return func(s *Service[T]) { s.onCreate = append(s.onCreate, h) }
}

// WithUpdateHook runs h on every replacement, after trimming
func WithUpdateHook[T store.Record[T]](h Hook[T]) Option[T] {
	return func(s *Service[T]) { s.onUpdate = append(s.onUpdate, h) }
}

// WithCreatedHook runs fn with the stored record once Create succeeds
func WithCreatedHook[T store.Record[T]](fn func(ctx context.Context, item T)) Option[T] {
	return func(s *Service[T]) { s.onCreated = append(s.onCreated, fn) }
}

// WithUpdateCheck lets fn refuse a replacement by looking at the stored record
func WithUpdateCheck[T store.Record[T]](fn func(existing, incoming T) error) Option[T] {
	return func(s *Service[T]) { s.checks = append(s.checks, fn) }
}

// WithDeleteHook runs fn with the removed record once it is gone
func WithDeleteHook[T store.Record[T]](fn func(ctx context.Context, item T)) Option[T] {
	return func(s *Service[T]) { s.onDelete = append(s.onDelete, fn) }
}

// WithMerge carries server owned fields of the stored record into a replacement
func WithMerge[T store.Record[T]](fn func(existing, incoming T) T) Option[T] {
	return func(s *Service[T]) { s.merge = fn }
}

func WithClock[T store.Record[T]](now func() time.Time) Option[T] {
	return func(s *Service[T]) { s.now = now }
}

// NewService crea el servicio de una colección
func NewService[T store.Record[T]](repo store.Repository[T], adapter *filter.Adapter, opts ...Option[T]) *Service[T] {
	s := &Service[T]{
		repo:    repo,
		adapter: adapter,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service[T]) Entity() string {
	return s.adapter.Entity()
}

func (s *Service[T]) Adapter() *filter.Adapter {
	return s.adapter
}

func (s *Service[T]) Now() time.Time {
	return s.now()
}

// List devuelve los registros que cumplen los criterios, en orden de inserción
func (s *Service[T]) List(ctx context.Context, c filter.Criteria) ([]T, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	out := filter.Apply(items, c)
	metrics.RecordFilter(s.Entity(), len(items), len(out), time.Since(start))
	return out, nil
}

// Options rellena los controles de filtro con los registros actuales
func (s *Service[T]) Options(ctx context.Context) ([]filter.FieldOptions, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.adapter.Options(filter.Records(items)), nil
}

func (s *Service[T]) Suggest(ctx context.Context, field, input string, limit int) ([]string, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.adapter.Suggest(filter.Records(items), field, input, limit)
}

func (s *Service[T]) Get(ctx context.Context, id kernel.RecordID) (T, error) {
	return s.repo.Get(ctx, id)
}

// Create valida los campos requeridos y agrega el registro al final de la colección.
// Create hooks run under the write lock, so a hook may look for duplicates.
func (s *Service[T]) Create(ctx context.Context, actor string, item T) (T, error) {
	var zero T

	created, err := s.create(ctx, actor, item)
	if err != nil {
		return zero, err
	}

	metrics.RecordMutation(s.Entity(), "create")
	logx.WithFields(logx.Fields{"entity": s.Entity(), "id": created.GetID(), "actor": actor}).Info("record created")

	for _, fn := range s.onCreated {
		fn(ctx, created)
	}
	return created, nil
}

func (s *Service[T]) create(ctx context.Context, actor string, item T) (T, error) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.prepare(ctx, item, s.onCreate)
	if err != nil {
		return zero, err
	}

	item = item.WithAudit(kernel.Created(actor, s.now()))
	return s.repo.Create(ctx, item)
}

// Update reemplaza el registro en su lugar conservando los datos de creación
func (s *Service[T]) Update(ctx context.Context, actor string, id kernel.RecordID, item T) (T, error) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return zero, err
	}

	for _, check := range s.checks {
		if err := check(existing, item); err != nil {
			return zero, err
		}
	}
	if s.merge != nil {
		item = s.merge(existing, item)
	}
	item, err = s.prepare(ctx, item.WithID(id), s.onUpdate)
	if err != nil {
		return zero, err
	}

	item = item.WithAudit(existing.AuditInfo().Touched(actor, s.now()))
	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return zero, err
	}

	metrics.RecordMutation(s.Entity(), "update")
	return updated, nil
}

// Mutate applies fn to the stored record and saves the result
func (s *Service[T]) Mutate(ctx context.Context, actor string, id kernel.RecordID, fn func(T) T) (T, error) {
	return s.Change(ctx, actor, id, func(item T) (T, error) { return fn(item), nil })
}

// Change is Mutate for edits that can be refused; nothing is saved when fn fails
func (s *Service[T]) Change(ctx context.Context, actor string, id kernel.RecordID, fn func(T) (T, error)) (T, error) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return zero, err
	}

	changed, err := fn(existing)
	if err != nil {
		return zero, err
	}
	if err := validatex.Struct(changed); err != nil {
		return zero, err
	}
	changed = changed.WithID(id).WithAudit(existing.AuditInfo().Touched(actor, s.now()))
	updated, err := s.repo.Update(ctx, changed)
	if err != nil {
		return zero, err
	}

	metrics.RecordMutation(s.Entity(), "update")
	return updated, nil
}

func (s *Service[T]) Delete(ctx context.Context, id kernel.RecordID) error {
	removed, err := s.remove(ctx, id)
	if err != nil {
		return err
	}
	metrics.RecordMutation(s.Entity(), "delete")
	logx.WithFields(logx.Fields{"entity": s.Entity(), "id": id}).Info("record deleted")

	for _, fn := range s.onDelete {
		fn(ctx, removed)
	}
	return nil
}

func (s *Service[T]) remove(ctx context.Context, id kernel.RecordID) (T, error) {
	var removed T
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.onDelete) > 0 {
		var err error
		if removed, err = s.repo.Get(ctx, id); err != nil {
			return removed, err
		}
	}
	return removed, s.repo.Delete(ctx, id)
}

func (s *Service[T]) prepare(ctx context.Context, item T, hooks []Hook[T]) (T, error) {
	item = item.Normalized()
	for _, h := range hooks {
		var err error
		if item, err = h(ctx, item); err != nil {
			return item, err
		}
	}
	if err := validatex.Struct(item); err != nil {
		return item, err
	}
	return item, nil
}
