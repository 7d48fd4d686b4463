package store

import (
	"context"
	"net/http"

	"github.com/Abraxas-365/talentdesk/pkg/errx"
	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
)

// Entity is a value record stored in one collection
type Entity[T any] interface {
	filter.Recorder
	GetID() kernel.RecordID
	// WithID returns a copy carrying the given identifier
	WithID(id kernel.RecordID) T
}

// Record is an audited entity whose input is trimmed before validation
type Record[T any] interface {
	Entity[T]
	AuditInfo() kernel.Audit
	WithAudit(a kernel.Audit) T
	Normalized() T
}

// Repository owns the ordered collection of one entity for the whole process.
// List returns records in insertion order; identifiers are never reused.
type Repository[T Entity[T]] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id kernel.RecordID) (T, error)
	// Create assigns the next identifier and appends the record
	Create(ctx context.Context, item T) (T, error)
	// Update replaces the record in place, keeping its position
	Update(ctx context.Context, item T) (T, error)
	Delete(ctx context.Context, id kernel.RecordID) error
	// Seed appends records keeping their identifiers
	Seed(ctx context.Context, items ...T) error
	Count(ctx context.Context) (int, error)
	Entity() string
}

// ============================================================================
// Error Registry
// ============================================================================

var ErrRegistry = errx.NewRegistry("STORE")

var (
	CodeNotFound    = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Record not found")
	CodeDuplicateID = ErrRegistry.Register("DUPLICATE_ID", errx.TypeConflict, http.StatusConflict, "Record identifier already exists")
	CodeMissingID   = ErrRegistry.Register("MISSING_ID", errx.TypeValidation, http.StatusBadRequest, "Record has no identifier")
)

func ErrNotFound(entity string, id kernel.RecordID) *errx.Error {
	return ErrRegistry.New(CodeNotFound).
		WithDetail("entity", entity).
		WithDetail("id", int64(id))
}

func ErrDuplicateID(entity string, id kernel.RecordID) *errx.Error {
	return ErrRegistry.New(CodeDuplicateID).
		WithDetail("entity", entity).
		WithDetail("id", int64(id))
}

func ErrMissingID(entity string) *errx.Error {
	return ErrRegistry.New(CodeMissingID).WithDetail("entity", entity)
}

// IsNotFound reports whether err is a missing record
func IsNotFound(err error) bool {
	return errx.HasCode(err, CodeNotFound)
}

// Find loads a collection and filters it with criteria
func Find[T Entity[T]](ctx context.Context, repo Repository[T], c filter.Criteria) ([]T, error) {
	items, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(items, c), nil
}
