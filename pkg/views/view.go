package views

import (
	"context"
	"net/http"
	"time"

	"github.com/Abraxas-365/talentdesk/pkg/errx"
	"github.com/Abraxas-365/talentdesk/pkg/filter"
)

var ErrRegistry = errx.NewRegistry("VIEWS")

var (
	CodeNotFound      = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Saved view not found")
	CodeUnknownScreen = ErrRegistry.Register("UNKNOWN_SCREEN", errx.TypeValidation, http.StatusBadRequest, "Screen does not support saved views")
	CodeMissingName   = ErrRegistry.Register("MISSING_NAME", errx.TypeValidation, http.StatusBadRequest, "View name is required")
	CodeStoreFailed   = ErrRegistry.Register("STORE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Saved view storage failed")
)

func ErrNotFound(id string) *errx.Error {
	return ErrRegistry.New(CodeNotFound).WithDetail("id", id)
}

func ErrUnknownScreen(screen string) *errx.Error {
	return ErrRegistry.New(CodeUnknownScreen).WithDetail("screen", screen)
}

// View is a named set of criteria saved for one list screen
type View struct {
	ID        string        `json:"id"`
	Screen    string        `json:"screen"`
	Name      string        `json:"name"`
	Criteria  []filter.Spec `json:"criteria"`
	CreatedBy string        `json:"createdBy"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Repository stores saved views. Implementations may expire views.
type Repository interface {
	Save(ctx context.Context, v View) error
	Get(ctx context.Context, id string) (View, error)
	List(ctx context.Context, screen string) ([]View, error)
	Delete(ctx context.Context, id string) error
}
