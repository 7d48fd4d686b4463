package filter

import (
	"net/http"
	"strings"

	"github.com/Abraxas-365/talentdesk/pkg/errx"
)

// ============================================================================
// Error Registry
// ============================================================================

var ErrRegistry = errx.NewRegistry("FILTER")

var (
	CodeUnknownKind  = ErrRegistry.Register("UNKNOWN_KIND", errx.TypeValidation, http.StatusBadRequest, "Unknown criterion kind")
	CodeMissingField = ErrRegistry.Register("MISSING_FIELD", errx.TypeValidation, http.StatusBadRequest, "Criterion does not name a field")
	CodeMissingValue = ErrRegistry.Register("MISSING_VALUE", errx.TypeValidation, http.StatusBadRequest, "Criterion is missing its value")
	CodeInvalidRange = ErrRegistry.Register("INVALID_RANGE", errx.TypeValidation, http.StatusBadRequest, "Numeric range is invalid")
	CodeUnknownField = ErrRegistry.Register("UNKNOWN_FIELD", errx.TypeValidation, http.StatusBadRequest, "Field is not filterable for this entity")
	CodeInvalidQuery = ErrRegistry.Register("INVALID_QUERY", errx.TypeValidation, http.StatusBadRequest, "Filter parameter could not be parsed")
)

func ErrUnknownKind(kind Kind) *errx.Error {
	return ErrRegistry.New(CodeUnknownKind).WithDetail("kind", string(kind))
}

func ErrMissingField(kind Kind) *errx.Error {
	return ErrRegistry.New(CodeMissingField).WithDetail("kind", string(kind))
}

func ErrMissingValue(kind Kind, field string) *errx.Error {
	return ErrRegistry.New(CodeMissingValue).
		WithDetail("kind", string(kind)).
		WithDetail("field", field)
}

func ErrInvalidRange(field string, r Range) *errx.Error {
	return ErrRegistry.New(CodeInvalidRange).
		WithDetail("field", field).
		WithDetail("min", r.Min).
		WithDetail("max", r.Max)
}

func ErrUnknownField(entity, field string) *errx.Error {
	return ErrRegistry.New(CodeUnknownField).
		WithDetail("entity", entity).
		WithDetail("field", field)
}

func ErrInvalidQuery(param, value string) *errx.Error {
	return ErrRegistry.New(CodeInvalidQuery).
		WithDetail("param", param).
		WithDetail("value", value)
}

// IsConfigurationError reports whether err was raised while building criteria
func IsConfigurationError(err error) bool {
	e, ok := errx.As(err)
	return ok && e.Type == errx.TypeValidation && strings.HasPrefix(e.Code, "FILTER.")
}
