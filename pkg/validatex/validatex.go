package validatex

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/Abraxas-365/talentdesk/pkg/errx"
	"github.com/go-playground/validator/v10"
)

var ErrRegistry = errx.NewRegistry("VALIDATION")

var CodeInvalidInput = ErrRegistry.Register("INVALID_INPUT", errx.TypeValidation, http.StatusBadRequest, "Required fields are missing or invalid")

// Validate is shared by every request DTO and entity
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names ("businessUnit") instead of Go names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Struct validates v and converts failures into a validation error whose
// details map each offending field to the failed rule.
func Struct(v any) error {
	err := Validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errx.Wrap(err, "failed to validate input", errx.TypeInternal)
	}

	e := ErrRegistry.New(CodeInvalidInput)
	for _, fe := range verrs {
		e.WithDetail(fieldPath(fe), rule(fe))
	}
	return e
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func rule(fe validator.FieldError) string {
	if fe.Param() != "" {
		return fe.Tag() + "=" + fe.Param()
	}
	return fe.Tag()
}

// Fields lists the fields reported by a validation error
func Fields(err error) []string {
	e, ok := errx.As(err)
	if !ok || e.Code != CodeInvalidInput {
		return nil
	}
	out := make([]string, 0, len(e.Details))
	for k := range e.Details {
		out = append(out, k)
	}
	return out
}
