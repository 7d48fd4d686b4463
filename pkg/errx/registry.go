package errx

import (
	"fmt"
	"sync"
)

// definition is a registered error template
type definition struct {
	Type       Type
	HTTPStatus int
	Message    string
}

// Registry holds the error codes of one domain package.
// Codes are namespaced with the registry prefix, e.g. "RESUME.NOT_FOUND".
type Registry struct {
	prefix string
	mu     sync.RWMutex
	codes  map[string]definition
}

// NewRegistry creates a registry for the given prefix
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		codes:  make(map[string]definition),
	}
}

// Register adds a code and returns its fully qualified name.
// Registering the same code twice panics; codes are declared at package init.
func (r *Registry) Register(code string, t Type, httpStatus int, message string) string {
	full := r.prefix + "." + code

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.codes[full]; exists {
		panic(fmt.Sprintf("errx: duplicate error code %s", full))
	}
	r.codes[full] = definition{Type: t, HTTPStatus: httpStatus, Message: message}
	return full
}

// New creates an error from a registered code
func (r *Registry) New(code string) *Error {
	r.mu.RLock()
	def, ok := r.codes[code]
	r.mu.RUnlock()

	if !ok {
		return New(fmt.Sprintf("unregistered error code %s", code), TypeInternal)
	}

	return &Error{
		Code:       code,
		Type:       def.Type,
		Message:    def.Message,
		HTTPStatus: def.HTTPStatus,
	}
}

// NewWithCause creates an error from a registered code wrapping err
func (r *Registry) NewWithCause(code string, err error) *Error {
	return r.New(code).WithCause(err)
}

// NewWithMessage creates an error from a registered code with a custom message
func (r *Registry) NewWithMessage(code string, message string) *Error {
	e := r.New(code)
	e.Message = message
	return e
}

// Codes lists the registered codes
func (r *Registry) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.codes))
	for code := range r.codes {
		out = append(out, code)
	}
	return out
}
