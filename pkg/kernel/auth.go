package kernel

import (
	"slices"
	"strings"
)

// AnonymousActor is recorded in audit fields when no identity is attached
const AnonymousActor = "Current User"

// AuthContext is the identity attached to a request
type AuthContext struct {
	Subject string   `json:"sub"`
	Email   string   `json:"email,omitempty"`
	Name    string   `json:"name,omitempty"`
	Role    string   `json:"role,omitempty"`
	Scopes  []string `json:"scopes"`
}

func (a *AuthContext) IsValid() bool {
	return a != nil && a.Subject != ""
}

// Actor is the display name written into audit fields
func (a *AuthContext) Actor() string {
	if a == nil {
		return AnonymousActor
	}
	if a.Name != "" {
		return a.Name
	}
	if a.Email != "" {
		return a.Email
	}
	if a.Subject != "" {
		return a.Subject
	}
	return AnonymousActor
}

// HasScope supports "*" and "<resource>:*" wildcards
func (a *AuthContext) HasScope(scope string) bool {
	if a == nil {
		return false
	}
	for _, s := range a.Scopes {
		if s == scope || s == "*" {
			return true
		}
		if prefix, ok := strings.CutSuffix(s, ":*"); ok && strings.HasPrefix(scope, prefix+":") {
			return true
		}
	}
	return false
}

func (a *AuthContext) HasAnyScope(scopes ...string) bool {
	return slices.ContainsFunc(scopes, a.HasScope)
}

func (a *AuthContext) HasAllScopes(scopes ...string) bool {
	for _, s := range scopes {
		if !a.HasScope(s) {
			return false
		}
	}
	return true
}
