package auth

import (
	"strings"

	"github.com/Abraxas-365/talentdesk/pkg/iam/scopes"
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

const localsKey = "auth"

// Middleware attaches an AuthContext to every request and guards routes by scope
type Middleware struct {
	tokenService TokenService
	enabled      bool
	cookieName   string
}

// NewMiddleware creates the auth middleware. With enabled=false requests run as the
// anonymous user holding every scope.
func NewMiddleware(tokenService TokenService, enabled bool, cookieName string) *Middleware {
	if cookieName == "" {
		cookieName = "access_token"
	}
	return &Middleware{
		tokenService: tokenService,
		enabled:      enabled,
		cookieName:   cookieName,
	}
}

// Anonymous is the identity used while authentication is disabled
func Anonymous() *kernel.AuthContext {
	return &kernel.AuthContext{
		Subject: "anonymous",
		Name:    kernel.AnonymousActor,
		Role:    "admin",
		Scopes:  []string{scopes.ScopeAll},
	}
}

func (m *Middleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !m.enabled {
			c.Locals(localsKey, Anonymous())
			return c.Next()
		}

		token := m.extractToken(c)
		if token == "" {
			return ErrUnauthorized()
		}

		claims, err := m.tokenService.ValidateAccessToken(token)
		if err != nil {
			return err
		}

		c.Locals(localsKey, &kernel.AuthContext{
			Subject: claims.Subject,
			Email:   claims.Email,
			Name:    claims.Name,
			Role:    claims.Role,
			Scopes:  claims.Scopes,
		})
		return c.Next()
	}
}

func (m *Middleware) extractToken(c *fiber.Ctx) string {
	if header := c.Get(fiber.HeaderAuthorization); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && parts[1] != "" {
			return parts[1]
		}
	}
	return c.Cookies(m.cookieName)
}

// RequireScope - Requires a specific scope
func (m *Middleware) RequireScope(scope string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authContext, ok := GetAuthContext(c)
		if !ok {
			return ErrUnauthorized()
		}
		if !authContext.HasScope(scope) {
			return ErrForbidden(scope)
		}
		return c.Next()
	}
}

// RequireAnyScope - Requires any of the provided scopes
func (m *Middleware) RequireAnyScope(required ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authContext, ok := GetAuthContext(c)
		if !ok {
			return ErrUnauthorized()
		}
		if !authContext.HasAnyScope(required...) {
			return ErrForbidden(required...)
		}
		return c.Next()
	}
}

// RequireAllScopes - Requires ALL specified scopes
func (m *Middleware) RequireAllScopes(required ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authContext, ok := GetAuthContext(c)
		if !ok {
			return ErrUnauthorized()
		}
		if !authContext.HasAllScopes(required...) {
			return ErrForbidden(required...)
		}
		return c.Next()
	}
}

// RequireAdmin - Only "*" or "admin:*" holders
func (m *Middleware) RequireAdmin() fiber.Handler {
	return m.RequireAnyScope(scopes.ScopeAll, scopes.ScopeAdminAll)
}

// GetAuthContext helper to extract auth context from Fiber
func GetAuthContext(c *fiber.Ctx) (*kernel.AuthContext, bool) {
	authContext, ok := c.Locals(localsKey).(*kernel.AuthContext)
	return authContext, ok && authContext != nil && authContext.IsValid()
}

// Actor is the name written into audit fields for this request
func Actor(c *fiber.Ctx) string {
	authContext, _ := c.Locals(localsKey).(*kernel.AuthContext)
	return authContext.Actor()
}
