package auth

import (
	"net/http"
	"time"

	"github.com/Abraxas-365/talentdesk/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("AUTH")

var (
	CodeUnauthorized          = ErrRegistry.Register("UNAUTHORIZED", errx.TypeUnauthorized, http.StatusUnauthorized, "Authentication required")
	CodeForbidden             = ErrRegistry.Register("FORBIDDEN", errx.TypeAuthorization, http.StatusForbidden, "Insufficient permissions")
	CodeTokenGenerationFailed = ErrRegistry.Register("TOKEN_GENERATION_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to generate token")
	CodeTokenValidationFailed = ErrRegistry.Register("TOKEN_VALIDATION_FAILED", errx.TypeUnauthorized, http.StatusUnauthorized, "Invalid or expired token")
)

func ErrUnauthorized() *errx.Error {
	return ErrRegistry.New(CodeUnauthorized)
}

func ErrForbidden(required ...string) *errx.Error {
	return ErrRegistry.New(CodeForbidden).WithDetail("required_scopes", required)
}

func ErrTokenGenerationFailed() *errx.Error {
	return ErrRegistry.New(CodeTokenGenerationFailed)
}

func ErrTokenValidationFailed() *errx.Error {
	return ErrRegistry.New(CodeTokenValidationFailed)
}

// TokenClaims son los datos de identidad extraídos de un token válido
type TokenClaims struct {
	Subject   string
	Email     string
	Name      string
	Role      string
	Scopes    []string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Identity is the input for issuing a token
type Identity struct {
	Subject string
	Email   string
	Name    string
	Role    string
	Scopes  []string
}

// TokenService emite y valida tokens de acceso
type TokenService interface {
	GenerateAccessToken(id Identity) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}
