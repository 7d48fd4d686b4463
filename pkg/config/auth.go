package config

import "time"

type AuthConfig struct {
	// Enabled requires a bearer token on /api routes. When off every request
	// acts as the anonymous "Current User" with full access.
	Enabled bool
	JWT     JWTConfig
	Cookie  CookieConfig
}

type JWTConfig struct {
	SecretKey      string
	AccessTokenTTL time.Duration
	Issuer         string
	Audience       []string
}

type CookieConfig struct {
	AccessTokenName string
}

func loadAuthConfig() AuthConfig {
	return AuthConfig{
		Enabled: getEnvBool("AUTH_ENABLED", false),
		JWT: JWTConfig{
			SecretKey:      getEnv("JWT_SECRET_KEY", ""),
			AccessTokenTTL: getEnvDuration("JWT_ACCESS_TOKEN_TTL", 8*time.Hour),
			Issuer:         getEnv("JWT_ISSUER", "talentdesk"),
			Audience:       getEnvStringSlice("JWT_AUDIENCE", []string{"talentdesk-api"}),
		},
		Cookie: CookieConfig{
			AccessTokenName: getEnv("COOKIE_ACCESS_TOKEN_NAME", "access_token"),
		},
	}
}
