package config

type ServerConfig struct {
	Port        int
	Environment string
	LogLevel    string
	BaseURL     string
	CORSOrigins []string
	// BodyLimit bounds request bodies, uploads included
	BodyLimit int
	// SeedData loads the demo collections on startup
	SeedData bool
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:        getEnvInt("SERVER_PORT", 8080),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		CORSOrigins: getEnvStringSlice("CORS_ORIGINS", []string{"http://localhost:3000"}),
		BodyLimit:   getEnvInt("SERVER_BODY_LIMIT", 12*1024*1024),
		SeedData:    getEnvBool("SEED_DATA", true),
	}
}
