package config

import "time"

type AIConfig struct {
	OpenAIAPIKey       string
	ChatModel          string
	EmbeddingModel     string
	TranscriptionModel string
	Timeout            time.Duration
}

// Enabled reports whether an AI provider is configured
func (a AIConfig) Enabled() bool {
	return a.OpenAIAPIKey != ""
}

func loadAIConfig() AIConfig {
	return AIConfig{
		OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
		ChatModel:          getEnv("OPENAI_CHAT_MODEL", "gpt-4o-mini"),
		EmbeddingModel:     getEnv("OPENAI_EMBEDDING_MODEL", "text-embedding-3-small"),
		TranscriptionModel: getEnv("OPENAI_TRANSCRIPTION_MODEL", "whisper-1"),
		Timeout:            getEnvDuration("OPENAI_TIMEOUT", 60*time.Second),
	}
}
