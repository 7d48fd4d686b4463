package llm

// ChatOptions contains options for generating chat completions
type ChatOptions struct {
	Model               string
	Temperature         float32
	MaxCompletionTokens int
	JSONMode            bool
	User                string
}

type Option func(*ChatOptions)

func WithModel(model string) Option {
	return func(o *ChatOptions) {
		o.Model = model
	}
}

// WithTemperature sets the sampling temperature
func WithTemperature(temp float32) Option {
	return func(o *ChatOptions) {
		o.Temperature = temp
	}
}

func WithMaxCompletionTokens(tokens int) Option {
	return func(o *ChatOptions) {
		o.MaxCompletionTokens = tokens
	}
}

// WithJSONMode asks the model for a single JSON object
func WithJSONMode() Option {
	return func(o *ChatOptions) {
		o.JSONMode = true
	}
}

// WithUser sets the end-user identifier sent to the provider
func WithUser(user string) Option {
	return func(o *ChatOptions) {
		o.User = user
	}
}

// DefaultOptions returns the default options; extraction prompts run cold
func DefaultOptions() *ChatOptions {
	return &ChatOptions{
		Temperature: 0.2,
	}
}
