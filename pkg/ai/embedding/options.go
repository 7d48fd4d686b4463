package embedding

// EmbeddingOptions contains options for generating embeddings
type EmbeddingOptions struct {
	Model string
	// Dimensions of the vectors, 0 keeps the model default
	Dimensions int
	User       string
}

type Option func(*EmbeddingOptions)

func WithModel(model string) Option {
	return func(o *EmbeddingOptions) {
		o.Model = model
	}
}

func WithDimensions(dimensions int) Option {
	return func(o *EmbeddingOptions) {
		o.Dimensions = dimensions
	}
}

func WithUser(user string) Option {
	return func(o *EmbeddingOptions) {
		o.User = user
	}
}

func DefaultOptions() *EmbeddingOptions {
	return &EmbeddingOptions{}
}
