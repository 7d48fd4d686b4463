package embedding

import (
	"context"
	"math"
)

// Embedder represents an interface for text embedding operations
type Embedder interface {
	// EmbedDocuments converts a slice of documents into vector embeddings
	EmbedDocuments(ctx context.Context, documents []string, opts ...Option) ([]Embedding, error)

	// EmbedQuery converts a single query text into a vector embedding
	EmbedQuery(ctx context.Context, text string, opts ...Option) (Embedding, error)
}

type Embedding struct {
	Vector []float32
	Usage  Usage
}

type Usage struct {
	PromptTokens int
	TotalTokens  int
}

// Client represents a configured embedding client
type Client struct {
	embedder Embedder
}

func NewClient(embedder Embedder) *Client {
	return &Client{embedder: embedder}
}

func (c *Client) EmbedDocuments(ctx context.Context, documents []string, opts ...Option) ([]Embedding, error) {
	return c.embedder.EmbedDocuments(ctx, documents, opts...)
}

func (c *Client) EmbedQuery(ctx context.Context, text string, opts ...Option) (Embedding, error) {
	return c.embedder.EmbedQuery(ctx, text, opts...)
}

// Similarity embeds both texts in one call and returns their cosine similarity
func (c *Client) Similarity(ctx context.Context, a, b string, opts ...Option) (float64, error) {
	out, err := c.embedder.EmbedDocuments(ctx, []string{a, b}, opts...)
	if err != nil {
		return 0, err
	}
	if len(out) != 2 {
		return 0, nil
	}
	return Cosine(out[0].Vector, out[1].Vector), nil
}

// Cosine returns the cosine similarity of two vectors, 0 when either is empty
// or their lengths differ.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
