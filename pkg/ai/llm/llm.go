package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Abraxas-365/talentdesk/pkg/errx"
)

// LLM is a chat completion model
type LLM interface {
	Chat(ctx context.Context, messages []Message, opts ...Option) (Response, error)
}

// Response contains the model's reply and token usage
type Response struct {
	Message Message
	Usage   Usage
}

var ErrRegistry = errx.NewRegistry("LLM")

var (
	CodeEmptyResponse = ErrRegistry.Register("EMPTY_RESPONSE", errx.TypeExternal, http.StatusBadGateway, "Model returned no content")
	CodeInvalidJSON   = ErrRegistry.Register("INVALID_JSON", errx.TypeExternal, http.StatusBadGateway, "Model returned malformed JSON")
)

// Client wraps a model with structured-output helpers
type Client struct {
	llm LLM
}

func NewClient(llm LLM) *Client {
	return &Client{llm: llm}
}

func (c *Client) Chat(ctx context.Context, messages []Message, opts ...Option) (Response, error) {
	return c.llm.Chat(ctx, messages, opts...)
}

// ChatJSON pide una respuesta en modo JSON y la decodifica en out
func (c *Client) ChatJSON(ctx context.Context, messages []Message, out any, opts ...Option) error {
	resp, err := c.llm.Chat(ctx, messages, append(opts, WithJSONMode())...)
	if err != nil {
		return err
	}

	content := stripFence(resp.Message.Content)
	if content == "" {
		return ErrRegistry.New(CodeEmptyResponse)
	}
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return ErrRegistry.NewWithCause(CodeInvalidJSON, err).WithDetail("content", truncate(content, 200))
	}
	return nil
}

// stripFence drops a ```json fence some models wrap around JSON output
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
