package aiopenai

import (
	"context"
	"io"
	"os"

	"github.com/Abraxas-365/talentdesk/pkg/ai/embedding"
	"github.com/Abraxas-365/talentdesk/pkg/ai/llm"
	"github.com/Abraxas-365/talentdesk/pkg/ai/speech"
	"github.com/Abraxas-365/talentdesk/pkg/config"
	"github.com/Abraxas-365/talentdesk/pkg/errx"
	"github.com/Abraxas-365/talentdesk/pkg/metrics"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/packages/param"
	"github.com/openai/openai-go/v3/shared"
)

// OpenAIProvider implementa chat, embeddings y transcripción sobre OpenAI
type OpenAIProvider struct {
	client             openai.Client
	chatModel          string
	embeddingModel     string
	transcriptionModel string
}

var (
	_ llm.LLM            = (*OpenAIProvider)(nil)
	_ embedding.Embedder = (*OpenAIProvider)(nil)
	_ speech.Transcriber = (*OpenAIProvider)(nil)
)

// NewOpenAIProvider creates a provider with default models
func NewOpenAIProvider(apiKey string, opts ...option.RequestOption) *OpenAIProvider {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	options := append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &OpenAIProvider{
		client:             openai.NewClient(options...),
		chatModel:          "gpt-4o-mini",
		embeddingModel:     "text-embedding-3-small",
		transcriptionModel: string(openai.AudioModelWhisper1),
	}
}

// NewFromConfig creates a provider using the configured models and timeout
func NewFromConfig(cfg config.AIConfig, opts ...option.RequestOption) *OpenAIProvider {
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	p := NewOpenAIProvider(cfg.OpenAIAPIKey, opts...)
	if cfg.ChatModel != "" {
		p.chatModel = cfg.ChatModel
	}
	if cfg.EmbeddingModel != "" {
		p.embeddingModel = cfg.EmbeddingModel
	}
	if cfg.TranscriptionModel != "" {
		p.transcriptionModel = cfg.TranscriptionModel
	}
	return p
}

// ============================================================================
// Chat
// ============================================================================

func (p *OpenAIProvider) Chat(ctx context.Context, messages []llm.Message, opts ...llm.Option) (resp llm.Response, err error) {
	defer func() { metrics.RecordAICall("chat", err) }()

	options := llm.DefaultOptions()
	options.Model = p.chatModel
	for _, opt := range opts {
		opt(options)
	}

	params := openai.ChatCompletionNewParams{
		Messages: convertMessages(messages),
		Model:    options.Model,
	}
	if options.Temperature != 0 {
		params.Temperature = openai.Float(float64(options.Temperature))
	}
	if options.MaxCompletionTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(options.MaxCompletionTokens))
	}
	if options.User != "" {
		params.User = openai.String(options.User)
	}
	if options.JSONMode {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return llm.Response{}, errx.Wrap(err, "openai chat completion failed", errx.TypeExternal).
			WithDetail("model", options.Model)
	}
	if len(completion.Choices) == 0 {
		return llm.Response{}, llm.ErrRegistry.New(llm.CodeEmptyResponse).WithDetail("model", options.Model)
	}

	choice := completion.Choices[0]
	return llm.Response{
		Message: llm.Message{Role: string(choice.Message.Role), Content: choice.Message.Content},
		Usage: llm.Usage{
			PromptTokens:     int(completion.Usage.PromptTokens),
			CompletionTokens: int(completion.Usage.CompletionTokens),
			TotalTokens:      int(completion.Usage.TotalTokens),
		},
	}, nil
}

func convertMessages(messages []llm.Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case llm.RoleSystem:
			out = append(out, openai.SystemMessage(msg.Content))
		case llm.RoleAssistant:
			out = append(out, openai.AssistantMessage(msg.Content))
		default:
			out = append(out, openai.UserMessage(msg.Content))
		}
	}
	return out
}

// ============================================================================
// Embeddings
// ============================================================================

func (p *OpenAIProvider) EmbedDocuments(ctx context.Context, documents []string, opts ...embedding.Option) (out []embedding.Embedding, err error) {
	defer func() { metrics.RecordAICall("embed", err) }()

	options := embedding.DefaultOptions()
	options.Model = p.embeddingModel
	for _, opt := range opts {
		opt(options)
	}

	params := openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: documents,
		},
		Model: options.Model,
	}
	if options.Dimensions > 0 {
		params.Dimensions = openai.Int(int64(options.Dimensions))
	}
	if options.User != "" {
		params.User = openai.String(options.User)
	}

	resp, err := p.client.Embeddings.New(ctx, params)
	if err != nil {
		return nil, errx.Wrap(err, "openai embedding failed", errx.TypeExternal).
			WithDetail("model", options.Model).
			WithDetail("documents", len(documents))
	}

	out = make([]embedding.Embedding, len(resp.Data))
	for i, data := range resp.Data {
		out[i] = embedding.Embedding{
			Vector: toFloat32(data.Embedding),
			Usage: embedding.Usage{
				PromptTokens: int(resp.Usage.PromptTokens),
				TotalTokens:  int(resp.Usage.TotalTokens),
			},
		}
	}
	return out, nil
}

func (p *OpenAIProvider) EmbedQuery(ctx context.Context, text string, opts ...embedding.Option) (embedding.Embedding, error) {
	out, err := p.EmbedDocuments(ctx, []string{text}, opts...)
	if err != nil {
		return embedding.Embedding{}, err
	}
	if len(out) == 0 {
		return embedding.Embedding{}, errx.New("openai returned no embedding", errx.TypeExternal)
	}
	return out[0], nil
}

func toFloat32(input []float64) []float32 {
	out := make([]float32, len(input))
	for i, v := range input {
		out[i] = float32(v)
	}
	return out
}

// ============================================================================
// Transcription
// ============================================================================

func (p *OpenAIProvider) Transcribe(ctx context.Context, audio io.Reader, opts ...speech.TranscriptionOption) (t speech.Transcript, err error) {
	defer func() { metrics.RecordAICall("transcribe", err) }()

	options := speech.TranscriptionOptions{Model: p.transcriptionModel}
	for _, opt := range opts {
		opt(&options)
	}

	file := audio
	if options.FileName != "" {
		file = openai.File(audio, options.FileName, "")
	}

	params := openai.AudioTranscriptionNewParams{
		Model: options.Model,
		File:  file,
	}
	if options.Language != "" {
		params.Language = param.NewOpt(options.Language)
	}
	if options.Prompt != "" {
		params.Prompt = param.NewOpt(options.Prompt)
	}

	response, err := p.client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		return speech.Transcript{}, errx.Wrap(err, "openai transcription failed", errx.TypeExternal).
			WithDetail("model", options.Model)
	}
	return speech.Transcript{Text: response.Text}, nil
}
