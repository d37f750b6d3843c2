package plan

import (
	"context"
	"log/slog"
	"time"

	"github.com/launikari/fitplan/internal/errors"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Completer produces a chat completion for a system and user prompt pair.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

const (
	defaultModel      = "gpt-4o-mini"
	completionTimeout = 60 * time.Second
	completionTemp    = 0.7
	completionMaxTok  = 2000
	completionTopP    = 0.8
)

// fallbackAdvisory is returned when the completion API is unreachable. It
// deliberately contains no JSON so the parser falls through to the default
// plan for this goal.
const fallbackAdvisory = `The AI coaching service is temporarily unavailable, so this plan was
assembled from our standard programs. General guidance: train three to five
days per week, alternate hard days with easy ones, keep at least one full
rest day, and favor consistency over intensity. Pair training with balanced
meals built around vegetables, whole grains, and adequate protein.`

// OpenAICompleter calls an OpenAI-compatible chat-completions endpoint.
type OpenAICompleter struct {
	client openai.Client
	model  string
	logger *slog.Logger
}

// NewOpenAICompleter creates a completer. baseURL may be empty for the
// default OpenAI endpoint; model falls back to gpt-4o-mini.
func NewOpenAICompleter(apiKey, baseURL, model string, logger *slog.Logger) *OpenAICompleter {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if model == "" {
		model = defaultModel
	}
	return &OpenAICompleter{
		client: openai.NewClient(opts...),
		model:  model,
		logger: logger,
	}
}

// Complete sends a single chat-completion request. There is exactly one
// attempt per generation. A transport or API failure is logged and degraded
// to the fallback advisory rather than surfaced as an error.
func (c *OpenAICompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Temperature: openai.Float(completionTemp),
		MaxTokens:   openai.Int(completionMaxTok),
		TopP:        openai.Float(completionTopP),
	}

	start := time.Now()
	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "chat completion failed",
			slog.String("model", c.model),
			slog.Duration("duration", time.Since(start)),
			errors.SlogError(err))
		return fallbackAdvisory, nil
	}
	if len(completion.Choices) == 0 {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "chat completion returned no choices",
			slog.String("model", c.model))
		return fallbackAdvisory, nil
	}

	c.logger.LogAttrs(ctx, slog.LevelDebug, "chat completion succeeded",
		slog.String("model", c.model),
		slog.Duration("duration", time.Since(start)),
		slog.Int64("total_tokens", completion.Usage.TotalTokens))
	return completion.Choices[0].Message.Content, nil
}
