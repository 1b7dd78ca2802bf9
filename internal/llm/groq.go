package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Translator is the external translation capability: text plus a language
// pair in, translated text or a failure out. Callers treat any error as
// "try the next strategy"; nothing here is fatal to the pipeline.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// DefaultBaseURL points at Groq's OpenAI-compatible endpoint.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

// DefaultModel is the translation model used when none is configured.
const DefaultModel = "llama3-8b-8192"

// GroqClient calls an OpenAI-compatible chat completions API for medical
// translation. Groq is the default upstream, but any compatible endpoint
// works via the base URL.
type GroqClient struct {
	client *openai.Client
	model  string
}

// NewGroqClient constructs a client for the given credential. baseURL and
// model fall back to the Groq defaults when empty.
func NewGroqClient(apiKey, baseURL, model string) *GroqClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	cfg.BaseURL = baseURL
	if model == "" {
		model = DefaultModel
	}
	return &GroqClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Translate sends a single-turn translation request and returns the model's
// response with surrounding whitespace removed.
func (c *GroqClient) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if c.client == nil {
		return "", errors.New("groq client not initialized")
	}

	system := fmt.Sprintf(
		"Translate medical text from %s to %s. Use accurate medical terms. Return ONLY the translation.",
		sourceLang, targetLang,
	)
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0.0,
		MaxTokens:   300,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
