package advisory

import (
	"context"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

// suggestTimeout bounds the LLM call so a slow endpoint cannot stall the
// reviewer flow; on expiry callers fall back to the offline text.
const suggestTimeout = 30 * time.Second

// LLMSuggester calls an OpenAI-compatible chat endpoint via langchaingo.
type LLMSuggester struct {
	llm *openai.LLM
}

// NewLLMSuggester builds a suggester against the given OpenAI-compatible
// base URL. Works with the OpenAI API and self-hosted compatible servers.
func NewLLMSuggester(baseURL, model, token string) (*LLMSuggester, error) {
	if token == "" {
		// langchaingo requires a token, use placeholder for keyless servers
		token = "placeholder"
	}
	opts := []openai.Option{
		openai.WithBaseURL(baseURL),
		openai.WithModel(model),
		openai.WithToken(token),
	}
	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OpenAI client: %w", err)
	}
	return &LLMSuggester{llm: llm}, nil
}

func (s *LLMSuggester) Suggest(ctx context.Context, req Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, suggestTimeout)
	defer cancel()

	resp, err := s.llm.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(schema.ChatMessageTypeSystem, systemPrompt),
			llms.TextParts(schema.ChatMessageTypeHuman, buildPrompt(req)),
		},
		llms.WithTemperature(0.2),
	)
	if err != nil {
		return "", fmt.Errorf("generating suggestion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty suggestion response")
	}
	return resp.Choices[0].Content, nil
}
