package planner

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Provider is the single request type the generator needs from a language
// model: prompt in, free text out. The OpenAI client implements it; tests
// substitute a deterministic stub.
//
// An empty string with a nil error means the provider answered but produced
// no content — the generator treats that as domain.ErrEmptyResponse.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

const (
	// temperature favors varied-but-coherent plans over deterministic
	// repetition. A tuning knob, not a contract.
	temperature = 0.7

	// maxTokens caps the response length. This is also the only guard
	// against unbounded waits beyond provider-side timeouts.
	maxTokens = 4000
)

// OpenAIProvider calls the OpenAI chat completions API.
type OpenAIProvider struct {
	client openai.Client
	model  string
}

// NewOpenAIProvider constructs a provider for the given API key and model.
func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	return &OpenAIProvider{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

// Complete sends the prompt as a single user message and returns the first
// choice's content. No streaming, no partial results.
func (p *OpenAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("planner.OpenAIProvider.Complete: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
