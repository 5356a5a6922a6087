package llm

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Provider represents the LLM provider type
type Provider string

const (
	ProviderCompletion Provider = "completion"
	ProviderClaude     Provider = "claude"
	ProviderOpenAI     Provider = "openai"
	ProviderGemini     Provider = "gemini"
)

// Options carries what a provider needs to build a client.
type Options struct {
	APIKey   string
	Model    string
	Endpoint string
	Timeout  time.Duration
}

// Factory creates LLM instances based on provider
type Factory struct{}

// NewFactory creates a new LLM factory
func NewFactory() *Factory {
	return &Factory{}
}

// ParseProvider maps a user supplied name to a Provider. Empty means the default.
func ParseProvider(name string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "completion", "a0":
		return ProviderCompletion, nil
	case "claude", "anthropic":
		return ProviderClaude, nil
	case "openai":
		return ProviderOpenAI, nil
	case "gemini", "google":
		return ProviderGemini, nil
	default:
		return "", fmt.Errorf("unsupported LLM provider: %s (supported: completion, claude, openai, gemini)", name)
	}
}

// CreateLLM creates an LLM instance based on provider and configuration
func (f *Factory) CreateLLM(ctx context.Context, provider Provider, opts Options) (LLM, error) {
	switch provider {
	case ProviderCompletion, "":
		return NewCompletion(opts.Endpoint, opts.APIKey, opts.Timeout), nil

	case ProviderClaude:
		if opts.APIKey == "" {
			return nil, fmt.Errorf("Claude API key is required")
		}
		model := opts.Model
		if model == "" {
			model = defaultClaudeModel
		}
		c := NewClaudeWithModel(opts.APIKey, model)
		if opts.Endpoint != "" {
			c.endpoint = opts.Endpoint
		}
		c.client.Timeout = opts.Timeout
		return c, nil

	case ProviderOpenAI:
		if opts.APIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIWithConfig(opts.APIKey, opts.Model, opts.Endpoint, opts.Timeout), nil

	case ProviderGemini:
		g, err := NewGemini(ctx, opts.APIKey, opts.Model, opts.Endpoint, opts.Timeout)
		if err != nil {
			return nil, err
		}
		return g, nil

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}
}

// GetAvailableProviders returns a list of available LLM providers
func (f *Factory) GetAvailableProviders() []Provider {
	return []Provider{ProviderCompletion, ProviderClaude, ProviderOpenAI, ProviderGemini}
}

// ModelName reports the model a client uses, or "" when the provider picks it.
func ModelName(l LLM) string {
	if m, ok := l.(interface{ GetModel() string }); ok {
		return m.GetModel()
	}
	return ""
}
