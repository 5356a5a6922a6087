package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/helmcode/news-analyzer/pkg/llm"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"k8s.io/client-go/util/homedir"
)

// DefaultFileName is looked up in the home directory when no config path is given.
const DefaultFileName = ".news-analyzer.yaml"

// Config holds all configuration for the application
type Config struct {
	Provider string        `yaml:"provider"`
	Model    string        `yaml:"model"`
	Endpoint string        `yaml:"endpoint"`
	APIKey   string        `yaml:"apiKey"`
	Timeout  time.Duration `yaml:"timeout"`

	Output string `yaml:"output"`
	Addr   string `yaml:"addr"`
}

// DefaultPath returns ~/.news-analyzer.yaml, or "" when there is no home directory.
func DefaultPath() string {
	if home := homedir.HomeDir(); home != "" {
		return filepath.Join(home, DefaultFileName)
	}
	return ""
}

// Load reads .env, then the YAML file at path, then environment overrides.
// An empty path means the default file, which may be absent.
func Load(path string) (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	cfg := &Config{
		Provider: string(llm.ProviderCompletion),
		Output:   "human",
		Addr:     ":8080",
	}

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := os.Getenv("NEWS_ANALYZER_PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := os.Getenv("NEWS_ANALYZER_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("NEWS_ANALYZER_ENDPOINT"); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv("NEWS_ANALYZER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return &ConfigError{Field: "NEWS_ANALYZER_TIMEOUT", Message: err.Error()}
		}
		c.Timeout = d
	}
	return nil
}

// ApplyFlags overrides file and environment values with non-empty command line values.
func (c *Config) ApplyFlags(provider, model, endpoint string) error {
	if provider != "" {
		c.Provider = provider
	}
	if model != "" {
		c.Model = model
	}
	if endpoint != "" {
		c.Endpoint = endpoint
	}
	return c.Validate()
}

// ResolvedAPIKey returns the configured key, falling back to the provider's
// conventional environment variable.
func (c *Config) ResolvedAPIKey() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	return apiKeyFromEnv(c.Provider)
}

// apiKeyFromEnv returns the conventional key variable for provider.
func apiKeyFromEnv(provider string) string {
	p, err := llm.ParseProvider(provider)
	if err != nil {
		return ""
	}
	switch p {
	case llm.ProviderClaude:
		return os.Getenv("ANTHROPIC_API_KEY")
	case llm.ProviderOpenAI:
		return os.Getenv("OPENAI_API_KEY")
	case llm.ProviderGemini:
		return os.Getenv("GEMINI_API_KEY")
	default:
		return os.Getenv("COMPLETION_API_KEY")
	}
}

// ResolvedModel returns the configured model, falling back to the provider's
// model variable (CLAUDE_MODEL, OPENAI_MODEL, GEMINI_MODEL). Empty means the
// provider default.
func (c *Config) ResolvedModel() string {
	if c.Model != "" {
		return c.Model
	}
	p, err := llm.ParseProvider(c.Provider)
	if err != nil {
		return ""
	}
	switch p {
	case llm.ProviderClaude:
		return os.Getenv("CLAUDE_MODEL")
	case llm.ProviderOpenAI:
		return os.Getenv("OPENAI_MODEL")
	case llm.ProviderGemini:
		return os.Getenv("GEMINI_MODEL")
	default:
		return ""
	}
}

// Validate checks that the configuration can build a working client.
func (c *Config) Validate() error {
	p, err := llm.ParseProvider(c.Provider)
	if err != nil {
		return &ConfigError{Field: "provider", Message: err.Error()}
	}
	if p != llm.ProviderCompletion && c.ResolvedAPIKey() == "" {
		return &ConfigError{Field: "apiKey", Message: fmt.Sprintf("an API key is required for provider %s", p)}
	}
	if c.Timeout < 0 {
		return &ConfigError{Field: "timeout", Message: "must not be negative"}
	}
	switch c.Output {
	case "human", "json", "yaml":
	default:
		return &ConfigError{Field: "output", Message: "must be one of human, json, yaml"}
	}
	return nil
}

// LLMProvider returns the parsed provider. Call after Validate.
func (c *Config) LLMProvider() llm.Provider {
	p, _ := llm.ParseProvider(c.Provider)
	return p
}

// LLMOptions returns the client options derived from the configuration.
func (c *Config) LLMOptions() llm.Options {
	return llm.Options{
		APIKey:   c.ResolvedAPIKey(),
		Model:    c.ResolvedModel(),
		Endpoint: c.Endpoint,
		Timeout:  c.Timeout,
	}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
