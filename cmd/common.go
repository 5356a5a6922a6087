package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/helmcode/news-analyzer/pkg/analyzer"
	"github.com/helmcode/news-analyzer/pkg/config"
	"github.com/helmcode/news-analyzer/pkg/llm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// llmFlags are the provider flags shared by every command that talks to a model.
type llmFlags struct {
	configPath string
	provider   string
	model      string
	endpoint   string
	verbose    bool
}

func (f *llmFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", fmt.Sprintf("Path to config file (default ~/%s)", config.DefaultFileName))
	cmd.Flags().StringVar(&f.provider, "provider", "", "LLM provider (completion, claude, openai, gemini). Defaults to config/env")
	cmd.Flags().StringVar(&f.model, "model", "", "LLM model to use (overrides default)")
	cmd.Flags().StringVar(&f.endpoint, "endpoint", "", "Completion endpoint URL (overrides default)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Verbose output")
}

// loadConfig reads config file and environment, then applies the flags.
func (f *llmFlags) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.ApplyFlags(f.provider, f.model, f.endpoint); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newAnalyzer builds the analysis client for cfg.
func newAnalyzer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*analyzer.Analyzer, error) {
	a, err := analyzer.NewWithProvider(ctx, cfg.LLMProvider(), cfg.LLMOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	return a.WithLogger(logger), nil
}

func printLLMInfo(cfg *config.Config) {
	model := cfg.ResolvedModel()
	if model == "" {
		model = "default"
	}
	fmt.Printf("🤖 Provider: %s (model: %s)\n", cfg.LLMProvider(), model)
	if cfg.LLMProvider() == llm.ProviderCompletion {
		endpoint := cfg.Endpoint
		if endpoint == "" {
			endpoint = llm.DefaultCompletionEndpoint
		}
		fmt.Printf("🌐 Endpoint: %s\n", endpoint)
	}
}

func printSuccess(msg string) {
	green := color.New(color.FgGreen)
	green.Printf("✓ %s\n", msg)
}

