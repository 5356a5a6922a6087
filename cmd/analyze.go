package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/helmcode/news-analyzer/pkg/analyzer"
	"github.com/helmcode/news-analyzer/pkg/formatter"
	"github.com/helmcode/news-analyzer/pkg/logging"
	"github.com/helmcode/news-analyzer/pkg/validator"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type analyzeOptions struct {
	llmFlags
	file         string
	outputFormat string
}

func NewAnalyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}
	cmd := &cobra.Command{
		Use:   "analyze [TEXT]",
		Short: "Analyze a piece of text for misinformation",
		Long: `Send text to the AI model and print its credibility judgment.

Examples:
  # Analyze text given as an argument
  news-analyzer analyze "Scientists say drinking coffee makes you immortal"

  # Analyze an article saved to a file
  news-analyzer analyze -f article.txt

  # Read from stdin and print JSON
  pbpaste | news-analyzer analyze - -o json

  # Use a different provider
  news-analyzer analyze -f article.txt --provider openai --model gpt-4o-mini`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, opts, args)
		},
	}

	opts.llmFlags.register(cmd)
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read the text to analyze from a file")
	cmd.Flags().StringVarP(&opts.outputFormat, "output", "o", "", "Output format (human, json, yaml)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, opts *analyzeOptions, args []string) error {
	text, err := readInput(args, opts.file, cmd.InOrStdin())
	if err != nil {
		return err
	}

	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	format := cfg.Output
	if opts.outputFormat != "" {
		format = opts.outputFormat
	}
	human := format == "human"

	logger, err := logging.New(opts.verbose, "")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if err := validator.Validate(text); err != nil {
		logger.Debug("Rejected input", zap.Error(err))
		return errors.New(validator.Message)
	}

	if human {
		printHeader(text)
		printLLMInfo(cfg)
		fmt.Println()
	}

	aiAnalyzer, err := newAnalyzer(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " Analyzing with AI..."
	s.Start()

	result, err := aiAnalyzer.Analyze(cmd.Context(), text)
	s.Stop()
	if err != nil {
		return errors.New(analyzer.UserMessage(err))
	}

	if human {
		printSuccess("Analysis complete")
	}
	return formatter.DisplayResults(cmd.OutOrStdout(), result, format)
}

// readInput takes the text from the argument, a file, or stdin when the
// argument is "-" or absent.
func readInput(args []string, file string, stdin io.Reader) (string, error) {
	if file != "" {
		if len(args) > 0 {
			return "", fmt.Errorf("pass either TEXT or --file, not both")
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", file, err)
		}
		return string(data), nil
	}
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func printHeader(text string) {
	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Println()
	cyan.Println("🛡  Fake News Analyzer")

	preview := strings.Join(strings.Fields(text), " ")
	if r := []rune(preview); len(r) > 60 {
		preview = string(r[:60]) + "..."
	}
	fmt.Printf("📝 Text: %s\n", preview)
}
