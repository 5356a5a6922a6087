package cmd

import (
	"github.com/helmcode/news-analyzer/pkg/logging"
	"github.com/helmcode/news-analyzer/pkg/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type screenOptions struct {
	llmFlags
	logFile string
}

func NewScreenCmd() *cobra.Command {
	opts := &screenOptions{}
	cmd := &cobra.Command{
		Use:   "screen",
		Short: "Open the interactive analyzer screen",
		Long: `Paste or type text, press ctrl+s to analyze it, and read the verdict below.

The screen logs nothing to the terminal; pass --log-file to keep a log.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScreen(cmd, opts)
		},
	}
	opts.register(cmd)
	return cmd
}

func (o *screenOptions) register(cmd *cobra.Command) {
	o.llmFlags.register(cmd)
	cmd.Flags().StringVar(&o.logFile, "log-file", "", "Write logs to this file")
}

func runScreen(cmd *cobra.Command, opts *screenOptions) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.ForScreen(opts.verbose, opts.logFile)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	aiAnalyzer, err := newAnalyzer(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("Starting screen", zap.String("provider", string(cfg.LLMProvider())))
	return ui.Run(cmd.Context(), aiAnalyzer, ui.WithLogger(logger))
}

// BindScreen makes root open the screen when run without a subcommand.
func BindScreen(root *cobra.Command) {
	opts := &screenOptions{}
	opts.register(root)
	root.RunE = func(cmd *cobra.Command, args []string) error {
		return runScreen(cmd, opts)
	}
}
