package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/helmcode/news-analyzer/pkg/logging"
	"github.com/helmcode/news-analyzer/pkg/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type serveOptions struct {
	llmFlags
	addr string
}

func NewServeCmd() *cobra.Command {
	opts := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analyzer over HTTP",
		Long: `Expose the analyzer as a JSON API.

Endpoints:
  POST /api/analyze   {"text": "..."}
  GET  /healthz

Examples:
  news-analyzer serve --addr :9090
  curl -s localhost:9090/api/analyze -d '{"text":"..."}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
	opts.llmFlags.register(cmd)
	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address (default from config, :8080)")
	return cmd
}

func runServe(cmd *cobra.Command, opts *serveOptions) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	addr := cfg.Addr
	if opts.addr != "" {
		addr = opts.addr
	}

	logger, err := logging.New(opts.verbose, "")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	aiAnalyzer, err := newAnalyzer(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Analyzer ready", zap.String("provider", string(cfg.LLMProvider())), zap.String("model", cfg.ResolvedModel()))
	return server.Run(ctx, addr, server.NewRouter(aiAnalyzer, logger), logger)
}
