package analyzer

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/helmcode/news-analyzer/pkg/llm"
	"github.com/helmcode/news-analyzer/pkg/model"
	"github.com/helmcode/news-analyzer/pkg/parser"
	"github.com/helmcode/news-analyzer/pkg/prompts"
	"github.com/helmcode/news-analyzer/pkg/validator"
	"go.uber.org/zap"
)

type Analyzer struct {
	llm    llm.LLM
	logger *zap.Logger
}

func NewWithProvider(ctx context.Context, provider llm.Provider, opts llm.Options) (*Analyzer, error) {
	factory := llm.NewFactory()
	llmInstance, err := factory.CreateLLM(ctx, provider, opts)
	if err != nil {
		return nil, err
	}
	return NewWithLLM(llmInstance), nil
}

func NewWithLLM(l llm.LLM) *Analyzer {
	return &Analyzer{llm: l, logger: zap.NewNop()}
}

// WithLogger sets the logger used for request lifecycle events.
func (a *Analyzer) WithLogger(logger *zap.Logger) *Analyzer {
	if logger != nil {
		a.logger = logger
	}
	return a
}

// Analyze validates text, sends exactly one request and parses the answer.
// Errors are either *ValidationError (nothing was sent) or *RequestError.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*model.AnalysisResult, error) {
	if err := validator.Validate(text); err != nil {
		a.logger.Debug("Rejected input", zap.Error(err))
		return nil, &ValidationError{Err: err}
	}

	log := a.logger.With(zap.String("request_id", uuid.NewString()))
	log.Debug("Sending analysis request",
		zap.String("model", llm.ModelName(a.llm)),
		zap.Int("input_chars", utf8.RuneCountInString(text)))
	start := time.Now()

	rawResp, err := a.llm.Chat(ctx, prompts.BuildMessages(text))
	if err != nil {
		log.Warn("Analysis request failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return nil, &RequestError{Err: err}
	}

	result, err := parser.ParseAnalysis(rawResp)
	if err != nil {
		log.Warn("Unusable completion", zap.Error(err), zap.Int("completion_bytes", len(rawResp)))
		return nil, &RequestError{Err: err}
	}

	log.Debug("Analysis complete",
		zap.Float64("credibility_score", result.CredibilityScore),
		zap.Int("red_flags", len(result.RedFlags)),
		zap.Duration("elapsed", time.Since(start)))
	return result, nil
}
