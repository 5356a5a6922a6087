package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/helmcode/news-analyzer/pkg/model"
)

// ErrMissingField is returned when the model's answer lacks a required key.
var ErrMissingField = errors.New("missing required field")

var (
	openFenceRe  = regexp.MustCompile("^```[a-zA-Z]*[ \t]*\r?\n?")
	closeFenceRe = regexp.MustCompile("\r?\n?```$")
)

// analysisPayload mirrors model.AnalysisResult with every field optional, so
// absent keys can be told apart from zero values.
type analysisPayload struct {
	CredibilityScore *float64  `json:"credibilityScore"`
	Analysis         *string   `json:"analysis"`
	RedFlags         *[]string `json:"redFlags"`
	Recommendations  *[]string `json:"recommendations"`
}

// ParseAnalysis decodes the completion text into an AnalysisResult. Any missing,
// null or mistyped field is an error; the score range is not checked.
func ParseAnalysis(raw string) (*model.AnalysisResult, error) {
	cleaned := stripFences(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("empty completion")
	}

	var payload analysisPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("decode analysis: %w", err)
	}

	switch {
	case payload.CredibilityScore == nil:
		return nil, fmt.Errorf("%w: credibilityScore", ErrMissingField)
	case payload.Analysis == nil:
		return nil, fmt.Errorf("%w: analysis", ErrMissingField)
	case payload.RedFlags == nil:
		return nil, fmt.Errorf("%w: redFlags", ErrMissingField)
	case payload.Recommendations == nil:
		return nil, fmt.Errorf("%w: recommendations", ErrMissingField)
	}

	return &model.AnalysisResult{
		CredibilityScore: *payload.CredibilityScore,
		Analysis:         *payload.Analysis,
		RedFlags:         *payload.RedFlags,
		Recommendations:  *payload.Recommendations,
	}, nil
}

// stripFences removes a markdown code fence wrapping the whole answer, such as
// ```json ... ```. Backticks inside the payload are left alone.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = openFenceRe.ReplaceAllString(text, "")
	text = closeFenceRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
