package model

// AnalysisResult is the judgment returned by the remote model for one piece of text.
type AnalysisResult struct {
	CredibilityScore float64  `json:"credibilityScore" yaml:"credibilityScore"`
	Analysis         string   `json:"analysis" yaml:"analysis"`
	RedFlags         []string `json:"redFlags" yaml:"redFlags"`
	Recommendations  []string `json:"recommendations" yaml:"recommendations"`
}

// Band is the display category derived from a credibility score.
type Band string

const (
	BandGood    Band = "good"
	BandWarning Band = "warning"
	BandBad     Band = "bad"
)
