package formatter

import (
	"strconv"

	"github.com/fatih/color"
	"github.com/helmcode/news-analyzer/pkg/model"
)

const (
	goodThreshold    = 70
	warningThreshold = 40
)

// Band hex colors, shared by every renderer.
const (
	GoodHex    = "#4CAF50"
	WarningHex = "#FFC107"
	BadHex     = "#F44336"
)

// Icons prefixed to list items.
const (
	RedFlagIcon        = "⚠"
	RecommendationIcon = "✔"
)

// BandFor maps a credibility score to its display band. Scores outside
// [0,100] are banded like any other number; NaN is bad.
func BandFor(score float64) model.Band {
	switch {
	case score >= goodThreshold:
		return model.BandGood
	case score >= warningThreshold:
		return model.BandWarning
	default:
		return model.BandBad
	}
}

// BandHex returns the hex color for band.
func BandHex(band model.Band) string {
	switch band {
	case model.BandGood:
		return GoodHex
	case model.BandWarning:
		return WarningHex
	default:
		return BadHex
	}
}

// FormatScore renders a score as a percentage, e.g. "85%" or "85.5%".
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64) + "%"
}

func getBandColor(band model.Band) *color.Color {
	switch band {
	case model.BandGood:
		return color.New(color.FgGreen, color.Bold)
	case model.BandWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}
