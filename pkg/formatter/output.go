package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/helmcode/news-analyzer/pkg/model"
	"gopkg.in/yaml.v3"
)

// Report is the machine-readable form of a result, with its band attached.
type Report struct {
	model.AnalysisResult `yaml:",inline"`
	Band                 model.Band `json:"band" yaml:"band"`
}

// NewReport attaches the band to result.
func NewReport(result *model.AnalysisResult) Report {
	return Report{AnalysisResult: *result, Band: BandFor(result.CredibilityScore)}
}

// DisplayResults formats and displays the analysis results
func DisplayResults(w io.Writer, result *model.AnalysisResult, format string) error {
	switch format {
	case "json":
		return displayJSON(w, result)
	case "yaml":
		return displayYAML(w, result)
	case "human", "":
		displayHuman(w, result)
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s (supported: human, json, yaml)", format)
	}
}

func displayJSON(w io.Writer, result *model.AnalysisResult) error {
	output, err := json.MarshalIndent(NewReport(result), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(output))
	return nil
}

func displayYAML(w io.Writer, result *model.AnalysisResult) error {
	output, err := yaml.Marshal(NewReport(result))
	if err != nil {
		return err
	}
	fmt.Fprint(w, string(output))
	return nil
}

func displayHuman(w io.Writer, result *model.AnalysisResult) {
	white := color.New(color.FgWhite, color.Bold)
	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)

	fmt.Fprintln(w)

	band := BandFor(result.CredibilityScore)
	white.Fprint(w, "📊 CREDIBILITY SCORE: ")
	getBandColor(band).Fprintf(w, "%s", FormatScore(result.CredibilityScore))
	fmt.Fprintf(w, " (%s)\n\n", band)

	white.Fprintln(w, "📄 ANALYSIS:")
	fmt.Fprintln(w, wrapText(result.Analysis, 80, "   "))
	fmt.Fprintln(w)

	white.Fprintln(w, "🚩 RED FLAGS:")
	for _, flag := range result.RedFlags {
		red.Fprintf(w, "   %s ", RedFlagIcon)
		fmt.Fprintln(w, flag)
	}
	fmt.Fprintln(w)

	white.Fprintln(w, "💡 RECOMMENDATIONS:")
	for _, rec := range result.Recommendations {
		green.Fprintf(w, "   %s ", RecommendationIcon)
		fmt.Fprintln(w, rec)
	}
	fmt.Fprintln(w)

	// Footer
	fmt.Fprintln(w, strings.Repeat("─", 80))
	fmt.Fprintf(w, "💡 %s\n", color.HiBlackString("Run with -o json or -o yaml for machine-readable output"))
}

func wrapText(text string, width int, indent string) string {
	var result strings.Builder
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		words := strings.Fields(line)
		if len(words) == 0 {
			result.WriteString("\n")
			continue
		}

		currentLine := indent
		for _, word := range words {
			if len(currentLine)+len(word)+1 > width {
				result.WriteString(currentLine + "\n")
				currentLine = indent + word
			} else if currentLine == indent {
				currentLine += word
			} else {
				currentLine += " " + word
			}
		}

		if currentLine != indent {
			result.WriteString(currentLine + "\n")
		}
	}

	return strings.TrimSuffix(result.String(), "\n")
}
