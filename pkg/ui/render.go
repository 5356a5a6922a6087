package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/helmcode/news-analyzer/pkg/formatter"
	"github.com/helmcode/news-analyzer/pkg/model"
)

const buttonLabel = "Analyze Text"

// markdownPunct is every ASCII punctuation character CommonMark lets you escape.
const markdownPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// RenderResult lays out a result: banded score, analysis paragraph, then the
// red flag and recommendation lists in the order received.
func RenderResult(result *model.AnalysisResult, width int, styles Styles, renderer *glamour.TermRenderer) string {
	var sb strings.Builder
	item := styles.Body.Width(max(width-2, 10))

	band := formatter.BandFor(result.CredibilityScore)
	sb.WriteString(styles.ScoreLabel.Render("Credibility Score"))
	sb.WriteString("\n")
	sb.WriteString(styles.Score(band).Render(formatter.FormatScore(result.CredibilityScore)))
	sb.WriteString("\n")

	sb.WriteString(styles.SectionTitle.Render("Analysis"))
	sb.WriteString("\n")
	sb.WriteString(renderParagraph(result.Analysis, width, styles, renderer))
	sb.WriteString("\n")

	sb.WriteString(styles.SectionTitle.Render("Red Flags"))
	sb.WriteString("\n")
	for _, flag := range result.RedFlags {
		sb.WriteString(styles.RedFlagIcon.Render(formatter.RedFlagIcon))
		sb.WriteString(" ")
		sb.WriteString(item.Render(flag))
		sb.WriteString("\n")
	}

	sb.WriteString(styles.SectionTitle.Render("Recommendations"))
	sb.WriteString("\n")
	for _, rec := range result.Recommendations {
		sb.WriteString(styles.RecIcon.Render(formatter.RecommendationIcon))
		sb.WriteString(" ")
		sb.WriteString(item.Render(rec))
		sb.WriteString("\n")
	}

	return sb.String()
}

func renderParagraph(text string, width int, styles Styles, renderer *glamour.TermRenderer) string {
	if renderer != nil {
		if out, err := renderer.Render(escapeMarkdown(text)); err == nil {
			return strings.Trim(out, "\n")
		}
	}
	return styles.Body.Width(max(width, 10)).Render(text)
}

// escapeMarkdown turns punctuation into numeric character references, which
// glamour decodes back to the literal character. The text then renders as a
// plain paragraph and glamour only wraps it.
func escapeMarkdown(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if !strings.ContainsRune(markdownPunct, r) {
			sb.WriteRune(r)
			continue
		}
		sb.WriteString("&#")
		sb.WriteString(strconv.Itoa(int(r)))
		sb.WriteByte(';')
	}
	return sb.String()
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render("🛡  Fake News Analyzer"))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Label.Render("Paste news article or text:"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Input.Render(m.textarea.View()))
	sb.WriteString("\n")

	if m.loading {
		sb.WriteString(m.styles.ButtonBusy.Render(m.spinner.View() + " Analyzing..."))
	} else {
		sb.WriteString(m.styles.Button.Render(buttonLabel))
	}
	sb.WriteString("\n")

	if m.result != nil {
		sb.WriteString(m.styles.Results.Render(m.viewport.View()))
		sb.WriteString("\n")
	}

	if m.toast != nil {
		sb.WriteString(m.styles.ToastError.Render("✗ " + m.toast.Text))
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.Help.Render("ctrl+s analyze • pgup/pgdown scroll results • esc quit"))
	return sb.String()
}
