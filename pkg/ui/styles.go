package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/helmcode/news-analyzer/pkg/formatter"
	"github.com/helmcode/news-analyzer/pkg/model"
)

var (
	textColor   = lipgloss.Color("#333333")
	mutedColor  = lipgloss.Color("#555555")
	borderColor = lipgloss.Color("#e0e0e0")
	buttonColor = lipgloss.Color("#2196F3")
)

// Styles holds the lipgloss styles for the screen.
type Styles struct {
	Header       lipgloss.Style
	Label        lipgloss.Style
	Input        lipgloss.Style
	Button       lipgloss.Style
	ButtonBusy   lipgloss.Style
	Results      lipgloss.Style
	ScoreLabel   lipgloss.Style
	SectionTitle lipgloss.Style
	Body         lipgloss.Style
	RedFlagIcon  lipgloss.Style
	RecIcon      lipgloss.Style
	ToastError   lipgloss.Style
	Help         lipgloss.Style
	Spinner      lipgloss.Style
}

// DefaultStyles returns the screen palette.
func DefaultStyles() Styles {
	return Styles{
		Header:       lipgloss.NewStyle().Bold(true).Foreground(textColor).Padding(0, 1),
		Label:        lipgloss.NewStyle().Bold(true).Foreground(textColor),
		Input:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderColor),
		Button:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(buttonColor).Padding(0, 2),
		ButtonBusy:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(buttonColor).Faint(true).Padding(0, 2),
		Results:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderColor).Padding(0, 1),
		ScoreLabel:   lipgloss.NewStyle().Bold(true).Foreground(textColor),
		SectionTitle: lipgloss.NewStyle().Bold(true).Foreground(textColor).MarginTop(1),
		Body:         lipgloss.NewStyle().Foreground(mutedColor),
		RedFlagIcon:  lipgloss.NewStyle().Foreground(lipgloss.Color(formatter.BadHex)),
		RecIcon:      lipgloss.NewStyle().Foreground(lipgloss.Color(formatter.GoodHex)),
		ToastError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color(formatter.BadHex)).Padding(0, 1),
		Help:         lipgloss.NewStyle().Foreground(lipgloss.Color("#9e9e9e")),
		Spinner:      lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")),
	}
}

// Score returns the style for a score in band.
func (s Styles) Score(band model.Band) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(formatter.BandHex(band)))
}
