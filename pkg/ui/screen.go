// Package ui implements the interactive analysis screen.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/helmcode/news-analyzer/pkg/analyzer"
	"github.com/helmcode/news-analyzer/pkg/model"
	"github.com/helmcode/news-analyzer/pkg/validator"
	"go.uber.org/zap"
)

// State is the screen's position in the idle -> loading -> {success, error} cycle.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

const (
	defaultToastDuration = 3 * time.Second
	inputHeight          = 6
	// header, label, input borders, button, help, toast and spacing
	chromeHeight = inputHeight + 10
	minResults   = 5
)

// Analyzer is what the screen needs from the analysis client.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (*model.AnalysisResult, error)
}

type (
	analysisDoneMsg struct {
		result *model.AnalysisResult
		err    error
	}
	toastExpiredMsg struct{ id int }
)

// Toast is a transient notification.
type Toast struct {
	Text string
	id   int
}

// Model is the bubbletea model for the single analysis screen.
type Model struct {
	ctx      context.Context
	analyzer Analyzer
	logger   *zap.Logger

	textarea textarea.Model
	spinner  spinner.Model
	viewport viewport.Model
	renderer *glamour.TermRenderer
	styles   Styles

	state   State
	loading bool
	result  *model.AnalysisResult

	toast         *Toast
	toastSeq      int
	toastDuration time.Duration

	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithToastDuration sets how long notifications stay visible.
func WithToastDuration(d time.Duration) Option {
	return func(m *Model) { m.toastDuration = d }
}

// New builds the screen around a.
func New(ctx context.Context, a Analyzer, opts ...Option) Model {
	styles := DefaultStyles()

	ta := textarea.New()
	ta.Placeholder = "Enter the text you want to analyze..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(78)
	ta.SetHeight(inputHeight)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	vp := viewport.New(80, 20)
	vp.SetContent("")

	m := Model{
		ctx:           ctx,
		analyzer:      a,
		logger:        zap.NewNop(),
		textarea:      ta,
		spinner:       sp,
		viewport:      vp,
		renderer:      newRenderer(76),
		styles:        styles,
		state:         StateIdle,
		toastDuration: defaultToastDuration,
		width:         80,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func newRenderer(width int) *glamour.TermRenderer {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	return renderer
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+s":
			return m.submit()
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case analysisDoneMsg:
		return m.settle(msg)

	case toastExpiredMsg:
		if m.toast != nil && m.toast.id == msg.id {
			m.toast = nil
		}
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// submit validates the input and starts one analysis. It does nothing while
// a request is in flight.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}

	text := m.textarea.Value()
	if err := validator.Validate(text); err != nil {
		m.logger.Debug("Rejected input", zap.Error(err))
		return m.notify(validator.Message)
	}

	m.loading = true
	m.state = StateLoading
	m.result = nil
	m.viewport.SetContent("")
	m.logger.Debug("Submitting analysis", zap.Int("input_bytes", len(text)))

	return m, tea.Batch(m.spinner.Tick, m.analyze(text))
}

func (m Model) analyze(text string) tea.Cmd {
	ctx, a := m.ctx, m.analyzer
	return func() tea.Msg {
		result, err := a.Analyze(ctx, text)
		return analysisDoneMsg{result: result, err: err}
	}
}

// settle leaves the loading state whatever the outcome.
func (m Model) settle(msg analysisDoneMsg) (tea.Model, tea.Cmd) {
	m.loading = false

	if msg.err != nil || msg.result == nil {
		m.state = StateError
		m.result = nil
		m.logger.Warn("Analysis failed", zap.Error(msg.err))
		return m.notify(analyzer.UserMessage(msg.err))
	}

	m.state = StateSuccess
	m.result = msg.result
	m.viewport.SetContent(RenderResult(msg.result, m.viewport.Width, m.styles, m.renderer))
	m.viewport.GotoTop()
	return m, nil
}

// notify replaces the current toast and schedules its removal.
func (m Model) notify(text string) (tea.Model, tea.Cmd) {
	m.toastSeq++
	id := m.toastSeq
	m.toast = &Toast{Text: text, id: id}
	return m, tea.Tick(m.toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (m Model) resize(width, height int) Model {
	if width <= 0 || height <= 0 {
		return m
	}
	m.width = width
	m.height = height

	inner := width - 4
	if inner < 20 {
		inner = 20
	}
	m.textarea.SetWidth(inner)
	m.viewport.Width = inner
	vh := height - chromeHeight
	if vh < minResults {
		vh = minResults
	}
	m.viewport.Height = vh

	m.renderer = newRenderer(inner - 4)
	if m.result != nil {
		m.viewport.SetContent(RenderResult(m.result, m.viewport.Width, m.styles, m.renderer))
	}
	return m
}

// State returns the current screen state.
func (m Model) State() State { return m.state }

// Loading reports whether a request is in flight.
func (m Model) Loading() bool { return m.loading }

// Result returns the displayed result, or nil.
func (m Model) Result() *model.AnalysisResult { return m.result }

// CurrentToast returns the visible notification, or nil.
func (m Model) CurrentToast() *Toast { return m.toast }

// Run starts the screen on the terminal and blocks until the user quits.
func Run(ctx context.Context, a Analyzer, opts ...Option) error {
	p := tea.NewProgram(New(ctx, a, opts...), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
