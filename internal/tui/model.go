// Package tui runs the guessing game as a full-screen bubbletea program.
// It drives the same game.Game as the line-oriented session.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"guessgame/internal/game"
	"guessgame/internal/ui"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// ErrAborted is returned when the player quits before matching the target.
var ErrAborted = errors.New("game aborted")

// inputClosedMsg is sent once the input stream reaches EOF.
type inputClosedMsg struct{}

type entry struct {
	guess   uint32
	outcome game.Outcome
}

// Model is the bubbletea model for one game.
type Model struct {
	game    *game.Game
	input   textinput.Model
	styles  ui.Styles
	reveal  bool
	history []entry
	hint    string
	aborted bool
	closed  bool
	logger  *zap.Logger
}

// Option configures a Model.
type Option func(*Model)

// WithRevealTarget shows the secret under the title. Debug only.
func WithRevealTarget(reveal bool) Option {
	return func(m *Model) { m.reveal = reveal }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// New builds a focused model for g.
func New(g *game.Game, styles ui.Styles, opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("%d-%d", g.Range().Min, g.Range().Max)
	ti.Prompt = "│ "
	ti.CharLimit = 20
	ti.Width = 20
	ti.PromptStyle = styles.Prompt
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()

	m := Model{
		game:   g,
		input:  ti,
		styles: styles,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.logger = m.logger.With(zap.String("session_id", g.ID()))
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(inputClosedMsg); ok {
		if m.game.State() != game.Matched && !m.aborted {
			m.closed = true
			m.logger.Debug("input closed", zap.Int("attempts", m.game.Attempts()))
		}
		return m, tea.Quit
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			if m.game.State() != game.Matched {
				m.aborted = true
				m.logger.Info("game aborted", zap.Int("attempts", m.game.Attempts()))
			}
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	if m.game.State() == game.Matched {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	attempt, err := m.game.Submit(m.input.Value())
	switch {
	case errors.Is(err, game.ErrSessionOver):
		return m, tea.Quit
	case err != nil:
		m.logger.Debug("guess rejected", zap.Error(err))
		m.hint = fmt.Sprintf("%q is not a whole number. Try again.", strings.TrimSpace(m.input.Value()))
		m.input.Reset()
		return m, nil
	}

	m.hint = ""
	m.input.Reset()
	m.history = append(m.history, entry{guess: attempt.Guess, outcome: attempt.Outcome})
	m.logger.Debug("guess classified",
		zap.Uint32("guess", attempt.Guess),
		zap.Stringer("outcome", attempt.Outcome))

	if attempt.Outcome == game.Match {
		m.input.Blur()
		m.logger.Info("session matched", zap.Int("attempts", m.game.Attempts()))
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	r := m.game.Range()

	b.WriteString(m.styles.Title.Render("Guess the number!"))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("The secret is between %d and %d.", r.Min, r.Max)))
	b.WriteString("\n")
	if m.reveal {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("The secret number is: %d", m.game.Target())))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, e := range m.history {
		b.WriteString(m.styles.Echo.Render(fmt.Sprintf("You guessed: %d", e.guess)))
		b.WriteString("  ")
		b.WriteString(m.styles.ForOutcome(e.outcome).Render(e.outcome.Message()))
		b.WriteString("\n")
	}

	if m.game.State() == game.Matched {
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("Solved in %d guesses.", m.game.Attempts())))
		b.WriteString("\n")
		return b.String()
	}

	if m.hint != "" {
		b.WriteString(m.styles.Hint.Render(m.hint))
		b.WriteString("\n")
	}
	b.WriteString("Please input your guess.\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render("Enter to guess • Esc to quit"))
	b.WriteString("\n")
	return b.String()
}

// Aborted reports whether the player quit before winning.
func (m Model) Aborted() bool {
	return m.aborted
}

// InputClosed reports whether the input ended before the player won.
func (m Model) InputClosed() bool {
	return m.closed
}

// Game returns the game driven by the model.
func (m Model) Game() *game.Game {
	return m.game
}

// eofReader tells the program when its input runs dry. bubbletea stops
// reading on EOF without notifying the model.
type eofReader struct {
	r io.Reader
	p *tea.Program
}

func (e *eofReader) Read(b []byte) (int, error) {
	n, err := e.r.Read(b)
	if errors.Is(err, io.EOF) && e.p != nil {
		e.p.Send(inputClosedMsg{})
	}
	return n, err
}

// Run starts the program on in/out and blocks until it exits. Input that
// ends before a win returns game.ErrInputClosed.
func Run(ctx context.Context, m Model, in io.Reader, out io.Writer) (game.Result, error) {
	src := &eofReader{r: in}
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(src),
		tea.WithOutput(out),
	)
	src.p = p
	final, err := p.Run()
	if err != nil {
		return m.game.Result(), fmt.Errorf("tui: %w", err)
	}
	fm, ok := final.(Model)
	if !ok {
		return m.game.Result(), fmt.Errorf("tui: unexpected model %T", final)
	}
	if fm.Aborted() {
		return fm.game.Result(), ErrAborted
	}
	if fm.InputClosed() {
		return fm.game.Result(), game.ErrInputClosed
	}
	return fm.game.Result(), nil
}
