package ui

import (
	"fmt"
	"io"
	"os"

	"guessgame/internal/game"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Output styles accepted by NewPrinter.
const (
	StyleAuto  = "auto"
	StylePlain = "plain"
	StyleColor = "color"
)

// Printer writes game messages to w, one line each. It implements game.Reporter.
type Printer struct {
	w      io.Writer
	styles Styles
	styled bool
}

var _ game.Reporter = (*Printer)(nil)

// NewPrinter returns a printer for w. style is one of auto, plain and color;
// auto colors only when w is a terminal.
func NewPrinter(w io.Writer, style string, theme Theme) *Printer {
	r := lipgloss.NewRenderer(w)
	styled := false
	switch style {
	case StyleColor:
		styled = true
		r.SetColorProfile(termenv.ANSI256)
	case StylePlain:
	default:
		styled = IsTerminal(w)
	}
	return &Printer{w: w, styles: NewStyles(theme, r), styled: styled}
}

// IsTerminal reports whether w is a terminal file.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Styled reports whether lines carry terminal styling.
func (p *Printer) Styled() bool {
	return p.styled
}

func (p *Printer) line(style lipgloss.Style, text string) {
	if p.styled {
		text = style.Render(text)
	}
	fmt.Fprintln(p.w, text)
}

func (p *Printer) Banner(r game.Range) {
	p.line(p.styles.Title, "Guess the number!")
	p.line(p.styles.Muted, fmt.Sprintf("The secret is between %d and %d.", r.Min, r.Max))
}

func (p *Printer) Reveal(target uint32) {
	p.line(p.styles.Muted, fmt.Sprintf("The secret number is: %d", target))
}

func (p *Printer) Prompt() {
	p.line(p.styles.Prompt, "Please input your guess.")
}

func (p *Printer) Echo(guess uint32) {
	p.line(p.styles.Echo, fmt.Sprintf("You guessed: %d", guess))
}

func (p *Printer) Outcome(o game.Outcome) {
	p.line(p.styles.ForOutcome(o), o.Message())
}

// ForOutcome picks the style for an outcome line.
func (s Styles) ForOutcome(o game.Outcome) lipgloss.Style {
	switch o {
	case game.Below:
		return s.Below
	case game.Above:
		return s.Above
	default:
		return s.Win
	}
}
