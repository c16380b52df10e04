// Package game implements the number guessing session: target selection,
// guess parsing, classification and the read-compare-report loop.
package game

import (
	"fmt"

	"github.com/google/uuid"
)

// State is the position of a game in its two-state lifecycle.
type State int

const (
	AwaitingInput State = iota
	Matched
)

func (s State) String() string {
	if s == Matched {
		return "matched"
	}
	return "awaiting_input"
}

// Attempt is one accepted guess and how it compared to the target.
type Attempt struct {
	Guess   uint32
	Outcome Outcome
}

// Game holds the secret for one session and tracks its state. The target is
// fixed at construction and never changes.
type Game struct {
	id       string
	rng      Range
	target   uint32
	state    State
	attempts int
	rejected int
}

// New validates r and draws the target from src.
func New(r Range, src TargetSource) (*Game, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = RandomTarget{}
	}
	target := src.Target(r)
	if !r.Contains(target) {
		return nil, fmt.Errorf("%w: target %d outside %s", ErrInvalidRange, target, r)
	}
	return &Game{
		id:     uuid.NewString(),
		rng:    r,
		target: target,
		state:  AwaitingInput,
	}, nil
}

func (g *Game) ID() string     { return g.id }
func (g *Game) Range() Range   { return g.rng }
func (g *Game) Target() uint32 { return g.target }
func (g *Game) State() State   { return g.state }

// Attempts counts accepted guesses, Rejected counts malformed ones.
func (g *Game) Attempts() int { return g.attempts }
func (g *Game) Rejected() int { return g.rejected }

// Result summarises the game so far.
func (g *Game) Result() Result {
	return Result{
		SessionID: g.id,
		Target:    g.target,
		Attempts:  g.attempts,
		Rejected:  g.rejected,
	}
}

// Submit parses raw and compares it to the target. Malformed text returns an
// error wrapping ErrMalformedGuess and leaves the state untouched. The first
// Match moves the game to Matched; any later Submit returns ErrSessionOver.
func (g *Game) Submit(raw string) (Attempt, error) {
	if g.state == Matched {
		return Attempt{}, ErrSessionOver
	}
	guess, err := ParseGuess(raw)
	if err != nil {
		g.rejected++
		return Attempt{}, err
	}
	g.attempts++
	outcome := Classify(guess, g.target)
	if outcome == Match {
		g.state = Matched
	}
	return Attempt{Guess: guess, Outcome: outcome}, nil
}
