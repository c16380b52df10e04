package game

import (
	"go.uber.org/zap"
)

// Reporter receives everything the player sees during a session.
type Reporter interface {
	Banner(r Range)
	Reveal(target uint32)
	Prompt()
	Echo(guess uint32)
	Outcome(o Outcome)
}

// Result summarises a finished session.
type Result struct {
	SessionID string
	Target    uint32
	Attempts  int
	Rejected  int
}

// Session drives a Game from a LineSource until the target is matched.
type Session struct {
	game    *Game
	in      LineSource
	out     Reporter
	reveal  bool
	started bool
	logger  *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithRevealTarget prints the secret right after the banner. Debug only.
func WithRevealTarget(reveal bool) Option {
	return func(s *Session) { s.reveal = reveal }
}

// WithLogger sets the diagnostic logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession creates the game for r and binds it to in and out.
func NewSession(r Range, targets TargetSource, in LineSource, out Reporter, opts ...Option) (*Session, error) {
	g, err := New(r, targets)
	if err != nil {
		return nil, err
	}
	s := &Session{
		game:   g,
		in:     in,
		out:    out,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("session_id", g.ID()))
	return s, nil
}

// Game exposes the underlying state, mainly for tests.
func (s *Session) Game() *Game {
	return s.game
}

// Start announces the game. Safe to call more than once; only the first call
// has any effect.
func (s *Session) Start() {
	if s.started {
		return
	}
	s.started = true
	s.logger.Info("session started", zap.Stringer("range", s.game.Range()))
	s.out.Banner(s.game.Range())
	if s.reveal {
		s.logger.Debug("revealing target")
		s.out.Reveal(s.game.Target())
	}
}

// Run loops prompt, read, parse, classify and report until the guess matches.
// Malformed lines are skipped without an outcome. A failing LineSource ends
// the session with its error.
func (s *Session) Run() (Result, error) {
	s.Start()
	for s.game.State() != Matched {
		s.out.Prompt()
		raw, err := s.in.ReadLine()
		if err != nil {
			s.logger.Debug("input failed", zap.Error(err), zap.Int("attempts", s.game.Attempts()))
			return s.result(), err
		}
		attempt, err := s.game.Submit(raw)
		if err != nil {
			if IsRecoverable(err) {
				s.logger.Debug("guess rejected", zap.Error(err))
				continue
			}
			return s.result(), err
		}
		s.out.Echo(attempt.Guess)
		s.logger.Debug("guess classified",
			zap.Uint32("guess", attempt.Guess),
			zap.Stringer("outcome", attempt.Outcome))
		s.out.Outcome(attempt.Outcome)
	}
	res := s.result()
	s.logger.Info("session matched",
		zap.Int("attempts", res.Attempts),
		zap.Int("rejected", res.Rejected))
	return res, nil
}

func (s *Session) result() Result {
	return s.game.Result()
}
