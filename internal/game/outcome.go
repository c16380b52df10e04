package game

// Outcome is the result of comparing a guess with the target.
type Outcome int

const (
	Below Outcome = iota
	Above
	Match
)

// Classify compares guess against target.
func Classify(guess, target uint32) Outcome {
	switch {
	case guess < target:
		return Below
	case guess > target:
		return Above
	default:
		return Match
	}
}

// Message is the line shown to the player for the outcome.
func (o Outcome) Message() string {
	switch o {
	case Below:
		return "Too Small"
	case Above:
		return "Too Large"
	case Match:
		return "You Win!"
	default:
		return ""
	}
}

func (o Outcome) String() string {
	switch o {
	case Below:
		return "below"
	case Above:
		return "above"
	case Match:
		return "match"
	default:
		return "unknown"
	}
}
