package engine

import "fmt"

// ValidationError marks a recoverable rule breach: wrong turn, wrong
// card count, follow violation. State is never mutated when one is
// returned, so the offending client may retry.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// DealError marks a malformed shoe. Fatal to round start.
type DealError struct {
	Reason string
}

func (e *DealError) Error() string {
	return "deal: " + e.Reason
}

// CorruptionError marks a broken card-conservation invariant. The
// session must refuse further mutation until restarted.
type CorruptionError struct {
	Counted int
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("state corrupt: %d cards accounted for, want %d", e.Counted, ShoeSize)
}

// CheckConservation verifies that hands, the bottom, the trick in
// progress and the trick history account for exactly the full shoe.
func CheckConservation(g GameState) error {
	if g.Phase == PhaseLobby {
		return nil
	}
	n := len(g.Round.Bottom)
	for _, p := range g.Players {
		n += len(p.Hand)
	}
	for _, pl := range g.Round.Trick.Plays {
		n += len(pl.Cards)
	}
	for _, t := range g.Round.History {
		for _, pl := range t.Plays {
			n += len(pl.Cards)
		}
	}
	if n != ShoeSize {
		return &CorruptionError{Counted: n}
	}
	return nil
}
