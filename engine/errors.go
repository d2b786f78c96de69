package engine

import "fmt"

// UsageError reports a local precondition violation: wrong card count,
// duplicate cards, a non-positive deal request. Never retried, always
// fatal to the current call.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

func usageErrorf(format string, args ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// DeckExhaustedError reports a deal request that exceeds the cards still
// in the deck. Fatal to the current hand; the caller decides whether the
// session survives.
type DeckExhaustedError struct {
	Requested int
	Remaining int
}

func (e *DeckExhaustedError) Error() string {
	return fmt.Sprintf("deck exhausted: requested %d cards, %d remaining", e.Requested, e.Remaining)
}

// PhaseError reports a hand-state transition attempted out of order.
type PhaseError struct {
	Current  Phase
	Required Phase
	Op       string
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s requires phase %s, hand is in %s", e.Op, e.Required, e.Current)
}
