package engine

import "fmt"

// Phase tags one hand's position in the strictly linear
// deal/decide/reveal/decide/reveal/resolve sequence. There is no
// re-entry: every transition advances by exactly one phase or fails.
type Phase int

const (
	PhaseDeal Phase = iota
	PhaseBet1Decision
	PhaseFirstReveal
	PhaseBet2Decision
	PhaseSecondReveal
	PhaseResolved
)

var phaseNames = map[Phase]string{
	PhaseDeal:         "DEAL",
	PhaseBet1Decision: "BET1_DECISION",
	PhaseFirstReveal:  "FIRST_REVEAL",
	PhaseBet2Decision: "BET2_DECISION",
	PhaseSecondReveal: "SECOND_REVEAL",
	PhaseResolved:     "RESOLVED",
}

func (p Phase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Decision is a player's choice at a betting circle.
type Decision int

const (
	Pull Decision = iota
	Ride
)

func (d Decision) String() string {
	if d == Ride {
		return "RIDE"
	}
	return "PULL"
}

// HandState tracks one hand: the three player cards, the growing
// community list, the two withdrawable bet decisions, and the current
// phase. Community count and decision presence are kept consistent
// with the phase at all times. The third circle can never be pulled,
// so it has no decision field.
type HandState struct {
	phase     Phase
	player    []Card
	community []Card
	bet1      *Decision
	bet2      *Decision
}

// NewHandState returns a hand awaiting its deal.
func NewHandState() *HandState {
	return &HandState{
		phase:     PhaseDeal,
		community: make([]Card, 0, 2),
	}
}

// Phase reports the current phase.
func (h *HandState) Phase() Phase {
	return h.phase
}

func (h *HandState) require(op string, required Phase) error {
	if h.phase != required {
		return &PhaseError{Current: h.phase, Required: required, Op: op}
	}
	return nil
}

// DealPlayer records the three player cards and advances to the first
// betting decision.
func (h *HandState) DealPlayer(cards []Card) error {
	if err := h.require("deal", PhaseDeal); err != nil {
		return err
	}
	if len(cards) != 3 {
		return usageErrorf("deal requires 3 player cards, got %d", len(cards))
	}
	if err := checkDistinct(cards); err != nil {
		return err
	}
	h.player = make([]Card, 3)
	copy(h.player, cards)
	h.phase = PhaseBet1Decision
	return nil
}

// DecideBet1 records the first circle's decision and advances to the
// first community reveal. Pull withdraws the bet.
func (h *HandState) DecideBet1(d Decision) error {
	if err := h.require("bet1 decision", PhaseBet1Decision); err != nil {
		return err
	}
	h.bet1 = &d
	h.phase = PhaseFirstReveal
	return nil
}

// RevealFirst exposes the first community card and advances to the
// second betting decision.
func (h *HandState) RevealFirst(card Card) error {
	if err := h.require("first reveal", PhaseFirstReveal); err != nil {
		return err
	}
	h.community = append(h.community, card)
	h.phase = PhaseBet2Decision
	return nil
}

// DecideBet2 records the second circle's decision and advances to the
// second community reveal.
func (h *HandState) DecideBet2(d Decision) error {
	if err := h.require("bet2 decision", PhaseBet2Decision); err != nil {
		return err
	}
	h.bet2 = &d
	h.phase = PhaseSecondReveal
	return nil
}

// RevealSecond exposes the second community card and resolves the hand.
func (h *HandState) RevealSecond(card Card) error {
	if err := h.require("second reveal", PhaseSecondReveal); err != nil {
		return err
	}
	h.community = append(h.community, card)
	h.phase = PhaseResolved
	return nil
}

// Bet1Active reports whether the first circle is still at risk. Before
// its decision step the bet is committed, so it counts as active.
func (h *HandState) Bet1Active() bool {
	return h.bet1 == nil || *h.bet1 == Ride
}

// Bet2Active reports whether the second circle is still at risk.
func (h *HandState) Bet2Active() bool {
	return h.bet2 == nil || *h.bet2 == Ride
}

// BetsAtRisk sums the base bet over every still-active circle. The
// third circle is always at risk.
func (h *HandState) BetsAtRisk(base int64) int64 {
	total := base // bet3
	if h.Bet1Active() {
		total += base
	}
	if h.Bet2Active() {
		total += base
	}
	return total
}

// VisibleCards returns the cards legitimately visible at the current
// phase: the player's three cards once dealt, plus any revealed
// community cards.
func (h *HandState) VisibleCards() []Card {
	out := make([]Card, 0, len(h.player)+len(h.community))
	out = append(out, h.player...)
	out = append(out, h.community...)
	return out
}

// PlayerCards returns the three hole cards once dealt.
func (h *HandState) PlayerCards() []Card {
	out := make([]Card, len(h.player))
	copy(out, h.player)
	return out
}

// FinalHand returns the full five-card hand. It fails until both
// community cards have been revealed.
func (h *HandState) FinalHand() ([]Card, error) {
	if h.phase != PhaseResolved {
		return nil, &PhaseError{Current: h.phase, Required: PhaseResolved, Op: "final hand"}
	}
	return h.VisibleCards(), nil
}
