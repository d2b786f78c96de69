package engine

// Table plays rounds where several seats share the two community cards
// from one deck draw. Each seat keeps its own strategy and its own
// phase-guarded hand state; only the community cards are common.
type Table struct {
	deck          *Deck
	seats         []Strategy
	paytable      Paytable
	bonusPaytable BonusPaytable
	discardCount  int
	lastDiscarded []Card
}

// NewTable composes a multi-seat table. One strategy per seat.
func NewTable(deck *Deck, seats []Strategy, paytable Paytable, bonus BonusPaytable, discardCount int) *Table {
	return &Table{
		deck:          deck,
		seats:         seats,
		paytable:      paytable,
		bonusPaytable: bonus,
		discardCount:  discardCount,
	}
}

// Seats reports the number of seats.
func (t *Table) Seats() int {
	return len(t.seats)
}

// PlayRound plays one physical round: three cards to every seat, each
// seat's bet-1 decision, the dealer burn, the shared first reveal, each
// seat's bet-2 decision, the shared second reveal, then per-seat
// resolution. Results come back in seat order.
func (t *Table) PlayRound(roundID int, baseBet, bonusBet int64, ctx HandContext) ([]HandResult, error) {
	if len(t.seats) == 0 {
		return nil, usageErrorf("table has no seats")
	}

	hands := make([]*HandState, len(t.seats))
	for i := range t.seats {
		hands[i] = NewHandState()
		player, err := t.deck.Deal(3)
		if err != nil {
			return nil, err
		}
		if err := hands[i].DealPlayer(player); err != nil {
			return nil, err
		}
	}

	for i, strategy := range t.seats {
		d := strategy.DecideBet1(AnalyzeCards(hands[i].PlayerCards()), ctx)
		if err := hands[i].DecideBet1(d); err != nil {
			return nil, err
		}
	}

	t.lastDiscarded = nil
	if t.discardCount > 0 {
		burned, err := t.deck.Deal(t.discardCount)
		if err != nil {
			return nil, err
		}
		t.lastDiscarded = burned
	}

	first, err := t.deck.Deal(1)
	if err != nil {
		return nil, err
	}
	for i, strategy := range t.seats {
		if err := hands[i].RevealFirst(first[0]); err != nil {
			return nil, err
		}
		d := strategy.DecideBet2(AnalyzeCards(hands[i].VisibleCards()), ctx)
		if err := hands[i].DecideBet2(d); err != nil {
			return nil, err
		}
	}

	second, err := t.deck.Deal(1)
	if err != nil {
		return nil, err
	}

	results := make([]HandResult, len(t.seats))
	for i := range t.seats {
		if err := hands[i].RevealSecond(second[0]); err != nil {
			return nil, err
		}
		seatGame := &Game{paytable: t.paytable, bonusPaytable: t.bonusPaytable}
		result, err := seatGame.resolve(roundID, hands[i], baseBet, bonusBet)
		if err != nil {
			return nil, err
		}
		results[i] = result
	}
	return results, nil
}

// LastDiscardedCards returns the cards burned during the most recent
// round.
func (t *Table) LastDiscardedCards() []Card {
	out := make([]Card, len(t.lastDiscarded))
	copy(out, t.lastDiscarded)
	return out
}
