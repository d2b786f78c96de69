package engine

// HandResult is the immutable outcome of one played hand.
type HandResult struct {
	HandID         int
	PlayerCards    []Card
	CommunityCards []Card
	Final          FiveCardResult
	Bonus          *ThreeCardResult
	Bet1           Decision
	Bet2           Decision
	AtRisk         int64 // base-bet circles still riding at resolution
	MainNet        int64
	BonusNet       int64
}

// Net is the hand's total profit or loss.
func (r HandResult) Net() int64 {
	return r.MainNet + r.BonusNet
}

// Game plays single hands against one deck with an injected strategy
// and paytables. The deck is shared with the caller, who resets and
// reshuffles it between hands; Game itself never reseeds anything.
type Game struct {
	deck          *Deck
	strategy      Strategy
	paytable      Paytable
	bonusPaytable BonusPaytable
	discardCount  int
	lastDiscarded []Card
}

// NewGame composes a game engine. discardCount is how many cards the
// dealer burns between the bet-1 decision and the first reveal.
func NewGame(deck *Deck, strategy Strategy, paytable Paytable, bonus BonusPaytable, discardCount int) *Game {
	return &Game{
		deck:          deck,
		strategy:      strategy,
		paytable:      paytable,
		bonusPaytable: bonus,
		discardCount:  discardCount,
	}
}

// PlayHand plays exactly one hand: deal three, decide bet1, burn,
// reveal, decide bet2, reveal, resolve. The burned cards are consumed
// from the deck and never reach any evaluation. A deck with too few
// cards surfaces as DeckExhaustedError.
func (g *Game) PlayHand(handID int, baseBet, bonusBet int64, ctx HandContext) (HandResult, error) {
	if baseBet < 1 {
		return HandResult{}, usageErrorf("base bet must be positive, got %d", baseBet)
	}
	if bonusBet < 0 {
		return HandResult{}, usageErrorf("bonus bet must not be negative, got %d", bonusBet)
	}

	hand := NewHandState()

	player, err := g.deck.Deal(3)
	if err != nil {
		return HandResult{}, err
	}
	if err := hand.DealPlayer(player); err != nil {
		return HandResult{}, err
	}

	bet1 := g.strategy.DecideBet1(AnalyzeCards(hand.PlayerCards()), ctx)
	if err := hand.DecideBet1(bet1); err != nil {
		return HandResult{}, err
	}

	g.lastDiscarded = nil
	if g.discardCount > 0 {
		burned, err := g.deck.Deal(g.discardCount)
		if err != nil {
			return HandResult{}, err
		}
		g.lastDiscarded = burned
	}

	first, err := g.deck.Deal(1)
	if err != nil {
		return HandResult{}, err
	}
	if err := hand.RevealFirst(first[0]); err != nil {
		return HandResult{}, err
	}

	bet2 := g.strategy.DecideBet2(AnalyzeCards(hand.VisibleCards()), ctx)
	if err := hand.DecideBet2(bet2); err != nil {
		return HandResult{}, err
	}

	second, err := g.deck.Deal(1)
	if err != nil {
		return HandResult{}, err
	}
	if err := hand.RevealSecond(second[0]); err != nil {
		return HandResult{}, err
	}

	return g.resolve(handID, hand, baseBet, bonusBet)
}

// resolve evaluates the finished hand and settles every active circle
// plus the optional bonus side bet on the original three player cards.
func (g *Game) resolve(handID int, hand *HandState, baseBet, bonusBet int64) (HandResult, error) {
	final, err := hand.FinalHand()
	if err != nil {
		return HandResult{}, err
	}
	fiveCard, err := EvaluateFiveCard(final)
	if err != nil {
		return HandResult{}, err
	}

	result := HandResult{
		HandID:         handID,
		PlayerCards:    hand.PlayerCards(),
		CommunityCards: final[3:],
		Final:          fiveCard,
		Bet1:           *hand.bet1,
		Bet2:           *hand.bet2,
		AtRisk:         hand.BetsAtRisk(baseBet),
	}

	circles := int64(1) // bet3 always rides
	if hand.Bet1Active() {
		circles++
	}
	if hand.Bet2Active() {
		circles++
	}
	result.MainNet = circles * g.paytable.Payout(fiveCard.Category, baseBet)

	if bonusBet > 0 {
		threeCard, err := EvaluateThreeCard(hand.PlayerCards())
		if err != nil {
			return HandResult{}, err
		}
		result.Bonus = &threeCard
		result.BonusNet = g.bonusPaytable.BonusPayout(threeCard.Category, bonusBet)
	}

	return result, nil
}

// LastDiscardedCards returns the cards burned during the most recent
// hand, for statistical audit of the discard mechanism.
func (g *Game) LastDiscardedCards() []Card {
	out := make([]Card, len(g.lastDiscarded))
	copy(out, g.lastDiscarded)
	return out
}
