package engine

// Paytable resolves one circle's net outcome for the final five-card
// hand: a positive multiple of the bet for paying categories, the lost
// bet otherwise.
type Paytable interface {
	Payout(category FiveCardCategory, bet int64) int64
}

// BonusPaytable resolves the three-card side bet.
type BonusPaytable interface {
	BonusPayout(category ThreeCardCategory, bet int64) int64
}

// MultiplierPaytable pays bet times the category's multiplier and
// forfeits the bet for categories absent from the table.
type MultiplierPaytable struct {
	Name        string
	Multipliers map[FiveCardCategory]int64
}

func (p MultiplierPaytable) Payout(category FiveCardCategory, bet int64) int64 {
	if m, ok := p.Multipliers[category]; ok {
		return m * bet
	}
	return -bet
}

// BonusMultiplierPaytable is the three-card analog.
type BonusMultiplierPaytable struct {
	Name        string
	Multipliers map[ThreeCardCategory]int64
}

func (p BonusMultiplierPaytable) BonusPayout(category ThreeCardCategory, bet int64) int64 {
	if m, ok := p.Multipliers[category]; ok {
		return m * bet
	}
	return -bet
}

// StandardPaytable is the common 1000-to-1 Let It Ride schedule. Hands
// below a pair of tens lose.
func StandardPaytable() MultiplierPaytable {
	return MultiplierPaytable{
		Name: "standard",
		Multipliers: map[FiveCardCategory]int64{
			RoyalFlush:       1000,
			StraightFlush:    200,
			FourOfAKind:      50,
			FullHouse:        11,
			Flush:            8,
			Straight:         5,
			ThreeOfAKind:     3,
			TwoPair:          2,
			PairTensOrBetter: 1,
		},
	}
}

// StandardBonusPaytable is a common three-card bonus schedule. Hands
// below a pair lose the side bet.
func StandardBonusPaytable() BonusMultiplierPaytable {
	return BonusMultiplierPaytable{
		Name: "standard",
		Multipliers: map[ThreeCardCategory]int64{
			MiniRoyal:              50,
			ThreeCardStraightFlush: 40,
			ThreeCardTrips:         30,
			ThreeCardStraight:      6,
			ThreeCardFlush:         3,
			ThreeCardPair:          1,
		},
	}
}
