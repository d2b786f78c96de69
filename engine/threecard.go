package engine

import "fmt"

// ThreeCardCategory orders the seven bonus hand classes. Unlike the
// five-card game, Flush ranks below Straight here: three-card straights
// are rarer than three-card flushes. Mini Royal (A-K-Q suited) is its
// own class above Straight Flush.
type ThreeCardCategory int

const (
	ThreeCardHighCard ThreeCardCategory = iota
	ThreeCardPair
	ThreeCardFlush
	ThreeCardStraight
	ThreeCardTrips
	ThreeCardStraightFlush
	MiniRoyal
)

var threeCardNames = map[ThreeCardCategory]string{
	ThreeCardHighCard:      "High Card",
	ThreeCardPair:          "Pair",
	ThreeCardFlush:         "Flush",
	ThreeCardStraight:      "Straight",
	ThreeCardTrips:         "Three of a Kind",
	ThreeCardStraightFlush: "Straight Flush",
	MiniRoyal:              "Mini Royal",
}

func (c ThreeCardCategory) String() string {
	if s, ok := threeCardNames[c]; ok {
		return s
	}
	return fmt.Sprintf("ThreeCardCategory(%d)", int(c))
}

// ThreeCardResult is the immutable outcome of evaluating the three-card
// bonus hand.
type ThreeCardResult struct {
	Category ThreeCardCategory
	Primary  []Rank
	Kickers  []Rank
}

// Compare returns -1, 0, or 1 under the three-card total order.
func (r ThreeCardResult) Compare(other ThreeCardResult) int {
	if r.Category != other.Category {
		if r.Category > other.Category {
			return 1
		}
		return -1
	}
	if c := compareRanks(r.Primary, other.Primary); c != 0 {
		return c
	}
	return compareRanks(r.Kickers, other.Kickers)
}

// EvaluateThreeCard maps exactly three distinct cards to their bonus
// hand rank.
func EvaluateThreeCard(cards []Card) (ThreeCardResult, error) {
	if len(cards) != 3 {
		return ThreeCardResult{}, usageErrorf("three-card evaluation requires 3 cards, got %d", len(cards))
	}
	if err := checkDistinct(cards); err != nil {
		return ThreeCardResult{}, err
	}

	groups := groupByRank(cards)
	flush := sameSuit(cards)
	straightHigh, straight := straightHighRank(ranksOf(cards), 3)

	switch {
	case flush && straight && straightHigh == Ace:
		return ThreeCardResult{Category: MiniRoyal}, nil
	case flush && straight:
		return ThreeCardResult{Category: ThreeCardStraightFlush, Primary: []Rank{straightHigh}}, nil
	case groups[0].count == 3:
		return ThreeCardResult{Category: ThreeCardTrips, Primary: []Rank{groups[0].rank}}, nil
	case straight:
		return ThreeCardResult{Category: ThreeCardStraight, Primary: []Rank{straightHigh}}, nil
	case flush:
		return ThreeCardResult{Category: ThreeCardFlush, Primary: singleRanks(groups)}, nil
	case groups[0].count == 2:
		return ThreeCardResult{
			Category: ThreeCardPair,
			Primary:  []Rank{groups[0].rank},
			Kickers:  []Rank{groups[1].rank},
		}, nil
	default:
		ranks := singleRanks(groups)
		return ThreeCardResult{Category: ThreeCardHighCard, Primary: ranks[:1], Kickers: ranks[1:]}, nil
	}
}
