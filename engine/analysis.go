package engine

import "sort"

// HandAnalysis profiles a partial hand (the three player cards, or
// those plus the first community card) for strategy decisions. It
// captures the made combinations and the live draws without committing
// to a full five-card evaluation.
type HandAnalysis struct {
	Cards []Card

	// Made combinations.
	PairRank Rank // 0 when no pair
	Trips    bool
	TwoPair  bool

	// Draw structure.
	SuitedCount   int  // size of the largest single-suit group
	DistinctRanks int
	Spread        int  // tightest window over distinct ranks, ace dual; -1 when a pair blocks the draw
	HighCards     int  // cards ranked ten or higher
	AllRoyalRanks bool // every card ten or higher
}

// PayingPair reports a made pair of tens or better.
func (a HandAnalysis) PayingPair() bool {
	return a.PairRank >= Ten
}

// FlushDraw reports that every card shares one suit.
func (a HandAnalysis) FlushDraw() bool {
	return a.SuitedCount == len(a.Cards)
}

// StraightDraw reports that the distinct ranks fit a five-card window:
// spread at most 4 with no rank repeated.
func (a HandAnalysis) StraightDraw() bool {
	return a.Spread >= 0 && a.Spread <= 4
}

// OpenStraightDraw reports a fully open run (spread exactly one less
// than the card count), which can extend on either end.
func (a HandAnalysis) OpenStraightDraw() bool {
	return a.Spread == len(a.Cards)-1
}

// RoyalDraw reports suited cards that are all ten or higher.
func (a HandAnalysis) RoyalDraw() bool {
	return a.FlushDraw() && a.AllRoyalRanks
}

// AnalyzeCards profiles 3 or 4 visible cards.
func AnalyzeCards(cards []Card) HandAnalysis {
	a := HandAnalysis{Cards: cards, Spread: -1}

	rankCounts := make(map[Rank]int, len(cards))
	suitCounts := make(map[Suit]int, 4)
	for _, c := range cards {
		rankCounts[c.Rank]++
		suitCounts[c.Suit]++
		if c.Rank >= Ten {
			a.HighCards++
		}
	}
	a.AllRoyalRanks = a.HighCards == len(cards)
	a.DistinctRanks = len(rankCounts)

	pairs := 0
	for rank, count := range rankCounts {
		switch {
		case count >= 3:
			a.Trips = true
			a.PairRank = rank
		case count == 2:
			pairs++
			if rank > a.PairRank {
				a.PairRank = rank
			}
		}
	}
	a.TwoPair = pairs == 2

	for _, count := range suitCounts {
		if count > a.SuitedCount {
			a.SuitedCount = count
		}
	}

	if a.DistinctRanks == len(cards) {
		a.Spread = rankSpread(cards)
	}
	return a
}

// rankSpread is the tightest max-minus-min over the distinct ranks,
// trying the ace both high and low.
func rankSpread(cards []Card) int {
	high := make([]int, 0, len(cards))
	low := make([]int, 0, len(cards))
	hasAce := false
	for _, c := range cards {
		high = append(high, int(c.Rank))
		if c.Rank == Ace {
			hasAce = true
			low = append(low, 1)
		} else {
			low = append(low, int(c.Rank))
		}
	}
	spread := spanOf(high)
	if hasAce {
		if s := spanOf(low); s < spread {
			spread = s
		}
	}
	return spread
}

func spanOf(vals []int) int {
	sort.Ints(vals)
	return vals[len(vals)-1] - vals[0]
}
