package engine

import (
	"fmt"
	"sort"
)

// FiveCardCategory orders the eleven payable hand classes. The pair
// class is split at tens because the main paytable pays tens-or-better
// and nothing below; keeping the split in the category order means the
// total order alone decides whether a hand pays.
type FiveCardCategory int

const (
	HighCard FiveCardCategory = iota
	PairBelowTens
	PairTensOrBetter
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var fiveCardNames = map[FiveCardCategory]string{
	HighCard:         "High Card",
	PairBelowTens:    "Pair (Below Tens)",
	PairTensOrBetter: "Pair (Tens or Better)",
	TwoPair:          "Two Pair",
	ThreeOfAKind:     "Three of a Kind",
	Straight:         "Straight",
	Flush:            "Flush",
	FullHouse:        "Full House",
	FourOfAKind:      "Four of a Kind",
	StraightFlush:    "Straight Flush",
	RoyalFlush:       "Royal Flush",
}

func (c FiveCardCategory) String() string {
	if s, ok := fiveCardNames[c]; ok {
		return s
	}
	return fmt.Sprintf("FiveCardCategory(%d)", int(c))
}

// FiveCardResult is the immutable outcome of evaluating five cards.
// Primary holds the category's own tie-break ranks (quad rank, trips
// then pair for a full house, the straight's high card, ...); Kickers
// holds the leftover ranks in descending order.
type FiveCardResult struct {
	Category FiveCardCategory
	Primary  []Rank
	Kickers  []Rank
}

// Compare returns -1, 0, or 1. Ordering is lexicographic over
// (category, primary ranks, kickers), each rank by numeric value.
func (r FiveCardResult) Compare(other FiveCardResult) int {
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

func compareRanks(a, b []Rank) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// EvaluateFiveCard maps exactly five distinct cards to their hand rank.
func EvaluateFiveCard(cards []Card) (FiveCardResult, error) {
	if len(cards) != 5 {
		return FiveCardResult{}, usageErrorf("five-card evaluation requires 5 cards, got %d", len(cards))
	}
	if err := checkDistinct(cards); err != nil {
		return FiveCardResult{}, err
	}

	groups := groupByRank(cards)
	flush := sameSuit(cards)
	straightHigh, straight := straightHighRank(ranksOf(cards), 5)

	switch {
	case flush && straight && straightHigh == Ace:
		return FiveCardResult{Category: RoyalFlush}, nil
	case flush && straight:
		return FiveCardResult{Category: StraightFlush, Primary: []Rank{straightHigh}}, nil
	case groups[0].count == 4:
		return FiveCardResult{
			Category: FourOfAKind,
			Primary:  []Rank{groups[0].rank},
			Kickers:  []Rank{groups[1].rank},
		}, nil
	case groups[0].count == 3 && groups[1].count == 2:
		return FiveCardResult{
			Category: FullHouse,
			Primary:  []Rank{groups[0].rank, groups[1].rank},
		}, nil
	case flush:
		return FiveCardResult{Category: Flush, Primary: singleRanks(groups)}, nil
	case straight:
		return FiveCardResult{Category: Straight, Primary: []Rank{straightHigh}}, nil
	case groups[0].count == 3:
		return FiveCardResult{
			Category: ThreeOfAKind,
			Primary:  []Rank{groups[0].rank},
			Kickers:  []Rank{groups[1].rank, groups[2].rank},
		}, nil
	case groups[0].count == 2 && groups[1].count == 2:
		return FiveCardResult{
			Category: TwoPair,
			Primary:  []Rank{groups[0].rank, groups[1].rank},
			Kickers:  []Rank{groups[2].rank},
		}, nil
	case groups[0].count == 2:
		category := PairBelowTens
		if groups[0].rank >= Ten {
			category = PairTensOrBetter
		}
		return FiveCardResult{
			Category: category,
			Primary:  []Rank{groups[0].rank},
			Kickers:  []Rank{groups[1].rank, groups[2].rank, groups[3].rank},
		}, nil
	default:
		ranks := singleRanks(groups)
		return FiveCardResult{Category: HighCard, Primary: ranks[:1], Kickers: ranks[1:]}, nil
	}
}

type rankGroup struct {
	rank  Rank
	count int
}

// groupByRank buckets the cards by rank and sorts the buckets by count
// then rank, both descending, so the dominant group always leads.
func groupByRank(cards []Card) []rankGroup {
	counts := make(map[Rank]int, len(cards))
	for _, c := range cards {
		counts[c.Rank]++
	}
	groups := make([]rankGroup, 0, len(counts))
	for rank, count := range counts {
		groups = append(groups, rankGroup{rank: rank, count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})
	return groups
}

func singleRanks(groups []rankGroup) []Rank {
	ranks := make([]Rank, len(groups))
	for i, g := range groups {
		ranks[i] = g.rank
	}
	return ranks
}

func ranksOf(cards []Card) []Rank {
	ranks := make([]Rank, len(cards))
	for i, c := range cards {
		ranks[i] = c.Rank
	}
	return ranks
}

func sameSuit(cards []Card) bool {
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

// straightHighRank reports whether the given ranks form one contiguous
// window of the required size, trying the ace both high (14) and low
// (1). The wheel therefore counts as a straight whose high card is the
// window top (Five for A-2-3-4-5, Three for A-2-3), and wrap-around
// windows such as K-A-2 never qualify under either interpretation.
func straightHighRank(ranks []Rank, size int) (Rank, bool) {
	if high, ok := contiguous(ranks, size); ok {
		return high, true
	}
	low := make([]Rank, len(ranks))
	for i, r := range ranks {
		if r == Ace {
			low[i] = 1
		} else {
			low[i] = r
		}
	}
	if high, ok := contiguous(low, size); ok {
		return high, true
	}
	return 0, false
}

func contiguous(ranks []Rank, size int) (Rank, bool) {
	if len(ranks) != size {
		return 0, false
	}
	sorted := make([]Rank, len(ranks))
	copy(sorted, ranks)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1]+1 {
			return 0, false
		}
	}
	return sorted[len(sorted)-1], true
}

func checkDistinct(cards []Card) error {
	seen := make(map[Card]struct{}, len(cards))
	for _, c := range cards {
		if _, dup := seen[c]; dup {
			return usageErrorf("duplicate card %s in hand", c)
		}
		seen[c] = struct{}{}
	}
	return nil
}
