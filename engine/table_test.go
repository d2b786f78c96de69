package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablePlayRound_SeatsShareCommunity(t *testing.T) {
	deck := NewDeck()
	table := NewTable(deck, []Strategy{rideAll{}, rideAll{}}, StandardPaytable(), StandardBonusPaytable(), 0)

	// Unshuffled: seat0 2h 3h 4h, seat1 5h 6h 7h, community 8h 9h.
	results, err := table.PlayRound(0, 5, 0, HandContext{})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, cards(t, "2h 3h 4h"), results[0].PlayerCards)
	assert.Equal(t, cards(t, "5h 6h 7h"), results[1].PlayerCards)
	assert.Equal(t, cards(t, "8h 9h"), results[0].CommunityCards)
	assert.Equal(t, results[0].CommunityCards, results[1].CommunityCards, "one shared draw")

	assert.Equal(t, Flush, results[0].Final.Category)
	assert.Equal(t, StraightFlush, results[1].Final.Category)
	assert.Equal(t, []Rank{Nine}, results[1].Final.Primary)
}

func TestTablePlayRound_IndependentDecisions(t *testing.T) {
	deck := NewDeck()
	table := NewTable(deck, []Strategy{pullAll{}, rideAll{}}, StandardPaytable(), StandardBonusPaytable(), 0)

	results, err := table.PlayRound(0, 5, 0, HandContext{})
	require.NoError(t, err)

	assert.Equal(t, int64(5), results[0].AtRisk, "seat 0 pulled both")
	assert.Equal(t, int64(15), results[1].AtRisk, "seat 1 rode both")
	// Flush at one circle vs straight flush at three.
	assert.Equal(t, int64(8*5), results[0].MainNet)
	assert.Equal(t, int64(3*200*5), results[1].MainNet)
}

func TestTablePlayRound_BurnHappensOnce(t *testing.T) {
	deck := NewDeck()
	table := NewTable(deck, []Strategy{rideAll{}, rideAll{}}, StandardPaytable(), StandardBonusPaytable(), 2)

	results, err := table.PlayRound(0, 5, 0, HandContext{})
	require.NoError(t, err)

	// Seats take 6 cards, then 8h 9h burn, then Th Jh community.
	assert.Equal(t, cards(t, "8h 9h"), table.LastDiscardedCards())
	assert.Equal(t, cards(t, "Th Jh"), results[0].CommunityCards)
	assert.Equal(t, 52-6-2-2, deck.Remaining())
}

func TestTablePlayRound_NoSeats(t *testing.T) {
	table := NewTable(NewDeck(), nil, StandardPaytable(), StandardBonusPaytable(), 0)
	_, err := table.PlayRound(0, 5, 0, HandContext{})

	var usage *UsageError
	require.ErrorAs(t, err, &usage)
}

func TestTablePlayRound_DeckExhaustion(t *testing.T) {
	deck := NewDeck()
	_, err := deck.Deal(48)
	require.NoError(t, err)

	// 4 cards left, two seats need 8.
	table := NewTable(deck, []Strategy{rideAll{}, rideAll{}}, StandardPaytable(), StandardBonusPaytable(), 0)
	_, err = table.PlayRound(0, 5, 0, HandContext{})

	var exhausted *DeckExhaustedError
	require.ErrorAs(t, err, &exhausted)
}
