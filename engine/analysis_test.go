package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeCards_MadeHands(t *testing.T) {
	a := AnalyzeCards(cards(t, "Th Tc 4d"))
	assert.Equal(t, Ten, a.PairRank)
	assert.True(t, a.PayingPair())
	assert.False(t, a.Trips)
	assert.Equal(t, -1, a.Spread, "a pair blocks the straight draw")

	a = AnalyzeCards(cards(t, "9h 9c 4d"))
	assert.False(t, a.PayingPair())

	a = AnalyzeCards(cards(t, "7h 7c 7d Kd"))
	assert.True(t, a.Trips)

	a = AnalyzeCards(cards(t, "Th Tc 4d 4c"))
	assert.True(t, a.TwoPair)
	assert.Equal(t, Ten, a.PairRank, "higher pair leads")
}

func TestAnalyzeCards_Draws(t *testing.T) {
	a := AnalyzeCards(cards(t, "Ah Kh Qh"))
	assert.True(t, a.FlushDraw())
	assert.True(t, a.RoyalDraw())
	assert.True(t, a.OpenStraightDraw())
	assert.Equal(t, 3, a.HighCards)

	a = AnalyzeCards(cards(t, "9h 7h 5h"))
	assert.True(t, a.FlushDraw())
	assert.True(t, a.StraightDraw(), "two gaps still fit a five-card window")
	assert.False(t, a.OpenStraightDraw())

	a = AnalyzeCards(cards(t, "9h 8c 7d 6s"))
	assert.True(t, a.OpenStraightDraw())
	assert.False(t, a.FlushDraw())

	// The ace plays low for the wheel draw.
	a = AnalyzeCards(cards(t, "Ah 2h 3h"))
	assert.Equal(t, 2, a.Spread)
	assert.True(t, a.OpenStraightDraw())

	// No wrap-around: K-A-2 spans too far either way.
	a = AnalyzeCards(cards(t, "Kh Ac 2d"))
	assert.False(t, a.StraightDraw())
}
