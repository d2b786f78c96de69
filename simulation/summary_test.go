package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ridesim/engine"
)

func TestSummarize(t *testing.T) {
	results := []SessionResult{
		{
			SessionID:   0,
			HandsPlayed: 100,
			Profit:      40,
			BonusProfit: 10,
			StopReason:  StopCompleted,
			Categories: map[engine.FiveCardCategory]int{
				engine.HighCard:         60,
				engine.PairTensOrBetter: 40,
			},
		},
		{
			SessionID:   1,
			HandsPlayed: 50,
			Profit:      -20,
			BonusProfit: -5,
			StopReason:  StopBankrupt,
			Categories: map[engine.FiveCardCategory]int{
				engine.HighCard: 30,
				engine.Flush:    20,
			},
		},
		{
			SessionID:   2,
			HandsPlayed: 100,
			Profit:      10,
			StopReason:  StopCompleted,
			Categories: map[engine.FiveCardCategory]int{
				engine.HighCard: 100,
			},
		},
	}

	s := Summarize(results)

	assert.Equal(t, 3, s.Results)
	assert.Equal(t, 250, s.TotalHands)
	assert.Equal(t, int64(30), s.TotalProfit)
	assert.Equal(t, int64(5), s.BonusProfit)
	assert.Equal(t, int64(-20), s.MinProfit)
	assert.Equal(t, int64(40), s.MaxProfit)
	assert.InDelta(t, 10.0, s.MeanProfit, 1e-9)
	assert.InDelta(t, 24.49489742783178, s.StdDevProfit, 1e-9)
	assert.InDelta(t, 30.0/250.0, s.EVPerHand, 1e-9)

	assert.Equal(t, map[StopReason]int{StopCompleted: 2, StopBankrupt: 1}, s.StopReasons)
	assert.Equal(t, 190, s.Categories[engine.HighCard])
	assert.Equal(t, 40, s.Categories[engine.PairTensOrBetter])
	assert.Equal(t, 20, s.Categories[engine.Flush])
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.Results)
	assert.Zero(t, s.TotalProfit)
	assert.Zero(t, s.EVPerHand)
	assert.Empty(t, s.StopReasons)
}
