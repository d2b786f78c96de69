package simulation

import (
	"math"

	"ridesim/engine"
)

// Summary holds run-level statistics aggregated over every result.
type Summary struct {
	Results     int
	TotalHands  int
	TotalProfit int64
	BonusProfit int64

	MeanProfit   float64 // per result
	StdDevProfit float64 // per result, population form
	EVPerHand    float64
	MinProfit    int64
	MaxProfit    int64

	StopReasons map[StopReason]int
	Categories  map[engine.FiveCardCategory]int
}

// Summarize computes run-level statistics from merged session results.
func Summarize(results []SessionResult) Summary {
	s := Summary{
		Results:     len(results),
		StopReasons: make(map[StopReason]int),
		Categories:  make(map[engine.FiveCardCategory]int),
	}
	if len(results) == 0 {
		return s
	}

	s.MinProfit = results[0].Profit
	s.MaxProfit = results[0].Profit
	for _, r := range results {
		s.TotalHands += r.HandsPlayed
		s.TotalProfit += r.Profit
		s.BonusProfit += r.BonusProfit
		s.StopReasons[r.StopReason]++
		for category, count := range r.Categories {
			s.Categories[category] += count
		}
		if r.Profit < s.MinProfit {
			s.MinProfit = r.Profit
		}
		if r.Profit > s.MaxProfit {
			s.MaxProfit = r.Profit
		}
	}

	s.MeanProfit = float64(s.TotalProfit) / float64(len(results))
	var sumSq float64
	for _, r := range results {
		d := float64(r.Profit) - s.MeanProfit
		sumSq += d * d
	}
	s.StdDevProfit = math.Sqrt(sumSq / float64(len(results)))
	if s.TotalHands > 0 {
		s.EVPerHand = float64(s.TotalProfit) / float64(s.TotalHands)
	}
	return s
}
