// Package policy supplies the stock player policies the simulator
// injects into the game engine: ride/pull strategies and bet-sizing
// systems. Everything here is stateless or locally stateful, so a
// worker can rebuild its policies from the run configuration alone.
package policy

import (
	"fmt"

	"ridesim/engine"
)

// Strategy names accepted by NewStrategy.
const (
	StrategyAlwaysRide = "always-ride"
	StrategyNeverRide  = "never-ride"
	StrategyBasic      = "basic"
)

// NewStrategy builds a strategy from its configuration name.
func NewStrategy(name string) (engine.Strategy, error) {
	switch name {
	case StrategyAlwaysRide:
		return AlwaysRide{}, nil
	case StrategyNeverRide:
		return NeverRide{}, nil
	case StrategyBasic:
		return Basic{}, nil
	}
	return nil, fmt.Errorf("unknown strategy %q", name)
}

// AlwaysRide lets every bet ride. Maximum variance baseline.
type AlwaysRide struct{}

func (AlwaysRide) DecideBet1(engine.HandAnalysis, engine.HandContext) engine.Decision {
	return engine.Ride
}

func (AlwaysRide) DecideBet2(engine.HandAnalysis, engine.HandContext) engine.Decision {
	return engine.Ride
}

// NeverRide pulls both withdrawable bets. Minimum exposure baseline.
type NeverRide struct{}

func (NeverRide) DecideBet1(engine.HandAnalysis, engine.HandContext) engine.Decision {
	return engine.Pull
}

func (NeverRide) DecideBet2(engine.HandAnalysis, engine.HandContext) engine.Decision {
	return engine.Pull
}

// Basic follows the published basic strategy for the game: ride only
// on made paying hands or strong draws.
type Basic struct{}

// DecideBet1 rides on a made paying hand, any three to a royal, or a
// three-card straight-flush draw that keeps enough ways to fill.
func (Basic) DecideBet1(a engine.HandAnalysis, _ engine.HandContext) engine.Decision {
	if a.Trips || a.PayingPair() {
		return engine.Ride
	}
	if a.RoyalDraw() {
		return engine.Ride
	}
	if a.FlushDraw() && a.Spread >= 0 {
		switch {
		// Consecutive run, except the bottom-end runs that can only
		// extend one way (A-2-3, 2-3-4).
		case a.Spread == 2 && !containsRank(a.Cards, engine.Two):
			return engine.Ride
		case a.Spread == 3 && a.HighCards >= 1:
			return engine.Ride
		case a.Spread == 4 && a.HighCards >= 2:
			return engine.Ride
		}
	}
	return engine.Pull
}

// DecideBet2 rides on a made paying hand, four to a flush, an open
// four-card straight with a high card, or four high cards to an inside
// straight.
func (Basic) DecideBet2(a engine.HandAnalysis, _ engine.HandContext) engine.Decision {
	if a.Trips || a.TwoPair || a.PayingPair() {
		return engine.Ride
	}
	if a.FlushDraw() {
		return engine.Ride
	}
	if a.OpenStraightDraw() && a.HighCards >= 1 {
		return engine.Ride
	}
	if a.StraightDraw() && a.HighCards == 4 {
		return engine.Ride
	}
	return engine.Pull
}

func containsRank(cards []engine.Card, rank engine.Rank) bool {
	for _, c := range cards {
		if c.Rank == rank {
			return true
		}
	}
	return false
}
