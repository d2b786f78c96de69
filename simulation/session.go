package simulation

import (
	"fmt"
	"math/rand"

	"ridesim/engine"
	"ridesim/policy"
)

// StopReason records why a session ended.
type StopReason string

const (
	StopCompleted StopReason = "completed"
	StopBankrupt  StopReason = "bankrupt"
	StopLoss      StopReason = "stop-loss"
	StopWinTarget StopReason = "win-target"
)

// SessionResult is one seat's outcome for one session. It is a pure
// function of (seed, configuration), which is what lets parallel and
// sequential execution produce identical output.
type SessionResult struct {
	SessionID   int
	Seat        int
	HandsPlayed int
	Profit      int64
	BonusProfit int64
	PeakProfit  int64
	MinProfit   int64
	StopReason  StopReason
	Categories  map[engine.FiveCardCategory]int
}

// runSession plays one full session from its derived seed. Every
// mutable collaborator (deck, rng, strategies, betting systems) is
// constructed here, locally, from the immutable configuration.
func runSession(sessionID int, seed uint64, cfg Config) ([]SessionResult, error) {
	rng := rand.New(rand.NewSource(int64(seed)))
	deck := engine.NewDeck()
	paytable := engine.StandardPaytable()
	bonus := engine.StandardBonusPaytable()

	seats := make([]engine.Strategy, cfg.Seats)
	for i := range seats {
		strategy, err := policy.NewStrategy(cfg.Strategy)
		if err != nil {
			return nil, err
		}
		seats[i] = strategy
	}
	// One sizing system per session: every seat at the table bets the
	// same amount each round, and the system observes the round's
	// combined net.
	betting, err := policy.NewBettingSystem(cfg.Betting, cfg.BaseBet)
	if err != nil {
		return nil, err
	}

	results := make([]SessionResult, cfg.Seats)
	for i := range results {
		results[i] = SessionResult{
			SessionID:  sessionID,
			Seat:       i,
			Categories: make(map[engine.FiveCardCategory]int),
		}
	}

	// Single-seat sessions drive the game engine directly; multi-seat
	// sessions share community cards through a table. Both consume the
	// deck in the same order, so seat counts never perturb each other's
	// seed streams.
	var play func(hand int, bet int64, ctx engine.HandContext) ([]engine.HandResult, error)
	if cfg.Seats == 1 {
		game := engine.NewGame(deck, seats[0], paytable, bonus, cfg.DiscardCount)
		play = func(hand int, bet int64, ctx engine.HandContext) ([]engine.HandResult, error) {
			hr, err := game.PlayHand(hand, bet, cfg.BonusBet, ctx)
			if err != nil {
				return nil, err
			}
			return []engine.HandResult{hr}, nil
		}
	} else {
		table := engine.NewTable(deck, seats, paytable, bonus, cfg.DiscardCount)
		play = func(hand int, bet int64, ctx engine.HandContext) ([]engine.HandResult, error) {
			return table.PlayRound(hand, bet, cfg.BonusBet, ctx)
		}
	}

	stop := StopCompleted

	for hand := 0; hand < cfg.HandsPerSession; hand++ {
		ctx := engine.HandContext{
			HandNumber: hand,
			Bankroll:   int64(cfg.Seats)*cfg.Bankroll + totalProfit(results),
			BaseBet:    cfg.BaseBet,
			BonusBet:   cfg.BonusBet,
		}
		bet := betting.Bet(ctx)
		ctx.BaseBet = bet

		// Worst-case exposure: all three circles ride at every seat,
		// plus the side bet.
		exposure := int64(cfg.Seats) * (3*bet + cfg.BonusBet)
		if cfg.Bankroll > 0 && ctx.Bankroll < exposure {
			stop = StopBankrupt
			break
		}

		deck.Reset()
		deck.Shuffle(rng)
		round, err := play(hand, bet, ctx)
		if err != nil {
			return nil, fmt.Errorf("session %d hand %d: %w", sessionID, hand, err)
		}

		var roundNet int64
		for i, hr := range round {
			results[i].HandsPlayed++
			results[i].Profit += hr.Net()
			results[i].BonusProfit += hr.BonusNet
			results[i].Categories[hr.Final.Category]++
			if results[i].Profit > results[i].PeakProfit {
				results[i].PeakProfit = results[i].Profit
			}
			if results[i].Profit < results[i].MinProfit {
				results[i].MinProfit = results[i].Profit
			}
			roundNet += hr.Net()
		}
		betting.RecordResult(roundNet)

		combined := totalProfit(results)
		if cfg.StopLoss > 0 && combined <= -cfg.StopLoss {
			stop = StopLoss
			break
		}
		if cfg.WinTarget > 0 && combined >= cfg.WinTarget {
			stop = StopWinTarget
			break
		}
	}

	for i := range results {
		results[i].StopReason = stop
	}
	return results, nil
}

func totalProfit(results []SessionResult) int64 {
	var total int64
	for _, r := range results {
		total += r.Profit
	}
	return total
}
