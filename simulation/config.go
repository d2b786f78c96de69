package simulation

import (
	"fmt"

	"github.com/google/uuid"

	"ridesim/policy"
)

// Config is the full, immutable description of one run. It is copied
// into every worker task; nothing here is shared or mutated after the
// run starts.
type Config struct {
	RunID    string
	BaseSeed uint64

	Sessions        int
	HandsPerSession int
	Seats           int

	Workers             int // 0 = one per CPU
	MinParallelSessions int // below this, run sequentially; 0 = default

	BaseBet      int64
	BonusBet     int64
	Bankroll     int64 // starting bankroll per seat; 0 = unbounded
	StopLoss     int64 // stop once session profit <= -StopLoss; 0 = off
	WinTarget    int64 // stop once session profit >= WinTarget; 0 = off
	DiscardCount int

	Strategy string
	Betting  string
}

// DefaultMinParallelSessions is the cutoff below which goroutine
// dispatch costs more than it saves.
const DefaultMinParallelSessions = 8

// DefaultConfig returns a runnable single-seat configuration. Callers
// override fields explicitly; there are no process-wide defaults.
func DefaultConfig() Config {
	return Config{
		Sessions:        1000,
		HandsPerSession: 100,
		Seats:           1,
		BaseBet:         5,
		DiscardCount:    0,
		Strategy:        policy.StrategyBasic,
		Betting:         policy.BettingFlat,
	}
}

// NewRunID returns a fresh identifier for one run's logs and results.
func NewRunID() string {
	return uuid.NewString()
}

// Validate checks every bound the executor and session runner rely on,
// including that one round physically fits in the deck.
func (c Config) Validate() error {
	if c.Sessions < 1 {
		return fmt.Errorf("sessions must be positive, got %d", c.Sessions)
	}
	if c.HandsPerSession < 1 {
		return fmt.Errorf("hands per session must be positive, got %d", c.HandsPerSession)
	}
	if c.Seats < 1 {
		return fmt.Errorf("seats must be positive, got %d", c.Seats)
	}
	if c.BaseBet < 1 {
		return fmt.Errorf("base bet must be positive, got %d", c.BaseBet)
	}
	if c.BonusBet < 0 {
		return fmt.Errorf("bonus bet must not be negative, got %d", c.BonusBet)
	}
	if c.Bankroll < 0 || c.StopLoss < 0 || c.WinTarget < 0 {
		return fmt.Errorf("bankroll, stop loss, and win target must not be negative")
	}
	if c.DiscardCount < 0 {
		return fmt.Errorf("discard count must not be negative, got %d", c.DiscardCount)
	}
	if need := 3*c.Seats + c.DiscardCount + 2; need > 52 {
		return fmt.Errorf("one round needs %d cards with %d seats and %d discards, deck has 52",
			need, c.Seats, c.DiscardCount)
	}
	if _, err := policy.NewStrategy(c.Strategy); err != nil {
		return err
	}
	if _, err := policy.NewBettingSystem(c.Betting, c.BaseBet); err != nil {
		return err
	}
	return nil
}

// ResultCount is the size of the merged result array: one slot per
// session per seat.
func (c Config) ResultCount() int {
	return c.Sessions * c.Seats
}

// ResultID maps (session, seat) to the slot a result merges into, so
// multi-seat rounds still land in one flat order-stable array.
func (c Config) ResultID(sessionID, seat int) int {
	return sessionID*c.Seats + seat
}

func (c Config) minParallel() int {
	if c.MinParallelSessions > 0 {
		return c.MinParallelSessions
	}
	return DefaultMinParallelSessions
}
