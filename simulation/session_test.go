package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ridesim/policy"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Sessions = 20
	cfg.HandsPerSession = 50
	cfg.BaseSeed = 42
	return cfg
}

func TestRunSession_Deterministic(t *testing.T) {
	cfg := testConfig()

	a, err := runSession(3, 12345, cfg)
	require.NoError(t, err)
	b, err := runSession(3, 12345, cfg)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed and config, same result")

	c, err := runSession(3, 54321, cfg)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestRunSession_CompletesAllHands(t *testing.T) {
	cfg := testConfig()

	results, err := runSession(0, 7, cfg)
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, 0, r.SessionID)
	assert.Equal(t, 0, r.Seat)
	assert.Equal(t, cfg.HandsPerSession, r.HandsPlayed)
	assert.Equal(t, StopCompleted, r.StopReason)

	hands := 0
	for _, count := range r.Categories {
		hands += count
	}
	assert.Equal(t, r.HandsPlayed, hands, "every hand lands in one category")
}

func TestRunSession_BankruptStopsBeforeTheHand(t *testing.T) {
	cfg := testConfig()
	cfg.Bankroll = 1 // cannot cover a single 3-circle hand at base bet 5

	results, err := runSession(0, 7, cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, results[0].HandsPlayed)
	assert.Equal(t, StopBankrupt, results[0].StopReason)
}

func TestRunSession_StopLossAndWinTarget(t *testing.T) {
	cfg := testConfig()
	cfg.HandsPerSession = 100000
	cfg.Strategy = policy.StrategyAlwaysRide
	cfg.StopLoss = 30
	cfg.WinTarget = 30

	results, err := runSession(0, 7, cfg)
	require.NoError(t, err)

	r := results[0]
	assert.Less(t, r.HandsPlayed, cfg.HandsPerSession, "a +-30 swing arrives fast at bet 5")
	switch r.StopReason {
	case StopLoss:
		assert.LessOrEqual(t, r.Profit, int64(-30))
	case StopWinTarget:
		assert.GreaterOrEqual(t, r.Profit, int64(30))
	default:
		t.Fatalf("expected a limit stop, got %q", r.StopReason)
	}
}

func TestRunSession_MultiSeat(t *testing.T) {
	cfg := testConfig()
	cfg.Seats = 3
	cfg.HandsPerSession = 25

	results, err := runSession(5, 99, cfg)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for seat, r := range results {
		assert.Equal(t, 5, r.SessionID)
		assert.Equal(t, seat, r.Seat)
		assert.Equal(t, 25, r.HandsPlayed)
		assert.Equal(t, StopCompleted, r.StopReason)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := testConfig()
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.Sessions = 0
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.BaseBet = 0
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Strategy = "hunch"
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Betting = "labouchere"
	assert.Error(t, bad.Validate())

	// 17 seats need 3*17+2 = 53 cards.
	bad = cfg
	bad.Seats = 17
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Seats = 16
	bad.DiscardCount = 3
	assert.Error(t, bad.Validate())
}

func TestConfigResultID(t *testing.T) {
	cfg := testConfig()
	cfg.Seats = 3
	assert.Equal(t, 0, cfg.ResultID(0, 0))
	assert.Equal(t, 2, cfg.ResultID(0, 2))
	assert.Equal(t, 3, cfg.ResultID(1, 0))
	assert.Equal(t, 14, cfg.ResultID(4, 2))
	assert.Equal(t, cfg.Sessions*3, cfg.ResultCount())
}
