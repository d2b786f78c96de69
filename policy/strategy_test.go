package policy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ridesim/engine"
)

var testRanks = map[byte]engine.Rank{
	'2': engine.Two, '3': engine.Three, '4': engine.Four, '5': engine.Five,
	'6': engine.Six, '7': engine.Seven, '8': engine.Eight, '9': engine.Nine,
	'T': engine.Ten, 'J': engine.Jack, 'Q': engine.Queen, 'K': engine.King,
	'A': engine.Ace,
}

var testSuits = map[byte]engine.Suit{
	'h': engine.Hearts, 'd': engine.Diamonds, 'c': engine.Clubs, 's': engine.Spades,
}

func analyze(t *testing.T, s string) engine.HandAnalysis {
	t.Helper()
	fields := strings.Fields(s)
	out := make([]engine.Card, 0, len(fields))
	for _, f := range fields {
		require.Len(t, f, 2)
		out = append(out, engine.Card{Rank: testRanks[f[0]], Suit: testSuits[f[1]]})
	}
	return engine.AnalyzeCards(out)
}

func TestNewStrategy(t *testing.T) {
	for _, name := range []string{StrategyAlwaysRide, StrategyNeverRide, StrategyBasic} {
		s, err := NewStrategy(name)
		require.NoError(t, err)
		require.NotNil(t, s)
	}

	_, err := NewStrategy("hunch")
	assert.ErrorContains(t, err, "unknown strategy")
}

func TestAlwaysAndNeverRide(t *testing.T) {
	a := analyze(t, "2h 7d Kc")
	ctx := engine.HandContext{}

	assert.Equal(t, engine.Ride, AlwaysRide{}.DecideBet1(a, ctx))
	assert.Equal(t, engine.Ride, AlwaysRide{}.DecideBet2(a, ctx))
	assert.Equal(t, engine.Pull, NeverRide{}.DecideBet1(a, ctx))
	assert.Equal(t, engine.Pull, NeverRide{}.DecideBet2(a, ctx))
}

func TestBasicDecideBet1(t *testing.T) {
	tests := []struct {
		name string
		hand string
		want engine.Decision
	}{
		{"paying pair", "Th Tc 4d", engine.Ride},
		{"small pair", "9h 9c 4d", engine.Pull},
		{"trips", "7h 7c 7d", engine.Ride},
		{"three to royal", "Ah Kh Jh", engine.Ride},
		{"suited run", "7h 8h 9h", engine.Ride},
		{"suited run with deuce", "2h 3h 4h", engine.Pull},
		{"suited wheel", "Ah 2h 3h", engine.Pull},
		{"one-gap suited with high card", "8h 9h Jh", engine.Ride},
		{"one-gap suited no high card", "4h 5h 7h", engine.Pull},
		{"two-gap suited two high cards", "Th Jh Ah", engine.Ride},
		{"offsuit run", "7h 8c 9d", engine.Pull},
		{"junk", "2h 7d Kc", engine.Pull},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Basic{}.DecideBet1(analyze(t, tc.hand), engine.HandContext{}))
		})
	}
}

func TestBasicDecideBet2(t *testing.T) {
	tests := []struct {
		name string
		hand string
		want engine.Decision
	}{
		{"paying pair", "Th Tc 4d 8s", engine.Ride},
		{"small pair", "9h 9c 4d 8s", engine.Pull},
		{"two pair", "9h 9c 4d 4s", engine.Ride},
		{"four flush", "Ah 9h 6h 2h", engine.Ride},
		{"open straight with high card", "8h 9c Td Js", engine.Ride},
		{"open straight no high card", "4h 5c 6d 7s", engine.Pull},
		{"inside straight four high cards", "Th Jc Qd As", engine.Ride},
		{"inside straight low", "4h 5c 6d 8s", engine.Pull},
		{"junk", "2h 7d Kc 9s", engine.Pull},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Basic{}.DecideBet2(analyze(t, tc.hand), engine.HandContext{}))
		})
	}
}
