package policy

import (
	"fmt"

	"ridesim/engine"
)

// Betting system names accepted by NewBettingSystem.
const (
	BettingFlat       = "flat"
	BettingMartingale = "martingale"
	BettingParoli     = "paroli"
)

// Progression caps keep doubling systems inside a sane table spread.
const (
	martingaleMaxDoubles = 6
	paroliMaxStreak      = 3
)

// NewBettingSystem builds a bet-sizing system from its configuration
// name and base unit.
func NewBettingSystem(name string, base int64) (engine.BettingSystem, error) {
	if base < 1 {
		return nil, fmt.Errorf("betting base must be positive, got %d", base)
	}
	switch name {
	case BettingFlat:
		return &Flat{Base: base}, nil
	case BettingMartingale:
		return &Martingale{Base: base, current: base}, nil
	case BettingParoli:
		return &Paroli{Base: base, current: base}, nil
	}
	return nil, fmt.Errorf("unknown betting system %q", name)
}

// Flat always bets the base unit.
type Flat struct {
	Base int64
}

func (f *Flat) Bet(engine.HandContext) int64 { return f.Base }
func (f *Flat) RecordResult(int64)           {}
func (f *Flat) Reset()                       {}

// Martingale doubles after every losing hand, up to a cap, and drops
// back to the base after a win.
type Martingale struct {
	Base    int64
	current int64
	doubles int
}

func (m *Martingale) Bet(engine.HandContext) int64 {
	return m.current
}

func (m *Martingale) RecordResult(net int64) {
	switch {
	case net < 0 && m.doubles < martingaleMaxDoubles:
		m.current *= 2
		m.doubles++
	case net > 0:
		m.Reset()
	}
}

func (m *Martingale) Reset() {
	m.current = m.Base
	m.doubles = 0
}

// Paroli doubles after every winning hand for a short streak, then
// banks the run and returns to the base. Losses reset immediately.
type Paroli struct {
	Base    int64
	current int64
	streak  int
}

func (p *Paroli) Bet(engine.HandContext) int64 {
	return p.current
}

func (p *Paroli) RecordResult(net int64) {
	if net > 0 {
		p.streak++
		if p.streak >= paroliMaxStreak {
			p.Reset()
			return
		}
		p.current *= 2
		return
	}
	if net < 0 {
		p.Reset()
	}
}

func (p *Paroli) Reset() {
	p.current = p.Base
	p.streak = 0
}
