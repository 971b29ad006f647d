package flow

import (
	"time"

	"github.com/milk9111/combobreaker/combat"
)

// Read-only accessors. Before a match exists they report a fresh match.

func (m *Machine) Phase() Phase {
	if m == nil {
		return PhaseTitle
	}
	return m.phase
}

func (m *Machine) Stage() Stage {
	if m == nil {
		return StageNone
	}
	return m.stage
}

func (m *Machine) Mode() Mode {
	if m == nil {
		return ModeSinglePlayer
	}
	return m.mode
}

func (m *Machine) Config() Config {
	if m == nil {
		return DefaultConfig()
	}
	return m.cfg
}

// Remaining is the time left on the current countdown.
func (m *Machine) Remaining() time.Duration {
	if m == nil {
		return 0
	}
	return m.timer.Remaining()
}

// TimerFraction is the share of the current countdown still left.
func (m *Machine) TimerFraction() float64 {
	if m == nil {
		return 0
	}
	return m.timer.Fraction()
}

func (m *Machine) MaxHealth() int {
	if m == nil {
		return combat.DefaultMaxHealth
	}
	return m.cfg.MaxHealth
}

func (m *Machine) ChoiceSelection(p combat.Player) combat.ChoiceSelection {
	if m == nil || m.match == nil {
		return combat.ChoiceSelection{}
	}
	return m.match.Player(p).Selection
}

func (m *Machine) Health(p combat.Player) int {
	if m == nil || m.match == nil {
		return m.MaxHealth()
	}
	return m.match.Player(p).Health
}

// Keys lists the keys bound for p in the running match.
func (m *Machine) Keys(p combat.Player) []string {
	if m == nil || m.match == nil {
		return nil
	}
	return m.match.Player(p).Keys()
}

func (m *Machine) AdvantageHolder() combat.Player {
	if m == nil || m.match == nil {
		return combat.One
	}
	return m.match.AdvantageHolder
}

func (m *Machine) Exchanges() int {
	if m == nil || m.match == nil {
		return 0
	}
	return m.match.ExchangesThisRound
}

// LastResolveResult returns the latest exchange of this match, if any.
func (m *Machine) LastResolveResult() (combat.ResolveResult, bool) {
	if m == nil || !m.hasLast {
		return combat.ResolveResult{}, false
	}
	return m.last, true
}

// LastSignal returns the signal of the latest exchange, if any.
func (m *Machine) LastSignal() (combat.Signal, bool) {
	if m == nil || !m.hasLast {
		return combat.ContinueActionLoop, false
	}
	return m.lastSignal, true
}

// Winner is set once the round is over.
func (m *Machine) Winner() (combat.Player, bool) {
	if m == nil || !m.finished {
		return combat.One, false
	}
	return m.winner, true
}
