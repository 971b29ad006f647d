package flow

import (
	"time"

	"github.com/milk9111/combobreaker/combat"
)

// Mode decides whether player two is a human or the bot.
type Mode string

const (
	ModeSinglePlayer Mode = "single_player"
	ModeTwoPlayer    Mode = "two_player"
)

// HasBot reports whether player two is driven by the bot.
func (m Mode) HasBot() bool {
	return m != ModeTwoPlayer
}

// Durations is the countdown length of each timed phase. For the selecting
// phases it is the input window.
type Durations map[Phase]time.Duration

// For returns the duration of p, or zero when p has none.
func (d Durations) For(p Phase) time.Duration {
	if d == nil {
		return 0
	}
	return d[p]
}

// Config tunes a match.
type Config struct {
	MaxHealth int
	Mode      Mode
	Durations Durations
	// Banner and Reveal are the stages around each input window. Zero skips
	// the stage.
	Banner time.Duration
	Reveal time.Duration

	BindingsOne map[string]combat.ChoiceSelection
	BindingsTwo map[string]combat.ChoiceSelection
}

// DefaultBindings returns the A/S/D and J/K/L layouts.
func DefaultBindings() (one, two map[string]combat.ChoiceSelection) {
	water := combat.ChoiceSelection{Element: combat.ElementChoice(combat.Water), Action: combat.ActionChoice(combat.Toilet)}
	grass := combat.ChoiceSelection{Element: combat.ElementChoice(combat.Grass), Action: combat.ActionChoice(combat.Underwear)}
	fire := combat.ChoiceSelection{Element: combat.ElementChoice(combat.Fire), Action: combat.ActionChoice(combat.Hand)}

	one = map[string]combat.ChoiceSelection{"A": water, "S": grass, "D": fire}
	two = map[string]combat.ChoiceSelection{"J": water, "K": grass, "L": fire}
	return one, two
}

// DefaultConfig mirrors prefabs/match.yaml.
func DefaultConfig() Config {
	one, two := DefaultBindings()
	return Config{
		MaxHealth: combat.DefaultMaxHealth,
		Mode:      ModeSinglePlayer,
		Durations: Durations{
			PhaseRoundStart:    time.Second,
			PhaseSelectElement: 2 * time.Second,
			PhaseSelectAction:  2 * time.Second,
		},
		Banner:      time.Second,
		Reveal:      2 * time.Second,
		BindingsOne: one,
		BindingsTwo: two,
	}
}

// normalized fills holes with defaults so the machine never stalls.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.MaxHealth <= 0 {
		c.MaxHealth = def.MaxHealth
	}
	if c.Mode == "" {
		c.Mode = def.Mode
	}
	durations := make(Durations, len(def.Durations))
	for p, d := range def.Durations {
		durations[p] = d
	}
	for p, d := range c.Durations {
		switch {
		case !p.Timed():
		case p == PhaseRoundStart && d >= 0:
			durations[p] = d
		case d > 0:
			// an input window must stay open for at least one tick
			durations[p] = d
		}
	}
	c.Durations = durations
	if c.Banner < 0 {
		c.Banner = 0
	}
	if c.Reveal < 0 {
		c.Reveal = 0
	}
	return c
}
