package prefabs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/milk9111/combobreaker/combat"
	"github.com/milk9111/combobreaker/flow"
	"gopkg.in/yaml.v3"
)

// MatchFile is the default match config.
const MatchFile = "match.yaml"

// ErrInvalidSpec wraps every validation failure from ToConfig.
var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type MatchSpec struct {
	MaxHealth int          `yaml:"max_health"`
	Mode      string       `yaml:"mode"`
	Durations DurationSpec `yaml:"durations"`
	Bindings  BindingsSpec `yaml:"bindings"`
	Bot       BotSpec      `yaml:"bot"`
}

// DurationSpec holds stage lengths in seconds. An omitted field keeps its
// default; an explicit zero skips the banner, reveal or round start.
type DurationSpec struct {
	RoundStart    *float64 `yaml:"round_start"`
	Banner        *float64 `yaml:"banner"`
	SelectElement *float64 `yaml:"select_element"`
	SelectAction  *float64 `yaml:"select_action"`
	Reveal        *float64 `yaml:"reveal"`
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}

type BindingsSpec struct {
	One map[string]BindingSpec `yaml:"one"`
	Two map[string]BindingSpec `yaml:"two"`
}

type BindingSpec struct {
	Element string `yaml:"element"`
	Action  string `yaml:"action"`
}

type BotSpec struct {
	Seed   uint64 `yaml:"seed"`
	Script string `yaml:"script"`
}

func LoadMatchSpec(filename string) (*MatchSpec, error) {
	if filename == "" {
		filename = MatchFile
	}
	spec, err := LoadSpec[MatchSpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// ToConfig validates a match file and converts it. Missing durations and
// bindings fall back to the defaults; bad values are errors.
func (s *MatchSpec) ToConfig() (flow.Config, error) {
	cfg := flow.DefaultConfig()
	if s == nil {
		return cfg, nil
	}

	if s.MaxHealth < 0 {
		return cfg, fmt.Errorf("%w: max_health %d", ErrInvalidSpec, s.MaxHealth)
	}
	if s.MaxHealth > 0 {
		cfg.MaxHealth = s.MaxHealth
	}

	switch flow.Mode(s.Mode) {
	case "":
	case flow.ModeSinglePlayer, flow.ModeTwoPlayer:
		cfg.Mode = flow.Mode(s.Mode)
	default:
		return cfg, fmt.Errorf("%w: mode %q", ErrInvalidSpec, s.Mode)
	}

	d := s.Durations
	for _, f := range []struct {
		name   string
		v      *float64
		window bool
		set    func(time.Duration)
	}{
		{"round_start", d.RoundStart, false, func(v time.Duration) { cfg.Durations[flow.PhaseRoundStart] = v }},
		{"banner", d.Banner, false, func(v time.Duration) { cfg.Banner = v }},
		{"select_element", d.SelectElement, true, func(v time.Duration) { cfg.Durations[flow.PhaseSelectElement] = v }},
		{"select_action", d.SelectAction, true, func(v time.Duration) { cfg.Durations[flow.PhaseSelectAction] = v }},
		{"reveal", d.Reveal, false, func(v time.Duration) { cfg.Reveal = v }},
	} {
		if f.v == nil {
			continue
		}
		switch {
		case *f.v < 0:
			return cfg, fmt.Errorf("%w: durations.%s is negative", ErrInvalidSpec, f.name)
		case f.window && *f.v == 0:
			return cfg, fmt.Errorf("%w: durations.%s must be positive", ErrInvalidSpec, f.name)
		}
		f.set(seconds(*f.v))
	}

	if len(s.Bindings.One) > 0 {
		one, err := toBindings("one", s.Bindings.One)
		if err != nil {
			return cfg, err
		}
		cfg.BindingsOne = one
	}
	if len(s.Bindings.Two) > 0 {
		two, err := toBindings("two", s.Bindings.Two)
		if err != nil {
			return cfg, err
		}
		cfg.BindingsTwo = two
	}

	for key := range cfg.BindingsOne {
		if _, ok := cfg.BindingsTwo[key]; ok {
			return cfg, fmt.Errorf("%w: key %q is bound for both players", ErrInvalidSpec, key)
		}
	}

	return cfg, nil
}

func toBindings(player string, raw map[string]BindingSpec) (map[string]combat.ChoiceSelection, error) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]combat.ChoiceSelection, len(raw))
	for _, rawKey := range keys {
		b := raw[rawKey]
		key := strings.TrimSpace(rawKey)
		if key == "" {
			return nil, fmt.Errorf("%w: bindings.%s has an empty key", ErrInvalidSpec, player)
		}
		if _, ok := out[key]; ok {
			return nil, fmt.Errorf("%w: bindings.%s binds %q twice", ErrInvalidSpec, player, key)
		}
		e, ok := combat.ParseElementKind(b.Element)
		if !ok {
			return nil, fmt.Errorf("%w: bindings.%s.%s element %q", ErrInvalidSpec, player, key, b.Element)
		}
		a, ok := combat.ParseActionKind(b.Action)
		if !ok {
			return nil, fmt.Errorf("%w: bindings.%s.%s action %q", ErrInvalidSpec, player, key, b.Action)
		}
		out[key] = combat.ChoiceSelection{
			Element: combat.ElementChoice(e),
			Action:  combat.ActionChoice(a),
		}
	}
	return out, nil
}
