package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/milk9111/combobreaker/combat"
	"github.com/milk9111/combobreaker/flow"
	"gopkg.in/yaml.v3"
)

func secs(v float64) *float64 {
	return &v
}

func TestEmbeddedMatchMatchesDefaults(t *testing.T) {
	spec, err := LoadMatchSpec("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg, err := spec.ToConfig()
	if err != nil {
		t.Fatalf("to config: %v", err)
	}
	if !reflect.DeepEqual(cfg, flow.DefaultConfig()) {
		t.Fatalf("embedded match.yaml drifted from flow.DefaultConfig:\n got %+v\nwant %+v", cfg, flow.DefaultConfig())
	}
	if spec.Bot.Script != "bot.tengo" {
		t.Fatalf("bot script = %q", spec.Bot.Script)
	}
}

func TestToConfigOverrides(t *testing.T) {
	spec := &MatchSpec{
		MaxHealth: 6,
		Mode:      "two_player",
		Durations: DurationSpec{SelectAction: secs(3)},
		Bindings: BindingsSpec{
			One: map[string]BindingSpec{"Q": {Element: "Fire", Action: "toilet"}},
		},
	}
	cfg, err := spec.ToConfig()
	if err != nil {
		t.Fatalf("to config: %v", err)
	}
	if cfg.MaxHealth != 6 || cfg.Mode != flow.ModeTwoPlayer {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Durations.For(flow.PhaseSelectAction) != 3*time.Second {
		t.Fatalf("action window = %v", cfg.Durations.For(flow.PhaseSelectAction))
	}
	if cfg.Durations.For(flow.PhaseSelectElement) != 2*time.Second {
		t.Fatalf("element window should keep its default")
	}
	want := combat.ChoiceSelection{Element: combat.ElementChoice(combat.Fire), Action: combat.ActionChoice(combat.Toilet)}
	if got := cfg.BindingsOne["Q"]; got != want || len(cfg.BindingsOne) != 1 {
		t.Fatalf("bindings one = %+v", cfg.BindingsOne)
	}
	if len(cfg.BindingsTwo) != 3 {
		t.Fatalf("bindings two should keep defaults, got %+v", cfg.BindingsTwo)
	}
}

func TestToConfigKeepsExplicitZeroStages(t *testing.T) {
	var spec MatchSpec
	src := []byte("durations:\n  round_start: 0\n  banner: 0\n  reveal: 0\n")
	if err := yaml.Unmarshal(src, &spec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	cfg, err := spec.ToConfig()
	if err != nil {
		t.Fatalf("to config: %v", err)
	}
	if cfg.Banner != 0 || cfg.Reveal != 0 || cfg.Durations.For(flow.PhaseRoundStart) != 0 {
		t.Fatalf("banner=%v reveal=%v round_start=%v, want all zero",
			cfg.Banner, cfg.Reveal, cfg.Durations.For(flow.PhaseRoundStart))
	}
	if cfg.Durations.For(flow.PhaseSelectElement) != 2*time.Second {
		t.Fatalf("omitted window should keep its default, got %v", cfg.Durations.For(flow.PhaseSelectElement))
	}

	m := flow.NewMachine(cfg)
	m.StartMatch("")
	m.Tick(0, nil)
	if m.Phase() != flow.PhaseSelectElement || m.Stage() != flow.StageCountdown {
		t.Fatalf("phase = %v/%v, want select_element countdown straight away", m.Phase(), m.Stage())
	}
}

func TestToConfigTrimsKeys(t *testing.T) {
	spec := &MatchSpec{Bindings: BindingsSpec{One: map[string]BindingSpec{" Q ": {Element: "grass", Action: "underwear"}}}}
	cfg, err := spec.ToConfig()
	if err != nil {
		t.Fatalf("to config: %v", err)
	}
	if _, ok := cfg.BindingsOne["Q"]; !ok || len(cfg.BindingsOne) != 1 {
		t.Fatalf("bindings one = %+v", cfg.BindingsOne)
	}
}

func TestToConfigRejects(t *testing.T) {
	cases := []struct {
		name string
		spec MatchSpec
	}{
		{"negative health", MatchSpec{MaxHealth: -1}},
		{"unknown mode", MatchSpec{Mode: "co_op"}},
		{"negative window", MatchSpec{Durations: DurationSpec{SelectElement: secs(-1)}}},
		{"zero window", MatchSpec{Durations: DurationSpec{SelectAction: secs(0)}}},
		{"negative banner", MatchSpec{Durations: DurationSpec{Banner: secs(-0.5)}}},
		{"key bound twice after trimming", MatchSpec{Bindings: BindingsSpec{One: map[string]BindingSpec{
			"A":  {Element: "fire", Action: "hand"},
			" A": {Element: "water", Action: "toilet"},
		}}}},
		{"empty key", MatchSpec{Bindings: BindingsSpec{Two: map[string]BindingSpec{" ": {Element: "fire", Action: "hand"}}}}},
		{"bad element", MatchSpec{Bindings: BindingsSpec{One: map[string]BindingSpec{"A": {Element: "air", Action: "hand"}}}}},
		{"key bound twice", MatchSpec{Bindings: BindingsSpec{
			One: map[string]BindingSpec{"A": {Element: "fire", Action: "hand"}},
			Two: map[string]BindingSpec{"A": {Element: "water", Action: "toilet"}},
		}}},
		{"bad action", MatchSpec{Bindings: BindingsSpec{Two: map[string]BindingSpec{"J": {Element: "fire", Action: "foot"}}}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := c.spec.ToConfig(); !errors.Is(err, ErrInvalidSpec) {
				t.Fatalf("err = %v, want ErrInvalidSpec", err)
			}
		})
	}
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"bot.tengo", "scripts/bot.tengo", "prefabs/scripts/bot.tengo"} {
		data, err := LoadScript(name)
		if err != nil || len(data) == 0 {
			t.Fatalf("LoadScript(%q) = %d bytes, %v", name, len(data), err)
		}
	}
}

func TestRelevant(t *testing.T) {
	cases := []struct {
		event fsnotify.Event
		want  bool
	}{
		{fsnotify.Event{Name: "prefabs/match.yaml", Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: "prefabs/scripts/bot.tengo", Op: fsnotify.Create}, true},
		{fsnotify.Event{Name: "prefabs/match.yaml", Op: fsnotify.Chmod}, false},
		{fsnotify.Event{Name: "prefabs/notes.txt", Op: fsnotify.Write}, false},
	}
	for _, c := range cases {
		if got := relevant(c.event); got != c.want {
			t.Fatalf("relevant(%v) = %v, want %v", c.event, got, c.want)
		}
	}
}

func TestWatcherReportsEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "match.yaml")
	if err := os.WriteFile(path, []byte("max_health: 5\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case got := <-w.Events:
		if !IsMatchFile(got, "") {
			t.Fatalf("event for %q", got)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for %s", path)
	}
}
