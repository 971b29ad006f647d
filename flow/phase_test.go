package flow

import (
	"testing"
	"time"
)

func TestPhaseTransitions(t *testing.T) {
	cases := []struct {
		from, to Phase
		want     bool
	}{
		{PhaseTitle, PhaseRoundStart, true},
		{PhaseRoundStart, PhaseSelectElement, true},
		{PhaseSelectElement, PhaseSelectAction, true},
		{PhaseSelectAction, PhaseResolveAction, true},
		{PhaseResolveAction, PhaseSelectAction, true},
		{PhaseResolveAction, PhaseSelectElement, true},
		{PhaseResolveAction, PhaseRoundOver, true},
		{PhaseRoundOver, PhaseTitle, true},
		{PhaseSelectElement, PhaseResolveAction, false},
		{PhaseSelectAction, PhaseSelectElement, false},
		{PhaseRoundOver, PhaseSelectElement, false},
		{PhaseTitle, PhaseSelectElement, false},
	}

	for _, c := range cases {
		t.Run(string(c.from)+"_to_"+string(c.to), func(t *testing.T) {
			if got := c.from.CanTransitionTo(c.to); got != c.want {
				t.Fatalf("CanTransitionTo = %v, want %v", got, c.want)
			}
		})
	}
}

func TestTimer(t *testing.T) {
	var tm Timer
	if tm.Expired() {
		t.Fatalf("a stopped timer never expires")
	}

	tm.Reset(2 * time.Second)
	tm.Advance(500 * time.Millisecond)
	if tm.Expired() || tm.Remaining() != 1500*time.Millisecond {
		t.Fatalf("remaining = %v", tm.Remaining())
	}
	if f := tm.Fraction(); f != 0.75 {
		t.Fatalf("fraction = %v, want 0.75", f)
	}

	tm.Advance(5 * time.Second)
	if !tm.Expired() || tm.Remaining() != 0 {
		t.Fatalf("timer should clamp at zero and expire")
	}

	tm.Reset(time.Second)
	if tm.Expired() || tm.Remaining() != time.Second {
		t.Fatalf("reset should discard the old countdown")
	}

	tm.Stop()
	if tm.Expired() || tm.Running() {
		t.Fatalf("stop should not count as expiry")
	}
	tm.Advance(time.Second)
	if tm.Remaining() != 0 {
		t.Fatalf("stopped timer should not move")
	}
}

func TestConfigNormalized(t *testing.T) {
	cfg := Config{
		MaxHealth: -3,
		Durations: Durations{
			PhaseSelectElement: 0,
			PhaseSelectAction:  3 * time.Second,
			PhaseRoundStart:    0,
			PhaseTitle:         time.Second,
		},
		Banner: -time.Second,
	}.normalized()

	if cfg.MaxHealth != DefaultConfig().MaxHealth {
		t.Fatalf("max health = %d", cfg.MaxHealth)
	}
	if cfg.Mode != ModeSinglePlayer {
		t.Fatalf("mode = %v", cfg.Mode)
	}
	if cfg.Durations.For(PhaseSelectElement) != 2*time.Second {
		t.Fatalf("zero window should fall back to default, got %v", cfg.Durations.For(PhaseSelectElement))
	}
	if cfg.Durations.For(PhaseSelectAction) != 3*time.Second {
		t.Fatalf("action window = %v", cfg.Durations.For(PhaseSelectAction))
	}
	if cfg.Durations.For(PhaseRoundStart) != 0 {
		t.Fatalf("round start may be zero, got %v", cfg.Durations.For(PhaseRoundStart))
	}
	if cfg.Durations.For(PhaseTitle) != 0 {
		t.Fatalf("title is not timed")
	}
	if cfg.Banner != 0 {
		t.Fatalf("banner = %v", cfg.Banner)
	}
}
