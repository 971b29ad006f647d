package combat

import "testing"

func TestWeightedActionWater(t *testing.T) {
	water := ElementChoice(Water)
	want := map[int]ActionKind{0: Toilet, 1: Toilet, 2: Underwear, 3: Hand}
	for roll, a := range want {
		if got := WeightedAction(water, roll); got != a {
			t.Fatalf("roll %d: got %v, want %v", roll, got, a)
		}
	}
}

func TestWeightedActionDistribution(t *testing.T) {
	for _, e := range ElementKinds {
		counts := map[ActionKind]int{}
		for roll := 0; roll < WeightedRolls; roll++ {
			counts[WeightedAction(ElementChoice(e), roll)]++
		}
		comp, _ := Complement(ElementChoice(e)).Action()
		if counts[comp] != 2 {
			t.Fatalf("%v: complement %v picked %d times, want 2", e, comp, counts[comp])
		}
		for _, a := range ActionKinds {
			if a != comp && counts[a] != 1 {
				t.Fatalf("%v: %v picked %d times, want 1", e, a, counts[a])
			}
		}
	}
}

func TestWeightedActionWithoutElement(t *testing.T) {
	for roll := 0; roll < WeightedRolls; roll++ {
		if got := WeightedAction(None, roll); got != Hand {
			t.Fatalf("roll %d without element: got %v, want hand", roll, got)
		}
		if got := WeightedAction(ActionChoice(Toilet), roll); got != Hand {
			t.Fatalf("roll %d with action tag: got %v, want hand", roll, got)
		}
	}
}

func TestWeightedActionRollWraps(t *testing.T) {
	fire := ElementChoice(Fire)
	if WeightedAction(fire, 5) != WeightedAction(fire, 1) {
		t.Fatalf("roll 5 should wrap to 1")
	}
	if WeightedAction(fire, -1) != WeightedAction(fire, 3) {
		t.Fatalf("roll -1 should wrap to 3")
	}
}

func TestRandomElement(t *testing.T) {
	seen := map[ElementKind]bool{}
	for roll := 0; roll < 3; roll++ {
		seen[RandomElement(roll)] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected all three elements, got %v", seen)
	}
	if RandomElement(-1) != RandomElement(2) {
		t.Fatalf("negative roll should wrap")
	}
}

func TestCues(t *testing.T) {
	if got := CueForResult(ResolveResult{Outcome: PlayerOneWins}); got != CueHitPlayerOne {
		t.Fatalf("player one cue = %q", got)
	}
	if got := CueForResult(ResolveResult{Outcome: PlayerTwoWins}); got != CueHitPlayerTwo {
		t.Fatalf("player two cue = %q", got)
	}
	if got := CueForResult(ResolveResult{}); got != CueClash {
		t.Fatalf("draw cue = %q", got)
	}

	seen := map[CueID]bool{}
	for _, a := range ActionKinds {
		seen[CueForChoice(ActionChoice(a))] = true
	}
	for _, e := range ElementKinds {
		seen[CueForChoice(ElementChoice(e))] = true
	}
	if len(seen) != 6 || seen[CueUnknown] {
		t.Fatalf("each concrete choice needs its own cue, got %v", seen)
	}
	if got := CueForChoice(None); got != CueUnknown {
		t.Fatalf("none cue = %q", got)
	}
	if CueForWinner(One) != CuePlayerOneWins || CueForWinner(Two) != CuePlayerTwoWins {
		t.Fatalf("winner cues are wrong")
	}
	if CueForSignal(ContinueActionLoop) != CueNone {
		t.Fatalf("continue should have no announcement")
	}
}
