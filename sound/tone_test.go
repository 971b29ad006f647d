package sound

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/milk9111/combobreaker/combat"
)

func TestEveryCueHasATone(t *testing.T) {
	cues := []combat.CueID{
		combat.CueUnknown, combat.CueClash, combat.CueHitPlayerOne, combat.CueHitPlayerTwo,
		combat.CueToilet, combat.CueUnderwear, combat.CueHand,
		combat.CueFire, combat.CueWater, combat.CueGrass,
		combat.CuePlayerOneWins, combat.CuePlayerTwoWins,
		combat.CueComboBreaker, combat.CueAdvantage, combat.CueCountdownStart,
	}
	for _, cue := range cues {
		if _, ok := ToneFor(cue); !ok {
			t.Fatalf("cue %q has no tone", cue)
		}
	}
	if _, ok := ToneFor(combat.CueNone); ok {
		t.Fatalf("the empty cue should stay silent")
	}
	if len(cueTones) != len(cues) {
		t.Fatalf("%d tones, want %d", len(cueTones), len(cues))
	}
}

func TestRenderLayout(t *testing.T) {
	tone := Tone{Notes: []float64{440, 880}, Step: 100 * time.Millisecond, Wave: Square, Gain: 0.5}
	pcm := tone.Render(SampleRate)

	perNote := SampleRate / 10
	if len(pcm) != perNote*2*4 {
		t.Fatalf("len = %d, want %d", len(pcm), perNote*2*4)
	}

	first := int16(binary.LittleEndian.Uint16(pcm[0:]))
	if first != 0 {
		t.Fatalf("first sample = %d, want a faded-in zero", first)
	}

	mid := perNote / 2 * 4
	l := int16(binary.LittleEndian.Uint16(pcm[mid:]))
	r := int16(binary.LittleEndian.Uint16(pcm[mid+2:]))
	if l != r {
		t.Fatalf("channels differ: %d vs %d", l, r)
	}
	if l == 0 || abs(int(l)) > 16384 {
		t.Fatalf("square at half gain should sit near +-16383, got %d", l)
	}
}

func TestRenderEmpty(t *testing.T) {
	if pcm := (Tone{Step: time.Second}).Render(SampleRate); pcm != nil {
		t.Fatalf("no notes should render nothing")
	}
	if pcm := (Tone{Notes: []float64{440}}).Render(SampleRate); pcm != nil {
		t.Fatalf("zero step should render nothing")
	}
}

func TestNilBankIsInert(t *testing.T) {
	var b *Bank
	b.Play(combat.CueClash)
	b.SetMuted(true)

	NewBank(nil, 1, nil).Play(combat.CueClash)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
