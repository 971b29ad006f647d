package sound

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/milk9111/combobreaker/combat"
)

// SampleRate is the rate every cue is rendered at.
const SampleRate = 44100

type Wave int

const (
	Sine Wave = iota
	Square
)

// Tone is a short sequence of notes played back to back.
type Tone struct {
	Notes []float64
	Step  time.Duration
	Wave  Wave
	Gain  float64
}

var cueTones = map[combat.CueID]Tone{
	combat.CueUnknown:        {Notes: []float64{220}, Step: 60 * time.Millisecond, Wave: Square, Gain: 0.2},
	combat.CueClash:          {Notes: []float64{330, 330}, Step: 70 * time.Millisecond, Wave: Square, Gain: 0.3},
	combat.CueHitPlayerOne:   {Notes: []float64{523.25, 392}, Step: 80 * time.Millisecond, Wave: Square, Gain: 0.35},
	combat.CueHitPlayerTwo:   {Notes: []float64{392, 523.25}, Step: 80 * time.Millisecond, Wave: Square, Gain: 0.35},
	combat.CueToilet:         {Notes: []float64{196}, Step: 120 * time.Millisecond, Wave: Sine, Gain: 0.5},
	combat.CueUnderwear:      {Notes: []float64{247}, Step: 120 * time.Millisecond, Wave: Sine, Gain: 0.5},
	combat.CueHand:           {Notes: []float64{294}, Step: 120 * time.Millisecond, Wave: Sine, Gain: 0.5},
	combat.CueFire:           {Notes: []float64{659.25}, Step: 120 * time.Millisecond, Wave: Sine, Gain: 0.45},
	combat.CueWater:          {Notes: []float64{587.33}, Step: 120 * time.Millisecond, Wave: Sine, Gain: 0.45},
	combat.CueGrass:          {Notes: []float64{493.88}, Step: 120 * time.Millisecond, Wave: Sine, Gain: 0.45},
	combat.CuePlayerOneWins:  {Notes: []float64{523.25, 659.25, 783.99, 1046.5}, Step: 150 * time.Millisecond, Wave: Square, Gain: 0.3},
	combat.CuePlayerTwoWins:  {Notes: []float64{1046.5, 783.99, 659.25, 523.25}, Step: 150 * time.Millisecond, Wave: Square, Gain: 0.3},
	combat.CueComboBreaker:   {Notes: []float64{880, 440, 880, 440}, Step: 60 * time.Millisecond, Wave: Square, Gain: 0.35},
	combat.CueAdvantage:      {Notes: []float64{440, 554.37, 659.25}, Step: 90 * time.Millisecond, Wave: Sine, Gain: 0.4},
	combat.CueCountdownStart: {Notes: []float64{880}, Step: 50 * time.Millisecond, Wave: Sine, Gain: 0.3},
}

// ToneFor returns the tone bound to a cue.
func ToneFor(cue combat.CueID) (Tone, bool) {
	t, ok := cueTones[cue]
	return t, ok
}

// fadeSamples is the linear ramp at each note edge.
const fadeSamples = 64

// Render returns the tone as 16-bit little-endian stereo PCM.
func (t Tone) Render(sampleRate int) []byte {
	perNote := int(math.Round(t.Step.Seconds() * float64(sampleRate)))
	if perNote <= 0 || len(t.Notes) == 0 {
		return nil
	}

	out := make([]byte, 0, perNote*len(t.Notes)*4)
	var frame [4]byte
	for _, freq := range t.Notes {
		for i := 0; i < perNote; i++ {
			v := t.sample(freq, float64(i)/float64(sampleRate)) * t.Gain * envelope(i, perNote)
			s := int16(math.Round(clamp(v) * math.MaxInt16))
			binary.LittleEndian.PutUint16(frame[0:], uint16(s))
			binary.LittleEndian.PutUint16(frame[2:], uint16(s))
			out = append(out, frame[:]...)
		}
	}
	return out
}

func (t Tone) sample(freq, at float64) float64 {
	phase := math.Sin(2 * math.Pi * freq * at)
	if t.Wave == Square {
		if phase >= 0 {
			return 1
		}
		return -1
	}
	return phase
}

func envelope(i, n int) float64 {
	switch {
	case i < fadeSamples:
		return float64(i) / fadeSamples
	case n-i < fadeSamples:
		return float64(n-i) / fadeSamples
	default:
		return 1
	}
}

func clamp(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
