package sound

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/combobreaker/combat"
	"go.uber.org/zap"
)

// Bank holds one player per cue.
type Bank struct {
	players map[combat.CueID]*audio.Player
	volume  float64
	muted   bool
	logger  *zap.Logger
}

// NewBank renders every cue tone into a player on ctx.
func NewBank(ctx *audio.Context, volume float64, logger *zap.Logger) *Bank {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &Bank{
		players: make(map[combat.CueID]*audio.Player, len(cueTones)),
		volume:  volume,
		logger:  logger,
	}
	if ctx == nil {
		return b
	}
	for cue, tone := range cueTones {
		b.players[cue] = ctx.NewPlayerFromBytes(tone.Render(ctx.SampleRate()))
	}
	return b
}

func (b *Bank) SetMuted(muted bool) {
	if b == nil {
		return
	}
	b.muted = muted
}

// Play starts a cue unless it is already playing. Cues without a tone fall
// back to the unknown blip.
func (b *Bank) Play(cue combat.CueID) {
	if b == nil || b.muted || cue == combat.CueNone {
		return
	}
	player, ok := b.players[cue]
	if !ok {
		b.logger.Debug("no tone for cue", zap.String("cue", string(cue)))
		player, ok = b.players[combat.CueUnknown]
		if !ok {
			return
		}
	}
	if player.IsPlaying() {
		return
	}
	player.SetVolume(b.volume)
	if err := player.Rewind(); err != nil {
		b.logger.Warn("rewind cue", zap.String("cue", string(cue)), zap.Error(err))
		return
	}
	player.Play()
}
