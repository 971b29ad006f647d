package system

import (
	"github.com/milk9111/combobreaker/combat"
	"github.com/milk9111/combobreaker/flow"
	"github.com/milk9111/combobreaker/loop"
)

// CueSystem turns this frame's notices into cues.
type CueSystem struct{}

func NewCueSystem() *CueSystem {
	return &CueSystem{}
}

func (c *CueSystem) Update(w *loop.World) {
	if w == nil || w.Machine == nil {
		return
	}
	for _, n := range w.Notices() {
		for _, cue := range CuesFor(n, w.Machine) {
			w.Cues.Push(cue)
		}
	}
}

// CuesFor lists the cues a notice should play. Picks stay silent until the
// reveal so neither player hears the other's choice early.
func CuesFor(n flow.Notice, m *flow.Machine) []combat.CueID {
	switch n.Kind {
	case flow.NoticeStageEntered:
		switch n.Stage {
		case flow.StageCountdown:
			return []combat.CueID{combat.CueCountdownStart}
		case flow.StageReveal:
			d := combat.DimensionElement
			if n.Phase == flow.PhaseSelectAction {
				d = combat.DimensionAction
			}
			var cues []combat.CueID
			for _, p := range [...]combat.Player{combat.One, combat.Two} {
				if c := m.ChoiceSelection(p).Get(d); !c.IsNone() {
					cues = append(cues, combat.CueForChoice(c))
				}
			}
			return cues
		}
	case flow.NoticeResolved:
		cues := []combat.CueID{combat.CueForResult(n.Result)}
		if s := combat.CueForSignal(n.Signal); s != combat.CueNone {
			cues = append(cues, s)
		}
		return cues
	case flow.NoticeMatchOver:
		return []combat.CueID{combat.CueForWinner(n.Player)}
	}
	return nil
}

// CuePlayer plays cues by id.
type CuePlayer interface {
	Play(cue combat.CueID)
}

// AudioSystem plays the queued cues.
type AudioSystem struct {
	player CuePlayer
}

func NewAudioSystem(player CuePlayer) *AudioSystem {
	return &AudioSystem{player: player}
}

func (a *AudioSystem) Update(w *loop.World) {
	if w == nil {
		return
	}
	cues := w.Cues.Drain()
	if a.player == nil {
		return
	}
	for _, cue := range cues {
		a.player.Play(cue)
	}
}
