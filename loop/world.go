package loop

import (
	"time"

	"github.com/milk9111/combobreaker/combat"
	"github.com/milk9111/combobreaker/flow"
)

// World is the per-frame state shared by systems.
type World struct {
	Machine *flow.Machine
	// DT is the length of the current frame.
	DT time.Duration

	// Selections are queued by input systems and consumed by the next flow tick.
	Selections EventQueue[flow.Selection]
	// Cues are queued from notices and consumed by audio.
	Cues EventQueue[combat.CueID]

	notices []flow.Notice
}

func NewWorld(m *flow.Machine) *World {
	return &World{Machine: m}
}

// Notices returns what the last flow tick reported.
func (w *World) Notices() []flow.Notice {
	return w.notices
}

// SetNotices replaces the notices for this frame.
func (w *World) SetNotices(n []flow.Notice) {
	w.notices = n
}

// Reset drops everything queued for the current match, e.g. when leaving to
// the title.
func (w *World) Reset() {
	w.Selections.flush()
	w.Cues.flush()
	w.notices = nil
}
