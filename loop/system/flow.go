package system

import "github.com/milk9111/combobreaker/loop"

// FlowSystem ticks the match with the queued selections.
type FlowSystem struct{}

func NewFlowSystem() *FlowSystem {
	return &FlowSystem{}
}

func (f *FlowSystem) Update(w *loop.World) {
	if w == nil || w.Machine == nil {
		return
	}
	w.SetNotices(w.Machine.Tick(w.DT, w.Selections.Drain()))
}
