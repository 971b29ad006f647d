package flow

// Phase is a step of the match flow.
type Phase string

const (
	PhaseTitle         Phase = "title"
	PhaseRoundStart    Phase = "round_start"
	PhaseSelectElement Phase = "select_element"
	PhaseSelectAction  Phase = "select_action"
	PhaseResolveAction Phase = "resolve_action"
	PhaseRoundOver     Phase = "round_over"
)

func (p Phase) String() string {
	return string(p)
}

var transitions = map[Phase][]Phase{
	PhaseTitle:         {PhaseRoundStart},
	PhaseRoundStart:    {PhaseSelectElement},
	PhaseSelectElement: {PhaseSelectAction},
	PhaseSelectAction:  {PhaseResolveAction},
	PhaseResolveAction: {PhaseSelectAction, PhaseSelectElement, PhaseRoundOver},
	PhaseRoundOver:     {PhaseTitle},
}

// CanTransitionTo reports whether the flow may move from p to target.
func (p Phase) CanTransitionTo(target Phase) bool {
	for _, next := range transitions[p] {
		if next == target {
			return true
		}
	}
	return false
}

// Timed reports whether the phase ends on its own countdown.
func (p Phase) Timed() bool {
	switch p {
	case PhaseRoundStart, PhaseSelectElement, PhaseSelectAction:
		return true
	default:
		return false
	}
}

// Selecting reports whether the phase collects choices.
func (p Phase) Selecting() bool {
	return p == PhaseSelectElement || p == PhaseSelectAction
}

// Stage splits a selecting phase into its banner, input window and reveal.
type Stage string

const (
	StageNone      Stage = ""
	StageBanner    Stage = "banner"
	StageCountdown Stage = "countdown"
	StageReveal    Stage = "reveal"
)

func (s Stage) String() string {
	if s == StageNone {
		return "none"
	}
	return string(s)
}

func (s Stage) next() Stage {
	switch s {
	case StageBanner:
		return StageCountdown
	case StageCountdown:
		return StageReveal
	default:
		return StageNone
	}
}
