package flow

import "github.com/milk9111/combobreaker/combat"

// SelectionFor turns a bound key into the selection the phase asks for.
func SelectionFor(phase Phase, p combat.Player, bound combat.ChoiceSelection) (Selection, bool) {
	var d combat.Dimension
	switch phase {
	case PhaseSelectElement:
		d = combat.DimensionElement
	case PhaseSelectAction:
		d = combat.DimensionAction
	default:
		return Selection{}, false
	}

	c := bound.Get(d)
	if c.IsNone() {
		return Selection{}, false
	}
	return Selection{Player: p, Dimension: d, Choice: c}, true
}

// TranslateKey maps a key press to a selection using the match bindings.
// Player one's bindings win if both bind the same key.
func (m *Machine) TranslateKey(key string) (Selection, bool) {
	if m == nil || m.match == nil {
		return Selection{}, false
	}
	for _, p := range [...]combat.Player{combat.One, combat.Two} {
		bound, ok := m.match.Player(p).Binding(key)
		if !ok {
			continue
		}
		return SelectionFor(m.phase, p, bound)
	}
	return Selection{}, false
}
