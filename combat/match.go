package combat

import "sort"

// DefaultMaxHealth is the starting health when no config says otherwise.
const DefaultMaxHealth = 4

// Dimension selects which half of a ChoiceSelection is read.
type Dimension int

const (
	DimensionElement Dimension = iota
	DimensionAction
)

func (d Dimension) String() string {
	if d == DimensionAction {
		return "action"
	}
	return "element"
}

// Accepts reports whether c carries the tag this dimension holds.
func (d Dimension) Accepts(c Choice) bool {
	if d == DimensionAction {
		return c.Kind() == KindAction
	}
	return c.Kind() == KindElement
}

// ChoiceSelection is a player's element and action for one exchange.
type ChoiceSelection struct {
	Element Choice
	Action  Choice
}

// Get returns the choice held for d.
func (s ChoiceSelection) Get(d Dimension) Choice {
	if d == DimensionAction {
		return s.Action
	}
	return s.Element
}

// CanDouble reports whether the element complements the action.
func (s ChoiceSelection) CanDouble() bool {
	return s.Element == Complement(s.Action)
}

// PlayerState is one player's bookkeeping for a match.
type PlayerState struct {
	Selection ChoiceSelection
	Health    int

	bindings map[string]ChoiceSelection
}

// NewPlayerState copies bindings so later edits by the caller are not seen.
func NewPlayerState(maxHealth int, bindings map[string]ChoiceSelection) PlayerState {
	copied := make(map[string]ChoiceSelection, len(bindings))
	for k, v := range bindings {
		copied[k] = v
	}
	return PlayerState{Health: maxHealth, bindings: copied}
}

// Binding looks up the selection bound to key.
func (p *PlayerState) Binding(key string) (ChoiceSelection, bool) {
	if p == nil {
		return ChoiceSelection{}, false
	}
	sel, ok := p.bindings[key]
	return sel, ok
}

// Keys returns the bound key names, sorted.
func (p *PlayerState) Keys() []string {
	if p == nil || len(p.bindings) == 0 {
		return nil
	}
	keys := make([]string, 0, len(p.bindings))
	for k := range p.bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MatchState is the single mutable record of a match.
type MatchState struct {
	PlayerOne          PlayerState
	PlayerTwo          PlayerState
	ExchangesThisRound int
	AdvantageHolder    Player
}

// NewMatchState builds a fresh match. Bindings may be nil for a bot player.
func NewMatchState(maxHealth int, one, two map[string]ChoiceSelection) *MatchState {
	if maxHealth <= 0 {
		maxHealth = DefaultMaxHealth
	}
	return &MatchState{
		PlayerOne: NewPlayerState(maxHealth, one),
		PlayerTwo: NewPlayerState(maxHealth, two),
	}
}

// Player returns the state for p.
func (m *MatchState) Player(p Player) *PlayerState {
	if m == nil {
		return nil
	}
	if p == Two {
		return &m.PlayerTwo
	}
	return &m.PlayerOne
}

// Select records a choice for one dimension. It returns false when the
// choice is already held or does not fit the dimension.
func (m *MatchState) Select(p Player, d Dimension, c Choice) bool {
	ps := m.Player(p)
	if ps == nil || !d.Accepts(c) {
		return false
	}
	slot := &ps.Selection.Element
	if d == DimensionAction {
		slot = &ps.Selection.Action
	}
	if *slot == c {
		return false
	}
	*slot = c
	return true
}

// ClearSelections resets both players' choices to None.
func (m *MatchState) ClearSelections() {
	if m == nil {
		return
	}
	m.PlayerOne.Selection = ChoiceSelection{}
	m.PlayerTwo.Selection = ChoiceSelection{}
}

// Over reports whether either player is out of health.
func (m *MatchState) Over() bool {
	return m != nil && (m.PlayerOne.Health <= 0 || m.PlayerTwo.Health <= 0)
}

// Winner picks One when One has strictly more health, otherwise Two.
func Winner(m *MatchState) Player {
	if m != nil && m.PlayerOne.Health > m.PlayerTwo.Health {
		return One
	}
	return Two
}
