package combat

// Outcome names the winner of a comparison.
type Outcome int

const (
	Draw Outcome = iota
	PlayerOneWins
	PlayerTwoWins
)

func (o Outcome) String() string {
	switch o {
	case PlayerOneWins:
		return "player_one"
	case PlayerTwoWins:
		return "player_two"
	default:
		return "draw"
	}
}

// Winner returns the winning player; ok is false on a draw.
func (o Outcome) Winner() (Player, bool) {
	switch o {
	case PlayerOneWins:
		return One, true
	case PlayerTwoWins:
		return Two, true
	default:
		return One, false
	}
}

// ResolveResult is the outcome of one comparison and the choice that won it.
// WinningChoice is None on a draw. Damage is only filled in by ApplyRound.
type ResolveResult struct {
	Outcome       Outcome
	WinningChoice Choice
	Damage        int
}

// Signal tells the phase machine where to go after an exchange.
type Signal int

const (
	ContinueActionLoop Signal = iota
	RestartFromElement
	AdvantageAnnounced
	ComboBreaker
	MatchOver
)

func (s Signal) String() string {
	switch s {
	case RestartFromElement:
		return "restart_from_element"
	case AdvantageAnnounced:
		return "advantage_announced"
	case ComboBreaker:
		return "combo_breaker"
	case MatchOver:
		return "match_over"
	default:
		return "continue_action_loop"
	}
}

// Resolve compares both players on one dimension. Two Nones draw.
func Resolve(a, b ChoiceSelection, d Dimension) ResolveResult {
	ca, cb := a.Get(d), b.Get(d)
	switch CompareChoices(ca, cb) {
	case Greater:
		return ResolveResult{Outcome: PlayerOneWins, WinningChoice: ca}
	case Less:
		return ResolveResult{Outcome: PlayerTwoWins, WinningChoice: cb}
	default:
		return ResolveResult{Outcome: Draw, WinningChoice: None}
	}
}

// Damage is the health a winner with sel takes from the loser.
func Damage(sel ChoiceSelection) int {
	if sel.CanDouble() {
		return 2
	}
	return 1
}

// ApplyRound resolves the current action exchange and mutates state. It is
// called once per action reveal.
func ApplyRound(state *MatchState) (ResolveResult, Signal) {
	if state == nil {
		return ResolveResult{}, MatchOver
	}

	result := Resolve(state.PlayerOne.Selection, state.PlayerTwo.Selection, DimensionAction)
	state.ExchangesThisRound++

	if winner, ok := result.Outcome.Winner(); ok {
		result.Damage = Damage(state.Player(winner).Selection)
		loser := state.Player(winner.Opponent())
		loser.Health -= result.Damage
	}

	state.ClearSelections()

	if state.Over() {
		return result, MatchOver
	}

	winner, won := result.Outcome.Winner()
	first := state.ExchangesThisRound == 1
	switch {
	case !won && first:
		state.ExchangesThisRound = 0
		return result, RestartFromElement
	case !won:
		return result, ContinueActionLoop
	case first:
		state.AdvantageHolder = winner
		return result, AdvantageAnnounced
	case winner != state.AdvantageHolder:
		// AdvantageHolder stays put; only the streak counter resets.
		state.ExchangesThisRound = 0
		return result, ComboBreaker
	default:
		return result, ContinueActionLoop
	}
}
