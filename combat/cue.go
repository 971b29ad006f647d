package combat

// CueID names an audio or animation cue. Players of cues map ids to clips.
type CueID string

const (
	CueNone           CueID = ""
	CueUnknown        CueID = "unknown"
	CueClash          CueID = "clash"
	CueHitPlayerOne   CueID = "hit_player_one"
	CueHitPlayerTwo   CueID = "hit_player_two"
	CueToilet         CueID = "tool_toilet"
	CueUnderwear      CueID = "tool_underwear"
	CueHand           CueID = "tool_hand"
	CueFire           CueID = "element_fire"
	CueWater          CueID = "element_water"
	CueGrass          CueID = "element_grass"
	CuePlayerOneWins  CueID = "player_one_wins"
	CuePlayerTwoWins  CueID = "player_two_wins"
	CueComboBreaker   CueID = "combo_breaker"
	CueAdvantage      CueID = "advantage"
	CueCountdownStart CueID = "countdown"
)

// CueForResult picks the cue for an exchange result. A win plays the hit on
// the winning player's side.
func CueForResult(r ResolveResult) CueID {
	switch r.Outcome {
	case PlayerOneWins:
		return CueHitPlayerOne
	case PlayerTwoWins:
		return CueHitPlayerTwo
	default:
		return CueClash
	}
}

// CueForChoice picks the icon or sound cue for a choice.
func CueForChoice(c Choice) CueID {
	if a, ok := c.Action(); ok {
		switch a {
		case Toilet:
			return CueToilet
		case Underwear:
			return CueUnderwear
		case Hand:
			return CueHand
		}
	}
	if e, ok := c.Element(); ok {
		switch e {
		case Fire:
			return CueFire
		case Water:
			return CueWater
		case Grass:
			return CueGrass
		}
	}
	return CueUnknown
}

// CueForSignal picks the announcement cue, if any, for a flow signal.
func CueForSignal(s Signal) CueID {
	switch s {
	case ComboBreaker:
		return CueComboBreaker
	case AdvantageAnnounced:
		return CueAdvantage
	default:
		return CueNone
	}
}

// CueForWinner picks the round-over cue.
func CueForWinner(p Player) CueID {
	if p == One {
		return CuePlayerOneWins
	}
	return CuePlayerTwoWins
}
