package combat

// WeightedRolls is the size of the roll WeightedAction expects.
const WeightedRolls = 4

// WeightedAction picks an action from a 4-way roll. Rolls 0 and 1 give the
// action complementing element; 2 and 3 give the remaining actions in
// declaration order. Without an element the pick is Hand.
func WeightedAction(element Choice, roll int) ActionKind {
	comp, ok := Complement(element).Action()
	if !ok || element.Kind() != KindElement {
		return Hand
	}

	roll %= WeightedRolls
	if roll < 0 {
		roll += WeightedRolls
	}
	if roll < 2 {
		return comp
	}

	others := make([]ActionKind, 0, len(ActionKinds)-1)
	for _, a := range ActionKinds {
		if a != comp {
			others = append(others, a)
		}
	}
	return others[roll-2]
}

// RandomElement maps a roll in [0, 3) to an element.
func RandomElement(roll int) ElementKind {
	n := len(ElementKinds)
	roll %= n
	if roll < 0 {
		roll += n
	}
	return ElementKinds[roll]
}
