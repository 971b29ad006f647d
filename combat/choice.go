package combat

import (
	"fmt"
	"strings"
)

// Player identifies one of the two local players.
type Player int

const (
	One Player = iota
	Two
)

func (p Player) String() string {
	switch p {
	case One:
		return "one"
	case Two:
		return "two"
	default:
		return fmt.Sprintf("player(%d)", int(p))
	}
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == One {
		return Two
	}
	return One
}

// Ordering is the result of comparing two kinds under their cycle.
type Ordering int

const (
	Less Ordering = iota - 1
	Equal
	Greater
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Greater:
		return "greater"
	default:
		return "equal"
	}
}

// ActionKind is the tool a player attacks with.
type ActionKind int

const (
	Toilet ActionKind = iota + 1
	Underwear
	Hand
)

// ActionKinds lists every action in declaration order.
var ActionKinds = [...]ActionKind{Toilet, Underwear, Hand}

func (a ActionKind) String() string {
	switch a {
	case Toilet:
		return "toilet"
	case Underwear:
		return "underwear"
	case Hand:
		return "hand"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// ParseActionKind maps a case-insensitive name to an ActionKind.
func ParseActionKind(s string) (ActionKind, bool) {
	for _, a := range ActionKinds {
		if strings.EqualFold(strings.TrimSpace(s), a.String()) {
			return a, true
		}
	}
	return 0, false
}

// ElementKind is the element a player charges an exchange with.
type ElementKind int

const (
	Fire ElementKind = iota + 1
	Water
	Grass
)

// ElementKinds lists every element in declaration order.
var ElementKinds = [...]ElementKind{Fire, Water, Grass}

func (e ElementKind) String() string {
	switch e {
	case Fire:
		return "fire"
	case Water:
		return "water"
	case Grass:
		return "grass"
	default:
		return fmt.Sprintf("element(%d)", int(e))
	}
}

// ParseElementKind maps a case-insensitive name to an ElementKind.
func ParseElementKind(s string) (ElementKind, bool) {
	for _, e := range ElementKinds {
		if strings.EqualFold(strings.TrimSpace(s), e.String()) {
			return e, true
		}
	}
	return 0, false
}

type actionPair [2]ActionKind
type elementPair [2]ElementKind

// actionTable holds every ordered pair. Toilet beats Hand, Hand beats
// Underwear, Underwear beats Toilet.
var actionTable = map[actionPair]Ordering{
	{Toilet, Toilet}:       Equal,
	{Underwear, Underwear}: Equal,
	{Hand, Hand}:           Equal,
	{Toilet, Hand}:         Greater,
	{Hand, Toilet}:         Less,
	{Hand, Underwear}:      Greater,
	{Underwear, Hand}:      Less,
	{Underwear, Toilet}:    Greater,
	{Toilet, Underwear}:    Less,
}

// elementTable holds every ordered pair. Water beats Fire, Fire beats Grass,
// Grass beats Water.
var elementTable = map[elementPair]Ordering{
	{Fire, Fire}:   Equal,
	{Water, Water}: Equal,
	{Grass, Grass}: Equal,
	{Water, Fire}:  Greater,
	{Fire, Water}:  Less,
	{Fire, Grass}:  Greater,
	{Grass, Fire}:  Less,
	{Grass, Water}: Greater,
	{Water, Grass}: Less,
}

// CompareActions compares two actions. Unknown kinds compare Equal.
func CompareActions(a, b ActionKind) Ordering {
	return actionTable[actionPair{a, b}]
}

// CompareElements compares two elements. Unknown kinds compare Equal.
func CompareElements(a, b ElementKind) Ordering {
	return elementTable[elementPair{a, b}]
}

// ChoiceKind tags the variant held by a Choice.
type ChoiceKind int

const (
	KindNone ChoiceKind = iota
	KindAction
	KindElement
)

// Choice is None, an Action or an Element. The zero value is None.
type Choice struct {
	kind    ChoiceKind
	action  ActionKind
	element ElementKind
}

// None is the unselected choice.
var None = Choice{}

// ActionChoice wraps an action.
func ActionChoice(a ActionKind) Choice {
	return Choice{kind: KindAction, action: a}
}

// ElementChoice wraps an element.
func ElementChoice(e ElementKind) Choice {
	return Choice{kind: KindElement, element: e}
}

func (c Choice) Kind() ChoiceKind { return c.kind }

func (c Choice) IsNone() bool { return c.kind == KindNone }

// Action returns the wrapped action, if any.
func (c Choice) Action() (ActionKind, bool) {
	return c.action, c.kind == KindAction
}

// Element returns the wrapped element, if any.
func (c Choice) Element() (ElementKind, bool) {
	return c.element, c.kind == KindElement
}

func (c Choice) String() string {
	switch c.kind {
	case KindAction:
		return c.action.String()
	case KindElement:
		return c.element.String()
	default:
		return "none"
	}
}

// CompareChoices orders two choices. None is below every concrete choice and
// equal to itself. Choices of different tags compare Equal.
func CompareChoices(a, b Choice) Ordering {
	switch {
	case a.IsNone() && b.IsNone():
		return Equal
	case a.IsNone():
		return Less
	case b.IsNone():
		return Greater
	case a.kind != b.kind:
		return Equal
	case a.kind == KindAction:
		return CompareActions(a.action, b.action)
	default:
		return CompareElements(a.element, b.element)
	}
}

var actionToElement = map[ActionKind]ElementKind{
	Hand:      Fire,
	Toilet:    Water,
	Underwear: Grass,
}

var elementToAction = map[ElementKind]ActionKind{
	Fire:  Hand,
	Water: Toilet,
	Grass: Underwear,
}

// Complement returns the paired choice of the other tag, or None.
func Complement(c Choice) Choice {
	switch c.kind {
	case KindAction:
		if e, ok := actionToElement[c.action]; ok {
			return ElementChoice(e)
		}
	case KindElement:
		if a, ok := elementToAction[c.element]; ok {
			return ActionChoice(a)
		}
	}
	return None
}
