package bot

import (
	"math/rand/v2"
	"time"

	"github.com/milk9111/combobreaker/combat"
	"github.com/milk9111/combobreaker/flow"
	"go.uber.org/zap"
)

// Strategy turns rolls into picks. Rolls are drawn by the Bot so a strategy
// stays deterministic for a given seed.
type Strategy interface {
	Element(roll int) (combat.ElementKind, error)
	Action(element combat.Choice, roll int) (combat.ActionKind, error)
}

// Weighted is the built-in strategy: a uniform element and an action biased
// toward the double-damage complement.
type Weighted struct{}

func (Weighted) Element(roll int) (combat.ElementKind, error) {
	return combat.RandomElement(roll), nil
}

func (Weighted) Action(element combat.Choice, roll int) (combat.ActionKind, error) {
	return combat.WeightedAction(element, roll), nil
}

// Bot picks for a non-human player.
type Bot struct {
	player   combat.Player
	strategy Strategy
	rng      *rand.Rand
	logger   *zap.Logger
}

// New builds a bot. A zero seed seeds from the clock; a nil strategy means Weighted.
func New(player combat.Player, strategy Strategy, seed uint64, logger *zap.Logger) *Bot {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &Bot{
		player: player,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		logger: logger,
	}
	b.SetStrategy(strategy)
	return b
}

func (b *Bot) Player() combat.Player {
	return b.player
}

// SetStrategy swaps the strategy, e.g. after a script reload.
func (b *Bot) SetStrategy(s Strategy) {
	if b == nil {
		return
	}
	if s == nil {
		s = Weighted{}
	}
	b.strategy = s
}

// PickElement rolls an element selection.
func (b *Bot) PickElement() flow.Selection {
	roll := b.rng.IntN(len(combat.ElementKinds))
	e, err := b.strategy.Element(roll)
	if err != nil {
		b.logger.Error("bot element strategy failed; using weighted", zap.Error(err))
		e, _ = Weighted{}.Element(roll)
	}
	return flow.Selection{Player: b.player, Dimension: combat.DimensionElement, Choice: combat.ElementChoice(e)}
}

// PickAction rolls an action selection given the bot's current element.
func (b *Bot) PickAction(element combat.Choice) flow.Selection {
	roll := b.rng.IntN(combat.WeightedRolls)
	a, err := b.strategy.Action(element, roll)
	if err != nil {
		b.logger.Error("bot action strategy failed; using weighted", zap.Error(err))
		a, _ = Weighted{}.Action(element, roll)
	}
	return flow.Selection{Player: b.player, Dimension: combat.DimensionAction, Choice: combat.ActionChoice(a)}
}
