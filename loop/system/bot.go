package system

import (
	"github.com/milk9111/combobreaker/bot"
	"github.com/milk9111/combobreaker/flow"
	"github.com/milk9111/combobreaker/loop"
)

// BotSystem picks for the bot as soon as an input window opens.
type BotSystem struct {
	bot *bot.Bot
}

func NewBotSystem(b *bot.Bot) *BotSystem {
	return &BotSystem{bot: b}
}

func (b *BotSystem) Update(w *loop.World) {
	if w == nil || w.Machine == nil || b.bot == nil || !w.Machine.Mode().HasBot() {
		return
	}

	for _, n := range w.Notices() {
		if n.Kind != flow.NoticeStageEntered || n.Stage != flow.StageCountdown {
			continue
		}

		var sel flow.Selection
		switch n.Phase {
		case flow.PhaseSelectElement:
			sel = b.bot.PickElement()
		case flow.PhaseSelectAction:
			own := w.Machine.ChoiceSelection(b.bot.Player())
			sel = b.bot.PickAction(own.Element)
		default:
			continue
		}
		w.Machine.SubmitSelection(sel.Player, sel.Dimension, sel.Choice)
	}
}
