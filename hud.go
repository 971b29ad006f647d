package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/combobreaker/combat"
	"github.com/milk9111/combobreaker/common"
	"github.com/milk9111/combobreaker/flow"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	hudMargin    = 40
	healthWidth  = 480
	healthHeight = 28
	timerWidth   = 600
	timerHeight  = 12
)

type hud struct {
	face ebtext.Face
}

func newHUD() *hud {
	return &hud{face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

func (h *hud) draw(screen *ebiten.Image, m *flow.Machine) {
	screen.Fill(colornames.Midnightblue)
	if m.Phase() == flow.PhaseTitle {
		return
	}

	h.drawHealth(screen, m, combat.One, hudMargin)
	h.drawHealth(screen, m, combat.Two, common.BaseWidth-hudMargin-healthWidth)

	center := float64(common.BaseWidth) / 2
	h.text(screen, phaseTitle(m.Phase(), m.Stage()), center, 150, 4, colornames.White, true)

	if m.Stage() == flow.StageCountdown {
		h.drawTimer(screen, m.TimerFraction())
	}

	h.drawPicks(screen, m)

	if r, ok := m.LastResolveResult(); ok {
		s, _ := m.LastSignal()
		h.text(screen, resultLine(r, m.Mode()), center, 460, 2, colornames.Gold, true)
		if line := signalLine(s, m.AdvantageHolder(), m.Mode()); line != "" {
			h.text(screen, line, center, 500, 3, colornames.Orangered, true)
		}
	}

	h.drawBindings(screen, m, combat.One, hudMargin)
	h.drawBindings(screen, m, combat.Two, common.BaseWidth-hudMargin-healthWidth)
}

func (h *hud) drawHealth(screen *ebiten.Image, m *flow.Machine, p combat.Player, x float32) {
	frac := float32(0)
	if maxHP := m.MaxHealth(); maxHP > 0 {
		frac = common.Clamp01(float32(m.Health(p)) / float32(maxHP))
	}

	y := float32(hudMargin)
	vector.FillRect(screen, x, y, healthWidth, healthHeight, colornames.Dimgray, false)
	vector.FillRect(screen, x, y, healthWidth*frac, healthHeight, healthColor(frac), false)
	vector.StrokeRect(screen, x, y, healthWidth, healthHeight, 2, colornames.White, false)

	label := playerLabel(p, m.Mode())
	if m.AdvantageHolder() == p && m.Exchanges() > 0 {
		label += "  *"
	}
	h.text(screen, fmt.Sprintf("%s  %d/%d", label, m.Health(p), m.MaxHealth()), float64(x), float64(y+healthHeight+8), 2, colornames.White, false)
}

func (h *hud) drawTimer(screen *ebiten.Image, frac float64) {
	x := float32(common.BaseWidth-timerWidth) / 2
	y := float32(200)
	w := common.Lerp(0, timerWidth, common.Clamp01(float32(frac)))
	vector.FillRect(screen, x, y, timerWidth, timerHeight, colornames.Dimgray, false)
	vector.FillRect(screen, x, y, w, timerHeight, colornames.Lightskyblue, false)
}

func (h *hud) drawPicks(screen *ebiten.Image, m *flow.Machine) {
	d, ok := pickDimension(m.Phase())
	if !ok {
		return
	}
	reveal := m.Stage() == flow.StageReveal
	for i, p := range [...]combat.Player{combat.One, combat.Two} {
		c := m.ChoiceSelection(p).Get(d)
		label := pickLabel(c, reveal)
		x := float64(common.BaseWidth) * (0.25 + 0.5*float64(i))
		h.text(screen, label, x, 320, 3, colornames.Lightgoldenrodyellow, true)
	}
}

func (h *hud) drawBindings(screen *ebiten.Image, m *flow.Machine, p combat.Player, x float32) {
	y := float64(common.BaseHeight - hudMargin - 20)
	for i, key := range m.Keys(p) {
		sel, _ := bindingFor(m, p, key)
		h.text(screen, fmt.Sprintf("[%s] %s / %s", key, sel.Element, sel.Action), float64(x), y-float64(i)*22, 2, colornames.Lightgray, false)
	}
}

func (h *hud) text(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color, centered bool) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	if centered {
		w, _ := ebtext.Measure(s, h.face, 0)
		x -= w * scale / 2
	}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(screen, s, h.face, op)
}

func healthColor(frac float32) color.Color {
	lo, hi := colornames.Red, colornames.Limegreen
	return color.RGBA{
		R: uint8(common.Lerp(float32(lo.R), float32(hi.R), frac)),
		G: uint8(common.Lerp(float32(lo.G), float32(hi.G), frac)),
		B: uint8(common.Lerp(float32(lo.B), float32(hi.B), frac)),
		A: 0xff,
	}
}

func bindingFor(m *flow.Machine, p combat.Player, key string) (combat.ChoiceSelection, bool) {
	cfg := m.Config()
	bindings := cfg.BindingsOne
	if p == combat.Two {
		bindings = cfg.BindingsTwo
	}
	sel, ok := bindings[key]
	return sel, ok
}

func pickDimension(p flow.Phase) (combat.Dimension, bool) {
	switch p {
	case flow.PhaseSelectElement:
		return combat.DimensionElement, true
	case flow.PhaseSelectAction:
		return combat.DimensionAction, true
	default:
		return 0, false
	}
}

func playerLabel(p combat.Player, mode flow.Mode) string {
	if p == combat.Two && mode.HasBot() {
		return "BOT"
	}
	return "PLAYER " + strings.ToUpper(p.String())
}

func phaseTitle(p flow.Phase, s flow.Stage) string {
	switch p {
	case flow.PhaseRoundStart:
		return "GET READY"
	case flow.PhaseSelectElement:
		if s == flow.StageReveal {
			return "ELEMENTS"
		}
		return "CHOOSE ELEMENT"
	case flow.PhaseSelectAction:
		if s == flow.StageReveal {
			return "ACTIONS"
		}
		return "CHOOSE ACTION"
	case flow.PhaseRoundOver:
		return "ROUND OVER"
	default:
		return ""
	}
}

func pickLabel(c combat.Choice, reveal bool) string {
	switch {
	case c.IsNone() && reveal:
		return "nothing"
	case c.IsNone():
		return "..."
	case reveal:
		return strings.ToUpper(c.String())
	default:
		return "ready"
	}
}

func resultLine(r combat.ResolveResult, mode flow.Mode) string {
	p, ok := r.Outcome.Winner()
	if !ok {
		return "clash"
	}
	line := fmt.Sprintf("%s hits with %s", playerLabel(p, mode), r.WinningChoice)
	if r.Damage > 1 {
		line += fmt.Sprintf("  x%d", r.Damage)
	}
	return line
}

func signalLine(s combat.Signal, holder combat.Player, mode flow.Mode) string {
	switch s {
	case combat.ComboBreaker:
		return "COMBO BREAKER!"
	case combat.AdvantageAnnounced:
		return "ADVANTAGE " + playerLabel(holder, mode)
	default:
		return ""
	}
}
