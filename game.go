package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/combobreaker/bot"
	"github.com/milk9111/combobreaker/combat"
	"github.com/milk9111/combobreaker/common"
	"github.com/milk9111/combobreaker/flow"
	"github.com/milk9111/combobreaker/loop"
	"github.com/milk9111/combobreaker/loop/system"
	"github.com/milk9111/combobreaker/prefabs"
	"github.com/milk9111/combobreaker/sound"
	"go.uber.org/zap"
)

const cueVolume = 0.6

type gameOptions struct {
	configName string
	mode       flow.Mode
	seed       uint64
	watch      bool
	debug      bool
}

type Game struct {
	frames int
	opts   gameOptions
	logger *zap.Logger

	machine *flow.Machine
	world   *loop.World
	sched   *loop.Scheduler
	bot     *bot.Bot
	bank    *sound.Bank
	watcher *prefabs.Watcher

	scriptName string
	muted      bool

	hud     *hud
	titleUI *menu
	overUI  *menu
}

func NewGame(opts gameOptions, logger *zap.Logger) (*Game, error) {
	spec, err := prefabs.LoadMatchSpec(opts.configName)
	if err != nil {
		return nil, err
	}
	cfg, err := spec.ToConfig()
	if err != nil {
		return nil, err
	}
	if opts.mode != "" {
		cfg.Mode = opts.mode
	}

	seed := opts.seed
	if seed == 0 {
		seed = spec.Bot.Seed
	}

	g := &Game{
		opts:       opts,
		logger:     logger,
		scriptName: spec.Bot.Script,
		hud:        newHUD(),
	}

	g.machine = flow.NewMachine(cfg, flow.WithLogger(logger.Named("flow")))
	g.bot = bot.New(combat.Two, g.loadStrategy(g.scriptName), seed, logger.Named("bot"))
	g.bank = sound.NewBank(audio.NewContext(sound.SampleRate), cueVolume, logger.Named("sound"))

	g.world = loop.NewWorld(g.machine)
	g.sched = loop.NewScheduler(
		system.NewKeyboardSystem(nil),
		system.NewFlowSystem(),
		system.NewBotSystem(g.bot),
		system.NewCueSystem(),
		system.NewAudioSystem(g.bank),
	)

	if opts.watch {
		w, err := prefabs.NewWatcher()
		if err != nil {
			logger.Warn("hot reload disabled", zap.Error(err))
		} else {
			g.watcher = w
		}
	}

	g.titleUI = NewTitleUI(g)
	g.overUI = NewRoundOverUI(g)

	logger.Info("game ready",
		zap.String("config", opts.configName),
		zap.String("mode", string(cfg.Mode)),
		zap.String("bot_script", g.scriptName),
		zap.Uint64("seed", seed),
	)
	return g, nil
}

// loadStrategy compiles the named bot script. Failures fall back to the
// weighted bot.
func (g *Game) loadStrategy(name string) bot.Strategy {
	if name == "" {
		return nil
	}
	src, err := prefabs.LoadScript(name)
	if err != nil {
		g.logger.Error("load bot script", zap.String("script", name), zap.Error(err))
		return nil
	}
	s, err := bot.NewScriptStrategy(name, src)
	if err != nil {
		g.logger.Error("compile bot script", zap.String("script", name), zap.Error(err))
		return nil
	}
	return s
}

func (g *Game) Update() error {
	g.frames++
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.muted = !g.muted
		g.bank.SetMuted(g.muted)
	}

	switch g.machine.Phase() {
	case flow.PhaseTitle:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.startMatch("")
		}
		g.titleUI.ui.Update()
	case flow.PhaseRoundOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.returnToTitle()
		}
		g.overUI.ui.Update()
	}

	g.world.DT = time.Second / time.Duration(ebiten.TPS())
	g.sched.Update(g.world)

	if winner, ok := g.machine.Winner(); ok {
		g.overUI.setHeading(fmt.Sprintf("%s WINS", playerLabel(winner, g.machine.Mode())))
	}
	return nil
}

func (g *Game) startMatch(mode flow.Mode) {
	if !g.machine.StartMatch(mode) {
		return
	}
	g.world.Reset()
}

func (g *Game) returnToTitle() {
	if !g.machine.ReturnToTitle() {
		return
	}
	g.world.Reset()
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Warn("watch", zap.Error(err))
		default:
			return
		}
	}
}

// reload applies an edited match config or bot script. Configs take effect at
// the next match; scripts immediately.
func (g *Game) reload(path string) {
	switch {
	case prefabs.IsMatchFile(path, g.opts.configName):
		spec, err := prefabs.LoadMatchSpec(g.opts.configName)
		if err != nil {
			g.logger.Error("reload match config", zap.Error(err))
			return
		}
		cfg, err := spec.ToConfig()
		if err != nil {
			g.logger.Error("reload match config", zap.Error(err))
			return
		}
		if g.opts.mode != "" {
			cfg.Mode = g.opts.mode
		}
		g.machine.SetConfig(cfg)
		if spec.Bot.Script != g.scriptName {
			g.scriptName = spec.Bot.Script
			g.bot.SetStrategy(g.loadStrategy(g.scriptName))
		}
	case prefabs.IsScript(path) && g.scriptName != "" && filepath.Base(path) == filepath.Base(g.scriptName):
		if s := g.loadStrategy(g.scriptName); s != nil {
			g.bot.SetStrategy(s)
			g.logger.Info("bot script reloaded", zap.String("script", g.scriptName))
		}
	}
}

func (g *Game) Close() error {
	return g.watcher.Close()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.hud.draw(screen, g.machine)

	switch g.machine.Phase() {
	case flow.PhaseTitle:
		g.titleUI.ui.Draw(screen)
	case flow.PhaseRoundOver:
		g.overUI.ui.Draw(screen)
	}

	if g.opts.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    %s/%s", g.frames, ebiten.ActualFPS(), g.machine.Phase(), g.machine.Stage()))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
