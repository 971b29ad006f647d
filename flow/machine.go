package flow

import (
	"time"

	"github.com/milk9111/combobreaker/combat"
	"go.uber.org/zap"
)

// Selection is one player's pick for one dimension.
type Selection struct {
	Player    combat.Player
	Dimension combat.Dimension
	Choice    combat.Choice
}

// NoticeKind tags what a Notice reports.
type NoticeKind int

const (
	NoticePhaseEntered NoticeKind = iota
	NoticeStageEntered
	NoticeSelected
	NoticeResolved
	NoticeMatchOver
)

// Notice is something that happened during a tick, for presentation and audio.
type Notice struct {
	Kind      NoticeKind
	Phase     Phase
	Stage     Stage
	Player    combat.Player
	Dimension combat.Dimension
	Choice    combat.Choice
	Result    combat.ResolveResult
	Signal    combat.Signal
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// Machine owns the match state and sequences the phases. It is driven by
// Tick from a single goroutine; other packages only read it.
type Machine struct {
	cfg     Config
	pending *Config
	mode    Mode

	phase Phase
	stage Stage
	timer Timer
	match *combat.MatchState

	last       combat.ResolveResult
	lastSignal combat.Signal
	hasLast    bool
	winner     combat.Player
	finished   bool

	notices []Notice
	logger  *zap.Logger
}

// NewMachine returns a machine sitting on the title phase.
func NewMachine(cfg Config, opts ...Option) *Machine {
	cfg = cfg.normalized()
	m := &Machine{
		cfg:    cfg,
		mode:   cfg.Mode,
		phase:  PhaseTitle,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetConfig replaces the config from the next StartMatch on.
func (m *Machine) SetConfig(cfg Config) {
	if m == nil {
		return
	}
	cfg = cfg.normalized()
	m.pending = &cfg
	m.logger.Info("match config staged", zap.Int("max_health", cfg.MaxHealth), zap.String("mode", string(cfg.Mode)))
}

// StartMatch leaves the title for a new match. An empty mode uses the
// configured one. It returns false outside the title phase.
func (m *Machine) StartMatch(mode Mode) bool {
	if m == nil || m.phase != PhaseTitle {
		return false
	}
	if m.pending != nil {
		m.cfg = *m.pending
		m.pending = nil
	}
	if mode == "" {
		mode = m.cfg.Mode
	}
	m.mode = mode
	m.enterPhase(PhaseRoundStart)
	return true
}

// ReturnToTitle leaves a finished match. It returns false unless the round is over.
func (m *Machine) ReturnToTitle() bool {
	if m == nil || m.phase != PhaseRoundOver {
		return false
	}
	m.enterPhase(PhaseTitle)
	return true
}

// Tick advances the timer by dt, applies selections, then fires the phase
// transition if the timer ran out. It returns the notices raised since the
// previous Tick.
func (m *Machine) Tick(dt time.Duration, selections []Selection) []Notice {
	if m == nil {
		return nil
	}

	m.timer.Advance(dt)

	for _, sel := range selections {
		m.SubmitSelection(sel.Player, sel.Dimension, sel.Choice)
	}

	if m.timer.Expired() {
		m.expire()
	}

	out := m.notices
	m.notices = nil
	return out
}

// SubmitSelection records a choice while the matching phase has its input
// window open. Anything else is ignored and reported as false.
func (m *Machine) SubmitSelection(p combat.Player, d combat.Dimension, c combat.Choice) bool {
	if !m.AcceptingInput(d) {
		return false
	}
	if !m.match.Select(p, d, c) {
		return false
	}

	m.logger.Debug("selection",
		zap.Stringer("player", p),
		zap.Stringer("dimension", d),
		zap.Stringer("choice", c),
	)
	m.notify(Notice{Kind: NoticeSelected, Phase: m.phase, Stage: m.stage, Player: p, Dimension: d, Choice: c})
	return true
}

// AcceptingInput reports whether d may be selected right now.
func (m *Machine) AcceptingInput(d combat.Dimension) bool {
	if m == nil || m.match == nil || m.stage != StageCountdown {
		return false
	}
	switch m.phase {
	case PhaseSelectElement:
		return d == combat.DimensionElement
	case PhaseSelectAction:
		return d == combat.DimensionAction
	default:
		return false
	}
}

func (m *Machine) expire() {
	switch m.phase {
	case PhaseRoundStart:
		m.enterPhase(PhaseSelectElement)
	case PhaseSelectElement, PhaseSelectAction:
		m.advanceStage()
	}
}

func (m *Machine) advanceStage() {
	next := m.stage.next()
	if next != StageNone {
		m.enterStage(next)
		return
	}
	if m.phase == PhaseSelectElement {
		m.enterPhase(PhaseSelectAction)
		return
	}
	m.enterPhase(PhaseResolveAction)
}

func (m *Machine) enterStage(s Stage) {
	m.stage = s
	d := m.stageDuration(s)
	if d <= 0 {
		m.advanceStage()
		return
	}
	m.timer.Reset(d)
	m.logger.Debug("stage", zap.Stringer("phase", m.phase), zap.Stringer("stage", s))
	m.notify(Notice{Kind: NoticeStageEntered, Phase: m.phase, Stage: s})
}

func (m *Machine) stageDuration(s Stage) time.Duration {
	switch s {
	case StageBanner:
		return m.cfg.Banner
	case StageCountdown:
		return m.cfg.Durations.For(m.phase)
	case StageReveal:
		return m.cfg.Reveal
	default:
		return 0
	}
}

func (m *Machine) enterPhase(p Phase) {
	if !m.phase.CanTransitionTo(p) {
		m.logger.Error("illegal transition", zap.Stringer("from", m.phase), zap.Stringer("to", p))
		return
	}

	m.phase = p
	m.stage = StageNone
	m.logger.Debug("phase", zap.Stringer("phase", p))
	m.notify(Notice{Kind: NoticePhaseEntered, Phase: p})

	switch p {
	case PhaseTitle:
		m.timer.Stop()
		m.match = nil
		m.hasLast = false
		m.finished = false
	case PhaseRoundStart:
		var two map[string]combat.ChoiceSelection
		if !m.mode.HasBot() {
			two = m.cfg.BindingsTwo
		}
		m.match = combat.NewMatchState(m.cfg.MaxHealth, m.cfg.BindingsOne, two)
		m.hasLast = false
		m.finished = false
		m.timer.Reset(m.cfg.Durations.For(PhaseRoundStart))
	case PhaseSelectElement, PhaseSelectAction:
		m.enterStage(StageBanner)
	case PhaseResolveAction:
		m.timer.Stop()
		m.resolve()
	case PhaseRoundOver:
		m.timer.Stop()
		m.winner = combat.Winner(m.match)
		m.finished = true
		m.logger.Info("match over",
			zap.Stringer("winner", m.winner),
			zap.Int("health_one", m.match.PlayerOne.Health),
			zap.Int("health_two", m.match.PlayerTwo.Health),
		)
		m.notify(Notice{Kind: NoticeMatchOver, Phase: p, Player: m.winner})
	}
}

func (m *Machine) resolve() {
	result, signal := combat.ApplyRound(m.match)
	m.last = result
	m.lastSignal = signal
	m.hasLast = true

	m.logger.Info("exchange resolved",
		zap.Stringer("outcome", result.Outcome),
		zap.Stringer("winning_choice", result.WinningChoice),
		zap.Stringer("signal", signal),
		zap.Int("exchanges", m.match.ExchangesThisRound),
		zap.Int("health_one", m.match.PlayerOne.Health),
		zap.Int("health_two", m.match.PlayerTwo.Health),
	)
	m.notify(Notice{Kind: NoticeResolved, Phase: PhaseResolveAction, Result: result, Signal: signal})

	switch signal {
	case combat.MatchOver:
		m.enterPhase(PhaseRoundOver)
	case combat.RestartFromElement, combat.ComboBreaker:
		m.enterPhase(PhaseSelectElement)
	default:
		m.enterPhase(PhaseSelectAction)
	}
}

func (m *Machine) notify(n Notice) {
	m.notices = append(m.notices, n)
}
