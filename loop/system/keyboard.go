package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/combobreaker/combat"
	"github.com/milk9111/combobreaker/loop"
)

// KeySource reports fresh key presses by binding name.
type KeySource interface {
	JustPressed(key string) bool
}

// EbitenKeys resolves binding names ("A", "ArrowLeft", ...) to ebiten keys.
type EbitenKeys struct {
	keys map[string]ebiten.Key
}

func NewEbitenKeys() *EbitenKeys {
	return &EbitenKeys{keys: make(map[string]ebiten.Key)}
}

func (e *EbitenKeys) JustPressed(name string) bool {
	key, ok := e.keys[name]
	if !ok {
		if err := key.UnmarshalText([]byte(name)); err != nil {
			return false
		}
		e.keys[name] = key
	}
	return inpututil.IsKeyJustPressed(key)
}

// KeyboardSystem queues a selection for every bound key pressed this frame.
type KeyboardSystem struct {
	source KeySource
}

func NewKeyboardSystem(source KeySource) *KeyboardSystem {
	if source == nil {
		source = NewEbitenKeys()
	}
	return &KeyboardSystem{source: source}
}

func (k *KeyboardSystem) Update(w *loop.World) {
	if w == nil || w.Machine == nil || !w.Machine.Phase().Selecting() {
		return
	}

	seen := make(map[string]struct{})
	for _, p := range [...]combat.Player{combat.One, combat.Two} {
		for _, key := range w.Machine.Keys(p) {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			if !k.source.JustPressed(key) {
				continue
			}
			if sel, ok := w.Machine.TranslateKey(key); ok {
				w.Selections.Push(sel)
			}
		}
	}
}
