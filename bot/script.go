package bot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/combobreaker/combat"
)

// ErrScriptResult is returned when a script picks something that is not a
// valid element or action.
var ErrScriptResult = errors.New("bot: script returned an invalid pick")

// A bot script defines pick_element(bot) and pick_action(bot). Both return a
// name. bot.roll holds the roll, bot.element the current element (or "") and
// bot.complement(name) the paired name of the other kind.
const scriptDispatch = `
if __phase == "element" {
	__result = pick_element(__bot)
} else if __phase == "action" {
	__result = pick_action(__bot)
}
`

// ScriptStrategy runs a tengo bot script.
type ScriptStrategy struct {
	name     string
	compiled *tengo.Compiled
}

// NewScriptStrategy compiles src. name is only used in errors.
func NewScriptStrategy(name string, src []byte) (*ScriptStrategy, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + scriptDispatch))
	_ = script.Add("__phase", "")
	_ = script.Add("__bot", map[string]any{})
	_ = script.Add("__result", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("bot: compile %s: %w", name, err)
	}
	return &ScriptStrategy{name: name, compiled: compiled}, nil
}

func (s *ScriptStrategy) Name() string {
	return s.name
}

func (s *ScriptStrategy) Element(roll int) (combat.ElementKind, error) {
	out, err := s.run("element", combat.None, roll)
	if err != nil {
		return 0, err
	}
	e, ok := combat.ParseElementKind(out)
	if !ok {
		return 0, fmt.Errorf("%w: %s pick_element gave %q", ErrScriptResult, s.name, out)
	}
	return e, nil
}

func (s *ScriptStrategy) Action(element combat.Choice, roll int) (combat.ActionKind, error) {
	out, err := s.run("action", element, roll)
	if err != nil {
		return 0, err
	}
	a, ok := combat.ParseActionKind(out)
	if !ok {
		return 0, fmt.Errorf("%w: %s pick_action gave %q", ErrScriptResult, s.name, out)
	}
	return a, nil
}

func (s *ScriptStrategy) run(phase string, element combat.Choice, roll int) (string, error) {
	if s == nil || s.compiled == nil {
		return "", fmt.Errorf("bot: nil script strategy")
	}
	if err := s.compiled.Set("__phase", phase); err != nil {
		return "", err
	}
	if err := s.compiled.Set("__bot", buildScriptBot(element, roll)); err != nil {
		return "", err
	}
	if err := s.compiled.Set("__result", ""); err != nil {
		return "", err
	}
	if err := s.compiled.Run(); err != nil {
		return "", fmt.Errorf("bot: run %s: %w", s.name, err)
	}
	return strings.TrimSpace(s.compiled.Get("__result").String()), nil
}

func buildScriptBot(element combat.Choice, roll int) *tengo.ImmutableMap {
	name := ""
	if !element.IsNone() {
		name = element.String()
	}

	values := map[string]tengo.Object{
		"roll":    &tengo.Int{Value: int64(roll)},
		"element": &tengo.String{Value: name},
	}

	values["complement"] = &tengo.UserFunction{Name: "complement", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return &tengo.String{}, nil
		}
		raw, _ := tengo.ToString(args[0])
		var c combat.Choice
		if a, ok := combat.ParseActionKind(raw); ok {
			c = combat.ActionChoice(a)
		} else if e, ok := combat.ParseElementKind(raw); ok {
			c = combat.ElementChoice(e)
		}
		out := combat.Complement(c)
		if out.IsNone() {
			return &tengo.String{}, nil
		}
		return &tengo.String{Value: out.String()}, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}
