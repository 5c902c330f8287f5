package sapling

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action  string  `yaml:"action"`
	Label   string  `yaml:"label,omitempty"`
	Key     string  `yaml:"key,omitempty"`
	Text    string  `yaml:"text,omitempty"`
	X       float64 `yaml:"x,omitempty"`
	Y       float64 `yaml:"y,omitempty"`
	Frames  int     `yaml:"frames,omitempty"`
	Gamepad int     `yaml:"gamepad,omitempty"`
	Button  int     `yaml:"button,omitempty"`
	Axis    int     `yaml:"axis,omitempty"`
	Value   float64 `yaml:"value,omitempty"`

	key ebiten.Key
}

// script is the top-level YAML document of an input script.
type script struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptRunner replays a sequence of injected input events, waits and
// screenshots across ticks. Attach it with App.SetScript.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML input script.
func LoadScript(r io.Reader) (*ScriptRunner, error) {
	var s script
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse input script: no steps")
		}
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i := range s.Steps {
		if err := s.Steps[i].validate(); err != nil {
			return nil, fmt.Errorf("parse input script: step %d: %w", i+1, err)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// LoadScriptFile reads an input script from path.
func LoadScriptFile(path string) (*ScriptRunner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input script: %w", err)
	}
	defer f.Close()
	return LoadScript(f)
}

func (st *scriptStep) validate() error {
	switch st.Action {
	case "key":
		if err := st.key.UnmarshalText([]byte(st.Key)); err != nil {
			return fmt.Errorf("unknown key %q", st.Key)
		}
	case "text":
		if st.Text == "" {
			return fmt.Errorf("text step without text")
		}
	case "wait":
		if st.Frames < 0 {
			return fmt.Errorf("negative wait %d", st.Frames)
		}
	case "click", "screenshot", "quit",
		"gamepad-connect", "gamepad-disconnect", "gamepad-button", "gamepad-axis":
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// SetScript attaches r to the App. Its steps run at the start of each tick,
// before input is polled. nil detaches the current script.
func (a *App) SetScript(r *ScriptRunner) {
	a.script = r
}

// Done reports whether every step has been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one tick.
func (r *ScriptRunner) step(a *App) {
	if r.done {
		return
	}
	if len(a.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	pad := ebiten.GamepadID(st.Gamepad)
	switch st.Action {
	case "key":
		a.InjectKey(st.key)
	case "text":
		a.InjectText(st.Text)
	case "click":
		a.InjectClick(st.X, st.Y)
	case "screenshot":
		a.Screenshot(st.Label)
	case "quit":
		a.InjectQuit()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	case "gamepad-connect":
		a.InjectEvent(Event{Type: EventGamepadConnected, Gamepad: pad})
	case "gamepad-disconnect":
		a.InjectEvent(Event{Type: EventGamepadDisconnected, Gamepad: pad})
	case "gamepad-button":
		gb := ebiten.GamepadButton(st.Button)
		a.InjectEvent(Event{Type: EventGamepadButtonDown, Gamepad: pad, GamepadButton: gb})
		a.InjectEvent(Event{Type: EventGamepadButtonUp, Gamepad: pad, GamepadButton: gb})
	case "gamepad-axis":
		a.InjectEvent(Event{Type: EventGamepadAxis, Gamepad: pad, Axis: st.Axis, Value: st.Value})
	}

	// Injected events are delivered later in this same tick.
	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
