package sapling

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EventType identifies a kind of input event.
type EventType uint8

const (
	EventQuit                EventType = iota // the window is closing
	EventKeyDown                              // a key went down this frame
	EventKeyUp                                // a key was released this frame
	EventTextInput                            // characters were typed this frame
	EventMouseMotion                          // the cursor moved
	EventMouseButtonDown                      // a mouse button went down
	EventMouseButtonUp                        // a mouse button was released
	EventGamepadConnected                     // a gamepad was plugged in
	EventGamepadDisconnected                  // a gamepad was unplugged
	EventGamepadButtonDown                    // a gamepad button went down
	EventGamepadButtonUp                      // a gamepad button was released
	EventGamepadAxis                          // a gamepad axis changed value
)

var eventTypeNames = [...]string{
	"quit", "key-down", "key-up", "text-input", "mouse-motion",
	"mouse-button-down", "mouse-button-up", "gamepad-connected",
	"gamepad-disconnected", "gamepad-button-down", "gamepad-button-up",
	"gamepad-axis",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Event is one input occurrence. Only the fields relevant to Type are set.
type Event struct {
	Type EventType

	// Keyboard (EventKeyDown, EventKeyUp, EventTextInput)
	Key       ebiten.Key
	KeyName   string
	Text      string
	Modifiers KeyModifiers

	// Mouse (EventMouseMotion, EventMouseButtonDown, EventMouseButtonUp)
	X, Y   float64
	DX, DY float64
	Button MouseButton

	// Gamepad (EventGamepad*)
	Gamepad       ebiten.GamepadID
	GamepadButton ebiten.GamepadButton
	Axis          int
	Value         float64
}

// EventSource produces the input events for one frame.
type EventSource interface {
	// Poll appends this frame's events to dst and returns the extended slice.
	Poll(dst []Event) []Event
}

// EventListener is a set of optional per-kind handlers. Nodes that want typed
// callbacks instead of a single OnEvent assign Listen as their OnEvent.
type EventListener struct {
	// Muted makes Listen ignore every event.
	Muted bool

	OnMouseMotion     func(Event)
	OnMouseButtonDown func(Event)
	OnMouseButtonUp   func(Event)
	OnKeyDown         func(Event)
	OnKeyUp           func(Event)
	OnTextInput       func(Event)
}

// Listen routes e to the matching handler.
func (l *EventListener) Listen(e Event) {
	if l.Muted {
		return
	}
	var fn func(Event)
	switch e.Type {
	case EventMouseMotion:
		fn = l.OnMouseMotion
	case EventMouseButtonDown:
		fn = l.OnMouseButtonDown
	case EventMouseButtonUp:
		fn = l.OnMouseButtonUp
	case EventKeyDown:
		fn = l.OnKeyDown
	case EventKeyUp:
		fn = l.OnKeyUp
	case EventTextInput:
		fn = l.OnTextInput
	}
	if fn != nil {
		fn(e)
	}
}

// --- Ebitengine polling ---

// ebitenSource turns Ebitengine's polled input state into events.
type ebitenSource struct {
	keys     []ebiten.Key
	chars    []rune
	pads     []ebiten.GamepadID
	known    []ebiten.GamepadID
	axes     map[ebiten.GamepadID][]float64
	cursorX  int
	cursorY  int
	hasMouse bool
}

func newEbitenSource() *ebitenSource {
	return &ebitenSource{axes: make(map[ebiten.GamepadID][]float64)}
}

var mouseButtons = [...]struct {
	eb  ebiten.MouseButton
	btn MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

// Poll implements EventSource.
func (s *ebitenSource) Poll(dst []Event) []Event {
	if ebiten.IsWindowBeingClosed() {
		dst = append(dst, Event{Type: EventQuit})
	}

	mods := readModifiers()

	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		dst = append(dst, Event{Type: EventKeyDown, Key: k, KeyName: k.String(), Modifiers: mods})
	}
	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	for _, k := range s.keys {
		dst = append(dst, Event{Type: EventKeyUp, Key: k, KeyName: k.String(), Modifiers: mods})
	}
	s.chars = ebiten.AppendInputChars(s.chars[:0])
	if len(s.chars) > 0 {
		dst = append(dst, Event{Type: EventTextInput, Text: string(s.chars), Modifiers: mods})
	}

	dst = s.pollMouse(dst, mods)
	return s.pollGamepads(dst)
}

func (s *ebitenSource) pollMouse(dst []Event, mods KeyModifiers) []Event {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	if s.hasMouse && (mx != s.cursorX || my != s.cursorY) {
		dst = append(dst, Event{
			Type: EventMouseMotion,
			X:    x, Y: y,
			DX: float64(mx - s.cursorX), DY: float64(my - s.cursorY),
			Modifiers: mods,
		})
	}
	s.cursorX, s.cursorY, s.hasMouse = mx, my, true

	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.eb) {
			dst = append(dst, Event{Type: EventMouseButtonDown, X: x, Y: y, Button: mb.btn, Modifiers: mods})
		}
		if inpututil.IsMouseButtonJustReleased(mb.eb) {
			dst = append(dst, Event{Type: EventMouseButtonUp, X: x, Y: y, Button: mb.btn, Modifiers: mods})
		}
	}
	return dst
}

func (s *ebitenSource) pollGamepads(dst []Event) []Event {
	// Disconnects first so a replugged id reads as a fresh connection.
	kept := s.known[:0]
	for _, id := range s.known {
		if inpututil.IsGamepadJustDisconnected(id) {
			delete(s.axes, id)
			dst = append(dst, Event{Type: EventGamepadDisconnected, Gamepad: id})
			continue
		}
		kept = append(kept, id)
	}
	s.known = kept

	s.pads = inpututil.AppendJustConnectedGamepadIDs(s.pads[:0])
	for _, id := range s.pads {
		s.known = append(s.known, id)
		dst = append(dst, Event{Type: EventGamepadConnected, Gamepad: id})
	}

	for _, id := range s.known {
		for b := 0; b < ebiten.GamepadButtonCount(id); b++ {
			gb := ebiten.GamepadButton(b)
			if inpututil.IsGamepadButtonJustPressed(id, gb) {
				dst = append(dst, Event{Type: EventGamepadButtonDown, Gamepad: id, GamepadButton: gb})
			}
			if inpututil.IsGamepadButtonJustReleased(id, gb) {
				dst = append(dst, Event{Type: EventGamepadButtonUp, Gamepad: id, GamepadButton: gb})
			}
		}

		n := ebiten.GamepadAxisCount(id)
		last := s.axes[id]
		if len(last) != n {
			last = make([]float64, n)
			for a := range last {
				last[a] = math.NaN()
			}
			s.axes[id] = last
		}
		for a := 0; a < n; a++ {
			v := ebiten.GamepadAxisValue(id, ebiten.GamepadAxisType(a))
			if v != last[a] {
				last[a] = v
				dst = append(dst, Event{Type: EventGamepadAxis, Gamepad: id, Axis: a, Value: v})
			}
		}
	}
	return dst
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) {
		mods |= ModShift | ModShiftLeft
	}
	if ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift | ModShiftRight
	}
	if ebiten.IsKeyPressed(ebiten.KeyControlLeft) {
		mods |= ModCtrl | ModCtrlLeft
	}
	if ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl | ModCtrlRight
	}
	if ebiten.IsKeyPressed(ebiten.KeyAltLeft) {
		mods |= ModAlt | ModAltLeft
	}
	if ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt | ModAltRight
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}
