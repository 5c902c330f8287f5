package sapling

import "math"

// PS4Button is a Playstation 4 controller button, numbered as the gamepad
// reports it.
type PS4Button int

const (
	PS4Cross PS4Button = iota
	PS4Circle
	PS4Square
	PS4Triangle
	PS4Share
	PS4PS
	PS4Options
	PS4L3
	PS4R3
	PS4L1
	PS4R1
	PS4DPadUp
	PS4DPadDown
	PS4DPadLeft
	PS4DPadRight
	PS4TouchPad

	ps4ButtonCount
)

var ps4ButtonNames = [ps4ButtonCount]string{
	"cross", "circle", "square", "triangle", "share", "ps", "options",
	"l3", "r3", "l1", "r1", "dpad-up", "dpad-down", "dpad-left", "dpad-right",
	"touchpad",
}

func (b PS4Button) String() string {
	if b >= 0 && b < ps4ButtonCount {
		return ps4ButtonNames[b]
	}
	return "unknown"
}

// LeverThreshold is the L2/R2 value above which a lever counts as pressed.
// Levers read -1 when released and 1 when fully held.
const LeverThreshold = -0.8

// StickAxis is the position of an analog stick.
type StickAxis struct {
	X, Y float64
	// Angle is atan2(Y, X) in radians.
	Angle float64
}

// Playstation4Controller maps a Playstation 4 gamepad onto signals.
type Playstation4Controller struct {
	*Controller

	OnLeftAxisChanged  Signal[StickAxis]
	OnRightAxisChanged Signal[StickAxis]
	OnL2Changed        Signal[float64]
	OnR2Changed        Signal[float64]
	// OnL2Pressed and OnR2Pressed fire every tick, with dt, while the lever
	// is above LeverThreshold.
	OnL2Pressed Signal[float64]
	OnR2Pressed Signal[float64]

	buttonUp   [ps4ButtonCount]Signal[*Playstation4Controller]
	buttonDown [ps4ButtonCount]Signal[*Playstation4Controller]
	held       [ps4ButtonCount]bool

	// left x, left y, right x, right y
	sticks [4]*Ref[float64]
	leverL float64
	leverR float64
}

// NewPlaystation4Controller creates a PS4 controller registered with app and
// its node. Add the node to a Scene or the App.
func NewPlaystation4Controller(app *App) (*Playstation4Controller, *Node) {
	c, n := NewController(app)
	p := &Playstation4Controller{Controller: c, leverL: -1, leverR: -1}
	for i := range p.sticks {
		p.sticks[i] = NewRef(0.0)
	}

	p.sticks[0].Watch(func(float64) { p.OnLeftAxisChanged.Emit(p.LeftStick()) })
	p.sticks[1].Watch(func(float64) { p.OnLeftAxisChanged.Emit(p.LeftStick()) })
	p.sticks[2].Watch(func(float64) { p.OnRightAxisChanged.Emit(p.RightStick()) })
	p.sticks[3].Watch(func(float64) { p.OnRightAxisChanged.Emit(p.RightStick()) })
	p.OnL2Changed.Connect(func(v float64) { p.leverL = v })
	p.OnR2Changed.Connect(func(v float64) { p.leverR = v })
	p.OnDisconnected.Connect(func(*Controller) { p.release() })

	c.HandleControllerEvent = p.handleControllerEvent
	n.Name = "ps4-controller"
	n.UserData = p
	n.OnProcess = p.process
	return p, n
}

// OnButtonDown returns the signal fired when b goes down. Panics if b is not
// a PS4 button.
func (p *Playstation4Controller) OnButtonDown(b PS4Button) *Signal[*Playstation4Controller] {
	return &p.buttonDown[b]
}

// OnButtonUp returns the signal fired when b is released. Panics if b is not
// a PS4 button.
func (p *Playstation4Controller) OnButtonUp(b PS4Button) *Signal[*Playstation4Controller] {
	return &p.buttonUp[b]
}

// Held reports whether b is currently down.
func (p *Playstation4Controller) Held(b PS4Button) bool {
	if b < 0 || b >= ps4ButtonCount {
		return false
	}
	return p.held[b]
}

// LeftStick returns the left stick position.
func (p *Playstation4Controller) LeftStick() StickAxis {
	return stickAxis(p.sticks[0].Value(), p.sticks[1].Value())
}

// RightStick returns the right stick position.
func (p *Playstation4Controller) RightStick() StickAxis {
	return stickAxis(p.sticks[2].Value(), p.sticks[3].Value())
}

// L2 returns the last reported left lever value.
func (p *Playstation4Controller) L2() float64 {
	return p.leverL
}

// R2 returns the last reported right lever value.
func (p *Playstation4Controller) R2() float64 {
	return p.leverR
}

func stickAxis(x, y float64) StickAxis {
	return StickAxis{X: x, Y: y, Angle: math.Atan2(y, x)}
}

// roundAxis rounds v to two decimals.
func roundAxis(v float64) float64 {
	return math.Round(v*100) / 100
}

func (p *Playstation4Controller) handleControllerEvent(e Event) {
	switch e.Type {
	case EventGamepadButtonDown, EventGamepadButtonUp:
		b := PS4Button(e.GamepadButton)
		if b < 0 || b >= ps4ButtonCount {
			return
		}
		if e.Type == EventGamepadButtonDown {
			p.held[b] = true
			p.buttonDown[b].Emit(p)
		} else {
			p.held[b] = false
			p.buttonUp[b].Emit(p)
		}

	case EventGamepadAxis:
		v := roundAxis(e.Value)
		switch {
		case e.Axis >= 0 && e.Axis < len(p.sticks):
			p.sticks[e.Axis].Set(v)
		case e.Axis == 4:
			p.OnL2Changed.Emit(v)
		case e.Axis == 5:
			p.OnR2Changed.Emit(v)
		}
	}
}

func (p *Playstation4Controller) process(dt float64, _ *Scene) {
	if !p.Connected() {
		return
	}
	if p.leverL > LeverThreshold {
		p.OnL2Pressed.Emit(dt)
	}
	if p.leverR > LeverThreshold {
		p.OnR2Pressed.Emit(dt)
	}
}

// release resets the held state after the gamepad is unplugged.
func (p *Playstation4Controller) release() {
	p.held = [ps4ButtonCount]bool{}
	p.leverL, p.leverR = -1, -1
}
