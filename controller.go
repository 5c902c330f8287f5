package sapling

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Controller is a slot a gamepad can be plugged into. Controllers are
// registered with an App in creation order; when a gamepad connects, the
// first controller without one claims it.
type Controller struct {
	OnConnected    Signal[*Controller]
	OnDisconnected Signal[*Controller]

	// HandleControllerEvent receives the button and axis events of the
	// linked gamepad. The node must be added to a Scene or the App for these
	// to arrive.
	HandleControllerEvent func(Event)

	index     int
	gamepad   ebiten.GamepadID
	connected bool
	node      *Node
}

// NewController creates a controller registered with app and its listening
// node.
func NewController(app *App) (*Controller, *Node) {
	c := &Controller{index: len(app.controllers)}
	app.controllers = append(app.controllers, c)

	n := NewNode("controller")
	n.Type = NodeTypeController
	n.Listening = true
	n.UserData = c
	n.OnEvent = c.handle
	c.node = n
	return c, n
}

// Node returns the controller's node.
func (c *Controller) Node() *Node {
	return c.node
}

// Index returns the controller's registration order within its App.
func (c *Controller) Index() int {
	return c.index
}

// Connected reports whether a gamepad is linked.
func (c *Controller) Connected() bool {
	return c.connected
}

// Gamepad returns the linked gamepad id. It is meaningless unless Connected.
func (c *Controller) Gamepad() ebiten.GamepadID {
	return c.gamepad
}

func (c *Controller) link(id ebiten.GamepadID) {
	c.gamepad = id
	c.connected = true
	c.OnConnected.Emit(c)
}

func (c *Controller) unlink() {
	c.OnDisconnected.Emit(c)
	c.connected = false
}

func (c *Controller) handle(e Event) {
	if !c.connected || e.Gamepad != c.gamepad {
		return
	}
	switch e.Type {
	case EventGamepadButtonDown, EventGamepadButtonUp, EventGamepadAxis:
		if c.HandleControllerEvent != nil {
			c.HandleControllerEvent(e)
		}
	}
}

// Controllers returns the registered controllers in creation order.
func (a *App) Controllers() []*Controller {
	return a.controllers
}

// syncControllers links or unlinks a controller for a hot-plug event.
func (a *App) syncControllers(e Event) {
	switch e.Type {
	case EventGamepadConnected:
		for _, c := range a.controllers {
			if c.connected && c.gamepad == e.Gamepad {
				return
			}
		}
		for _, c := range a.controllers {
			if !c.connected {
				c.link(e.Gamepad)
				a.log.Info("gamepad connected",
					zap.Int("gamepad", int(e.Gamepad)),
					zap.Int("controller", c.index),
				)
				return
			}
		}
		a.log.Debug("gamepad connected with no free controller", zap.Int("gamepad", int(e.Gamepad)))

	case EventGamepadDisconnected:
		for _, c := range a.controllers {
			if c.connected && c.gamepad == e.Gamepad {
				c.unlink()
				a.log.Info("gamepad disconnected",
					zap.Int("gamepad", int(e.Gamepad)),
					zap.Int("controller", c.index),
				)
				return
			}
		}
	}
}
