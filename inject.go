package sapling

import "github.com/hajimehoshi/ebiten/v2"

// InjectEvent queues e to be delivered on the next tick, after the events
// polled from the real input devices.
func (a *App) InjectEvent(e Event) {
	a.injectQueue = append(a.injectQueue, e)
}

// InjectKey queues a key-down followed by a key-up for k.
func (a *App) InjectKey(k ebiten.Key) {
	a.InjectKeyWith(k, 0)
}

// InjectKeyWith is InjectKey with modifier keys held.
func (a *App) InjectKeyWith(k ebiten.Key, mods KeyModifiers) {
	name := k.String()
	a.InjectEvent(Event{Type: EventKeyDown, Key: k, KeyName: name, Modifiers: mods})
	a.InjectEvent(Event{Type: EventKeyUp, Key: k, KeyName: name, Modifiers: mods})
}

// InjectText queues a text-input event carrying s.
func (a *App) InjectText(s string) {
	if s == "" {
		return
	}
	a.InjectEvent(Event{Type: EventTextInput, Text: s})
}

// InjectClick queues a mouse press and release of the left button at the
// screen position (x, y).
func (a *App) InjectClick(x, y float64) {
	a.InjectEvent(Event{Type: EventMouseButtonDown, X: x, Y: y, Button: MouseButtonLeft})
	a.InjectEvent(Event{Type: EventMouseButtonUp, X: x, Y: y, Button: MouseButtonLeft})
}

// InjectQuit queues a quit event, as if the window were closed.
func (a *App) InjectQuit() {
	a.InjectEvent(Event{Type: EventQuit})
}
