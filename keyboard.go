package sapling

import "github.com/hajimehoshi/ebiten/v2"

// KeyEvent is the payload of the Keyboard signals.
type KeyEvent struct {
	Key       ebiten.Key
	Name      string
	Modifiers KeyModifiers
}

// Keyboard turns key events into signals. Add its node to a Scene or the App
// to start receiving.
type Keyboard struct {
	OnKeyDown   Signal[KeyEvent]
	OnKeyUp     Signal[KeyEvent]
	OnTextInput Signal[string]

	node *Node
}

// NewKeyboard creates a keyboard and its listening node.
func NewKeyboard() (*Keyboard, *Node) {
	k := &Keyboard{}
	n := NewNode("keyboard")
	n.Type = NodeTypeKeyboard
	n.Listening = true
	n.UserData = k
	n.OnEvent = k.handle
	k.node = n
	return k, n
}

// Node returns the keyboard's node.
func (k *Keyboard) Node() *Node {
	return k.node
}

func (k *Keyboard) handle(e Event) {
	switch e.Type {
	case EventKeyDown:
		k.OnKeyDown.Emit(KeyEvent{Key: e.Key, Name: e.KeyName, Modifiers: e.Modifiers})
	case EventKeyUp:
		k.OnKeyUp.Emit(KeyEvent{Key: e.Key, Name: e.KeyName, Modifiers: e.Modifiers})
	case EventTextInput:
		k.OnTextInput.Emit(e.Text)
	}
}
