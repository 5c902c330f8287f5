package sapling

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to four float64 fields of a Node at once. Create one
// with TweenPosition or TweenColor, then either call Update yourself or add
// the group's Node to a Scene so it runs with the frame. If the target node is
// disposed the group stops immediately.
type TweenGroup struct {
	// OnDone fires once, on the frame the last tween finishes.
	OnDone Signal[*TweenGroup]
	Done   bool

	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	node   *Node
}

func newTweenGroup(target *Node, count int) *TweenGroup {
	g := &TweenGroup{count: count, target: target}
	n := NewNode("tween:" + target.Name)
	n.Visible = false
	n.UserData = g
	n.OnProcess = func(dt float64, _ *Scene) { g.Update(float32(dt)) }
	g.node = n
	return g
}

// Node returns a logic node that advances the group every frame.
func (g *TweenGroup) Node() *Node {
	return g.node
}

// Update advances every tween by dt seconds and writes the values to the
// target's fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	if allDone {
		g.Done = true
		g.OnDone.Emit(g)
	}
}

// TweenPosition animates node.X and node.Y to (toX, toY). A nil fn is linear.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	if fn == nil {
		fn = ease.Linear
	}
	g := newTweenGroup(node, 2)
	g.tweens[0] = gween.New(float32(node.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(node.Y), float32(toY), duration, fn)
	g.fields[0] = &node.X
	g.fields[1] = &node.Y
	return g
}

// TweenColor animates all four components of node.Color to the target color.
// A nil fn is linear.
func TweenColor(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	if fn == nil {
		fn = ease.Linear
	}
	g := newTweenGroup(node, 4)
	g.tweens[0] = gween.New(float32(node.Color.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(node.Color.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(node.Color.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(node.Color.A), float32(to.A), duration, fn)
	g.fields[0] = &node.Color.R
	g.fields[1] = &node.Color.G
	g.fields[2] = &node.Color.B
	g.fields[3] = &node.Color.A
	return g
}
