package sapling

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/sapling/geom"
)

// nodeIDCounter is a plain counter (no atomic: sapling is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the unit a Scene processes and draws. A single flat struct is used
// for every kind of node; helpers such as Timer or Keyboard wrap one and hook
// its callbacks.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Position of the node's top-left corner in world space.
	X, Y float64

	// Visible nodes are drawn; invisible ones are still processed.
	Visible bool

	// Listening nodes receive events from the Scene or App they are added to.
	// It is read once, when the node is added.
	Listening bool
	// Muted listening nodes stay registered but ignore events.
	Muted bool

	// Sprite fields (NodeTypeSprite)
	Image *ebiten.Image
	Color Color

	// Text fields (NodeTypeText, NodeTypeLogPanel)
	TextBlock *TextBlock

	// Hit is an optional hit shape relative to the node's position. When nil
	// the node's Bounds rectangle is used.
	Hit *geom.Polygon

	// Metadata
	UserData any

	// Callbacks (nil by default)
	OnProcess func(dt float64, s *Scene)
	OnEvent   func(Event)
	OnDraw    func(target *ebiten.Image, origin Vec2)
	OnDestroy func()

	disposed bool
}

func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Visible = true
	n.Color = ColorWhite
}

// NewNode creates a logic-only node. Give it behavior through OnProcess,
// OnEvent or OnDraw.
func NewNode(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeBasic}
	nodeDefaults(n)
	return n
}

// NewSprite creates a node that draws img with its top-left at (x, y).
func NewSprite(name string, img *ebiten.Image, x, y float64) *Node {
	n := &Node{Name: name, Type: NodeTypeSprite, Image: img, X: x, Y: y}
	nodeDefaults(n)
	return n
}

// Position returns the node's world position.
func (n *Node) Position() Vec2 {
	return Vec2{X: n.X, Y: n.Y}
}

// SetPosition moves the node.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
}

// Size returns the node's drawn width and height, or zero when unknown.
func (n *Node) Size() (w, h float64) {
	switch n.Type {
	case NodeTypeSprite:
		if n.Image != nil {
			b := n.Image.Bounds()
			return float64(b.Dx()), float64(b.Dy())
		}
	case NodeTypeText, NodeTypeLogPanel:
		if n.TextBlock != nil {
			return n.TextBlock.Measure()
		}
	}
	return 0, 0
}

// Bounds returns the world-space rectangle the node draws into. A node with
// no drawn size but a Hit polygon uses the polygon's bounds.
func (n *Node) Bounds() Rect {
	w, h := n.Size()
	if w == 0 && h == 0 && n.Hit != nil {
		b := n.Hit.Bounds()
		b.X += n.X
		b.Y += n.Y
		return b
	}
	origin := n.drawOrigin(w, h)
	return Rect{X: origin.X, Y: origin.Y, Width: w, Height: h}
}

// HitPolygon returns the node's world-space hit shape.
func (n *Node) HitPolygon() geom.Polygon {
	if n.Hit != nil {
		return n.Hit.Add(n.Position())
	}
	return geom.PolygonFromRect(n.Bounds())
}

// drawOrigin is the top-left of the drawn content, which differs from the
// position only for centered text.
func (n *Node) drawOrigin(w, h float64) Vec2 {
	if n.TextBlock != nil && n.TextBlock.Center {
		return Vec2{X: n.X - w/2, Y: n.Y - h/2}
	}
	return n.Position()
}

// HandleEvent passes e to OnEvent unless the node is muted.
func (n *Node) HandleEvent(e Event) {
	if n.Muted || n.OnEvent == nil {
		return
	}
	n.OnEvent(e)
}

// Process runs the node's per-frame logic.
func (n *Node) Process(dt float64, s *Scene) {
	if n.OnProcess != nil {
		n.OnProcess(dt, s)
	}
}

// Draw renders the node onto target, shifted by offset (the camera offset).
func (n *Node) Draw(target *ebiten.Image, offset Vec2) {
	if !n.Visible {
		return
	}
	w, h := n.Size()
	origin := n.drawOrigin(w, h).Add(offset)

	switch n.Type {
	case NodeTypeSprite:
		if n.Image != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(origin.X, origin.Y)
			if n.Color != ColorWhite {
				op.ColorScale.ScaleWithColor(n.Color.RGBA())
			}
			target.DrawImage(n.Image, op)
		}
	case NodeTypeText, NodeTypeLogPanel:
		if n.TextBlock != nil {
			n.TextBlock.draw(target, origin)
		}
	}
	if n.OnDraw != nil {
		n.OnDraw(target, origin)
	}
}

// Dispose releases the node's callbacks and references. It calls OnDestroy
// first. Disposed nodes cannot be added to a Scene or App.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	if n.OnDestroy != nil {
		n.OnDestroy()
	}
	n.disposed = true
	n.ID = 0
	n.Image = nil
	n.TextBlock = nil
	n.Hit = nil
	n.UserData = nil
	n.OnProcess = nil
	n.OnEvent = nil
	n.OnDraw = nil
	n.OnDestroy = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Node lists ---

// nodeList is the pair of slices a Scene and the App each keep: every node,
// and the subset registered for events.
type nodeList struct {
	all       []*Node
	listening []*Node
}

func (l *nodeList) add(n *Node) {
	if n == nil {
		panic("sapling: cannot add nil node")
	}
	if n.disposed {
		panic("sapling: cannot add disposed node " + n.Name)
	}
	l.all = append(l.all, n)
	if n.Listening {
		l.listening = append(l.listening, n)
	}
}

// remove unregisters n and reports whether it was found in the full list.
// It fails when n is a listening node missing from the listener list.
func (l *nodeList) remove(n *Node) (bool, error) {
	if n.Listening {
		i := indexOf(l.listening, n)
		if i < 0 {
			return false, errNodeNotFound(n)
		}
		l.listening = removeAt(l.listening, i)
	}
	i := indexOf(l.all, n)
	if i < 0 {
		return false, nil
	}
	if n.OnDestroy != nil {
		n.OnDestroy()
	}
	l.all = removeAt(l.all, i)
	return true, nil
}

func (l *nodeList) dispatch(e Event) {
	for _, n := range l.listening {
		n.HandleEvent(e)
	}
}

func (l *nodeList) process(dt float64, s *Scene) {
	for _, n := range l.all {
		n.Process(dt, s)
	}
}

func indexOf(nodes []*Node, n *Node) int {
	for i, c := range nodes {
		if c == n {
			return i
		}
	}
	return -1
}

// removeAt returns a copy of nodes without index i. The old backing array is
// left intact so a dispatch or process loop ranging over it is unaffected.
func removeAt(nodes []*Node, i int) []*Node {
	out := make([]*Node, 0, len(nodes)-1)
	out = append(out, nodes[:i]...)
	return append(out, nodes[i+1:]...)
}
