package sapling

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/sapling/geom"
)

// Scene is one page of the application: a flat list of nodes that are
// processed and drawn in insertion order, plus hooks for the page's own logic.
// Only the App's current scene runs.
type Scene struct {
	Name string

	// OnInit runs when the scene becomes current. params is whatever was
	// passed to App.SetScene.
	OnInit func(app *App, params map[string]any)
	// OnReset runs when another scene replaces this one.
	OnReset func()
	// OnEvent receives every event after the scene's listening nodes.
	OnEvent func(Event)
	// OnUpdate runs once per frame before the nodes are processed.
	OnUpdate func(dt float64)

	app    *App
	nodes  nodeList
	camera *Camera

	highlight        *Node
	highlightPadding int
	highlightColor   Color
}

// NewScene creates an empty scene.
func NewScene(name string) *Scene {
	return &Scene{Name: name}
}

// App returns the application the scene was last made current on, or nil.
func (s *Scene) App() *App {
	return s.app
}

// AddNode appends n. Listening nodes also start receiving events.
// Panics if n is nil or disposed.
func (s *Scene) AddNode(n *Node) {
	s.nodes.add(n)
	if s.app != nil && s.app.cfg.Debug {
		debugCheckNodeCount(s.app, s.Name, len(s.nodes.all))
	}
}

// AddNodes appends each node in order.
func (s *Scene) AddNodes(nodes ...*Node) {
	for _, n := range nodes {
		s.AddNode(n)
	}
}

// RemoveNode removes n and calls its OnDestroy. Removing a node that is not
// in the scene is a no-op, except for a listening node, which returns
// ErrNodeNotFound.
func (s *Scene) RemoveNode(n *Node) error {
	if _, err := s.nodes.remove(n); err != nil {
		return err
	}
	if s.highlight == n {
		s.highlight = nil
	}
	if s.camera != nil && s.camera.Following() == n {
		s.camera.Unfollow()
	}
	return nil
}

// Nodes returns the node list. The returned slice MUST NOT be mutated.
func (s *Scene) Nodes() []*Node {
	return s.nodes.all
}

// Len returns the number of nodes.
func (s *Scene) Len() int {
	return len(s.nodes.all)
}

// SetCamera makes the scene draw through cam. nil draws without offset.
func (s *Scene) SetCamera(cam *Camera) {
	s.camera = cam
}

// Camera returns the scene's camera, or nil.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// dispatch delivers e to the listening nodes, then to OnEvent.
func (s *Scene) dispatch(e Event) {
	s.nodes.dispatch(e)
	if s.OnEvent != nil {
		s.OnEvent(e)
	}
}

// Process runs one frame of scene logic: OnUpdate, every node, the camera.
func (s *Scene) Process(dt float64) {
	if s.OnUpdate != nil {
		s.OnUpdate(dt)
	}
	s.nodes.process(dt, s)
	if s.camera != nil {
		s.camera.Update(dt)
	}
}

// Draw renders the visible nodes through the camera.
func (s *Scene) Draw(screen *ebiten.Image) {
	target := screen
	var offset Vec2
	if cam := s.camera; cam != nil {
		vp := cam.Viewport
		if vp.Width > 0 && vp.Height > 0 {
			target = screen.SubImage(image.Rect(
				int(vp.X), int(vp.Y),
				int(vp.X+vp.Width), int(vp.Y+vp.Height),
			)).(*ebiten.Image)
		}
		offset = cam.WorldToScreen(Vec2{})
	}

	for _, n := range s.nodes.all {
		if !n.Visible || (s.camera != nil && s.camera.shouldCull(n)) {
			continue
		}
		n.Draw(target, offset)
	}

	if s.highlight != nil && !s.highlight.IsDisposed() {
		drawOutline(target, s.highlight.Bounds(), offset, s.highlightPadding, s.highlightColor)
	}
}

// --- Hit testing ---

// ScreenToWorld converts a screen position to world space through the
// scene's camera.
func (s *Scene) ScreenToWorld(p Vec2) Vec2 {
	if s.camera != nil {
		return s.camera.ScreenToWorld(p)
	}
	return p
}

// NodesAt returns the visible nodes whose hit polygon contains the world
// point p, topmost (last drawn) first.
func (s *Scene) NodesAt(p Vec2) []*Node {
	var hits []*Node
	for i := len(s.nodes.all) - 1; i >= 0; i-- {
		n := s.nodes.all[i]
		if !n.Visible {
			continue
		}
		if n.HitPolygon().CollidesPoint(p) {
			hits = append(hits, n)
		}
	}
	return hits
}

// Colliding reports whether the hit polygons of a and b overlap.
func (s *Scene) Colliding(a, b *Node) bool {
	return a.HitPolygon().CollidesPolygon(b.HitPolygon())
}

// CollidingWith returns every other node whose hit polygon overlaps n's.
func (s *Scene) CollidingWith(n *Node) []*Node {
	poly := n.HitPolygon()
	var hits []*Node
	for _, other := range s.nodes.all {
		if other == n {
			continue
		}
		if poly.CollidesPolygon(other.HitPolygon()) {
			hits = append(hits, other)
		}
	}
	return hits
}

// Highlight draws a selection outline around n, padding pixels out from its
// bounds. nil clears the highlight.
func (s *Scene) Highlight(n *Node, padding int, c Color) {
	s.highlight = n
	s.highlightPadding = padding
	s.highlightColor = c
}

// Highlighted returns the highlighted node, or nil.
func (s *Scene) Highlighted() *Node {
	return s.highlight
}

// drawOutline strokes the closed loop from geom.RectToCoordinates.
func drawOutline(target *ebiten.Image, r Rect, offset Vec2, padding int, c Color) {
	pts := geom.RectToCoordinates(r, padding)
	clr := c.RGBA()
	for i := range pts {
		a := pts[i].Add(offset)
		b := pts[(i+1)%len(pts)].Add(offset)
		vector.StrokeLine(target, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, clr, false)
	}
}
