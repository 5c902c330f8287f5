package sapling

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for the offset X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// followState tracks the node a camera follows and where it was last frame.
type followState struct {
	node *Node
	last Vec2
}

// Camera shifts everything a Scene draws by Offset. Following a node keeps
// that node fixed on screen: each frame the offset moves opposite to the
// node's movement.
type Camera struct {
	// Offset is added to every node position when drawing.
	Offset Vec2
	// Viewport is the screen-space rectangle the camera shows.
	Viewport Rect
	// CullEnabled skips nodes whose bounds fall outside the visible area.
	CullEnabled bool

	following   *followState
	scrollTween *scrollAnim
}

// NewCamera creates a camera for the given viewport.
func NewCamera(viewport Rect) *Camera {
	return &Camera{Viewport: viewport, CullEnabled: true}
}

// Follow starts tracking node. The offset is reset; with center set it is
// chosen so the node's top-left sits at the middle of the viewport.
func (c *Camera) Follow(node *Node, center bool) {
	c.Offset = Vec2{}
	c.scrollTween = nil
	last := node.Bounds().TopLeft()
	if center {
		mid := Vec2{X: c.Viewport.Width / 2, Y: c.Viewport.Height / 2}
		c.Offset = c.Offset.Add(mid.Sub(last))
	}
	c.following = &followState{node: node, last: last}
}

// Unfollow stops tracking. The offset stays where it is.
func (c *Camera) Unfollow() {
	c.following = nil
}

// Following returns the followed node, or nil.
func (c *Camera) Following() *Node {
	if c.following == nil {
		return nil
	}
	return c.following.node
}

// ScrollTo animates the offset to target over duration seconds. It is
// ignored while following a node.
func (c *Camera) ScrollTo(target Vec2, duration float32, easeFn ease.TweenFunc) {
	if c.following != nil {
		return
	}
	if easeFn == nil {
		easeFn = ease.Linear
	}
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.Offset.X), float32(target.X), duration, easeFn),
		tweenY: gween.New(float32(c.Offset.Y), float32(target.Y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// Update advances following and scrolling. Scene.Process calls it.
func (c *Camera) Update(dt float64) {
	if f := c.following; f != nil {
		if f.node.IsDisposed() {
			c.following = nil
		} else {
			pos := f.node.Bounds().TopLeft()
			c.Offset = c.Offset.Sub(pos.Sub(f.last))
			f.last = pos
			return
		}
	}

	if s := c.scrollTween; s != nil {
		if !s.doneX {
			val, done := s.tweenX.Update(float32(dt))
			c.Offset.X = float64(val)
			s.doneX = done
		}
		if !s.doneY {
			val, done := s.tweenY.Update(float32(dt))
			c.Offset.Y = float64(val)
			s.doneY = done
		}
		if s.doneX && s.doneY {
			c.scrollTween = nil
		}
	}
}

// WorldToScreen converts a world position to screen coordinates.
func (c *Camera) WorldToScreen(p Vec2) Vec2 {
	return p.Add(c.Offset).Add(c.Viewport.TopLeft())
}

// ScreenToWorld converts screen coordinates to a world position.
func (c *Camera) ScreenToWorld(p Vec2) Vec2 {
	return p.Sub(c.Viewport.TopLeft()).Sub(c.Offset)
}

// VisibleBounds returns the world-space rectangle the camera shows.
func (c *Camera) VisibleBounds() Rect {
	return Rect{X: -c.Offset.X, Y: -c.Offset.Y, Width: c.Viewport.Width, Height: c.Viewport.Height}
}

// shouldCull reports whether n lies entirely outside the visible area. Nodes
// without a known size are never culled.
func (c *Camera) shouldCull(n *Node) bool {
	if !c.CullEnabled {
		return false
	}
	b := n.Bounds()
	if b.Width == 0 && b.Height == 0 {
		return false
	}
	return !b.Intersects(c.VisibleBounds())
}
