package sapling

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace is used by text nodes that do not set a Face.
var DefaultFace text.Face = text.NewGoXFace(basicfont.Face7x13)

// TextBlock holds the content and style of a text node.
type TextBlock struct {
	// Content is the static text. ContentFunc, when set, is called every draw
	// instead, for text that tracks live values.
	Content     string
	ContentFunc func() string

	Face  text.Face
	Color Color
	// Center places the middle of the text on the node's position instead of
	// its top-left corner.
	Center bool
	// LineSpacing overrides the face's line height; 0 uses the face metrics.
	LineSpacing float64
}

// String returns the text to draw now.
func (tb *TextBlock) String() string {
	if tb.ContentFunc != nil {
		return tb.ContentFunc()
	}
	return tb.Content
}

func (tb *TextBlock) face() text.Face {
	if tb.Face != nil {
		return tb.Face
	}
	return DefaultFace
}

func (tb *TextBlock) lineSpacing() float64 {
	if tb.LineSpacing > 0 {
		return tb.LineSpacing
	}
	m := tb.face().Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// Measure returns the size of the current text. Empty text measures zero.
func (tb *TextBlock) Measure() (w, h float64) {
	s := tb.String()
	if s == "" {
		return 0, 0
	}
	return text.Measure(s, tb.face(), tb.lineSpacing())
}

func (tb *TextBlock) draw(target *ebiten.Image, origin Vec2) {
	s := tb.String()
	if s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(origin.X, origin.Y)
	op.ColorScale.ScaleWithColor(tb.Color.RGBA())
	op.LineSpacing = tb.lineSpacing()
	text.Draw(target, s, tb.face(), op)
}

// TextOptions configures NewText. The zero value draws black text in
// DefaultFace anchored at its top-left.
type TextOptions struct {
	Face   text.Face
	Color  *Color
	Center bool
}

// NewText creates a text node at pos. content may be empty when ContentFunc
// is set on the returned node's TextBlock.
func NewText(name string, pos Vec2, content string, opts TextOptions) *Node {
	c := ColorBlack
	if opts.Color != nil {
		c = *opts.Color
	}
	n := &Node{
		Name: name,
		Type: NodeTypeText,
		X:    pos.X,
		Y:    pos.Y,
		TextBlock: &TextBlock{
			Content: content,
			Face:    opts.Face,
			Color:   c,
			Center:  opts.Center,
		},
	}
	nodeDefaults(n)
	return n
}

// NewDynamicText creates a text node whose content is produced by fn on
// every draw.
func NewDynamicText(name string, pos Vec2, fn func() string, opts TextOptions) *Node {
	n := NewText(name, pos, "", opts)
	n.TextBlock.ContentFunc = fn
	return n
}
