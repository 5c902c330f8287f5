package sapling

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/phanxgames/sapling/geom"
	"gopkg.in/yaml.v3"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite and ColorBlack are the defaults for drawing and clearing.
var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

// RGBA converts c to a premultiplied color.RGBA for Ebitengine calls.
func (c Color) RGBA() color.RGBA {
	clamp := func(v float64) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return color.RGBA{
		R: clamp(c.R * c.A),
		G: clamp(c.G * c.A),
		B: clamp(c.B * c.A),
		A: clamp(c.A),
	}
}

// ParseColor parses "#rrggbb" or "#rrggbbaa" (the leading # is optional).
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("parse color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// UnmarshalYAML lets configs spell colors as hex strings.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Vec2 and Rect are the geom types, re-exported so most callers only import
// this package.
type (
	Vec2 = geom.Vec2
	Rect = geom.Rect
)

// NodeType distinguishes processing and rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeBasic      NodeType = iota // logic only, optional custom draw
	NodeTypeSprite                     // draws Image at its position
	NodeTypeText                       // draws a TextBlock
	NodeTypeTimer                      // counts down and fires a trigger
	NodeTypeKeyboard                   // re-emits key events as signals
	NodeTypeController                 // maps a gamepad to signals
	NodeTypeLogPanel                   // on-screen scrolling log
)

func (t NodeType) String() string {
	switch t {
	case NodeTypeBasic:
		return "basic"
	case NodeTypeSprite:
		return "sprite"
	case NodeTypeText:
		return "text"
	case NodeTypeTimer:
		return "timer"
	case NodeTypeKeyboard:
		return "keyboard"
	case NodeTypeController:
		return "controller"
	case NodeTypeLogPanel:
		return "logpanel"
	default:
		return "NodeType(" + strconv.Itoa(int(t)) + ")"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys. The generic bits
// (ModShift, ModCtrl, ...) are set whenever either side is held; the sided
// bits say which one.
type KeyModifiers uint16

const (
	ModShift KeyModifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
	ModShiftLeft
	ModShiftRight
	ModCtrlLeft
	ModCtrlRight
	ModAltLeft
	ModAltRight
)

// Shift reports whether either shift key is held.
func (m KeyModifiers) Shift() bool { return m&ModShift != 0 }

// Ctrl reports whether either control key is held.
func (m KeyModifiers) Ctrl() bool { return m&ModCtrl != 0 }

// Alt reports whether either alt key is held.
func (m KeyModifiers) Alt() bool { return m&ModAlt != 0 }

// Meta reports whether the meta (command/windows) key is held.
func (m KeyModifiers) Meta() bool { return m&ModMeta != 0 }
