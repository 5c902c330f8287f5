package sapling

import (
	"image/color"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEnumValues(t *testing.T) {
	// NodeType
	if NodeTypeBasic != 0 {
		t.Errorf("NodeTypeBasic = %d, want 0", NodeTypeBasic)
	}
	if NodeTypeLogPanel != 6 {
		t.Errorf("NodeTypeLogPanel = %d, want 6", NodeTypeLogPanel)
	}

	// EventType
	if EventQuit != 0 {
		t.Errorf("EventQuit = %d, want 0", EventQuit)
	}
	if EventGamepadAxis != 11 {
		t.Errorf("EventGamepadAxis = %d, want 11", EventGamepadAxis)
	}

	// MouseButton
	if MouseButtonLeft != 0 {
		t.Errorf("MouseButtonLeft = %d, want 0", MouseButtonLeft)
	}
	if MouseButtonMiddle != 2 {
		t.Errorf("MouseButtonMiddle = %d, want 2", MouseButtonMiddle)
	}

	// KeyModifiers (bitmask)
	if ModShift != 1 {
		t.Errorf("ModShift = %d, want 1", ModShift)
	}
	if ModCtrl != 2 {
		t.Errorf("ModCtrl = %d, want 2", ModCtrl)
	}
	if ModAlt != 4 {
		t.Errorf("ModAlt = %d, want 4", ModAlt)
	}
	if ModMeta != 8 {
		t.Errorf("ModMeta = %d, want 8", ModMeta)
	}

	// PS4Button follows the gamepad's button numbering.
	if PS4Triangle != 3 {
		t.Errorf("PS4Triangle = %d, want 3", PS4Triangle)
	}
	if PS4TouchPad != 15 {
		t.Errorf("PS4TouchPad = %d, want 15", PS4TouchPad)
	}
}

func TestNodeTypeString(t *testing.T) {
	if got := NodeTypeController.String(); got != "controller" {
		t.Errorf("String = %q, want %q", got, "controller")
	}
	if got := NodeType(99).String(); got != "NodeType(99)" {
		t.Errorf("String = %q, want %q", got, "NodeType(99)")
	}
}

func TestColorWhite(t *testing.T) {
	if ColorWhite.R != 1 || ColorWhite.G != 1 || ColorWhite.B != 1 || ColorWhite.A != 1 {
		t.Errorf("ColorWhite = %v, want {1,1,1,1}", ColorWhite)
	}
}

func TestColorRGBAPremultiplies(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0, A: 0.5}
	want := color.RGBA{R: 128, G: 64, B: 0, A: 128}
	if got := c.RGBA(); got != want {
		t.Errorf("RGBA = %v, want %v", got, want)
	}
	if got := (Color{R: 2, G: -1, B: 0, A: 1}).RGBA(); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("RGBA out of range = %v, want clamped", got)
	}
}

func TestColorUnmarshalYAML(t *testing.T) {
	var doc struct {
		C Color `yaml:"c"`
	}
	if err := yaml.Unmarshal([]byte(`c: "#00ff00"`), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.C != (Color{G: 1, A: 1}) {
		t.Errorf("C = %v, want green", doc.C)
	}
	if err := yaml.Unmarshal([]byte(`c: nope`), &doc); err == nil {
		t.Error("expected error for bad color")
	}
}
