package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolarityOf(t *testing.T) {
	assert.Equal(t, Positive, PolarityOf(3.5))
	assert.Equal(t, Negative, PolarityOf(-0.25))
	assert.Equal(t, Negative, PolarityOf(0), "zero maps to Negative")
	assert.Equal(t, Positive, PolarityOf(7))
}

func TestNeutralize(t *testing.T) {
	assert.Equal(t, 7.0, Neutralize(10.0, 3.0))
	assert.Equal(t, -7.0, Neutralize(-10.0, 3.0))
	assert.Equal(t, 2, Neutralize(0, 2), "zero is nudged upward")
	assert.Equal(t, -4.0, Neutralize(1.0, 5.0), "no clamping")
}

func TestRelax(t *testing.T) {
	assert.Equal(t, 7.0, Relax(10.0, 3.0))
	assert.Equal(t, -7.0, Relax(-10.0, 3.0))
	assert.Equal(t, 0.0, Relax(1.0, 5.0))
	assert.Equal(t, 0.0, Relax(-1.0, 5.0))
	assert.Equal(t, 0, Relax(0, 1))
	assert.Equal(t, 0.0, Relax(3.0, 3.0), "|v| == step lands on zero")
}

func TestRelaxShrinksOrClamps(t *testing.T) {
	values := []float64{-100, -7.5, -2, -0.5, 0.5, 2, 7.5, 100}
	steps := []float64{0.25, 1, 3, 50}
	for _, v := range values {
		for _, s := range steps {
			got := Relax(v, s)
			if math.Abs(v) < s {
				assert.Equal(t, 0.0, got, "Relax(%v, %v)", v, s)
				continue
			}
			assert.Less(t, math.Abs(got), math.Abs(v), "Relax(%v, %v)", v, s)
			assert.Equal(t, Neutralize(v, s), got, "Relax and Neutralize agree for |v| >= step (%v, %v)", v, s)
		}
	}
}

func TestRectToCoordinates(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	got := RectToCoordinates(r, 1)
	want := [4]Vec2{{8, 18}, {41, 18}, {41, 61}, {8, 61}}
	assert.Equal(t, want, got)
}

func TestRectToCoordinatesInflation(t *testing.T) {
	r := Rect{X: 5, Y: 5, Width: 20, Height: 10}
	for p := 0; p <= 4; p++ {
		c := RectToCoordinates(r, p)
		inflate := float64(p + 1)

		// Measured against the last covered pixel (x+w-1, y+h-1).
		assert.Equal(t, r.X-inflate, c[0].X)
		assert.Equal(t, r.Y-inflate, c[0].Y)
		assert.Equal(t, r.X+r.Width-1+inflate, c[2].X)
		assert.Equal(t, r.Y+r.Height-1+inflate, c[2].Y)

		// TL, TR, BR, BL winding.
		assert.Equal(t, c[0].Y, c[1].Y)
		assert.Equal(t, c[1].X, c[2].X)
		assert.Equal(t, c[2].Y, c[3].Y)
		assert.Equal(t, c[3].X, c[0].X)
	}
}
