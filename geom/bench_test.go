package geom

import (
	"math"
	"testing"
)

// circle returns an n-gon of radius r centred on c.
func circle(c Vec2, r float64, n int) Polygon {
	verts := make([]Vec2, n)
	for i := range verts {
		a := 2 * math.Pi * float64(i) / float64(n)
		verts[i] = Vec2{c.X + r*math.Cos(a), c.Y + r*math.Sin(a)}
	}
	return NewPolygon(verts...)
}

func BenchmarkCollidesPoint_64(b *testing.B) {
	p := circle(Vec2{}, 100, 64)
	pt := Vec2{10, 20}
	b.ReportAllocs()
	for b.Loop() {
		_ = p.CollidesPoint(pt)
	}
}

func BenchmarkCollidesPolygon_Overlapping(b *testing.B) {
	p := circle(Vec2{}, 100, 32)
	q := circle(Vec2{150, 0}, 100, 32)
	b.ReportAllocs()
	for b.Loop() {
		_ = p.CollidesPolygon(q)
	}
}

func BenchmarkCollidesPolygon_Disjoint(b *testing.B) {
	p := circle(Vec2{}, 100, 32)
	q := circle(Vec2{500, 0}, 100, 32)
	b.ReportAllocs()
	for b.Loop() {
		_ = p.CollidesPolygon(q)
	}
}

func BenchmarkRectToCoordinates(b *testing.B) {
	r := Rect{10, 20, 100, 50}
	b.ReportAllocs()
	for b.Loop() {
		_ = RectToCoordinates(r, DefaultPadding)
	}
}
