package geom

import (
	"errors"
	"fmt"
	"image"
	"iter"
	"math"
	"reflect"
)

// ErrInvalidOffset is returned when a polygon is translated by something that
// is neither a 2D vector nor a numeric pair.
var ErrInvalidOffset = errors.New("geom: offset must be a Vec2 or a numeric pair")

// Polygon is a closed loop of vertices. The edge from the last vertex back to
// the first is implicit. Polygons are immutable: every operation that moves a
// polygon returns a new one.
//
// Polygons with fewer than three vertices can be built; they give degenerate
// answers from the predicates but never panic.
type Polygon struct {
	verts []Vec2
}

// NewPolygon builds a polygon from the given vertices in order. The slice is
// copied.
func NewPolygon(vertices ...Vec2) Polygon {
	verts := make([]Vec2, len(vertices))
	copy(verts, vertices)
	return Polygon{verts: verts}
}

// PolygonFromLines builds a connect-the-dots polygon. start is vertex 0 and
// each segment is a displacement from the previous vertex.
func PolygonFromLines(start Vec2, segments ...Vec2) Polygon {
	verts := make([]Vec2, 0, len(segments)+1)
	cur := start
	verts = append(verts, cur)
	for _, seg := range segments {
		cur = cur.Add(seg)
		verts = append(verts, cur)
	}
	return Polygon{verts: verts}
}

// PolygonFromRect returns the four corners of r in top-left, top-right,
// bottom-right, bottom-left order. CollidesPolygon relies on this winding when
// pairing rectangle edges against arbitrary polygons.
func PolygonFromRect(r Rect) Polygon {
	return Polygon{verts: []Vec2{
		{r.X, r.Y},
		{r.X + r.Width, r.Y},
		{r.X + r.Width, r.Y + r.Height},
		{r.X, r.Y + r.Height},
	}}
}

// Len returns the number of vertices.
func (p Polygon) Len() int {
	return len(p.verts)
}

// At returns vertex i. Like a slice index, it panics when i is out of range.
func (p Polygon) At(i int) Vec2 {
	return p.verts[i]
}

// Vertices returns a copy of the vertex list.
func (p Polygon) Vertices() []Vec2 {
	out := make([]Vec2, len(p.verts))
	copy(out, p.verts)
	return out
}

// All yields each vertex once with its index. Every call starts a fresh pass,
// so nested and concurrent iteration over one polygon are independent.
func (p Polygon) All() iter.Seq2[int, Vec2] {
	return func(yield func(int, Vec2) bool) {
		for i, v := range p.verts {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Cursor returns a new cursor over the polygon's vertices. Each cursor owns its
// position; the polygon itself holds no iteration state.
func (p Polygon) Cursor() *Cursor {
	return &Cursor{verts: p.verts}
}

// Equal reports whether p and other have the same vertices in the same order.
func (p Polygon) Equal(other Polygon) bool {
	if len(p.verts) != len(other.verts) {
		return false
	}
	for i := range p.verts {
		if p.verts[i] != other.verts[i] {
			return false
		}
	}
	return true
}

// Bounds returns the axis-aligned bounding box of the vertices.
// An empty polygon has a zero Rect.
func (p Polygon) Bounds() Rect {
	if len(p.verts) == 0 {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range p.verts {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// --- Translation ---

// Add returns a copy of p with every vertex moved by v.
func (p Polygon) Add(v Vec2) Polygon {
	verts := make([]Vec2, len(p.verts))
	for i, pt := range p.verts {
		verts[i] = pt.Add(v)
	}
	return Polygon{verts: verts}
}

// Sub returns a copy of p with every vertex moved by -v.
func (p Polygon) Sub(v Vec2) Polygon {
	verts := make([]Vec2, len(p.verts))
	for i, pt := range p.verts {
		verts[i] = pt.Sub(v)
	}
	return Polygon{verts: verts}
}

// Translate is Add with the offset given as two scalars.
func (p Polygon) Translate(dx, dy float64) Polygon {
	return p.Add(Vec2{dx, dy})
}

// AddOffset is Add for offsets whose type is only known at run time.
// Accepted types are Vec2, *Vec2, [2]float64, [2]int and image.Point.
func (p Polygon) AddOffset(offset any) (Polygon, error) {
	v, err := toVec2(offset)
	if err != nil {
		return Polygon{}, err
	}
	return p.Add(v), nil
}

// SubOffset mirrors AddOffset for subtraction.
func (p Polygon) SubOffset(offset any) (Polygon, error) {
	v, err := toVec2(offset)
	if err != nil {
		return Polygon{}, err
	}
	return p.Sub(v), nil
}

func toVec2(offset any) (Vec2, error) {
	switch o := offset.(type) {
	case Vec2:
		return o, nil
	case *Vec2:
		if o == nil {
			return Vec2{}, fmt.Errorf("%w: got nil *Vec2", ErrInvalidOffset)
		}
		return *o, nil
	case [2]float64:
		return Vec2{o[0], o[1]}, nil
	case []float64:
		if len(o) == 2 {
			return Vec2{o[0], o[1]}, nil
		}
	case image.Point:
		return Vec2{float64(o.X), float64(o.Y)}, nil
	case nil:
		return Vec2{}, fmt.Errorf("%w: got nil", ErrInvalidOffset)
	default:
		if v, ok := numericPair(reflect.ValueOf(offset)); ok {
			return v, nil
		}
	}
	return Vec2{}, fmt.Errorf("%w: got %T", ErrInvalidOffset, offset)
}

// numericPair reads any two-element array or slice of integers or floats.
func numericPair(rv reflect.Value) (Vec2, bool) {
	switch rv.Kind() {
	case reflect.Array, reflect.Slice:
	default:
		return Vec2{}, false
	}
	if rv.Len() != 2 {
		return Vec2{}, false
	}
	x, ok := numericValue(rv.Index(0))
	if !ok {
		return Vec2{}, false
	}
	y, _ := numericValue(rv.Index(1))
	return Vec2{x, y}, true
}

func numericValue(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}

// --- Predicates ---

// CollidesPoint reports whether pt lies inside the polygon, by casting a ray
// rightward from pt and counting edge crossings.
//
// An edge counts when minY < pt.Y <= maxY and pt.X <= maxX; it toggles the
// result when the edge is vertical or pt.X is at or before the crossing.
// Points exactly on an edge may land on either side.
func (p Polygon) CollidesPoint(pt Vec2) bool {
	n := len(p.verts)
	if n == 0 {
		return false
	}
	inside := false
	p1 := p.verts[0]
	for i := 1; i <= n; i++ {
		p2 := p.verts[i%n]
		if pt.Y > math.Min(p1.Y, p2.Y) &&
			pt.Y <= math.Max(p1.Y, p2.Y) &&
			pt.X <= math.Max(p1.X, p2.X) {
			// p1.Y != p2.Y here: a horizontal edge cannot satisfy both y tests.
			xints := (pt.Y-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y) + p1.X
			if p1.X == p2.X || pt.X <= xints {
				inside = !inside
			}
		}
		p1 = p2
	}
	return inside
}

// CollidesRect reports whether the polygon overlaps r.
func (p Polygon) CollidesRect(r Rect) bool {
	return p.CollidesPolygon(PolygonFromRect(r))
}

// CollidesPolygon reports whether p and other overlap: either a vertex of one
// lies inside the other, or an edge of one crosses an edge of the other. The
// edge test catches overlaps where neither polygon has a vertex inside the
// other, such as a plus shape straddling a square.
func (p Polygon) CollidesPolygon(other Polygon) bool {
	for _, v := range other.verts {
		if p.CollidesPoint(v) {
			return true
		}
	}
	for _, v := range p.verts {
		if other.CollidesPoint(v) {
			return true
		}
	}

	n, m := len(p.verts), len(other.verts)
	if n < 2 || m < 2 {
		return false
	}
	for i := 0; i < n; i++ {
		a, b := p.verts[i], p.verts[(i+1)%n]
		for j := 0; j < m; j++ {
			c, d := other.verts[j], other.verts[(j+1)%m]
			if SegmentsIntersect(a, b, c, d) {
				return true
			}
		}
	}
	return false
}

// SegmentsIntersect reports whether segment ab crosses segment cd: the
// endpoints of each segment lie on opposite sides of the other. Collinear
// overlaps are not reported.
func SegmentsIntersect(a, b, c, d Vec2) bool {
	return ccw(a, c, d) != ccw(b, c, d) && ccw(a, b, c) != ccw(a, b, d)
}

// ccw reports whether a, b, c turn counter-clockwise in a Y-up frame.
func ccw(a, b, c Vec2) bool {
	return (c.Y-a.Y)*(b.X-a.X) > (b.Y-a.Y)*(c.X-a.X)
}

// --- Cursor ---

// Cursor walks a polygon's vertices once per pass. After the last vertex Next
// reports false until Reset starts a new pass.
type Cursor struct {
	verts []Vec2
	pos   int
}

// Next returns the next vertex, or false when the pass is exhausted.
func (c *Cursor) Next() (Vec2, bool) {
	if c.pos >= len(c.verts) {
		return Vec2{}, false
	}
	v := c.verts[c.pos]
	c.pos++
	return v, true
}

// Reset rewinds the cursor to the first vertex.
func (c *Cursor) Reset() {
	c.pos = 0
}
