package geom

// Number is the set of scalar types the relaxation helpers accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Polarity is the sign of a scalar: -1, 0 or 1.
type Polarity int8

const (
	Negative Polarity = -1
	Neutral  Polarity = 0
	Positive Polarity = 1
)

// PolarityOf returns Positive when value > 0 and Negative otherwise.
// Zero maps to Negative, not Neutral; Relax depends on that.
func PolarityOf[T Number](value T) Polarity {
	if value > 0 {
		return Positive
	}
	return Negative
}

// Neutralize moves value toward zero by exactly step. It does not clamp, so a
// step larger than |value| overshoots past zero.
func Neutralize[T Number](value, step T) T {
	if value > 0 {
		return value - step
	}
	return value + step
}

// Relax moves value toward zero by step and settles on exactly zero once
// |value| < step.
func Relax[T Number](value, step T) T {
	if abs(value) < step {
		return 0
	}
	return value - step*T(PolarityOf(value))
}

func abs[T Number](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// DefaultPadding is the padding selection highlights use when none is given.
const DefaultPadding = 1

// RectToCoordinates returns the corners of r grown outward for drawing a
// selection outline around it, in TL, TR, BR, BL order.
//
// The left and top sides move out by padding+1. The right and bottom sides are
// placed at x+w+padding and y+h+padding: x+w is the exclusive edge, so measured
// from the last covered pixel every side is inflated by padding+1.
func RectToCoordinates(r Rect, padding int) [4]Vec2 {
	p := float64(padding)
	left := r.X - (p + 1)
	top := r.Y - (p + 1)
	right := r.X + r.Width + p
	bottom := r.Y + r.Height + p
	return [4]Vec2{
		{left, top},
		{right, top},
		{right, bottom},
		{left, bottom},
	}
}
