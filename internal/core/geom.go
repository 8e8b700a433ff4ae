// Package core holds the platform primitives shared by the engine and the
// terminal frontend: geometry, input actions and the cell screen. It has no
// third-party dependencies.
package core

// Rect is a rectangle of terminal cells.
type Rect struct {
	X, Y int
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Box is an axis-aligned bounding box in play-area pixels. Entities move by
// fractional amounts per tick, so coordinates are floats.
type Box struct {
	X float64 `msgpack:"x"`
	Y float64 `msgpack:"y"`
	W float64 `msgpack:"w"`
	H float64 `msgpack:"h"`
}

func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

func (b Box) Right() float64   { return b.X + b.W }
func (b Box) Bottom() float64  { return b.Y + b.H }
func (b Box) CenterX() float64 { return b.X + b.W/2 }

// Intersects reports whether b and other overlap. Boxes that only share an
// edge do not intersect.
func (b Box) Intersects(other Box) bool {
	return b.X < other.Right() && other.X < b.Right() &&
		b.Y < other.Bottom() && other.Y < b.Bottom()
}

// ClampF restricts v to [lo, hi].
func ClampF(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
