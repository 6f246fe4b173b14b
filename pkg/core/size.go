package core

// Size describes the dimensions of a row-major cell or pixel buffer.
type Size struct {
	W int
	H int
}

// Point is an integer (x, y) coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// NewSize clamps negative dimensions to zero.
func NewSize(w, h int) Size {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Size{W: w, H: h}
}

// Area returns W*H.
func (s Size) Area() int { return s.W * s.H }

// Empty reports whether the size holds no cells.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Contains reports whether (x, y) lies in [0,W)x[0,H).
func (s Size) Contains(x, y int) bool {
	return x >= 0 && x < s.W && y >= 0 && y < s.H
}

// Index returns the linear slice index for coordinates (x, y).
func (s Size) Index(x, y int) int { return y*s.W + x }

// Wrap applies toroidal wrapping to the provided coordinates. The size must
// not be empty.
func (s Size) Wrap(x, y int) (int, int) {
	x = (x%s.W + s.W) % s.W
	y = (y%s.H + s.H) % s.H
	return x, y
}
