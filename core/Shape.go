package core

// Color is an RGBA quadruple with components in [0, 1].
type Color [4]float32

var BackgroundColor = Color{0.0, 0.0, 0.0, 0.8}
var ForegroundColor = Color{1.0, 1.0, 1.0, 0.8}

// Rect is an axis aligned box, (X, Y) is the top-left corner.
type Rect struct {
	X, Y int
	W, H int
}

func (r Rect) Right() int {
	return r.X + r.W
}

func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Circle is centred at (X, Y).
type Circle struct {
	X, Y   int
	Radius int
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c Circle) Contains(x, y int) bool {
	dx, dy := x-c.X, y-c.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

type ShapeKind int

const (
	RectShape ShapeKind = iota
	CircleShape
)

// Shape is a single draw primitive. Only the field matching Kind is meaningful.
type Shape struct {
	Kind   ShapeKind
	Color  Color
	Rect   Rect
	Circle Circle
}

// Frame is everything needed to draw one render tick.
type Frame struct {
	Width, Height int
	Background    Color
	Shapes        []Shape
}
