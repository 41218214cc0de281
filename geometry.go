package main

import "math"

// Point is a position in screen cells. Fractional values appear on curve
// control points and are rounded when rasterised.
type Point struct {
	X, Y float64
}

// Rect is a cell rectangle covering columns X..X+Width-1 and rows
// Y..Y+Height-1.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

func (r Rect) Center() Point {
	return Point{
		X: r.X + math.Floor(r.Width/2),
		Y: r.Y + math.Floor(r.Height/2),
	}
}

func (r Rect) Area() float64 {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// nearestEdgePoint returns the border cell of r closest to p. Points inside r
// go to the nearest side.
func nearestEdgePoint(r Rect, p Point) Point {
	if r.Empty() {
		return Point{X: r.X, Y: r.Y}
	}
	right := r.X + r.Width - 1
	bottom := r.Y + r.Height - 1

	clampedX := math.Min(math.Max(p.X, r.X), right)
	clampedY := math.Min(math.Max(p.Y, r.Y), bottom)
	if !r.Contains(p) {
		return Point{X: clampedX, Y: clampedY}
	}

	distToLeft := math.Abs(p.X - r.X)
	distToRight := math.Abs(p.X - right)
	distToTop := math.Abs(p.Y - r.Y)
	distToBottom := math.Abs(p.Y - bottom)

	minDist := distToLeft
	edge := Point{X: r.X, Y: clampedY}

	if distToRight < minDist {
		minDist = distToRight
		edge = Point{X: right, Y: clampedY}
	}
	if distToTop < minDist {
		minDist = distToTop
		edge = Point{X: clampedX, Y: r.Y}
	}
	if distToBottom < minDist {
		edge = Point{X: clampedX, Y: bottom}
	}
	return edge
}

// Curve is a quadratic Bézier segment.
type Curve struct {
	From Point
	Ctrl Point
	To   Point
}

// curveBend is the control point offset as a fraction of the chord length.
const curveBend = 0.2

// curveBetween builds the curve joining two rectangles, bowed to the left of
// the from→to direction.
func curveBetween(from, to Rect) Curve {
	start := nearestEdgePoint(from, to.Center())
	end := nearestEdgePoint(to, from.Center())

	dx := end.X - start.X
	dy := end.Y - start.Y
	mid := Point{X: (start.X + end.X) / 2, Y: (start.Y + end.Y) / 2}

	return Curve{
		From: start,
		Ctrl: Point{X: mid.X + dy*curveBend, Y: mid.Y - dx*curveBend},
		To:   end,
	}
}

// At evaluates the curve at t in [0,1].
func (c Curve) At(t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*c.From.X + 2*u*t*c.Ctrl.X + t*t*c.To.X,
		Y: u*u*c.From.Y + 2*u*t*c.Ctrl.Y + t*t*c.To.Y,
	}
}

// steps is the sample count that visits every cell along the curve.
func (c Curve) steps() int {
	span := math.Abs(c.From.X-c.Ctrl.X) + math.Abs(c.Ctrl.X-c.To.X) +
		math.Abs(c.From.Y-c.Ctrl.Y) + math.Abs(c.Ctrl.Y-c.To.Y)
	n := int(math.Ceil(span)) * 2
	if n < 2 {
		n = 2
	}
	return n
}

func round(v float64) int {
	return int(math.Round(v))
}
