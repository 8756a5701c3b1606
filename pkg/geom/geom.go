// Package geom holds the 2D primitives shared by the figure geometry and the
// drawing tools.
//
// Coordinates are canvas pixels: the origin is the top-left corner and Y
// grows downward. Points are gonum [r2.Vec] values so the usual vector
// helpers (r2.Add, r2.Sub, r2.Norm) apply directly.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a canvas-space position in pixels.
type Point = r2.Vec

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return r2.Norm(r2.Sub(a, b))
}

// Side selects the horizontal direction a limb opens toward.
type Side int

const (
	Left  Side = -1
	Right Side = 1
)

// String returns "left" or "right".
func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Polar returns the point length pixels away from origin.
//
// The polar axis is the downward vertical rather than the usual +X axis:
// angle 0 points straight down and positive angles swing toward side.
//
//	x = origin.X + side·length·sin(angle)
//	y = origin.Y + length·cos(angle)
func Polar(origin Point, length, angle float64, side Side) Point {
	dir := Point{X: float64(side) * math.Sin(angle), Y: math.Cos(angle)}
	return r2.Add(origin, r2.Scale(length, dir))
}

// Circle is a circle given by center and radius.
type Circle struct {
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	Min    Point   `json:"min"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Max returns the bottom-right corner.
func (r Rect) Max() Point { return Pt(r.Min.X+r.Width, r.Min.Y+r.Height) }

// Segment is a straight line from From to To.
type Segment struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// Length returns the distance between the segment endpoints.
func (s Segment) Length() float64 { return Distance(s.From, s.To) }
