package canvas

import "math"

// Context is a 2D drawing context with canvas path semantics.
//
// Colors are CSS color strings ("#ff0000", "red"). Angles are radians,
// measured clockwise on screen from the +X axis.
type Context interface {
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, radius, startAngle, endAngle float64, counterclockwise bool)
	FillRect(x, y, width, height float64)
	SetStrokeColor(color string)
	SetFillColor(color string)
	SetLineWidth(width float64)
	Fill()
	Stroke()
}

// Layer is a Context that can be wiped.
type Layer interface {
	Context
	Clear()
}

// FullCircle is the end angle of an arc starting at 0 that closes on itself.
const FullCircle = 2 * math.Pi

// arcSweep returns the signed angle an arc covers, following the canvas
// rules: a clockwise arc whose span reaches 2π is a full circle, otherwise
// the span is reduced into [0, 2π). Counterclockwise arcs are negative.
func arcSweep(start, end float64, counterclockwise bool) float64 {
	if counterclockwise {
		if start-end >= FullCircle {
			return -FullCircle
		}
		return -math.Mod(math.Mod(start-end, FullCircle)+FullCircle, FullCircle)
	}
	if end-start >= FullCircle {
		return FullCircle
	}
	return math.Mod(math.Mod(end-start, FullCircle)+FullCircle, FullCircle)
}
