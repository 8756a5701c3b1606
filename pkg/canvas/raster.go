package canvas

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/gogpu/gg"
)

// RasterOption configures a Raster.
type RasterOption func(*Raster)

// WithRasterBackground sets the color Clear paints. The default is
// transparent.
func WithRasterBackground(c color.Color) RasterOption {
	return func(r *Raster) { r.background = gg.FromColor(c) }
}

// Raster is a Layer that paints into an image using gg.
//
// gg consumes its path on every Fill and Stroke while a canvas keeps it until
// the next BeginPath, so Raster owns the current path and replays it into gg
// each time it is painted. FillRect paints straight away and leaves the path
// alone, as on a canvas.
type Raster struct {
	dc         *gg.Context
	background gg.RGBA

	path   []Op
	fill   gg.RGBA
	stroke gg.RGBA
	width  float64

	err error
}

// NewRaster creates a width×height raster layer cleared to its background.
func NewRaster(width, height int, opts ...RasterOption) *Raster {
	black := gg.FromColor(color.Black)
	r := &Raster{
		dc:     gg.NewContext(width, height),
		fill:   black,
		stroke: black,
		width:  1,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.Clear()
	return r
}

func (r *Raster) BeginPath()          { r.path = r.path[:0] }
func (r *Raster) MoveTo(x, y float64) { r.path = append(r.path, Op{Kind: OpMoveTo, Args: []float64{x, y}}) }
func (r *Raster) LineTo(x, y float64) { r.path = append(r.path, Op{Kind: OpLineTo, Args: []float64{x, y}}) }

func (r *Raster) Arc(x, y, radius, start, end float64, ccw bool) {
	r.path = append(r.path, Op{Kind: OpArc, Args: []float64{x, y, radius, start, end}, CCW: ccw})
}

func (r *Raster) FillRect(x, y, w, h float64) {
	r.dc.ClearPath()
	r.dc.DrawRectangle(x, y, w, h)
	r.dc.SetFillBrush(gg.Solid(r.fill))
	r.keep(r.dc.Fill())
}

// SetStrokeColor sets the stroke color. Unparseable colors are ignored, as
// a canvas ignores an invalid strokeStyle.
func (r *Raster) SetStrokeColor(c string) {
	if col, err := ParseColor(c); err == nil {
		r.stroke = gg.FromColor(col)
	}
}

// SetFillColor sets the fill color. Unparseable colors are ignored.
func (r *Raster) SetFillColor(c string) {
	if col, err := ParseColor(c); err == nil {
		r.fill = gg.FromColor(col)
	}
}

func (r *Raster) SetLineWidth(w float64) {
	if w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w) {
		r.width = w
	}
}

func (r *Raster) Fill() {
	if !r.tracePath() {
		return
	}
	r.dc.SetFillBrush(gg.Solid(r.fill))
	r.keep(r.dc.Fill())
}

func (r *Raster) Stroke() {
	if !r.tracePath() {
		return
	}
	r.dc.SetStrokeBrush(gg.Solid(r.stroke))
	r.dc.SetLineWidth(r.width)
	r.keep(r.dc.Stroke())
}

// Clear implements Layer. It repaints the background and drops the path.
func (r *Raster) Clear() {
	r.path = r.path[:0]
	r.dc.ClearPath()
	r.dc.ClearWithColor(r.background)
}

// Image returns the current pixels.
func (r *Raster) Image() image.Image { return r.dc.Image() }

// EncodePNG writes the current pixels as PNG.
func (r *Raster) EncodePNG(w io.Writer) error { return r.dc.EncodePNG(w) }

// Err returns the first error gg reported while painting.
func (r *Raster) Err() error { return r.err }

// Close releases the gg context.
func (r *Raster) Close() error { return r.dc.Close() }

func (r *Raster) keep(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}

// tracePath rebuilds the current path inside gg. It reports whether the
// path has anything to paint.
func (r *Raster) tracePath() bool {
	r.dc.ClearPath()
	if len(r.path) == 0 {
		return false
	}
	var hasPoint bool
	for _, op := range r.path {
		switch op.Kind {
		case OpMoveTo:
			r.dc.MoveTo(op.Args[0], op.Args[1])
			hasPoint = true
		case OpLineTo:
			if hasPoint {
				r.dc.LineTo(op.Args[0], op.Args[1])
			} else {
				r.dc.MoveTo(op.Args[0], op.Args[1])
				hasPoint = true
			}
		case OpArc:
			r.traceArc(op.Args[0], op.Args[1], op.Args[2], op.Args[3], op.Args[4], op.CCW, hasPoint)
			hasPoint = true
		}
	}
	return true
}

// traceArc appends an arc as cubic segments of at most 90°.
func (r *Raster) traceArc(cx, cy, radius, start, end float64, ccw, hasPoint bool) {
	sweep := arcSweep(start, end, ccw)
	sx, sy := cx+radius*math.Cos(start), cy+radius*math.Sin(start)
	if hasPoint {
		r.dc.LineTo(sx, sy)
	} else {
		r.dc.MoveTo(sx, sy)
	}

	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	if n == 0 {
		return
	}
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)
	a := start
	for i := 0; i < n; i++ {
		b := a + step
		cosA, sinA := math.Cos(a), math.Sin(a)
		cosB, sinB := math.Cos(b), math.Sin(b)
		r.dc.CubicTo(
			cx+radius*(cosA-k*sinA), cy+radius*(sinA+k*cosA),
			cx+radius*(cosB+k*sinB), cy+radius*(sinB-k*cosB),
			cx+radius*cosB, cy+radius*sinB,
		)
		a = b
	}
}

var _ Layer = (*Raster)(nil)
