package canvas

import (
	"bytes"
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"
)

// Default SVG viewport.
const (
	DefaultWidth  = 400.0
	DefaultHeight = 400.0
)

// SVGOption configures RenderSVG.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width, height float64
	background    string
}

// WithSize sets the viewport size in pixels.
func WithSize(width, height float64) SVGOption {
	return func(r *svgRenderer) { r.width, r.height = width, height }
}

// WithBackground paints the whole viewport with color before any op.
func WithBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// svgPath tracks the canvas current path while it is being translated.
type svgPath struct {
	d        strings.Builder
	hasPoint bool
}

func (p *svgPath) reset() {
	p.d.Reset()
	p.hasPoint = false
}

func (p *svgPath) cmd(c byte, nums ...float64) {
	if p.d.Len() > 0 {
		p.d.WriteByte(' ')
	}
	p.d.WriteByte(c)
	for _, n := range nums {
		p.d.WriteByte(' ')
		p.d.WriteString(num(n))
	}
}

func (p *svgPath) moveTo(x, y float64) {
	p.cmd('M', x, y)
	p.hasPoint = true
}

func (p *svgPath) lineTo(x, y float64) {
	if !p.hasPoint {
		p.moveTo(x, y)
		return
	}
	p.cmd('L', x, y)
}

func (p *svgPath) arc(cx, cy, r, start, end float64, ccw bool) {
	sweep := arcSweep(start, end, ccw)
	sx, sy := cx+r*math.Cos(start), cy+r*math.Sin(start)
	p.lineTo(sx, sy)

	flag := 1.0
	if sweep < 0 {
		flag = 0
	}
	if math.Abs(sweep) >= FullCircle {
		// A single SVG arc cannot close on itself; split at the antipode.
		mx, my := cx-r*math.Cos(start), cy-r*math.Sin(start)
		p.cmd('A', r, r, 0, 0, flag, mx, my)
		p.cmd('A', r, r, 0, 0, flag, sx, sy)
		return
	}
	large := 0.0
	if math.Abs(sweep) > math.Pi {
		large = 1
	}
	end = start + sweep
	p.cmd('A', r, r, 0, large, flag, cx+r*math.Cos(end), cy+r*math.Sin(end))
}

// RenderSVG converts recorded canvas ops into a standalone SVG document.
// Each Fill and Stroke becomes one <path> element painted with the state
// current at that point, so the output matches what a canvas would show.
func RenderSVG(ops []Op, opts ...SVGOption) []byte {
	r := svgRenderer{width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.width, r.height, r.width, r.height)
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect x="0" y="0" width="100%%" height="100%%" fill="%s"/>`+"\n", attr(r.background))
	}

	var (
		path      svgPath
		fill      = DefaultColor
		stroke    = DefaultColor
		lineWidth = 1.0
	)
	for _, op := range ops {
		switch op.Kind {
		case OpBeginPath:
			path.reset()
		case OpMoveTo:
			path.moveTo(op.Args[0], op.Args[1])
		case OpLineTo:
			path.lineTo(op.Args[0], op.Args[1])
		case OpArc:
			path.arc(op.Args[0], op.Args[1], op.Args[2], op.Args[3], op.Args[4], op.CCW)
		case OpFillRect:
			fmt.Fprintf(&buf, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
				num(op.Args[0]), num(op.Args[1]), num(op.Args[2]), num(op.Args[3]), attr(fill))
		case OpFillColor:
			fill = op.Color
		case OpStrokeColor:
			stroke = op.Color
		case OpLineWidth:
			lineWidth = op.Args[0]
		case OpFill:
			if path.d.Len() > 0 {
				fmt.Fprintf(&buf, `  <path d="%s" fill="%s" stroke="none"/>`+"\n", path.d.String(), attr(fill))
			}
		case OpStroke:
			if path.d.Len() > 0 {
				fmt.Fprintf(&buf, `  <path d="%s" fill="none" stroke="%s" stroke-width="%s"/>`+"\n",
					path.d.String(), attr(stroke), num(lineWidth))
			}
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func attr(s string) string { return html.EscapeString(s) }
