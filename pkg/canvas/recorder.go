package canvas

// OpKind names a recorded Context call.
type OpKind string

const (
	OpBeginPath   OpKind = "beginPath"
	OpMoveTo      OpKind = "moveTo"
	OpLineTo      OpKind = "lineTo"
	OpArc         OpKind = "arc"
	OpFillRect    OpKind = "fillRect"
	OpStrokeColor OpKind = "strokeStyle"
	OpFillColor   OpKind = "fillStyle"
	OpLineWidth   OpKind = "lineWidth"
	OpFill        OpKind = "fill"
	OpStroke      OpKind = "stroke"
)

// Op is one recorded drawing call.
//
// Args holds the numeric arguments in call order: (x, y) for MoveTo/LineTo,
// (x, y, radius, start, end) for Arc, (x, y, w, h) for FillRect and (w) for
// SetLineWidth.
type Op struct {
	Kind  OpKind    `json:"op"`
	Args  []float64 `json:"args,omitempty"`
	Color string    `json:"color,omitempty"`
	CCW   bool      `json:"ccw,omitempty"`
}

// Recorder is a Layer that records calls instead of painting.
// Clear drops everything recorded so far, so Ops always describes what is
// currently visible on the layer.
type Recorder struct {
	ops    []Op
	clears int
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) add(op Op) { r.ops = append(r.ops, op) }

func (r *Recorder) BeginPath()          { r.add(Op{Kind: OpBeginPath}) }
func (r *Recorder) MoveTo(x, y float64) { r.add(Op{Kind: OpMoveTo, Args: []float64{x, y}}) }
func (r *Recorder) LineTo(x, y float64) { r.add(Op{Kind: OpLineTo, Args: []float64{x, y}}) }
func (r *Recorder) Fill()               { r.add(Op{Kind: OpFill}) }
func (r *Recorder) Stroke()             { r.add(Op{Kind: OpStroke}) }

func (r *Recorder) Arc(x, y, radius, start, end float64, ccw bool) {
	r.add(Op{Kind: OpArc, Args: []float64{x, y, radius, start, end}, CCW: ccw})
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.add(Op{Kind: OpFillRect, Args: []float64{x, y, w, h}})
}

func (r *Recorder) SetStrokeColor(c string) { r.add(Op{Kind: OpStrokeColor, Color: c}) }
func (r *Recorder) SetFillColor(c string)   { r.add(Op{Kind: OpFillColor, Color: c}) }

func (r *Recorder) SetLineWidth(w float64) {
	r.add(Op{Kind: OpLineWidth, Args: []float64{w}})
}

// Clear implements Layer.
func (r *Recorder) Clear() {
	r.ops = nil
	r.clears++
}

// Ops returns a copy of the calls recorded since the last Clear.
func (r *Recorder) Ops() []Op {
	out := make([]Op, len(r.ops))
	copy(out, r.ops)
	return out
}

// Clears reports how many times Clear has been called.
func (r *Recorder) Clears() int { return r.clears }

// Count returns how many recorded ops have the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Replay issues the recorded ops against ctx in order.
func Replay(ctx Context, ops []Op) {
	for _, op := range ops {
		switch op.Kind {
		case OpBeginPath:
			ctx.BeginPath()
		case OpMoveTo:
			ctx.MoveTo(op.Args[0], op.Args[1])
		case OpLineTo:
			ctx.LineTo(op.Args[0], op.Args[1])
		case OpArc:
			ctx.Arc(op.Args[0], op.Args[1], op.Args[2], op.Args[3], op.Args[4], op.CCW)
		case OpFillRect:
			ctx.FillRect(op.Args[0], op.Args[1], op.Args[2], op.Args[3])
		case OpStrokeColor:
			ctx.SetStrokeColor(op.Color)
		case OpFillColor:
			ctx.SetFillColor(op.Color)
		case OpLineWidth:
			ctx.SetLineWidth(op.Args[0])
		case OpFill:
			ctx.Fill()
		case OpStroke:
			ctx.Stroke()
		}
	}
}

// Scale returns a copy of ops with every length multiplied by s. Arc angles
// are left alone.
func Scale(ops []Op, s float64) []Op {
	out := make([]Op, len(ops))
	for i, op := range ops {
		out[i] = op
		if len(op.Args) == 0 {
			continue
		}
		args := make([]float64, len(op.Args))
		copy(args, op.Args)
		n := len(args)
		if op.Kind == OpArc {
			n = 3
		}
		for j := 0; j < n; j++ {
			args[j] *= s
		}
		out[i].Args = args
	}
	return out
}

var _ Layer = (*Recorder)(nil)
