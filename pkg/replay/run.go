package replay

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stickfigure/pkg/canvas"
	"github.com/matzehuels/stickfigure/pkg/errors"
	"github.com/matzehuels/stickfigure/pkg/geom"
	"github.com/matzehuels/stickfigure/pkg/tool"
)

// Frame is the transient layer's content after one step.
type Frame struct {
	Step   Step        `json:"step"`
	Ops    []canvas.Op `json:"ops"`
	Clears int         `json:"clears"`
}

// Result is the outcome of running a script.
type Result struct {
	Tool   string  `json:"tool"`
	Frames []Frame `json:"frames"`
}

// Final returns the ops on the transient layer after the last step, or nil
// for an empty script.
func (r *Result) Final() []canvas.Op {
	if len(r.Frames) == 0 {
		return nil
	}
	return r.Frames[len(r.Frames)-1].Ops
}

// Option configures Run.
type Option func(*runner)

// WithLogger sets the logger passed to the tool.
func WithLogger(l *log.Logger) Option {
	return func(r *runner) { r.logger = l }
}

type runner struct {
	logger *log.Logger
	open   bool
}

func (r *runner) CanDraw() bool { return r.open }

// Run validates s, builds its tool against recording layers and dispatches
// every step in order. The context is checked between steps.
func Run(ctx context.Context, s *Script, opts ...Option) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	r := &runner{logger: log.Default()}
	for _, opt := range opts {
		opt(r)
	}

	transient := canvas.NewRecorder()
	host := tool.Host{
		Layers:  tool.Layers{Visible: canvas.NewRecorder(), Transient: transient},
		Pointer: tool.ClientCoords,
		Gate:    r,
	}
	if s.Color != "" {
		host.Color = tool.FixedColor(s.Color)
	}

	tools := tool.NewRegistry()
	for _, t := range []tool.Tool{
		tool.NewStamp(host, s.Pose, tool.WithKey(ToolTemplate), tool.WithLogger(r.logger)),
		tool.NewPose(host, s.Pose, s.To, tool.WithKey(ToolAnimation), tool.WithLogger(r.logger)),
	} {
		if err := tools.Register(t); err != nil {
			return nil, err
		}
	}

	name := s.Tool
	if name == "" {
		name = ToolTemplate
	}
	t, err := tools.Get(name)
	if err != nil {
		return nil, err
	}
	h := t.Handlers()

	res := &Result{Tool: name, Frames: make([]Frame, 0, len(s.Steps))}
	var anchor *tool.DragAnchor
	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "replay interrupted at step %d", i)
		}
		r.open = st.Gate == nil || *st.Gate
		e := tool.Event{ClientX: st.X, ClientY: st.Y}

		switch st.Kind {
		case Press:
			h.OnPress(e)
			anchor = &tool.DragAnchor{StartX: st.X, StartY: st.Y}
		case Move:
			drag := anchor
			if st.Drag != nil {
				drag = &tool.DragAnchor{StartX: st.Drag.X, StartY: st.Drag.Y}
			}
			h.OnMove(e, drag)
		case Release:
			h.OnRelease(e)
			anchor = nil
		case Leave:
			h.OnLeave(e)
			anchor = nil
		}

		r.logger.Debug("replayed step", "index", i, "kind", st.Kind, "at", geom.Pt(st.X, st.Y))
		res.Frames = append(res.Frames, Frame{Step: st, Ops: transient.Ops(), Clears: transient.Clears()})
	}
	return res, nil
}
