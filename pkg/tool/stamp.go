package tool

import (
	"github.com/matzehuels/stickfigure/pkg/canvas"
	"github.com/matzehuels/stickfigure/pkg/figure"
	"github.com/matzehuels/stickfigure/pkg/geom"
	"github.com/matzehuels/stickfigure/pkg/observability"
)

// CursorRadius is the radius of the hover hint drawn under the pointer.
const CursorRadius = 20.0

// Stamp is the figure template tool. Pressing stamps a posed figure at the
// pointer; moving shows a preview circle.
//
// Per gesture: Idle -press(gate open)-> Stamped -release-> Idle. Move only
// redraws the preview, and leave clears the transient layer from any state.
// The drag anchor lives in the host, not here.
type Stamp struct {
	base
	angles figure.JointAngles
}

// NewStamp creates a stamp tool posed by pose. Unset pose fields default to
// figure.DefaultAngle.
func NewStamp(host Host, pose figure.Pose, opts ...Option) *Stamp {
	return &Stamp{
		base:   newBase("Template", host, opts),
		angles: pose.Resolve(),
	}
}

// Angles returns the current joint angles in degrees.
func (s *Stamp) Angles() figure.JointAngles { return s.angles }

// SetPose replaces the joint angles used by later stamps, for hosts that
// expose angle sliders.
func (s *Stamp) SetPose(pose figure.Pose) { s.angles = pose.Resolve() }

// Handlers implements Tool.
func (s *Stamp) Handlers() Handlers {
	return Handlers{
		OnPress:   s.press,
		OnMove:    s.move,
		OnRelease: noop,
		OnLeave:   s.leave,
	}
}

func (s *Stamp) press(e Event) {
	if !s.host.Gate.CanDraw() {
		return
	}
	at := s.host.Pointer.CanvasPoint(e)
	layer := s.host.Layers.Transient

	layer.Clear()
	figure.DrawFigure(layer, at, s.angles, s.host.Color.Color())

	s.logger.Debug("stamped figure", "tool", s.key, "x", at.X, "y", at.Y)
	observability.Tool().OnStamp(s.key, at.X, at.Y)
}

func (s *Stamp) move(e Event, drag *DragAnchor) {
	layer := s.host.Layers.Transient
	layer.Clear()

	at := s.host.Pointer.CanvasPoint(e)
	center, radius, kind := at, CursorRadius, "cursor"
	if drag != nil && s.host.Gate.CanDraw() {
		center = geom.Pt(drag.StartX, drag.StartY)
		radius = geom.Distance(center, at)
		kind = "drag"
	}

	layer.BeginPath()
	layer.Arc(center.X, center.Y, radius, 0, canvas.FullCircle, false)
	layer.Stroke()

	observability.Tool().OnPreview(s.key, kind, radius)
}

func (s *Stamp) leave(Event) {
	s.host.Layers.Transient.Clear()
	observability.Tool().OnClear(s.key)
}

var _ Tool = (*Stamp)(nil)
