package tool

import (
	"fmt"

	"github.com/matzehuels/stickfigure/pkg/figure"
	"github.com/matzehuels/stickfigure/pkg/geom"
)

// Pose is the animation tool: a keyframe pair of poses and the figure
// drawing primitives, with no pointer behaviour. Every handler is a no-op;
// sequencing between the keyframes is left to the host.
type Pose struct {
	base
	keyframes [2]figure.JointAngles
}

// NewPose creates a pose tool for the keyframes from and to.
func NewPose(host Host, from, to figure.Pose, opts ...Option) *Pose {
	return &Pose{
		base:      newBase("Animation", host, opts),
		keyframes: [2]figure.JointAngles{from.Resolve(), to.Resolve()},
	}
}

// Keyframes returns the two poses in degrees.
func (p *Pose) Keyframes() [2]figure.JointAngles { return p.keyframes }

// Keyframe selects one of the pose tool's two keyframes.
type Keyframe int

const (
	From Keyframe = iota
	To
)

// Figure computes keyframe k anchored at anchor. k must be From or To; any
// other value panics.
func (p *Pose) Figure(k Keyframe, anchor geom.Point) figure.Figure {
	if k != From && k != To {
		panic(fmt.Sprintf("tool: invalid keyframe %d", k))
	}
	return figure.Compute(anchor, p.keyframes[k])
}

// Handlers implements Tool.
func (p *Pose) Handlers() Handlers {
	return Handlers{
		OnPress:   noop,
		OnMove:    func(Event, *DragAnchor) {},
		OnRelease: noop,
		OnLeave:   noop,
	}
}

var _ Tool = (*Pose)(nil)
