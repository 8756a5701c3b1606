package figure

import "github.com/matzehuels/stickfigure/pkg/geom"

// Limbs is a left/right pair of limb segments. Each segment runs from the
// joint on the body (shoulder or hip) to the free end (hand or foot).
type Limbs struct {
	Left  geom.Segment `json:"left"`
	Right geom.Segment `json:"right"`
}

// Figure is the computed geometry of one stamped figure.
type Figure struct {
	Anchor geom.Point  `json:"anchor"`
	Angles JointAngles `json:"angles"`
	Head   geom.Circle `json:"head"`
	Torso  geom.Rect   `json:"torso"`
	Arms   Limbs       `json:"arms"`
	Legs   Limbs       `json:"legs"`
}

// Compute derives the full figure geometry for anchor and angles.
func Compute(anchor geom.Point, angles JointAngles) Figure {
	rad := angles.Radians()
	return Figure{
		Anchor: anchor,
		Angles: angles,
		Head:   Head(anchor),
		Torso:  Torso(anchor),
		Arms:   Arms(anchor, rad.LeftArm, rad.RightArm),
		Legs:   Legs(anchor, rad.LeftLeg, rad.RightLeg),
	}
}

// Head returns the head circle, resting on top of anchor.
func Head(anchor geom.Point) geom.Circle {
	p := Standard
	return geom.Circle{
		Center: geom.Pt(anchor.X, anchor.Y-p.HeadRadius),
		Radius: p.HeadRadius,
	}
}

// Torso returns the torso rectangle, centered under anchor.
func Torso(anchor geom.Point) geom.Rect {
	p := Standard
	return geom.Rect{
		Min:    geom.Pt(anchor.X-p.TorsoWidth/2, anchor.Y),
		Width:  p.TorsoWidth,
		Height: p.TorsoHeight,
	}
}

// Arms returns both arms. Angles are radians.
func Arms(anchor geom.Point, left, right float64) Limbs {
	p := Standard
	reach := p.TorsoWidth/2 + p.ShoulderGap
	return limbs(
		geom.Pt(anchor.X-reach, anchor.Y),
		geom.Pt(anchor.X+reach, anchor.Y),
		p.ArmLength, left, right,
	)
}

// Legs returns both legs. Angles are radians. The hips sit on the bottom
// edge of the torso, one leg width in from each side.
func Legs(anchor geom.Point, left, right float64) Limbs {
	p := Standard
	inset := p.TorsoWidth/2 - p.LegWidth
	y := anchor.Y + p.TorsoHeight
	return limbs(
		geom.Pt(anchor.X-inset, y),
		geom.Pt(anchor.X+inset, y),
		p.LegLength, left, right,
	)
}

func limbs(leftJoint, rightJoint geom.Point, length, left, right float64) Limbs {
	return Limbs{
		Left:  geom.Segment{From: leftJoint, To: geom.Polar(leftJoint, length, left, geom.Left)},
		Right: geom.Segment{From: rightJoint, To: geom.Polar(rightJoint, length, right, geom.Right)},
	}
}
