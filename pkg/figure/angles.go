package figure

import "math"

// DefaultAngle is the joint angle, in degrees, used for any limb a caller
// leaves unset.
const DefaultAngle = 45.0

// JointAngles holds the four limb rotations in degrees.
// 0 is straight down; 90 is horizontal, pointing away from the body.
type JointAngles struct {
	LeftArm  float64 `json:"left_arm" toml:"left_arm"`
	RightArm float64 `json:"right_arm" toml:"right_arm"`
	LeftLeg  float64 `json:"left_leg" toml:"left_leg"`
	RightLeg float64 `json:"right_leg" toml:"right_leg"`
}

// DefaultAngles returns all four limbs at DefaultAngle.
func DefaultAngles() JointAngles {
	return JointAngles{
		LeftArm:  DefaultAngle,
		RightArm: DefaultAngle,
		LeftLeg:  DefaultAngle,
		RightLeg: DefaultAngle,
	}
}

// RadianAngles is JointAngles converted to radians.
type RadianAngles struct {
	LeftArm, RightArm, LeftLeg, RightLeg float64
}

// Radians converts the angles to radians.
func (a JointAngles) Radians() RadianAngles {
	return RadianAngles{
		LeftArm:  Radians(a.LeftArm),
		RightArm: Radians(a.RightArm),
		LeftLeg:  Radians(a.LeftLeg),
		RightLeg: Radians(a.RightLeg),
	}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg / 360 * 2 * math.Pi }

// Pose is a partially specified set of joint angles, in degrees. Nil fields
// take DefaultAngle when resolved.
type Pose struct {
	LeftArm  *float64 `json:"left_arm,omitempty" toml:"left_arm"`
	RightArm *float64 `json:"right_arm,omitempty" toml:"right_arm"`
	LeftLeg  *float64 `json:"left_leg,omitempty" toml:"left_leg"`
	RightLeg *float64 `json:"right_leg,omitempty" toml:"right_leg"`
}

// Resolve fills unset fields with DefaultAngle.
func (p Pose) Resolve() JointAngles {
	return JointAngles{
		LeftArm:  orDefault(p.LeftArm),
		RightArm: orDefault(p.RightArm),
		LeftLeg:  orDefault(p.LeftLeg),
		RightLeg: orDefault(p.RightLeg),
	}
}

// PoseOf returns a fully specified Pose for a.
func PoseOf(a JointAngles) Pose {
	return Pose{LeftArm: &a.LeftArm, RightArm: &a.RightArm, LeftLeg: &a.LeftLeg, RightLeg: &a.RightLeg}
}

func orDefault(v *float64) float64 {
	if v == nil {
		return DefaultAngle
	}
	return *v
}
