// Package figure computes and draws the articulated stick figure stamped by
// the drawing tools.
//
// A figure is fully determined by an anchor point and four joint angles. The
// anchor is the neck: the head sits on top of it and the torso hangs below
// it. Limbs are placed in polar form around the vertical axis, so an angle
// of 0 points a limb straight down and larger angles swing it outward.
//
// # Units
//
// [JointAngles] and [Pose] are in degrees, matching what a host UI exposes.
// [JointAngles.Radians] is the one place degrees become radians; the limb
// functions ([Arms], [Legs], [DrawArms], [DrawLegs]) take radians.
//
// # Drawing
//
// The Draw* functions issue primitive calls on a [canvas.Context] and never
// call BeginPath, Fill or Stroke themselves; [DrawFigure] wraps them in the
// full stamp sequence. No input is validated: NaN or infinite values flow
// through to the canvas as they are.
package figure
