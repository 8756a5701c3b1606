package figure

import (
	"github.com/matzehuels/stickfigure/pkg/canvas"
	"github.com/matzehuels/stickfigure/pkg/geom"
)

// DrawHead adds the head circle to the current path.
func DrawHead(ctx canvas.Context, anchor geom.Point) {
	h := Head(anchor)
	ctx.Arc(h.Center.X, h.Center.Y, h.Radius, 0, canvas.FullCircle, false)
}

// DrawTorso fills the torso rectangle with the current fill color.
func DrawTorso(ctx canvas.Context, anchor geom.Point) {
	t := Torso(anchor)
	ctx.FillRect(t.Min.X, t.Min.Y, t.Width, t.Height)
}

// DrawArms sets the arm line width and adds both arms to the current path.
// Angles are radians.
func DrawArms(ctx canvas.Context, anchor geom.Point, left, right float64) {
	ctx.SetLineWidth(Standard.ArmWidth)
	drawLimbs(ctx, Arms(anchor, left, right))
}

// DrawLegs sets the leg line width and adds both legs to the current path.
// Angles are radians.
func DrawLegs(ctx canvas.Context, anchor geom.Point, left, right float64) {
	ctx.SetLineWidth(Standard.LegWidth)
	drawLimbs(ctx, Legs(anchor, left, right))
}

func drawLimbs(ctx canvas.Context, l Limbs) {
	for _, s := range []geom.Segment{l.Left, l.Right} {
		ctx.MoveTo(s.From.X, s.From.Y)
		ctx.LineTo(s.To.X, s.To.Y)
	}
}

// DrawFigure draws a complete figure in color as a single path: head,
// torso, arms and legs, then one fill and one stroke.
//
// The stroke happens after DrawLegs, so every limb is stroked at the leg
// width.
func DrawFigure(ctx canvas.Context, anchor geom.Point, angles JointAngles, color string) {
	rad := angles.Radians()

	ctx.BeginPath()
	ctx.SetStrokeColor(color)
	ctx.SetFillColor(color)
	DrawHead(ctx, anchor)
	DrawTorso(ctx, anchor)
	DrawArms(ctx, anchor, rad.LeftArm, rad.RightArm)
	DrawLegs(ctx, anchor, rad.LeftLeg, rad.RightLeg)
	ctx.Fill()
	ctx.Stroke()
}
