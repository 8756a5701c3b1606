package figure_test

import (
	"fmt"

	"github.com/matzehuels/stickfigure/pkg/figure"
	"github.com/matzehuels/stickfigure/pkg/geom"
)

func ExampleCompute() {
	f := figure.Compute(geom.Pt(100, 200), figure.DefaultAngles())

	fmt.Printf("head  (%.0f, %.0f) r=%.0f\n", f.Head.Center.X, f.Head.Center.Y, f.Head.Radius)
	fmt.Printf("torso (%.0f, %.0f)-(%.0f, %.0f)\n", f.Torso.Min.X, f.Torso.Min.Y, f.Torso.Max().X, f.Torso.Max().Y)
	fmt.Printf("hand  (%.1f, %.1f)\n", f.Arms.Left.To.X, f.Arms.Left.To.Y)
	// Output:
	// head  (100, 170) r=30
	// torso (60, 200)-(140, 320)
	// hand  (-11.6, 256.6)
}
