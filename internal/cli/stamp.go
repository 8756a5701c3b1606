package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stickfigure/pkg/pipeline"
)

// stampCommand creates the stamp command.
func (c *CLI) stampCommand() *cobra.Command {
	var (
		render renderFlags
		pose   poseFlags
		x, y   float64
		color  string
	)

	cmd := &cobra.Command{
		Use:   "stamp",
		Short: "Render one posed stick figure",
		Long: `Stamp a stick figure the way the template tool does on press and write it
as SVG, PNG or JSON.

The anchor (--x, --y) is the top-center of the torso. Angles are degrees
measured from straight down; positive values swing each limb outward.`,
		Example: `  stickfigure stamp -o figure.svg
  stickfigure stamp --left-arm 150 --right-arm 150 -f svg,png -o cheer
  stickfigure stamp --color tomato --background white --scale 2 -f png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{
				Pose:  pose.pose(cmd, c.Config.Pose),
				Color: c.Config.Tool.Color,
			}
			if color != "" {
				opts.Color = color
			}
			render.apply(c, &opts)

			anchor := pipeline.DefaultAnchor(opts.Width, opts.Height)
			opts.X, opts.Y = anchor.X, anchor.Y
			if cmd.Flags().Changed("x") {
				opts.X = x
			}
			if cmd.Flags().Changed("y") {
				opts.Y = y
			}

			return c.runStamp(cmd, opts, render)
		},
	}

	cmd.Flags().Float64Var(&x, "x", 0, "anchor x (default canvas center)")
	cmd.Flags().Float64Var(&y, "y", 0, "anchor y (default centers the figure)")
	cmd.Flags().StringVar(&color, "color", "", "stroke and fill color (default from config)")
	pose.register(cmd)
	render.register(cmd)

	return cmd
}

func (c *CLI) runStamp(cmd *cobra.Command, opts pipeline.Options, render renderFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner, err := c.newRunner(ctx, render.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	res, err := runner.Stamp(ctx, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Stamped figure at (%g, %g)", opts.X, opts.Y))

	paths, err := writeArtifacts(res.Artifacts, render.output, "figure")
	if err != nil {
		return err
	}

	printSuccess("Stamped %s", StyleHighlight.Render(fmt.Sprintf("(%g, %g)", opts.X, opts.Y)))
	for _, p := range paths {
		printFile(p)
	}
	printSceneStats(res.Stats.OpCount, res.CacheInfo.SceneHit, res.CacheInfo.RenderHit)
	printNextStep("Tune the pose interactively", "stickfigure pose --save")
	return nil
}
