package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stickfigure/pkg/pipeline"
	"github.com/matzehuels/stickfigure/pkg/replay"
)

// replayCommand creates the replay command.
func (c *CLI) replayCommand() *cobra.Command {
	var render renderFlags

	cmd := &cobra.Command{
		Use:   "replay <script>",
		Short: "Replay a recorded pointer session",
		Long: `Replay a JSON or TOML script of press, move, release and leave events through
a drawing tool and render what is left on the overlay after the last event.

Scripts can be written by hand or recorded with stickfigure-preview.`,
		Example: `  stickfigure replay session.json -f svg,png
  stickfigure replay drag.toml -o out/drag.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReplay(cmd, args[0], render)
		},
	}
	render.register(cmd)
	return cmd
}

func (c *CLI) runReplay(cmd *cobra.Command, path string, render renderFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	script, err := replay.Import(path)
	if err != nil {
		return err
	}
	logger.Infof("Loaded %d steps from %s", len(script.Steps), path)

	var opts pipeline.Options
	render.apply(c, &opts)

	runner, err := c.newRunner(ctx, render.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spin := newSpinner(ctx, "Replaying "+filepath.Base(path))
	spin.Start()
	res, err := runner.Replay(ctx, script, opts)
	spin.Stop()
	if err != nil {
		return err
	}

	fallback := strings.TrimSuffix(path, filepath.Ext(path))
	paths, err := writeArtifacts(res.Artifacts, render.output, fallback)
	if err != nil {
		return err
	}

	printSuccess("Replayed %d steps", len(script.Steps))
	for _, p := range paths {
		printFile(p)
	}
	printSceneStats(res.Stats.OpCount, res.CacheInfo.SceneHit, res.CacheInfo.RenderHit)
	if len(res.Scene.Ops) == 0 {
		printWarning("The overlay was empty after the last step")
	}
	return nil
}
