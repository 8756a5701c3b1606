package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/stickfigure/internal/server"
	"github.com/matzehuels/stickfigure/pkg/pipeline"
)

// serveCommand creates the HTTP server command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve stamp and replay rendering over HTTP",
		Long: `Serve renders figures on request:

  GET  /v1/stamp.svg?x=200&y=140&left_arm=90&color=navy
  POST /v1/replay?format=png   (JSON replay script as the body)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if addr == "" {
				addr = c.Config.Server.Addr
			}

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			defaults := pipeline.Options{
				Pose:       c.Config.Pose,
				Color:      c.Config.Tool.Color,
				Width:      c.Config.Canvas.Width,
				Height:     c.Config.Canvas.Height,
				Scale:      c.Config.Canvas.Scale,
				Background: c.Config.Canvas.Background,
			}
			srv := server.New(runner, server.WithLogger(c.Logger), server.WithDefaults(defaults))

			printInfo("Listening on %s", StyleHighlight.Render(addr))
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	return cmd
}
