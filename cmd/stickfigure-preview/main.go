// Command stickfigure-preview opens a window with the template tool.
// Clicking stamps a figure; dragging shows the drag circle.
package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stickfigure/internal/preview"
	"github.com/matzehuels/stickfigure/pkg/buildinfo"
	"github.com/matzehuels/stickfigure/pkg/canvas"
	"github.com/matzehuels/stickfigure/pkg/config"
	"github.com/matzehuels/stickfigure/pkg/replay"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var (
		configPath string
		record     string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:          "stickfigure-preview",
		Short:        "Stamp stick figures in a window",
		Long:         "Click to stamp, drag to see the drag circle. G toggles the drawing gate, U undoes, Esc quits.",
		Version:      buildinfo.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := log.NewWithOptions(os.Stderr, log.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			bg := color.Color(color.White)
			if cfg.Canvas.Background != "" {
				c, err := canvas.ParseColor(cfg.Canvas.Background)
				if err != nil {
					return err
				}
				bg = c
			}

			session := preview.NewSession(preview.Options{
				Width:  int(cfg.Canvas.Width),
				Height: int(cfg.Canvas.Height),
				Pose:   cfg.Pose,
				Color:  cfg.Tool.Color,
				Record: record != "",
				Logger: logger,
			})
			defer session.Close()

			if err := run(newGame(session, bg), buildinfo.Short()); err != nil {
				return err
			}
			logger.Info("closed", "stamps", session.Stamps())

			if record == "" {
				return nil
			}
			if err := replay.Export(session.Script(), record); err != nil {
				return err
			}
			logger.Info("recorded session", "path", record, "steps", len(session.Script().Steps))
			return nil
		},
	}

	cmd.SetVersionTemplate(buildinfo.Template())
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/stickfigure/config.toml)")
	cmd.Flags().StringVar(&record, "record", "", "write the pointer session to this replay script (.json or .toml)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	return cmd
}
