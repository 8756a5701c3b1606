package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stickfigure/pkg/figure"
	"github.com/matzehuels/stickfigure/pkg/pipeline"
)

// renderFlags are the output flags shared by stamp and replay.
type renderFlags struct {
	output     string
	formats    string
	width      float64
	height     float64
	scale      float64
	background string
	noCache    bool
	refresh    bool
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().Float64Var(&f.width, "width", 0, "canvas width (default from config)")
	cmd.Flags().Float64Var(&f.height, "height", 0, "canvas height (default from config)")
	cmd.Flags().Float64Var(&f.scale, "scale", 0, "PNG pixel density (default from config)")
	cmd.Flags().StringVar(&f.background, "background", "", "background color (default transparent)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "ignore cached results and render again")
}

// apply copies render settings into opts, falling back to the config.
func (f *renderFlags) apply(c *CLI, opts *pipeline.Options) {
	opts.Formats = parseFormats(f.formats)
	opts.Width = pick(f.width, c.Config.Canvas.Width)
	opts.Height = pick(f.height, c.Config.Canvas.Height)
	opts.Scale = pick(f.scale, c.Config.Canvas.Scale)
	opts.Background = c.Config.Canvas.Background
	if f.background != "" {
		opts.Background = f.background
	}
	opts.Refresh = f.refresh
	opts.Logger = c.Logger
}

func pick(flag, fallback float64) float64 {
	if flag != 0 {
		return flag
	}
	return fallback
}

// poseFlags are the joint angle flags, in degrees.
type poseFlags struct {
	angles figure.JointAngles
}

var poseFlagNames = []string{"left-arm", "right-arm", "left-leg", "right-leg"}

func (f *poseFlags) register(cmd *cobra.Command) {
	ptrs := f.ptrs()
	for i, name := range poseFlagNames {
		cmd.Flags().Float64Var(ptrs[i], name, figure.DefaultAngle, name+" angle in degrees from straight down")
	}
}

func (f *poseFlags) ptrs() []*float64 {
	return []*float64{&f.angles.LeftArm, &f.angles.RightArm, &f.angles.LeftLeg, &f.angles.RightLeg}
}

// pose merges explicitly set flags over the configured pose.
func (f *poseFlags) pose(cmd *cobra.Command, base figure.Pose) figure.Pose {
	p := base
	targets := []**float64{&p.LeftArm, &p.RightArm, &p.LeftLeg, &p.RightLeg}
	for i, name := range poseFlagNames {
		if cmd.Flags().Changed(name) {
			v := *f.ptrs()[i]
			*targets[i] = &v
		}
	}
	return p
}

// basePath derives the output base from -o, or from fallback when -o is
// empty. A known format extension on -o is stripped.
func basePath(output, fallback string) string {
	if output == "" {
		return fallback
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeArtifacts writes each artifact to base.<format> (or exactly to
// output for a single format with an explicit path) and returns the paths
// in format order.
func writeArtifacts(artifacts map[string][]byte, output, fallback string) ([]string, error) {
	formats := make([]string, 0, len(artifacts))
	for f := range artifacts {
		formats = append(formats, f)
	}
	sort.Strings(formats)

	base := basePath(output, fallback)
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := base + "." + format
		if len(formats) == 1 && output != "" {
			path = output
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return paths, err
			}
		}
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
