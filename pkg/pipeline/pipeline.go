// Package pipeline turns a stamp or a replay script into rendered
// artifacts.
//
// It is the shared entry point for the CLI and the HTTP server: both build
// [Options], hand them to a [Runner], and write out the returned artifacts.
//
// # Stages
//
//  1. Scene: drive a drawing tool against a recording layer. A stamp
//     presses the template tool once; a replay runs a whole script.
//  2. Render: convert the recorded ops into SVG, PNG or JSON.
//
// Both stages are cached. Scenes are keyed by their inputs, artifacts by
// scene key and render settings.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Stamp(ctx, pipeline.Options{
//	    X: 200, Y: 140,
//	    Color:   "#2c3e50",
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("figure.svg", res.Artifacts["svg"], 0o644)
package pipeline

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stickfigure/pkg/cache"
	"github.com/matzehuels/stickfigure/pkg/canvas"
	"github.com/matzehuels/stickfigure/pkg/errors"
	"github.com/matzehuels/stickfigure/pkg/figure"
	"github.com/matzehuels/stickfigure/pkg/geom"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = canvas.DefaultWidth

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = canvas.DefaultHeight

	// DefaultScale is the default PNG pixel density.
	DefaultScale = 1.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// Scene kinds.
const (
	SceneStamp  = "stamp"
	SceneReplay = "replay"
)

// DefaultAnchor returns an anchor that roughly centers a default-posed
// figure on a width×height canvas.
func DefaultAnchor(width, height float64) geom.Point {
	return geom.Pt(width/2, height/2-figure.Standard.TorsoHeight/2)
}

// =============================================================================
// Options
// =============================================================================

// Options configures a pipeline run. It supports JSON for API requests.
type Options struct {
	// Scene options. X and Y are the stamp anchor; replays ignore them.
	X     float64     `json:"x"`
	Y     float64     `json:"y"`
	Pose  figure.Pose `json:"pose"`
	Color string      `json:"color,omitempty"`

	// Render options
	Width      float64  `json:"width,omitempty"`
	Height     float64  `json:"height,omitempty"`
	Scale      float64  `json:"scale,omitempty"`
	Background string   `json:"background,omitempty"`
	Formats    []string `json:"formats,omitempty"`

	// Refresh bypasses cached results and overwrites them.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// Scene is what a tool left on its transient layer.
type Scene struct {
	Kind   string         `json:"kind"`
	Figure *figure.Figure `json:"figure,omitempty"`
	Ops    []canvas.Op    `json:"ops"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Scene is the recorded drawing.
	Scene Scene

	// SceneKey is the cache key of the scene.
	SceneKey string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	OpCount    int
	SceneTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	SceneHit  bool // Whether the scene came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills unset render options.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Color == "" {
		o.Color = canvas.DefaultColor
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateAndSetDefaults applies defaults and checks every field a user can
// set. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()

	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := errors.ValidateColor(o.Color); err != nil {
		return err
	}
	if o.Background != "" {
		if err := errors.ValidateColor(o.Background); err != nil {
			return err
		}
	}
	if err := errors.ValidateCanvasSize(o.Width, o.Height); err != nil {
		return err
	}
	if !(o.Scale > 0) {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %v", o.Scale)
	}
	if err := errors.ValidateCanvasSize(o.Width*o.Scale, o.Height*o.Scale); err != nil {
		return err
	}
	if !finite(o.X) || !finite(o.Y) {
		return errors.New(errors.ErrCodeInvalidInput, "anchor must be finite, got (%v, %v)", o.X, o.Y)
	}
	a := o.Angles()
	for name, v := range map[string]float64{
		"left_arm": a.LeftArm, "right_arm": a.RightArm,
		"left_leg": a.LeftLeg, "right_leg": a.RightLeg,
	} {
		if err := errors.ValidateAngle(name, v); err != nil {
			return err
		}
	}

	o.validated = true
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Angles resolves the pose to concrete joint angles in degrees.
func (o *Options) Angles() figure.JointAngles {
	return o.Pose.Resolve()
}

// StampKeyOpts returns cache key options for a stamp scene.
func (o *Options) StampKeyOpts() cache.StampKeyOpts {
	a := o.Angles()
	return cache.StampKeyOpts{
		X:      o.X,
		Y:      o.Y,
		Angles: [4]float64{a.LeftArm, a.RightArm, a.LeftLeg, a.RightLeg},
		Color:  o.Color,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:     format,
		Width:      o.Width,
		Height:     o.Height,
		Scale:      o.Scale,
		Background: o.Background,
	}
}
