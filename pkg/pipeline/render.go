package pipeline

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/matzehuels/stickfigure/pkg/canvas"
	"github.com/matzehuels/stickfigure/pkg/errors"
)

// Render generates output artifacts for scene in the requested formats.
func Render(scene Scene, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = renderSVG(scene, opts)
		case FormatPNG:
			data, err = renderPNG(scene, opts)
		case FormatJSON:
			data, err = json.MarshalIndent(scene, "", "  ")
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func renderSVG(scene Scene, opts Options) []byte {
	svgOpts := []canvas.SVGOption{canvas.WithSize(opts.Width, opts.Height)}
	if opts.Background != "" {
		svgOpts = append(svgOpts, canvas.WithBackground(opts.Background))
	}
	return canvas.RenderSVG(scene.Ops, svgOpts...)
}

// renderPNG replays the scene into a raster sized width×height×scale.
func renderPNG(scene Scene, opts Options) ([]byte, error) {
	var rasterOpts []canvas.RasterOption
	if opts.Background != "" {
		bg, err := canvas.ParseColor(opts.Background)
		if err != nil {
			return nil, err
		}
		rasterOpts = append(rasterOpts, canvas.WithRasterBackground(bg))
	}

	w := int(math.Ceil(opts.Width * opts.Scale))
	h := int(math.Ceil(opts.Height * opts.Scale))
	r := canvas.NewRaster(w, h, rasterOpts...)
	defer r.Close()

	canvas.Replay(r, canvas.Scale(scene.Ops, opts.Scale))
	if err := r.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
