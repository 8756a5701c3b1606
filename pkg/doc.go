// Package pkg provides the libraries behind stickfigure.
//
// # Overview
//
// Stickfigure stamps posed stick figures onto a 2D canvas. The pkg
// directory is organized bottom-up:
//
//  1. [geom] and [canvas] - points, segments and the drawing context
//  2. [figure] - body proportions, joint angles and figure geometry
//  3. [tool] - the template and animation drawing tools and their host
//  4. [replay] - scripted pointer sessions driven through a tool
//  5. [pipeline] - scene building, caching and SVG/PNG/JSON rendering
//
// Supporting packages: [cache], [config], [errors], [observability] and
// [buildinfo].
//
// # Data Flow
//
//	pointer event
//	     ↓
//	[tool] handlers (press / move / release / leave)
//	     ↓
//	[figure] geometry drawn onto a [canvas] layer
//	     ↓
//	[pipeline] renders the recorded ops as SVG, PNG or JSON
//
// # Quick Start
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil)
//	res, err := runner.Stamp(ctx, pipeline.Options{X: 200, Y: 140})
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("figure.svg", res.Artifacts["svg"], 0o644)
package pkg
