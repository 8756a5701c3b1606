// Package canvas defines the drawing surface the tools draw on and the
// concrete surfaces shipped with stickfigure.
//
// [Context] mirrors the subset of the HTML canvas 2D API the tools use: an
// implicit current path built with MoveTo/LineTo/Arc, immediate FillRect,
// and Fill/Stroke that paint the current path without discarding it. A
// [Layer] adds Clear, which is how the host erases a transient overlay.
//
// Surfaces:
//   - [Recorder]: records every call as an [Op]. Used as the mock renderer in
//     tests and as the source for the SVG and JSON sinks.
//   - [Raster]: paints into an RGBA image with github.com/gogpu/gg.
//
// Sinks:
//
//	rec := canvas.NewRecorder()
//	figure.DrawFigure(rec, anchor, angles)
//	svg := canvas.RenderSVG(rec.Ops(), canvas.WithSize(400, 400))
package canvas
