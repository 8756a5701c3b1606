package tool

import (
	"github.com/matzehuels/stickfigure/pkg/canvas"
	"github.com/matzehuels/stickfigure/pkg/geom"
)

// Event is a raw pointer event as the host receives it, in client
// (viewport) coordinates.
type Event struct {
	ClientX float64 `json:"client_x"`
	ClientY float64 `json:"client_y"`
}

// DragAnchor is the canvas position where the current drag started. The
// host owns it and passes it to OnMove while a drag is in progress.
type DragAnchor struct {
	StartX float64 `json:"start_x"`
	StartY float64 `json:"start_y"`
}

// PointerMapper maps a raw event to canvas-local coordinates.
type PointerMapper interface {
	CanvasPoint(e Event) geom.Point
}

// PointerMapperFunc adapts a function to PointerMapper.
type PointerMapperFunc func(e Event) geom.Point

func (f PointerMapperFunc) CanvasPoint(e Event) geom.Point { return f(e) }

// ClientCoords uses client coordinates as canvas coordinates, for canvases
// placed at the viewport origin.
var ClientCoords = PointerMapperFunc(func(e Event) geom.Point {
	return geom.Pt(e.ClientX, e.ClientY)
})

// Offset returns a mapper for a canvas whose top-left corner sits at
// (left, top) in the viewport.
func Offset(left, top float64) PointerMapper {
	return PointerMapperFunc(func(e Event) geom.Point {
		return geom.Pt(e.ClientX-left, e.ClientY-top)
	})
}

// Gate reports whether the tool may commit a stamp right now.
type Gate interface {
	CanDraw() bool
}

// GateFunc adapts a function to Gate.
type GateFunc func() bool

func (f GateFunc) CanDraw() bool { return f() }

// AlwaysOpen is a Gate that always permits drawing.
var AlwaysOpen = GateFunc(func() bool { return true })

// ColorSource supplies the host's current drawing color.
type ColorSource interface {
	Color() string
}

// FixedColor is a ColorSource that always returns itself.
type FixedColor string

func (c FixedColor) Color() string { return string(c) }

// History records committed drawings for undo. Tools hold a reference so
// the host can reach it through the tool, but never call it.
type History interface {
	Record(visible canvas.Layer)
}

// Layers is the pair of surfaces a tool draws against.
type Layers struct {
	// Visible is the committed drawing.
	Visible canvas.Layer
	// Transient is the overlay cleared and redrawn on every event.
	Transient canvas.Layer
}

// Host bundles the collaborators a tool reads from. Nil Pointer, Gate and
// Color fall back to ClientCoords, AlwaysOpen and canvas.DefaultColor.
type Host struct {
	Layers  Layers
	History History
	Pointer PointerMapper
	Gate    Gate
	Color   ColorSource
}

func (h Host) withDefaults() Host {
	if h.Pointer == nil {
		h.Pointer = ClientCoords
	}
	if h.Gate == nil {
		h.Gate = AlwaysOpen
	}
	if h.Color == nil {
		h.Color = FixedColor(canvas.DefaultColor)
	}
	return h
}
