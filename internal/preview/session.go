// Package preview hosts the template tool in a desktop window.
//
// [Session] is the host: it owns the visible and transient layers, the
// drag anchor, the drawing gate and the undo history, and forwards pointer
// events to the tool. [Game] adapts a Session to ebiten.
//
// A stamp is committed as soon as the tool has drawn it: the transient
// layer is replayed onto the visible one and the visible layer is recorded
// in the history. Moving the pointer afterwards only redraws the overlay.
package preview

import (
	"image"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stickfigure/pkg/canvas"
	"github.com/matzehuels/stickfigure/pkg/figure"
	"github.com/matzehuels/stickfigure/pkg/replay"
	"github.com/matzehuels/stickfigure/pkg/tool"
)

// Options configures a Session.
type Options struct {
	Width, Height int
	Pose          figure.Pose
	Color         string

	// Record keeps every pointer event so Script can export the session.
	Record bool

	Logger *log.Logger
}

// surface is a layer painted on screen and recorded at the same time.
type surface struct {
	rec    *canvas.Recorder
	raster *canvas.Raster
	layer  canvas.Layer
}

func newSurface(w, h int) *surface {
	s := &surface{rec: canvas.NewRecorder(), raster: canvas.NewRaster(w, h)}
	s.layer = canvas.Tee(s.rec, s.raster)
	return s
}

// Session is the drawing host behind the preview window.
type Session struct {
	width, height int

	stamp     *tool.Stamp
	handlers  tool.Handlers
	visible   *surface
	transient *surface
	history   *history

	locked bool
	drag   *tool.DragAnchor
	inside bool
	dirty  bool

	script *replay.Script
	logger *log.Logger
}

// NewSession creates a host with empty layers and a template tool.
func NewSession(opts Options) *Session {
	if opts.Color == "" {
		opts.Color = canvas.DefaultColor
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	s := &Session{
		width:     opts.Width,
		height:    opts.Height,
		visible:   newSurface(opts.Width, opts.Height),
		transient: newSurface(opts.Width, opts.Height),
		logger:    opts.Logger,
		dirty:     true,
	}
	s.history = &history{}
	s.stamp = tool.NewStamp(tool.Host{
		Layers:  tool.Layers{Visible: s.visible.layer, Transient: s.transient.layer},
		History: s.history,
		Pointer: tool.ClientCoords,
		Gate:    tool.GateFunc(func() bool { return !s.locked }),
		Color:   tool.FixedColor(opts.Color),
	}, opts.Pose, tool.WithLogger(opts.Logger))
	s.handlers = s.stamp.Handlers()

	if opts.Record {
		s.script = &replay.Script{
			Tool:  replay.ToolTemplate,
			Color: opts.Color,
			Pose:  opts.Pose,
		}
	}
	return s
}

// =============================================================================
// Pointer events
// =============================================================================

// Press stamps a figure at (x, y) if the gate is open and starts a drag.
func (s *Session) Press(x, y float64) {
	s.inside = true
	s.record(replay.Press, x, y)
	s.handlers.OnPress(tool.Event{ClientX: x, ClientY: y})
	s.drag = &tool.DragAnchor{StartX: x, StartY: y}

	if s.Open() && len(s.transient.rec.Ops()) > 0 {
		s.commit()
	}
	s.dirty = true
}

// Move updates the overlay. Positions outside the canvas count as leaving
// it.
func (s *Session) Move(x, y float64) {
	if !s.contains(x, y) {
		if s.inside {
			s.Leave()
		}
		return
	}
	s.inside = true
	s.record(replay.Move, x, y)
	s.handlers.OnMove(tool.Event{ClientX: x, ClientY: y}, s.drag)
	s.dirty = true
}

// Release ends the current drag.
func (s *Session) Release(x, y float64) {
	s.record(replay.Release, x, y)
	s.handlers.OnRelease(tool.Event{ClientX: x, ClientY: y})
	s.drag = nil
}

// Leave clears the overlay and drops any drag in progress.
func (s *Session) Leave() {
	s.record(replay.Leave, 0, 0)
	s.handlers.OnLeave(tool.Event{})
	s.drag = nil
	s.inside = false
	s.dirty = true
}

func (s *Session) contains(x, y float64) bool {
	return x >= 0 && y >= 0 && x < float64(s.width) && y < float64(s.height)
}

// commit copies the freshly stamped figure onto the visible layer.
func (s *Session) commit() {
	canvas.Replay(s.visible.layer, s.transient.rec.Ops())
	s.stamp.History().Record(s.visible.rec)
	s.logger.Debug("committed stamp", "stamps", s.history.Len())
}

func (s *Session) record(kind replay.Kind, x, y float64) {
	if s.script == nil {
		return
	}
	open := !s.locked
	s.script.Steps = append(s.script.Steps, replay.Step{Kind: kind, X: x, Y: y, Gate: &open})
}

// =============================================================================
// Host controls
// =============================================================================

// ToggleGate locks or unlocks stamping and reports whether stamping is now
// allowed.
func (s *Session) ToggleGate() bool {
	s.locked = !s.locked
	return !s.locked
}

// Open reports whether stamping is allowed.
func (s *Session) Open() bool { return !s.locked }

// Undo removes the most recent stamp. It reports false when there is
// nothing to undo.
func (s *Session) Undo() bool {
	ops, ok := s.history.Undo()
	if !ok {
		return false
	}
	s.visible.layer.Clear()
	canvas.Replay(s.visible.layer, ops)
	s.dirty = true
	return true
}

// Stamps returns how many stamps are on the visible layer.
func (s *Session) Stamps() int { return s.history.Len() }

// Script returns the recorded session, or nil when recording is off.
func (s *Session) Script() *replay.Script { return s.script }

// Size returns the canvas size in pixels.
func (s *Session) Size() (int, int) { return s.width, s.height }

// Visible returns the committed drawing's pixels.
func (s *Session) Visible() image.Image { return s.visible.raster.Image() }

// Transient returns the overlay's pixels.
func (s *Session) Transient() image.Image { return s.transient.raster.Image() }

// TakeDirty reports whether the layers changed since the last call.
func (s *Session) TakeDirty() bool {
	d := s.dirty
	s.dirty = false
	return d
}

// Close releases the raster surfaces.
func (s *Session) Close() error {
	err := s.visible.raster.Close()
	if terr := s.transient.raster.Close(); err == nil {
		err = terr
	}
	return err
}

// =============================================================================
// History
// =============================================================================

type opLister interface {
	Ops() []canvas.Op
}

// history keeps a snapshot of the visible layer after every commit.
type history struct {
	snapshots [][]canvas.Op
}

// Record implements tool.History. Layers that cannot list their ops are
// ignored.
func (h *history) Record(visible canvas.Layer) {
	if l, ok := visible.(opLister); ok {
		h.snapshots = append(h.snapshots, l.Ops())
	}
}

// Undo drops the latest snapshot and returns the one before it.
func (h *history) Undo() ([]canvas.Op, bool) {
	if len(h.snapshots) == 0 {
		return nil, false
	}
	h.snapshots = h.snapshots[:len(h.snapshots)-1]
	if len(h.snapshots) == 0 {
		return nil, true
	}
	return h.snapshots[len(h.snapshots)-1], true
}

func (h *history) Len() int { return len(h.snapshots) }
