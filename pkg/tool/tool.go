package tool

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/stickfigure/pkg/figure"
	"github.com/matzehuels/stickfigure/pkg/geom"
)

// Icon and cursor shared by the figure tools.
const (
	figureIcon   = "panorama_fish_eye"
	figureCursor = "crosshair"
)

// Handlers are the pointer callbacks a host dispatches to. All four are
// always non-nil.
type Handlers struct {
	OnPress   func(e Event)
	OnMove    func(e Event, drag *DragAnchor)
	OnRelease func(e Event)
	OnLeave   func(e Event)
}

// Tool is what a host registry stores: display metadata plus handlers.
type Tool interface {
	Name() string
	Icon() string
	Cursor() string
	Key() string
	Handlers() Handlers
}

// Option configures a tool.
type Option func(*base)

// WithKey sets the registry key. Without it a random UUID is used.
func WithKey(key string) Option {
	return func(b *base) { b.key = key }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(b *base) { b.logger = l }
}

// base holds what every figure tool shares: metadata, the host's
// collaborators, and the geometry primitives bound to the transient layer.
type base struct {
	name   string
	key    string
	host   Host
	logger *log.Logger
}

func newBase(name string, host Host, opts []Option) base {
	b := base{name: name, host: host.withDefaults()}
	for _, opt := range opts {
		opt(&b)
	}
	if b.key == "" {
		b.key = uuid.NewString()
	}
	if b.logger == nil {
		b.logger = log.Default()
	}
	return b
}

func (b *base) Name() string   { return b.name }
func (b *base) Icon() string   { return figureIcon }
func (b *base) Cursor() string { return figureCursor }
func (b *base) Key() string    { return b.key }

// Layers returns the surfaces the host supplied.
func (b *base) Layers() Layers { return b.host.Layers }

// History returns the host's history collaborator.
func (b *base) History() History { return b.host.History }

// DrawHead adds the head for anchor to the transient layer's path.
func (b *base) DrawHead(anchor geom.Point) {
	figure.DrawHead(b.host.Layers.Transient, anchor)
}

// DrawTorso fills the torso for anchor on the transient layer.
func (b *base) DrawTorso(anchor geom.Point) {
	figure.DrawTorso(b.host.Layers.Transient, anchor)
}

// DrawArms adds both arms to the transient layer's path. Angles are radians.
func (b *base) DrawArms(anchor geom.Point, left, right float64) {
	figure.DrawArms(b.host.Layers.Transient, anchor, left, right)
}

// DrawLegs adds both legs to the transient layer's path. Angles are radians.
func (b *base) DrawLegs(anchor geom.Point, left, right float64) {
	figure.DrawLegs(b.host.Layers.Transient, anchor, left, right)
}

func noop(Event) {}
