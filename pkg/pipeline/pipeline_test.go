package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"io"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stickfigure/pkg/canvas"
	"github.com/matzehuels/stickfigure/pkg/errors"
	"github.com/matzehuels/stickfigure/pkg/figure"
	"github.com/matzehuels/stickfigure/pkg/replay"
)

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.data[key]
	return d, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	c.sets++
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memCache) Close() error { return nil }

func quietRunner(c *memCache) *Runner {
	return NewRunner(c, nil, log.New(io.Discard))
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"json", false},
		{"pdf", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	var o Options
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("zero options: %v", err)
	}
	if o.Width != DefaultWidth || o.Scale != DefaultScale || o.Color != canvas.DefaultColor {
		t.Errorf("defaults = %+v", o)
	}
	if len(o.Formats) != 1 || o.Formats[0] != FormatSVG {
		t.Errorf("formats = %v", o.Formats)
	}

	nan := math.NaN()
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"format", Options{Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"color", Options{Color: "bogus"}, errors.ErrCodeInvalidColor},
		{"background", Options{Background: "#12"}, errors.ErrCodeInvalidColor},
		{"size", Options{Width: -5}, errors.ErrCodeInvalidInput},
		{"scaled size", Options{Width: 5000, Scale: 2}, errors.ErrCodeInvalidInput},
		{"scale", Options{Scale: -1}, errors.ErrCodeInvalidInput},
		{"anchor", Options{X: math.Inf(1)}, errors.ErrCodeInvalidInput},
		{"angle", Options{Pose: figure.Pose{LeftLeg: &nan}}, errors.ErrCodeInvalidAngle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestDefaultAnchor(t *testing.T) {
	p := DefaultAnchor(400, 400)
	if p.X != 200 || p.Y != 140 {
		t.Errorf("DefaultAnchor = %v", p)
	}
}

func TestStamp(t *testing.T) {
	c := newMemCache()
	r := quietRunner(c)
	opts := Options{X: 200, Y: 140, Color: "navy", Formats: []string{FormatSVG, FormatPNG, FormatJSON}}

	res, err := r.Stamp(context.Background(), opts)
	if err != nil {
		t.Fatalf("Stamp: %v", err)
	}
	if res.CacheInfo.SceneHit || res.CacheInfo.RenderHit {
		t.Error("first run should miss")
	}
	if res.Scene.Kind != SceneStamp || res.Scene.Figure == nil || res.Stats.OpCount != 17 {
		t.Errorf("scene = %s, figure=%v, ops=%d", res.Scene.Kind, res.Scene.Figure != nil, res.Stats.OpCount)
	}
	if res.Scene.Figure.Head.Center.Y != 110 {
		t.Errorf("head = %+v", res.Scene.Figure.Head)
	}

	svg := string(res.Artifacts[FormatSVG])
	if !strings.Contains(svg, `fill="navy"`) || !strings.Contains(svg, `stroke-width="18"`) {
		t.Errorf("svg missing figure:\n%s", svg)
	}

	img, err := png.Decode(bytes.NewReader(res.Artifacts[FormatPNG]))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 400 {
		t.Errorf("png bounds = %v", b)
	}
	// center of the torso
	if _, _, _, a := img.At(200, 200).RGBA(); a == 0 {
		t.Error("torso pixel is transparent")
	}

	var scene Scene
	if err := json.Unmarshal(res.Artifacts[FormatJSON], &scene); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(scene.Ops) != 17 {
		t.Errorf("json ops = %d", len(scene.Ops))
	}

	again, err := r.Stamp(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !again.CacheInfo.SceneHit || !again.CacheInfo.RenderHit {
		t.Errorf("second run cache info = %+v", again.CacheInfo)
	}
	if !bytes.Equal(again.Artifacts[FormatSVG], res.Artifacts[FormatSVG]) {
		t.Error("cached svg differs")
	}

	opts.Refresh = true
	fresh, err := r.Stamp(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if fresh.CacheInfo.SceneHit || fresh.CacheInfo.RenderHit {
		t.Error("refresh should bypass the cache")
	}
}

func TestStampScale(t *testing.T) {
	r := quietRunner(newMemCache())
	res, err := r.Stamp(context.Background(), Options{X: 50, Y: 50, Width: 100, Height: 80, Scale: 2, Formats: []string{FormatPNG}})
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(res.Artifacts[FormatPNG]))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 160 {
		t.Errorf("png bounds = %v", b)
	}
}

func TestStampDifferentPosesDoNotShareCache(t *testing.T) {
	c := newMemCache()
	r := quietRunner(c)
	a, err := r.Stamp(context.Background(), Options{X: 10, Y: 10})
	if err != nil {
		t.Fatal(err)
	}
	deg := 0.0
	opts := Options{X: 10, Y: 10}
	opts.Pose.LeftArm = &deg
	b, err := r.Stamp(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if a.SceneKey == b.SceneKey || b.CacheInfo.SceneHit {
		t.Error("different pose reused the cached scene")
	}
}

func TestReplay(t *testing.T) {
	script, err := replay.ReadJSON(strings.NewReader(`{
		"steps": [
			{"kind": "press", "x": 100, "y": 100},
			{"kind": "move", "x": 130, "y": 140}
		]
	}`))
	if err != nil {
		t.Fatal(err)
	}

	c := newMemCache()
	r := quietRunner(c)
	res, err := r.Replay(context.Background(), script, Options{Formats: []string{FormatSVG, FormatJSON}})
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if res.Scene.Kind != SceneReplay || len(res.Scene.Ops) != 3 {
		t.Fatalf("scene = %+v", res.Scene)
	}
	// drag preview circle of radius 50 around the press point
	if arc := res.Scene.Ops[1].Args; arc[0] != 100 || arc[1] != 100 || arc[2] != 50 {
		t.Errorf("arc = %v", arc)
	}
	if !strings.Contains(string(res.Artifacts[FormatSVG]), "A 50 50") {
		t.Errorf("svg:\n%s", res.Artifacts[FormatSVG])
	}

	again, err := r.Replay(context.Background(), script, Options{Formats: []string{FormatSVG, FormatJSON}})
	if err != nil {
		t.Fatal(err)
	}
	if !again.CacheInfo.SceneHit || again.SceneKey != res.SceneKey {
		t.Errorf("replay not cached: %+v", again.CacheInfo)
	}
}

func TestReplayInvalidScript(t *testing.T) {
	r := quietRunner(newMemCache())
	_, err := r.Replay(context.Background(), &replay.Script{Steps: []replay.Step{{Kind: "tap"}}}, Options{})
	if !errors.Is(err, errors.ErrCodeInvalidEvent) {
		t.Errorf("err = %v", err)
	}
}

func TestReplayNonFiniteScriptIsBadInput(t *testing.T) {
	r := quietRunner(newMemCache())
	inf := math.Inf(1)
	tests := []struct {
		name   string
		script *replay.Script
		code   errors.Code
	}{
		{"pose", &replay.Script{Pose: figure.Pose{LeftArm: &inf}, Steps: []replay.Step{{Kind: replay.Press, X: 1, Y: 1}}}, errors.ErrCodeInvalidAngle},
		{"step", &replay.Script{Steps: []replay.Step{{Kind: replay.Press, X: math.NaN(), Y: 1}}}, errors.ErrCodeInvalidScript},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Replay(context.Background(), tt.script, Options{Formats: []string{FormatSVG}})
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestRenderUnsupportedFormat(t *testing.T) {
	_, err := Render(Scene{}, Options{Formats: []string{"gif"}})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("err = %v", err)
	}
}

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	if r.Cache == nil || r.Keyer == nil || r.Logger == nil {
		t.Errorf("runner = %+v", r)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
