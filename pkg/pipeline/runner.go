package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stickfigure/pkg/cache"
	"github.com/matzehuels/stickfigure/pkg/canvas"
	"github.com/matzehuels/stickfigure/pkg/figure"
	"github.com/matzehuels/stickfigure/pkg/geom"
	"github.com/matzehuels/stickfigure/pkg/observability"
	"github.com/matzehuels/stickfigure/pkg/replay"
	"github.com/matzehuels/stickfigure/pkg/tool"
)

// Runner executes the pipeline with caching. It holds no per-run state, so
// one Runner may serve concurrent requests.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Stamp presses the template tool once at (opts.X, opts.Y) and renders what
// it drew.
func (r *Runner) Stamp(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	key := r.Keyer.StampKey(opts.StampKeyOpts())

	return r.execute(ctx, key, opts, func() (Scene, error) {
		anchor := geom.Pt(opts.X, opts.Y)
		layer := canvas.NewRecorder()
		host := tool.Host{
			Layers: tool.Layers{Visible: canvas.NewRecorder(), Transient: layer},
			Color:  tool.FixedColor(opts.Color),
		}
		stamp := tool.NewStamp(host, opts.Pose, tool.WithKey(SceneStamp), tool.WithLogger(r.Logger))
		stamp.Handlers().OnPress(tool.Event{ClientX: anchor.X, ClientY: anchor.Y})

		fig := figure.Compute(anchor, stamp.Angles())
		return Scene{Kind: SceneStamp, Figure: &fig, Ops: layer.Ops()}, nil
	})
}

// Replay runs script and renders the transient layer after its last step.
// opts.X, opts.Y, opts.Pose and opts.Color are ignored; the script carries
// its own.
func (r *Runner) Replay(ctx context.Context, script *replay.Script, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := script.Validate(); err != nil {
		return nil, err
	}
	var canonical bytes.Buffer
	if err := replay.WriteJSON(script, &canonical); err != nil {
		return nil, err
	}
	key := r.Keyer.ReplayKey(cache.Hash(canonical.Bytes()))

	return r.execute(ctx, key, opts, func() (Scene, error) {
		res, err := replay.Run(ctx, script, replay.WithLogger(r.Logger))
		if err != nil {
			return Scene{}, err
		}
		return Scene{Kind: SceneReplay, Ops: res.Final()}, nil
	})
}

func (r *Runner) execute(ctx context.Context, sceneKey string, opts Options, build func() (Scene, error)) (*Result, error) {
	result := &Result{SceneKey: sceneKey}

	sceneStart := time.Now()
	scene, hit, err := r.sceneWithCache(ctx, sceneKey, opts, build)
	if err != nil {
		return nil, err
	}
	result.Scene = scene
	result.Stats.SceneTime = time.Since(sceneStart)
	result.Stats.OpCount = len(scene.Ops)
	result.CacheInfo.SceneHit = hit

	r.Logger.Debug("built scene",
		"kind", scene.Kind,
		"ops", len(scene.Ops),
		"cached", hit,
		"duration", result.Stats.SceneTime)

	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, sceneKey, scene, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

func (r *Runner) sceneWithCache(ctx context.Context, key string, opts Options, build func() (Scene, error)) (Scene, bool, error) {
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var scene Scene
			if err := json.Unmarshal(data, &scene); err == nil {
				observability.Cache().OnCacheHit(ctx, "scene")
				return scene, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "scene")
	}

	scene, err := build()
	if err != nil {
		return Scene{}, false, err
	}
	if data, err := json.Marshal(scene); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLScene); err != nil {
			r.Logger.Warn("cache write failed", "key", key, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "scene", len(data))
		}
	}
	return scene, false, nil
}

// RenderWithCacheInfo renders scene in every requested format, serving from
// the cache when all formats are present.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, sceneKey string, scene Scene, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			data, hit, err := r.Cache.Get(ctx, r.Keyer.ArtifactKey(sceneKey, opts.ArtifactKeyOpts(format)))
			if err != nil || !hit {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
			return artifacts, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	rendered, err := Render(scene, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(sceneKey, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}
	return rendered, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
