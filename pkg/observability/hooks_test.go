package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	tl := NoopToolHooks{}
	tl.OnStamp("template", 1, 2)
	tl.OnPreview("template", "cursor", 20)
	tl.OnClear("template")

	p := NoopPipelineHooks{}
	p.OnRenderStart(ctx, []string{"svg"})
	p.OnRenderComplete(ctx, []string{"svg"}, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "artifact")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "/v1/stamp.svg")
	h.OnResponse(ctx, "GET", "/v1/stamp.svg", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Tool().(NoopToolHooks); !ok {
		t.Error("Tool() should return NoopToolHooks by default")
	}
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	custom := &testToolHooks{}
	SetToolHooks(custom)
	if Tool() != custom {
		t.Error("SetToolHooks should set custom hooks")
	}

	SetToolHooks(nil)
	if Tool() != custom {
		t.Error("SetToolHooks(nil) should keep the current hooks")
	}

	Reset()
	if _, ok := Tool().(NoopToolHooks); !ok {
		t.Error("Reset should restore NoopToolHooks")
	}
}

type testToolHooks struct {
	NoopToolHooks
	stamps int
}

func (h *testToolHooks) OnStamp(string, float64, float64) { h.stamps++ }
