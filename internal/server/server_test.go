package server

import (
	"context"
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stickfigure/pkg/cache"
	"github.com/matzehuels/stickfigure/pkg/errors"
	"github.com/matzehuels/stickfigure/pkg/observability"
	"github.com/matzehuels/stickfigure/pkg/pipeline"
)

func newTestServer(t *testing.T, opts ...Option) *httptest.Server {
	t.Helper()
	logger := log.New(io.Discard)
	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
	srv := httptest.NewServer(New(runner, append([]Option{WithLogger(logger)}, opts...)...))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp, string(body)
}

func decodeError(t *testing.T, body string) errorBody {
	t.Helper()
	var e errorBody
	if err := json.Unmarshal([]byte(body), &e); err != nil {
		t.Fatalf("decode error body %q: %v", body, err)
	}
	return e
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	resp, body := get(t, srv.URL+"/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(body, `"ok"`) {
		t.Errorf("body = %q", body)
	}
}

func TestStampSVG(t *testing.T) {
	srv := newTestServer(t)
	resp, body := get(t, srv.URL+"/v1/stamp.svg?x=100&y=100&color=red&left_arm=90")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.HasPrefix(body, "<svg") || !strings.Contains(body, `fill="red"`) {
		t.Errorf("unexpected svg: %s", body)
	}
}

func TestStampPNG(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/v1/stamp.png?width=200&height=300")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	img, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 300 {
		t.Errorf("bounds = %v, want 200x300", b)
	}
}

func TestStampJSONUsesDefaults(t *testing.T) {
	srv := newTestServer(t, WithDefaults(pipeline.Options{Color: "green"}))
	resp, body := get(t, srv.URL+"/v1/stamp.json")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, body)
	}
	var scene pipeline.Scene
	if err := json.Unmarshal([]byte(body), &scene); err != nil {
		t.Fatalf("decode scene: %v", err)
	}
	if scene.Figure == nil {
		t.Fatal("scene has no figure")
	}
	want := pipeline.DefaultAnchor(pipeline.DefaultWidth, pipeline.DefaultHeight)
	if scene.Figure.Anchor != want {
		t.Errorf("anchor = %v, want %v", scene.Figure.Anchor, want)
	}
	if !strings.Contains(body, `"green"`) {
		t.Errorf("default color not applied: %s", body)
	}
}

func TestStampEmptyAnchorUsesDefault(t *testing.T) {
	srv := newTestServer(t)
	resp, body := get(t, srv.URL+"/v1/stamp.json?x=&y=")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, body)
	}
	var scene pipeline.Scene
	if err := json.Unmarshal([]byte(body), &scene); err != nil {
		t.Fatalf("decode scene: %v", err)
	}
	want := pipeline.DefaultAnchor(pipeline.DefaultWidth, pipeline.DefaultHeight)
	if scene.Figure == nil || scene.Figure.Anchor != want {
		t.Errorf("anchor = %+v, want %v", scene.Figure, want)
	}
}

func TestStampErrors(t *testing.T) {
	srv := newTestServer(t)
	tests := []struct {
		name   string
		path   string
		status int
		code   errors.Code
	}{
		{"unknown format", "/v1/stamp.gif", http.StatusBadRequest, errors.ErrCodeInvalidFormat},
		{"bad number", "/v1/stamp.svg?x=abc", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"bad color", "/v1/stamp.svg?color=notacolor", http.StatusBadRequest, errors.ErrCodeInvalidColor},
		{"bad angle", "/v1/stamp.svg?left_leg=NaN", http.StatusBadRequest, errors.ErrCodeInvalidAngle},
		{"bad scale", "/v1/stamp.svg?scale=-1", http.StatusBadRequest, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, srv.URL+tt.path)
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d (%s)", resp.StatusCode, tt.status, body)
			}
			if got := decodeError(t, body).Code; got != tt.code {
				t.Errorf("code = %s, want %s", got, tt.code)
			}
		})
	}
}

const replayBody = `{
  "tool": "template",
  "color": "blue",
  "steps": [
    {"kind": "press", "x": 100, "y": 100},
    {"kind": "move", "x": 130, "y": 140}
  ]
}`

func TestReplay(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Post(srv.URL+"/v1/replay", "application/json", strings.NewReader(replayBody))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, body)
	}
	if !strings.Contains(string(body), "A 50 50") {
		t.Errorf("expected drag circle of radius 50 in %s", body)
	}
}

func TestReplayInvalidScript(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Post(srv.URL+"/v1/replay?format=json", "application/json",
		strings.NewReader(`{"tool": "template", "steps": [{"kind": "hover"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, body)
	}
	if got := decodeError(t, string(body)).Code; got != errors.ErrCodeInvalidEvent {
		t.Errorf("code = %s, want %s", got, errors.ErrCodeInvalidEvent)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code errors.Code
		want int
	}{
		{errors.ErrCodeInvalidScript, http.StatusBadRequest},
		{errors.ErrCodeToolNotFound, http.StatusNotFound},
		{errors.ErrCodeUnsupported, http.StatusNotImplemented},
		{errors.ErrCodeInternal, http.StatusInternalServerError},
		{"", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.code); got != tt.want {
			t.Errorf("statusFor(%q) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

type recordingHTTPHooks struct {
	observability.NoopHTTPHooks
	mu       sync.Mutex
	statuses []int
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.statuses = append(h.statuses, status)
}

func TestHTTPHooks(t *testing.T) {
	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	t.Cleanup(observability.Reset)

	srv := newTestServer(t)
	get(t, srv.URL+"/healthz")
	get(t, srv.URL+"/v1/stamp.gif")

	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	if len(hooks.statuses) != 2 || hooks.statuses[0] != 200 || hooks.statuses[1] != 400 {
		t.Errorf("statuses = %v, want [200 400]", hooks.statuses)
	}
}

func TestListenAndServeShutdown(t *testing.T) {
	runner := pipeline.NewRunner(cache.NewNullCache(), nil, log.New(io.Discard))
	s := New(runner, WithLogger(log.New(io.Discard)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, "127.0.0.1:0") }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
