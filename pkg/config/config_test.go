package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/stickfigure/pkg/errors"
	"github.com/matzehuels/stickfigure/pkg/figure"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Pose.Resolve() != figure.DefaultAngles() {
		t.Errorf("pose = %+v", cfg.Pose.Resolve())
	}
	if cfg.Cache.TTL.Duration != DefaultCacheTTL || cfg.Server.Addr != DefaultAddr {
		t.Errorf("cache/server = %+v %+v", cfg.Cache, cfg.Server)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Tool.Color != Default().Tool.Color {
		t.Errorf("color = %q", cfg.Tool.Color)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[tool]
color = "tomato"

[pose]
left_arm = 10.0

[canvas]
width = 640.0
height = 480.0
scale = 2.0

[cache]
ttl = "90m"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	a := cfg.Pose.Resolve()
	if a.LeftArm != 10 || a.RightArm != figure.DefaultAngle {
		t.Errorf("pose = %+v", a)
	}
	if cfg.Tool.Color != "tomato" || cfg.Canvas.Width != 640 || cfg.Canvas.Scale != 2 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Cache.TTL.Duration != 90*time.Minute {
		t.Errorf("ttl = %v", cfg.Cache.TTL)
	}
	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("addr = %q, want default", cfg.Server.Addr)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "[tool]\nbrush = 3\n"},
		{"bad color", "[tool]\ncolor = \"nocolor\"\n"},
		{"bad size", "[canvas]\nwidth = -1.0\n"},
		{"bad ttl", "[cache]\nttl = \"soon\"\n"},
		{"malformed", "[tool\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("err = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Tool.Color = "#112233"
	cfg.Cache.RedisURL = "redis://localhost:6379/1"
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Tool.Color != cfg.Tool.Color || got.Cache.RedisURL != cfg.Cache.RedisURL {
		t.Errorf("got %+v", got)
	}
	if got.Pose.Resolve() != cfg.Pose.Resolve() || got.Cache.TTL != cfg.Cache.TTL {
		t.Errorf("pose/ttl lost: %+v %v", got.Pose.Resolve(), got.Cache.TTL)
	}
}

func TestPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_CACHE_HOME", "/tmp/cache")
	if p, _ := Path(); p != filepath.Join("/tmp/cfg", AppName, "config.toml") {
		t.Errorf("Path() = %q", p)
	}
	if p, _ := CacheDir(); p != filepath.Join("/tmp/cache", AppName) {
		t.Errorf("CacheDir() = %q", p)
	}
}
