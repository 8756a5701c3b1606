// Package config loads stickfigure settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/stickfigure/config.toml (falling back to
// ~/.config/stickfigure/config.toml). A missing file is not an error: [Load]
// returns [Default]. Command-line flags override whatever the file sets.
//
//	[tool]
//	color = "#2c3e50"
//
//	[pose]
//	left_arm = 30.0
//	right_leg = 10.0
//
//	[canvas]
//	width = 400
//	height = 400
//	background = "white"
//
//	[cache]
//	ttl = "24h"
//	redis_url = "redis://localhost:6379/0"
//
//	[server]
//	addr = ":8080"
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stickfigure/pkg/canvas"
	"github.com/matzehuels/stickfigure/pkg/errors"
	"github.com/matzehuels/stickfigure/pkg/figure"
)

// AppName names the config and cache directories.
const AppName = "stickfigure"

// Default values.
const (
	DefaultScale    = 1.0
	DefaultCacheTTL = 24 * time.Hour
	DefaultAddr     = ":8080"
)

// Config is the full settings file.
type Config struct {
	Tool   Tool        `toml:"tool"`
	Pose   figure.Pose `toml:"pose"`
	Canvas Canvas      `toml:"canvas"`
	Cache  Cache       `toml:"cache"`
	Server Server      `toml:"server"`
}

// Tool holds drawing tool settings.
type Tool struct {
	Color string `toml:"color"`
	Key   string `toml:"key,omitempty"`
}

// Canvas holds output surface settings.
type Canvas struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	Scale      float64 `toml:"scale"`
	Background string  `toml:"background,omitempty"`
}

// Cache holds artifact cache settings. RedisURL selects the Redis backend
// when set; otherwise Dir (or the XDG cache dir) is used.
type Cache struct {
	Dir      string   `toml:"dir,omitempty"`
	TTL      Duration `toml:"ttl"`
	RedisURL string   `toml:"redis_url,omitempty"`
}

// Server holds HTTP server settings.
type Server struct {
	Addr string `toml:"addr"`
}

// Duration is a time.Duration read from a TOML string such as "24h".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Tool: Tool{Color: canvas.DefaultColor},
		Pose: figure.PoseOf(figure.DefaultAngles()),
		Canvas: Canvas{
			Width:  canvas.DefaultWidth,
			Height: canvas.DefaultHeight,
			Scale:  DefaultScale,
		},
		Cache:  Cache{TTL: Duration{DefaultCacheTTL}},
		Server: Server{Addr: DefaultAddr},
	}
}

// Validate checks values a user may have mistyped.
func (c Config) Validate() error {
	if err := errors.ValidateColor(c.Tool.Color); err != nil {
		return err
	}
	if c.Canvas.Background != "" {
		if err := errors.ValidateColor(c.Canvas.Background); err != nil {
			return err
		}
	}
	if c.Tool.Key != "" {
		if err := errors.ValidateToolKey(c.Tool.Key); err != nil {
			return err
		}
	}
	if err := errors.ValidateCanvasSize(c.Canvas.Width, c.Canvas.Height); err != nil {
		return err
	}
	if c.Canvas.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas scale must be positive, got %v", c.Canvas.Scale)
	}
	a := c.Pose.Resolve()
	for name, v := range map[string]float64{
		"left_arm": a.LeftArm, "right_arm": a.RightArm,
		"left_leg": a.LeftLeg, "right_leg": a.RightLeg,
	} {
		if err := errors.ValidateAngle(name, v); err != nil {
			return err
		}
	}
	return nil
}

// Path returns the config file location.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// CacheDir returns the default file cache directory.
func CacheDir() (string, error) {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}

// Load reads the config at path on top of [Default]. An empty path means
// [Path]. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		p, err := Path()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %q", path, keys[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
	}
	return cfg, nil
}

// Encode renders c as TOML.
func (c Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}
	return buf.Bytes(), nil
}

// Save writes c to path, creating parent directories.
func Save(c Config, path string) error {
	data, err := c.Encode()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}
