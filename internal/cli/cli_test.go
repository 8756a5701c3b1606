package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stickfigure/pkg/config"
)

func newTestCLI(t *testing.T) *CLI {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	return New(io.Discard, log.InfoLevel)
}

func execute(t *testing.T, c *CLI, args ...string) (string, error) {
	t.Helper()
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestStampCommand(t *testing.T) {
	c := newTestCLI(t)
	base := filepath.Join(t.TempDir(), "cheer")

	if _, err := execute(t, c, "stamp", "--no-cache", "--left-arm", "150", "-f", "svg,json", "-o", base); err != nil {
		t.Fatalf("stamp: %v", err)
	}
	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if !strings.HasPrefix(string(svg), "<svg") {
		t.Errorf("not an svg: %.40s", svg)
	}
	if _, err := os.Stat(base + ".json"); err != nil {
		t.Errorf("json artifact missing: %v", err)
	}
}

func TestStampCommandRejectsBadColor(t *testing.T) {
	c := newTestCLI(t)
	_, err := execute(t, c, "stamp", "--no-cache", "--color", "nope", "-o", filepath.Join(t.TempDir(), "x.svg"))
	if err == nil {
		t.Fatal("expected an error for an invalid color")
	}
}

func TestReplayCommand(t *testing.T) {
	c := newTestCLI(t)
	dir := t.TempDir()
	script := filepath.Join(dir, "drag.toml")
	body := `tool = "template"

[[step]]
kind = "press"
x = 100
y = 100

[[step]]
kind = "move"
x = 100
y = 130
`
	if err := os.WriteFile(script, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, c, "replay", "--no-cache", script); err != nil {
		t.Fatalf("replay: %v", err)
	}
	svg, err := os.ReadFile(filepath.Join(dir, "drag.svg"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(svg), "A 30 30") {
		t.Errorf("expected drag circle of radius 30: %s", svg)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	c := newTestCLI(t)
	path := filepath.Join(t.TempDir(), "config.toml")

	if _, err := execute(t, c, "--config", path, "config", "init"); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if _, err := execute(t, New(io.Discard, log.InfoLevel), "--config", path, "config", "init"); err == nil {
		t.Error("second init without --force should fail")
	}

	out, err := execute(t, New(io.Discard, log.InfoLevel), "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "[pose]") || !strings.Contains(out, "left_arm = 45.0") {
		t.Errorf("unexpected config output:\n%s", out)
	}
}

func TestCommitPosePrintsTOML(t *testing.T) {
	c := newTestCLI(t)
	cmd := c.RootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)

	angles := config.Default().Pose.Resolve()
	angles.LeftArm = 120
	if err := c.commitPose(cmd, angles, false); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "left_arm = 120") {
		t.Errorf("output = %q", out.String())
	}
}

func TestCommitPoseSaves(t *testing.T) {
	c := newTestCLI(t)
	c.configPath = filepath.Join(t.TempDir(), "config.toml")
	cmd := c.RootCommand()

	angles := config.Default().Pose.Resolve()
	angles.RightLeg = 10
	if err := c.commitPose(cmd, angles, true); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.Pose.Resolve().RightLeg; got != 10 {
		t.Errorf("saved RightLeg = %v, want 10", got)
	}
}

func TestCachePath(t *testing.T) {
	c := newTestCLI(t)
	out, err := execute(t, c, "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "stickfigure") {
		t.Errorf("cache path = %q", out)
	}
}
