package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func withBuildInfo(t *testing.T, info *debug.BuildInfo, ok bool) {
	t.Helper()
	oldRead, oldV, oldC, oldD := readBuildInfo, Version, Commit, Date
	t.Cleanup(func() {
		readBuildInfo, Version, Commit, Date = oldRead, oldV, oldC, oldD
	})
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, ok }
	Version, Commit, Date = "dev", "none", "unknown"
}

func TestFillFromBuildInfo(t *testing.T) {
	withBuildInfo(t, &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	}, true)

	fillFromBuildInfo()
	if Version != "v0.3.0" || Commit != "abc123" || Date != "2026-01-02T03:04:05Z" {
		t.Errorf("got %s %s %s", Version, Commit, Date)
	}
}

func TestFillFromBuildInfoKeepsLdflags(t *testing.T) {
	withBuildInfo(t, &debug.BuildInfo{Main: debug.Module{Version: "v0.3.0"}}, true)
	Version = "v9.9.9"

	fillFromBuildInfo()
	if Version != "v9.9.9" {
		t.Errorf("Version = %s, want ldflags value", Version)
	}
}

func TestFillFromBuildInfoDevel(t *testing.T) {
	withBuildInfo(t, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, true)
	fillFromBuildInfo()
	if Version != "dev" {
		t.Errorf("Version = %s, want dev", Version)
	}
}

func TestTemplate(t *testing.T) {
	if !strings.Contains(Template(), "{{.Name}} version") {
		t.Errorf("Template() = %q", Template())
	}
	if !strings.HasPrefix(Short(), "stickfigure ") {
		t.Errorf("Short() = %q", Short())
	}
}
