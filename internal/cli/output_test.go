package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"svg"}},
		{"png", []string{"png"}},
		{"svg, png,,json", []string{"svg", "png", "json"}},
	}
	for _, tt := range tests {
		if got := parseFormats(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, fallback, want string
	}{
		{"", "figure", "figure"},
		{"out/cheer.svg", "figure", "out/cheer"},
		{"out/cheer.png", "figure", "out/cheer"},
		{"cheer.v2", "figure", "cheer.v2"},
		{"cheer", "figure", "cheer"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output, tt.fallback); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.fallback, got, tt.want)
		}
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	artifacts := map[string][]byte{"svg": []byte("<svg/>"), "json": []byte("{}")}

	paths, err := writeArtifacts(artifacts, filepath.Join(dir, "nested", "fig"), "unused")
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}
	want := []string{filepath.Join(dir, "nested", "fig.json"), filepath.Join(dir, "nested", "fig.svg")}
	if !reflect.DeepEqual(paths, want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	data, err := os.ReadFile(want[1])
	if err != nil || string(data) != "<svg/>" {
		t.Errorf("svg content = %q, %v", data, err)
	}
}

func TestWriteArtifactsSingleExplicitPath(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "picture.image")

	paths, err := writeArtifacts(map[string][]byte{"png": {1, 2, 3}}, out, "figure")
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}
	if len(paths) != 1 || paths[0] != out {
		t.Errorf("paths = %v, want [%s]", paths, out)
	}
}
