package canvas

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#000", color.NRGBA{0, 0, 0, 255}, false},
		{"#f00", color.NRGBA{255, 0, 0, 255}, false},
		{"#00ff00", color.NRGBA{0, 255, 0, 255}, false},
		{"#0000ff80", color.NRGBA{0, 0, 255, 128}, false},
		{"red", color.NRGBA{255, 0, 0, 255}, false},
		{" CornflowerBlue ", color.NRGBA{100, 149, 237, 255}, false},
		{"", color.NRGBA{}, true},
		{"#12", color.NRGBA{}, true},
		{"#gggggg", color.NRGBA{}, true},
		{"notacolor", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorErrorKeepsInput(t *testing.T) {
	for _, in := range []string{"#12345g78", "#ggg", "#12345z"} {
		_, err := ParseColor(in)
		if err == nil {
			t.Fatalf("ParseColor(%q) succeeded", in)
		}
		if want := "invalid hex color " + in; err.Error() != want {
			t.Errorf("ParseColor(%q) error = %q, want %q", in, err, want)
		}
	}
}
