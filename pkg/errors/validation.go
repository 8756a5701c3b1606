package errors

import (
	"math"
	"strings"
	"unicode"

	"github.com/matzehuels/stickfigure/pkg/canvas"
)

// MaxCanvasSize bounds each side of a rendered canvas, in pixels.
const MaxCanvasSize = 8192

// ValidateToolKey validates a tool registry key.
//
// Keys are looked up verbatim and show up in logs and file names, so the
// rules are conservative:
//   - No empty keys
//   - Maximum length of 64 characters
//   - No control characters or whitespace
//   - No path separators
func ValidateToolKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidKey, "tool key cannot be empty")
	}
	if len(key) > 64 {
		return New(ErrCodeInvalidKey, "tool key too long (max 64 characters)")
	}
	for _, r := range key {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidKey, "tool key contains invalid characters")
		}
	}
	if strings.ContainsAny(key, `/\`) {
		return New(ErrCodeInvalidKey, "tool key cannot contain path separators")
	}
	return nil
}

// ValidateColor checks that s is a color the canvas surfaces understand.
func ValidateColor(s string) error {
	if _, err := canvas.ParseColor(s); err != nil {
		return Wrap(ErrCodeInvalidColor, err, "invalid color %q", s)
	}
	return nil
}

// ValidateAngle rejects non-finite joint angles coming from user input.
// name identifies the limb in the message.
func ValidateAngle(name string, deg float64) error {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return New(ErrCodeInvalidAngle, "%s angle must be a finite number of degrees", name)
	}
	return nil
}

// ValidateCanvasSize checks a requested canvas size.
func ValidateCanvasSize(width, height float64) error {
	if !(width > 0 && height > 0) {
		return New(ErrCodeInvalidInput, "canvas size must be positive, got %vx%v", width, height)
	}
	if width > MaxCanvasSize || height > MaxCanvasSize {
		return New(ErrCodeInvalidInput, "canvas too large (max %dx%d)", MaxCanvasSize, MaxCanvasSize)
	}
	return nil
}
