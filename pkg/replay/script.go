package replay

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stickfigure/pkg/errors"
	"github.com/matzehuels/stickfigure/pkg/figure"
)

// Kind is a pointer event kind.
type Kind string

const (
	Press   Kind = "press"
	Move    Kind = "move"
	Release Kind = "release"
	Leave   Kind = "leave"
)

// Tool names accepted in scripts.
const (
	ToolTemplate  = "template"
	ToolAnimation = "animation"
)

// Anchor is an explicit drag start point.
type Anchor struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

// Step is one scripted pointer event.
type Step struct {
	Kind Kind    `json:"kind" toml:"kind"`
	X    float64 `json:"x" toml:"x"`
	Y    float64 `json:"y" toml:"y"`
	Drag *Anchor `json:"drag,omitempty" toml:"drag,omitempty"`
	Gate *bool   `json:"gate,omitempty" toml:"gate,omitempty"`
}

// Script is a replayable tool session.
type Script struct {
	Tool  string      `json:"tool,omitempty" toml:"tool,omitempty"`
	Color string      `json:"color,omitempty" toml:"color,omitempty"`
	Pose  figure.Pose `json:"pose" toml:"pose"`
	// To is the second keyframe of the animation tool.
	To    figure.Pose `json:"to" toml:"to"`
	Steps []Step      `json:"steps" toml:"step"`
}

// Validate checks the tool name, color, pose angles and steps. Every
// number in a script must be finite.
func (s *Script) Validate() error {
	switch s.Tool {
	case "", ToolTemplate, ToolAnimation:
	default:
		return errors.New(errors.ErrCodeInvalidScript, "unknown tool %q", s.Tool)
	}
	if s.Color != "" {
		if err := errors.ValidateColor(s.Color); err != nil {
			return err
		}
	}
	for name, p := range map[string]figure.Pose{"pose": s.Pose, "to": s.To} {
		if err := validatePose(name, p); err != nil {
			return err
		}
	}
	for i, st := range s.Steps {
		switch st.Kind {
		case Press, Move, Release, Leave:
		default:
			return errors.New(errors.ErrCodeInvalidEvent, "step %d: unknown event kind %q", i, st.Kind)
		}
		if !finite(st.X) || !finite(st.Y) {
			return errors.New(errors.ErrCodeInvalidScript, "step %d: position must be finite, got (%v, %v)", i, st.X, st.Y)
		}
		if d := st.Drag; d != nil && (!finite(d.X) || !finite(d.Y)) {
			return errors.New(errors.ErrCodeInvalidScript, "step %d: drag anchor must be finite, got (%v, %v)", i, d.X, d.Y)
		}
	}
	return nil
}

func validatePose(name string, p figure.Pose) error {
	a := p.Resolve()
	for _, j := range []struct {
		name string
		deg  float64
	}{
		{"left_arm", a.LeftArm}, {"right_arm", a.RightArm},
		{"left_leg", a.LeftLeg}, {"right_leg", a.RightLeg},
	} {
		if err := errors.ValidateAngle(name+"."+j.name, j.deg); err != nil {
			return err
		}
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// ReadJSON decodes and validates a JSON script from r. ReadJSON does not
// close r.
func ReadJSON(r io.Reader) (*Script, error) {
	var s Script
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScript, err, "decode")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ReadTOML decodes and validates a TOML script from r.
func ReadTOML(r io.Reader) (*Script, error) {
	var s Script
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScript, err, "decode")
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidScript, "unknown key %q", keys[0].String())
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Parse decodes data as TOML when format is "toml" and as JSON otherwise.
func Parse(data []byte, format string) (*Script, error) {
	if strings.EqualFold(format, "toml") {
		return ReadTOML(bytes.NewReader(data))
	}
	return ReadJSON(bytes.NewReader(data))
}

// Import reads a script file, choosing the decoder by extension (.toml or
// JSON for anything else).
func Import(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ReadTOML(f)
	}
	return ReadJSON(f)
}

// WriteJSON encodes s as indented JSON. The output can be read back with
// [ReadJSON].
func WriteJSON(s *Script, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode script")
	}
	return nil
}

// WriteTOML encodes s as TOML, one [[step]] table per step.
func WriteTOML(s *Script, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(s); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode script")
	}
	return nil
}

// Export writes s to path, as TOML for a .toml extension and JSON
// otherwise.
func Export(s *Script, path string) error {
	write := WriteJSON
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		write = WriteTOML
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	if err := write(s, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
