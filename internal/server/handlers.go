package server

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/stickfigure/pkg/errors"
	"github.com/matzehuels/stickfigure/pkg/pipeline"
	"github.com/matzehuels/stickfigure/pkg/replay"
)

// handleStamp renders a single figure. Every option comes from the query
// string; unset ones fall back to the server defaults.
func (s *Server) handleStamp(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, err)
		return
	}

	opts, err := s.optionsFromQuery(r.URL.Query(), format)
	if err != nil {
		s.writeError(w, err)
		return
	}
	q := r.URL.Query()
	anchor := pipeline.DefaultAnchor(opts.Width, opts.Height)
	if q.Get("x") == "" {
		opts.X = anchor.X
	}
	if q.Get("y") == "" {
		opts.Y = anchor.Y
	}

	res, err := s.runner.Stamp(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeArtifact(w, format, res.Artifacts[format], res.CacheInfo.RenderHit)
}

// handleReplay renders a replay script posted as JSON.
func (s *Server) handleReplay(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, err)
		return
	}

	script, err := replay.ReadJSON(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, err)
		return
	}
	opts, err := s.optionsFromQuery(q, format)
	if err != nil {
		s.writeError(w, err)
		return
	}

	res, err := s.runner.Replay(r.Context(), script, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeArtifact(w, format, res.Artifacts[format], res.CacheInfo.RenderHit)
}

// optionsFromQuery layers query parameters over the server defaults.
func (s *Server) optionsFromQuery(q url.Values, format string) (pipeline.Options, error) {
	d := s.defaults
	opts := pipeline.Options{
		Pose:       d.Pose,
		Color:      d.Color,
		Width:      d.Width,
		Height:     d.Height,
		Scale:      d.Scale,
		Background: d.Background,
		Formats:    []string{format},
		Logger:     s.logger,
	}

	floats := []struct {
		name string
		dst  *float64
	}{
		{"x", &opts.X},
		{"y", &opts.Y},
		{"width", &opts.Width},
		{"height", &opts.Height},
		{"scale", &opts.Scale},
	}
	for _, f := range floats {
		if err := parseFloat(q, f.name, f.dst); err != nil {
			return opts, err
		}
	}

	joints := []struct {
		name string
		dst  **float64
	}{
		{"left_arm", &opts.Pose.LeftArm},
		{"right_arm", &opts.Pose.RightArm},
		{"left_leg", &opts.Pose.LeftLeg},
		{"right_leg", &opts.Pose.RightLeg},
	}
	for _, j := range joints {
		if !q.Has(j.name) {
			continue
		}
		var v float64
		if err := parseFloat(q, j.name, &v); err != nil {
			return opts, err
		}
		*j.dst = &v
	}

	if v := q.Get("color"); v != "" {
		opts.Color = v
	}
	if v := q.Get("background"); v != "" {
		opts.Background = v
	}
	opts.Refresh = q.Get("refresh") == "true"

	return opts, opts.ValidateAndSetDefaults()
}

func parseFloat(q url.Values, name string, dst *float64) error {
	raw := q.Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "%s: not a number: %q", name, raw)
	}
	*dst = v
	return nil
}
