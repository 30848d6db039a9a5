// Package standards holds the per-standard publication drivers: the
// hard-coded figure sequences, axis windows and annotation coordinates of
// each document. This is configuration data; the engineering logic lives in
// pkg/limits and internal/publish.
package standards

import (
	"fmt"

	"github.com/openplots/limitgraph/internal/config"
	"github.com/openplots/limitgraph/internal/publish"
	"github.com/openplots/limitgraph/internal/render"
	"github.com/openplots/limitgraph/pkg/limits"
)

// Run executes the publication run for the configured standard.
func Run(cfg *config.Config, r render.Renderer) error {
	style := publish.StyleImproved
	if cfg.Output.Style == "default" {
		style = publish.StyleDefault
	}
	ses, err := publish.NewSession(publish.Config{
		Standard:  cfg.Standard,
		OutputDir: cfg.Output.Dir,
		Format:    cfg.Output.Format,
		Style:     style,
		Renderer:  r,
	})
	if err != nil {
		return err
	}

	switch cfg.Standard {
	case "ISO 23870-3":
		err = runPart3(ses)
	case "ISO 23870-10":
		err = runPart10(ses)
	default:
		return fmt.Errorf("no driver for standard %q", cfg.Standard)
	}
	if err != nil {
		return err
	}
	return ses.Wrapup()
}

// figure pairs a catalogue entry with its plot parameters.
type figure struct {
	curve string
	opts  publish.Options
}

func plotAll(ses *publish.Session, cat *limits.Catalogue, figs []figure) error {
	for _, f := range figs {
		curve, err := cat.Get(f.curve)
		if err != nil {
			return err
		}
		if err := ses.Plot(curve, f.opts); err != nil {
			return err
		}
	}
	return nil
}

func frac(x, y float64) *render.Position {
	p := render.Frac(x, y)
	return &p
}

func data(x, y float64) *render.Position {
	p := render.Data(x, y)
	return &p
}

func span(lo, hi float64) *[2]float64 {
	return &[2]float64{lo, hi}
}
