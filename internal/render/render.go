// Package render is the drawing boundary of the grapher. It takes fully
// resolved figure descriptions (sample arrays, axis modes, annotations) and
// persists them as image files; everything above it stays ignorant of how
// curves become pixels.
package render

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"gonum.org/v1/plot"
)

// TickSet overrides an axis's tick marks with explicit values and labels.
type TickSet struct {
	Values []float64
	Labels []string
}

// Annotation is one positioned text marker on a figure. Arrow draws a
// directional glyph next to the text: positive points right (larger values
// are better), negative points left.
type Annotation struct {
	Text  string
	Pos   Position
	Arrow int
}

// Position locates an annotation either in axes-fraction space (0-1 across
// the plotting area) or in data space. The two constructors are the only
// way to build one, so the coordinate space is part of the type and never
// guessed from argument shape.
type Position struct {
	x, y float64
	frac bool
}

// Frac places an annotation in axes-fraction coordinates.
func Frac(x, y float64) Position { return Position{x: x, y: y, frac: true} }

// Data places an annotation in data coordinates.
func Data(x, y float64) Position { return Position{x: x, y: y} }

// resolve maps the position into data space given the final axis windows.
// Fractions interpolate geometrically on logarithmic axes.
func (p Position) resolve(xmin, xmax float64, xlog bool, ymin, ymax float64, ylog bool) (float64, float64) {
	if !p.frac {
		return p.x, p.y
	}
	return lerp(xmin, xmax, p.x, xlog), lerp(ymin, ymax, p.y, ylog)
}

func lerp(lo, hi, t float64, log bool) float64 {
	if log {
		return lo * math.Pow(hi/lo, t)
	}
	return lo + t*(hi-lo)
}

// Figure is one fully resolved plot: per-trace sample values over a shared
// frequency axis. NaN samples are gaps, and a figure whose traces are all
// NaN still renders (empty axes).
type Figure struct {
	Title  string
	Freqs  []float64
	Traces [][]float64

	LogX, LogY bool
	XLim       [2]float64
	YLim       *[2]float64
	XTicks     *TickSet
	YTicks     *TickSet

	Annotations []Annotation
}

// Renderer persists a figure to an image file. The output format follows
// the path extension (.svg, .png, .eps, .pdf).
type Renderer interface {
	Render(fig Figure, path string) error
}

// prn formats tick labels. The published figures use continental decimal
// commas, so the driver selects the locale through Init.
var prn = message.NewPrinter(language.English)

// Init performs the one-time typography setup: tick-label locale and the
// serif document font. It is called explicitly by the driver; constructing
// catalogues or sessions has no global side effects.
func Init(locale string) error {
	tag, err := language.Parse(locale)
	if err != nil {
		return err
	}
	prn = message.NewPrinter(tag)
	plot.DefaultFont.Variant = "Serif"
	return nil
}
