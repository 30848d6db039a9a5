package render

import (
	"fmt"
	"image/color"
	"math"

	"golang.org/x/text/number"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// plotRenderer draws figures with gonum/plot.
type plotRenderer struct {
	width  vg.Length
	height vg.Length
}

// NewPlotRenderer creates the production renderer.
func NewPlotRenderer() Renderer {
	return &plotRenderer{
		width:  6 * vg.Inch,
		height: 4.5 * vg.Inch,
	}
}

func (r *plotRenderer) Render(fig Figure, path string) error {
	p := plot.New()

	if fig.Title != "" {
		p.Title.Text = fig.Title
	}
	// single-letter axis labels; the key table maps them to quantity and unit
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	if fig.LogX {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = decadeTicks{}
	} else {
		p.X.Tick.Marker = localeTicks{plot.DefaultTicks{}}
	}
	if fig.LogY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = decadeTicks{}
	} else {
		p.Y.Tick.Marker = localeTicks{plot.DefaultTicks{}}
	}
	if fig.XTicks != nil {
		p.X.Tick.Marker = fixedTicks(*fig.XTicks)
	}
	if fig.YTicks != nil {
		p.Y.Tick.Marker = fixedTicks(*fig.YTicks)
	}

	p.Add(plotter.NewGrid())

	for _, trace := range fig.Traces {
		for _, seg := range splitSeries(fig.Freqs, trace) {
			line, err := plotter.NewLine(seg)
			if err != nil {
				return fmt.Errorf("failed to build trace: %w", err)
			}
			line.LineStyle.Color = color.Black
			line.LineStyle.Width = vg.Points(1.5)
			p.Add(line)
		}
	}

	p.X.Min, p.X.Max = fig.XLim[0], fig.XLim[1]
	if fig.YLim != nil {
		p.Y.Min, p.Y.Max = fig.YLim[0], fig.YLim[1]
	}
	if fig.YLim == nil && p.Y.Min > p.Y.Max {
		// no data contributed a range (all samples undefined); pick a
		// neutral window so an empty figure still renders
		p.Y.Min, p.Y.Max = 0, 1
	}

	if err := r.annotate(p, fig); err != nil {
		return err
	}

	if err := p.Save(r.width, r.height, path); err != nil {
		return fmt.Errorf("failed to save figure %s: %w", path, err)
	}
	return nil
}

// annotate places the key-code markers. Fractional positions resolve
// against the final axis windows, so this runs after limits are fixed.
func (r *plotRenderer) annotate(p *plot.Plot, fig Figure) error {
	if len(fig.Annotations) == 0 {
		return nil
	}

	xys := make(plotter.XYs, 0, len(fig.Annotations))
	texts := make([]string, 0, len(fig.Annotations))
	for _, a := range fig.Annotations {
		x, y := a.Pos.resolve(p.X.Min, p.X.Max, fig.LogX, p.Y.Min, p.Y.Max, fig.LogY)
		xys = append(xys, plotter.XY{X: x, Y: y})
		text := a.Text
		switch {
		case a.Arrow > 0:
			text += " →"
		case a.Arrow < 0:
			text = "← " + text
		}
		texts = append(texts, text)
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return fmt.Errorf("failed to build annotations: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Color = color.Gray{Y: 0x80}
		labels.TextStyle[i].Font.Size = vg.Points(14)
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
	}
	p.Add(labels)
	return nil
}

// splitSeries turns a sampled trace into contiguous line segments, breaking
// at NaN samples so undefined regions render as gaps.
func splitSeries(freqs, vals []float64) []plotter.XYs {
	var out []plotter.XYs
	var cur plotter.XYs
	for i, v := range vals {
		if math.IsNaN(v) {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: freqs[i], Y: v})
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// decadeTicks marks powers of ten with plain numeric labels (1, 10, 100,
// 1000) instead of exponent notation, with unlabeled minor ticks between.
type decadeTicks struct{}

func (decadeTicks) Ticks(min, max float64) []plot.Tick {
	if min <= 0 || max <= min {
		return nil
	}
	var ticks []plot.Tick
	lo := math.Floor(math.Log10(min))
	hi := math.Ceil(math.Log10(max))
	for e := lo; e <= hi; e++ {
		dec := math.Pow(10, e)
		if dec >= min && dec <= max {
			ticks = append(ticks, plot.Tick{Value: dec, Label: formatTick(dec)})
		}
		for m := 2.0; m < 10; m++ {
			if v := m * dec; v > min && v < max {
				ticks = append(ticks, plot.Tick{Value: v})
			}
		}
	}
	return ticks
}

// localeTicks reformats an inner ticker's labels with the configured
// number locale.
type localeTicks struct {
	inner plot.Ticker
}

func (t localeTicks) Ticks(min, max float64) []plot.Tick {
	ticks := t.inner.Ticks(min, max)
	for i, tick := range ticks {
		if tick.Label != "" {
			ticks[i].Label = formatTick(tick.Value)
		}
	}
	return ticks
}

// fixedTicks is an explicit tick override from the caller.
type fixedTicks TickSet

func (t fixedTicks) Ticks(min, max float64) []plot.Tick {
	ticks := make([]plot.Tick, 0, len(t.Values))
	for i, v := range t.Values {
		if v < min || v > max {
			continue
		}
		label := formatTick(v)
		if i < len(t.Labels) {
			label = t.Labels[i]
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: label})
	}
	return ticks
}

func formatTick(v float64) string {
	return prn.Sprintf("%v", number.Decimal(v))
}
