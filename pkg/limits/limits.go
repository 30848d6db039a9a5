// Package limits holds the catalogue of cabling limit curves: piecewise
// closed-form functions of frequency with their default sampling plans.
// All frequencies are in MHz, all logarithms base 10. Values are dB, dB/m
// or Ohms depending on the quantity.
package limits

import "math"

// Expr is one closed-form expression evaluated inside a single segment.
type Expr func(f float64) float64

// Constant returns an Expr with a fixed value.
func Constant(v float64) Expr {
	return func(float64) float64 { return v }
}

// LogLine returns a + b*log10(f), the straight-line-in-log-frequency form
// most limits take.
func LogLine(a, b float64) Expr {
	return func(f float64) float64 { return a + b*math.Log10(f) }
}

// LogRef returns a + b*log10(f/ref).
func LogRef(a, b, ref float64) Expr {
	return func(f float64) float64 { return a + b*math.Log10(f/ref) }
}

// LossFit returns a*f + b*sqrt(f) + c/sqrt(f), the insertion loss fit used
// by the cable and channel limits.
func LossFit(a, b, c float64) Expr {
	return func(f float64) float64 {
		sqf := math.Sqrt(f)
		return a*f + b*sqf + c/sqf
	}
}

// Segment is one branch of a piecewise curve. It governs frequencies up to
// and including Upper; the segment below the first breakpoint starts at the
// curve's FMin. The final segment's Upper equals the curve's FMax.
type Segment struct {
	Upper float64
	Eval  Expr
}

// Trace is one plotted line of a curve. A trace with no segments has no
// defined limit anywhere in the curve's domain.
type Trace struct {
	Segments []Segment
}

// Curve is one catalogue entry: a named limit as a function of frequency.
// Most curves carry a single trace; dual-value limits (e.g. the DC shield
// resistance bounds) carry one trace per plotted line, all defined on the
// same domain.
type Curve struct {
	Name string
	// Valid domain in MHz. Outside [FMin, FMax] the limit is undefined.
	FMin float64
	FMax float64
	// Traces in plotting order.
	Traces []Trace
	// Plan is the default sampling plan: either the exact corner
	// frequencies for curves that are straight lines in log-frequency, or
	// a dense log-spaced sweep for smooth fits.
	Plan []float64
	// DC marks zero-frequency plots (resistance limits), which are
	// windowed and ticked differently by the publication pipeline.
	DC bool
}

// NumTraces reports how many lines the curve plots.
func (c *Curve) NumTraces() int { return len(c.Traces) }

// At evaluates every trace at a single frequency. ok is false when f lies
// outside the curve's domain or the curve has no defined limit there.
func (c *Curve) At(f float64) ([]float64, bool) {
	if f < c.FMin || f > c.FMax {
		return nil, false
	}
	vals := make([]float64, 0, len(c.Traces))
	for _, tr := range c.Traces {
		v, ok := tr.at(f)
		if !ok {
			return nil, false
		}
		vals = append(vals, v)
	}
	if len(vals) == 0 {
		return nil, false
	}
	return vals, true
}

// at finds the governing segment with an ordered linear scan. Segments are
// few (six at most in the catalogue), so a binary search buys nothing.
func (tr Trace) at(f float64) (float64, bool) {
	for _, seg := range tr.Segments {
		if f <= seg.Upper {
			return seg.Eval(f), true
		}
	}
	return 0, false
}

// Over evaluates every trace elementwise over freqs, preserving order and
// length. Undefined elements come back as NaN rather than an error, so an
// out-of-domain frequency renders as a gap. The result is indexed
// [trace][i].
func (c *Curve) Over(freqs []float64) [][]float64 {
	out := make([][]float64, len(c.Traces))
	for t := range out {
		out[t] = make([]float64, len(freqs))
	}
	for i, f := range freqs {
		vals, ok := c.At(f)
		for t := range out {
			if ok {
				out[t][i] = vals[t]
			} else {
				out[t][i] = math.NaN()
			}
		}
	}
	return out
}

// Samples evaluates the curve over its default sampling plan, returning the
// per-trace values and the plan frequencies.
func (c *Curve) Samples() ([][]float64, []float64) {
	return c.Over(c.Plan), c.Plan
}

// Breakpoints returns the interior corner frequencies of the curve's first
// trace, i.e. every segment boundary except the domain maximum.
func (c *Curve) Breakpoints() []float64 {
	if len(c.Traces) == 0 {
		return nil
	}
	segs := c.Traces[0].Segments
	if len(segs) < 2 {
		return nil
	}
	bps := make([]float64, 0, len(segs)-1)
	for _, seg := range segs[:len(segs)-1] {
		bps = append(bps, seg.Upper)
	}
	return bps
}

// LogSpace returns n log-spaced frequencies covering [lo, hi] inclusive.
func LogSpace(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	l0, l1 := math.Log10(lo), math.Log10(hi)
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Pow(10, l0+(l1-l0)*float64(i)/float64(n-1))
	}
	// guard against drift at the endpoints
	out[0], out[n-1] = lo, hi
	return out
}

// Corners returns the given frequencies as a sampling plan. Curves that are
// straight lines between breakpoints only need their corners sampled.
func Corners(f ...float64) []float64 { return f }
