package limits

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every piecewise limit was corrected so adjacent segments meet at the
// corner frequencies. Sweep every entry of every edition and check the two
// governing expressions agree at each interior breakpoint.
func TestSegmentsAgreeAtBreakpoints(t *testing.T) {
	for _, cat := range []*Catalogue{Part3(), Part10()} {
		for _, curve := range cat.Curves() {
			for _, tr := range curve.Traces {
				for i := 0; i+1 < len(tr.Segments); i++ {
					b := tr.Segments[i].Upper
					below := tr.Segments[i].Eval(b)
					above := tr.Segments[i+1].Eval(b)
					assert.InDeltaf(t, below, above, 1e-3,
						"%s/%s: segments disagree at %g MHz", cat.Standard, curve.Name, b)
				}
			}
		}
	}
}

func TestOutsideDomainIsUndefined(t *testing.T) {
	for _, curve := range Part10().Curves() {
		_, ok := curve.At(curve.FMin - 0.5)
		assert.Falsef(t, ok, "%s defined below FMin", curve.Name)
		_, ok = curve.At(curve.FMax + 0.5)
		assert.Falsef(t, ok, "%s defined above FMax", curve.Name)

		vals := curve.Over([]float64{curve.FMin - 0.5, curve.FMax + 0.5})
		for _, tr := range vals {
			require.Len(t, tr, 2)
			assert.True(t, math.IsNaN(tr[0]))
			assert.True(t, math.IsNaN(tr[1]))
		}
	}
}

func TestElementwiseMatchesScalar(t *testing.T) {
	cat := Part10()
	for _, curve := range cat.Curves() {
		freqs := append([]float64{curve.FMin - 1}, curve.Plan...)
		vals := curve.Over(freqs)
		require.Len(t, vals, curve.NumTraces())
		for ti, tr := range vals {
			require.Lenf(t, tr, len(freqs), "%s trace %d", curve.Name, ti)
			for i, f := range freqs {
				want, ok := curve.At(f)
				if !ok {
					assert.Truef(t, math.IsNaN(tr[i]), "%s at %g MHz should be undefined", curve.Name, f)
					continue
				}
				assert.Equalf(t, want[ti], tr[i], "%s trace %d at %g MHz", curve.Name, ti, f)
			}
		}
	}
}

func TestKnownValues(t *testing.T) {
	cat := Part10()
	tests := []struct {
		name string
		f    float64
		want float64
	}{
		{ConnectorIL, 100, 0.1},
		{ConnectorRL, 1, 30},
		{ConnectorRL, 600, 20},
		{ConnectorPSANEXT, 1, 77},
		{ConnectorPSANEXT, 100, 57},
		{CableRL, 5, 22},
		{CableRL, 500, 14},
		{ChannelRL, 10, 19},
		{ChannelRL, 130, 16},
		{ChannelPSAACRF, 100, 43.67},
		{ChannelPSANEXT, 1, 74},
		{ChannelLCL, 600, 25},
		{ShieldImpedance, 60, 10},
		{ShieldImpedance, 600, 70},
	}
	for _, tt := range tests {
		curve, err := cat.Get(tt.name)
		require.NoError(t, err)
		got, ok := curve.At(tt.f)
		require.Truef(t, ok, "%s undefined at %g MHz", tt.name, tt.f)
		require.Len(t, got, 1)
		assert.InDeltaf(t, tt.want, got[0], 1e-3, "%s at %g MHz", tt.name, tt.f)
	}
}

func TestAliasesNeverDrift(t *testing.T) {
	cat := Part10()
	pairs := [][2]string{
		{ConnectorLCTL, ConnectorLCL},
		{AssemblyLCTL, AssemblyLCL},
		{ChannelLCTL, ChannelLCL},
		{CableCouplingAtt2, CableCouplingAtt1},
	}
	for _, pair := range pairs {
		alias, err := cat.Get(pair[0])
		require.NoError(t, err)
		src, err := cat.Get(pair[1])
		require.NoError(t, err)

		// aliases delegate to the same trace data, not a retyped copy
		require.Len(t, alias.Traces, len(src.Traces))
		for i := range src.Traces {
			assert.Equal(t, len(src.Traces[i].Segments), len(alias.Traces[i].Segments))
		}
		for _, f := range src.Plan {
			want, okW := src.At(f)
			got, okG := alias.At(f)
			require.Equal(t, okW, okG)
			assert.Equalf(t, want, got, "%s diverges from %s at %g MHz", pair[0], pair[1], f)
		}
	}
}

// The standalone channel cable segment has no insertion loss limit at all;
// the entry must still honor the evaluation contract.
func TestNoLimitEntry(t *testing.T) {
	curve, err := Part10().Get(AssemblyIL)
	require.NoError(t, err)

	_, ok := curve.At(100)
	assert.False(t, ok)

	vals, freqs := curve.Samples()
	require.Len(t, vals, 1)
	require.Len(t, vals[0], len(freqs))
	for _, v := range vals[0] {
		assert.True(t, math.IsNaN(v))
	}
}

func TestDCShieldResistance(t *testing.T) {
	curve, err := Part10().Get(ShieldResistanceDC)
	require.NoError(t, err)
	assert.True(t, curve.DC)
	require.Equal(t, 2, curve.NumTraces())

	got, ok := curve.At(0)
	require.True(t, ok)
	assert.Equal(t, []float64{10, 1000}, got)
}

func TestLogSpace(t *testing.T) {
	plan := LogSpace(1, 600, 101)
	require.Len(t, plan, 101)
	assert.Equal(t, 1.0, plan[0])
	assert.Equal(t, 600.0, plan[100])
	for i := 1; i < len(plan); i++ {
		assert.Greater(t, plan[i], plan[i-1])
	}
	// log spacing: equal ratios between neighbors
	r := plan[1] / plan[0]
	assert.InDelta(t, r, plan[51]/plan[50], 1e-9)
}

func TestEditionsDiverge(t *testing.T) {
	p3, err := Part3().Get(ChannelPSANEXT)
	require.NoError(t, err)
	p10, err := Part10().Get(ChannelPSANEXT)
	require.NoError(t, err)

	// part 3 sweeps the sloped region densely, part 10 samples the corners
	assert.Len(t, p10.Plan, 3)
	assert.Len(t, p3.Plan, 102)

	// the formulas themselves are identical
	for _, f := range []float64{1, 50, 100, 300, 600} {
		want, _ := p10.At(f)
		got, _ := p3.At(f)
		assert.Equal(t, want, got)
	}
}

func TestGetUnknownEntry(t *testing.T) {
	_, err := Part3().Get("no such limit")
	assert.Error(t, err)
}
