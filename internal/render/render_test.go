package render

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionResolve(t *testing.T) {
	tests := []struct {
		name   string
		pos    Position
		xlog   bool
		wantX  float64
		wantY  float64
	}{
		{"data coordinates pass through", Data(80, 20), true, 80, 20},
		{"fraction on linear axis", Frac(0.25, 0.5), false, 250.75, 50},
		{"fraction on log axis is geometric", Frac(0.5, 0.5), true, math.Sqrt(1000), 50},
		{"fraction corners", Frac(1, 0), false, 1000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.pos.resolve(1, 1000, tt.xlog, 0, 100, false)
			assert.InDelta(t, tt.wantX, x, 1e-9)
			assert.InDelta(t, tt.wantY, y, 1e-9)
		})
	}
}

func TestSplitSeriesBreaksAtNaN(t *testing.T) {
	nan := math.NaN()
	freqs := []float64{1, 2, 3, 4, 5, 6}
	segs := splitSeries(freqs, []float64{10, 11, nan, nan, 12, 13})
	require.Len(t, segs, 2)
	assert.Len(t, segs[0], 2)
	assert.Len(t, segs[1], 2)
	assert.Equal(t, 5.0, segs[1][0].X)

	assert.Empty(t, splitSeries(freqs, []float64{nan, nan, nan, nan, nan, nan}))
}

func TestDecadeTicks(t *testing.T) {
	ticks := decadeTicks{}.Ticks(1, 1000)

	var labeled []float64
	for _, tick := range ticks {
		if tick.Label != "" {
			labeled = append(labeled, tick.Value)
		}
	}
	assert.Equal(t, []float64{1, 10, 100, 1000}, labeled)

	// minor ticks stay unlabeled
	for _, tick := range ticks {
		if tick.Value == 50 || tick.Value == 200 {
			assert.Empty(t, tick.Label)
		}
	}
}

func TestFixedTicksDropOutOfWindow(t *testing.T) {
	ticks := fixedTicks{
		Values: []float64{1, 10, 100, 1000, 10000},
		Labels: []string{"1", "10", "100", "1k", "10k"},
	}.Ticks(1, 1000)
	require.Len(t, ticks, 4)
	assert.Equal(t, "1k", ticks[3].Label)
}

func TestLocaleTickFormatting(t *testing.T) {
	require.NoError(t, Init("de"))
	defer func() { require.NoError(t, Init("en")) }()

	assert.Equal(t, "0,5", formatTick(0.5))
}

func TestRenderWritesFigure(t *testing.T) {
	require.NoError(t, Init("en"))
	dir := t.TempDir()
	path := filepath.Join(dir, "fig.svg")

	fig := Figure{
		Freqs:  []float64{1, 10, 100, 600},
		Traces: [][]float64{{22, 22, 19, 14}},
		LogX:   true,
		XLim:   [2]float64{1, 1000},
		YLim:   &[2]float64{10, 25},
		Annotations: []Annotation{
			{Text: "(1)", Pos: Frac(0.6, 0.7)},
			{Text: "(2)", Pos: Data(80, 17.5)},
		},
	}
	require.NoError(t, NewPlotRenderer().Render(fig, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRenderEmptyCurve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.svg")

	nan := math.NaN()
	fig := Figure{
		Freqs:  []float64{1, 600},
		Traces: [][]float64{{nan, nan}},
		LogX:   true,
		XLim:   [2]float64{1, 1000},
	}
	require.NoError(t, NewPlotRenderer().Render(fig, path))
	_, err := os.Stat(path)
	require.NoError(t, err)
}
