package standards

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openplots/limitgraph/internal/config"
	"github.com/openplots/limitgraph/internal/render"
)

// stubRenderer records the figures it is asked to draw and leaves an empty
// file behind so the archive step has something to bundle.
type stubRenderer struct {
	figs  []render.Figure
	paths []string
}

func (r *stubRenderer) Render(fig render.Figure, path string) error {
	r.figs = append(r.figs, fig)
	r.paths = append(r.paths, path)
	return os.WriteFile(path, []byte("stub"), 0o644)
}

func testConfig(t *testing.T, standard string) *config.Config {
	t.Helper()
	return &config.Config{
		Output: config.OutputConfig{
			Dir:    t.TempDir(),
			Format: ".svg",
			Style:  "improved",
		},
		Standard: standard,
	}
}

func TestRunPart3(t *testing.T) {
	cfg := testConfig(t, "ISO 23870-3")
	r := &stubRenderer{}

	require.NoError(t, Run(cfg, r))
	require.Len(t, r.figs, 6)

	// the connector figures start after the eight reserved diagram slots
	assert.Contains(t, filepath.Base(r.paths[0]), "FIG-009")
	assert.Contains(t, filepath.Base(r.paths[5]), "FIG-014")

	_, err := os.Stat(filepath.Join(cfg.Output.Dir, "ISO 23870-3_(E)_KEYS.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(cfg.Output.Dir, "FIGURES-ISO 23870-3_(E).zip"))
	assert.NoError(t, err)
}

func TestRunPart10(t *testing.T) {
	cfg := testConfig(t, "ISO 23870-10")
	r := &stubRenderer{}

	require.NoError(t, Run(cfg, r))
	require.Len(t, r.figs, 8+7+4)

	assert.Contains(t, filepath.Base(r.paths[0]), "FIG-001")
	assert.Contains(t, filepath.Base(r.paths[7]), "FIG-008")
	// appendix numbering restarts per appendix
	assert.Contains(t, filepath.Base(r.paths[8]), "FIG-A.001")
	assert.Contains(t, filepath.Base(r.paths[15]), "FIG-B.001")
}

func TestRunPart10ShieldFigures(t *testing.T) {
	cfg := testConfig(t, "ISO 23870-10")
	r := &stubRenderer{}
	require.NoError(t, Run(cfg, r))

	ac := r.figs[6]
	assert.True(t, ac.LogX)
	assert.False(t, ac.LogY)

	dc := r.figs[7]
	assert.False(t, dc.LogX)
	assert.True(t, dc.LogY)
	require.NotNil(t, dc.XTicks)
	assert.Equal(t, []float64{0}, dc.XTicks.Values)
	require.NotNil(t, dc.YTicks)
	assert.Equal(t, "10k", dc.YTicks.Labels[4])
}

func TestRunUnknownStandard(t *testing.T) {
	cfg := testConfig(t, "ISO 12345-6")
	err := Run(cfg, &stubRenderer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no driver")
}

func TestRunDefaultStyle(t *testing.T) {
	cfg := testConfig(t, "ISO 23870-3")
	cfg.Output.Style = "default"
	r := &stubRenderer{}

	require.NoError(t, Run(cfg, r))
	assert.Equal(t, "23870_3ed1fig9.svg", filepath.Base(r.paths[0]))
}
