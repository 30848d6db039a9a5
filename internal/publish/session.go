// Package publish drives one standard's figure run: it numbers figures,
// renders limit curves through the drawing boundary, accumulates the key
// table that explains axis letters and annotation codes, and bundles every
// produced artifact into the deliverable zip archive.
package publish

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/openplots/limitgraph/internal/render"
	"github.com/openplots/limitgraph/pkg/limits"
)

// ErrFinished is returned when a session is used after Wrapup. Sessions are
// one-shot; a new run needs a new session.
var ErrFinished = errors.New("publish: session already finalized")

// FilenameStyle selects the figure file naming scheme.
type FilenameStyle int

const (
	// StyleImproved names figures FIG-NNN_<standard>_(E)_Ed1 with an
	// optional caption, matching the published document figure labels.
	StyleImproved FilenameStyle = iota
	// StyleDefault is the legacy <number><edition>fig<n> scheme.
	StyleDefault
)

// Config describes one publication run.
type Config struct {
	// Standard is the document name, e.g. "ISO 23870-10" or
	// "ISO 23870-10 ed2". Edition defaults to 1.
	Standard string
	// OutputDir receives every figure, the key table and the archive.
	OutputDir string
	// Format is the figure file extension (".svg", ".png", ".eps").
	Format string
	// Language is the document language marker; defaults to "E".
	Language string
	Style    FilenameStyle
	Renderer render.Renderer
}

// Session accumulates the mutable state of one standard's run. It replaces
// the module-scope counters and lists of the legacy generator scripts, so
// several standards can be produced in one process without leakage. All
// methods are single-threaded; a session is finalized exactly once by
// Wrapup and must not be reused afterwards.
type Session struct {
	standard string
	stdNum   string
	stdEd    string
	lang     string
	dir      string
	format   string
	style    FilenameStyle
	renderer render.Renderer

	fig      int
	appendix string
	keys     []KeyRecord
	manifest []string
	done     bool

	log zerolog.Logger
}

// KeyRecord is one line of the key table: a figure id, a key (axis letter
// or annotation code) and its meaning.
type KeyRecord struct {
	Figure string
	Key    string
	Value  string
}

// NewSession validates the configuration and creates the output directory.
func NewSession(cfg Config) (*Session, error) {
	if cfg.Standard == "" {
		return nil, errors.New("publish: standard name is required")
	}
	if cfg.Renderer == nil {
		return nil, errors.New("publish: renderer is required")
	}
	if cfg.OutputDir == "" {
		return nil, errors.New("publish: output directory is required")
	}
	format := cfg.Format
	if format == "" {
		format = ".svg"
	}
	if !strings.HasPrefix(format, ".") {
		format = "." + format
	}
	lang := cfg.Language
	if lang == "" {
		lang = "E"
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	num, ed := splitStdNumber(cfg.Standard)
	s := &Session{
		standard: cfg.Standard,
		stdNum:   num,
		stdEd:    ed,
		lang:     lang,
		dir:      cfg.OutputDir,
		format:   format,
		style:    cfg.Style,
		renderer: cfg.Renderer,
		log: log.With().
			Str("standard", cfg.Standard).
			Str("run_id", uuid.NewString()).
			Logger(),
	}
	s.log.Info().Str("output_dir", s.dir).Str("format", s.format).Msg("Publication session started")
	return s, nil
}

// SkipFigure advances the figure counter by n without producing output,
// reserving numbers for figures supplied outside this pipeline. It returns
// the new counter value.
func (s *Session) SkipFigure(n int) int {
	s.fig += n
	return s.fig
}

// AddExternalFile records a pre-existing file (e.g. a hand-drawn diagram)
// in the archive manifest and skips the given number of figure slots. The
// key table is not touched.
func (s *Session) AddExternalFile(path string, skip int) error {
	if s.done {
		return ErrFinished
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("external file: %w", err)
	}
	s.manifest = append(s.manifest, path)
	s.SkipFigure(skip)
	return nil
}

// StartAppendix switches to appendix figure numbering. An empty label
// auto-assigns the next letter ("A" for the first appendix, then "B" and so
// on); otherwise the first rune of label is used, upper-cased. The figure
// counter restarts at zero. The assigned label is returned.
func (s *Session) StartAppendix(label string) string {
	if label == "" {
		if s.appendix == "" {
			s.appendix = "A"
		} else {
			s.appendix = string(rune(s.appendix[0]) + 1)
		}
	} else {
		s.appendix = strings.ToUpper(string([]rune(label)[0]))
	}
	s.fig = 0
	s.log.Info().Str("appendix", s.appendix).Msg("Starting appendix")
	return s.appendix
}

// Keys returns the accumulated key table records.
func (s *Session) Keys() []KeyRecord { return s.keys }

// Manifest returns the files queued for the archive so far.
func (s *Session) Manifest() []string { return s.manifest }

// Options carries the per-figure plot parameters supplied by the driver.
type Options struct {
	// Title, when non-empty, is drawn above the plot. Published figures
	// usually carry their caption outside the image instead.
	Title string
	// Abbr and Unit describe the plotted quantity for the key table.
	// Without an abbreviation the Y axis is keyed as a generic LIMIT.
	Abbr string
	Unit string
	// LinearX disables the default logarithmic frequency axis.
	LinearX bool
	// XLim and YLim override the computed axis windows.
	XLim *[2]float64
	YLim *[2]float64
	// YTicks overrides the y-axis tick marks.
	YTicks *render.TickSet
	// Annotation positions. Codes are assigned in pass, fail, better
	// order; a second fail marker reuses the first fail's code.
	Pass   *render.Position
	Fail   *render.Position
	Fail2  *render.Position
	Better *render.Position
	// BetterDelta picks the better-arrow direction: negative points
	// toward lower values.
	BetterDelta float64
	// Figure forces an explicit figure number and resynchronizes the
	// counter; zero auto-increments.
	Figure int
	// Caption becomes part of the figure filename.
	Caption string
}

// Plot renders one limit curve: samples it over its default plan, resolves
// the figure number and display window, draws annotations, records the key
// table entries, and persists the figure into the output directory.
func (s *Session) Plot(curve *limits.Curve, opts Options) error {
	if s.done {
		return ErrFinished
	}

	vals, freqs := curve.Samples()
	fig := s.resolveFigure(opts.Figure)
	figID := s.figureID(fig)

	anns, codes := buildAnnotations(opts)
	s.addKey(figID, "X", "Frequency [MHz]")
	s.addKey(figID, "Y", yLabel(opts))
	for _, c := range codes {
		s.addKey(figID, fmt.Sprintf("(%d)", c.code), c.meaning)
	}

	figure := render.Figure{
		Title:       opts.Title,
		Freqs:       freqs,
		Traces:      vals,
		LogX:        !curve.DC && !opts.LinearX,
		LogY:        curve.DC,
		XLim:        displayWindow(freqs, curve.DC, opts.XLim),
		YLim:        opts.YLim,
		YTicks:      opts.YTicks,
		Annotations: anns,
	}
	if curve.DC {
		// a DC plot has a single tick at 0 Hz
		figure.XTicks = &render.TickSet{Values: []float64{0}, Labels: []string{"0"}}
	}

	path := s.figurePath(fig, opts.Caption)
	if err := s.renderer.Render(figure, path); err != nil {
		return fmt.Errorf("figure %s: %w", figID, err)
	}
	s.manifest = append(s.manifest, path)

	s.log.Info().
		Str("figure", figID).
		Str("curve", curve.Name).
		Str("file", filepath.Base(path)).
		Msg("Figure rendered")
	return nil
}

// Wrapup writes the key table, assembles the archive from every manifested
// file, and closes the session. It must be called exactly once, after all
// plotting; without it the key table and archive never reach disk.
func (s *Session) Wrapup() error {
	if s.done {
		return ErrFinished
	}

	keyPath := filepath.Join(s.dir, fmt.Sprintf("%s_(%s)_KEYS.txt", s.standard, s.lang))
	if err := s.writeKeyTable(keyPath); err != nil {
		return err
	}
	s.manifest = append(s.manifest, keyPath)

	zipPath := filepath.Join(s.dir, fmt.Sprintf("FIGURES-%s_(%s).zip", s.standard, s.lang))
	if err := writeArchive(zipPath, s.manifest); err != nil {
		return err
	}
	s.done = true

	s.log.Info().
		Int("files", len(s.manifest)).
		Int("key_records", len(s.keys)).
		Str("archive", filepath.Base(zipPath)).
		Msg("Publication run finished")
	return nil
}

func (s *Session) resolveFigure(explicit int) int {
	if explicit > 0 {
		s.fig = explicit
	} else {
		s.fig++
	}
	return s.fig
}

func (s *Session) addKey(figID, key, value string) {
	s.keys = append(s.keys, KeyRecord{Figure: figID, Key: key, Value: value})
}

func (s *Session) writeKeyTable(path string) error {
	var b strings.Builder
	for _, rec := range s.keys {
		fmt.Fprintf(&b, "%s\t%s\t%s\n", rec.Figure, rec.Key, rec.Value)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write key table: %w", err)
	}
	return nil
}

// yLabel builds the key table's Y axis description: quantity abbreviation
// with unit, a generic LIMIT with unit, or the bare abbreviation.
func yLabel(opts Options) string {
	switch {
	case opts.Abbr != "" && opts.Unit != "":
		return fmt.Sprintf("%s [%s]", opts.Abbr, opts.Unit)
	case opts.Abbr == "":
		return fmt.Sprintf("LIMIT [%s]", opts.Unit)
	default:
		return opts.Abbr
	}
}

type keyCode struct {
	code    int
	meaning string
}

// buildAnnotations assembles the figure's annotation markers and their key
// codes in the fixed pass, fail, better order. Both fail markers share one
// code.
func buildAnnotations(opts Options) ([]render.Annotation, []keyCode) {
	var anns []render.Annotation
	var codes []keyCode
	next := 1

	if opts.Pass != nil {
		anns = append(anns, mark(next, *opts.Pass, 0))
		codes = append(codes, keyCode{next, "Pass"})
		next++
	}

	fail := 0
	if opts.Fail != nil {
		fail = next
		next++
		anns = append(anns, mark(fail, *opts.Fail, 0))
	}
	if opts.Fail2 != nil {
		if fail == 0 {
			fail = next
			next++
		}
		anns = append(anns, mark(fail, *opts.Fail2, 0))
	}
	if fail != 0 {
		codes = append(codes, keyCode{fail, "Fail"})
	}

	if opts.Better != nil {
		dir := 1
		if opts.BetterDelta < 0 {
			dir = -1
		}
		anns = append(anns, mark(next, *opts.Better, dir))
		codes = append(codes, keyCode{next, "Better"})
	}
	return anns, codes
}

func mark(code int, pos render.Position, arrow int) render.Annotation {
	return render.Annotation{
		Text:  fmt.Sprintf("(%d)", code),
		Pos:   pos,
		Arrow: arrow,
	}
}

// displayWindow resolves the frequency window. DC plots are centered
// symmetrically around the sample midpoint; AC plots snap the lower bound
// down to a decade boundary and run to 1000 MHz.
func displayWindow(freqs []float64, dc bool, xlim *[2]float64) [2]float64 {
	if xlim != nil {
		return *xlim
	}
	lo, hi := freqs[0], freqs[0]
	for _, f := range freqs[1:] {
		if f < lo {
			lo = f
		}
		if f > hi {
			hi = f
		}
	}
	if dc {
		span := hi - lo
		mid := 0.5 * (hi + lo)
		return [2]float64{mid - span, mid + span}
	}
	switch {
	case lo < 10:
		lo = 1
	case lo < 100:
		lo = 10
	default:
		lo = 100
	}
	return [2]float64{lo, 1000}
}
