package publish

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// figureID formats a figure identifier for the key table: FIG-NNN in the
// main body, FIG-<appendix>.NNN inside an appendix.
func (s *Session) figureID(fig int) string {
	if s.appendix == "" {
		return fmt.Sprintf("FIG-%03d", fig)
	}
	return fmt.Sprintf("FIG-%s.%03d", s.appendix, fig)
}

// figurePath derives the deterministic output filename for a figure.
func (s *Session) figurePath(fig int, caption string) string {
	var name string
	switch s.style {
	case StyleDefault:
		if s.appendix == "" {
			name = fmt.Sprintf("%s%sfig%d%s", s.stdNum, s.stdEd, fig, s.format)
		} else {
			name = fmt.Sprintf("%s%sfig_%s_%d%s", s.stdNum, s.stdEd, s.appendix, fig, s.format)
		}
	default:
		name = fmt.Sprintf("%s_%s_(%s)_Ed1", s.figureID(fig), s.standard, s.lang)
		if caption != "" {
			name += " " + caption
		}
		name += s.format
	}
	return filepath.Join(s.dir, name)
}

// stdNumberRe accepts "9999", "ISO 9999-1" or "ISO 9999-1 ed2" style names.
var stdNumberRe = regexp.MustCompile(`^(?i:ISO\s+)?([1-9][0-9]*(?:[-_][1-9][0-9]*)?)\s*((?:[eE][dD]\s*[1-9][0-9]*)?)$`)

// splitStdNumber parses a standard name into its hyphen-free number and
// edition marker, e.g. "ISO 23870-10 ed2" into ("23870_10", "ed2"). The
// edition defaults to "ed1". Unparseable names yield empty fields, which
// only the legacy filename style consumes.
func splitStdNumber(std string) (string, string) {
	m := stdNumberRe.FindStringSubmatch(std)
	if m == nil {
		return "", ""
	}
	num := strings.ReplaceAll(m[1], "-", "_")
	ed := strings.ToLower(strings.ReplaceAll(m[2], " ", ""))
	if ed == "" {
		ed = "ed1"
	}
	return num, ed
}
