package limits

import "fmt"

// Catalogue is the ordered limit table for one standard edition. Editions
// are kept as independent tables: revisions of the source standards differ
// in small numeric corrections and sampling plans, so no single canonical
// formula set exists. Entries that are identical across editions are built
// by the same code path; entries that diverge are overridden per edition.
type Catalogue struct {
	Standard string
	names    []string
	curves   map[string]*Curve
}

func newCatalogue(standard string) *Catalogue {
	return &Catalogue{
		Standard: standard,
		curves:   make(map[string]*Curve),
	}
}

func (c *Catalogue) add(curve *Curve) *Curve {
	if _, dup := c.curves[curve.Name]; dup {
		panic(fmt.Sprintf("limits: duplicate catalogue entry %q", curve.Name))
	}
	c.names = append(c.names, curve.Name)
	c.curves[curve.Name] = curve
	return curve
}

// alias registers a curve under a new name that shares the source curve's
// trace data and sampling plan, so the two can never drift apart.
func (c *Catalogue) alias(name string, src *Curve) *Curve {
	cp := *src
	cp.Name = name
	return c.add(&cp)
}

// Get returns the named curve.
func (c *Catalogue) Get(name string) (*Curve, error) {
	curve, ok := c.curves[name]
	if !ok {
		return nil, fmt.Errorf("limits: no catalogue entry %q in %s", name, c.Standard)
	}
	return curve, nil
}

// Curves returns every entry in registration order.
func (c *Catalogue) Curves() []*Curve {
	out := make([]*Curve, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.curves[name])
	}
	return out
}

// Part3 builds the limit catalogue for the part 3 edition.
func Part3() *Catalogue {
	cat := newCatalogue("ISO 23870-3")
	addConnector(cat)
	addCable(cat)
	addCableAssembly(cat)
	// Part 3 samples the channel PSANEXT limit with 1 MHz plus a dense
	// sweep of the sloped region instead of the bare corners.
	addChannel(cat, append(Corners(1), LogSpace(100, 600, 101)...))
	addShield(cat)
	return cat
}

// Part10 builds the limit catalogue for the part 10 edition.
func Part10() *Catalogue {
	cat := newCatalogue("ISO 23870-10")
	addConnector(cat)
	addCable(cat)
	addCableAssembly(cat)
	addChannel(cat, Corners(1, 100, 600))
	addShield(cat)
	return cat
}
