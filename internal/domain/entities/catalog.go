package entities

// Catalog is the read-only collection of compiled profiles keyed by name.
// It is built once and never mutated afterwards, so concurrent reads are safe.
type Catalog struct {
	profiles map[string]*Profile
	order    []string
}

// NewCatalog creates a catalog from profiles in insertion order.
// A repeated name is a DuplicateNameError; entries are never overwritten.
func NewCatalog(profiles ...*Profile) (*Catalog, error) {
	a := NewCatalogAssembler(len(profiles))
	for _, p := range profiles {
		if err := a.Add(p); err != nil {
			return nil, err
		}
	}
	return a.Catalog(), nil
}

// CatalogAssembler collects profiles one at a time so a repeated name is
// reported at the row that repeats it, before later rows are looked at.
type CatalogAssembler struct {
	catalog *Catalog
}

// NewCatalogAssembler creates an assembler sized for n profiles.
func NewCatalogAssembler(n int) *CatalogAssembler {
	return &CatalogAssembler{catalog: &Catalog{
		profiles: make(map[string]*Profile, n),
		order:    make([]string, 0, n),
	}}
}

// Add inserts p under its name. A name already present is a
// DuplicateNameError and leaves the assembler unchanged.
func (a *CatalogAssembler) Add(p *Profile) error {
	c := a.catalog
	if existing, ok := c.profiles[p.Name()]; ok {
		return &DuplicateNameError{
			Name:      p.Name(),
			FirstLine: existing.Line(),
			Line:      p.Line(),
		}
	}
	c.profiles[p.Name()] = p
	c.order = append(c.order, p.Name())
	return nil
}

// Catalog returns the assembled catalog. The assembler must not be used
// afterwards.
func (a *CatalogAssembler) Catalog() *Catalog {
	c := a.catalog
	a.catalog = nil
	return c
}

// Len returns the number of profiles.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Names returns the profile names in insertion order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Profiles returns the profiles in insertion order.
func (c *Catalog) Profiles() []*Profile {
	out := make([]*Profile, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.profiles[name])
	}
	return out
}

// Lookup returns the profile stored under name.
func (c *Catalog) Lookup(name string) (*Profile, error) {
	p, ok := c.profiles[name]
	if !ok {
		return nil, &UnknownProfileError{Name: name}
	}
	return p, nil
}

// MaxTime returns the largest time coordinate across every waypoint of
// every profile. Renderers use it as the shared time axis bound.
func (c *Catalog) MaxTime() (float64, error) {
	if len(c.order) == 0 {
		return 0, &EmptyCatalogError{Statistic: "max time"}
	}

	maxTime := c.profiles[c.order[0]].MaxTime()
	for _, name := range c.order[1:] {
		if t := c.profiles[name].MaxTime(); t > maxTime {
			maxTime = t
		}
	}
	return maxTime, nil
}

// ResolveGroup looks up each name in order and pairs it with its profile.
// It stops at the first unknown name.
func (c *Catalog) ResolveGroup(names []string) ([]GroupEntry, error) {
	entries := make([]GroupEntry, 0, len(names))
	for _, name := range names {
		p, err := c.Lookup(name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, GroupEntry{Name: name, Profile: p})
	}
	return entries, nil
}

// Subset returns a catalog holding only the named profiles, in the order
// given. Unknown names are an UnknownProfileError.
func (c *Catalog) Subset(names []string) (*Catalog, error) {
	entries, err := c.ResolveGroup(names)
	if err != nil {
		return nil, err
	}
	profiles := make([]*Profile, len(entries))
	for i, e := range entries {
		profiles[i] = e.Profile
	}
	return NewCatalog(profiles...)
}
