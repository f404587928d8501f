package entities

// PlotGroup names the catalog entries that render together on one chart.
type PlotGroup struct {
	Title    string   `json:"title,omitempty" yaml:"title,omitempty"`
	Profiles []string `json:"profiles" yaml:"profiles"`
}

// GroupEntry pairs a requested name with its compiled profile.
type GroupEntry struct {
	Profile *Profile
	Name    string
}
