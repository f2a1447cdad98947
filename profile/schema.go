package profile

// File is the root of a profile file.
type File struct {
	// Version of the profile schema.
	Version string `yaml:"version,omitempty"`

	// Profiles are the named policies of the file.
	Profiles []Profile `yaml:"profiles"`
}

// Profile declares one copy policy.
type Profile struct {
	Name string `yaml:"name"`

	Include      []string `yaml:"include,omitempty"`
	Exclude      []string `yaml:"exclude,omitempty"`
	ExcludeNull  bool     `yaml:"exclude_null,omitempty"`
	ExcludeBlank bool     `yaml:"exclude_blank,omitempty"`
	Prefix       string   `yaml:"prefix,omitempty"`

	// BeanDelimiter and MapDelimiter hold one character each.
	BeanDelimiter string `yaml:"bean_delimiter,omitempty"`
	MapDelimiter  string `yaml:"map_delimiter,omitempty"`

	// Coercions lists primitive coercion categories. Empty means default.
	Coercions []string `yaml:"coercions,omitempty"`

	Converters []Converter `yaml:"converters,omitempty"`
}

// Converter declares a built-in converter.
type Converter struct {
	// Type is one of date, sql_date, time, timestamp, number.
	Type string `yaml:"type"`

	// Pattern is a Go layout, a strftime pattern or a humanize number pattern.
	Pattern string `yaml:"pattern"`

	// Properties are the destination properties the converter is bound to.
	// Empty registers a typed converter.
	Properties []string `yaml:"properties,omitempty"`
}

// CurrentVersion is the schema version written by Marshal.
const CurrentVersion = "1"

// Names returns the profile names in file order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Profiles))
	for i := range f.Profiles {
		names = append(names, f.Profiles[i].Name)
	}

	return names
}

// Lookup returns the profile called name.
func (f *File) Lookup(name string) (*Profile, bool) {
	for i := range f.Profiles {
		if f.Profiles[i].Name == name {
			return &f.Profiles[i], true
		}
	}

	return nil, false
}
