package about

import "strings"

// Metadata holds every package identity constant as a serialisable record.
type Metadata struct {
	Title     string `json:"title" yaml:"title" toml:"title"`
	Summary   string `json:"summary" yaml:"summary" toml:"summary"`
	URI       string `json:"uri" yaml:"uri" toml:"uri"`
	Version   string `json:"version" yaml:"version" toml:"version"`
	Author    string `json:"author" yaml:"author" toml:"author"`
	Email     string `json:"email" yaml:"email" toml:"email"`
	License   string `json:"license" yaml:"license" toml:"license"`
	Copyright string `json:"copyright" yaml:"copyright" toml:"copyright"`
}

// Field is one named metadata value.
type Field struct {
	// Name is the exported Go identifier, e.g. "Version".
	Name string

	// Key is the serialised key, e.g. "version".
	Key string

	// Value is the constant's value.
	Value string
}

// Get returns the package metadata.
func Get() Metadata {
	return Metadata{
		Title:     Title,
		Summary:   Summary,
		URI:       URI,
		Version:   Version,
		Author:    Author,
		Email:     Email,
		License:   License,
		Copyright: Copyright,
	}
}

// Fields returns the metadata fields in export order.
func (m Metadata) Fields() []Field {
	return []Field{
		{Name: "Title", Key: "title", Value: m.Title},
		{Name: "Summary", Key: "summary", Value: m.Summary},
		{Name: "URI", Key: "uri", Value: m.URI},
		{Name: "Version", Key: "version", Value: m.Version},
		{Name: "Author", Key: "author", Value: m.Author},
		{Name: "Email", Key: "email", Value: m.Email},
		{Name: "License", Key: "license", Value: m.License},
		{Name: "Copyright", Key: "copyright", Value: m.Copyright},
	}
}

// Lookup finds a field by exported name or key. Matching ignores case and
// surrounding whitespace.
func (m Metadata) Lookup(name string) (Field, bool) {
	name = strings.TrimSpace(name)
	for _, f := range m.Fields() {
		if strings.EqualFold(f.Name, name) || strings.EqualFold(f.Key, name) {
			return f, true
		}
	}
	return Field{}, false
}

// Fields returns the package metadata fields in export order.
func Fields() []Field {
	return Get().Fields()
}

// Names returns the exported identifiers in export order.
func Names() []string {
	fields := Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// Lookup finds a package metadata field by exported name or key.
func Lookup(name string) (Field, bool) {
	return Get().Lookup(name)
}
