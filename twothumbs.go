// Package twothumbs is Two Thumbs Up, a machine learning model to classify
// movie ratings based on sentiment.
//
// This package exposes the project's identity metadata. The values are
// compile-time constants defined once in the internal metadata source and
// re-declared here so consumers never depend on where they live:
//
//	fmt.Println(twothumbs.Title, twothumbs.Version)
//
// Exports lists the public metadata names in declaration order. Package
// initialisation panics with a "missing metadata constant" error if that
// list and the metadata source ever disagree.
package twothumbs

import "github.com/twothumbs/twothumbs/internal/about"

// Package identity metadata.
const (
	Title     = about.Title
	Summary   = about.Summary
	URI       = about.URI
	Version   = about.Version
	Author    = about.Author
	Email     = about.Email
	License   = about.License
	Copyright = about.Copyright
)

// exports names the public metadata constants in declaration order.
var exports = [...]string{
	"Title",
	"Summary",
	"URI",
	"Version",
	"Author",
	"Email",
	"License",
	"Copyright",
}

func init() {
	if err := about.Check(exports[:]); err != nil {
		panic(err)
	}
}

// Metadata is the full set of identity constants as one record.
type Metadata = about.Metadata

// Field is one named metadata value.
type Field = about.Field

// Exports returns the names of the public metadata constants in declaration
// order. Each call returns a fresh slice.
func Exports() []string {
	out := make([]string, len(exports))
	copy(out, exports[:])
	return out
}

// Get returns the metadata record.
func Get() Metadata {
	return about.Get()
}

// Lookup returns the value of a metadata constant by exported name
// ("Version") or key ("version"), ignoring case.
func Lookup(name string) (string, bool) {
	f, ok := about.Lookup(name)
	if !ok {
		return "", false
	}
	return f.Value, true
}
