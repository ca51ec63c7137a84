// Package about is the single source of twothumbs package metadata.
//
// The constants here are re-exported by the root twothumbs package. Keep the
// set of constants in step with Fields; the root package verifies the two at
// initialisation.
package about

// Package identity metadata.
const (
	Title     = "twothumbs"
	Summary   = "A machine learning model to classify movie ratings based on sentiment."
	URI       = "https://github.com/twothumbs/twothumbs"
	Version   = "1.0.3"
	Author    = "Jacob Sánchez Pérez"
	Email     = "maintainers@twothumbs.dev"
	License   = "GPL-2.0-or-later"
	Copyright = "(c) 2022, Jacob Sánchez Pérez."
)
