// Package fontreg resolves logical font requests to bundled fonts.
//
// # Overview
//
// An application declares its fonts in a manifest (see package manifest)
// and ships them as assets. fontreg loads every declared font once, reads
// the weight and slant each file declares about itself, and answers
// requests of the form (family, weight, italic) with the best registered
// font, or with a system font when nothing fits.
//
// # Quick Start
//
//	//go:embed assets
//	var assets embed.FS
//
//	sub, _ := fs.Sub(assets, "assets")
//	plugin := fontreg.NewPlugin(nil)
//	plugin.OnAttach(fontreg.Binding{Assets: sub})
//
//	f := fontreg.Resolve("Sans", fontreg.WeightBold, false)
//	face := f.Source() // *text.FontSource
//
// # Matching
//
// Fonts are keyed by (family, weight, italic). A request is matched in
// three tiers, stopping at the first that has candidates:
//
//   - exact: same family, weight and italic flag
//   - bold class: same family and italic flag, both weights on the same
//     side of BoldThreshold (700)
//   - italic: same family and italic flag, any weight
//
// Within a tier the candidate nearest in weight wins; ties go to the font
// registered first. The matched font is then styled to the exact request
// by a StyleApplier: ContinuousStyle for renderers with numeric weights,
// DiscreteStyle for renderers limited to normal, bold, italic and
// bold-italic.
//
// Requests without a family, or without a match, get the system font for
// the canonical style of the request. The default system fonts are the Go
// fonts from golang.org/x/image/font/gofont.
//
// # Lifecycle
//
// A Registry is populated exactly once. Resolving before that is a host
// integration bug and panics with ErrNotInitialized. Nothing is ever
// removed from a populated Registry.
package fontreg
