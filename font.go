package fontreg

import (
	"fmt"

	"github.com/gogpu/fontreg/text"
)

// Key identifies a registered font.
type Key struct {
	Family string
	Weight Weight
	Italic bool
}

// RegisteredFont is a font loaded from the asset bundle.
type RegisteredFont struct {
	// Family is the leaf segment of the manifest family name.
	Family string

	// Asset is the manifest asset the font was loaded from.
	Asset string

	// Weight and Italic come from the font file when the parser can read
	// them, otherwise from the manifest hints.
	Weight Weight
	Italic bool

	// PostScriptName is read from the font's name table; may be empty.
	PostScriptName string

	Source *text.FontSource
}

// Key returns the registry key of f.
func (f RegisteredFont) Key() Key {
	return Key{Family: f.Family, Weight: f.Weight, Italic: f.Italic}
}

func (f RegisteredFont) String() string {
	return fmt.Sprintf("%s(weight=%d italic=%t asset=%s)", f.Family, f.Weight, f.Italic, f.Asset)
}

// Tier records how a font was found.
type Tier int

const (
	// TierExact matched family, weight and italic exactly.
	TierExact Tier = iota + 1
	// TierBoldClass matched family, italic and bold class.
	TierBoldClass
	// TierItalic matched family and italic, ignoring weight.
	TierItalic
	// TierSystem fell back to a system font.
	TierSystem
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierBoldClass:
		return "bold-class"
	case TierItalic:
		return "italic"
	case TierSystem:
		return "system"
	default:
		return "unknown"
	}
}

// Font is a resolved font: a font source plus the style it should be
// rendered with. Synthetic flags tell the renderer to embolden or slant
// glyphs because the source does not carry that style itself.
type Font struct {
	source          *text.FontSource
	family          string
	weight          Weight
	italic          bool
	style           Style
	size            float64
	syntheticBold   bool
	syntheticItalic bool
	tier            Tier
}

// Source returns the font source to render with.
func (f *Font) Source() *text.FontSource { return f.source }

// Family returns the registered family, or "" for a system font.
func (f *Font) Family() string { return f.family }

// Weight returns the weight to render with.
func (f *Font) Weight() Weight { return f.weight }

// Italic reports whether to render slanted.
func (f *Font) Italic() bool { return f.italic }

// Style returns the canonical style nearest to the rendering weight and slant.
func (f *Font) Style() Style { return f.style }

// Size returns the point size.
func (f *Font) Size() float64 { return f.size }

// SyntheticBold reports whether the renderer should embolden the source.
func (f *Font) SyntheticBold() bool { return f.syntheticBold }

// SyntheticItalic reports whether the renderer should slant the source.
func (f *Font) SyntheticItalic() bool { return f.syntheticItalic }

// Tier returns how the font was found.
func (f *Font) Tier() Tier { return f.tier }

// IsSystem reports whether f is a system default font.
func (f *Font) IsSystem() bool { return f.tier == TierSystem }

func (f *Font) String() string {
	family := f.family
	if family == "" {
		family = "system:" + f.source.Name()
	}
	return fmt.Sprintf("%s %s weight=%d size=%g (%s)", family, f.style, f.weight, f.size, f.tier)
}
