package fontreg

import "github.com/gogpu/fontreg/text"

// Style is one of the four canonical font styles. Platforms without
// continuous weight support can only express these.
type Style int

const (
	// StyleNormal is upright, regular weight.
	StyleNormal Style = iota
	// StyleBold is upright, bold weight.
	StyleBold
	// StyleItalic is slanted, regular weight.
	StyleItalic
	// StyleBoldItalic is slanted, bold weight.
	StyleBoldItalic
)

// StyleOf maps a weight and italic flag onto the canonical style.
// Weights at or above BoldThreshold are bold.
func StyleOf(weight Weight, italic bool) Style {
	switch {
	case weight.IsBold() && italic:
		return StyleBoldItalic
	case weight.IsBold():
		return StyleBold
	case italic:
		return StyleItalic
	default:
		return StyleNormal
	}
}

// IsBold reports whether s is StyleBold or StyleBoldItalic.
func (s Style) IsBold() bool {
	return s == StyleBold || s == StyleBoldItalic
}

// IsItalic reports whether s is StyleItalic or StyleBoldItalic.
func (s Style) IsItalic() bool {
	return s == StyleItalic || s == StyleBoldItalic
}

// String returns the style name.
func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	case StyleBoldItalic:
		return "bold-italic"
	default:
		return "unknown"
	}
}

// Variant describes the font file a resolution picked, before styling.
type Variant struct {
	Source *text.FontSource
	Family string // empty for system fonts
	Weight Weight
	Italic bool
}

// StyleApplier turns a picked variant into the font handed to the caller,
// approximating the requested weight and slant the variant lacks.
type StyleApplier interface {
	Apply(v Variant, req Request) *Font
}

// ContinuousStyle styles fonts for renderers that accept any numeric
// weight. The resulting font carries the exact requested weight.
type ContinuousStyle struct{}

// Apply implements StyleApplier.
func (ContinuousStyle) Apply(v Variant, req Request) *Font {
	return &Font{
		source:          v.Source,
		family:          v.Family,
		weight:          req.Weight,
		italic:          req.Italic,
		style:           StyleOf(req.Weight, req.Italic),
		size:            req.Size,
		syntheticBold:   req.Weight > v.Weight,
		syntheticItalic: req.Italic && !v.Italic,
	}
}

// DiscreteStyle styles fonts for renderers that only know the four
// canonical styles. Weights snap to WeightNormal or WeightBold.
type DiscreteStyle struct{}

// Apply implements StyleApplier.
func (DiscreteStyle) Apply(v Variant, req Request) *Font {
	style := StyleOf(req.Weight, req.Italic)
	weight := WeightNormal
	if style.IsBold() {
		weight = WeightBold
	}
	return &Font{
		source:          v.Source,
		family:          v.Family,
		weight:          weight,
		italic:          style.IsItalic(),
		style:           style,
		size:            req.Size,
		syntheticBold:   style.IsBold() && !v.Weight.IsBold(),
		syntheticItalic: style.IsItalic() && !v.Italic,
	}
}
