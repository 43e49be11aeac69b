package fontreg

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/fontreg/text"
)

// SystemFonts supplies the fallback font for each canonical style.
// Font must always return a usable source.
type SystemFonts interface {
	Font(style Style) *text.FontSource
}

// GoFonts is the default SystemFonts: the Go font family from
// golang.org/x/image/font/gofont, parsed on first use.
type GoFonts struct {
	once    sync.Once
	sources [4]*text.FontSource
	opts    []text.SourceOption
}

// NewGoFonts returns a GoFonts that parses with the given options.
func NewGoFonts(opts ...text.SourceOption) *GoFonts {
	return &GoFonts{opts: opts}
}

var goFontData = [4][]byte{
	StyleNormal:     goregular.TTF,
	StyleBold:       gobold.TTF,
	StyleItalic:     goitalic.TTF,
	StyleBoldItalic: gobolditalic.TTF,
}

// Font implements SystemFonts. It panics if the embedded Go fonts fail to
// parse, which only happens with a broken parser backend.
func (g *GoFonts) Font(style Style) *text.FontSource {
	g.once.Do(func() {
		for i, data := range goFontData {
			src, err := text.NewFontSource(data, g.opts...)
			if err != nil {
				panic(fmt.Sprintf("fontreg: failed to parse Go font for style %s: %v", Style(i), err))
			}
			g.sources[i] = src
		}
	})
	if style < StyleNormal || style > StyleBoldItalic {
		style = StyleNormal
	}
	return g.sources[style]
}

// systemVariant describes the system source for style. Weight and slant
// come from the font file when its parser reads them, as at registration;
// otherwise the canonical values of style are assumed.
func systemVariant(sys SystemFonts, style Style) Variant {
	v := Variant{
		Source: sys.Font(style),
		Weight: WeightNormal,
		Italic: style.IsItalic(),
	}
	if style.IsBold() {
		v.Weight = WeightBold
	}
	if md, ok := v.Source.Metadata(); ok {
		v.Weight, v.Italic = Weight(md.Weight), md.Italic
	}
	return v
}

// defaultGoFonts is shared by every Registry built without WithSystemFonts.
var defaultGoFonts = NewGoFonts()
