// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package giofont

import (
	"fmt"

	"gioui.org/font"
	"gioui.org/font/opentype"

	"github.com/gogpu/fontreg"
)

// SystemTypeface is the typeface FontOf reports for system fonts.
const SystemTypeface font.Typeface = "Go"

// Collection parses every font in r into a Gio font collection, in
// registration order. It fails on the first font Gio cannot parse.
func Collection(r *fontreg.Registry) ([]font.FontFace, error) {
	registered := r.RegisteredFonts()
	collection := make([]font.FontFace, 0, len(registered))

	for _, rf := range registered {
		data, err := rf.Source.Data()
		if err != nil {
			return nil, fmt.Errorf("giofont: %s: %w", rf.Asset, err)
		}
		face, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("giofont: parse %s: %w", rf.Asset, err)
		}
		collection = append(collection, font.FontFace{
			Font: gioFont(font.Typeface(rf.Family), rf.Weight, rf.Italic),
			Face: face,
		})
	}

	fontreg.Logger().Debug("giofont: built collection", "faces", len(collection))
	return collection, nil
}

// FontOf returns the Gio font selecting f from a collection built by
// Collection. System fonts select SystemTypeface, which Gio's bundled
// gofont collection provides.
func FontOf(f *fontreg.Font) font.Font {
	typeface := font.Typeface(f.Family())
	if f.IsSystem() {
		typeface = SystemTypeface
	}
	return gioFont(typeface, f.Weight(), f.Italic())
}

func gioFont(typeface font.Typeface, weight fontreg.Weight, italic bool) font.Font {
	style := font.Regular
	if italic {
		style = font.Italic
	}
	// Gio weights are offsets from regular.
	return font.Font{
		Typeface: typeface,
		Style:    style,
		Weight:   font.Weight(weight - fontreg.WeightNormal),
	}
}
