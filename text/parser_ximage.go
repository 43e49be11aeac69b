package text

import (
	"fmt"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
// The x/image API does not expose the OS/2 table, so fonts parsed with it
// carry no style metadata.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	n, err := readNames(data)
	if err != nil {
		return nil, err
	}
	return &ximageParsedFont{names: n}, nil
}

// ximageParsedFont implements ParsedFont from the name table alone.
type ximageParsedFont struct {
	names
}

// Metadata implements ParsedFont.Metadata.
func (f *ximageParsedFont) Metadata() (Metadata, bool) {
	return Metadata{}, false
}

// names holds the name-table strings shared by all parser backends.
type names struct {
	family   string
	full     string
	postName string
}

// Name implements ParsedFont.Name.
func (n names) Name() string { return n.family }

// FullName implements ParsedFont.FullName.
func (n names) FullName() string { return n.full }

// PostScriptName implements ParsedFont.PostScriptName.
func (n names) PostScriptName() string { return n.postName }

// readNames parses data with x/image and reads the family, full and
// PostScript names. Missing entries are left empty.
func readNames(data []byte) (names, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return names{}, fmt.Errorf("text: failed to parse font: %w", err)
	}

	var buf sfnt.Buffer
	name := func(id sfnt.NameID) string {
		s, err := f.Name(&buf, id)
		if err != nil {
			return ""
		}
		return s
	}

	return names{
		family:   name(sfnt.NameIDFamily),
		full:     name(sfnt.NameIDFull),
		postName: name(sfnt.NameIDPostScript),
	}, nil
}
