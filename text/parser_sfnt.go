package text

import (
	"bytes"
	"fmt"

	"seehuhn.de/go/sfnt"
)

// sfntParser implements FontParser using seehuhn.de/go/sfnt.
// It reads the OS/2 weight class and treats a font as italic when either
// the italic bit is set or the post table declares a non-zero italic angle.
type sfntParser struct{}

// Parse implements FontParser.Parse.
func (p *sfntParser) Parse(data []byte) (ParsedFont, error) {
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	n, err := readNames(data)
	if err != nil {
		return nil, err
	}
	if info.FamilyName != "" {
		n.family = info.FamilyName
	}
	if ps := info.PostScriptName(); ps != "" {
		n.postName = ps
	}

	return &sfntParsedFont{
		names:  n,
		weight: int(info.Weight),
		italic: info.IsItalic || info.ItalicAngle != 0,
	}, nil
}

// sfntParsedFont implements ParsedFont from an sfnt.Font.
type sfntParsedFont struct {
	names
	weight int
	italic bool
}

// Metadata implements ParsedFont.Metadata.
func (f *sfntParsedFont) Metadata() (Metadata, bool) {
	if f.weight == 0 {
		return Metadata{}, false
	}
	return Metadata{Weight: f.weight, Italic: f.italic}, true
}
