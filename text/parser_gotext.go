package text

import (
	"bytes"
	"fmt"
	"math"

	"github.com/go-text/typesetting/font"
)

// gotextParser implements FontParser using github.com/go-text/typesetting.
// Style metadata comes from the font description (OS/2 weight class and
// fsSelection/macStyle bits), names come from the x/image name reader.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	// ParseTTF returns a *Face which embeds the thread-safe *Font.
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	n, err := readNames(data)
	if err != nil {
		return nil, err
	}

	desc := face.Describe()
	if n.family == "" {
		n.family = desc.Family
	}

	return &gotextParsedFont{names: n, aspect: desc.Aspect}, nil
}

// gotextParsedFont implements ParsedFont using a go-text font description.
type gotextParsedFont struct {
	names
	aspect font.Aspect
}

// Metadata implements ParsedFont.Metadata.
func (f *gotextParsedFont) Metadata() (Metadata, bool) {
	if f.aspect.Weight == 0 {
		return Metadata{}, false
	}
	return Metadata{
		Weight: int(math.Round(float64(f.aspect.Weight))),
		Italic: f.aspect.Style == font.StyleItalic,
	}, true
}
