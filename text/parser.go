package text

import (
	"fmt"
	"sort"
	"sync"
)

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (e.g., go-text/typesetting vs seehuhn.de/go/sfnt).
//
// The default implementation uses github.com/go-text/typesetting.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
// This interface abstracts the underlying font representation.
type ParsedFont interface {
	// Name returns the font family name.
	// Returns empty string if not available.
	Name() string

	// FullName returns the full font name.
	// Returns empty string if not available.
	FullName() string

	// PostScriptName returns the PostScript name of the font.
	// Returns empty string if not available.
	PostScriptName() string

	// Metadata returns the style metadata embedded in the font file.
	// The boolean is false when the backend cannot read it.
	Metadata() (Metadata, bool)
}

// Metadata is the style information a font file declares about itself.
type Metadata struct {
	// Weight is the OS/2 weight class (100..900, 400 = regular).
	Weight int

	// Italic reports whether the glyphs are slanted (italic or oblique).
	Italic bool
}

// Parser names registered by default.
const (
	ParserGoText = "gotext"
	ParserSFNT   = "sfnt"
	ParserXImage = "ximage"
)

// defaultParserName is the name of the default parser.
const defaultParserName = ParserGoText

var (
	parserMu sync.RWMutex

	// parserRegistry holds registered font parsers.
	parserRegistry = map[string]FontParser{
		ParserGoText: &gotextParser{},
		ParserSFNT:   &sfntParser{},
		ParserXImage: &ximageParser{},
	}
)

// RegisterParser registers a custom font parser.
// Registering under an existing name replaces that parser.
func RegisterParser(name string, parser FontParser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// Parsers returns the names of all registered parsers, sorted.
func Parsers() []string {
	parserMu.RLock()
	defer parserMu.RUnlock()
	names := make([]string, 0, len(parserRegistry))
	for name := range parserRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// getParser returns the parser by name.
func getParser(name string) (FontParser, error) {
	parserMu.RLock()
	defer parserMu.RUnlock()
	if p, ok := parserRegistry[name]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownParser, name)
}
