package text

import (
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// FontSource represents a loaded font file.
// It is the native font handle fontreg registers and resolves to.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	// mu protects data and parsed, which Close clears.
	mu     sync.RWMutex
	data   []byte
	parsed ParsedFont

	name   string
	parser string
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parser, err := getParser(config.parserName)
	if err != nil {
		return nil, err
	}
	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{
		data:   dataCopy,
		parsed: parsed,
		parser: config.parserName,
	}
	s.addr = s // Self-reference for copy detection

	s.name = config.name
	if s.name == "" {
		s.name = extractFontName(parsed)
	}

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

// NewFontSourceFromFS loads a FontSource from a file in fsys.
// This is the usual path for fonts bundled with embed.FS.
func NewFontSourceFromFS(fsys fs.FS, name string, opts ...SourceOption) (*FontSource, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

// Name returns the font name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// FullName returns the full font name from the name table, if any.
func (s *FontSource) FullName() string {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.parsed == nil {
		return ""
	}
	return s.parsed.FullName()
}

// PostScriptName returns the PostScript name of the font, if any.
func (s *FontSource) PostScriptName() string {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.parsed == nil {
		return ""
	}
	return s.parsed.PostScriptName()
}

// Parser returns the name of the backend that parsed the source.
func (s *FontSource) Parser() string {
	s.copyCheck()
	return s.parser
}

// Metadata returns the weight and italic flag declared by the font file.
// The boolean is false when the parser backend cannot read them or the
// source has been closed.
func (s *FontSource) Metadata() (Metadata, bool) {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.parsed == nil {
		return Metadata{}, false
	}
	return s.parsed.Metadata()
}

// Data returns the raw font bytes. The returned slice must not be modified.
// Returns ErrClosed after Close.
func (s *FontSource) Data() ([]byte, error) {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil, ErrClosed
	}
	return s.data, nil
}

// Close releases resources associated with the FontSource.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = nil
	s.parsed = nil

	return nil
}

// String implements fmt.Stringer.
func (s *FontSource) String() string {
	if s == nil {
		return "<nil>"
	}
	return s.name
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(parsed ParsedFont) string {
	if name := parsed.Name(); name != "" {
		return name
	}

	if fullName := parsed.FullName(); fullName != "" {
		return fullName
	}

	return "Unknown Font"
}
