package text

import (
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

func TestParsersRegistered(t *testing.T) {
	got := Parsers()
	want := []string{ParserGoText, ParserSFNT, ParserXImage}
	for _, name := range want {
		found := false
		for _, g := range got {
			if g == name {
				found = true
			}
		}
		if !found {
			t.Errorf("parser %q not registered; have %v", name, got)
		}
	}
}

func TestMetadataParsers(t *testing.T) {
	tests := []struct {
		name       string
		data       []byte
		wantItalic bool
		wantBold   bool
	}{
		{"regular", goregular.TTF, false, false},
		{"bold", gobold.TTF, false, true},
		{"italic", goitalic.TTF, true, false},
		{"bold-italic", gobolditalic.TTF, true, true},
	}

	for _, parser := range []string{ParserGoText, ParserSFNT} {
		for _, tt := range tests {
			t.Run(parser+"/"+tt.name, func(t *testing.T) {
				source, err := NewFontSource(tt.data, WithParser(parser))
				if err != nil {
					t.Fatalf("NewFontSource: %v", err)
				}
				md, ok := source.Metadata()
				if !ok {
					t.Fatal("expected metadata")
				}
				if md.Italic != tt.wantItalic {
					t.Errorf("Italic = %v, want %v", md.Italic, tt.wantItalic)
				}
				if tt.wantBold && md.Weight <= 400 {
					t.Errorf("Weight = %d, want > 400", md.Weight)
				}
				if !tt.wantBold && md.Weight != 400 {
					t.Errorf("Weight = %d, want 400", md.Weight)
				}
			})
		}
	}
}

func TestXImageParserHasNoMetadata(t *testing.T) {
	source, err := NewFontSource(gobold.TTF, WithParser(ParserXImage))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := source.Metadata(); ok {
		t.Error("ximage parser should not report style metadata")
	}
	if source.Name() != "Go" {
		t.Errorf("Name() = %q, want %q", source.Name(), "Go")
	}
}

type stubParser struct{ md Metadata }

func (p stubParser) Parse([]byte) (ParsedFont, error) { return stubParsed(p), nil }

type stubParsed struct{ md Metadata }

func (stubParsed) Name() string                 { return "Stub" }
func (stubParsed) FullName() string             { return "Stub Regular" }
func (stubParsed) PostScriptName() string       { return "Stub-Regular" }
func (s stubParsed) Metadata() (Metadata, bool) { return s.md, true }

func TestRegisterParser(t *testing.T) {
	RegisterParser("stub", stubParser{md: Metadata{Weight: 300, Italic: true}})
	t.Cleanup(func() {
		parserMu.Lock()
		delete(parserRegistry, "stub")
		parserMu.Unlock()
	})

	source, err := NewFontSource([]byte{1}, WithParser("stub"))
	if err != nil {
		t.Fatal(err)
	}
	md, _ := source.Metadata()
	if md != (Metadata{Weight: 300, Italic: true}) {
		t.Errorf("Metadata() = %+v", md)
	}
	if source.PostScriptName() != "Stub-Regular" {
		t.Errorf("PostScriptName() = %q", source.PostScriptName())
	}
}
