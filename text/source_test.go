package text

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

func TestNewFontSource(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource failed: %v", err)
	}
	defer func() {
		_ = source.Close()
	}()

	if source.Name() != "Go" {
		t.Errorf("Name() = %q, want %q", source.Name(), "Go")
	}
	if source.Parser() != ParserGoText {
		t.Errorf("Parser() = %q, want %q", source.Parser(), ParserGoText)
	}
	if source.PostScriptName() == "" {
		t.Error("expected non-empty PostScript name")
	}
}

func TestNewFontSourceEmpty(t *testing.T) {
	_, err := NewFontSource(nil)
	if !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
}

func TestNewFontSourceGarbage(t *testing.T) {
	for _, parser := range Parsers() {
		t.Run(parser, func(t *testing.T) {
			_, err := NewFontSource([]byte("definitely not a font"), WithParser(parser))
			if err == nil {
				t.Error("expected parse error for garbage data")
			}
		})
	}
}

func TestNewFontSourceUnknownParser(t *testing.T) {
	_, err := NewFontSource(goregular.TTF, WithParser("nope"))
	if !errors.Is(err, ErrUnknownParser) {
		t.Errorf("error = %v, want ErrUnknownParser", err)
	}
}

func TestNewFontSourceCopiesData(t *testing.T) {
	data := append([]byte(nil), goregular.TTF...)
	source, err := NewFontSource(data)
	if err != nil {
		t.Fatalf("NewFontSource failed: %v", err)
	}
	data[0] ^= 0xff

	got, err := source.Data()
	if err != nil {
		t.Fatalf("Data() error = %v", err)
	}
	if got[0] != goregular.TTF[0] {
		t.Error("FontSource shares the caller's slice")
	}
}

func TestNewFontSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Go-Regular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}

	source, err := NewFontSourceFromFile(path)
	if err != nil {
		t.Fatalf("NewFontSourceFromFile failed: %v", err)
	}
	if source.Name() != "Go" {
		t.Errorf("Name() = %q, want %q", source.Name(), "Go")
	}

	if _, err := NewFontSourceFromFile(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNewFontSourceFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"fonts/Go-Italic.ttf": &fstest.MapFile{Data: goitalic.TTF},
	}

	source, err := NewFontSourceFromFS(fsys, "fonts/Go-Italic.ttf")
	if err != nil {
		t.Fatalf("NewFontSourceFromFS failed: %v", err)
	}
	md, ok := source.Metadata()
	if !ok {
		t.Fatal("expected metadata from default parser")
	}
	if !md.Italic {
		t.Error("Go Italic should report Italic = true")
	}
}

func TestFontSourceWithName(t *testing.T) {
	source, err := NewFontSource(goregular.TTF, WithName("brand-regular"))
	if err != nil {
		t.Fatal(err)
	}
	if source.Name() != "brand-regular" {
		t.Errorf("Name() = %q, want %q", source.Name(), "brand-regular")
	}
	if source.String() != "brand-regular" {
		t.Errorf("String() = %q", source.String())
	}
}

func TestFontSourceClose(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if err := source.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if _, err := source.Data(); !errors.Is(err, ErrClosed) {
		t.Errorf("Data() after Close error = %v, want ErrClosed", err)
	}
	if _, ok := source.Metadata(); ok {
		t.Error("Metadata() after Close should report false")
	}
	if source.PostScriptName() != "" {
		t.Error("PostScriptName() after Close should be empty")
	}
}

func TestFontSourceCopyPanics(t *testing.T) {
	source, err := NewFontSource(gobold.TTF)
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic when using a copied FontSource")
		}
	}()

	copied := &FontSource{addr: source.addr, name: source.name}
	_ = copied.Name()
}
