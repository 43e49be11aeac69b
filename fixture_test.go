package fontreg

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"testing"

	"github.com/gogpu/fontreg/manifest"
	"github.com/gogpu/fontreg/text"
)

// fixtureParserName parses the fake font files used throughout the tests.
// A fixture file is plain text: "<name> [<weight> italic|upright]".
// Files without weight carry no metadata; "corrupt" fails to parse.
const fixtureParserName = "fontreg-fixture"

func init() {
	text.RegisterParser(fixtureParserName, fixtureParser{})
}

type fixtureParser struct{}

func (fixtureParser) Parse(data []byte) (text.ParsedFont, error) {
	fields := strings.Fields(string(data))
	if len(fields) == 0 || fields[0] == "corrupt" {
		return nil, errors.New("fixture: corrupt font")
	}
	f := fixtureFont{name: fields[0]}
	if len(fields) >= 3 {
		w, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, err
		}
		f.md = text.Metadata{Weight: w, Italic: fields[2] == "italic"}
		f.hasMD = true
	}
	return f, nil
}

type fixtureFont struct {
	name  string
	md    text.Metadata
	hasMD bool
}

func (f fixtureFont) Name() string                    { return f.name }
func (f fixtureFont) FullName() string                { return f.name }
func (f fixtureFont) PostScriptName() string          { return f.name + "-PS" }
func (f fixtureFont) Metadata() (text.Metadata, bool) { return f.md, f.hasMD }

// fixtureLoader loads fixture files from an asset -> contents map.
func fixtureLoader(files map[string]string) Loader {
	return LoaderFunc(func(asset string) (*text.FontSource, error) {
		data, ok := files[asset]
		if !ok {
			return nil, fmt.Errorf("open %s: %w", asset, fs.ErrNotExist)
		}
		return text.NewFontSource([]byte(data), text.WithParser(fixtureParserName))
	})
}

// variant declares one registered font for registryWith.
type variant struct {
	family string
	asset  string
	weight Weight
	italic bool
}

func fixtureData(v variant) string {
	slant := "upright"
	if v.italic {
		slant = "italic"
	}
	return fmt.Sprintf("%s %d %s", v.asset, v.weight, slant)
}

// registryWith builds and registers a registry holding the given variants,
// one manifest entry per variant, in order.
func registryWith(t testing.TB, opts []Option, variants ...variant) *Registry {
	t.Helper()

	files := make(map[string]string, len(variants))
	entries := make([]manifest.Entry, 0, len(variants))
	for _, v := range variants {
		files[v.asset] = fixtureData(v)
		entries = append(entries, manifest.Entry{
			Family: v.family,
			Fonts:  []manifest.Asset{{Asset: v.asset}},
		})
	}

	r := New(opts...)
	if !r.Register(entries, fixtureLoader(files)) {
		t.Fatal("Register() = false on a fresh registry")
	}
	return r
}
