// Package manifest reads font manifests: the declarative list of font
// families and the asset files that back them.
//
// The JSON form is the one Flutter tooling generates as FontManifest.json:
//
//	[
//	  {
//	    "family": "packages/brand/Sans",
//	    "fonts": [
//	      {"asset": "fonts/Sans-Regular.ttf"},
//	      {"asset": "fonts/Sans-Bold.ttf", "weight": 700},
//	      {"asset": "fonts/Sans-Italic.ttf", "style": "italic"}
//	    ]
//	  }
//	]
//
// The same structure is accepted as YAML.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/gogpu/fontreg/internal/familyname"
)

// DefaultName is the manifest file name looked up in an asset bundle.
const DefaultName = "FontManifest.json"

// DefaultWeight is the weight assumed for assets that declare none.
const DefaultWeight = 400

// ErrMalformed is returned when a manifest decodes but is structurally
// invalid (an entry without a family). Problems with single font assets
// are left to the registrar, which skips them.
var ErrMalformed = errors.New("manifest: malformed manifest")

// Entry is one family declaration.
type Entry struct {
	Family string  `json:"family" yaml:"family"`
	Fonts  []Asset `json:"fonts" yaml:"fonts"`
}

// Asset is one font file of a family, with optional style hints.
type Asset struct {
	Asset  string `json:"asset" yaml:"asset"`
	Weight *int   `json:"weight,omitempty" yaml:"weight,omitempty"`
	Style  string `json:"style,omitempty" yaml:"style,omitempty"`
}

// Leaf returns the lookup key for the family: the last "/" segment of the
// declared name.
func (e Entry) Leaf() string {
	return familyname.Leaf(e.Family)
}

// WeightHint returns the declared weight, or DefaultWeight.
func (a Asset) WeightHint() int {
	if a.Weight == nil {
		return DefaultWeight
	}
	return *a.Weight
}

// IsItalicHint reports whether the style hint names a slanted style.
func (a Asset) IsItalicHint() bool {
	switch strings.ToLower(strings.TrimSpace(a.Style)) {
	case "italic", "oblique":
		return true
	}
	return false
}

// Parse decodes a JSON manifest.
func Parse(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("manifest: decode json: %w", err)
	}
	if err := validate(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Load reads and decodes the manifest called name from fsys. Files ending
// in .yaml or .yml are decoded as YAML, everything else as JSON.
func Load(fsys fs.FS, name string) ([]Entry, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", name, err)
	}

	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Parse(data)
	}
}

// validate rejects entries without a family.
func validate(entries []Entry) error {
	for i, e := range entries {
		if e.Family == "" {
			return fmt.Errorf("%w: entry %d has no family", ErrMalformed, i)
		}
	}
	return nil
}
