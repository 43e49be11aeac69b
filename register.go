package fontreg

import (
	"io/fs"
	"path"

	"github.com/gogpu/fontreg/manifest"
	"github.com/gogpu/fontreg/text"
)

// Loader loads the font behind a manifest asset.
type Loader interface {
	Load(asset string) (*text.FontSource, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(asset string) (*text.FontSource, error)

// Load implements Loader.
func (f LoaderFunc) Load(asset string) (*text.FontSource, error) {
	return f(asset)
}

// FSLoader loads assets from a file system, typically an embed.FS or the
// application's asset directory.
type FSLoader struct {
	FS fs.FS

	// Dir is prepended to every asset path.
	Dir string

	// Options are passed to text.NewFontSource.
	Options []text.SourceOption
}

// Load implements Loader.
func (l FSLoader) Load(asset string) (*text.FontSource, error) {
	if l.FS == nil {
		return nil, ErrNoAssets
	}
	name := asset
	if l.Dir != "" {
		name = path.Join(l.Dir, asset)
	}
	return text.NewFontSourceFromFS(l.FS, name, l.Options...)
}

// Register populates the registry from manifest entries, loading every
// asset with loader. It runs once: the first call registers and returns
// true, every later call is a no-op that returns false.
//
// An asset that was already registered is skipped. An asset that fails to
// load is logged and skipped. Weight and italic come from the font file
// when its parser exposes them, otherwise from the manifest hints. A font
// whose key is already taken replaces the earlier one.
func (r *Registry) Register(entries []manifest.Entry, loader Loader) bool {
	r.initMu.Lock()
	defer r.initMu.Unlock()

	if r.initialized.Load() {
		Logger().Debug("fontreg: already initialized")
		return false
	}

	for _, e := range entries {
		family := e.Leaf()
		for _, a := range e.Fonts {
			r.registerAsset(family, a, loader)
		}
	}

	r.initialized.Store(true)
	Logger().Info("fontreg: registered fonts", "fonts", r.Len(), "families", len(r.Families()))
	return true
}

func (r *Registry) registerAsset(family string, a manifest.Asset, loader Loader) {
	if r.hasAsset(a.Asset) {
		Logger().Debug("fontreg: asset already registered, skipping", "asset", a.Asset)
		return
	}

	src, err := load(loader, a.Asset)
	if err != nil {
		Logger().Warn("fontreg: skipping font asset",
			"err", &LoadError{Family: family, Asset: a.Asset, Err: err})
		return
	}

	weight, italic := Weight(a.WeightHint()), a.IsItalicHint()
	if md, ok := src.Metadata(); ok {
		weight, italic = Weight(md.Weight), md.Italic
	}

	f := RegisteredFont{
		Family:         family,
		Asset:          a.Asset,
		Weight:         weight,
		Italic:         italic,
		PostScriptName: src.PostScriptName(),
		Source:         src,
	}
	if r.insert(f) {
		Logger().Debug("fontreg: replaced font with same key", "font", f.String())
	} else {
		Logger().Debug("fontreg: registered font", "font", f.String())
	}
}

func load(loader Loader, asset string) (*text.FontSource, error) {
	if loader == nil {
		return nil, ErrNoLoader
	}
	if asset == "" {
		return nil, ErrEmptyAsset
	}
	src, err := loader.Load(asset)
	if err != nil {
		return nil, err
	}
	if src == nil {
		return nil, text.ErrEmptyFontData
	}
	return src, nil
}
