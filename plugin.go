package fontreg

import (
	"io/fs"
	"sync"

	"github.com/gogpu/fontreg/manifest"
)

// Binding is what the host hands the plugin when it attaches.
type Binding struct {
	// Assets is the application's asset bundle.
	Assets fs.FS

	// Manifest is the manifest path inside Assets.
	// Defaults to manifest.DefaultName.
	Manifest string

	// Loader loads font assets. Defaults to an FSLoader over Assets.
	Loader Loader
}

// Plugin connects a Registry to the host application's lifecycle.
type Plugin struct {
	registry *Registry
}

// NewPlugin returns a plugin populating r, or the process-wide registry
// when r is nil.
func NewPlugin(r *Registry) *Plugin {
	if r == nil {
		r = Default()
	}
	return &Plugin{registry: r}
}

// Registry returns the registry the plugin populates.
func (p *Plugin) Registry() *Registry {
	return p.registry
}

// OnAttach loads the font manifest from the binding and registers its
// fonts. A missing or malformed manifest is logged and leaves the
// registry initialized with no fonts. Only the first attach registers.
func (p *Plugin) OnAttach(b Binding) {
	if p.registry.Initialized() {
		Logger().Debug("fontreg: already initialized")
		return
	}

	name := b.Manifest
	if name == "" {
		name = manifest.DefaultName
	}
	loader := b.Loader
	if loader == nil && b.Assets != nil {
		loader = FSLoader{FS: b.Assets}
	}

	var entries []manifest.Entry
	if b.Assets == nil {
		Logger().Error("fontreg: no asset bundle to load the font manifest from", "manifest", name)
	} else {
		var err error
		entries, err = manifest.Load(b.Assets, name)
		if err != nil {
			Logger().Error("fontreg: failed to load font manifest", "manifest", name, "err", err)
			entries = nil
		}
	}

	p.registry.Register(entries, loader)
}

// OnDetach does nothing: registered fonts stay valid for the life of the
// process.
func (p *Plugin) OnDetach(Binding) {}

var defaultRegistry = sync.OnceValue(func() *Registry { return New() })

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry()
}

// Resolve resolves against the process-wide registry. See Registry.Resolve.
func Resolve(family string, weight Weight, italic bool) *Font {
	return Default().Resolve(family, weight, italic)
}

// Lookup looks up in the process-wide registry. See Registry.Lookup.
func Lookup(family string, weight Weight, italic bool) (*Font, bool) {
	return Default().Lookup(family, weight, italic)
}

// RegisteredFonts lists the process-wide registry. See Registry.RegisteredFonts.
func RegisteredFonts() []RegisteredFont {
	return Default().RegisteredFonts()
}
