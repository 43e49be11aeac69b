package fontreg

import (
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gogpu/fontreg/internal/cache"
)

// Registry maps (family, weight, italic) to loaded fonts and resolves font
// requests against them.
//
// A Registry is populated once by Register and is read-only afterwards.
// All methods are safe for concurrent use.
type Registry struct {
	// initMu serializes Register so concurrent attaches populate once.
	initMu      sync.Mutex
	initialized atomic.Bool

	mu       sync.RWMutex
	fonts    map[Key]*entry
	families map[string][]Key
	assets   map[string]struct{}
	seq      uint64

	// memo caches resolutions by normalized request. It is only consulted
	// after initialization, when the registry no longer changes.
	memo *cache.Cache[Request, resolution]

	opts options
}

// entry is a registered font plus the order it was registered in.
type entry struct {
	font RegisteredFont
	seq  uint64
}

// New creates an empty, uninitialized Registry.
func New(opts ...Option) *Registry {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := &Registry{
		fonts:    make(map[Key]*entry),
		families: make(map[string][]Key),
		assets:   make(map[string]struct{}),
		opts:     o,
	}
	if o.cacheSize > 0 {
		r.memo = cache.New[Request, resolution](o.cacheSize)
	}
	return r
}

// CacheStats describes the resolution cache of a Registry.
type CacheStats = cache.Stats

// CacheStats reports resolution cache statistics. It returns the zero value
// when the cache is disabled.
func (r *Registry) CacheStats() CacheStats {
	if r.memo == nil {
		return CacheStats{}
	}
	return r.memo.Stats()
}

// Initialized reports whether Register has completed.
func (r *Registry) Initialized() bool {
	return r.initialized.Load()
}

// Len returns the number of registered fonts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.fonts)
}

// RegisteredFonts returns a snapshot of all registered fonts in
// registration order.
func (r *Registry) RegisteredFonts() []RegisteredFont {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*entry, 0, len(r.fonts))
	for _, e := range r.fonts {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	out := make([]RegisteredFont, len(entries))
	for i, e := range entries {
		out[i] = e.font
	}
	return out
}

// Families returns the registered family names, sorted.
func (r *Registry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.families))
	for f := range r.families {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// hasAsset reports whether asset was registered before.
func (r *Registry) hasAsset(asset string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.assets[asset]
	return ok
}

// insert stores f, replacing any font registered under the same key.
func (r *Registry) insert(f RegisteredFont) (replaced bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := f.Key()
	r.seq++
	r.assets[f.Asset] = struct{}{}
	if _, ok := r.fonts[k]; ok {
		replaced = true
	} else {
		r.families[k.Family] = append(r.families[k.Family], k)
	}
	r.fonts[k] = &entry{font: f, seq: r.seq}
	return replaced
}

// dump formats the registry for debug traces.
func (r *Registry) dump() string {
	fonts := r.RegisteredFonts()
	parts := make([]string, len(fonts))
	for i, f := range fonts {
		parts[i] = f.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
