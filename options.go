package fontreg

// Option configures a Registry during creation.
//
// Example:
//
//	// Renderer without continuous weights
//	r := fontreg.New(fontreg.WithStyleApplier(fontreg.DiscreteStyle{}))
type Option func(*options)

// options holds optional configuration for a Registry.
type options struct {
	applier StyleApplier
	system  SystemFonts
	debug   bool

	// cacheSize is the soft limit of the resolution cache; 0 disables it.
	cacheSize int
}

// DefaultCacheSize is the default number of resolved requests a Registry
// remembers.
const DefaultCacheSize = 256

// defaultOptions returns the default registry options.
func defaultOptions() options {
	return options{
		applier: ContinuousStyle{},
		system:  defaultGoFonts,

		cacheSize: DefaultCacheSize,
	}
}

// WithStyleApplier sets how matched fonts are styled to the request.
// The default is ContinuousStyle.
func WithStyleApplier(a StyleApplier) Option {
	return func(o *options) {
		if a != nil {
			o.applier = a
		}
	}
}

// WithSystemFonts sets the fallback fonts. The default is the Go font family.
func WithSystemFonts(s SystemFonts) Option {
	return func(o *options) {
		if s != nil {
			o.system = s
		}
	}
}

// WithDebug enables resolution tracing for every request, as if each
// Request had Debug set.
func WithDebug(enabled bool) Option {
	return func(o *options) {
		o.debug = enabled
	}
}

// WithCacheSize sets how many resolved requests the Registry remembers.
// Zero or a negative size disables the cache. Traced requests always
// bypass it.
func WithCacheSize(n int) Option {
	return func(o *options) {
		o.cacheSize = max(n, 0)
	}
}
