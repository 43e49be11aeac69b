package fontreg

import (
	"github.com/gogpu/fontreg/internal/familyname"
)

// DefaultSize is the point size used when a Request leaves Size zero.
const DefaultSize = 17.0

// Request is a logical font request.
type Request struct {
	// Family is the font family; empty means no family, which always
	// resolves to a system font. Namespaced names ("brand/Sans") are
	// reduced to their last segment, as at registration.
	Family string

	// Weight defaults to WeightNormal when zero.
	Weight Weight

	Italic bool

	// Size defaults to DefaultSize when zero, negative or NaN.
	Size float64

	// Debug logs how the request was resolved.
	Debug bool
}

// normalized fills in defaults.
func (req Request) normalized() Request {
	req.Family = familyname.Leaf(req.Family)
	req.Weight = req.Weight.orNormal()
	if !(req.Size > 0) {
		req.Size = DefaultSize
	}
	return req
}

// Resolve returns the best font for family, weight and italic, falling back
// to a system font. It never returns nil.
//
// Resolve panics with ErrNotInitialized if Register has not run.
func (r *Registry) Resolve(family string, weight Weight, italic bool) *Font {
	return r.ResolveRequest(Request{Family: family, Weight: weight, Italic: italic})
}

// Lookup is like Resolve but reports false instead of falling back to a
// system font. A request without a family never matches.
func (r *Registry) Lookup(family string, weight Weight, italic bool) (*Font, bool) {
	return r.LookupRequest(Request{Family: family, Weight: weight, Italic: italic})
}

// ResolveRequest is Resolve for a full Request.
func (r *Registry) ResolveRequest(req Request) *Font {
	return r.resolve(req).font
}

// LookupRequest is Lookup for a full Request.
//
// Candidates of the requested family and slant are searched in three tiers:
// exact weight, then the same bold class (weight >= BoldThreshold or not),
// then any weight. Within a tier the candidate nearest in weight wins, and
// among equally near candidates the one registered first.
func (r *Registry) LookupRequest(req Request) (*Font, bool) {
	res := r.resolve(req)
	if !res.matched {
		return nil, false
	}
	return res.font, true
}

// resolution is the outcome of a request. font is the system fallback
// when matched is false.
type resolution struct {
	font    *Font
	matched bool
}

// resolve normalizes req and resolves it, through the cache unless the
// request is traced.
func (r *Registry) resolve(req Request) resolution {
	r.mustBeInitialized()

	req = req.normalized()
	req.Debug = req.Debug || r.opts.debug
	if req.Debug || r.memo == nil {
		return r.resolveUncached(req)
	}
	return r.memo.GetOrCreate(req, func() resolution { return r.resolveUncached(req) })
}

func (r *Registry) resolveUncached(req Request) resolution {
	if f, ok := r.lookup(req); ok {
		return resolution{font: f, matched: true}
	}
	return resolution{font: r.systemFont(req)}
}

// lookup searches the registry and styles the match. Traces are logged
// when req.Debug is set.
func (r *Registry) lookup(req Request) (*Font, bool) {
	if req.Family == "" {
		if req.Debug {
			Logger().Debug("fontreg: no family provided",
				"weight", req.Weight, "italic", req.Italic, "size", req.Size)
		}
		return nil, false
	}

	rf, tier, ok := r.match(req)
	if !ok {
		if req.Debug {
			Logger().Debug("fontreg: failed to resolve font",
				"family", req.Family, "weight", req.Weight, "italic", req.Italic, "size", req.Size,
				"registered", r.dump())
		}
		return nil, false
	}

	f := r.opts.applier.Apply(Variant{
		Source: rf.Source,
		Family: rf.Family,
		Weight: rf.Weight,
		Italic: rf.Italic,
	}, req)
	f.tier = tier

	if req.Debug {
		Logger().Debug("fontreg: resolved font",
			"family", req.Family, "weight", req.Weight, "italic", req.Italic, "size", req.Size,
			"font", rf.String(), "tier", tier)
	}
	return f, true
}

// systemFont returns the styled system font for req.
func (r *Registry) systemFont(req Request) *Font {
	v := systemVariant(r.opts.system, StyleOf(req.Weight, req.Italic))
	f := r.opts.applier.Apply(v, req)
	f.tier = TierSystem
	return f
}

// match runs the tiered search.
func (r *Registry) match(req Request) (RegisteredFont, Tier, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if e, ok := r.fonts[Key{Family: req.Family, Weight: req.Weight, Italic: req.Italic}]; ok {
		return e.font, TierExact, true
	}

	var candidates []*entry
	for _, k := range r.families[req.Family] {
		if k.Italic == req.Italic {
			candidates = append(candidates, r.fonts[k])
		}
	}
	if len(candidates) == 0 {
		return RegisteredFont{}, 0, false
	}

	bold := req.Weight.IsBold()
	if e := nearest(candidates, req.Weight, func(w Weight) bool { return w.IsBold() == bold }); e != nil {
		return e.font, TierBoldClass, true
	}
	e := nearest(candidates, req.Weight, nil)
	return e.font, TierItalic, true
}

// nearest returns the candidate accepted by keep (nil keeps all) with the
// smallest weight distance to w, breaking ties by registration order.
func nearest(candidates []*entry, w Weight, keep func(Weight) bool) *entry {
	var best *entry
	for _, c := range candidates {
		if keep != nil && !keep(c.font.Weight) {
			continue
		}
		if best == nil {
			best = c
			continue
		}
		d, bd := c.font.Weight.distance(w), best.font.Weight.distance(w)
		if d < bd || (d == bd && c.seq < best.seq) {
			best = c
		}
	}
	return best
}

// mustBeInitialized panics if Register has not completed.
func (r *Registry) mustBeInitialized() {
	if !r.initialized.Load() {
		panic(ErrNotInitialized)
	}
}
