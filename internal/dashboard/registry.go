package dashboard

import (
	"github.com/kpumuk/lazyplot/internal/chart"
	"github.com/kpumuk/lazyplot/internal/render"
)

// Entry is the registry slot of one chart kind.
type Entry struct {
	Kind   chart.Kind
	Handle render.Handle
	// Mounted is false when the view has no target for the slot.
	Mounted bool
	Loading bool
	Hidden  bool
}

// Rendered reports whether the slot shows a chart.
func (e Entry) Rendered() bool {
	return e.Handle != nil && !e.Loading
}

// Registry holds exactly one entry per chart kind.
type Registry struct {
	entries [chart.Count]Entry
}

// NewRegistry returns a registry with every slot mounted and empty.
func NewRegistry() *Registry {
	r := &Registry{}
	for _, k := range chart.Kinds() {
		r.entries[k] = Entry{Kind: k, Mounted: true}
	}
	return r
}

func (r *Registry) entry(k chart.Kind) *Entry {
	if !k.Valid() {
		return nil
	}
	return &r.entries[k]
}

// Entry returns a copy of the slot of k.
func (r *Registry) Entry(k chart.Kind) Entry {
	if e := r.entry(k); e != nil {
		return *e
	}
	return Entry{Kind: k}
}

// Entries returns all slots in kind order.
func (r *Registry) Entries() []Entry {
	return append([]Entry(nil), r.entries[:]...)
}

// Visible returns the slots that pass the filter, in kind order.
func (r *Registry) Visible() []Entry {
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if !e.Hidden {
			out = append(out, e)
		}
	}
	return out
}

// Mount sets whether the slot of k has a render target.
func (r *Registry) Mount(k chart.Kind, mounted bool) {
	if e := r.entry(k); e != nil {
		e.Mounted = mounted
	}
}

// Handles returns the non-nil handles in kind order.
func (r *Registry) Handles() []render.Handle {
	var out []render.Handle
	for _, e := range r.entries {
		if e.Handle != nil {
			out = append(out, e.Handle)
		}
	}
	return out
}

func (r *Registry) setLoading(loading bool) {
	for i := range r.entries {
		r.entries[i].Loading = loading
	}
}

// Loading reports whether any slot is still loading.
func (r *Registry) Loading() bool {
	for _, e := range r.entries {
		if e.Loading {
			return true
		}
	}
	return false
}
