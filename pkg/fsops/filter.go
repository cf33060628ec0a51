package fsops

// Filter decides whether a handle takes part in a traversal.
// A nil Filter means "accept all".
type Filter interface {
	Accept(h *Handle) bool
}

// FilterFunc adapts an ordinary function to the Filter interface.
type FilterFunc func(h *Handle) bool

// Accept calls f(h).
func (f FilterFunc) Accept(h *Handle) bool { return f(h) }
