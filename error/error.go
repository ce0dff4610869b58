// Package error provides a generic error wrapper that attaches an optional
// detail string to any error kind.
//
// The kind stays reachable through Kind() and Unwrap(), so callers keep
// matching on it with errors.Is / errors.As as if the wrapper were not there.
package error

import (
	"errors"

	"github.com/next-trace/scg-errno/contract"
	"github.com/next-trace/scg-errno/errno"
)

// Wrapper pairs an error kind with optional call-site detail.
//
// Fields:
//   - kind:   the classifying error (e.g. an errno.Code)
//   - detail: free-text context, e.g. "config.toml missing"; absence means
//     no extra context, not a failure
//
// Wrapper is a value; it has no setters. Replace it wholesale to change it.
// Two wrappers compare equal with == when kind and detail are equal, provided
// K is comparable.
type Wrapper[K error] struct {
	kind   K
	detail detail
}

type detail struct {
	text string
	set  bool
}

// compile-time guarantee that Wrapper implements contract.Detailed
var _ contract.Detailed = Wrapper[errno.Code]{}

// ------ standard error interface

// Error returns the kind's description. Detail is never included.
func (w Wrapper[K]) Error() string { return w.Description() }

// Unwrap exposes the kind, so errors.Is / errors.As see through the wrapper.
func (w Wrapper[K]) Unwrap() error { return w.kind }

// ------ contract.Detailed

// Kind returns the wrapped kind. The result is a copy; the wrapper is not
// affected by anything done with it.
func (w Wrapper[K]) Kind() K { return w.kind }

// Detail returns the detail text and whether one was set.
func (w Wrapper[K]) Detail() (string, bool) { return w.detail.text, w.detail.set }

// Description delegates to the kind.
func (w Wrapper[K]) Description() string {
	switch k := any(w.kind).(type) {
	case nil:
		return "<nil>"
	case contract.Describer:
		return k.Description()
	default:
		return w.kind.Error()
	}
}

// Cause returns the kind's own underlying error, if any.
func (w Wrapper[K]) Cause() error {
	if any(w.kind) == nil {
		return nil
	}

	return errors.Unwrap(w.kind)
}

// WithDetail returns a copy of w carrying the given detail.
func (w Wrapper[K]) WithDetail(text string) Wrapper[K] {
	w.detail = detail{text: text, set: true}
	return w
}

// ------ core constructors

// New wraps kind. Without options the detail is absent.
func New[K error](kind K, opts ...Option) Wrapper[K] {
	w := Wrapper[K]{kind: kind}
	for _, o := range opts {
		o(&w.detail)
	}

	return w
}

// From lifts kind into a Wrapper with no detail. It is meant for error-return
// points: return From(errno.ENOENT).
func From[K error](kind K) Wrapper[K] {
	return Wrapper[K]{kind: kind}
}
