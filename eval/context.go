package eval

import (
	"strconv"

	"github.com/dpotapov/tplx/document"
	"github.com/dpotapov/tplx/errkind"
)

// Context is the scoped variable environment: path-based read, path-based
// write, and nestable child scopes. A Context is not safe for concurrent
// use by multiple goroutines; callers evaluating the same node tree on
// several goroutines must each bring their own Context (see spec's
// concurrency model).
type Context interface {
	// GetPath resolves segments into the store, returning Unit when any
	// segment is absent. Numeric segments index into sequences.
	GetPath(segments []string) document.Document

	// SetPath inserts or overwrites the value at keys, creating
	// intermediate maps as needed. It fails when the path descends through
	// a scalar or a sequence with an incompatible key.
	SetPath(keys []document.Document, value document.Document) error

	// Wrap obtains a ContextWrapper bound to this store, for use by executors.
	Wrap() ContextWrapper

	// Scoped creates a fresh child context overlaying this one.
	Scoped() Context
}

// ContextWrapper is the capability executors receive: a Context that also
// happens to be the thing every child node's Exec call is given, so an
// executor never needs to special-case "the context I was handed" vs "the
// context I should pass down" — they are the same value (mirrors the Rust
// core's ContextWrapper, which exists there only because of borrow-checker
// lifetimes that Go's GC makes unnecessary to mirror beyond the type name).
type ContextWrapper struct {
	ctx Context
}

var _ Context = ContextWrapper{}

func (w ContextWrapper) GetPath(segments []string) document.Document {
	return w.ctx.GetPath(segments)
}

func (w ContextWrapper) SetPath(keys []document.Document, value document.Document) error {
	return w.ctx.SetPath(keys, value)
}

func (w ContextWrapper) Wrap() ContextWrapper { return w }

func (w ContextWrapper) Scoped() Context { return w.ctx.Scoped() }

// RootContext holds the initial Document passed in to evaluate a template.
type RootContext struct {
	root *document.Document
}

var _ Context = (*RootContext)(nil)

// NewRootContext creates a root context seeded with initial.
func NewRootContext(initial document.Document) *RootContext {
	root := initial
	return &RootContext{root: &root}
}

func (c *RootContext) GetPath(segments []string) document.Document {
	return getPath(*c.root, segments)
}

func (c *RootContext) SetPath(keys []document.Document, value document.Document) error {
	updated, err := setPath(*c.root, keys, value)
	if err != nil {
		return err
	}
	*c.root = updated
	return nil
}

func (c *RootContext) Wrap() ContextWrapper { return ContextWrapper{ctx: c} }

func (c *RootContext) Scoped() Context { return newScopedContext(c) }

// scopedContext is a child overlay: a back-reference to its parent plus a
// small local store. Reads consult the local overlay first and fall back
// to the parent; writes only ever touch the local overlay, so a write
// performed inside a scope is never visible once the scope returns (spec's
// invariant: scopes do NOT shadow writes upward).
//
// Shadowing granularity is per top-level segment: once a name is written
// locally, further reads through that name resolve entirely within the
// overlay (they do not fall through to the parent's value for that name at
// a deeper path), matching how a for-loop or scope binding is meant to
// replace a whole name, not merge into it.
type scopedContext struct {
	parent  Context
	overlay *document.Document
}

var _ Context = (*scopedContext)(nil)

func newScopedContext(parent Context) *scopedContext {
	unit := document.Unit
	return &scopedContext{parent: parent, overlay: &unit}
}

func (c *scopedContext) GetPath(segments []string) document.Document {
	if len(segments) == 0 {
		return getPath(*c.overlay, segments)
	}
	if hasTopLevel(*c.overlay, segments[0]) {
		return getPath(*c.overlay, segments)
	}
	return c.parent.GetPath(segments)
}

func (c *scopedContext) SetPath(keys []document.Document, value document.Document) error {
	updated, err := setPath(*c.overlay, keys, value)
	if err != nil {
		return err
	}
	*c.overlay = updated
	return nil
}

func (c *scopedContext) Wrap() ContextWrapper { return ContextWrapper{ctx: c} }

func (c *scopedContext) Scoped() Context { return newScopedContext(c) }

// hasTopLevel reports whether the overlay has a binding for the path's
// first segment at all (used to decide whether a read should stay local or
// fall through to the parent).
func hasTopLevel(overlay document.Document, first string) bool {
	if overlay.Kind() != document.KindMap {
		return false
	}
	m, _ := overlay.Map()
	_, ok := m.Get(document.String(first))
	return ok
}

// getPath walks root segment by segment; numeric segments index sequences,
// everything else indexes maps. Absent segments resolve to Unit.
func getPath(root document.Document, segments []string) document.Document {
	cur := root
	for _, seg := range segments {
		switch cur.Kind() {
		case document.KindMap:
			cur = cur.Field(seg)
		case document.KindSeq:
			idx, err := strconv.Atoi(seg)
			if err != nil {
				return document.Unit
			}
			cur = cur.Index(idx)
		default:
			return document.Unit
		}
	}
	return cur
}

// setPath rebuilds root with keys set to value, creating intermediate maps
// as needed. keys may be non-string Documents, so map entries with
// non-string keys can be addressed.
func setPath(root document.Document, keys []document.Document, value document.Document) (document.Document, error) {
	if len(keys) == 0 {
		return value, nil
	}
	key := keys[0]
	rest := keys[1:]

	switch root.Kind() {
	case document.KindUnit, document.KindMap:
		var child document.Document
		if root.Kind() == document.KindMap {
			m, _ := root.Map()
			if v, ok := m.Get(key); ok {
				child = v
			}
		}
		updatedChild, err := setPath(child, rest, value)
		if err != nil {
			return document.Unit, err
		}
		updated, ok := root.WithField(key, updatedChild)
		if !ok {
			return document.Unit, errkind.RenderFailure("cannot assign through non-map")
		}
		return updated, nil
	case document.KindSeq:
		idx, ok := key.CastInt64()
		if !ok {
			return document.Unit, errkind.RenderFailure("cannot assign through non-map")
		}
		child := root.Index(int(idx))
		updatedChild, err := setPath(child, rest, value)
		if err != nil {
			return document.Unit, err
		}
		updated, ok := root.WithIndex(int(idx), updatedChild)
		if !ok {
			return document.Unit, errkind.RenderFailure("cannot assign through non-map")
		}
		return updated, nil
	default:
		return document.Unit, errkind.RenderFailure("cannot assign through non-map")
	}
}
