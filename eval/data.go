package eval

import (
	"github.com/dpotapov/tplx/document"
	"github.com/dpotapov/tplx/errkind"
)

// Data is the value carrier threaded between node evaluations: either a
// successful Document or a deferred failure. Every intermediate evaluation
// result flows through Data so that errors propagate as values instead of
// unwinding the call stack (see spec's error-handling design).
//
// Unlike the Rust core this was modeled on, Data does not wrap a separate
// InnerData layer: Document is already a plain, cheaply-copyable value
// (its Seq/Map variants share backing storage), so there is no ownership
// benefit to a move-only intermediate type the way there is in Rust. Take
// is kept as an explicit method anyway, for the same "don't clone a
// container you're about to discard" calling convention the Rust core
// documents, even though in Go it is just a named identity read.
type Data struct {
	doc document.Document
	err error
}

// NewData wraps a successful Document.
func NewData(d document.Document) Data { return Data{doc: d} }

// NewErr wraps a deferred failure.
func NewErr(err error) Data { return Data{err: err} }

// Empty returns the Unit constant.
func Empty() Data { return Data{} }

// Check wraps an Ok/Err into a Data whose value is Unit on success or Err
// on failure.
func Check(err error) Data {
	if err != nil {
		return NewErr(err)
	}
	return Empty()
}

// FromSlice builds a Seq Data from a slice of evaluated Data; the first Err
// encountered collapses the whole sequence to that Err (spec's
// container-typed Err contagion rule).
func FromSlice(vs []Data) Data {
	docs := make([]document.Document, len(vs))
	for i, v := range vs {
		if v.IsErr() {
			return v
		}
		docs[i] = v.doc
	}
	return NewData(document.Seq(docs))
}

// IsErr reports whether this carrier holds a deferred failure.
func (d Data) IsErr() bool { return d.err != nil }

// Document returns the underlying Document, ignoring any Err (callers that
// care about errors should use IntoDocument or IntoResult instead).
func (d Data) Document() document.Document { return d.doc }

// Err returns the underlying error, or nil if d holds a Document.
func (d Data) Err() error { return d.err }

// IntoDocument yields the Document, or propagates the Err.
func (d Data) IntoDocument() (document.Document, error) {
	if d.err != nil {
		return document.Unit, d.err
	}
	return d.doc, nil
}

// IntoResult yields (d, nil) when ok, or (Data{}, err) when this carrier
// holds an Err — the error is never silently dropped.
func (d Data) IntoResult() (Data, error) {
	if d.err != nil {
		return Data{}, d.err
	}
	return d, nil
}

// Take moves the carrier's contents out; see the type doc for why this is
// an identity read rather than a true move in Go.
func (d Data) Take() Data { return d }

// render stringifies a successful Data, or returns its Err when it holds
// one — used by operations (Concat, ForLoop) that need a node's rendered
// text rather than its raw Document.
func (d Data) render() (string, error) {
	doc, err := d.IntoDocument()
	if err != nil {
		return "", err
	}
	return doc.Render(), nil
}

// errToData builds a Data carrying a RenderFailure with msg and kv.
func errToData(msg string, kv ...any) Data {
	return NewErr(errkind.RenderFailure(msg, kv...))
}
