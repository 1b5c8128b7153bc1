package eval

import "github.com/dpotapov/tplx/document"

// FilterSpec names a filter and the handle backing it: a function fed the
// piped-in input Document plus its own evaluated arguments, returning a
// Document or an error. Arity is validated once, at node-construction time
// (NewFilter), against Meta — the stand-in for the Rust core's
// FilterExecutor metadata.
type FilterSpec struct {
	Name string
	Meta Metadata
	Fn   func(input document.Document, args []document.Document, ctx ContextWrapper) (document.Document, error)
}

// FunctionSpec names a plain (non-piped) function and its handle.
type FunctionSpec struct {
	Name string
	Meta Metadata
	Fn   func(args []document.Document, ctx ContextWrapper) (document.Document, error)
}
