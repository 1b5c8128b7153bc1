package eval

import "github.com/dpotapov/tplx/document"

// Metadata describes the inclusive range of child-node counts an Executor
// accepts. MaxNodes of -1 means unbounded (mirrors the Rust core's
// Metadata{minimum_nodes, maximum_nodes}, with None represented as -1
// instead of an Option).
type Metadata struct {
	MinNodes int
	MaxNodes int
}

// Accepts reports whether n child nodes satisfy m.
func (m Metadata) Accepts(n int) bool {
	if n < m.MinNodes {
		return false
	}
	if m.MaxNodes >= 0 && n > m.MaxNodes {
		return false
	}
	return true
}

// Executor evaluates an Operation node's child nodes. There are four
// executor shapes among the built-in operations (a fifth and sixth,
// Filter and Function, are realized directly by the Filter/Function node
// kinds instead of through this interface — see handle.go):
//
//   - pipedExecutor: evaluate every child node to a Document, then fold
//     (arithmetic, boolean, comparison operators).
//   - conditionalExecutor: evaluate the first child as a condition and
//     execute exactly one of the remaining two children (if_then).
//   - indeterminateExecutor: arbitrary behavior needing the raw, unevaluated
//     nodes rather than pre-evaluated Documents (set, concat).
//   - loopExecutor: the for-loop's three-node shape (binding, iterable, body).
type Executor interface {
	Metadata() Metadata
	Exec(nodes []Node, ctx ContextWrapper) Data
}

type pipedExecutor struct {
	meta Metadata
	fn   func(docs []document.Document) Data
}

func (e pipedExecutor) Metadata() Metadata { return e.meta }

func (e pipedExecutor) Exec(nodes []Node, ctx ContextWrapper) Data {
	docs := make([]document.Document, len(nodes))
	for i, n := range nodes {
		d := n.Exec(ctx)
		if d.IsErr() {
			return d
		}
		docs[i] = d.Document()
	}
	return e.fn(docs)
}

type conditionalExecutor struct{}

func (conditionalExecutor) Metadata() Metadata { return Metadata{MinNodes: 2, MaxNodes: 3} }

func (conditionalExecutor) Exec(nodes []Node, ctx ContextWrapper) Data {
	cond := nodes[0].Exec(ctx)
	if cond.IsErr() {
		return cond
	}
	b, ok := cond.Document().Bool()
	if !ok {
		return errToData("if condition must be boolean")
	}
	if b {
		return nodes[1].Exec(ctx)
	}
	if len(nodes) == 3 {
		return nodes[2].Exec(ctx)
	}
	return Empty()
}

type indeterminateExecutor struct {
	meta Metadata
	fn   func(nodes []Node, ctx ContextWrapper) Data
}

func (e indeterminateExecutor) Metadata() Metadata { return e.meta }

func (e indeterminateExecutor) Exec(nodes []Node, ctx ContextWrapper) Data {
	return e.fn(nodes, ctx)
}

type loopExecutor struct{}

func (loopExecutor) Metadata() Metadata { return Metadata{MinNodes: 3, MaxNodes: 3} }

func (loopExecutor) Exec(nodes []Node, ctx ContextWrapper) Data {
	return execForLoop(nodes[0], nodes[1], nodes[2], ctx)
}

// Operations is the name-to-executor registry a parser (or, here, the tplx
// façade building node trees by hand) consults to attach behavior to an
// Operation node, mirroring the Rust core's map_operations! macro table.
var Operations = map[string]Executor{}

func registerOperation(name string, ex Executor) {
	Operations[name] = ex
}
