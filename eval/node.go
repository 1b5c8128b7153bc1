package eval

import (
	"github.com/dpotapov/tplx/document"
	"github.com/dpotapov/tplx/errkind"
)

// NodeKind enumerates the closed set of node shapes a template body can be
// built from. A parser (out of scope here; see SPEC_FULL.md) would be the
// thing calling the New* constructors below.
type NodeKind int

const (
	KindLiteral NodeKind = iota
	KindVariable
	KindScope
	KindArray
	KindMap
	KindFilter
	KindFunction
	KindOperation
	KindExpr
	KindEmpty
)

// MapEntry is one key/value pair of a Map node, each side itself a node so
// that both keys and values may be computed rather than literal.
type MapEntry struct {
	Key   Node
	Value Node
}

// Node is a single element of the evaluation tree. It is a closed tagged
// union realized as a struct (mirroring chtml.Node's Type-tagged struct
// rather than a Rust-style enum, since Go has no sum types): only the
// fields relevant to kind are populated, and Exec switches on kind.
type Node struct {
	kind NodeKind

	lit document.Document

	path []string

	child *Node

	items []Node

	entries []MapEntry

	filterInput *Node
	filterSpec  FilterSpec
	filterArgs  []Node

	fnSpec FunctionSpec
	fnArgs []Node

	opName  string
	opExec  Executor
	opNodes []Node
}

// NewLiteral builds a constant-value node.
func NewLiteral(d document.Document) Node {
	return Node{kind: KindLiteral, lit: d}
}

// NewVariable builds a node that reads path from the context at Exec time.
func NewVariable(path ...string) Node {
	p := make([]string, len(path))
	copy(p, path)
	return Node{kind: KindVariable, path: p}
}

// NewScope wraps child so it executes inside a freshly spawned child
// context, isolating any SetPath it performs from the enclosing scope.
func NewScope(child Node) Node {
	return Node{kind: KindScope, child: &child}
}

// NewArray builds a node whose Exec evaluates each item and collects the
// results into a Seq, short-circuiting on the first Err.
func NewArray(items ...Node) Node {
	cp := make([]Node, len(items))
	copy(cp, items)
	return Node{kind: KindArray, items: cp}
}

// NewExpr builds an ordered child sequence that has not yet been bound to
// an operation (original_source/node.rs's Node::Expr). Unlike Array,
// which always produces a Seq, Expr collapses: zero children evaluate to
// Unit, exactly one child evaluates to that child's own result (not a
// one-element Seq), and more than one behaves like Array.
func NewExpr(items ...Node) Node {
	cp := make([]Node, len(items))
	copy(cp, items)
	return Node{kind: KindExpr, items: cp}
}

// NewEmpty builds a node that always evaluates to Unit.
func NewEmpty() Node {
	return Node{kind: KindEmpty}
}

// NewMap builds a node whose Exec evaluates every key and value and
// collects them into an ordered Map, short-circuiting on the first Err.
func NewMap(entries ...MapEntry) Node {
	cp := make([]MapEntry, len(entries))
	copy(cp, entries)
	return Node{kind: KindMap, entries: cp}
}

// NewFilter builds a "input | name(args...)" node. It fails at construction
// time (a errkind.ParseFailure, standing in for what a parser would reject
// before ever building the tree) when len(args) falls outside spec.Meta.
func NewFilter(input Node, spec FilterSpec, args ...Node) (Node, error) {
	if !spec.Meta.Accepts(len(args)) {
		return Node{}, errkind.ParseFailure("filter arity out of range",
			"filter", spec.Name, "got", len(args))
	}
	cp := make([]Node, len(args))
	copy(cp, args)
	return Node{kind: KindFilter, filterInput: &input, filterSpec: spec, filterArgs: cp}, nil
}

// NewFunction builds a "name(args...)" node, with the same construction-time
// arity check as NewFilter.
func NewFunction(spec FunctionSpec, args ...Node) (Node, error) {
	if !spec.Meta.Accepts(len(args)) {
		return Node{}, errkind.ParseFailure("function arity out of range",
			"function", spec.Name, "got", len(args))
	}
	cp := make([]Node, len(args))
	copy(cp, args)
	return Node{kind: KindFunction, fnSpec: spec, fnArgs: cp}, nil
}

// NewOperation builds a node bound to one of the built-in Operations
// executors (arithmetic, boolean, comparison, if_then, concat, set,
// for_loop). Arity is checked against ex.Metadata(), the same as filters
// and functions.
func NewOperation(name string, ex Executor, nodes ...Node) (Node, error) {
	if !ex.Metadata().Accepts(len(nodes)) {
		return Node{}, errkind.ParseFailure("operation arity out of range",
			"operation", name, "got", len(nodes))
	}
	cp := make([]Node, len(nodes))
	copy(cp, nodes)
	return Node{kind: KindOperation, opName: name, opExec: ex, opNodes: cp}, nil
}

// WithOperation pivots an Expr node into an Operation node bound to ex,
// reusing the Expr's own children as the operation's nodes — the Go
// counterpart of the parser step original_source/node.rs calls
// set_operation: a child sequence is first built as an untyped Expr, and
// only once the parser knows which operator governs it does the node
// become an Operation. Arity is validated the same as NewOperation.
func (n Node) WithOperation(name string, ex Executor) (Node, error) {
	if n.kind != KindExpr {
		return Node{}, errkind.ParseFailure("set_operation requires an Expr node")
	}
	return NewOperation(name, ex, n.items...)
}

// IntoScope wraps n so it executes inside a freshly spawned child scope —
// the auxiliary parser method original_source/node.rs calls into_scope.
func (n Node) IntoScope() Node {
	return NewScope(n)
}

// Exec evaluates n against ctx, returning a Data carrier rather than
// panicking or returning a bare error — see spec's errors-as-values model.
func (n Node) Exec(ctx ContextWrapper) Data {
	switch n.kind {
	case KindLiteral:
		return NewData(n.lit)

	case KindVariable:
		return NewData(ctx.GetPath(n.path))

	case KindScope:
		child := ctx.Scoped().Wrap()
		return n.child.Exec(child)

	case KindArray:
		results := make([]Data, len(n.items))
		for i, item := range n.items {
			results[i] = item.Exec(ctx)
			if results[i].IsErr() {
				return results[i]
			}
		}
		return FromSlice(results)

	case KindMap:
		m := &document.Map{}
		for _, e := range n.entries {
			kd := e.Key.Exec(ctx)
			if kd.IsErr() {
				return kd
			}
			vd := e.Value.Exec(ctx)
			if vd.IsErr() {
				return vd
			}
			m.Set(kd.Document(), vd.Document())
		}
		return NewData(document.NewMap(m))

	case KindFilter:
		in := n.filterInput.Exec(ctx)
		if in.IsErr() {
			return in
		}
		argDocs := make([]document.Document, len(n.filterArgs))
		for i, a := range n.filterArgs {
			ad := a.Exec(ctx)
			if ad.IsErr() {
				return ad
			}
			argDocs[i] = ad.Document()
		}
		out, err := n.filterSpec.Fn(in.Document(), argDocs, ctx)
		if err != nil {
			return NewErr(errkind.ExternalFailure(err))
		}
		return NewData(out)

	case KindFunction:
		argDocs := make([]document.Document, len(n.fnArgs))
		for i, a := range n.fnArgs {
			ad := a.Exec(ctx)
			if ad.IsErr() {
				return ad
			}
			argDocs[i] = ad.Document()
		}
		out, err := n.fnSpec.Fn(argDocs, ctx)
		if err != nil {
			return NewErr(errkind.ExternalFailure(err))
		}
		return NewData(out)

	case KindOperation:
		return n.opExec.Exec(n.opNodes, ctx)

	case KindExpr:
		switch len(n.items) {
		case 0:
			return Empty()
		case 1:
			return n.items[0].Exec(ctx)
		default:
			results := make([]Data, len(n.items))
			for i, item := range n.items {
				results[i] = item.Exec(ctx)
				if results[i].IsErr() {
					return results[i]
				}
			}
			return FromSlice(results)
		}

	case KindEmpty:
		return Empty()

	default:
		return Empty()
	}
}

// Render evaluates n against ctx and stringifies the result, the top-level
// entry point a façade calls once per template.
func (n Node) Render(ctx ContextWrapper) (string, error) {
	d := n.Exec(ctx)
	return d.render()
}
