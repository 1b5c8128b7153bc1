package eval

import (
	"strings"

	"github.com/dpotapov/tplx/document"
	"github.com/dpotapov/tplx/errkind"
)

// execForLoop implements the `for_loop` operation registered as
// loopExecutor: binding names the single variable bound per iteration,
// iterable is evaluated once, and body runs once per iteration inside a
// freshly spawned child scope with binding set. Each iteration's rendered
// body is appended to an accumulator, matching
// original_source/operation.rs's `result.push_str(...); result.into()` —
// a for_loop is a string-producing construct, not a collection-producing
// one.
func execForLoop(binding, iterable, body Node, ctx ContextWrapper) Data {
	name, err := bindingName(binding)
	if err != nil {
		return NewErr(err)
	}

	it := iterable.Exec(ctx)
	if it.IsErr() {
		return it
	}
	doc := it.Document()

	var b strings.Builder
	switch doc.Kind() {
	case document.KindSeq:
		seq, _ := doc.Seq()
		for _, elem := range seq {
			s, err := runIteration(name, elem, body, ctx)
			if err != nil {
				return NewErr(err)
			}
			b.WriteString(s)
		}

	case document.KindMap:
		m, _ := doc.Map()
		for _, k := range m.Keys() {
			v, _ := m.Get(k)
			entry := &document.Map{}
			entry.Set(document.String("key"), k)
			entry.Set(document.String("value"), v)
			s, err := runIteration(name, document.NewMap(entry), body, ctx)
			if err != nil {
				return NewErr(err)
			}
			b.WriteString(s)
		}

	default:
		// Scalar/Unit: a single-element iteration over the value itself,
		// matching the Rust core's fallback scalar-iteration case.
		s, err := runIteration(name, doc, body, ctx)
		if err != nil {
			return NewErr(err)
		}
		b.WriteString(s)
	}

	return NewData(document.String(b.String()))
}

// runIteration binds name to value inside a fresh child scope and renders body.
func runIteration(name string, value document.Document, body Node, ctx ContextWrapper) (string, error) {
	child := ctx.Scoped().Wrap()
	if err := child.SetPath([]document.Document{document.String(name)}, value); err != nil {
		return "", err
	}
	return body.Exec(child).render()
}

func bindingName(binding Node) (string, error) {
	if binding.kind != KindVariable || len(binding.path) != 1 {
		return "", errkind.RenderFailure("for-loop binding must be a single name")
	}
	return binding.path[0], nil
}
