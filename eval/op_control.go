package eval

import (
	"strings"

	"github.com/dpotapov/tplx/document"
	"github.com/dpotapov/tplx/errkind"
)

func init() {
	registerOperation("if_then", conditionalExecutor{})
	registerOperation("concat", concatExecutor)
	registerOperation("set", setExecutor)
	registerOperation("for_loop", loopExecutor{})
}

// concatExecutor renders every node to text and joins them, left to right,
// short-circuiting on the first Err (the Rust core's `concat` operation).
var concatExecutor = indeterminateExecutor{
	meta: Metadata{MinNodes: 1, MaxNodes: -1},
	fn: func(nodes []Node, ctx ContextWrapper) Data {
		var b strings.Builder
		for _, n := range nodes {
			s, err := n.Exec(ctx).render()
			if err != nil {
				return NewErr(err)
			}
			b.WriteString(s)
		}
		return NewData(document.String(b.String()))
	},
}

// setExecutor implements the `set` operation: nodes[0] is the assignment
// target, nodes[1] the value expression. When the target is a Variable
// node its full path is the assignment path (any depth). Any other target
// shape is only supported when it evaluates to a single string key — see
// the "single-segment only" decision recorded in SPEC_FULL.md; anything
// else is a RenderFailure rather than a silent no-op. On success the
// operation itself evaluates to Unit, not the assigned value (matching
// original_source/operation.rs's `Data::check(...)`), so "{{ set(x, 5) }}"
// renders empty.
var setExecutor = indeterminateExecutor{
	meta: Metadata{MinNodes: 2, MaxNodes: 2},
	fn: func(nodes []Node, ctx ContextWrapper) Data {
		target, val := nodes[0], nodes[1]

		vd := val.Exec(ctx)
		if vd.IsErr() {
			return vd
		}

		var keys []document.Document
		if target.kind == KindVariable {
			keys = make([]document.Document, len(target.path))
			for i, seg := range target.path {
				keys[i] = document.String(seg)
			}
		} else {
			td := target.Exec(ctx)
			if td.IsErr() {
				return td
			}
			s, ok := td.Document().Str()
			if !ok {
				return NewErr(errkind.RenderFailure("set target must be a variable or a single string key"))
			}
			keys = []document.Document{document.String(s)}
		}

		if err := ctx.SetPath(keys, vd.Document()); err != nil {
			return NewErr(err)
		}
		return Empty()
	},
}
