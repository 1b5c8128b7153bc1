package eval

import "github.com/dpotapov/tplx/document"

// boolExecutor builds a short-circuit-free, fully-evaluated n-ary boolean
// fold (the piped executor already evaluated every node before fn runs, so
// true short-circuit evaluation of "and"/"or" is not available here —
// matching the Rust core's simple_pipe! expansion, which also folds over
// already-evaluated arguments rather than lazily). An operand that fails
// to cast to boolean defaults to false, per original_source/operation.rs's
// `cast::<bool>().unwrap_or_default()` — this is not an error case.
func boolExecutor(identity bool, step func(acc, v bool) bool) Executor {
	return pipedExecutor{
		meta: Metadata{MinNodes: 2, MaxNodes: -1},
		fn: func(docs []document.Document) Data {
			acc := identity
			for _, d := range docs {
				acc = step(acc, d.CastBool())
			}
			return NewData(document.Bool(acc))
		},
	}
}

func init() {
	registerOperation("and", boolExecutor(true, func(acc, v bool) bool { return acc && v }))
	registerOperation("or", boolExecutor(false, func(acc, v bool) bool { return acc || v }))
}
