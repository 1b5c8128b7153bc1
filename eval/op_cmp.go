package eval

import "github.com/dpotapov/tplx/document"

// cmpExecutor builds a strict two-node comparison operator over Document's
// total order (see document.Compare).
func cmpExecutor(test func(cmp int) bool) Executor {
	return pipedExecutor{
		meta: Metadata{MinNodes: 2, MaxNodes: 2},
		fn: func(docs []document.Document) Data {
			return NewData(document.Bool(test(docs[0].Compare(docs[1]))))
		},
	}
}

func init() {
	registerOperation("equals", cmpExecutor(func(c int) bool { return c == 0 }))
	registerOperation("not_equals", cmpExecutor(func(c int) bool { return c != 0 }))
	registerOperation("greater_than", cmpExecutor(func(c int) bool { return c > 0 }))
	registerOperation("less_than", cmpExecutor(func(c int) bool { return c < 0 }))
	registerOperation("greater_than_equals", cmpExecutor(func(c int) bool { return c >= 0 }))
	registerOperation("less_than_equals", cmpExecutor(func(c int) bool { return c <= 0 }))
}
