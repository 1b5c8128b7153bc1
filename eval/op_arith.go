package eval

import (
	"github.com/dpotapov/tplx/document"
	"github.com/dpotapov/tplx/errkind"
)

// foldArith left-folds docs through iop after casting every operand
// through the integer coercion, mirroring the Rust core's number! macro
// (`$doc.into_inner().cast::<i64>()`), which casts both operands to i64
// rather than preserving a float operand's precision. A cast failure is
// "math operations require numeric types".
func foldArith(docs []document.Document, iop func(a, b int64) int64) Data {
	acc, ok := docs[0].CastInt64()
	if !ok {
		return errToData("math operations require numeric types")
	}
	for _, d := range docs[1:] {
		bi, ok := d.CastInt64()
		if !ok {
			return errToData("math operations require numeric types")
		}
		acc = iop(acc, bi)
	}
	return NewData(document.Int64(acc))
}

func arithExecutor(iop func(a, b int64) int64) Executor {
	return pipedExecutor{
		meta: Metadata{MinNodes: 2, MaxNodes: -1},
		fn: func(docs []document.Document) Data {
			return foldArith(docs, iop)
		},
	}
}

var divideExecutor = pipedExecutor{
	meta: Metadata{MinNodes: 2, MaxNodes: -1},
	fn: func(docs []document.Document) Data {
		acc, ok := docs[0].CastInt64()
		if !ok {
			return errToData("math operations require numeric types")
		}
		for _, d := range docs[1:] {
			bi, ok := d.CastInt64()
			if !ok {
				return errToData("math operations require numeric types")
			}
			if bi == 0 {
				return NewErr(errkind.RenderFailure("division by zero"))
			}
			acc = acc / bi
		}
		return NewData(document.Int64(acc))
	},
}

func init() {
	registerOperation("add", arithExecutor(func(a, b int64) int64 { return a + b }))
	registerOperation("subtract", arithExecutor(func(a, b int64) int64 { return a - b }))
	registerOperation("multiply", arithExecutor(func(a, b int64) int64 { return a * b }))
	registerOperation("divide", divideExecutor)
	registerOperation("modulus", pipedExecutor{
		meta: Metadata{MinNodes: 2, MaxNodes: -1},
		fn: func(docs []document.Document) Data {
			acc, ok := docs[0].CastInt64()
			if !ok {
				return errToData("math operations require numeric types")
			}
			for _, d := range docs[1:] {
				bi, ok := d.CastInt64()
				if !ok {
					return errToData("math operations require numeric types")
				}
				if bi == 0 {
					return NewErr(errkind.RenderFailure("division by zero"))
				}
				acc = acc % bi
			}
			return NewData(document.Int64(acc))
		},
	})
}
