package filters

import (
	"github.com/expr-lang/expr"

	"github.com/dpotapov/tplx/document"
	"github.com/dpotapov/tplx/errkind"
	"github.com/dpotapov/tplx/eval"
)

// Eval is a "eval_expr(exprString, env)" function: it compiles and runs a
// sandboxed expr-lang expression against an environment built from env
// (a Map document, converted to a plain map[string]any). It exists so the
// evaluation core can delegate ad hoc scalar expressions to the same
// compiled-expression engine the teacher's chtml/expr.go wraps, without
// the core itself depending on expr-lang (see chtml.NewExpr's
// parse-then-compile pipeline).
var Eval = eval.FunctionSpec{
	Name: "eval_expr",
	Meta: eval.Metadata{MinNodes: 1, MaxNodes: 2},
	Fn: func(args []document.Document, _ eval.ContextWrapper) (document.Document, error) {
		src, ok := args[0].Str()
		if !ok {
			return document.Unit, errkind.RenderFailure("eval_expr expects a string expression as its first argument")
		}

		var env map[string]any
		if len(args) == 2 {
			m, ok := args[1].Map()
			if !ok {
				return document.Unit, errkind.RenderFailure("eval_expr expects a map as its second argument")
			}
			env = make(map[string]any, m.Len())
			m.Range(func(k, v document.Document) bool {
				ks, _ := k.Str()
				env[ks] = documentToAny(v)
				return true
			})
		}

		program, err := expr.Compile(src, expr.Env(env))
		if err != nil {
			return document.Unit, err
		}
		out, err := expr.Run(program, env)
		if err != nil {
			return document.Unit, err
		}
		return anyToDocument(out), nil
	},
}

func documentToAny(d document.Document) any {
	switch d.Kind() {
	case document.KindBool:
		v, _ := d.Bool()
		return v
	case document.KindInt64:
		v, _ := d.Int64()
		return v
	case document.KindFloat64:
		v, _ := d.Float64()
		return v
	case document.KindString:
		v, _ := d.Str()
		return v
	case document.KindSeq:
		seq, _ := d.Seq()
		out := make([]any, len(seq))
		for i, e := range seq {
			out[i] = documentToAny(e)
		}
		return out
	case document.KindMap:
		m, _ := d.Map()
		out := make(map[string]any, m.Len())
		m.Range(func(k, v document.Document) bool {
			ks, _ := k.Str()
			out[ks] = documentToAny(v)
			return true
		})
		return out
	default:
		return nil
	}
}

func anyToDocument(v any) document.Document {
	switch tv := v.(type) {
	case nil:
		return document.Unit
	case bool:
		return document.Bool(tv)
	case int:
		return document.Int64(int64(tv))
	case int64:
		return document.Int64(tv)
	case float64:
		return document.Float64(tv)
	case string:
		return document.String(tv)
	case []any:
		out := make([]document.Document, len(tv))
		for i, e := range tv {
			out[i] = anyToDocument(e)
		}
		return document.Seq(out)
	case map[string]any:
		m := &document.Map{}
		for k, e := range tv {
			m.Set(document.String(k), anyToDocument(e))
		}
		return document.NewMap(m)
	default:
		return document.Unit
	}
}
