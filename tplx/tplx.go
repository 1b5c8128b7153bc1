// Package tplx is the thin façade a host program embeds: load the initial
// Document from a config file, build (or receive, from a parser this
// module does not implement) a Node tree, and render it.
package tplx

import (
	"github.com/BurntSushi/toml"

	"github.com/dpotapov/tplx/document"
	"github.com/dpotapov/tplx/eval"
)

// LoadContext reads a TOML file and returns a root context seeded with its
// contents. TOML tables become Map entries, arrays become Seq.
func LoadContext(path string) (*eval.RootContext, error) {
	var raw map[string]any
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, err
	}
	return eval.NewRootContext(anyToDocument(raw)), nil
}

func anyToDocument(v any) document.Document {
	switch tv := v.(type) {
	case nil:
		return document.Unit
	case bool:
		return document.Bool(tv)
	case int64:
		return document.Int64(tv)
	case int:
		return document.Int64(int64(tv))
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
	case []map[string]any:
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

// Render evaluates root against ctx and returns the rendered text, the
// single entry point a host program calls once it has both a context and
// a node tree (hand-built here, normally parser-produced).
func Render(root eval.Node, ctx *eval.RootContext) (string, error) {
	return root.Render(ctx.Wrap())
}
