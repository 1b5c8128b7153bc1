// Package filters provides a small, concrete set of Filter and Function
// handles that exercise the eval package's Filter/Function node kinds
// end to end. The parser/standard-library layer that would normally
// register a much larger catalog is out of scope for this module (see
// SPEC_FULL.md §0); these exist to give the contracts a real caller.
package filters

import (
	"strings"

	"github.com/dpotapov/tplx/document"
	"github.com/dpotapov/tplx/errkind"
	"github.com/dpotapov/tplx/eval"
)

// Lower is "input | lower", lower-casing a string input.
var Lower = eval.FilterSpec{
	Name: "lower",
	Meta: eval.Metadata{MinNodes: 0, MaxNodes: 0},
	Fn: func(input document.Document, _ []document.Document, _ eval.ContextWrapper) (document.Document, error) {
		s, ok := input.Str()
		if !ok {
			return document.Unit, errkind.RenderFailure("lower expects a string input")
		}
		return document.String(strings.ToLower(s)), nil
	},
}

// Upper is "input | upper".
var Upper = eval.FilterSpec{
	Name: "upper",
	Meta: eval.Metadata{MinNodes: 0, MaxNodes: 0},
	Fn: func(input document.Document, _ []document.Document, _ eval.ContextWrapper) (document.Document, error) {
		s, ok := input.Str()
		if !ok {
			return document.Unit, errkind.RenderFailure("upper expects a string input")
		}
		return document.String(strings.ToUpper(s)), nil
	},
}

// Length is "input | length", valid for String and Seq inputs.
var Length = eval.FilterSpec{
	Name: "length",
	Meta: eval.Metadata{MinNodes: 0, MaxNodes: 0},
	Fn: func(input document.Document, _ []document.Document, _ eval.ContextWrapper) (document.Document, error) {
		switch input.Kind() {
		case document.KindString:
			s, _ := input.Str()
			return document.Int64(int64(len(s))), nil
		case document.KindSeq:
			seq, _ := input.Seq()
			return document.Int64(int64(len(seq))), nil
		default:
			return document.Unit, errkind.RenderFailure("length expects a string or sequence input")
		}
	},
}
