package filters_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dpotapov/tplx/document"
	"github.com/dpotapov/tplx/eval"
	"github.com/dpotapov/tplx/filters"
)

func wrap() eval.ContextWrapper {
	return eval.NewRootContext(document.Unit).Wrap()
}

func TestLowerUpperLength(t *testing.T) {
	out, err := filters.Lower.Fn(document.String("HeLLo"), nil, wrap())
	require.NoError(t, err)
	s, _ := out.Str()
	require.Equal(t, "hello", s)

	out, err = filters.Upper.Fn(document.String("HeLLo"), nil, wrap())
	require.NoError(t, err)
	s, _ = out.Str()
	require.Equal(t, "HELLO", s)

	out, err = filters.Length.Fn(document.String("hello"), nil, wrap())
	require.NoError(t, err)
	n, _ := out.Int64()
	require.EqualValues(t, 5, n)
}

func TestLengthRejectsNonStringNonSeq(t *testing.T) {
	_, err := filters.Length.Fn(document.Int64(1), nil, wrap())
	require.Error(t, err)
}

func TestEvalExprArithmetic(t *testing.T) {
	out, err := filters.Eval.Fn([]document.Document{document.String("1 + 2")}, wrap())
	require.NoError(t, err)
	n, _ := out.Int64()
	require.EqualValues(t, 3, n)
}

func TestEvalExprWithEnv(t *testing.T) {
	env := document.NewMap(document.NewMapFromPairs(
		[2]document.Document{document.String("x"), document.Int64(10)},
	))
	out, err := filters.Eval.Fn([]document.Document{document.String("x * 2"), env}, wrap())
	require.NoError(t, err)
	n, _ := out.Int64()
	require.EqualValues(t, 20, n)
}

func TestToXML(t *testing.T) {
	m := document.NewMap(document.NewMapFromPairs(
		[2]document.Document{document.String("name"), document.String("ok")},
	))
	out, err := filters.ToXML.Fn(m, nil, wrap())
	require.NoError(t, err)
	s, _ := out.Str()
	require.Contains(t, s, "<name>ok</name>")
}
