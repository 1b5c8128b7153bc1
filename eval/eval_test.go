package eval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dpotapov/tplx/document"
	"github.com/dpotapov/tplx/errkind"
	"github.com/dpotapov/tplx/eval"
)

func exec(t *testing.T, n eval.Node, ctx *eval.RootContext) eval.Data {
	t.Helper()
	return n.Exec(ctx.Wrap())
}

func TestLiteralAndVariable(t *testing.T) {
	ctx := eval.NewRootContext(document.Unit)
	require.NoError(t, ctx.SetPath([]document.Document{document.String("name")}, document.String("world")))

	lit := eval.NewLiteral(document.Int64(7))
	d := exec(t, lit, ctx)
	require.False(t, d.IsErr())
	n, _ := d.Document().Int64()
	require.EqualValues(t, 7, n)

	v := eval.NewVariable("name")
	d = exec(t, v, ctx)
	require.False(t, d.IsErr())
	s, _ := d.Document().Str()
	require.Equal(t, "world", s)
}

func TestArithmeticAdd(t *testing.T) {
	ctx := eval.NewRootContext(document.Unit)
	op, err := eval.NewOperation("add", eval.Operations["add"],
		eval.NewLiteral(document.Int64(2)), eval.NewLiteral(document.Int64(3)))
	require.NoError(t, err)
	d := exec(t, op, ctx)
	require.False(t, d.IsErr())
	n, _ := d.Document().Int64()
	require.EqualValues(t, 5, n)
}

func TestArithmeticNonNumericErrors(t *testing.T) {
	ctx := eval.NewRootContext(document.Unit)
	op, err := eval.NewOperation("add", eval.Operations["add"],
		eval.NewLiteral(document.String("x")), eval.NewLiteral(document.Int64(3)))
	require.NoError(t, err)
	d := exec(t, op, ctx)
	require.True(t, d.IsErr())
	require.True(t, errkind.IsRenderFailure(d.Err()))
}

func TestDivideByZero(t *testing.T) {
	ctx := eval.NewRootContext(document.Unit)
	op, err := eval.NewOperation("divide", eval.Operations["divide"],
		eval.NewLiteral(document.Int64(4)), eval.NewLiteral(document.Int64(0)))
	require.NoError(t, err)
	d := exec(t, op, ctx)
	require.True(t, d.IsErr())
}

func TestOperationArityRejectedAtConstruction(t *testing.T) {
	_, err := eval.NewOperation("add", eval.Operations["add"], eval.NewLiteral(document.Int64(1)))
	require.Error(t, err)
	require.True(t, errkind.IsParseFailure(err))
}

func TestIfThen(t *testing.T) {
	ctx := eval.NewRootContext(document.Unit)
	op, err := eval.NewOperation("if_then", eval.Operations["if_then"],
		eval.NewLiteral(document.Bool(true)),
		eval.NewLiteral(document.String("yes")),
		eval.NewLiteral(document.String("no")),
	)
	require.NoError(t, err)
	d := exec(t, op, ctx)
	s, _ := d.Document().Str()
	require.Equal(t, "yes", s)
}

func TestIfThenNoElseIsEmpty(t *testing.T) {
	ctx := eval.NewRootContext(document.Unit)
	op, err := eval.NewOperation("if_then", eval.Operations["if_then"],
		eval.NewLiteral(document.Bool(false)),
		eval.NewLiteral(document.String("yes")),
	)
	require.NoError(t, err)
	d := exec(t, op, ctx)
	require.True(t, d.Document().IsUnit())
}

func TestConcat(t *testing.T) {
	ctx := eval.NewRootContext(document.Unit)
	op, err := eval.NewOperation("concat", eval.Operations["concat"],
		eval.NewLiteral(document.String("a")),
		eval.NewLiteral(document.Int64(1)),
		eval.NewLiteral(document.String("b")),
	)
	require.NoError(t, err)
	d := exec(t, op, ctx)
	s, _ := d.Document().Str()
	require.Equal(t, "a1b", s)
}

func TestSetThenReadBack(t *testing.T) {
	ctx := eval.NewRootContext(document.Unit)
	op, err := eval.NewOperation("set", eval.Operations["set"],
		eval.NewVariable("counter"), eval.NewLiteral(document.Int64(1)))
	require.NoError(t, err)
	require.False(t, exec(t, op, ctx).IsErr())

	got := exec(t, eval.NewVariable("counter"), ctx)
	n, _ := got.Document().Int64()
	require.EqualValues(t, 1, n)
}

func TestSetThroughScalarFails(t *testing.T) {
	ctx := eval.NewRootContext(document.Unit)
	require.NoError(t, ctx.SetPath([]document.Document{document.String("x")}, document.Int64(1)))

	op, err := eval.NewOperation("set", eval.Operations["set"],
		eval.NewVariable("x", "y"), eval.NewLiteral(document.Int64(2)))
	require.NoError(t, err)
	d := exec(t, op, ctx)
	require.True(t, d.IsErr())
}

func TestScopeWritesDoNotEscape(t *testing.T) {
	ctx := eval.NewRootContext(document.Unit)
	require.NoError(t, ctx.SetPath([]document.Document{document.String("x")}, document.Int64(1)))

	setOp, err := eval.NewOperation("set", eval.Operations["set"],
		eval.NewVariable("x"), eval.NewLiteral(document.Int64(99)))
	require.NoError(t, err)
	scoped := eval.NewScope(setOp)
	require.False(t, exec(t, scoped, ctx).IsErr())

	got := exec(t, eval.NewVariable("x"), ctx)
	n, _ := got.Document().Int64()
	require.EqualValues(t, 1, n, "write inside a scope must not leak to the parent")
}

func TestForLoopOverSeqConcatenatesRenderedBody(t *testing.T) {
	ctx := eval.NewRootContext(document.Unit)
	items := eval.NewArray(
		eval.NewLiteral(document.Int64(1)),
		eval.NewLiteral(document.Int64(2)),
		eval.NewLiteral(document.Int64(3)),
	)
	body, err := eval.NewOperation("concat", eval.Operations["concat"],
		eval.NewVariable("n"), eval.NewLiteral(document.String(",")))
	require.NoError(t, err)

	loop, err := eval.NewOperation("for_loop", eval.Operations["for_loop"],
		eval.NewVariable("n"), items, body)
	require.NoError(t, err)

	d := exec(t, loop, ctx)
	require.False(t, d.IsErr())
	s, _ := d.Document().Str()
	require.Equal(t, "1,2,3,", s)
}

func TestForLoopOverMapBindsKeyAndValue(t *testing.T) {
	ctx := eval.NewRootContext(document.Unit)
	m := document.NewMapFromPairs(
		[2]document.Document{document.String("a"), document.Int64(1)},
		[2]document.Document{document.String("b"), document.Int64(2)},
	)
	mapLit := eval.NewLiteral(document.NewMap(m))

	body, err := eval.NewOperation("concat", eval.Operations["concat"],
		eval.NewVariable("e", "key"),
		eval.NewLiteral(document.String("=")),
		eval.NewVariable("e", "value"),
		eval.NewLiteral(document.String(";")),
	)
	require.NoError(t, err)

	loop, err := eval.NewOperation("for_loop", eval.Operations["for_loop"],
		eval.NewVariable("e"), mapLit, body)
	require.NoError(t, err)

	d := exec(t, loop, ctx)
	require.False(t, d.IsErr())
	s, _ := d.Document().Str()
	require.Equal(t, "a=1;b=2;", s)
}

func TestFirstErrWinsInArray(t *testing.T) {
	ctx := eval.NewRootContext(document.Unit)
	badOp, err := eval.NewOperation("add", eval.Operations["add"],
		eval.NewLiteral(document.String("x")), eval.NewLiteral(document.Int64(1)))
	require.NoError(t, err)

	arr := eval.NewArray(eval.NewLiteral(document.Int64(1)), badOp, eval.NewLiteral(document.Int64(2)))
	d := exec(t, arr, ctx)
	require.True(t, d.IsErr())
}
