package tplx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dpotapov/tplx/document"
	"github.com/dpotapov/tplx/eval"
	"github.com/dpotapov/tplx/tplx"
)

func TestRenderGreeting(t *testing.T) {
	ctx := eval.NewRootContext(document.Unit)
	require.NoError(t, ctx.SetPath([]document.Document{document.String("name")}, document.String("world")))

	greeting, err := eval.NewOperation("concat", eval.Operations["concat"],
		eval.NewLiteral(document.String("Hello, ")),
		eval.NewVariable("name"),
		eval.NewLiteral(document.String("!")),
	)
	require.NoError(t, err)

	out, err := tplx.Render(greeting, ctx)
	require.NoError(t, err)
	require.Equal(t, "Hello, world!", out)
}
