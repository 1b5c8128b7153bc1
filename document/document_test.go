package document_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/dpotapov/tplx/document"
)

func TestScalarAccessors(t *testing.T) {
	require.True(t, document.Unit.IsUnit())

	b := document.Bool(true)
	v, ok := b.Bool()
	require.True(t, ok)
	require.True(t, v)

	i := document.Int64(42)
	n, ok := i.Int64()
	require.True(t, ok)
	require.EqualValues(t, 42, n)

	s := document.String("hi")
	str, ok := s.Str()
	require.True(t, ok)
	require.Equal(t, "hi", str)
}

func TestCompareTotalOrder(t *testing.T) {
	cases := []struct {
		a, b document.Document
		want int
	}{
		{document.Int64(1), document.Int64(2), -1},
		{document.Int64(2), document.Int64(1), 1},
		{document.Int64(2), document.Int64(2), 0},
		{document.Int64(2), document.Float64(2.0), 0},
		{document.String("a"), document.String("b"), -1},
		{document.Unit, document.Bool(false), -1},
		{document.Bool(false), document.Int64(0), -1},
	}
	for _, c := range cases {
		got := c.a.Compare(c.b)
		require.Equal(t, c.want, got, "Compare(%v, %v)", c.a, c.b)
	}
}

func TestCastInt64(t *testing.T) {
	cases := []struct {
		in   document.Document
		want int64
		ok   bool
	}{
		{document.Int64(7), 7, true},
		{document.Float64(7.9), 7, true},
		{document.Bool(true), 1, true},
		{document.String("12"), 12, true},
		{document.String("nope"), 0, false},
		{document.Unit, 0, false},
	}
	for _, c := range cases {
		got, ok := c.in.CastInt64()
		require.Equal(t, c.ok, ok)
		if ok {
			require.Equal(t, c.want, got)
		}
	}
}

func TestMapOrderedByKey(t *testing.T) {
	m := document.NewMapFromPairs(
		[2]document.Document{document.String("b"), document.Int64(2)},
		[2]document.Document{document.String("a"), document.Int64(1)},
		[2]document.Document{document.String("c"), document.Int64(3)},
	)
	var keys []string
	m.Range(func(k, v document.Document) bool {
		s, _ := k.Str()
		keys = append(keys, s)
		return true
	})
	require.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestSeqRoundTrip(t *testing.T) {
	vs := []document.Document{document.Int64(1), document.Int64(2), document.Int64(3)}
	seq := document.Seq(vs)
	got, ok := seq.Seq()
	require.True(t, ok)
	require.True(t, cmp.Equal(vs, got, cmp.Comparer(func(a, b document.Document) bool { return a.Equal(b) })))
}

func TestRender(t *testing.T) {
	require.Equal(t, "", document.Unit.Render())
	require.Equal(t, "true", document.Bool(true).Render())
	require.Equal(t, "14", document.Int64(14).Render())
	require.Equal(t, "hello", document.String("hello").Render())
}
