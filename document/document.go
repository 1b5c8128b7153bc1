// Package document implements the structured value type that flows in and
// out of a rendered template: scalars, ordered sequences, and ordered maps.
//
// This is the external collaborator referenced by the evaluation core (see
// the eval package): the core only ever holds a Document, compares two of
// them, or casts one to an int64. It never builds a Document by parsing
// source text — that is the parser's job, not this package's.
package document

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Kind enumerates the closed set of Document shapes.
type Kind int

const (
	KindUnit Kind = iota
	KindBool
	KindInt64
	KindFloat64
	KindString
	KindSeq
	KindMap
)

// Document is a recursively defined, immutable structured value.
type Document struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	seq  []Document
	m    *Map
}

// Unit is the singleton null value.
var Unit = Document{kind: KindUnit}

func Bool(v bool) Document    { return Document{kind: KindBool, b: v} }
func Int64(v int64) Document  { return Document{kind: KindInt64, i: v} }
func Float64(v float64) Document { return Document{kind: KindFloat64, f: v} }
func String(v string) Document { return Document{kind: KindString, s: v} }

// Seq builds an ordered-sequence Document from vs. The slice is copied.
func Seq(vs []Document) Document {
	cp := make([]Document, len(vs))
	copy(cp, vs)
	return Document{kind: KindSeq, seq: cp}
}

// NewMap builds an ordered-map Document from m. m is copied and kept sorted.
func NewMap(m *Map) Document {
	if m == nil {
		m = &Map{}
	}
	return Document{kind: KindMap, m: m.clone()}
}

func (d Document) Kind() Kind { return d.kind }

func (d Document) IsUnit() bool { return d.kind == KindUnit }

func (d Document) Bool() (bool, bool) {
	if d.kind != KindBool {
		return false, false
	}
	return d.b, true
}

func (d Document) Int64() (int64, bool) {
	if d.kind != KindInt64 {
		return 0, false
	}
	return d.i, true
}

func (d Document) Float64() (float64, bool) {
	if d.kind != KindFloat64 {
		return 0, false
	}
	return d.f, true
}

func (d Document) Str() (string, bool) {
	if d.kind != KindString {
		return "", false
	}
	return d.s, true
}

// Seq returns the backing slice when d is a Seq. The caller must not mutate it.
func (d Document) Seq() ([]Document, bool) {
	if d.kind != KindSeq {
		return nil, false
	}
	return d.seq, true
}

// Map returns the backing map when d is a Map. The caller must not mutate it.
func (d Document) Map() (*Map, bool) {
	if d.kind != KindMap {
		return nil, false
	}
	return d.m, true
}

// Index returns the i-th element of a Seq, or Unit if d is not a Seq or i
// is out of range.
func (d Document) Index(i int) Document {
	if d.kind != KindSeq || i < 0 || i >= len(d.seq) {
		return Unit
	}
	return d.seq[i]
}

// Field returns the value keyed by a string-key map entry, or Unit when
// absent or d is not a Map.
func (d Document) Field(key string) Document {
	if d.kind != KindMap {
		return Unit
	}
	v, ok := d.m.Get(String(key))
	if !ok {
		return Unit
	}
	return v
}

// WithField returns a copy of d with key set to value. d must be Unit (which
// becomes a fresh single-entry map) or Map; any other kind returns ok=false.
func (d Document) WithField(key, value Document) (Document, bool) {
	switch d.kind {
	case KindUnit:
		m := &Map{}
		m.Set(key, value)
		return Document{kind: KindMap, m: m}, true
	case KindMap:
		nm := d.m.clone()
		nm.Set(key, value)
		return Document{kind: KindMap, m: nm}, true
	default:
		return Document{}, false
	}
}

// WithIndex returns a copy of d with the element at idx replaced by value.
// d must be a Seq and idx in range; otherwise ok is false.
func (d Document) WithIndex(idx int, value Document) (Document, bool) {
	if d.kind != KindSeq || idx < 0 || idx >= len(d.seq) {
		return Document{}, false
	}
	cp := make([]Document, len(d.seq))
	copy(cp, d.seq)
	cp[idx] = value
	return Document{kind: KindSeq, seq: cp}, true
}

// CastInt64 converts d to an int64 when the conversion is unambiguous
// (Int64 as-is, Float64 truncated, Bool as 0/1, a numeric String parsed).
// It mirrors the Rust templar core's `InnerData::cast::<i64>()`.
func (d Document) CastInt64() (int64, bool) {
	switch d.kind {
	case KindInt64:
		return d.i, true
	case KindFloat64:
		return int64(d.f), true
	case KindBool:
		if d.b {
			return 1, true
		}
		return 0, true
	case KindString:
		n, err := strconv.ParseInt(strings.TrimSpace(d.s), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// CastBool converts d to a bool, defaulting to false for anything that
// isn't a Bool — callers that need a strict check should inspect Kind first.
func (d Document) CastBool() bool {
	if d.kind == KindBool {
		return d.b
	}
	return false
}

// String implements fmt.Stringer so Documents print naturally in errors and logs.
func (d Document) String() string { return d.Render() }

// Render stringifies d the way the top-level render entry point does: Unit
// renders empty, scalars render their natural textual form, Seq/Map render
// a compact bracketed form (never used in the golden-path render of a
// well-formed template, but needed so an accidental bare container never
// panics).
func (d Document) Render() string {
	switch d.kind {
	case KindUnit:
		return ""
	case KindBool:
		if d.b {
			return "true"
		}
		return "false"
	case KindInt64:
		return strconv.FormatInt(d.i, 10)
	case KindFloat64:
		return strconv.FormatFloat(d.f, 'g', -1, 64)
	case KindString:
		return d.s
	case KindSeq:
		parts := make([]string, len(d.seq))
		for i, e := range d.seq {
			parts[i] = e.Render()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMap:
		parts := make([]string, 0, d.m.Len())
		d.m.Range(func(k, v Document) bool {
			parts = append(parts, k.Render()+": "+v.Render())
			return true
		})
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return ""
	}
}

// GoString supports %#v / debugging output.
func (d Document) GoString() string {
	return fmt.Sprintf("Document(%s)", d.Render())
}

// Equal reports value equality, following Compare == 0.
func (d Document) Equal(other Document) bool { return d.Compare(other) == 0 }

// kindRank imposes a total order across kinds so that Compare is total
// even between mismatched kinds (unit < bool < numbers < string < seq < map).
func kindRank(k Kind) int {
	switch k {
	case KindUnit:
		return 0
	case KindBool:
		return 1
	case KindInt64, KindFloat64:
		return 2
	case KindString:
		return 3
	case KindSeq:
		return 4
	case KindMap:
		return 5
	default:
		return 6
	}
}

// Compare returns -1, 0, or 1 establishing a total order over Document,
// used both for user-facing comparison operators and as the map key order.
func (d Document) Compare(other Document) int {
	if d.kind != other.kind {
		// Numbers compare across Int64/Float64 before falling back to rank.
		if (d.kind == KindInt64 || d.kind == KindFloat64) && (other.kind == KindInt64 || other.kind == KindFloat64) {
			return compareFloat(d.asFloat(), other.asFloat())
		}
		return compareInt(kindRank(d.kind), kindRank(other.kind))
	}
	switch d.kind {
	case KindUnit:
		return 0
	case KindBool:
		return compareBool(d.b, other.b)
	case KindInt64:
		return compareInt64(d.i, other.i)
	case KindFloat64:
		return compareFloat(d.f, other.f)
	case KindString:
		return strings.Compare(d.s, other.s)
	case KindSeq:
		return compareSeq(d.seq, other.seq)
	case KindMap:
		return d.m.compare(other.m)
	default:
		return 0
	}
}

func (d Document) asFloat() float64 {
	if d.kind == KindInt64 {
		return float64(d.i)
	}
	return d.f
}

func compareBool(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareSeq(a, b []Document) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}
	return compareInt(len(a), len(b))
}

// Map is an ordered map from Document keys to Document values, kept sorted
// by key so iteration order is deterministic (mirrors the Rust core's
// BTreeMap<Document, Document>, see SPEC_FULL.md §4).
type Map struct {
	entries []mapEntry
}

type mapEntry struct {
	key, val Document
}

// NewMapFromPairs builds a Map from key/value pairs in any order; entries
// are sorted by key.
func NewMapFromPairs(pairs ...[2]Document) *Map {
	m := &Map{}
	for _, p := range pairs {
		m.Set(p[0], p[1])
	}
	return m
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

func (m *Map) Get(key Document) (Document, bool) {
	if m == nil {
		return Unit, false
	}
	i := m.search(key)
	if i < len(m.entries) && m.entries[i].key.Equal(key) {
		return m.entries[i].val, true
	}
	return Unit, false
}

// Set inserts or overwrites the value for key, keeping entries sorted.
func (m *Map) Set(key, val Document) {
	i := m.search(key)
	if i < len(m.entries) && m.entries[i].key.Equal(key) {
		m.entries[i].val = val
		return
	}
	m.entries = append(m.entries, mapEntry{})
	copy(m.entries[i+1:], m.entries[i:])
	m.entries[i] = mapEntry{key: key, val: val}
}

func (m *Map) search(key Document) int {
	return sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].key.Compare(key) >= 0
	})
}

// Range calls f for every entry in key order, stopping early if f returns false.
func (m *Map) Range(f func(k, v Document) bool) {
	if m == nil {
		return
	}
	for _, e := range m.entries {
		if !f(e.key, e.val) {
			return
		}
	}
}

func (m *Map) clone() *Map {
	if m == nil {
		return &Map{}
	}
	cp := make([]mapEntry, len(m.entries))
	copy(cp, m.entries)
	return &Map{entries: cp}
}

func (m *Map) compare(other *Map) int {
	al, bl := m.Len(), other.Len()
	for i := 0; i < al && i < bl; i++ {
		if c := m.entries[i].key.Compare(other.entries[i].key); c != 0 {
			return c
		}
		if c := m.entries[i].val.Compare(other.entries[i].val); c != 0 {
			return c
		}
	}
	return compareInt(al, bl)
}

// Keys returns the keys in order. Used by callers that need a plain slice
// (e.g. the for-loop operation).
func (m *Map) Keys() []Document {
	if m == nil {
		return nil
	}
	out := make([]Document, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.key
	}
	return out
}
