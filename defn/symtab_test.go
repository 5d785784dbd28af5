package defn

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

type fakeDefn struct {
	Base
	kind DefnKind
}

func (f *fakeDefn) DefnKind() DefnKind { return f.kind }

func newFakeDefn(name string) *fakeDefn {
	d := &fakeDefn{kind: KindVar}
	d.SimpleName = name
	return d
}

func TestSymbolTablePreservesInsertionOrder(t *testing.T) {
	st := NewSymbolTable()
	st.Add("b", newFakeDefn("b"))
	st.Add("a", newFakeDefn("a"))
	st.Add("b", newFakeDefn("b2"))

	assert.Equal(t, []string{"b", "a"}, st.Names())
	assert.Equal(t, 2, st.Len())
	assert.Equal(t, 2, len(st.Lookup("b")))
	assert.Equal(t, 1, len(st.Lookup("a")))
}

func TestSymbolTableLookupMissingNameIsNil(t *testing.T) {
	st := NewSymbolTable()
	assert.Equal(t, 0, len(st.Lookup("nope")))
}

func TestSymbolTableEntriesOrderedByNameThenInsertion(t *testing.T) {
	st := NewSymbolTable()
	first := newFakeDefn("f")
	second := newFakeDefn("f")
	third := newFakeDefn("g")
	st.Add("f", first)
	st.Add("g", third)
	st.Add("f", second)

	entries := st.Entries()
	assert.Equal(t, 3, len(entries))
	assert.Equal(t, Defn(first), entries[0])
	assert.Equal(t, Defn(second), entries[1])
	assert.Equal(t, Defn(third), entries[2])
}
