package resolve

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/afrogeek/tart/ast"
	"github.com/afrogeek/tart/defn"
	"github.com/afrogeek/tart/diag"
	"github.com/afrogeek/tart/passes"
	"github.com/afrogeek/tart/types"
)

// fakeNames resolves every name against a flat, preloaded map, ignoring
// scope — enough to exercise the resolver's own dispatch without
// depending on defn.ModuleNameResolver.
type fakeNames struct {
	byName map[string][]defn.Defn
}

func (f *fakeNames) Resolve(scope *defn.SymbolTable, name string) []defn.Defn {
	if scope != nil {
		if found := scope.Lookup(name); len(found) > 0 {
			return found
		}
	}
	return f.byName[name]
}

// fakePreparer records every TypeDefn handed to Prepare, so tests can
// assert the resolver actually schedules MemberLookup for a type it
// resolves a name to.
type fakePreparer struct {
	prepared []*defn.TypeDefn
}

func (f *fakePreparer) Prepare(td *defn.TypeDefn, task passes.Task) bool {
	f.prepared = append(f.prepared, td)
	return true
}

func fieldType(t *testing.T, source string) *ast.TypeExpr {
	t.Helper()
	file, err := ast.ParseString(source)
	assert.NoError(t, err)
	decl := file.Types[0]
	assert.Equal(t, 1, len(decl.Members))
	return decl.Members[0].Var.Type
}

func newResolver(names map[string][]defn.Defn) (*Resolver, *fakePreparer) {
	prep := &fakePreparer{}
	r := &Resolver{
		Names:    &fakeNames{byName: names},
		Prepare:  prep,
		Builtins: types.NewBuiltins(),
		Diag:     diag.NewLog(nil),
	}
	return r, prep
}

func TestResolveBuiltinName(t *testing.T) {
	r, _ := newResolver(nil)
	expr := fieldType(t, `class C { var f: Int }`)

	got, ok := r.Resolve(nil, expr)
	assert.True(t, ok)
	assert.Equal(t, "Int", got.String())
}

func TestResolveUnknownNameFails(t *testing.T) {
	r, _ := newResolver(nil)
	expr := fieldType(t, `class C { var f: Ghost }`)

	_, ok := r.Resolve(nil, expr)
	assert.False(t, ok)
}

func TestResolveNamedTypeSchedulesMemberLookup(t *testing.T) {
	module := defn.NewModuleDefn("test")
	other := defn.NewTypeDefn(&ast.TypeDecl{Name: "Other", Kind: ast.KindClass}, module, module)

	r, prep := newResolver(map[string][]defn.Defn{"Other": {other}})
	expr := fieldType(t, `class C { var f: Other }`)

	got, ok := r.Resolve(nil, expr)
	assert.True(t, ok)
	assert.Equal(t, "test.Other", got.String())
	assert.Equal(t, 1, len(prep.prepared))
	assert.Equal(t, other, prep.prepared[0])
}

func TestResolveAmbiguousNameFails(t *testing.T) {
	module := defn.NewModuleDefn("test")
	a := defn.NewTypeDefn(&ast.TypeDecl{Name: "Dup", Kind: ast.KindClass}, module, module)
	b := defn.NewTypeDefn(&ast.TypeDecl{Name: "Dup", Kind: ast.KindClass}, module, module)

	r, _ := newResolver(map[string][]defn.Defn{"Dup": {a, b}})
	expr := fieldType(t, `class C { var f: Dup }`)

	_, ok := r.Resolve(nil, expr)
	assert.False(t, ok)
}

func TestResolveArraySugar(t *testing.T) {
	r, _ := newResolver(nil)
	expr := fieldType(t, `class C { var f: Int[] }`)

	got, ok := r.Resolve(nil, expr)
	assert.True(t, ok)
	assert.Equal(t, "Int[]", got.String())
}

func TestResolveUnionSugar(t *testing.T) {
	r, _ := newResolver(nil)
	expr := fieldType(t, `class C { var f: Int | String }`)

	got, ok := r.Resolve(nil, expr)
	assert.True(t, ok)
	assert.Equal(t, "Int | String", got.String())
}

func TestResolveSpecialize(t *testing.T) {
	module := defn.NewModuleDefn("test")
	box := defn.NewTypeDefn(&ast.TypeDecl{Name: "Box", Kind: ast.KindClass}, module, module)

	r, _ := newResolver(map[string][]defn.Defn{"Box": {box}})
	expr := fieldType(t, `class C { var f: Box<Int> }`)

	got, ok := r.Resolve(nil, expr)
	assert.True(t, ok)
	assert.Equal(t, "test.Box<Int>", got.String())
}

func TestResolveAnonymousFunctionType(t *testing.T) {
	r, _ := newResolver(nil)
	expr := fieldType(t, `class C { var f: fn(Int) String }`)

	got, ok := r.Resolve(nil, expr)
	assert.True(t, ok)
	assert.Equal(t, "fn(p0 Int) String", got.String())
}

func TestResolveMemberAccess(t *testing.T) {
	module := defn.NewModuleDefn("test")
	outer := defn.NewTypeDefn(&ast.TypeDecl{Name: "Outer", Kind: ast.KindClass}, module, module)
	inner := defn.NewTypeDefn(&ast.TypeDecl{Name: "Inner", Kind: ast.KindClass}, module, outer)
	outer.Value.Members.Add("Inner", inner)

	r, _ := newResolver(map[string][]defn.Defn{"Outer": {outer}})
	expr := fieldType(t, `class C { var f: Outer.Inner }`)

	got, ok := r.Resolve(nil, expr)
	assert.True(t, ok)
	assert.Equal(t, "test.Outer.Inner", got.String())
}
