package defn

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestModuleNameResolverScopeBeforeModule(t *testing.T) {
	module := NewModuleDefn("test")
	moduleLevel := newFakeDefn("x")
	module.Members.Add("x", moduleLevel)

	scope := NewSymbolTable()
	scoped := newFakeDefn("x")
	scope.Add("x", scoped)

	r := NewModuleNameResolver(module)
	found := r.Resolve(scope, "x")

	assert.Equal(t, 1, len(found))
	assert.Equal(t, Defn(scoped), found[0])
}

func TestModuleNameResolverFallsBackToExternal(t *testing.T) {
	module := NewModuleDefn("test")
	object := newFakeDefn("Object")
	module.External.Add("Object", object)

	r := NewModuleNameResolver(module)
	found := r.Resolve(nil, "Object")

	assert.Equal(t, 1, len(found))
	assert.Equal(t, Defn(object), found[0])
}

func TestModuleNameResolverUnknownNameIsEmpty(t *testing.T) {
	module := NewModuleDefn("test")
	r := NewModuleNameResolver(module)
	assert.Equal(t, 0, len(r.Resolve(nil, "nope")))
}

func TestModuleNameResolverExpandsExplicitImport(t *testing.T) {
	module := NewModuleDefn("test")
	imported := newFakeDefn("Real")
	module.Members.Add("Aliased", &ExplicitImportDefn{
		ImportedFrom: "other",
		Values:       []Defn{imported},
	})

	r := NewModuleNameResolver(module)
	found := r.Resolve(nil, "Aliased")

	assert.Equal(t, 1, len(found))
	assert.Equal(t, Defn(imported), found[0])
}
