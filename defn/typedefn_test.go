package defn

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestNewTypeDefnMapsKindAndTraits(t *testing.T) {
	module := NewModuleDefn("test")
	decl := parseType(t, `
abstract class Shape {
}
`)

	td := NewTypeDefn(decl, module, module)

	assert.Equal(t, Class, td.Value.TypeClass)
	assert.True(t, td.Traits().Has(Abstract))
	assert.Equal(t, "test.Shape", td.QualifiedName())
	assert.Equal(t, "test.Shape", td.Value.String())
}

func TestNewTypeDefnInterfaceKind(t *testing.T) {
	module := NewModuleDefn("test")
	decl := parseType(t, `
interface Shape {
}
`)

	td := NewTypeDefn(decl, module, module)
	assert.Equal(t, Interface, td.Value.TypeClass)
}

func TestRecursiveFieldCountExcludesSuperSlot(t *testing.T) {
	ct := NewCompositeType(Class, nil)
	assert.Equal(t, 0, ct.RecursiveFieldCount())

	// A super-slot reservation plus one real field both land in
	// InstanceFields, but only the real field should count towards
	// the recursive total a subclass seeds its own index counter
	// from.
	ct.InstanceFields = append(ct.InstanceFields, &VariableDefn{IsSuperSlot: true})
	ct.InstanceFields = append(ct.InstanceFields, &VariableDefn{})
	ct.SetRecursiveFieldCount(1)

	assert.Equal(t, 2, len(ct.InstanceFields))
	assert.Equal(t, 1, ct.RecursiveFieldCount())
}

func TestNewSyntheticIsPrepopulatedAndMarked(t *testing.T) {
	module := NewModuleDefn("test")
	object := NewSynthetic("Object", Class, module)

	assert.Equal(t, "Object", object.Name())
	assert.True(t, object.Traits().Has(Synthetic))
	assert.Equal(t, Class, object.Value.TypeClass)
	assert.Equal(t, 0, object.Value.RecursiveFieldCount())
}

func TestIsSingularWithAndWithoutTypeParams(t *testing.T) {
	ct := NewCompositeType(Class, nil)
	assert.True(t, ct.IsSingular())

	decl := parseType(t, `
class Box<T> {
}
`)
	module := NewModuleDefn("test")
	td := NewTypeDefn(decl, module, module)
	assert.False(t, td.Value.IsSingular())
}
