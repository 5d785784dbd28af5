package defn

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/afrogeek/tart/ast"
)

func parseType(t *testing.T, source string) *ast.TypeDecl {
	t.Helper()
	file, err := ast.ParseString(source)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(file.Types))
	return file.Types[0]
}

func TestIntakePopulatesMembersInDeclarationOrder(t *testing.T) {
	module := NewModuleDefn("test")
	decl := parseType(t, `
class Point {
	public var x: Int
	public var y: Int
	public def length() Float
}
`)

	td := Intake(decl, module, module)

	assert.Equal(t, "Point", td.Name())
	names := td.Value.Members.Names()
	assert.Equal(t, []string{"x", "y", "length"}, names)

	x := td.Value.Members.Lookup("x")[0]
	assert.Equal(t, KindVar, x.DefnKind())
	assert.Equal(t, Public, x.Visibility())

	length := td.Value.Members.Lookup("length")[0].(*FunctionDefn)
	assert.Equal(t, "test.Point.length", length.QualifiedName())
}

func TestIntakeLetIsImmutable(t *testing.T) {
	module := NewModuleDefn("test")
	decl := parseType(t, `
class Point {
	public var x: Int
	public let y: Int = 3
}
`)

	td := Intake(decl, module, module)

	x := td.Value.Members.Lookup("x")[0]
	assert.Equal(t, KindVar, x.DefnKind())

	y := td.Value.Members.Lookup("y")[0]
	assert.Equal(t, KindLet, y.DefnKind())
}

func TestIntakePropertyGeneratesAccessors(t *testing.T) {
	module := NewModuleDefn("test")
	decl := parseType(t, `
class Box {
	public property size: Int {
		get
		set
	}
}
`)

	td := Intake(decl, module, module)
	size := td.Value.Members.Lookup("size")[0].(*PropertyDefn)

	assert.True(t, size.Getter != nil)
	assert.True(t, size.Setter != nil)
	assert.Equal(t, "size$get", size.Getter.Name())
	assert.Equal(t, "size$set", size.Setter.Name())
	assert.Equal(t, size, size.Getter.Property)

	getter := td.Value.Members.Lookup("size$get")
	assert.Equal(t, 1, len(getter))
	assert.Equal[Defn](t, size.Getter, getter[0])

	setter := td.Value.Members.Lookup("size$set")
	assert.Equal(t, 1, len(setter))
	assert.Equal[Defn](t, size.Setter, setter[0])
}

func TestIntakeIndexerGeneratesAccessors(t *testing.T) {
	module := NewModuleDefn("test")
	decl := parseType(t, `
class Box {
	public indexer(i: Int): Int {
		get
		set
	}
}
`)

	td := Intake(decl, module, module)
	ix := td.Value.Members.Lookup("[]")[0].(*IndexerDefn)

	assert.Equal(t, 1, len(ix.Params))
	assert.Equal(t, "i", ix.Params[0].Name())

	assert.True(t, ix.Getter != nil)
	assert.True(t, ix.Setter != nil)
	assert.Equal(t, ix, ix.Getter.Indexer)
	assert.Equal(t, ix, ix.Setter.Indexer)

	getter := td.Value.Members.Lookup(ix.Getter.Name())
	assert.Equal(t, 1, len(getter))
	assert.Equal[Defn](t, ix.Getter, getter[0])

	setter := td.Value.Members.Lookup(ix.Setter.Name())
	assert.Equal(t, 1, len(setter))
	assert.Equal[Defn](t, ix.Setter, setter[0])
}

func TestIntakeConstructorParamsCarryDefaults(t *testing.T) {
	module := NewModuleDefn("test")
	decl := parseType(t, `
class Point {
	construct(x: Int, y: Int = 0) {}
}
`)

	td := Intake(decl, module, module)
	ctor := td.Value.Members.Lookup("construct")[0].(*FunctionDefn)

	assert.Equal(t, 2, len(ctor.Params))
	assert.Equal(t, "x", ctor.Params[0].Name())
	assert.False(t, ctor.Params[0].HasDefault())
	assert.Equal(t, "y", ctor.Params[1].Name())
	assert.True(t, ctor.Params[1].HasDefault())
}
