package sema

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/afrogeek/tart/ast"
	"github.com/afrogeek/tart/defn"
	"github.com/afrogeek/tart/diag"
	"github.com/afrogeek/tart/funcsema"
	"github.com/afrogeek/tart/passes"
	"github.com/afrogeek/tart/resolve"
	"github.com/afrogeek/tart/types"
)

// harness wires the same collaborator graph cmd/tartc builds against an
// in-memory source string, so each scenario only has to write the
// Language snippet it exercises and call prepare.
type harness struct {
	t      *testing.T
	module *defn.ModuleDefn
	sema   *Sema
	log    *diag.Log
	types  map[string]*defn.TypeDefn
}

func newHarness(t *testing.T, source string) *harness {
	t.Helper()

	file, err := ast.ParseString(source)
	assert.NoError(t, err)

	module := defn.NewModuleDefn("test")
	object := defn.NewSynthetic("Object", defn.Class, module)
	log := diag.NewLog(nil)
	resolver := &resolve.Resolver{
		Names:    defn.NewModuleNameResolver(module),
		Builtins: types.NewBuiltins(),
		Diag:     log,
	}
	s := &Sema{
		Diag:     log,
		Resolver: resolver,
		Funcs:    &funcsema.Analyzer{Resolver: resolver, Diag: log},
		Module:   module,
		Object:   object,
	}
	resolver.Prepare = s

	h := &harness{t: t, module: module, sema: s, log: log, types: map[string]*defn.TypeDefn{}}
	for _, decl := range file.Types {
		td := defn.Intake(decl, module, module)
		module.Members.Add(td.Name(), td)
		h.types[td.Name()] = td
	}
	return h
}

func (h *harness) prepare(name string, task passes.Task) bool {
	h.t.Helper()
	td, ok := h.types[name]
	assert.True(h.t, ok, "no such type %q", name)
	return h.sema.Prepare(td, task)
}

func (h *harness) hasCode(code diag.Code) bool {
	for _, m := range h.log.Messages {
		if m.Code == code {
			return true
		}
	}
	return false
}

// S1: single class inheritance — field layout includes an inherited
// super slot ahead of the subclass's own field.
func TestSingleClassInheritance(t *testing.T) {
	h := newHarness(t, `
class Animal {
	public var name: String
}

class Dog : Animal {
	public var breed: String
}
`)

	ok := h.prepare("Dog", passes.PrepCodeGeneration)
	assert.True(t, ok)
	assert.False(t, h.log.Failed())

	dog := h.types["Dog"].Value
	assert.Equal(t, "Animal", dog.Super.Name())
	assert.Equal(t, "Animal", dog.Bases[0].Name())

	assert.Equal(t, 2, len(dog.InstanceFields))
	assert.True(t, dog.InstanceFields[0].IsSuperSlot)
	assert.Equal(t, "breed", dog.InstanceFields[1].Name())
	// Animal's own super slot (reserved for the synthesized Object
	// base) does not itself occupy a recursive index, so Dog's own
	// field is seeded from Animal's one real field, "name" (index 0),
	// landing at index 1.
	assert.Equal(t, 1, dog.InstanceFields[1].RecursiveIndex)
}

// S1b: a three-level inheritance chain must not collide recursive
// field indices at the middle generation — each real field gets a
// distinct index seeded from the super's own recursive count, not
// from the super's InstanceFields length (which also counts the
// synthetic super-slot entry).
func TestRecursiveFieldIndicesAcrossThreeLevels(t *testing.T) {
	h := newHarness(t, `
class A {
	public var a1: Int
	public var a2: Int
}

class B : A {
	public var b1: Int
}

class C : B {
	public var c1: Int
}
`)

	ok := h.prepare("C", passes.PrepCodeGeneration)
	assert.True(t, ok)
	assert.False(t, h.log.Failed())

	a := h.types["A"].Value
	assert.Equal(t, 0, a.InstanceFields[1].RecursiveIndex)
	assert.Equal(t, 1, a.InstanceFields[2].RecursiveIndex)

	b := h.types["B"].Value
	assert.True(t, b.InstanceFields[0].IsSuperSlot)
	assert.Equal(t, 2, b.InstanceFields[1].RecursiveIndex)

	c := h.types["C"].Value
	assert.True(t, c.InstanceFields[0].IsSuperSlot)
	assert.Equal(t, 3, c.InstanceFields[1].RecursiveIndex)
}

// S2: a class implementing an interface gets an itable whose slot
// for the interface method is filled by the concrete override.
func TestInterfaceImplementation(t *testing.T) {
	h := newHarness(t, `
interface Shape {
	public def area() Float
}

class Circle : Shape {
	override def area() Float {}
}
`)

	ok := h.prepare("Circle", passes.PrepCodeGeneration)
	assert.True(t, ok)
	assert.False(t, h.log.Failed())

	circle := h.types["Circle"].Value
	assert.Equal(t, 1, len(circle.Interfaces))
	itable := circle.Interfaces[0]
	assert.Equal(t, "Shape", itable.Interface.Name())
	assert.Equal(t, 1, len(itable.Methods))
	assert.Equal(t, "test.Circle.area", itable.Methods[0].QualifiedName())
	assert.True(t, itable.Methods[0].HasBody)
}

// S3: a class that implements an interface without overriding its
// method is reported abstract.
func TestMissingImplementationIsAbstractnessFailure(t *testing.T) {
	h := newHarness(t, `
interface Shape {
	def area() Float
}

class Circle : Shape {
}
`)

	ok := h.prepare("Circle", passes.PrepCodeGeneration)
	assert.False(t, ok)
	assert.True(t, h.log.Failed())
	assert.True(t, h.hasCode(diag.AbstractnessFailure))
}

// S4: two classes declared as each other's base are reported as a
// circular dependency rather than recursing forever.
func TestCircularInheritanceIsDetected(t *testing.T) {
	h := newHarness(t, `
class A : B {
}

class B : A {
}
`)

	ok := h.prepare("A", passes.PrepCodeGeneration)
	assert.False(t, ok)
	assert.True(t, h.log.Failed())
	assert.True(t, h.hasCode(diag.CircularDependency))
}

// S5: a class with no declared constructor gets a synthesized
// default constructor whose parameters come from its public,
// instance-storage fields.
func TestDefaultConstructorSynthesis(t *testing.T) {
	h := newHarness(t, `
class Point {
	public var x: Int
	public var y: Int
}
`)

	ok := h.prepare("Point", passes.PrepCodeGeneration)
	assert.True(t, ok)
	assert.False(t, h.log.Failed())

	point := h.types["Point"].Value
	ctors := point.Members.Lookup("construct")
	assert.Equal(t, 1, len(ctors))

	ctor := ctors[0].(*defn.FunctionDefn)
	assert.True(t, ctor.Traits().Has(defn.Ctor))
	assert.True(t, ctor.Traits().Has(defn.Synthetic))
	assert.Equal(t, 2, len(ctor.Params))
	assert.Equal(t, "x", ctor.Params[0].Name())
	assert.Equal(t, "y", ctor.Params[1].Name())
}

// §4.6.3/§4.6.4: a property's and an indexer's synthesized getter and
// setter are not just elaborated in isolation — they must actually
// reach the Overload Resolver and land in InstanceMethods with a real
// signature, the same as any other method.
func TestPropertyAndIndexerAccessorsEnterInstanceMethods(t *testing.T) {
	h := newHarness(t, `
class Box {
	public property size: Int {
		get
		set
	}
	public indexer(i: Int): String {
		get
		set
	}
}
`)

	ok := h.prepare("Box", passes.PrepCodeGeneration)
	assert.True(t, ok)
	assert.False(t, h.log.Failed())

	box := h.types["Box"].Value
	size := box.Members.Lookup("size")[0].(*defn.PropertyDefn)
	ix := box.Members.Lookup("[]")[0].(*defn.IndexerDefn)

	var names []string
	for _, m := range box.InstanceMethods {
		names = append(names, m.Name())
	}
	assert.Equal(t, []string{"size$get", "size$set", "[]$get", "[]$set"}, names)

	assert.True(t, size.Getter.DispatchIndex >= 0)
	assert.Equal(t, "Int", size.Getter.ReturnType.String())
	assert.Equal(t, 0, len(size.Getter.Params))
	assert.Equal(t, 1, len(size.Setter.Params))
	assert.Equal(t, "value", size.Setter.Params[0].Name())
	assert.Equal(t, "Int", size.Setter.Params[0].Type.String())

	assert.Equal(t, "String", ix.Getter.ReturnType.String())
	assert.Equal(t, 1, len(ix.Getter.Params))
	assert.Equal(t, "i", ix.Getter.Params[0].Name())
	assert.Equal(t, 2, len(ix.Setter.Params))
	assert.Equal(t, "i", ix.Setter.Params[0].Name())
	assert.Equal(t, "value", ix.Setter.Params[1].Name())
}

// S6: a class cannot declare more than one concrete (class) supertype.
func TestMultipleConcreteSupertypesIsRejected(t *testing.T) {
	h := newHarness(t, `
class A {
}

class B {
}

class C : A, B {
}
`)

	ok := h.prepare("C", passes.PrepCodeGeneration)
	assert.False(t, ok)
	assert.True(t, h.log.Failed())
	assert.True(t, h.hasCode(diag.InheritanceRuleViolation))
}

// Property 1 (§8): calling Prepare twice for the same task is
// idempotent and produces no duplicate diagnostics.
func TestPrepareIsIdempotent(t *testing.T) {
	h := newHarness(t, `
class Animal {
	public var name: String
}
`)

	ok1 := h.prepare("Animal", passes.PrepCodeGeneration)
	assert.True(t, ok1)
	firstCount := len(h.log.Messages)

	ok2 := h.prepare("Animal", passes.PrepCodeGeneration)
	assert.True(t, ok2)
	assert.Equal(t, firstCount, len(h.log.Messages))
}
