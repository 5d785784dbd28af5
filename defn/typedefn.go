package defn

import (
	"github.com/afrogeek/tart/ast"
	"github.com/afrogeek/tart/passes"
	"github.com/afrogeek/tart/types"
)

// TypeClass is the composite-type class a CompositeType belongs to.
type TypeClass int

const (
	Class TypeClass = iota
	Struct
	Interface
	Protocol
)

func (c TypeClass) String() string {
	switch c {
	case Class:
		return "class"
	case Struct:
		return "struct"
	case Interface:
		return "interface"
	case Protocol:
		return "protocol"
	default:
		return "?"
	}
}

// ITable is a per-implemented-interface dispatch table: an ordered
// list whose slots parallel Interface.Type.InstanceMethods, holding
// this type's concrete implementation for each.
type ITable struct {
	Interface *TypeDefn
	Methods   []*FunctionDefn
}

// CompositeType is the semantic type object a TypeDefn owns
// exclusively. Every field here is owned by the CompositeType except
// Super, Bases and the types referenced from fields/methods, which are
// shared, non-owning back-references into the rest of the compilation.
type CompositeType struct {
	Decl *ast.TypeDecl

	TypeClass TypeClass

	TypeParams []*types.TypeParam

	// Super is the primary base, or nil if this type has none (only
	// possible for Object itself, for Interface/Protocol types, or for
	// a Struct with no struct base).
	Super *TypeDefn

	// Bases holds every direct base in declaration order, with the
	// primary base (== Super, when non-nil) always first.
	Bases []*TypeDefn

	Members *SymbolTable

	InstanceFields []*VariableDefn
	StaticFields   []*VariableDefn

	// InstanceMethods is the vtable: the ordered list of dispatchable
	// instance methods, properties and indexers.
	InstanceMethods []*FunctionDefn

	Interfaces []*ITable

	Coercers []*FunctionDefn

	Passes passes.Registry

	// owner is the TypeDefn this CompositeType belongs to, set once by
	// NewTypeDefn. It exists only so String() can report a qualified
	// name; nothing else in this package reads it.
	owner *TypeDefn

	// recursiveFieldCount is the cumulative count of real instance
	// fields across this type and its entire supertype chain, written
	// once by the Field Analyzer after it finishes laying out this
	// type's own fields. It deliberately does not count the synthetic
	// super-slot reservation in InstanceFields.
	recursiveFieldCount int
}

func NewCompositeType(class TypeClass, decl *ast.TypeDecl) *CompositeType {
	return &CompositeType{
		Decl:      decl,
		TypeClass: class,
		Members:   NewSymbolTable(),
	}
}

func (c *CompositeType) Kind() types.Kind {
	switch c.TypeClass {
	case Class:
		return types.KindClass
	case Struct:
		return types.KindStruct
	case Interface:
		return types.KindInterface
	case Protocol:
		return types.KindProtocol
	default:
		return types.KindNone
	}
}

func (c *CompositeType) String() string {
	if c.owner != nil {
		return c.owner.QualifiedName()
	}
	return c.TypeClass.String()
}

// IsSingular reports whether every type parameter of the enclosing
// TypeDefn has been bound — i.e. this is not a template.
func (c *CompositeType) IsSingular() bool {
	return len(c.TypeParams) == 0
}

// RecursiveFieldCount is the cumulative count of real instance fields
// across this type and its entire supertype chain, used by the Field
// Analyzer to seed a subclass's recursive index counter. It excludes
// the synthetic super-slot entry InstanceFields[0] may carry.
func (c *CompositeType) RecursiveFieldCount() int {
	return c.recursiveFieldCount
}

// SetRecursiveFieldCount records the cumulative real-field count once
// the Field Analyzer has finished laying out this type's own fields.
func (c *CompositeType) SetRecursiveFieldCount(n int) {
	c.recursiveFieldCount = n
}
