package defn

import (
	"github.com/afrogeek/tart/ast"
	"github.com/afrogeek/tart/types"
)

// VariableDefn is a var or let member — either an instance field, a
// static field, or (when StorageClass() == Local) a synthesized
// constructor-body local; the core only ever builds the first two.
type VariableDefn struct {
	Base

	Decl    *ast.VarDecl
	Type    types.Type
	Default types.ConstValue

	// PerTypeIndex and RecursiveIndex are set by the Field Analyzer.
	// Both are -1 until a storage slot has actually been assigned
	// (fields pruned as storage-free constants keep them at -1).
	PerTypeIndex   int
	RecursiveIndex int

	// IsSuperSlot marks the synthetic entry the Field Analyzer inserts
	// at InstanceFields[0] to represent the superclass's storage; it
	// has no Decl and carries no field of its own.
	IsSuperSlot bool
}

// NewSuperSlot builds the synthetic InstanceFields[0] entry
// representing the superclass's own storage within a subclass.
func NewSuperSlot(super *TypeDefn) *VariableDefn {
	v := &VariableDefn{IsSuperSlot: true, PerTypeIndex: 0, RecursiveIndex: 0}
	v.SimpleName = "$super"
	v.SetStorageClass(Instance)
	v.SetParent(super)
	return v
}

var _ Defn = &VariableDefn{}

func (v *VariableDefn) DefnKind() DefnKind {
	if v.Decl != nil && !v.Decl.Mutable {
		return KindLet
	}
	return KindVar
}

// IsConstant reports whether v's declared default is a compile-time
// constant — the condition under which a Let skips storage entirely.
func (v *VariableDefn) IsConstant() bool {
	return v.DefnKind() == KindLet && v.Default.IsConstant()
}

// HasStorage reports whether v occupies an instance or static slot.
func (v *VariableDefn) HasStorage() bool {
	return !v.IsConstant()
}

func NewVariableDefn(decl *ast.VarDecl, mods ast.Modifiers, parent Defn) *VariableDefn {
	v := &VariableDefn{Decl: decl, PerTypeIndex: -1, RecursiveIndex: -1}
	v.SimpleName = decl.Name
	v.SetTraits(TraitsFromModifiers(mods))
	v.SetVisibility(VisibilityFromModifiers(mods))
	v.SetStorageClass(StorageClassFromModifiers(mods))
	v.SetParent(parent)
	v.QualifyName()
	if decl.Default != nil {
		v.Default = constValueOf(decl.Default)
	}
	return v
}

// PropertyDefn is a property member: a named, typed accessor pair
// that participates in the vtable the same way a method does.
type PropertyDefn struct {
	Base

	Decl   *ast.PropertyDecl
	Type   types.Type
	Getter *FunctionDefn
	Setter *FunctionDefn
}

var _ Defn = &PropertyDefn{}

func (p *PropertyDefn) DefnKind() DefnKind { return KindProperty }

// IndexerDefn is an indexer member: like PropertyDefn but keyed by a
// parameter list ("this[i]") rather than a bare name.
type IndexerDefn struct {
	Base

	Decl   *ast.IndexerDecl
	Params []*ParameterDefn
	Type   types.Type
	Getter *FunctionDefn
	Setter *FunctionDefn
}

var _ Defn = &IndexerDefn{}

func (i *IndexerDefn) DefnKind() DefnKind { return KindIndexer }
