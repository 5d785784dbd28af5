package defn

import (
	"github.com/afrogeek/tart/ast"
	"github.com/afrogeek/tart/types"
)

// TypeDefn is the definition record for a named type. It exclusively
// owns the CompositeType it carries; every other reference to that
// CompositeType anywhere else in the compilation is a shared,
// non-owning back-reference through the TypeDefn handle, never a
// direct pointer into it — this is what lets two TypeDefns reference
// each other cyclically without a manual break in ownership.
type TypeDefn struct {
	Base

	Module *ModuleDefn
	Value  *CompositeType
}

var _ Defn = &TypeDefn{}

func (t *TypeDefn) DefnKind() DefnKind { return KindType }

// NewTypeDefn creates a TypeDefn from its AST declaration, applying
// the trait/visibility mapping every Defn constructor applies, and
// wires the owning back-pointer CompositeType.owner so the type can
// report its own qualified name.
func NewTypeDefn(decl *ast.TypeDecl, module *ModuleDefn, parent Defn) *TypeDefn {
	td := &TypeDefn{Module: module}
	td.SimpleName = decl.Name
	td.SetTraits(TraitsFromModifiers(decl.Modifiers))
	td.SetVisibility(VisibilityFromModifiers(decl.Modifiers))
	td.SetParent(parent)
	td.QualifyName()

	var class TypeClass
	switch decl.Kind {
	case ast.KindClass:
		class = Class
	case ast.KindStruct:
		class = Struct
	case ast.KindInterface:
		class = Interface
	case ast.KindProtocol:
		class = Protocol
	}

	ct := NewCompositeType(class, decl)
	ct.owner = td
	for _, tp := range decl.TypeParams {
		// Constraints are filled in by the Type Resolver during the
		// BaseTypes pass; at intake time only the name is known.
		ct.TypeParams = append(ct.TypeParams, &types.TypeParam{Name: tp.Name})
	}
	td.Value = ct
	return td
}

// NewSynthetic builds the bare TypeDefn/CompositeType pair used for
// compiler-synthesized types (currently just Object); it has no AST
// and its bases, once set by the caller, are treated as prepopulated
// by the Base-Class Analyzer.
func NewSynthetic(name string, class TypeClass, module *ModuleDefn) *TypeDefn {
	td := &TypeDefn{Module: module}
	td.SimpleName = name
	td.SetTraits(Synthetic)
	td.SetVisibility(Public)
	td.QualifyName()
	td.Value = NewCompositeType(class, nil)
	td.Value.owner = td
	return td
}
