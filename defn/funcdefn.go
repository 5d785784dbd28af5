package defn

import (
	"github.com/afrogeek/tart/ast"
	"github.com/afrogeek/tart/types"
)

// ParameterDefn is a single formal parameter of a FunctionDefn.
type ParameterDefn struct {
	Base

	Decl    *ast.ParamDecl
	Type    types.Type
	Default types.ConstValue
}

var _ Defn = &ParameterDefn{}

func (p *ParameterDefn) DefnKind() DefnKind { return KindParameter }

// HasDefault reports whether the parameter may be omitted by a caller.
func (p *ParameterDefn) HasDefault() bool { return p.Default.IsConstant() }

// FunctionDefn is a method, instance constructor, static "create"
// function, or coercer. Its lifetime is identical to its containing
// TypeDefn.
type FunctionDefn struct {
	Base

	Decl *ast.FuncDecl

	Params     []*ParameterDefn
	ReturnType types.Type
	HasBody    bool
	Extern     bool
	Intrinsic  bool

	// DispatchIndex is this function's position in its owning type's
	// instance method table, or -1 if it is statically dispatched
	// (never placed in a vtable, or a constructor/coercer which is
	// never placed).
	DispatchIndex int

	// OverriddenMethods is the set of FunctionDefns this one replaces
	// in some base's vtable or itable, recorded at override time.
	OverriddenMethods []*FunctionDefn

	// Property/Indexer back-reference: at most one is non-nil, set
	// when this FunctionDefn is a synthesized accessor, so Overload
	// Resolver can group getters/setters by owning property or
	// indexer rather than by raw name.
	Property *PropertyDefn
	Indexer  *IndexerDefn

	passesFinished bool
}

var _ Defn = &FunctionDefn{}

func (f *FunctionDefn) DefnKind() DefnKind { return KindFunction }

func NewFunctionDefn(decl *ast.FuncDecl, mods ast.Modifiers, parent Defn) *FunctionDefn {
	f := &FunctionDefn{Decl: decl, DispatchIndex: -1}
	f.SimpleName = decl.Name
	switch decl.Kind {
	case ast.FuncConstruct:
		f.SimpleName = "construct"
	case ast.FuncCreate:
		f.SimpleName = "create"
	case ast.FuncCoerce:
		f.SimpleName = "coerce"
	}
	f.SetTraits(TraitsFromModifiers(mods))
	f.SetVisibility(VisibilityFromModifiers(mods))
	storage := StorageClassFromModifiers(mods)
	if decl.Kind == ast.FuncCreate || decl.Kind == ast.FuncCoerce {
		storage = Static
	}
	f.SetStorageClass(storage)
	f.SetParent(parent)
	f.QualifyName()
	f.HasBody = decl.HasBody
	f.Extern = decl.Extern
	return f
}

// IsOverride reports whether f replaces at least one method in some
// base's dispatch table.
func (f *FunctionDefn) IsOverride() bool { return len(f.OverriddenMethods) > 0 }

// SignatureEqual reports whether f and other have equal parameter-type
// tuples and equal static/instance classification — the duplication
// test the Method Analyzer applies within an overload set.
func (f *FunctionDefn) SignatureEqual(other *FunctionDefn) bool {
	if f.StorageClass() != other.StorageClass() {
		return false
	}
	if len(f.Params) != len(other.Params) {
		return false
	}
	for i, p := range f.Params {
		if p.Type != other.Params[i].Type {
			return false
		}
	}
	return true
}

// PresetPasses marks f's own function-level analyses as finished
// without running them — used by the Constructor Analyzer when it
// synthesizes a default constructor, matching the source's call to
// passes().finished().addAll(...) for the same case.
func (f *FunctionDefn) PresetPasses() { f.passesFinished = true }

func (f *FunctionDefn) PassesPreset() bool { return f.passesFinished }
