package defn

import (
	"github.com/afrogeek/tart/ast"
	"github.com/afrogeek/tart/types"
	"github.com/alecthomas/repr"
)

// Intake builds a TypeDefn and its member Defns from a parsed
// TypeDecl, without resolving a single type expression — that is the
// Type Resolver's job, run lazily by the pass machinery. Intake's only
// responsibility is turning syntax into the tagged-sum Defn records
// the rest of the core operates on, and populating Members so name
// lookup and conflict detection have something to walk.
func Intake(decl *ast.TypeDecl, module *ModuleDefn, parent Defn) *TypeDefn {
	td := NewTypeDefn(decl, module, parent)
	ct := td.Value

	for _, m := range decl.Members {
		switch {
		case m.Var != nil:
			v := NewVariableDefn(m.Var, m.Modifiers, td)
			ct.Members.Add(v.Name(), v)

		case m.Func != nil:
			f := NewFunctionDefn(m.Func, m.Modifiers, td)
			for _, p := range m.Func.Params {
				pd := &ParameterDefn{Decl: p}
				pd.SimpleName = p.Name
				pd.SetParent(f)
				if p.Default != nil {
					pd.Default = constValueOf(p.Default)
				}
				f.Params = append(f.Params, pd)
			}
			ct.Members.Add(f.Name(), f)

		case m.Property != nil:
			p := &PropertyDefn{Decl: m.Property}
			p.SimpleName = m.Property.Name
			p.SetTraits(TraitsFromModifiers(m.Modifiers))
			p.SetVisibility(VisibilityFromModifiers(m.Modifiers))
			p.SetStorageClass(StorageClassFromModifiers(m.Modifiers))
			p.SetParent(td)
			p.QualifyName()
			if m.Property.HasGetter {
				p.Getter = syntheticAccessor(p, "get", td)
				p.Getter.Property = p
				ct.Members.Add(p.Getter.Name(), p.Getter)
			}
			if m.Property.HasSetter {
				p.Setter = syntheticAccessor(p, "set", td)
				p.Setter.Property = p
				ct.Members.Add(p.Setter.Name(), p.Setter)
			}
			ct.Members.Add(p.Name(), p)

		case m.Indexer != nil:
			ix := &IndexerDefn{Decl: m.Indexer}
			ix.SimpleName = "[]"
			ix.SetTraits(TraitsFromModifiers(m.Modifiers))
			ix.SetVisibility(VisibilityFromModifiers(m.Modifiers))
			ix.SetStorageClass(StorageClassFromModifiers(m.Modifiers))
			ix.SetParent(td)
			ix.QualifyName()
			for _, p := range m.Indexer.Params {
				pd := &ParameterDefn{Decl: p}
				pd.SimpleName = p.Name
				pd.SetParent(ix)
				ix.Params = append(ix.Params, pd)
			}
			if m.Indexer.HasGetter {
				ix.Getter = syntheticAccessor(ix, "get", td)
				ix.Getter.Indexer = ix
				ct.Members.Add(ix.Getter.Name(), ix.Getter)
			}
			if m.Indexer.HasSetter {
				ix.Setter = syntheticAccessor(ix, "set", td)
				ix.Setter.Indexer = ix
				ct.Members.Add(ix.Setter.Name(), ix.Setter)
			}
			ct.Members.Add(ix.Name(), ix)
		}
	}

	return td
}

// syntheticAccessor builds the FunctionDefn standing in for a
// property's or indexer's getter or setter, so the Overload Resolver
// can treat accessors uniformly with ordinary methods (§4.6.3,
// §4.6.4). The caller sets the returned FunctionDefn's Property or
// Indexer back-reference and registers it in Members.
func syntheticAccessor(owner Defn, which string, parent Defn) *FunctionDefn {
	f := &FunctionDefn{DispatchIndex: -1, HasBody: true}
	f.SimpleName = owner.Name() + "$" + which
	f.SetTraits(owner.Traits())
	f.SetVisibility(owner.Visibility())
	f.SetStorageClass(owner.StorageClass())
	f.SetParent(parent)
	f.QualifyName()
	return f
}

func constValueOf(lit *ast.Literal) types.ConstValue {
	switch {
	case lit.Int != nil:
		return types.ConstValue{Kind: types.ConstInt, Int: *lit.Int}
	case lit.String != nil:
		return types.ConstValue{Kind: types.ConstString, String: *lit.String}
	case lit.Bool != nil:
		return types.ConstValue{Kind: types.ConstBool, Bool: *lit.Bool}
	case lit.Nil:
		return types.ConstValue{Kind: types.ConstNil}
	default:
		panic(repr.String(lit))
	}
}
