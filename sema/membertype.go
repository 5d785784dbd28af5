package sema

import (
	"github.com/afrogeek/tart/defn"
	"github.com/afrogeek/tart/passes"
	"github.com/afrogeek/tart/resolve"
	"github.com/afrogeek/tart/types"
)

// analyzeMemberTypes is the MemberType pass: it elaborates the
// declared type of every var/let/property/indexer member (and an
// indexer's key parameters) by handing its AST type expression to the
// Type Resolver, and recursively prepares each var/let member's type
// to the TypeComparison stage (§4.3, "recursively prepare its type to
// TypeComparison stage").
func (s *Sema) analyzeMemberTypes(td *defn.TypeDefn) bool {
	ct := td.Value
	ok := true

	for _, d := range ct.Members.Entries() {
		switch m := d.(type) {
		case *defn.VariableDefn:
			if !s.resolveVariableType(ct, m) {
				ok = false
			}

		case *defn.PropertyDefn:
			if m.Type != nil || m.Decl == nil || m.Decl.Type == nil {
				continue
			}
			t, resolved := s.Resolver.Resolve(ct.Members, m.Decl.Type)
			if !resolved {
				ok = false
				continue
			}
			m.Type = t
			elaborateAccessorSignatures(m.Getter, m.Setter, nil, t)

		case *defn.IndexerDefn:
			if m.Type != nil || m.Decl == nil || m.Decl.Type == nil {
				continue
			}
			t, resolved := s.Resolver.Resolve(ct.Members, m.Decl.Type)
			if !resolved {
				ok = false
				continue
			}
			m.Type = t
			for _, p := range m.Params {
				if p.Type != nil || p.Decl == nil || p.Decl.Type == nil {
					continue
				}
				pt, resolved := s.Resolver.Resolve(ct.Members, p.Decl.Type)
				if !resolved {
					ok = false
					continue
				}
				p.Type = pt
			}
			elaborateAccessorSignatures(m.Getter, m.Setter, m.Params, t)
		}
	}

	if !s.prepareMemberTypeComparison(td) {
		ok = false
	}

	return ok
}

// elaborateAccessorSignatures gives a property's or indexer's
// synthesized getter/setter their real signature now that the owning
// member's type is known, instead of leaving them to fall back to the
// Function Analyzer's Decl-less default of a void, parameterless
// signature. keyParams is the indexer's own index parameter list (nil
// for a property); the setter always gains one additional "value"
// parameter of the owning member's type.
func elaborateAccessorSignatures(getter, setter *defn.FunctionDefn, keyParams []*defn.ParameterDefn, t types.Type) {
	if getter != nil {
		getter.Params = append(getter.Params, keyParams...)
		getter.ReturnType = t
		getter.PresetPasses()
	}
	if setter != nil {
		setter.Params = append(setter.Params, keyParams...)
		value := &defn.ParameterDefn{Type: t}
		value.SimpleName = "value"
		value.SetParent(setter)
		setter.Params = append(setter.Params, value)
		setter.ReturnType = types.Void
		setter.PresetPasses()
	}
}

// resolveVariableType elaborates v's declared type if it isn't already
// set, matching analyzeValueDefn's role in the original: it lets a
// pass that runs before MemberType (Constructor, in particular) force
// a single field's type to be resolved on demand instead of reading a
// still-nil Type.
func (s *Sema) resolveVariableType(ct *defn.CompositeType, v *defn.VariableDefn) bool {
	if v.Type != nil || v.Decl == nil || v.Decl.Type == nil {
		return true
	}
	t, resolved := s.Resolver.Resolve(ct.Members, v.Decl.Type)
	if !resolved {
		return false
	}
	v.Type = t
	return true
}

// prepareMemberTypeComparison recurses into every member type that
// names another TypeDefn in this module, bringing it up to
// PrepTypeComparison so cross-type comparisons during Field/Method
// analysis see a consistent view of each type's base/kind.
func (s *Sema) prepareMemberTypeComparison(td *defn.TypeDefn) bool {
	ct := td.Value
	ok := true
	for _, d := range ct.Members.Entries() {
		v, isVar := d.(*defn.VariableDefn)
		if !isVar || v.Type == nil {
			continue
		}
		if other, isType := resolve.TypeDefnOf(v.Type); isType && other != td {
			if !s.Prepare(other, passes.PrepTypeComparison) {
				ok = false
			}
		}
	}
	return ok
}
