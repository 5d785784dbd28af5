package sema

import (
	"github.com/afrogeek/tart/ast"
	"github.com/afrogeek/tart/defn"
	"github.com/afrogeek/tart/diag"
	"github.com/afrogeek/tart/passes"
	"github.com/afrogeek/tart/types"
)

// analyzeConstructors is the Constructor pass: the Constructor
// Analyzer (§4.4). It validates every declared "construct" and static
// "create" member, and synthesizes a default constructor when neither
// exists.
func (s *Sema) analyzeConstructors(td *defn.TypeDefn) bool {
	ct := td.Value
	ok := true
	hasConstructors := false

	for _, d := range ct.Members.Entries() {
		f, isFunc := d.(*defn.FunctionDefn)
		if !isFunc || f.Decl == nil {
			continue
		}

		switch f.Decl.Kind {
		case ast.FuncConstruct:
			if !s.Funcs.Analyze(f, passes.PrepTypeComparison) {
				ok = false
				continue
			}
			if f.ReturnType != nil && !types.IsVoid(f.ReturnType) {
				diag.Errorf(s.Diag, diag.ConstructorRuleViolation, f.Pos(),
					"constructor %q must not declare a return type", f.Name())
				ok = false
			}
			if f.StorageClass() != defn.Instance {
				diag.Errorf(s.Diag, diag.ConstructorRuleViolation, f.Pos(),
					"constructor %q must have instance storage", f.Name())
				ok = false
			}
			if ct.IsSingular() && isSingularSignature(f) {
				f.SetTraits(f.Traits().Add(defn.Singular))
			}
			hasConstructors = true

		case ast.FuncCreate:
			if !s.Funcs.Analyze(f, passes.PrepTypeComparison) {
				ok = false
				continue
			}
			hasConstructors = true
		}
	}

	if !hasConstructors && (ct.TypeClass == defn.Class || ct.TypeClass == defn.Struct) {
		ctor, synthOK := s.synthesizeDefaultConstructor(td)
		if !synthOK {
			ok = false
		} else if ctor != nil {
			ct.Members.Add(ctor.Name(), ctor)
		}
	}

	return ok
}

func isSingularSignature(f *defn.FunctionDefn) bool {
	for _, p := range f.Params {
		if p.Type != nil && !p.Type.IsSingular() {
			return false
		}
	}
	return true
}

// synthesizeDefaultConstructor implements §4.4's synthesis rule: the
// super must itself expose a default constructor; parameters are
// built from the type's public, instance-storage, non-Let fields,
// required fields (no default) preceding optional ones (compile-time
// constant default); the synthesized function is Ctor+Synthetic
// (+Singular when the type is singular), with its own passes preset
// so later function-level analyses skip it.
func (s *Sema) synthesizeDefaultConstructor(td *defn.TypeDefn) (*defn.FunctionDefn, bool) {
	ct := td.Value

	if ct.Super != nil {
		if !s.hasDefaultConstructor(ct.Super) {
			diag.Errorf(s.Diag, diag.ConstructorRuleViolation, td.Pos(),
				"%q has no default constructor required by %q", ct.Super.Name(), td.Name())
			return nil, false
		}
	}

	ctor := &defn.FunctionDefn{DispatchIndex: -1, HasBody: true}
	ctor.SimpleName = "construct"
	ctor.SetParent(td)
	ctor.QualifyName()
	ctor.SetStorageClass(defn.Instance)
	ctor.SetVisibility(defn.Public)
	traits := defn.Ctor.Add(defn.Synthetic)
	if ct.IsSingular() {
		traits = traits.Add(defn.Singular)
	}
	ctor.SetTraits(traits)
	ctor.ReturnType = types.Void

	ok := true
	var required, optional []*defn.ParameterDefn

	for _, d := range ct.Members.Entries() {
		v, isVar := d.(*defn.VariableDefn)
		if !isVar || v.StorageClass() != defn.Instance || v.DefnKind() == defn.KindLet {
			continue
		}
		if v.Visibility() != defn.Public {
			continue
		}

		if !s.resolveVariableType(ct, v) {
			ok = false
			continue
		}

		p := &defn.ParameterDefn{Type: v.Type}
		p.SimpleName = v.Name()
		p.SetParent(ctor)

		if v.Default.IsConstant() {
			p.Default = v.Default
			optional = append(optional, p)
		} else {
			required = append(required, p)
		}
	}

	ctor.Params = append(required, optional...)

	ctor.PresetPasses()
	return ctor, ok
}

// hasDefaultConstructor reports whether td has a constructor callable
// with zero arguments: either its declared "construct" has no
// required parameters, or it has no constructors at all (meaning one
// will be, or already was, synthesized with only optional/no params).
func (s *Sema) hasDefaultConstructor(td *defn.TypeDefn) bool {
	entries := td.Value.Members.Lookup("construct")
	if len(entries) == 0 {
		return true
	}
	for _, e := range entries {
		f, isFunc := e.(*defn.FunctionDefn)
		if !isFunc {
			continue
		}
		required := 0
		for _, p := range f.Params {
			if !p.HasDefault() {
				required++
			}
		}
		if required == 0 {
			return true
		}
	}
	return false
}
