package sema

import (
	"github.com/afrogeek/tart/ast"
	"github.com/afrogeek/tart/defn"
	"github.com/afrogeek/tart/diag"
	"github.com/afrogeek/tart/passes"
)

// analyzeMethods is the Method pass: the Method Analyzer (§4.5). It
// elaborates every declared method signature (property and indexer
// accessors get theirs in the MemberType pass), defers
// templates with unresolved type parameters, enforces that
// interface/protocol members are public and non-final, and detects
// signature duplication within a single overload set.
func (s *Sema) analyzeMethods(td *defn.TypeDefn) bool {
	ct := td.Value
	ok := true

	for _, d := range ct.Members.Entries() {
		f, isFunc := d.(*defn.FunctionDefn)
		if !isFunc || f.Decl == nil {
			continue
		}
		if f.Decl.Kind == ast.FuncConstruct {
			// Already brought up to TypeComparison by the Constructor
			// pass; nothing further for this stage.
			continue
		}

		if len(f.Decl.TypeParams) > 0 && !isSingularSignature(f) {
			// Deferred: excluded from this class's vtable considerations
			// until its type parameters are bound.
			continue
		}

		if !s.Funcs.Analyze(f, passes.PrepTypeComparison) {
			ok = false
			continue
		}

		if ct.TypeClass == defn.Interface || ct.TypeClass == defn.Protocol {
			if f.Visibility() != defn.Public {
				diag.Errorf(s.Diag, diag.InheritanceRuleViolation, f.Pos(),
					"%s member %q must be public", ct.TypeClass, f.Name())
				ok = false
			}
			if f.Traits().Has(defn.Final) {
				diag.Errorf(s.Diag, diag.FinalityViolation, f.Pos(),
					"%s member %q cannot be final", ct.TypeClass, f.Name())
				ok = false
			}
		}
	}

	if !s.checkDuplicateSignatures(td) {
		ok = false
	}

	return ok
}

// checkDuplicateSignatures implements §4.5's duplication rule: within
// one overload set, two functions with equal parameter-type tuples
// and equal static/instance classification conflict, and two
// properties with equal type conflict.
func (s *Sema) checkDuplicateSignatures(td *defn.TypeDefn) bool {
	ct := td.Value
	ok := true

	for _, name := range ct.Members.Names() {
		entries := ct.Members.Lookup(name)
		var funcs []*defn.FunctionDefn
		var props []*defn.PropertyDefn
		for _, e := range entries {
			switch m := e.(type) {
			case *defn.FunctionDefn:
				funcs = append(funcs, m)
			case *defn.PropertyDefn:
				props = append(props, m)
			}
		}

		for i := 0; i < len(funcs); i++ {
			for j := i + 1; j < len(funcs); j++ {
				if funcs[i].SignatureEqual(funcs[j]) {
					diag.Errorf(s.Diag, diag.SignatureConflict, funcs[j].Pos(),
						"%q redeclares a function with an identical signature", name)
					ok = false
				}
			}
		}

		for i := 0; i < len(props); i++ {
			for j := i + 1; j < len(props); j++ {
				if props[i].Type == props[j].Type {
					diag.Errorf(s.Diag, diag.SignatureConflict, props[j].Pos(),
						"%q redeclares a property of the same type", name)
					ok = false
				}
			}
		}
	}

	return ok
}
