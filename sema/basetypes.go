package sema

import (
	"github.com/afrogeek/tart/defn"
	"github.com/afrogeek/tart/diag"
	"github.com/afrogeek/tart/passes"
	"github.com/afrogeek/tart/resolve"
)

// analyzeBaseClasses is the BaseTypes pass: the Base-Class Analyzer
// (§4.2). It validates every declared base, selects the primary base,
// orders td.Value.Bases so the primary is first, and synthesizes
// Object for a Class that declared no concrete base.
func (s *Sema) analyzeBaseClasses(td *defn.TypeDefn) bool {
	ct := td.Value

	if ct.Decl == nil {
		// Compiler-synthesized (Object itself): bases are prepopulated
		// by whoever constructed it.
		return true
	}

	if ct.TypeClass == defn.Interface || ct.TypeClass == defn.Protocol {
		if td.Traits().Has(defn.Final) {
			diag.Errorf(s.Diag, diag.FinalityViolation, ct.Decl.Pos,
				"%s %q cannot be final", ct.TypeClass, td.Name())
		}
	}

	var primary *defn.TypeDefn
	ok := true

	for _, baseExpr := range ct.Decl.Bases {
		baseType, resolved := s.Resolver.Resolve(ct.Members, baseExpr)
		if !resolved {
			ok = false
			continue
		}

		baseDefn, isType := resolve.TypeDefnOf(baseType)
		if !isType {
			diag.Errorf(s.Diag, diag.SyntaxReferenceError, baseExpr.Pos,
				"cannot inherit from %s", baseType)
			ok = false
			continue
		}

		if !baseType.IsSingular() && ct.IsSingular() {
			diag.Errorf(s.Diag, diag.SyntaxReferenceError, baseExpr.Pos,
				"base type %s is a template, not a type", baseDefn.Name())
			ok = false
			continue
		}

		if baseDefn.Traits().Has(defn.Final) {
			diag.Errorf(s.Diag, diag.FinalityViolation, baseExpr.Pos,
				"cannot inherit from final type %s", baseDefn.Name())
			ok = false
			continue
		}

		// §4.2 step 3e: recursively prepare the base to MemberLookup.
		// A cycle is caught by the base's own Pass Registry: Prepare
		// re-enters analyzeBaseClasses for the cycle partner, whose
		// Begin(BaseTypes) call returns false while IsRunning is true.
		if !s.Prepare(baseDefn, passes.PrepMemberLookup) {
			if baseDefn.Value.Passes.IsRunning(passes.BaseTypes) {
				diag.Errorf(s.Diag, diag.CircularDependency, baseExpr.Pos,
					"circular inheritance involving %s", baseDefn.Name())
			}
			ok = false
			continue
		}

		isClass := baseDefn.Value.TypeClass == defn.Class
		isStruct := baseDefn.Value.TypeClass == defn.Struct
		isInterface := baseDefn.Value.TypeClass == defn.Interface
		isProtocol := baseDefn.Value.TypeClass == defn.Protocol

		switch ct.TypeClass {
		case defn.Class:
			switch {
			case isClass:
				if primary != nil {
					diag.Errorf(s.Diag, diag.InheritanceRuleViolation, baseExpr.Pos,
						"classes can only have a single concrete supertype")
					ok = false
					continue
				}
				primary = baseDefn

			case isInterface:
				ct.Bases = append(ct.Bases, baseDefn)

			default:
				diag.Errorf(s.Diag, diag.InheritanceRuleViolation, baseExpr.Pos,
					"a class can only inherit from a class or an interface")
				ok = false
				continue
			}

		case defn.Struct:
			switch {
			case isStruct:
				if primary != nil {
					diag.Errorf(s.Diag, diag.InheritanceRuleViolation, baseExpr.Pos,
						"struct can only derive from a single struct")
					ok = false
					continue
				}
				primary = baseDefn

			case isProtocol:
				ct.Bases = append(ct.Bases, baseDefn)

			default:
				diag.Errorf(s.Diag, diag.InheritanceRuleViolation, baseExpr.Pos,
					"struct can only derive from a struct or a protocol")
				ok = false
				continue
			}

		case defn.Interface:
			switch {
			case isInterface:
				if primary != nil {
					ct.Bases = append(ct.Bases, baseDefn)
					continue
				}
				primary = baseDefn

			case isProtocol:
				ct.Bases = append(ct.Bases, baseDefn)

			default:
				diag.Errorf(s.Diag, diag.InheritanceRuleViolation, baseExpr.Pos,
					"interface can only inherit from interface or protocol")
				ok = false
				continue
			}

		case defn.Protocol:
			ct.Bases = append(ct.Bases, baseDefn)
		}
	}

	// §4.2 step 4: synthesize Object as primary base for a Class that
	// declared none and is not Object itself.
	if ct.TypeClass == defn.Class && primary == nil && td != s.Object {
		primary = s.Object
		if s.Object != nil {
			s.Module.External.Add(s.Object.Name(), s.Object)
		}
	}

	if primary != nil {
		ct.Super = primary
		ct.Bases = append([]*defn.TypeDefn{primary}, ct.Bases...)
	}

	s.propagateInheritedAttributes(td)

	return ok
}

// propagateInheritedAttributes applies §4.2 step 5: inheritable
// attributes flow from the primary base to the target. Nonreflective
// is the one trait this repository treats as inheritable; a type
// explicitly marked reflective again by a subclass is left alone.
func (s *Sema) propagateInheritedAttributes(td *defn.TypeDefn) {
	ct := td.Value
	if ct.Super == nil {
		return
	}
	if ct.Super.Traits().Has(defn.Nonreflective) {
		td.SetTraits(td.Traits().Add(defn.Nonreflective))
	}
}

// propagateAttributes is the Attribute pass. The Base-Class Analyzer
// already performs the one inheritable-attribute propagation this
// repository models (§4.2 step 5); this pass is the distinct stage
// the source's pass order names for it, kept separate so a future
// attribute (e.g. an explicit [NonReflective] annotation read off the
// AST) has a pass to land in without reshuffling BaseTypes.
func (s *Sema) propagateAttributes(td *defn.TypeDefn) bool {
	return true
}
