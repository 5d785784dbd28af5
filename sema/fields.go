package sema

import (
	"github.com/afrogeek/tart/defn"
	"github.com/afrogeek/tart/diag"
	"github.com/afrogeek/tart/passes"
)

// analyzeFields is the Field pass: the Field Analyzer (§4.3). It
// assigns per-type and recursive instance-field indices, segregates
// static fields into CompositeType.StaticFields, rejects data members
// declared directly on an interface, and prunes storage-free
// constants (a Let whose default is a compile-time constant).
func (s *Sema) analyzeFields(td *defn.TypeDefn) bool {
	ct := td.Value
	ok := true

	perTypeIndex := 0
	recursiveIndex := 0
	if ct.Super != nil {
		// RecursiveFieldCount only reflects reality once the super has
		// run its own Field pass; BaseTypes only brought it as far as
		// MemberLookup, so bring it the rest of the way here, the same
		// demand-driven recursion the Base-Class Analyzer already uses
		// for its own dependency on the super.
		if !s.Prepare(ct.Super, passes.PrepEvaluation) {
			ok = false
		}

		// Slot 0 is reserved for the superclass representation, unless
		// the super is only a protocol base, which has no
		// representation to reserve a slot for.
		//
		// Open question in the source this is grounded on: protocol
		// bases are treated here as never triggering the reservation,
		// per the documented choice for the struct/protocol case.
		if ct.Super.Value.TypeClass != defn.Protocol {
			ct.InstanceFields = append(ct.InstanceFields, defn.NewSuperSlot(ct.Super))
			perTypeIndex = 1
		}
		recursiveIndex = ct.Super.Value.RecursiveFieldCount()
	}

	for _, d := range ct.Members.Entries() {
		v, isVar := d.(*defn.VariableDefn)
		if !isVar {
			continue
		}

		if ct.TypeClass == defn.Interface {
			diag.Errorf(s.Diag, diag.InheritanceRuleViolation, v.Pos(),
				"interface %q cannot declare data member %q", td.Name(), v.Name())
			ok = false
			continue
		}

		if v.IsConstant() {
			v.PerTypeIndex = -1
			v.RecursiveIndex = -1
			continue
		}

		switch v.StorageClass() {
		case defn.Static:
			ct.StaticFields = append(ct.StaticFields, v)
			s.Module.External.Add(v.Name(), v)

		default:
			v.PerTypeIndex = perTypeIndex
			v.RecursiveIndex = recursiveIndex
			ct.InstanceFields = append(ct.InstanceFields, v)
			perTypeIndex++
			recursiveIndex++
		}
	}

	ct.SetRecursiveFieldCount(recursiveIndex)

	return ok
}
