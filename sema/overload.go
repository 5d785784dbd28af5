package sema

import (
	"github.com/afrogeek/tart/defn"
	"github.com/afrogeek/tart/diag"
	"github.com/afrogeek/tart/passes"
)

// analyzeOverloading is the Overloading pass: the Overload Resolver
// (§4.6), the vtable/itable builder. It runs its four substeps in
// order, sharing state through ct.InstanceMethods and ct.Interfaces,
// then performs the completeness check.
func (s *Sema) analyzeOverloading(td *defn.TypeDefn) bool {
	ok := true

	// copyBaseClassMethods and createInterfaceTables both read a base's
	// InstanceMethods/Interfaces, which only reflect reality once that
	// base has run its own Overloading pass; BaseTypes only brought
	// direct bases as far as MemberLookup. Preparing every direct base
	// the rest of the way also transitively prepares the ancestors
	// createInterfaceTables's BFS walks, since each base's own
	// Overloading pass applies this same recursion to its bases.
	for _, base := range td.Value.Bases {
		if !s.Prepare(base, passes.PrepEvaluation) {
			ok = false
		}
	}

	s.copyBaseClassMethods(td)
	s.createInterfaceTables(td)

	if !s.overrideMembers(td) {
		ok = false
	}
	s.addNewMethods(td)

	if !s.checkForRequiredMethods(td) {
		ok = false
	}

	return ok
}

// copyBaseClassMethods is §4.6.1. If there is a super, InstanceMethods
// starts as a clone of the super's InstanceMethods in order, so slot
// indices are inherited. For interfaces and structs lacking a super,
// the first element of Bases fills that role instead.
func (s *Sema) copyBaseClassMethods(td *defn.TypeDefn) {
	ct := td.Value

	var source *defn.TypeDefn
	if ct.Super != nil {
		source = ct.Super
	} else if (ct.TypeClass == defn.Interface || ct.TypeClass == defn.Struct) && len(ct.Bases) > 0 {
		source = ct.Bases[0]
	}

	if source == nil {
		return
	}

	ct.InstanceMethods = append(ct.InstanceMethods, source.Value.InstanceMethods...)
}

// ancestorsOf returns the transitive, deduplicated set of bases of td
// (not including td itself), in a stable order derived from a
// breadth-first walk of Bases.
func ancestorsOf(td *defn.TypeDefn) []*defn.TypeDefn {
	seen := map[*defn.TypeDefn]bool{td: true}
	var order []*defn.TypeDefn
	queue := append([]*defn.TypeDefn{}, td.Value.Bases...)
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil || seen[next] {
			continue
		}
		seen[next] = true
		order = append(order, next)
		queue = append(queue, next.Value.Bases...)
	}
	return order
}

// createInterfaceTables is §4.6.2. It computes the transitive ancestor
// set, removes any ancestor that is itself the primary base of
// another ancestor (it shares that primary's itable), then allocates
// one itable per remaining interface ancestor, seeded either from an
// itable already present somewhere in the base chain or, failing
// that, from the interface's own InstanceMethods.
func (s *Sema) createInterfaceTables(td *defn.TypeDefn) {
	ct := td.Value
	ancestors := ancestorsOf(td)

	isPrimaryOfAnother := map[*defn.TypeDefn]bool{}
	for _, a := range ancestors {
		if a.Value.Super != nil {
			isPrimaryOfAnother[a.Value.Super] = true
		}
	}

	for _, a := range ancestors {
		if a.Value.TypeClass != defn.Interface {
			continue
		}
		if isPrimaryOfAnother[a] {
			continue
		}

		seed := s.findExistingITable(ancestors, a)
		if seed == nil {
			seed = append([]*defn.FunctionDefn{}, a.Value.InstanceMethods...)
		}
		ct.Interfaces = append(ct.Interfaces, &defn.ITable{
			Interface: a,
			Methods:   append([]*defn.FunctionDefn{}, seed...),
		})
	}
}

func (s *Sema) findExistingITable(ancestors []*defn.TypeDefn, iface *defn.TypeDefn) []*defn.FunctionDefn {
	for _, a := range ancestors {
		for _, it := range a.Value.Interfaces {
			if it.Interface == iface {
				return it.Methods
			}
		}
	}
	return nil
}

// overrideMembers is §4.6.3. For each name in this type's own member
// table with at least one same-named entry already in InstanceMethods
// or an itable, it partitions entries into methods/getters/setters and
// runs overrideMethods against InstanceMethods and every itable.
// Duplicate signatures within a name are diagnosed by the Method pass
// (checkDuplicateSignatures) and are not checked again here.
func (s *Sema) overrideMembers(td *defn.TypeDefn) bool {
	ct := td.Value
	ok := true

	for _, name := range ct.Members.Names() {
		entries := ct.Members.Lookup(name)
		var methods, getters, setters []*defn.FunctionDefn
		for _, e := range entries {
			f, isFunc := e.(*defn.FunctionDefn)
			if !isFunc {
				continue
			}
			switch {
			case f.Property != nil && f.Property.Getter == f:
				getters = append(getters, f)
			case f.Property != nil && f.Property.Setter == f:
				setters = append(setters, f)
			case f.Indexer != nil && f.Indexer.Getter == f:
				getters = append(getters, f)
			case f.Indexer != nil && f.Indexer.Setter == f:
				setters = append(setters, f)
			default:
				methods = append(methods, f)
			}
		}

		if len(methods) > 0 {
			if !s.overrideMethods(ct.InstanceMethods, methods, true) {
				ok = false
			}
			for _, it := range ct.Interfaces {
				if !s.overrideMethods(it.Methods, methods, false) {
					ok = false
				}
			}
		}
		for _, group := range [][]*defn.FunctionDefn{getters, setters} {
			if len(group) == 0 {
				continue
			}
			if !s.overrideMethods(ct.InstanceMethods, group, true) {
				ok = false
			}
			for _, it := range ct.Interfaces {
				if !s.overrideMethods(it.Methods, group, false) {
					ok = false
				}
			}
		}
	}

	return ok
}

// overrideMethods is the core override/hide algorithm (§4.6.3). For
// each slot of table whose occupant shares a name with one of
// newMethods, it looks for an override-compatible replacement. If
// found, it replaces the slot, assigns the new method that slot's
// dispatch index when canHide (class tables only, never itables), and
// records the overridden method. If no compatible replacement exists
// but the occupant has a body, the new methods hide it — a warning,
// never an error, and only ever raised for class tables.
func (s *Sema) overrideMethods(table []*defn.FunctionDefn, newMethods []*defn.FunctionDefn, canHide bool) bool {
	ok := true
	placed := map[*defn.FunctionDefn]bool{}

	for i, occupant := range table {
		if occupant == nil {
			continue
		}
		var replacement *defn.FunctionDefn
		for _, nm := range newMethods {
			if placed[nm] || nm.Name() != occupant.Name() {
				continue
			}
			if overrideCompatible(nm, occupant) {
				replacement = nm
				break
			}
		}

		if replacement != nil {
			table[i] = replacement
			if canHide && replacement.DispatchIndex < 0 {
				replacement.DispatchIndex = i
			}
			replacement.OverriddenMethods = append(replacement.OverriddenMethods, occupant)
			if !replacement.Traits().Has(defn.Override) {
				diagWarnOverrideWithoutKeyword(s, replacement)
			}
			placed[replacement] = true
			continue
		}

		if canHide && occupant.HasBody {
			for _, nm := range newMethods {
				if !placed[nm] && nm.Name() == occupant.Name() {
					diagWarnHiddenMember(s, nm, occupant)
				}
			}
		}
	}

	return ok
}

// overrideCompatible stands in for the function layer's variance
// oracle the specification leaves opaque: parameter count and (since
// this repository does not model per-parameter variance) parameter
// types must match exactly, and the names must already be known equal
// by the caller.
func overrideCompatible(candidate, existing *defn.FunctionDefn) bool {
	if len(candidate.Params) != len(existing.Params) {
		return false
	}
	for i, p := range candidate.Params {
		if p.Type != existing.Params[i].Type {
			return false
		}
	}
	return true
}

// addNewMethods is §4.6.4. Every singular instance-storage member of
// this type that has no dispatch index yet is appended to
// InstanceMethods at a freshly assigned dispatch index; a method that
// overrideMembers placed only in an itable has none, so it is appended
// too. The exceptions are final methods, which are never placed (they
// are statically dispatched), and constructors, which never enter a
// vtable at all.
func (s *Sema) addNewMethods(td *defn.TypeDefn) {
	ct := td.Value

	for _, d := range ct.Members.Entries() {
		f, isFunc := d.(*defn.FunctionDefn)
		if !isFunc || f.StorageClass() != defn.Instance {
			continue
		}
		if f.Traits().Has(defn.Ctor) {
			continue
		}
		if !ct.IsSingular() && !isSingularSignature(f) {
			continue
		}
		if f.DispatchIndex >= 0 {
			continue
		}
		if f.Traits().Has(defn.Final) {
			continue
		}

		if f.Traits().Has(defn.Undefined) && !f.IsOverride() && len(f.Params) > 0 {
			diagErrorUndefinedWithoutOverride(s, f)
		}

		f.DispatchIndex = len(ct.InstanceMethods)
		ct.InstanceMethods = append(ct.InstanceMethods, f)
	}
}

func diagWarnOverrideWithoutKeyword(s *Sema, f *defn.FunctionDefn) {
	diag.Warnf(s.Diag, diag.OverrideWithoutKeyword, f.Pos(),
		"%q overrides a base member but is not marked override", f.Name())
}

func diagWarnHiddenMember(s *Sema, hider, hidden *defn.FunctionDefn) {
	diag.Warnf(s.Diag, diag.HiddenMember, hider.Pos(),
		"%q hides %q instead of overriding it", hider.Name(), hidden.QualifiedName())
}

func diagErrorUndefinedWithoutOverride(s *Sema, f *defn.FunctionDefn) {
	diag.Errorf(s.Diag, diag.InheritanceRuleViolation, f.Pos(),
		"%q is marked undef but overrides nothing", f.Name())
}

func diagErrorAbstractnessFailure(s *Sema, td *defn.TypeDefn, m *defn.FunctionDefn) {
	diag.Errorf(s.Diag, diag.AbstractnessFailure, td.Pos(),
		"%q does not implement %q", td.Name(), m.Name())
}

// checkForRequiredMethods is §4.6.5. If the target is not Abstract,
// any InstanceMethods entry with no body and no extern/intrinsic/undef
// marker makes the type effectively abstract — diagnosed for concrete
// classes and for all structs. Any itable entry still pointing at a
// bodyless method means that interface is unimplemented. Interfaces
// and protocols are never checked.
func (s *Sema) checkForRequiredMethods(td *defn.TypeDefn) bool {
	ct := td.Value
	if td.Traits().Has(defn.Abstract) || ct.TypeClass == defn.Interface || ct.TypeClass == defn.Protocol {
		return true
	}

	ok := true
	for _, m := range ct.InstanceMethods {
		if m.HasBody || m.Extern || m.Intrinsic || m.Traits().Has(defn.Undefined) {
			continue
		}
		diagErrorAbstractnessFailure(s, td, m)
		ok = false
	}

	for _, it := range ct.Interfaces {
		for _, m := range it.Methods {
			if m.HasBody || m.Extern || m.Intrinsic || m.Traits().Has(defn.Undefined) {
				continue
			}
			diagErrorAbstractnessFailure(s, td, m)
			ok = false
		}
	}

	return ok
}
