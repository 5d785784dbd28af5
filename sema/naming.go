package sema

import (
	"github.com/afrogeek/tart/defn"
	"github.com/afrogeek/tart/diag"
)

// checkNameConflicts is the NamingConflict pass: every name in the
// member table must denote defns of a single kind, except that
// functions (which may legitimately overload) are exempt from the
// "single kind" rule among themselves.
func (s *Sema) checkNameConflicts(td *defn.TypeDefn) bool {
	ct := td.Value
	ok := true

	for _, name := range ct.Members.Names() {
		entries := ct.Members.Lookup(name)
		if len(entries) < 2 {
			continue
		}

		kind := entries[0].DefnKind()
		for _, e := range entries[1:] {
			if e.DefnKind() == kind && kind == defn.KindFunction {
				continue
			}
			if e.DefnKind() != kind {
				diag.Errorf(s.Diag, diag.SignatureConflict, e.Pos(),
					"%q is declared as both a %s and a %s", name, kind, e.DefnKind())
				ok = false
			}
		}
	}

	return ok
}
