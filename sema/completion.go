package sema

import (
	"github.com/afrogeek/tart/defn"
	"github.com/afrogeek/tart/passes"
	"github.com/afrogeek/tart/resolve"
)

// analyzeCompletely is the Completion pass: the Completion Analyzer
// (§4.8). It recursively brings the super and every direct member up
// to full code-generation readiness. Re-entrance is tolerated rather
// than treated as a cycle: a type completing itself while completing
// a member that refers back to it (e.g. a field of its own type, or a
// method returning it) is a normal, finite recursion, not an error.
func (s *Sema) analyzeCompletely(td *defn.TypeDefn) bool {
	ct := td.Value
	ok := true

	if ct.Super != nil {
		if !s.Prepare(ct.Super, passes.PrepCodeGeneration) {
			ok = false
		}
	}
	for _, base := range ct.Bases {
		if base == ct.Super {
			continue
		}
		if !s.Prepare(base, passes.PrepCodeGeneration) {
			ok = false
		}
	}

	for _, d := range ct.Members.Entries() {
		switch m := d.(type) {
		case *defn.FunctionDefn:
			if !s.Funcs.Analyze(m, passes.PrepCodeGeneration) {
				ok = false
			}
		case *defn.VariableDefn:
			if m.Type == nil {
				continue
			}
			if other, isType := resolve.TypeDefnOf(m.Type); isType && other != td {
				if !s.Prepare(other, passes.PrepCodeGeneration) {
					ok = false
				}
			}
		}
	}

	return ok
}
