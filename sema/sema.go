// Package sema is the semantic core: the staged, demand-driven
// analyzer that takes a CompositeType from declaration intake through
// scope creation, base-class resolution, field layout, constructor
// synthesis, method/overload resolution, coercer collection and final
// completion.
//
// Control flow is entirely synchronous and single-threaded (§5): the
// only entry point is Prepare, and every pass it runs may itself
// recurse into Prepare on another TypeDefn to bring it up to a
// required stage before continuing. The passes.Registry's running bit
// is what keeps that recursion from looping forever on a cyclic type
// graph.
package sema

import (
	"github.com/afrogeek/tart/defn"
	"github.com/afrogeek/tart/diag"
	"github.com/afrogeek/tart/funcsema"
	"github.com/afrogeek/tart/passes"
	"github.com/afrogeek/tart/resolve"
)

// Sema is the orchestrator gluing the Type Resolver, Function
// Analyzer, module state and diagnostics sink together. It implements
// resolve.Preparer so the Type Resolver can schedule newly discovered
// types without importing this package.
type Sema struct {
	Diag     diag.Sink
	Resolver *resolve.Resolver
	Funcs    *funcsema.Analyzer
	Module   *defn.ModuleDefn

	// Object is the synthesized root class every Class without a
	// declared primary base inherits from (§4.2 step 4).
	Object *defn.TypeDefn
}

var _ resolve.Preparer = &Sema{}

// Prepare is the demand-driven entry point (§5): it runs the minimum
// pass set task requires on td that hasn't already finished, and
// returns whether every pass it ran succeeded. Calling Prepare twice
// for the same task is idempotent (§8 property 1): the second call
// finds nothing left in Remaining and returns true immediately.
func (s *Sema) Prepare(td *defn.TypeDefn, task passes.Task) bool {
	ct := td.Value
	needed := ct.Passes.Remaining(task.Passes())
	if needed.Empty() {
		return true
	}

	ok := true
	for p := passes.Pass(0); p < passes.NumPasses; p++ {
		if !needed.Contains(p) {
			continue
		}
		if ct.Passes.IsFinished(p) {
			continue
		}
		if !ct.Passes.Begin(p) {
			// Already running: a cyclic Prepare call reached back here.
			// Every pass but Completion marks this call as failed and
			// goes on with the remaining passes; the outer call that is
			// actually running the pass is responsible for finishing it.
			if p == passes.Completion {
				continue
			}
			ok = false
			continue
		}

		if !s.runPass(td, p) {
			ok = false
		}
		ct.Passes.Finish(p)
	}

	return ok
}

func (s *Sema) runPass(td *defn.TypeDefn, p passes.Pass) bool {
	switch p {
	case passes.ScopeCreation:
		return s.scopeCreation(td)
	case passes.BaseTypes:
		return s.analyzeBaseClasses(td)
	case passes.Attribute:
		return s.propagateAttributes(td)
	case passes.NamingConflict:
		return s.checkNameConflicts(td)
	case passes.Converter:
		return s.analyzeCoercers(td)
	case passes.Constructor:
		return s.analyzeConstructors(td)
	case passes.MemberType:
		return s.analyzeMemberTypes(td)
	case passes.Field:
		return s.analyzeFields(td)
	case passes.FieldType:
		return s.analyzeFieldTypes(td)
	case passes.Method:
		return s.analyzeMethods(td)
	case passes.Overloading:
		return s.analyzeOverloading(td)
	case passes.Completion:
		return s.analyzeCompletely(td)
	default:
		return true
	}
}
