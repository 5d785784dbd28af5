// Package funcsema implements the Function Analyzer external
// collaborator: the piece the semantic core calls to elaborate a
// constructor, method, property accessor or coercer's signature
// before reasoning about it. Resolving expressions inside a function
// body is a separate, later pass triggered only at PrepCodeGeneration
// and is stubbed here — full expression-level inference is outside
// this repository's scope.
package funcsema

import (
	"github.com/afrogeek/tart/defn"
	"github.com/afrogeek/tart/diag"
	"github.com/afrogeek/tart/passes"
	"github.com/afrogeek/tart/resolve"
	"github.com/afrogeek/tart/types"
)

// Analyzer is the Function Analyzer.
type Analyzer struct {
	Resolver *resolve.Resolver
	Diag     diag.Sink
}

// Analyze brings f's signature up to the pass set task requires.
// Function-level analysis is coarse enough that this repository tracks
// it as "signature elaborated or not" rather than a full bitset —
// every task tier this package receives needs the same thing, a fully
// typed parameter and return list, so there is nothing finer-grained
// to stage.
func (a *Analyzer) Analyze(f *defn.FunctionDefn, task passes.Task) bool {
	if f.PassesPreset() {
		return true
	}

	scope := defn.NewSymbolTable()
	if parent, ok := f.Parent().(*defn.TypeDefn); ok {
		scope = parent.Value.Members
	}

	ok := true
	for _, p := range f.Params {
		if p.Type != nil || p.Decl == nil || p.Decl.Type == nil {
			continue
		}
		t, resolved := a.Resolver.Resolve(scope, p.Decl.Type)
		if !resolved {
			ok = false
			continue
		}
		p.Type = t
	}

	if f.ReturnType == nil {
		if f.Decl != nil && f.Decl.ReturnType != nil {
			t, resolved := a.Resolver.Resolve(scope, f.Decl.ReturnType)
			if !resolved {
				ok = false
			} else {
				f.ReturnType = t
			}
		} else {
			f.ReturnType = types.Void
		}
	}

	if task == passes.PrepCodeGeneration {
		// Resolving expressions inside f's body is a distinct pass this
		// repository does not implement; a complete compiler would run
		// its expression-level inference here before code generation.
	}

	return ok
}
