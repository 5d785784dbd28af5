package sema

import (
	"github.com/afrogeek/tart/ast"
	"github.com/afrogeek/tart/defn"
	"github.com/afrogeek/tart/passes"
	"github.com/afrogeek/tart/types"
)

// analyzeCoercers is the Converter pass: the Coercer Analyzer (§4.7).
// For classes and structs only, it enumerates own (non-inherited)
// members named by the "coerce" convention, requiring each to be a
// static function with exactly one parameter and a non-void return.
func (s *Sema) analyzeCoercers(td *defn.TypeDefn) bool {
	ct := td.Value
	if ct.TypeClass != defn.Class && ct.TypeClass != defn.Struct {
		return true
	}

	ok := true
	for _, d := range ct.Members.Lookup("coerce") {
		f, isFunc := d.(*defn.FunctionDefn)
		if !isFunc || f.Decl == nil || f.Decl.Kind != ast.FuncCoerce {
			continue
		}
		if f.Parent() != td {
			// Inherited, not declared directly on this type.
			continue
		}

		if !s.Funcs.Analyze(f, passes.PrepTypeComparison) {
			ok = false
			continue
		}

		if f.StorageClass() != defn.Static || len(f.Params) != 1 || types.IsVoid(f.ReturnType) {
			continue
		}

		ct.Coercers = append(ct.Coercers, f)
		if ct.IsSingular() && isSingularSignature(f) {
			f.SetTraits(f.Traits().Add(defn.Singular))
		}
	}

	return ok
}
