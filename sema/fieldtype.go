package sema

import (
	"github.com/afrogeek/tart/defn"
	"github.com/afrogeek/tart/passes"
	"github.com/afrogeek/tart/resolve"
)

// analyzeFieldTypes is the FieldType pass. It recurses into every
// instance and static field's type and brings it up to
// PrepTypeGeneration, so that by the time this type itself reaches
// TypeGeneration every field it stores has a fully laid-out type.
func (s *Sema) analyzeFieldTypes(td *defn.TypeDefn) bool {
	ct := td.Value
	ok := true

	prepare := func(fields []*defn.VariableDefn) {
		for _, f := range fields {
			if f.Type == nil {
				continue
			}
			if other, isType := resolve.TypeDefnOf(f.Type); isType && other != td {
				if !s.Prepare(other, passes.PrepTypeGeneration) {
					ok = false
				}
			}
		}
	}

	prepare(ct.InstanceFields)
	prepare(ct.StaticFields)

	return ok
}
