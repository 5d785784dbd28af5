package sema

import "github.com/afrogeek/tart/defn"

// scopeCreation is the ScopeCreation pass. Declaration intake
// (defn.Intake) already builds the member SymbolTable and qualifies
// every member's name; this pass exists as a named stage mainly so
// later passes have something finished to depend on via the Pass
// Registry, matching the source's own near-empty CreateMembers stage.
func (s *Sema) scopeCreation(td *defn.TypeDefn) bool {
	return true
}
