// Package passes defines the ordered analysis stages a composite type
// passes through and the bitset bookkeeping used to run them at most
// once each, in order, while detecting re-entrant cycles.
package passes

import "fmt"

// Pass identifies one elementary analysis stage. Passes are totally
// ordered; Set relies on that order only insofar as callers tend to
// request prefixes of it via the Task constructors below.
type Pass uint

const (
	ScopeCreation Pass = iota
	BaseTypes
	Attribute
	NamingConflict
	Converter
	Constructor
	MemberType
	Field
	FieldType
	Method
	Overloading
	Completion

	// NumPasses is the total number of passes; callers iterating the
	// full order range over [0, NumPasses).
	NumPasses
)

func (p Pass) String() string {
	switch p {
	case ScopeCreation:
		return "ScopeCreation"
	case BaseTypes:
		return "BaseTypes"
	case Attribute:
		return "Attribute"
	case NamingConflict:
		return "NamingConflict"
	case Converter:
		return "Converter"
	case Constructor:
		return "Constructor"
	case MemberType:
		return "MemberType"
	case Field:
		return "Field"
	case FieldType:
		return "FieldType"
	case Method:
		return "Method"
	case Overloading:
		return "Overloading"
	case Completion:
		return "Completion"
	default:
		return fmt.Sprintf("Pass(%d)", p)
	}
}

// Set is a bitset over Pass, used both for "finished"/"running" tracking
// and for describing a Task as a closed set of required passes.
type Set uint32

// Of builds a Set from the given passes.
func Of(ps ...Pass) Set {
	var s Set
	for _, p := range ps {
		s = s.add(p)
	}
	return s
}

func (s Set) add(p Pass) Set    { return s | (1 << p) }
func (s Set) remove(p Pass) Set { return s &^ (1 << p) }

// Contains reports whether p is a member of s.
func (s Set) Contains(p Pass) bool { return s&(1<<p) != 0 }

// Empty reports whether the set has no members.
func (s Set) Empty() bool { return s == 0 }

// Without returns s with every pass in other removed.
func (s Set) Without(other Set) Set {
	return s &^ other
}

// Task is a named closed set of passes requested by an external caller.
// Every task from PrepMemberLookup on includes PrepMemberLookup's
// passes, and PrepCodeGeneration includes every pass. The tiers are not
// strictly nested: Constructor belongs only to PrepConstruction and
// PrepCodeGeneration, and Converter is absent from PrepConstruction.
type Task int

const (
	PrepTypeComparison Task = iota
	PrepMemberLookup
	PrepConstruction
	PrepConversion
	PrepEvaluation
	PrepTypeGeneration
	PrepCodeGeneration
)

var taskPasses = map[Task]Set{
	PrepTypeComparison: Of(ScopeCreation, BaseTypes),
	PrepMemberLookup:   Of(ScopeCreation, BaseTypes, Attribute),
	PrepConstruction:   Of(ScopeCreation, BaseTypes, Attribute, NamingConflict, Constructor),
	PrepConversion:     Of(ScopeCreation, BaseTypes, Attribute, NamingConflict, Converter),
	PrepEvaluation: Of(ScopeCreation, BaseTypes, Attribute, NamingConflict, Converter,
		MemberType, Field, Method, Overloading),
	PrepTypeGeneration: Of(ScopeCreation, BaseTypes, Attribute, NamingConflict, Converter,
		MemberType, Field, Method, Overloading, FieldType),
	PrepCodeGeneration: Of(ScopeCreation, BaseTypes, Attribute, NamingConflict, Converter,
		Constructor, MemberType, Field, FieldType, Method, Overloading, Completion),
}

// Passes returns the closed set of passes required to satisfy t.
func (t Task) Passes() Set {
	return taskPasses[t]
}

// Registry tracks, per composite type, which passes are running or
// finished. running and finished are always disjoint.
type Registry struct {
	running  Set
	finished Set
}

// Begin marks pass as running if it isn't already finished. It reports
// false either because the pass already finished (nothing to do) or
// because it is already running (re-entrant call: a cycle).
//
// Callers distinguish the two cases with IsRunning before treating a
// false return as a cycle.
func (r *Registry) Begin(pass Pass) bool {
	if r.finished.Contains(pass) {
		return false
	}
	if r.running.Contains(pass) {
		return false
	}
	r.running = r.running.add(pass)
	return true
}

// Finish clears the running bit and sets the finished bit for pass.
// Calling Finish for a pass that was never begun is a programming error.
func (r *Registry) Finish(pass Pass) {
	r.running = r.running.remove(pass)
	r.finished = r.finished.add(pass)
}

// IsRunning reports whether pass is currently executing somewhere up the
// call stack for this type.
func (r *Registry) IsRunning(pass Pass) bool { return r.running.Contains(pass) }

// IsFinished reports whether pass has completed for this type.
func (r *Registry) IsFinished(pass Pass) bool { return r.finished.Contains(pass) }

// Finished returns the full set of finished passes.
func (r *Registry) Finished() Set { return r.finished }

// Remaining returns the passes in need that have not yet finished.
func (r *Registry) Remaining(need Set) Set {
	return need.Without(r.finished)
}

// PresetFinished marks every pass in s as finished without running it,
// and clears any of them that were marked running.
func (r *Registry) PresetFinished(s Set) {
	r.finished = r.finished | s
	r.running = r.running.Without(s)
}
