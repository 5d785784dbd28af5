package defn

import (
	"strings"

	"github.com/afrogeek/tart/ast"
)

// Traits is the single-word attribute bitset shared by every kind of
// Defn. Operations on it are pure set algebra; nothing here dispatches
// virtually on trait state.
type Traits uint

const (
	Final Traits = 1 << iota
	Abstract
	Undefined
	Ctor
	Singular
	Synthetic
	Nonreflective
	ReadOnly
	// Override records that the declaration used the "override"
	// keyword; the Overload Resolver uses its absence to decide
	// whether a successful override should be diagnosed with
	// OverrideWithoutKeyword.
	Override
)

func (t Traits) Has(flag Traits) bool { return t&flag != 0 }
func (t Traits) Add(flag Traits) Traits { return t | flag }
func (t Traits) Remove(flag Traits) Traits { return t &^ flag }

func (t Traits) String() string {
	var parts []string
	for flag, name := range map[Traits]string{
		Final:         "final",
		Abstract:      "abstract",
		Undefined:     "undef",
		Ctor:          "ctor",
		Singular:      "singular",
		Synthetic:     "synthetic",
		Nonreflective: "nonreflective",
		ReadOnly:      "readonly",
		Override:      "override",
	} {
		if t.Has(flag) {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, ",")
}

// TraitsFromModifiers maps the AST-level modifier keywords onto the
// Traits a freshly created Defn starts life with, mirroring the
// constructor logic of the source every TypeDefn/FunctionDefn is
// modelled on.
func TraitsFromModifiers(m ast.Modifiers) Traits {
	var t Traits
	if m.Has(ast.ModFinal) {
		t = t.Add(Final)
	}
	if m.Has(ast.ModAbstract) {
		t = t.Add(Abstract)
	}
	if m.Has(ast.ModUndef) {
		t = t.Add(Undefined)
	}
	if m.Has(ast.ModReadOnly) {
		t = t.Add(ReadOnly)
	}
	if m.Has(ast.ModOverride) {
		t = t.Add(Override)
	}
	return t
}

// Visibility is the access level of a Defn.
type Visibility int

const (
	Private Visibility = iota
	Protected
	Public
)

func (v Visibility) String() string {
	switch v {
	case Private:
		return "private"
	case Protected:
		return "protected"
	case Public:
		return "public"
	default:
		return "?"
	}
}

// VisibilityFromModifiers resolves the AST's public/protected/private
// modifiers, defaulting to Private when none is given — the same
// default the Language's declaration intake uses.
func VisibilityFromModifiers(m ast.Modifiers) Visibility {
	switch {
	case m.Has(ast.ModPublic):
		return Public
	case m.Has(ast.ModProtected):
		return Protected
	default:
		return Private
	}
}

// StorageClass is where a Defn's value lives.
type StorageClass int

const (
	Instance StorageClass = iota
	Static
	Local
)

func StorageClassFromModifiers(m ast.Modifiers) StorageClass {
	if m.Has(ast.ModStatic) {
		return Static
	}
	return Instance
}
