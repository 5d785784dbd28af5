package ast

import "strings"

// Modifiers is the bitset of keywords that can prefix a TypeDecl or
// Member declaration. It is the AST-level counterpart of defn.Traits
// and defn.Visibility; the declaration-intake step that builds a
// TypeDefn/FunctionDefn from a TypeDecl/Member translates one into the
// other (see defn.TraitsFromModifiers).
type Modifiers uint

const (
	ModPublic Modifiers = 1 << iota
	ModProtected
	ModPrivate
	ModFinal
	ModAbstract
	ModStatic
	ModOverride
	ModUndef
	ModReadOnly
)

func (m Modifiers) Has(flag Modifiers) bool { return m&flag != 0 }

func (m *Modifiers) Capture(values []string) error {
	switch values[0] {
	case "public":
		*m |= ModPublic
	case "protected":
		*m |= ModProtected
	case "private":
		*m |= ModPrivate
	case "final":
		*m |= ModFinal
	case "abstract":
		*m |= ModAbstract
	case "static":
		*m |= ModStatic
	case "override":
		*m |= ModOverride
	case "undef":
		*m |= ModUndef
	case "readonly":
		*m |= ModReadOnly
	}
	return nil
}

func (m Modifiers) String() string {
	var parts []string
	for flag, name := range map[Modifiers]string{
		ModPublic:    "public",
		ModProtected: "protected",
		ModPrivate:   "private",
		ModFinal:     "final",
		ModAbstract:  "abstract",
		ModStatic:    "static",
		ModOverride:  "override",
		ModUndef:     "undef",
		ModReadOnly:  "readonly",
	} {
		if m.Has(flag) {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, " ")
}
