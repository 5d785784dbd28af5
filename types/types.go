// Package types models the elaborated type values the semantic core
// consumes and produces. The primitive-type catalog, union-type
// construction and tuple types belong to other stages of a full
// compiler; here they are represented just far enough that CompositeType
// (package defn) can sit in the same Type interface as everything else,
// and the Type Resolver always has something concrete to hand back.
package types

import (
	"fmt"
	"strings"
)

// Type is the result of elaborating an AST type expression or a
// composite-type declaration. CompositeType (package defn) is the only
// implementation the semantic core itself builds; Builtin, Array, Union
// and Function stand in for the primitive catalog and tuple/function
// type machinery that a complete compiler would own elsewhere.
type Type interface {
	Kind() Kind
	String() string

	// IsSingular reports whether the type has no remaining free type
	// parameters, and so is eligible for field/method analysis and
	// eventually code generation.
	IsSingular() bool
}

// Builtin stands in for a primitive type (int, bool, string, ...). The
// semantic core never constructs one of its own accord; it receives
// them from the Type Resolver's external AST/name-resolution
// collaborators and treats them as opaque singular leaves.
type Builtin struct {
	Name_ string
}

func (b *Builtin) Kind() Kind       { return KindBuiltin }
func (b *Builtin) String() string   { return b.Name_ }
func (b *Builtin) IsSingular() bool { return true }

// Array is a homogeneous sequence type, e.g. the resolved form of the
// "T[]" sugar in a type expression.
type Array struct {
	Element Type
}

func (a *Array) Kind() Kind       { return KindArray }
func (a *Array) String() string   { return a.Element.String() + "[]" }
func (a *Array) IsSingular() bool { return a.Element.IsSingular() }

// Union is a discriminated union of its Members, e.g. the resolved form
// of "A | B | C" in a type expression. The union's own member list is
// elaborated by the Type Resolver; the composite-type analyzers that
// make up the semantic core only ever see it as a leaf.
type Union struct {
	Members []Type
}

func (u *Union) Kind() Kind { return KindUnion }

func (u *Union) String() string {
	parts := make([]string, len(u.Members))
	for i, m := range u.Members {
		parts[i] = m.String()
	}
	return strings.Join(parts, " | ")
}

func (u *Union) IsSingular() bool {
	for _, m := range u.Members {
		if !m.IsSingular() {
			return false
		}
	}
	return true
}

// Param is a name/type pair shared by Function parameters and anywhere
// else a labelled type shows up outside of a composite type's own
// field list.
type Param struct {
	Name string
	Type Type
}

// Function is a function or method signature considered purely as a
// type value, independent of any FunctionDefn that might carry one.
type Function struct {
	Params     []Param
	ReturnType Type
}

func (f *Function) Kind() Kind { return KindFunction }

func (f *Function) String() string {
	w := &strings.Builder{}
	w.WriteString("fn(")
	for i, p := range f.Params {
		if i > 0 {
			w.WriteString(", ")
		}
		fmt.Fprintf(w, "%s %s", p.Name, p.Type)
	}
	w.WriteString(")")
	if !IsVoid(f.ReturnType) {
		fmt.Fprintf(w, " %s", f.ReturnType)
	}
	return w.String()
}

func (f *Function) IsSingular() bool {
	if f.ReturnType != nil && !f.ReturnType.IsSingular() {
		return false
	}
	for _, p := range f.Params {
		if !p.Type.IsSingular() {
			return false
		}
	}
	return true
}

// TypeParam is an unbound generic type parameter declared on a
// CompositeType or FunctionDefn. It is never singular on its own; a
// CompositeType remains a template until every TypeParam it introduces
// has been replaced by a concrete argument.
type TypeParam struct {
	Name        string
	Constraints []Type
}

func (t *TypeParam) Kind() Kind       { return KindTypeParam }
func (t *TypeParam) String() string   { return t.Name }
func (t *TypeParam) IsSingular() bool { return false }

// Void is the builtin unit type returned by functions with no return
// value.
var Void Type = &Builtin{Name_: "void"}

// IsVoid reports whether t is the Void type.
func IsVoid(t Type) bool { return t == Void }

// Instantiation is a generic type applied to concrete type arguments,
// e.g. the resolved form of "List<Int>". The semantic core treats
// Base's declaring CompositeType as a template until every one of its
// type parameters has a corresponding Args entry; constraint checking
// on the arguments themselves belongs to the Type Resolver, not here.
type Instantiation struct {
	Base Type
	Args []Type
}

func (i *Instantiation) Kind() Kind { return i.Base.Kind() }

func (i *Instantiation) String() string {
	w := &strings.Builder{}
	w.WriteString(i.Base.String())
	w.WriteString("<")
	for j, a := range i.Args {
		if j > 0 {
			w.WriteString(", ")
		}
		w.WriteString(a.String())
	}
	w.WriteString(">")
	return w.String()
}

func (i *Instantiation) IsSingular() bool {
	for _, a := range i.Args {
		if !a.IsSingular() {
			return false
		}
	}
	return true
}
