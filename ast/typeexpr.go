package ast

import "github.com/alecthomas/participle/lexer"

// TypeExpr is the polymorphic AST supplier contract the Type Resolver
// consumes: every syntactic shape a type expression can take, each
// carrying its own source location. The resolver switches on which
// accessor returns non-nil rather than on a method tag, matching the
// way the rest of this AST is shaped (see Member in ast.go).
//
// Participle only ever drives Head, Tail and Or: a primary (a bare
// name or an anonymous function type), a left-to-right chain of
// postfix operators (member access, specialization, array sugar),
// and a lowest-precedence union tail. elaborate folds that flat
// capture into exactly one of the seven accessors below — nesting a
// fresh TypeExpr per postfix the same way a hand-written
// recursive-descent parser would — the first time any of them is
// called.
type TypeExpr struct {
	Pos lexer.Position

	Head *typeExprHead      `@@`
	Tail []*typeExprPostfix `@@*`
	Or   []*TypeExpr        `( "|" @@ )*`

	elaborated bool
	identifier *IdentifierExpr
	member     *MemberAccessExpr
	specialize *SpecializeExpr
	array      *ArraySugarExpr
	union      *UnionSugarExpr
	fn         *AnonymousFunctionTypeExpr
	builtin    *BuiltInExpr
}

func (t *TypeExpr) Position() lexer.Position { return t.Pos }

func (t *TypeExpr) Identifier() *IdentifierExpr {
	t.elaborate()
	return t.identifier
}

func (t *TypeExpr) Member() *MemberAccessExpr {
	t.elaborate()
	return t.member
}

func (t *TypeExpr) Specialize() *SpecializeExpr {
	t.elaborate()
	return t.specialize
}

func (t *TypeExpr) Array() *ArraySugarExpr {
	t.elaborate()
	return t.array
}

func (t *TypeExpr) Union() *UnionSugarExpr {
	t.elaborate()
	return t.union
}

func (t *TypeExpr) Func() *AnonymousFunctionTypeExpr {
	t.elaborate()
	return t.fn
}

// Builtin never comes from the parser (an identifier and a builtin
// name are lexically indistinguishable; resolveName's fallback to the
// Builtins collaborator is what actually recognizes one — see
// resolve.Resolver.resolveName). It exists so a collaborator can hand
// the core a synthetic TypeExpr naming a builtin directly.
func (t *TypeExpr) Builtin() *BuiltInExpr {
	t.elaborate()
	return t.builtin
}

func (t *TypeExpr) elaborate() {
	if t.elaborated {
		return
	}
	t.elaborated = true

	folded := foldChain(t.Pos, t.Head, t.Tail)

	if len(t.Or) == 0 {
		t.adopt(folded)
		return
	}

	members := []*TypeExpr{folded}
	for _, alt := range t.Or {
		alt.elaborate()
		members = append(members, alt)
	}
	t.union = &UnionSugarExpr{Pos: t.Pos, Members: members}
}

// adopt copies o's folded variant into t, so the top-level TypeExpr a
// caller holds (which may have no union tail at all) ends up directly
// holding whatever the postfix chain produced, rather than wrapping
// it in an extra indirection.
func (t *TypeExpr) adopt(o *TypeExpr) {
	t.identifier = o.identifier
	t.member = o.member
	t.specialize = o.specialize
	t.array = o.array
	t.union = o.union
	t.fn = o.fn
	t.builtin = o.builtin
}

func foldChain(pos lexer.Position, head *typeExprHead, tail []*typeExprPostfix) *TypeExpr {
	var cur *TypeExpr
	if head.Func != nil {
		for _, p := range head.Func.Params {
			p.elaborate()
		}
		if head.Func.ReturnType != nil {
			head.Func.ReturnType.elaborate()
		}
		cur = &TypeExpr{Pos: pos, elaborated: true, fn: head.Func}
	} else {
		cur = &TypeExpr{Pos: pos, elaborated: true, identifier: &IdentifierExpr{Pos: pos, Name: head.Name}}
	}

	for _, suf := range tail {
		switch {
		case suf.Member != "":
			cur = &TypeExpr{Pos: suf.Pos, elaborated: true,
				member: &MemberAccessExpr{Pos: suf.Pos, Base: cur, Member: suf.Member}}

		case len(suf.Specialize) > 0:
			for _, a := range suf.Specialize {
				a.elaborate()
			}
			cur = &TypeExpr{Pos: suf.Pos, elaborated: true,
				specialize: &SpecializeExpr{Pos: suf.Pos, Base: cur, Args: suf.Specialize}}

		case suf.Array:
			cur = &TypeExpr{Pos: suf.Pos, elaborated: true,
				array: &ArraySugarExpr{Pos: suf.Pos, Element: cur}}
		}
	}

	return cur
}

// typeExprHead is the grammar-visible primary a type expression starts
// with: either an anonymous function type or a bare name. Which of
// TypeExpr's own Identifier/Func accessors that resolves to is decided
// by elaborate, not by the grammar itself.
type typeExprHead struct {
	Pos lexer.Position

	Func *AnonymousFunctionTypeExpr `(   @@`
	Name string                     `  | @Ident )`
}

// typeExprPostfix is one grammar-visible postfix operator following a
// typeExprHead: ".Member", "<Args...>" or "[]", in the order written.
type typeExprPostfix struct {
	Pos lexer.Position

	Member     string      `(   "." @Ident`
	Specialize []*TypeExpr ` | "<" @@ ( "," @@ )* ">"`
	Array      bool        ` | @"[" "]" )`
}

// IdentifierExpr names a type by a single unqualified identifier,
// e.g. "Object" or a type parameter name.
type IdentifierExpr struct {
	Pos lexer.Position

	Name string
}

// MemberAccessExpr is a qualified reference, e.g. "pkg.Inner".
type MemberAccessExpr struct {
	Pos lexer.Position

	Base   *TypeExpr
	Member string
}

// SpecializeExpr instantiates a generic type with concrete arguments,
// e.g. "List<Int>".
type SpecializeExpr struct {
	Pos lexer.Position

	Base *TypeExpr
	Args []*TypeExpr
}

// ArraySugarExpr is the "T[]" shorthand for an array type.
type ArraySugarExpr struct {
	Pos lexer.Position

	Element *TypeExpr
}

// UnionSugarExpr is the "A | B | C" shorthand for a discriminated
// union type.
type UnionSugarExpr struct {
	Pos lexer.Position

	Members []*TypeExpr
}

// AnonymousFunctionTypeExpr is a bare function-type expression used as
// a parameter or field type, e.g. "fn(Int) String".
type AnonymousFunctionTypeExpr struct {
	Pos lexer.Position

	Params     []*TypeExpr `"fn" "(" ( @@ ( "," @@ )* )? ")"`
	ReturnType *TypeExpr   `@@?`
}

// BuiltInExpr names one of the primitive types the core treats as an
// opaque leaf (int, bool, string, void, ...).
type BuiltInExpr struct {
	Pos lexer.Position

	Name string
}
