// Package resolve implements the Type Resolver: it turns an AST type
// expression into an elaborated types.Type. It depends on two external
// collaborators, both expressed as interfaces so this package never
// imports the semantic core that implements them (which would import
// resolve back to ask it to elaborate types — the cycle the Preparer
// indirection exists to break).
package resolve

import (
	"fmt"

	"github.com/afrogeek/tart/ast"
	"github.com/afrogeek/tart/defn"
	"github.com/afrogeek/tart/diag"
	"github.com/afrogeek/tart/passes"
	"github.com/afrogeek/tart/types"
	"github.com/alecthomas/participle/lexer"
	"github.com/alecthomas/repr"
)

// NameResolver is the external collaborator that turns an identifier
// (optionally qualified) into the set of Defns visible for it from a
// given scope. More than one candidate is an ambiguity error; zero is
// an unresolved-name error. Both are the core's to raise, not this
// interface's.
type NameResolver interface {
	Resolve(scope *defn.SymbolTable, name string) []defn.Defn
}

// Preparer lets the resolver schedule a freshly discovered TypeDefn
// for at least the MemberLookup stage, without this package importing
// the sema package that implements the pass machinery.
type Preparer interface {
	Prepare(td *defn.TypeDefn, task passes.Task) bool
}

// Builtins looks up a primitive type by name; the core never
// constructs a types.Builtin itself.
type Builtins interface {
	Lookup(name string) (types.Type, bool)
}

// Resolver is the Type Resolver.
type Resolver struct {
	Names    NameResolver
	Prepare  Preparer
	Builtins Builtins
	Diag     diag.Sink
}

// Resolve elaborates expr against scope, recursively resolving nested
// type expressions (specialization arguments, array/union members,
// function parameter and return types) and, whenever it lands on a
// named type, scheduling that type's TypeDefn for MemberLookup before
// returning it — per §4.1, "it calls name lookup and, upon finding a
// type definition, schedules that definition for at least the
// MemberLookup stage."
func (r *Resolver) Resolve(scope *defn.SymbolTable, expr *ast.TypeExpr) (types.Type, bool) {
	switch {
	case expr.Identifier() != nil:
		return r.resolveName(scope, expr.Identifier().Name, expr.Pos)

	case expr.Member() != nil:
		m := expr.Member()
		base, ok := r.Resolve(scope, m.Base)
		if !ok {
			return nil, false
		}
		ct, ok := compositeOf(base)
		if !ok {
			diag.Errorf(r.Diag, diag.SyntaxReferenceError, expr.Pos,
				"%s has no member %s", base, m.Member)
			return nil, false
		}
		return r.resolveName(ct.Members, m.Member, expr.Pos)

	case expr.Specialize() != nil:
		sp := expr.Specialize()
		base, ok := r.Resolve(scope, sp.Base)
		if !ok {
			return nil, false
		}
		args := make([]types.Type, 0, len(sp.Args))
		for _, a := range sp.Args {
			at, ok := r.Resolve(scope, a)
			if !ok {
				return nil, false
			}
			args = append(args, at)
		}
		return &types.Instantiation{Base: base, Args: args}, true

	case expr.Array() != nil:
		el, ok := r.Resolve(scope, expr.Array().Element)
		if !ok {
			return nil, false
		}
		return &types.Array{Element: el}, true

	case expr.Union() != nil:
		un := expr.Union()
		members := make([]types.Type, 0, len(un.Members))
		for _, m := range un.Members {
			mt, ok := r.Resolve(scope, m)
			if !ok {
				return nil, false
			}
			members = append(members, mt)
		}
		return &types.Union{Members: members}, true

	case expr.Func() != nil:
		fn := expr.Func()
		params := make([]types.Param, 0, len(fn.Params))
		for i, p := range fn.Params {
			pt, ok := r.Resolve(scope, p)
			if !ok {
				return nil, false
			}
			params = append(params, types.Param{Name: fmt.Sprintf("p%d", i), Type: pt})
		}
		ret := types.Void
		if fn.ReturnType != nil {
			rt, ok := r.Resolve(scope, fn.ReturnType)
			if !ok {
				return nil, false
			}
			ret = rt
		}
		return &types.Function{Params: params, ReturnType: ret}, true

	case expr.Builtin() != nil:
		b := expr.Builtin()
		if t, ok := r.Builtins.Lookup(b.Name); ok {
			return t, true
		}
		diag.Errorf(r.Diag, diag.SyntaxReferenceError, expr.Pos, "unknown builtin type %q", b.Name)
		return nil, false
	}

	// Every parsed TypeExpr elaborates to one of the variants above; an
	// empty one is a broken grammar invariant, not a user error.
	panic(repr.String(expr))
}

func (r *Resolver) resolveName(scope *defn.SymbolTable, name string, pos lexer.Position) (types.Type, bool) {
	candidates := r.Names.Resolve(scope, name)
	switch len(candidates) {
	case 0:
		if t, ok := r.Builtins.Lookup(name); ok {
			return t, true
		}
		diag.Errorf(r.Diag, diag.SyntaxReferenceError, pos, "cannot inherit from %s: not a type", name)
		return nil, false

	case 1:
		return r.resolveDefn(candidates[0], name, pos)

	default:
		diag.Errorf(r.Diag, diag.SyntaxReferenceError, pos, "ambiguous reference to %q", name)
		return nil, false
	}
}

func (r *Resolver) resolveDefn(d defn.Defn, name string, pos lexer.Position) (types.Type, bool) {
	td, ok := d.(*defn.TypeDefn)
	if !ok {
		diag.Errorf(r.Diag, diag.SyntaxReferenceError, pos, "cannot inherit from %s: not a type", name)
		return nil, false
	}
	r.Prepare.Prepare(td, passes.PrepMemberLookup)
	return &typeDefnRef{td}, true
}

// typeDefnRef wraps a *defn.TypeDefn as a types.Type so the resolver
// can hand back something satisfying that interface without defn (the
// package CompositeType lives in) importing types for anything beyond
// the plain Type interface it already implements via CompositeType.
type typeDefnRef struct {
	td *defn.TypeDefn
}

func (t *typeDefnRef) Kind() types.Kind     { return t.td.Value.Kind() }
func (t *typeDefnRef) String() string       { return t.td.QualifiedName() }
func (t *typeDefnRef) IsSingular() bool     { return t.td.Value.IsSingular() }
func (t *typeDefnRef) TypeDefn() *defn.TypeDefn { return t.td }

// compositeOf unwraps a types.Type produced by this resolver back to
// the CompositeType it names, if any — used for member-access
// resolution ("pkg.Inner").
func compositeOf(t types.Type) (*defn.CompositeType, bool) {
	if ref, ok := t.(*typeDefnRef); ok {
		return ref.td.Value, true
	}
	return nil, false
}

// TypeDefnOf extracts the underlying *defn.TypeDefn from a types.Type
// this resolver produced, for callers (the Base-Class Analyzer chief
// among them) that need the TypeDefn handle rather than just the Type
// interface — e.g. to reach its Traits() or recurse into Prepare.
func TypeDefnOf(t types.Type) (*defn.TypeDefn, bool) {
	ref, ok := t.(*typeDefnRef)
	if !ok {
		return nil, false
	}
	return ref.td, true
}
