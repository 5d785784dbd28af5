package types

// Builtins is the process-wide, read-only-after-init primitive-type
// catalog (§5): the minimal set of names a Language program can
// reference without importing anything. It deliberately does not
// carry a coercion-rank matrix or operator table — that belongs to
// expression-level type inference, out of this repository's scope.
type Builtins struct {
	byName map[string]Type
}

// NewBuiltins constructs the catalog with the Language's fixed
// primitive names.
func NewBuiltins() *Builtins {
	b := &Builtins{byName: map[string]Type{}}
	for _, name := range []string{"Int", "Float", "String", "Bool"} {
		b.byName[name] = &Builtin{Name_: name}
	}
	b.byName["void"] = Void
	return b
}

// Lookup implements resolve.Builtins.
func (b *Builtins) Lookup(name string) (Type, bool) {
	t, ok := b.byName[name]
	return t, ok
}
