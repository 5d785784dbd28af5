package defn

import "github.com/alecthomas/participle/lexer"

// DefnKind tags the sum of declaration kinds the Language recognizes.
// A central switch on this tag replaces the deep class hierarchy the
// original implementation used.
type DefnKind int

const (
	KindType DefnKind = iota
	KindNamespace
	KindVar
	KindLet
	KindFunction
	KindProperty
	KindIndexer
	KindParameter
	KindModule
	KindExplicitImport
)

func (k DefnKind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindNamespace:
		return "namespace"
	case KindVar:
		return "var"
	case KindLet:
		return "let"
	case KindFunction:
		return "function"
	case KindProperty:
		return "property"
	case KindIndexer:
		return "indexer"
	case KindParameter:
		return "parameter"
	case KindModule:
		return "module"
	case KindExplicitImport:
		return "explicit-import"
	default:
		return "?"
	}
}

// Defn is the common interface every declaration record satisfies.
// Concrete implementations embed Base for the shared bookkeeping.
type Defn interface {
	DefnKind() DefnKind
	Name() string
	QualifiedName() string
	SetQualifiedName(string)
	Pos() lexer.Position
	Traits() Traits
	SetTraits(Traits)
	Visibility() Visibility
	StorageClass() StorageClass
	Parent() Defn
}

// Base carries the bookkeeping every Defn shares: its simple and
// qualified name, source position, trait bitset, visibility, storage
// class and enclosing scope. It does not implement DefnKind itself —
// each concrete type overrides that — which is why Base satisfies
// everything in Defn except DefnKind.
type Base struct {
	SimpleName string
	QName      string
	position   lexer.Position
	traits     Traits
	vis        Visibility
	storage    StorageClass
	parent     Defn
}

func (b *Base) Name() string                  { return b.SimpleName }
func (b *Base) QualifiedName() string         { return b.QName }
func (b *Base) SetQualifiedName(qn string)    { b.QName = qn }
func (b *Base) Pos() lexer.Position           { return b.position }
func (b *Base) SetPos(p lexer.Position)       { b.position = p }
func (b *Base) Traits() Traits                { return b.traits }
func (b *Base) SetTraits(t Traits)            { b.traits = t }
func (b *Base) Visibility() Visibility        { return b.vis }
func (b *Base) SetVisibility(v Visibility)    { b.vis = v }
func (b *Base) StorageClass() StorageClass    { return b.storage }
func (b *Base) SetStorageClass(s StorageClass) { b.storage = s }
func (b *Base) Parent() Defn                  { return b.parent }
func (b *Base) SetParent(p Defn)              { b.parent = p }

// QualifyName sets QName to "parent.simpleName", or just simpleName if
// parent is nil or has no qualified name of its own yet.
func (b *Base) QualifyName() {
	if b.parent == nil || b.parent.QualifiedName() == "" {
		b.QName = b.SimpleName
		return
	}
	b.QName = b.parent.QualifiedName() + "." + b.SimpleName
}
