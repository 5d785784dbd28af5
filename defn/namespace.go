package defn

// NamespaceDefn groups a set of Defns under a name without itself
// being a composite type — the Language's equivalent of a package-like
// scope nested inside a module.
type NamespaceDefn struct {
	Base

	Members *SymbolTable
}

var _ Defn = &NamespaceDefn{}

func (n *NamespaceDefn) DefnKind() DefnKind { return KindNamespace }

func NewNamespaceDefn(name string, parent Defn) *NamespaceDefn {
	n := &NamespaceDefn{Members: NewSymbolTable()}
	n.SimpleName = name
	n.SetVisibility(Public)
	n.SetParent(parent)
	n.QualifyName()
	return n
}

// ModuleDefn is the root scope a compilation unit's declarations are
// intaken into. It owns the module's external-symbol set — the
// process-wide, append-only table that synthesized primary bases
// (Object) and exported static fields get registered into (see
// §5 "Shared resources" and the Base-Class Analyzer's Object
// synthesis step).
type ModuleDefn struct {
	Base

	Members  *SymbolTable
	External *SymbolTable
}

var _ Defn = &ModuleDefn{}

func (m *ModuleDefn) DefnKind() DefnKind { return KindModule }

func NewModuleDefn(name string) *ModuleDefn {
	m := &ModuleDefn{
		Members:  NewSymbolTable(),
		External: NewSymbolTable(),
	}
	m.SimpleName = name
	m.SetVisibility(Public)
	m.QualifyName()
	return m
}

// ExplicitImportDefn records an explicit "import x.y.Z" that brought a
// single name into scope, as opposed to a wildcard/package import.
type ExplicitImportDefn struct {
	Base

	ImportedFrom string
	Values       []Defn
}

var _ Defn = &ExplicitImportDefn{}

func (e *ExplicitImportDefn) DefnKind() DefnKind { return KindExplicitImport }
