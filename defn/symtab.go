package defn

// SymbolTable maps a name to the insertion-ordered list of Defns
// declared under that name — an overload set when the name denotes
// more than one function, or a naming conflict when it denotes defns
// of different kinds. It is embedded directly in CompositeType (and
// used standalone for module/namespace scopes) rather than living in
// its own package, to avoid an import cycle with the Defn it stores.
type SymbolTable struct {
	order []string
	byName map[string][]Defn
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{byName: make(map[string][]Defn)}
}

// Add appends d to the overload set for its name, preserving
// declaration order both within a name and across the table.
func (s *SymbolTable) Add(name string, d Defn) {
	if _, ok := s.byName[name]; !ok {
		s.order = append(s.order, name)
	}
	s.byName[name] = append(s.byName[name], d)
}

// Lookup returns the overload set for name, or nil if no Defn was
// ever added under it.
func (s *SymbolTable) Lookup(name string) []Defn {
	return s.byName[name]
}

// Names returns every name in the table in insertion order.
func (s *SymbolTable) Names() []string {
	return s.order
}

// Entries returns every Defn in the table, in the order names were
// first inserted and defns were added under each.
func (s *SymbolTable) Entries() []Defn {
	var all []Defn
	for _, name := range s.order {
		all = append(all, s.byName[name]...)
	}
	return all
}

// Len reports the number of distinct names in the table.
func (s *SymbolTable) Len() int { return len(s.order) }
