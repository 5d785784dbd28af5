package defn

// ModuleNameResolver implements resolve.NameResolver without this
// package importing resolve: it is the concrete Name resolver
// collaborator (§6.2) this repository ships, falling back from a
// local scope to the owning module's own members and finally to the
// module's external-symbol set (synthesized bases like Object, and
// exported static fields — §5's shared resources).
type ModuleNameResolver struct {
	Module *ModuleDefn
}

func NewModuleNameResolver(module *ModuleDefn) *ModuleNameResolver {
	return &ModuleNameResolver{Module: module}
}

// Resolve looks up name first in scope, then in the module's own
// members, then in its external-symbol set, then unwraps any
// ExplicitImportDefn found along the way to the names it imported.
func (r *ModuleNameResolver) Resolve(scope *SymbolTable, name string) []Defn {
	if scope != nil {
		if found := scope.Lookup(name); len(found) > 0 {
			return expandImports(found)
		}
	}
	if r.Module == nil {
		return nil
	}
	if found := r.Module.Members.Lookup(name); len(found) > 0 {
		return expandImports(found)
	}
	return expandImports(r.Module.External.Lookup(name))
}

func expandImports(candidates []Defn) []Defn {
	var out []Defn
	for _, c := range candidates {
		if imp, isImport := c.(*ExplicitImportDefn); isImport {
			out = append(out, imp.Values...)
			continue
		}
		out = append(out, c)
	}
	return out
}
