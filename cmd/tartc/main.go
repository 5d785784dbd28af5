// Command tartc drives the composite-type semantic analyzer over a set
// of source files, far enough to exercise the whole pipeline: parse,
// intake every declared type, bring each to PrepCodeGeneration, and
// report accumulated diagnostics. It does not emit IR, bitcode or
// reflection metadata — that is the codegen/reflection stage's job,
// outside this repository's scope, and no output file is ever written
// here.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/afrogeek/tart/ast"
	"github.com/afrogeek/tart/defn"
	"github.com/afrogeek/tart/diag"
	"github.com/afrogeek/tart/funcsema"
	"github.com/afrogeek/tart/passes"
	"github.com/afrogeek/tart/resolve"
	"github.com/afrogeek/tart/sema"
	"github.com/afrogeek/tart/types"
)

func main() {
	dump := flag.Bool("dump", false, "dump the parsed AST of each file before analysis")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: tartc [-dump] file.tart...")
		os.Exit(2)
	}

	log := diag.NewLog(os.Stderr)
	if err := run(flag.Args(), *dump, log); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if log.Failed() {
		os.Exit(1)
	}
}

func run(files []string, dump bool, log diag.Sink) error {
	module := defn.NewModuleDefn("main")

	object := defn.NewSynthetic("Object", defn.Class, module)
	resolver := &resolve.Resolver{
		Names:    defn.NewModuleNameResolver(module),
		Builtins: types.NewBuiltins(),
		Diag:     log,
	}
	s := &sema.Sema{
		Diag:     log,
		Resolver: resolver,
		Funcs:    &funcsema.Analyzer{Resolver: resolver, Diag: log},
		Module:   module,
		Object:   object,
	}
	resolver.Prepare = s

	var typeDefns []*defn.TypeDefn

	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		file, err := ast.Parse(f, path)
		f.Close()
		if err != nil {
			return err
		}
		if dump {
			fmt.Println(ast.Dump(file))
		}

		for _, decl := range file.Types {
			td := defn.Intake(decl, module, module)
			module.Members.Add(td.Name(), td)
			typeDefns = append(typeDefns, td)
		}
	}

	for _, td := range typeDefns {
		s.Prepare(td, passes.PrepCodeGeneration)
	}

	return nil
}
