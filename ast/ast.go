// Package ast is the AST supplier: the concrete syntax the semantic
// core is handed. The core itself never parses anything; it only walks
// the declarations below and the TypeExpr variants in typeexpr.go. A
// real front end would feed this package's types from a lexer/parser
// pair, which is what the participle grammar here does, extended from
// a small expression-free declaration language.
package ast

import (
	"io"

	"github.com/alecthomas/participle"
	"github.com/alecthomas/participle/lexer"
	"github.com/alecthomas/participle/lexer/regex"
	"github.com/pkg/errors"
)

var (
	lex = lexer.Must(regex.New(`
		comment = //.*|(?s:/\*.*?\*/)
		whitespace = [\r\t\n ]+

		Modifier = \b(public|protected|private|final|abstract|static|override|undef|readonly)\b
		Keyword = \b(class|struct|interface|protocol|var|let|def|fn|construct|create|coerce|property|indexer|get|set|throws|import|module)\b
		Ident = \b([[:alpha:]_]\w*)\b
		Number = \b(\d+(\.\d+)?)\b
		String = "(\\.|[^"])*"
		Operator = [:;,.(){}\[\]<>|=+]
	`))

	grammar = participle.MustBuild(&File{},
		participle.Lexer(lex),
		participle.Unquote("String"),
		participle.UseLookahead(2),
	)
)

// File is a single compilation unit: an optional module name, its
// imports, and the composite-type and top-level member declarations
// it contributes to that module.
type File struct {
	Pos lexer.Position

	Module  string        `("module" @(Ident ("." Ident)*))?`
	Imports []*ImportDecl `@@*`
	Types   []*TypeDecl   `@@*`
}

type ImportDecl struct {
	Pos lexer.Position

	Alias string `"import" @Ident?`
	Path  string `@String`
}

// TypeKind is the composite-type class a TypeDecl declares.
type TypeKind int

const (
	KindClass TypeKind = iota
	KindStruct
	KindInterface
	KindProtocol
)

func (k *TypeKind) Capture(values []string) error {
	switch values[0] {
	case "class":
		*k = KindClass
	case "struct":
		*k = KindStruct
	case "interface":
		*k = KindInterface
	case "protocol":
		*k = KindProtocol
	}
	return nil
}

// TypeDecl is a class/struct/interface/protocol declaration: the unit
// the Base-Class, Field, Constructor, Method, Overload, Coercer and
// Completion analyzers all operate on.
type TypeDecl struct {
	Pos lexer.Position

	Modifiers  Modifiers       `@Modifier*`
	Kind       TypeKind        `@( "class" | "struct" | "interface" | "protocol" )`
	Name       string          `@Ident`
	TypeParams []*TypeParamDecl `( "<" @@ ( "," @@ )* ">" )?`
	Bases      []*TypeExpr     `( ":" @@ ( "," @@ )* )?`
	Members    []*Member       `"{" @@* "}"`
}

// TypeParamDecl is one generic parameter introduced by a TypeDecl or a
// FuncDecl, with its optional constraint list.
type TypeParamDecl struct {
	Pos lexer.Position

	Name        string      `@Ident`
	Constraints []*TypeExpr `( ":" @@ ( "+" @@ )* )?`
}

// Member is one declaration nested inside a TypeDecl body. Exactly one
// field is populated, mirroring TypeExpr's shape.
type Member struct {
	Pos lexer.Position

	Modifiers Modifiers `@Modifier*`

	Var      *VarDecl      `(  @@`
	Func     *FuncDecl     ` | @@`
	Property *PropertyDecl ` | @@`
	Indexer  *IndexerDecl  ` | @@ )`
}

// VarDecl declares an instance or static field with "var" (mutable) or
// "let" (immutable, storage-free when its Default is a compile-time
// constant).
type VarDecl struct {
	Pos lexer.Position

	Mutable bool      `( @"var" | "let" )`
	Name    string    `@Ident`
	Type    *TypeExpr `( ":" @@ )?`
	Default *Literal  `( "=" @@ )?`
}

// FuncKind distinguishes the member names the Constructor and Coercer
// Analyzers treat specially from an ordinary method.
type FuncKind int

const (
	FuncMethod FuncKind = iota
	FuncConstruct
	FuncCreate
	FuncCoerce
)

func (k *FuncKind) Capture(values []string) error {
	switch values[0] {
	case "construct":
		*k = FuncConstruct
	case "create":
		*k = FuncCreate
	case "coerce":
		*k = FuncCoerce
	default:
		*k = FuncMethod
	}
	return nil
}

// FuncDecl declares a method, instance constructor ("construct"),
// static factory ("create") or coercer ("coerce"). Name is only ever
// populated by the grammar for the "def" case; declaration intake
// (NewFunctionDefn) fills in the fixed "construct"/"create"/"coerce"
// name for the other three kinds.
type FuncDecl struct {
	Pos lexer.Position

	Kind       FuncKind         `@( "construct" | "create" | "coerce" | "def" )`
	Name       string           `@Ident?`
	TypeParams []*TypeParamDecl `( "<" @@ ( "," @@ )* ">" )?`
	Params     []*ParamDecl     `"(" ( @@ ( "," @@ )* )? ")"`
	Throws     bool             `@"throws"?`
	ReturnType *TypeExpr        `@@?`
	HasBody    bool             `( @"{" "}"`
	Extern     bool             ` | @";" )?`
}

type ParamDecl struct {
	Pos lexer.Position

	Name    string    `@Ident`
	Type    *TypeExpr `":" @@`
	Default *Literal  `( "=" @@ )?`
}

// PropertyDecl declares a property with an optional getter/setter
// body. Properties and indexers participate in the vtable the same
// way methods do (see OverloadResolver).
type PropertyDecl struct {
	Pos lexer.Position

	Name       string    `"property" @Ident`
	Type       *TypeExpr `":" @@`
	HasGetter  bool      `( "{" ( @"get" ( "{" "}" )?`
	HasSetter  bool      `        | @"set" ( "{" "}" )? )* "}" )?`
}

// IndexerDecl declares an indexer ("this[...]"); like PropertyDecl but
// keyed by a parameter list rather than a bare name.
type IndexerDecl struct {
	Pos lexer.Position

	Params     []*ParamDecl `"indexer" "(" ( @@ ( "," @@ )* )? ")"`
	Type       *TypeExpr    `":" @@`
	HasGetter  bool         `( "{" ( @"get" ( "{" "}" )?`
	HasSetter  bool         `        | @"set" ( "{" "}" )? )* "}" )?`
}

// Literal is the small constant-expression subset the Field and
// Constructor Analyzers need to recognize (default field/parameter
// values); general expression evaluation is out of scope here.
type Literal struct {
	Pos lexer.Position

	Int    *int64   `(  @Number`
	String *string  ` | @String`
	Bool   *bool    ` | @( "true" | "false" )`
	Nil    bool     ` | @"nil" )`
}

func Parse(r io.Reader, filename string) (*File, error) {
	file := &File{}
	if err := grammar.Parse(r, file); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", filename)
	}
	return file, nil
}

func ParseString(s string) (*File, error) {
	file := &File{}
	if err := grammar.ParseString(s, file); err != nil {
		return nil, errors.Wrap(err, "parsing source")
	}
	return file, nil
}
