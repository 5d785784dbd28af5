package types

import "fmt"

// ConstKind distinguishes the handful of literal shapes the semantic
// core needs to recognize without doing general expression evaluation:
// default parameter values, and the constant initializers that let a
// Let field skip instance storage entirely.
type ConstKind int

const (
	ConstNone ConstKind = iota
	ConstInt
	ConstFloat
	ConstString
	ConstBool
	ConstNil
)

// ConstValue is a fully-evaluated compile-time constant. The core never
// evaluates arbitrary expressions to produce one; its external AST
// collaborator hands back a ConstValue wherever a default value or
// field initializer is syntactically a literal, and leaves it zero
// (ConstNone) otherwise.
type ConstValue struct {
	Kind   ConstKind
	Int    int64
	Float  float64
	String string
	Bool   bool
}

// IsConstant reports whether v holds an actual literal, as opposed to
// the zero value used to mean "not a compile-time constant".
func (v ConstValue) IsConstant() bool { return v.Kind != ConstNone }

func (v ConstValue) GoString() string {
	switch v.Kind {
	case ConstInt:
		return fmt.Sprintf("%d", v.Int)
	case ConstFloat:
		return fmt.Sprintf("%g", v.Float)
	case ConstString:
		return fmt.Sprintf("%q", v.String)
	case ConstBool:
		return fmt.Sprintf("%t", v.Bool)
	case ConstNil:
		return "nil"
	default:
		return "<none>"
	}
}
