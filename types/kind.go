package types

// Kind is the coarse classification of a Type, used for dispatch and in
// diagnostic messages where the full type isn't needed.
type Kind int

const (
	KindNone Kind = iota
	KindBuiltin
	KindFunction
	KindArray
	KindUnion
	KindClass
	KindStruct
	KindInterface
	KindProtocol
	KindTypeParam
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBuiltin:
		return "builtin"
	case KindFunction:
		return "function"
	case KindArray:
		return "array"
	case KindUnion:
		return "union"
	case KindClass:
		return "class"
	case KindStruct:
		return "struct"
	case KindInterface:
		return "interface"
	case KindProtocol:
		return "protocol"
	case KindTypeParam:
		return "type parameter"
	default:
		return "?"
	}
}
