package ast

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestFuncDeclKindAndName(t *testing.T) {
	f, err := ParseString(`
class Point {
	construct(x: Int) {}
	create() Point {}
	coerce(v: Int) Point {}
	def length() Float
}
`)
	assert.NoError(t, err)

	members := f.Types[0].Members
	assert.Equal(t, 4, len(members))

	construct := members[0].Func
	assert.Equal(t, FuncConstruct, construct.Kind)
	assert.Equal(t, "", construct.Name)

	create := members[1].Func
	assert.Equal(t, FuncCreate, create.Kind)
	assert.Equal(t, "", create.Name)

	coerce := members[2].Func
	assert.Equal(t, FuncCoerce, coerce.Kind)
	assert.Equal(t, "", coerce.Name)

	method := members[3].Func
	assert.Equal(t, FuncMethod, method.Kind)
	assert.Equal(t, "length", method.Name)
}
