package ast

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

const testSource = `
module demo

class Animal {
	public var name: String
	public def speak() String
}

class Dog : Animal {
	override def speak() String {}
}

interface Shape {
	def area() Float
}
`

func TestParseString(t *testing.T) {
	f, err := ParseString(testSource)
	assert.NoError(t, err)
	assert.Equal(t, "demo", f.Module)
	assert.Equal(t, 3, len(f.Types))

	animal := f.Types[0]
	assert.Equal(t, "Animal", animal.Name)
	assert.Equal(t, KindClass, animal.Kind)
	assert.Equal(t, 2, len(animal.Members))

	dog := f.Types[1]
	assert.Equal(t, "Dog", dog.Name)
	assert.Equal(t, 1, len(dog.Bases))
	assert.Equal(t, "Animal", dog.Bases[0].Identifier().Name)

	shape := f.Types[2]
	assert.Equal(t, KindInterface, shape.Kind)
}

func TestParseStringRejectsGarbage(t *testing.T) {
	_, err := ParseString("this is not the language at all {{{")
	assert.Error(t, err)
}
