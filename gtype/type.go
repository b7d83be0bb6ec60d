package gtype

import (
	"reflect"
	"strings"
)

// Kind discriminates Type variants.
type Kind int

const (
	//KindOpaque represents a type backed only by a reflect type, a traversal leaf
	KindOpaque = Kind(iota)
	//KindObject represents the universal top type
	KindObject
	//KindPrimitive represents a primitive or text type
	KindPrimitive
	//KindArray represents a slice or array type
	KindArray
	//KindVariable represents an unresolved type parameter
	KindVariable
	//KindClass represents a raw reference to a schema definition
	KindClass
	//KindParameterized represents a definition instantiated with type arguments
	KindParameterized
)

type (
	//Type represents a declared or resolved type
	Type interface {
		Kind() Kind
		String() string
	}

	//Primitive represents a primitive or text type
	Primitive struct {
		rType reflect.Type
	}

	//Array represents a slice or array type with its component type
	Array struct {
		component Type
	}

	//Class represents a raw reference to a schema definition
	Class struct {
		def *Definition
	}

	//Parameterized represents a definition with type arguments
	Parameterized struct {
		def  *Definition
		args []Type
	}

	//Variable represents a named type parameter
	Variable struct {
		name string
	}

	//Object represents the universal top type
	Object struct{}

	//Opaque represents a type with no schema definition, a traversal leaf
	Opaque struct {
		rType reflect.Type
	}
)

// Predefined primitive types
var (
	TextType    = &Primitive{rType: reflect.TypeOf("")}
	IntType     = &Primitive{rType: reflect.TypeOf(0)}
	BoolType    = &Primitive{rType: reflect.TypeOf(true)}
	Float64Type = &Primitive{rType: reflect.TypeOf(0.0)}

	//ObjectType is the universal top type
	ObjectType = &Object{}
)

func (p *Primitive) Kind() Kind { return KindPrimitive }

func (p *Primitive) String() string { return p.rType.String() }

// ReflectType returns primitive backing reflect type
func (p *Primitive) ReflectType() reflect.Type { return p.rType }

func (a *Array) Kind() Kind { return KindArray }

func (a *Array) String() string { return "[]" + a.component.String() }

// Component returns array component type
func (a *Array) Component() Type { return a.component }

func (c *Class) Kind() Kind { return KindClass }

func (c *Class) String() string { return c.def.Name() }

// Definition returns referenced definition
func (c *Class) Definition() *Definition { return c.def }

func (p *Parameterized) Kind() Kind { return KindParameterized }

func (p *Parameterized) String() string {
	items := make([]string, len(p.args))
	for i, arg := range p.args {
		items[i] = arg.String()
	}
	return p.def.Name() + "<" + strings.Join(items, ",") + ">"
}

// Definition returns instantiated definition
func (p *Parameterized) Definition() *Definition { return p.def }

// Args returns type arguments
func (p *Parameterized) Args() []Type { return p.args }

func (v *Variable) Kind() Kind { return KindVariable }

func (v *Variable) String() string { return v.name }

// Name returns variable name
func (v *Variable) Name() string { return v.name }

func (o *Object) Kind() Kind { return KindObject }

func (o *Object) String() string { return "any" }

func (o *Opaque) Kind() Kind { return KindOpaque }

func (o *Opaque) String() string { return o.rType.String() }

// ReflectType returns opaque backing reflect type
func (o *Opaque) ReflectType() reflect.Type { return o.rType }

// NewArray creates an array type with supplied component type
func NewArray(component Type) *Array {
	return &Array{component: component}
}

// NewVariable creates a type variable
func NewVariable(name string) *Variable {
	return &Variable{name: name}
}

// NewParameterized instantiates a definition with supplied type arguments
func NewParameterized(def *Definition, args ...Type) *Parameterized {
	return &Parameterized{def: def, args: args}
}

// IsArray returns true if supplied type is an array type
func IsArray(t Type) bool {
	return t != nil && t.Kind() == KindArray
}

// ComponentType returns array component type or nil
func ComponentType(t Type) Type {
	if array, ok := t.(*Array); ok {
		return array.component
	}
	return nil
}

// RawType returns the raw form of supplied type; type arguments are discarded,
// an unresolved variable degrades to the top type
func RawType(t Type) Type {
	switch actual := t.(type) {
	case *Parameterized:
		return &Class{def: actual.def}
	case *Variable:
		return ObjectType
	}
	return t
}

// RawDefinition returns the definition behind a class or parameterized type, or nil
func RawDefinition(t Type) *Definition {
	switch actual := t.(type) {
	case *Class:
		return actual.def
	case *Parameterized:
		return actual.def
	}
	return nil
}

// Equal returns true if both types are structurally equal
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch actual := a.(type) {
	case *Primitive:
		return actual.rType == b.(*Primitive).rType
	case *Array:
		return Equal(actual.component, b.(*Array).component)
	case *Class:
		return actual.def == b.(*Class).def
	case *Parameterized:
		other := b.(*Parameterized)
		if actual.def != other.def || len(actual.args) != len(other.args) {
			return false
		}
		for i, arg := range actual.args {
			if !Equal(arg, other.args[i]) {
				return false
			}
		}
		return true
	case *Variable:
		return actual.name == b.(*Variable).name
	case *Object:
		return true
	case *Opaque:
		return actual.rType == b.(*Opaque).rType
	}
	return false
}
