package structnav

import (
	"github.com/viant/structnav/gtype"
	"github.com/viant/xunsafe"
	"reflect"
	"unsafe"
)

// Field identifies a single field of a visited class; produced fresh for every
// declared field of every class visited
type Field struct {
	owner *gtype.Definition
	def   *gtype.FieldDef
}

// NewField creates a field descriptor
func NewField(owner *gtype.Definition, def *gtype.FieldDef) *Field {
	return &Field{owner: owner, def: def}
}

// Name returns field name
func (f *Field) Name() string {
	return f.def.Name()
}

// ExposedName returns field output name
func (f *Field) ExposedName() string {
	return f.def.ExposedName()
}

// DeclaringType returns the definition declaring the field
func (f *Field) DeclaringType() *gtype.Definition {
	return f.owner
}

// DeclaredType returns field declared type prior to resolution
func (f *Field) DeclaredType() gtype.Type {
	return f.def.DeclaredType()
}

// Tag returns field struct tag
func (f *Field) Tag() reflect.StructTag {
	return f.def.Tag()
}

// Transient returns true if field is excluded by its tag
func (f *Field) Transient() bool {
	return f.def.Transient()
}

// Value reads the field from supplied parent value
func (f *Field) Value(parent interface{}) interface{} {
	ptr := asStructPtr(parent)
	if ptr == nil {
		return nil
	}
	return f.def.Value(ptr)
}

func asStructPtr(value interface{}) unsafe.Pointer {
	if value == nil {
		return nil
	}
	rType := reflect.TypeOf(value)
	if rType.Kind() != reflect.Ptr {
		rPointer := reflect.New(rType)
		rPointer.Elem().Set(reflect.ValueOf(value))
		value = rPointer.Interface()
	}
	return xunsafe.AsPointer(value)
}
