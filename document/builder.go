package document

import (
	"fmt"
	"github.com/viant/structnav"
	"github.com/viant/structnav/gtype"
	"github.com/viant/xunsafe"
	"reflect"
)

// Builder is a visitor assembling a document from a traversal; object fields
// recurse through the navigator, nil valued fields are omitted
type Builder struct {
	structnav.NopVisitor
	navigator *structnav.Navigator
	doc       D
	isObject  bool
	leaf      interface{}
	hasLeaf   bool
}

// NewBuilder creates a document builder backed by supplied navigator
func NewBuilder(navigator *structnav.Navigator) *Builder {
	return &Builder{navigator: navigator}
}

// Document returns the assembled document: a D for an object node, an A for an
// array node, the value itself for a primitive node
func (b *Builder) Document() interface{} {
	if b.hasLeaf {
		return b.leaf
	}
	if b.isObject {
		return b.doc
	}
	return nil
}

func (b *Builder) StartObject(value interface{}) error {
	b.isObject = true
	b.doc = D{}
	return nil
}

func (b *Builder) VisitPrimitive(value interface{}) error {
	b.leaf, b.hasLeaf = value, true
	return nil
}

func (b *Builder) VisitArray(value interface{}, componentType gtype.Type) error {
	items, err := b.array(value, componentType)
	if err != nil {
		return err
	}
	b.leaf, b.hasLeaf = items, true
	return nil
}

func (b *Builder) VisitObjectField(field *structnav.Field, resolved gtype.Type, parent interface{}) error {
	value := field.Value(parent)
	if isNil(value) {
		return nil
	}
	child, err := b.value(value, resolved)
	if err != nil {
		return err
	}
	b.doc = append(b.doc, E{Key: field.ExposedName(), Value: child})
	return nil
}

func (b *Builder) VisitArrayField(field *structnav.Field, componentType gtype.Type, parent interface{}) error {
	value := field.Value(parent)
	if isNil(value) {
		return nil
	}
	items, err := b.array(value, componentType)
	if err != nil {
		return err
	}
	b.doc = append(b.doc, E{Key: field.ExposedName(), Value: items})
	return nil
}

func (b *Builder) value(value interface{}, resolved gtype.Type) (interface{}, error) {
	if isPrimitiveValue(value) {
		return value, nil
	}
	switch resolved.Kind() {
	case gtype.KindPrimitive, gtype.KindOpaque:
		return value, nil
	}
	child := NewBuilder(b.navigator)
	if err := b.navigator.Traverse(structnav.NewTypedRef(value, resolved), child); err != nil {
		return nil, err
	}
	return child.Document(), nil
}

func (b *Builder) array(value interface{}, componentType gtype.Type) (A, error) {
	items := A{}
	rValue := reflect.ValueOf(value)
	if rValue.Kind() == reflect.Ptr {
		rValue = rValue.Elem()
		value = rValue.Interface()
	}
	switch rValue.Kind() {
	case reflect.Slice:
		valuePtr := xunsafe.AsPointer(value)
		xSlice := xunsafe.NewSlice(rValue.Type())
		sliceLen := xSlice.Len(valuePtr)
		for i := 0; i < sliceLen; i++ {
			item, err := b.element(xSlice.ValueAt(valuePtr, i), componentType)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
	case reflect.Array:
		for i := 0; i < rValue.Len(); i++ {
			item, err := b.element(rValue.Index(i).Interface(), componentType)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
	default:
		return nil, fmt.Errorf("expected slice or array, got %T", value)
	}
	return items, nil
}

func (b *Builder) element(item interface{}, componentType gtype.Type) (interface{}, error) {
	if isNil(item) {
		return nil, nil
	}
	return b.value(item, componentType)
}

// Build traverses supplied reference and returns its document form
func Build(navigator *structnav.Navigator, ref *structnav.TypedRef) (interface{}, error) {
	builder := NewBuilder(navigator)
	if err := navigator.Traverse(ref, builder); err != nil {
		return nil, err
	}
	return builder.Document(), nil
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	switch rValue := reflect.ValueOf(value); rValue.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
		return rValue.IsNil()
	}
	return false
}

func isPrimitiveValue(value interface{}) bool {
	switch reflect.TypeOf(value).Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return true
	}
	return false
}
