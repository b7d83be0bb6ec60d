package structnav

import (
	"fmt"
	"github.com/viant/structnav/gtype"
)

// TypedRef pairs a runtime value with its static type descriptor; the
// descriptor is always at least as general as the value runtime type, the
// value may be absent until a visitor supplies a target
type TypedRef struct {
	value interface{}
	rType gtype.Type
}

// NewTypedRef creates a typed reference; a nil type defaults to the top type
func NewTypedRef(value interface{}, rType gtype.Type) *TypedRef {
	if rType == nil {
		rType = gtype.ObjectType
	}
	return &TypedRef{value: value, rType: rType}
}

// Value returns referenced value
func (r *TypedRef) Value() interface{} {
	return r.value
}

// Type returns reference static type
func (r *TypedRef) Type() gtype.Type {
	return r.rType
}

// SetValue sets referenced value once supplied by a visitor
func (r *TypedRef) SetValue(value interface{}) {
	r.value = value
}

// Narrow returns a reference whose type descriptor is refined to the value
// runtime class; generic arguments already carried by the descriptor are
// preserved, an exact descriptor is returned unchanged. Fails only when the
// runtime value is provably incompatible with the declared raw class.
func (r *TypedRef) Narrow(schema *gtype.Schema) (*TypedRef, error) {
	if r.value == nil {
		return r, nil
	}
	switch r.rType.Kind() {
	case gtype.KindParameterized, gtype.KindPrimitive, gtype.KindArray, gtype.KindOpaque:
		return r, nil
	}
	runtime := schema.TypeOf(r.value)
	if r.rType.Kind() == gtype.KindClass {
		declared := gtype.RawDefinition(r.rType)
		runtimeDef := gtype.RawDefinition(runtime)
		if runtimeDef == nil {
			if declared.IsDefined() {
				return nil, fmt.Errorf("type mismatch: %T is not a %v", r.value, declared.Name())
			}
			return r, nil
		}
		if runtimeDef == declared {
			return r, nil
		}
		if !declared.IsAncestorOf(runtimeDef) {
			return nil, fmt.Errorf("type mismatch: %v is not a %v", runtimeDef.Name(), declared.Name())
		}
	}
	return &TypedRef{value: r.value, rType: runtime}, nil
}
