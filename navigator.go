package structnav

import (
	"fmt"
	"github.com/viant/structnav/gtype"
	"reflect"
)

// Navigator applies a visitor to a typed reference and all of its fields
// recursively, filtering classes and fields through an exclusion policy
type Navigator struct {
	schema *gtype.Schema
	policy ExclusionPolicy
}

// New creates a navigator; a nil policy is rejected
func New(schema *gtype.Schema, policy ExclusionPolicy) (*Navigator, error) {
	if schema == nil {
		return nil, fmt.Errorf("schema was nil")
	}
	if policy == nil {
		return nil, fmt.Errorf("exclusion policy was nil")
	}
	return &Navigator{schema: schema, policy: policy}, nil
}

// Schema returns navigator schema
func (n *Navigator) Schema() *gtype.Schema {
	return n.schema
}

// Traverse navigates all the fields of the referenced value; a reference
// without a value and without a visitor supplied target is not visited
func (n *Navigator) Traverse(ref *TypedRef, visitor Visitor) (err error) {
	if ref == nil {
		return nil
	}
	if n.policy.ShouldSkipType(gtype.RawType(ref.Type())) {
		return nil
	}
	handled, err := visitor.VisitWithHandler(ref)
	if err != nil || handled {
		return err
	}
	value := ref.Value()
	if value == nil {
		if value = visitor.Target(); value == nil {
			return nil
		}
		ref.SetValue(value)
	}
	if err = visitor.Start(ref); err != nil {
		return err
	}
	defer func() {
		endErr := visitor.End(ref)
		if err == nil {
			err = endErr
		}
	}()
	switch {
	case gtype.IsArray(ref.Type()):
		err = visitor.VisitArray(value, gtype.ComponentType(ref.Type()))
	case isUntypedPrimitive(ref.Type(), value):
		if err = visitor.VisitPrimitive(value); err == nil {
			visitor.Target()
		}
	default:
		if err = visitor.StartObject(value); err != nil {
			return err
		}
		var narrowed *TypedRef
		if narrowed, err = ref.Narrow(n.schema); err != nil {
			return err
		}
		for def := gtype.RawDefinition(narrowed.Type()); def != nil; def = def.SuperDefinition() {
			if def.Synthetic() {
				continue
			}
			if err = n.visitFields(value, def, ref, visitor); err != nil {
				return err
			}
		}
	}
	return err
}

func (n *Navigator) visitFields(parent interface{}, def *gtype.Definition, ref *TypedRef, visitor Visitor) error {
	for _, fieldDef := range def.Fields() {
		field := NewField(def, fieldDef)
		if n.policy.ShouldSkipField(field) || n.policy.ShouldSkipType(gtype.RawType(fieldDef.DeclaredType())) {
			continue
		}
		resolved := n.schema.ResolveFieldType(ref.Type(), fieldDef)
		handled, err := visitor.VisitFieldWithHandler(field, resolved, parent)
		if err != nil {
			return err
		}
		if handled {
			continue
		}
		if gtype.IsArray(resolved) {
			err = visitor.VisitArrayField(field, gtype.ComponentType(resolved), parent)
		} else {
			err = visitor.VisitObjectField(field, resolved, parent)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// isUntypedPrimitive reports whether an untyped slot holds a primitive or text
// value. The carve-out exists only to support ambiguous untyped slots during
// deserialization; do not broaden it.
func isUntypedPrimitive(t gtype.Type, value interface{}) bool {
	if t.Kind() != gtype.KindObject {
		return false
	}
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
