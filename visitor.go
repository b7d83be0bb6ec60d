package structnav

import "github.com/viant/structnav/gtype"

// Visitor reacts to nodes and fields encountered during traversal; the
// navigator decides what to visit and in what order, the visitor decides what
// to do with each node. Embed NopVisitor for default no-op hooks.
type Visitor interface {
	//Start is called when the navigator enters a node
	Start(node *TypedRef) error

	//End is called exactly once per successful Start, on every exit path
	End(node *TypedRef) error

	//StartObject is called before the fields of an object node are visited
	StartObject(value interface{}) error

	//VisitArray is called for an array node with its component type
	VisitArray(value interface{}, componentType gtype.Type) error

	//VisitPrimitive is called for an untyped node holding a primitive or text value
	VisitPrimitive(value interface{}) error

	//VisitObjectField is called for a non array field with its resolved type
	VisitObjectField(field *Field, resolved gtype.Type, parent interface{}) error

	//VisitArrayField is called for an array field with its resolved component type
	VisitArrayField(field *Field, componentType gtype.Type, parent interface{}) error

	//VisitWithHandler returns true if a custom handler consumed the node;
	//structural traversal of a consumed node is skipped entirely
	VisitWithHandler(node *TypedRef) (bool, error)

	//VisitFieldWithHandler returns true if a custom handler consumed the field
	VisitFieldWithHandler(field *Field, resolved gtype.Type, parent interface{}) (bool, error)

	//Target returns a visitor supplied value for a node without one
	Target() interface{}
}

// NopVisitor provides no-op defaults for all Visitor hooks
type NopVisitor struct{}

func (v NopVisitor) Start(node *TypedRef) error {
	return nil
}

func (v NopVisitor) End(node *TypedRef) error {
	return nil
}

func (v NopVisitor) StartObject(value interface{}) error {
	return nil
}

func (v NopVisitor) VisitArray(value interface{}, componentType gtype.Type) error {
	return nil
}

func (v NopVisitor) VisitPrimitive(value interface{}) error {
	return nil
}

func (v NopVisitor) VisitObjectField(field *Field, resolved gtype.Type, parent interface{}) error {
	return nil
}

func (v NopVisitor) VisitArrayField(field *Field, componentType gtype.Type, parent interface{}) error {
	return nil
}

func (v NopVisitor) VisitWithHandler(node *TypedRef) (bool, error) {
	return false, nil
}

func (v NopVisitor) VisitFieldWithHandler(field *Field, resolved gtype.Type, parent interface{}) (bool, error) {
	return false, nil
}

func (v NopVisitor) Target() interface{} {
	return nil
}
