package structnav

import "github.com/viant/structnav/gtype"

// ExclusionPolicy filters classes and fields out of traversal; both predicates
// are pure, a skipped class or field receives no visitor interaction at all
type ExclusionPolicy interface {
	//ShouldSkipType returns true to skip a class entirely; invoked with the raw type
	ShouldSkipType(t gtype.Type) bool
	//ShouldSkipField returns true to skip a field
	ShouldSkipField(field *Field) bool
}
