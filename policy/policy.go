// Package policy provides exclusion policy implementations consumed by the
// navigator: a pass-through default, a disjunction composite, a tag driven
// transient policy and name based rules loadable from YAML.
package policy

import (
	"github.com/viant/structnav"
	"github.com/viant/structnav/gtype"
)

// None skips nothing
type None struct{}

func (n None) ShouldSkipType(t gtype.Type) bool {
	return false
}

func (n None) ShouldSkipField(field *structnav.Field) bool {
	return false
}

// Composite skips a class or field when any member policy skips it
type Composite []structnav.ExclusionPolicy

func (c Composite) ShouldSkipType(t gtype.Type) bool {
	for _, item := range c {
		if item.ShouldSkipType(t) {
			return true
		}
	}
	return false
}

func (c Composite) ShouldSkipField(field *structnav.Field) bool {
	for _, item := range c {
		if item.ShouldSkipField(field) {
			return true
		}
	}
	return false
}

// Transient skips fields marked transient with the nav tag
type Transient struct{}

func (t Transient) ShouldSkipType(gtype.Type) bool {
	return false
}

func (t Transient) ShouldSkipField(field *structnav.Field) bool {
	return field.Transient()
}
