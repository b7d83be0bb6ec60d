package policy

import (
	"fmt"
	"github.com/viant/structnav"
	"github.com/viant/structnav/gtype"
	"gopkg.in/yaml.v3"
)

// Rules skips classes by name and fields by "Class.Field" pair
type Rules struct {
	Classes []string `yaml:"classes"`
	Fields  []string `yaml:"fields"`
}

func (r *Rules) ShouldSkipType(t gtype.Type) bool {
	def := gtype.RawDefinition(t)
	if def == nil {
		return false
	}
	return contains(r.Classes, def.Name())
}

func (r *Rules) ShouldSkipField(field *structnav.Field) bool {
	return contains(r.Fields, field.DeclaringType().Name()+"."+field.Name())
}

// ParseRules creates rules from YAML data
func ParseRules(data []byte) (*Rules, error) {
	ret := &Rules{}
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to parse exclusion rules: %w", err)
	}
	return ret, nil
}

func contains(items []string, candidate string) bool {
	for _, item := range items {
		if item == candidate {
			return true
		}
	}
	return false
}
