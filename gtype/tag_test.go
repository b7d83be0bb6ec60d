package gtype

import (
	"github.com/stretchr/testify/assert"
	"reflect"
	"testing"
)

func Test_parseNavTag(t *testing.T) {

	var testCases = []struct {
		description string
		tag         reflect.StructTag
		expect      *navTag
	}{
		{
			description: "no nav tag",
			tag:         `json:"name"`,
			expect:      nil,
		},
		{
			description: "transient",
			tag:         `nav:"-"`,
			expect:      &navTag{Transient: true},
		},
		{
			description: "name override with type",
			tag:         `nav:"label,type=Pair<K,V>"`,
			expect:      &navTag{Name: "label", Type: "Pair<K,V>"},
		},
		{
			description: "type with transient option",
			tag:         `nav:"type=T,transient"`,
			expect:      &navTag{Type: "T", Transient: true},
		},
		{
			description: "explicit name key",
			tag:         `nav:"name=alias"`,
			expect:      &navTag{Name: "alias"},
		},
		{
			description: "array type expression",
			tag:         `nav:"type=[]T"`,
			expect:      &navTag{Type: "[]T"},
		},
	}

	for _, testCase := range testCases {
		actual := parseNavTag(testCase.tag)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}
