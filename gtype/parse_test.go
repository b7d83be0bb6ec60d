package gtype

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestSchema_parseType(t *testing.T) {

	var testCases = []struct {
		description string
		expr        string
		params      []string
		expect      string
		expectKind  Kind
		expectError bool
	}{
		{
			description: "primitive",
			expr:        "string",
			expect:      "string",
			expectKind:  KindPrimitive,
		},
		{
			description: "array of primitive",
			expr:        "[]int",
			expect:      "[]int",
			expectKind:  KindArray,
		},
		{
			description: "type variable",
			expr:        "T",
			params:      []string{"T"},
			expect:      "T",
			expectKind:  KindVariable,
		},
		{
			description: "non parameter identifier",
			expr:        "T",
			expect:      "T",
			expectKind:  KindClass,
		},
		{
			description: "parameterized",
			expr:        "Box<string>",
			expect:      "Box<string>",
			expectKind:  KindParameterized,
		},
		{
			description: "nested arguments",
			expr:        "Pair<Box<K>,V>",
			params:      []string{"K", "V"},
			expect:      "Pair<Box<K>,V>",
			expectKind:  KindParameterized,
		},
		{
			description: "array of parameterized",
			expr:        "[]Box<T>",
			params:      []string{"T"},
			expect:      "[]Box<T>",
			expectKind:  KindArray,
		},
		{
			description: "top type",
			expr:        "any",
			expect:      "any",
			expectKind:  KindObject,
		},
		{
			description: "empty expression",
			expr:        "",
			expectError: true,
		},
		{
			description: "unclosed arguments",
			expr:        "Box<string",
			expectError: true,
		},
		{
			description: "missing name",
			expr:        "<string>",
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		schema := NewSchema()
		actual, err := schema.parseType(testCase.expr, testCase.params)
		if testCase.expectError {
			assert.NotNilf(t, err, testCase.description)
			continue
		}
		if !assert.Nilf(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, actual.String(), testCase.description)
		assert.EqualValues(t, testCase.expectKind, actual.Kind(), testCase.description)
	}
}

func Test_splitArgs(t *testing.T) {
	assert.EqualValues(t, []string{"K", "V"}, splitArgs("K,V"))
	assert.EqualValues(t, []string{"Box<K,V>", "string"}, splitArgs("Box<K,V>,string"))
	assert.EqualValues(t, []string{"T"}, splitArgs("T"))
}
