package gtype

import "github.com/viant/tagly/format/text"

//SchemaOption represents schema option
type SchemaOption func(s *Schema)

//ClassOption represents class registration option
type ClassOption func(d *Definition)

// WithCaseFormat returns schema option with field output name case format
func WithCaseFormat(caseFormat text.CaseFormat) SchemaOption {
	return func(s *Schema) {
		s.caseFormat = caseFormat
	}
}

// WithName returns class option overriding the Go type name
func WithName(name string) ClassOption {
	return func(d *Definition) {
		d.name = name
	}
}

// WithParams returns class option with type parameter names
func WithParams(params ...string) ClassOption {
	return func(d *Definition) {
		d.params = params
	}
}

// WithSynthetic returns class option marking a generated class; the navigator
// skips synthetic classes on the hierarchy walk
func WithSynthetic() ClassOption {
	return func(d *Definition) {
		d.synthetic = true
	}
}
