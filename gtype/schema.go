package gtype

import (
	"fmt"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
	"reflect"
	"sync"
	"time"
	"unsafe"
)

type (
	//Schema represents a class metadata registry
	Schema struct {
		caseFormat text.CaseFormat
		defs       map[string]*Definition
		byType     map[reflect.Type]*Definition
		mux        sync.RWMutex
	}

	//Definition represents a single class: optional backing struct type,
	//type parameters, supertype instantiation and declared fields
	Definition struct {
		name      string
		rType     reflect.Type
		params    []string
		super     Type
		synthetic bool
		fields    []*FieldDef
	}

	//FieldDef represents a declared field of a definition
	FieldDef struct {
		owner     *Definition
		name      string
		exposed   string
		declared  Type
		tag       reflect.StructTag
		transient bool
		xField    *xunsafe.Field
	}
)

var timeType = reflect.TypeOf(time.Time{})

func isTimeType(candidate reflect.Type) bool {
	return deref(candidate) == timeType
}

func deref(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

func ensureStruct(t reflect.Type) reflect.Type {
	switch t.Kind() {
	case reflect.Struct:
		return t
	case reflect.Ptr:
		return ensureStruct(t.Elem())
	}
	return nil
}

// NewSchema creates a schema
func NewSchema(opts ...SchemaOption) *Schema {
	ret := &Schema{
		defs:   make(map[string]*Definition),
		byType: make(map[reflect.Type]*Definition),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Register registers a class definition for supplied struct value; an embedded
// struct declared as the first field becomes the supertype, struct typed fields
// are registered transitively; registration is idempotent per backing type
func (s *Schema) Register(value interface{}, opts ...ClassOption) (*Definition, error) {
	rType, err := structType(value)
	if err != nil {
		return nil, err
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.register(rType, opts)
}

// Definition returns a definition matched by name or nil
func (s *Schema) Definition(name string) *Definition {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.defs[name]
}

// DefinitionOf returns a definition matched by backing type or nil
func (s *Schema) DefinitionOf(rType reflect.Type) *Definition {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.byType[deref(rType)]
}

// Type parses a type expression i.e. "Box<string>", "[]int" against the schema
func (s *Schema) Type(expr string) (Type, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.parseType(expr, nil)
}

// TypeOf returns the type of supplied runtime value; struct values are
// registered on demand
func (s *Schema) TypeOf(value interface{}) Type {
	if value == nil {
		return ObjectType
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.typeFor(reflect.TypeOf(value))
}

func (s *Schema) register(rType reflect.Type, opts []ClassOption) (*Definition, error) {
	if def, ok := s.byType[rType]; ok {
		return def, nil
	}
	def := &Definition{rType: rType}
	for _, opt := range opts {
		opt(def)
	}
	if def.name == "" {
		def.name = rType.Name()
	}
	if def.name == "" {
		return nil, fmt.Errorf("anonymous struct %s requires a name", rType.String())
	}
	if existing, ok := s.defs[def.name]; ok {
		if existing.rType != nil {
			return nil, fmt.Errorf("class %v was already registered with %s", def.name, existing.rType.String())
		}
		existing.rType = rType
		existing.params = def.params
		existing.synthetic = def.synthetic
		def = existing
	} else {
		s.defs[def.name] = def
	}
	s.byType[rType] = def
	if err := s.buildFields(def); err != nil {
		return nil, err
	}
	return def, nil
}

func (s *Schema) buildFields(def *Definition) error {
	rType := def.rType
	xStruct := xunsafe.NewStruct(rType)
	for i := 0; i < rType.NumField(); i++ {
		field := rType.Field(i)
		if field.PkgPath != "" {
			continue
		}
		tag := parseNavTag(field.Tag)
		if i == 0 && field.Anonymous && field.Type.Kind() == reflect.Struct && !isTimeType(field.Type) {
			if err := s.applySuper(def, field, tag); err != nil {
				return err
			}
			continue
		}
		fieldDef := &FieldDef{owner: def, name: field.Name, tag: field.Tag, xField: &xStruct.Fields[i]}
		if tag != nil && tag.Transient {
			fieldDef.transient = true
		}
		if tag != nil && tag.Type != "" {
			declared, err := s.parseType(tag.Type, def.params)
			if err != nil {
				return fmt.Errorf("invalid type of field %v.%v: %w", def.name, field.Name, err)
			}
			fieldDef.declared = declared
		} else {
			fieldDef.declared = s.typeFor(field.Type)
		}
		fieldDef.exposed = s.exposedName(field.Name)
		if tag != nil && tag.Name != "" {
			fieldDef.exposed = tag.Name
		}
		def.fields = append(def.fields, fieldDef)
	}
	return nil
}

func (s *Schema) applySuper(def *Definition, field reflect.StructField, tag *navTag) error {
	superDef, err := s.register(ensureStruct(field.Type), nil)
	if err != nil {
		return err
	}
	if tag == nil || tag.Type == "" {
		def.super = &Class{def: superDef}
		return nil
	}
	parsed, err := s.parseType(tag.Type, def.params)
	if err != nil {
		return fmt.Errorf("invalid supertype of %v: %w", def.name, err)
	}
	if RawDefinition(parsed) != superDef {
		return fmt.Errorf("supertype %v does not match embedded %v", tag.Type, superDef.name)
	}
	def.super = parsed
	return nil
}

func (s *Schema) typeFor(rType reflect.Type) Type {
	switch rType.Kind() {
	case reflect.Ptr:
		return s.typeFor(rType.Elem())
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return &Primitive{rType: rType}
	case reflect.Slice, reflect.Array:
		return &Array{component: s.typeFor(rType.Elem())}
	case reflect.Interface:
		if rType.NumMethod() == 0 {
			return ObjectType
		}
	case reflect.Struct:
		if isTimeType(rType) {
			return &Opaque{rType: rType}
		}
		def, err := s.register(rType, nil)
		if err != nil {
			return &Opaque{rType: rType}
		}
		return &Class{def: def}
	}
	return &Opaque{rType: rType}
}

// definition returns an existing definition or creates a placeholder adopted
// once the class is registered
func (s *Schema) definition(name string) *Definition {
	def, ok := s.defs[name]
	if !ok {
		def = &Definition{name: name}
		s.defs[name] = def
	}
	return def
}

func (s *Schema) exposedName(name string) string {
	if s.caseFormat == "" {
		return name
	}
	src := text.DetectCaseFormat(name)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(name, s.caseFormat)
}

func structType(value interface{}) (reflect.Type, error) {
	rType := reflect.TypeOf(value)
	if rType == nil {
		return nil, fmt.Errorf("value was nil")
	}
	if rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	if rType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}
	return rType, nil
}

// Name returns definition name
func (d *Definition) Name() string {
	return d.name
}

// ReflectType returns definition backing struct type or nil for a placeholder
func (d *Definition) ReflectType() reflect.Type {
	return d.rType
}

// Params returns definition type parameter names
func (d *Definition) Params() []string {
	return d.params
}

// Super returns supertype instantiation or nil
func (d *Definition) Super() Type {
	return d.super
}

// SuperDefinition returns supertype definition or nil
func (d *Definition) SuperDefinition() *Definition {
	return RawDefinition(d.super)
}

// Synthetic returns true if definition is marked synthetic
func (d *Definition) Synthetic() bool {
	return d.synthetic
}

// IsDefined returns true if definition has a backing struct type
func (d *Definition) IsDefined() bool {
	return d.rType != nil
}

// Fields returns declared fields in declaration order
func (d *Definition) Fields() []*FieldDef {
	return d.fields
}

// IsAncestorOf returns true if d is candidate or one of its supertypes
func (d *Definition) IsAncestorOf(candidate *Definition) bool {
	for cur := candidate; cur != nil; cur = cur.SuperDefinition() {
		if cur == d {
			return true
		}
	}
	return false
}

// Name returns field name
func (f *FieldDef) Name() string {
	return f.name
}

// ExposedName returns field output name; tag override takes precedence over
// the schema case format
func (f *FieldDef) ExposedName() string {
	return f.exposed
}

// DeclaredType returns field declared type prior to resolution
func (f *FieldDef) DeclaredType() Type {
	return f.declared
}

// Tag returns field struct tag
func (f *FieldDef) Tag() reflect.StructTag {
	return f.tag
}

// Owner returns field declaring definition
func (f *FieldDef) Owner() *Definition {
	return f.owner
}

// Transient returns true if field is excluded by its tag
func (f *FieldDef) Transient() bool {
	return f.transient
}

// Value reads the field from supplied struct pointer
func (f *FieldDef) Value(ptr unsafe.Pointer) interface{} {
	if f.xField == nil || ptr == nil {
		return nil
	}
	return f.xField.Value(ptr)
}
