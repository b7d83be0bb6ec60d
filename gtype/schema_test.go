package gtype

import (
	"github.com/stretchr/testify/assert"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
	"reflect"
	"testing"
	"time"
)

func TestSchema_Register(t *testing.T) {

	t.Run("fields and supertype from embedding", func(t *testing.T) {
		type Base struct {
			ID int
		}
		type Derived struct {
			Base
			Name   string
			Scores []float64
		}
		schema := NewSchema()
		def, err := schema.Register(Derived{})
		if !assert.Nil(t, err) {
			return
		}
		assert.EqualValues(t, "Derived", def.Name())
		assert.NotNil(t, def.SuperDefinition())
		assert.EqualValues(t, "Base", def.SuperDefinition().Name())

		var names []string
		for _, field := range def.Fields() {
			names = append(names, field.Name())
		}
		assert.EqualValues(t, []string{"Name", "Scores"}, names)
		assert.EqualValues(t, KindArray, def.Fields()[1].DeclaredType().Kind())

		base := schema.Definition("Base")
		assert.True(t, base.IsAncestorOf(def))
		assert.False(t, def.IsAncestorOf(base))
	})

	t.Run("case format output names", func(t *testing.T) {
		type Entity struct {
			UserName string
			City     string
			Label    string `nav:"label_override"`
		}
		schema := NewSchema(WithCaseFormat(text.CaseFormatLowerCamel))
		def, err := schema.Register(Entity{})
		if !assert.Nil(t, err) {
			return
		}
		assert.EqualValues(t, "userName", def.Fields()[0].ExposedName())
		assert.EqualValues(t, "city", def.Fields()[1].ExposedName())
		assert.EqualValues(t, "label_override", def.Fields()[2].ExposedName())
	})

	t.Run("transient tag", func(t *testing.T) {
		type Entity struct {
			Name   string
			Secret string `nav:"-"`
		}
		schema := NewSchema()
		def, err := schema.Register(Entity{})
		if !assert.Nil(t, err) {
			return
		}
		assert.False(t, def.Fields()[0].Transient())
		assert.True(t, def.Fields()[1].Transient())
	})

	t.Run("forward reference by name", func(t *testing.T) {
		type Tree struct {
			Root interface{} `nav:"type=Node"`
		}
		type Node struct {
			Label string
		}
		schema := NewSchema()
		treeDef, err := schema.Register(Tree{})
		if !assert.Nil(t, err) {
			return
		}
		placeholder := RawDefinition(treeDef.Fields()[0].DeclaredType())
		assert.False(t, placeholder.IsDefined())

		nodeDef, err := schema.Register(Node{})
		if !assert.Nil(t, err) {
			return
		}
		assert.True(t, placeholder == nodeDef)
		assert.True(t, placeholder.IsDefined())
	})

	t.Run("registration is idempotent", func(t *testing.T) {
		type Entity struct {
			Name string
		}
		schema := NewSchema()
		def, err := schema.Register(Entity{})
		assert.Nil(t, err)
		again, err := schema.Register(&Entity{})
		assert.Nil(t, err)
		assert.True(t, def == again)
	})

	t.Run("name conflict", func(t *testing.T) {
		type Entity struct {
			Name string
		}
		type Another struct {
			ID int
		}
		schema := NewSchema()
		_, err := schema.Register(Entity{})
		assert.Nil(t, err)
		_, err = schema.Register(Another{}, WithName("Entity"))
		assert.NotNil(t, err)
	})

	t.Run("anonymous struct requires a name", func(t *testing.T) {
		schema := NewSchema()
		_, err := schema.Register(struct{ Name string }{})
		assert.NotNil(t, err)
		def, err := schema.Register(struct{ ID int }{}, WithName("Inline"))
		assert.Nil(t, err)
		assert.EqualValues(t, "Inline", def.Name())
	})

	t.Run("non struct value", func(t *testing.T) {
		schema := NewSchema()
		_, err := schema.Register(1)
		assert.NotNil(t, err)
	})

	t.Run("struct fields registered transitively", func(t *testing.T) {
		type Address struct {
			City string
		}
		type User struct {
			Address *Address
		}
		schema := NewSchema()
		_, err := schema.Register(User{})
		assert.Nil(t, err)
		assert.NotNil(t, schema.DefinitionOf(reflect.TypeOf(Address{})))
	})
}

func TestSchema_TypeOf(t *testing.T) {
	type Entity struct {
		Name string
	}
	schema := NewSchema()
	assert.EqualValues(t, KindPrimitive, schema.TypeOf("abc").Kind())
	assert.EqualValues(t, KindArray, schema.TypeOf([]int{1}).Kind())
	assert.EqualValues(t, KindObject, schema.TypeOf(nil).Kind())
	assert.EqualValues(t, KindOpaque, schema.TypeOf(time.Now()).Kind())

	entityType := schema.TypeOf(&Entity{})
	assert.EqualValues(t, KindClass, entityType.Kind())
	assert.EqualValues(t, "Entity", RawDefinition(entityType).Name())
}

func TestFieldDef_Value(t *testing.T) {
	type Entity struct {
		Name string
		Age  int
	}
	schema := NewSchema()
	def, err := schema.Register(Entity{})
	if !assert.Nil(t, err) {
		return
	}
	entity := &Entity{Name: "abc", Age: 30}
	ptr := xunsafe.AsPointer(entity)
	assert.EqualValues(t, "abc", def.Fields()[0].Value(ptr))
	assert.EqualValues(t, 30, def.Fields()[1].Value(ptr))
}
