package gtype

import (
	"fmt"
	"github.com/viant/parsly"
	"reflect"
	"strings"
)

var primitiveTypes = map[string]reflect.Type{
	"string":  reflect.TypeOf(""),
	"bool":    reflect.TypeOf(true),
	"int":     reflect.TypeOf(0),
	"int8":    reflect.TypeOf(int8(0)),
	"int16":   reflect.TypeOf(int16(0)),
	"int32":   reflect.TypeOf(int32(0)),
	"int64":   reflect.TypeOf(int64(0)),
	"uint":    reflect.TypeOf(uint(0)),
	"uint8":   reflect.TypeOf(uint8(0)),
	"uint16":  reflect.TypeOf(uint16(0)),
	"uint32":  reflect.TypeOf(uint32(0)),
	"uint64":  reflect.TypeOf(uint64(0)),
	"byte":    reflect.TypeOf(byte(0)),
	"float32": reflect.TypeOf(float32(0)),
	"float64": reflect.TypeOf(0.0),
}

// parseType parses a type expression i.e. "string", "[]T", "Pair<K,V>", "Box<[]T>";
// identifiers matching params become variables, unknown names become definition
// placeholders resolved on registration
func (s *Schema) parseType(expr string, params []string) (Type, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("type expression was empty")
	}
	if strings.HasPrefix(expr, "[]") {
		component, err := s.parseType(expr[2:], params)
		if err != nil {
			return nil, err
		}
		return &Array{component: component}, nil
	}
	index := strings.IndexByte(expr, '<')
	if index == -1 {
		return s.namedType(expr, params), nil
	}
	name := strings.TrimSpace(expr[:index])
	if name == "" {
		return nil, fmt.Errorf("invalid type expression: %q", expr)
	}
	cursor := parsly.NewCursor("", []byte(expr[index:]), 0)
	match := cursor.MatchAny(argsBlockMatcher)
	if match.Code != argsBlockToken {
		return nil, fmt.Errorf("invalid type arguments in %q", expr)
	}
	block := match.Text(cursor)
	if cursor.Pos < len(cursor.Input) {
		return nil, fmt.Errorf("unexpected trailing input in %q", expr)
	}
	var args []Type
	for _, item := range splitArgs(block[1 : len(block)-1]) {
		arg, err := s.parseType(item, params)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("missing type arguments in %q", expr)
	}
	return &Parameterized{def: s.definition(name), args: args}, nil
}

func (s *Schema) namedType(name string, params []string) Type {
	if name == "any" || name == "interface{}" {
		return ObjectType
	}
	if rType, ok := primitiveTypes[name]; ok {
		return &Primitive{rType: rType}
	}
	for _, param := range params {
		if param == name {
			return &Variable{name: name}
		}
	}
	return &Class{def: s.definition(name)}
}

// splitArgs splits type arguments on top level comas only
func splitArgs(block string) []string {
	var args []string
	depth, begin := 0, 0
	for i := 0; i < len(block); i++ {
		switch block[i] {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, block[begin:i])
				begin = i + 1
			}
		}
	}
	return append(args, block[begin:])
}
