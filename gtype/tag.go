package gtype

import (
	"reflect"
	"strings"
)

// TagName is the struct tag consulted for field metadata
const TagName = "nav"

type navTag struct {
	Name      string
	Type      string
	Transient bool
}

// parseNavTag parses a nav tag literal i.e. nav:"-", nav:"label,type=Pair<K,V>";
// the first bare option is a name override
func parseNavTag(tag reflect.StructTag) *navTag {
	literal, ok := tag.Lookup(TagName)
	if !ok {
		return nil
	}
	ret := &navTag{}
	if literal == "-" {
		ret.Transient = true
		return ret
	}
	for i, option := range splitOptions(literal) {
		option = strings.TrimSpace(option)
		if option == "" {
			continue
		}
		index := strings.IndexByte(option, '=')
		if index == -1 {
			switch {
			case option == "-" || option == "transient":
				ret.Transient = true
			case i == 0:
				ret.Name = option
			}
			continue
		}
		key, value := option[:index], option[index+1:]
		switch key {
		case "name":
			ret.Name = value
		case "type":
			ret.Type = value
		}
	}
	return ret
}

// splitOptions splits tag options on comas outside type argument blocks
func splitOptions(literal string) []string {
	var options []string
	depth, begin := 0, 0
	for i := 0; i < len(literal); i++ {
		switch literal[i] {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				options = append(options, literal[begin:i])
				begin = i + 1
			}
		}
	}
	return append(options, literal[begin:])
}
