package gtype

// ResolveFieldType substitutes type variables of a field declared type with the
// bindings contributed by the concrete enclosing type. Resolution is skipped
// when the field declaring definition is not an ancestor of the enclosing raw
// definition; unresolvable variables are left in place.
func (s *Schema) ResolveFieldType(enclosing Type, field *FieldDef) Type {
	raw := RawDefinition(enclosing)
	if raw == nil || !field.owner.IsAncestorOf(raw) {
		return field.declared
	}
	return Substitute(field.declared, bindings(enclosing, field.owner))
}

// Substitute replaces type variables with supplied bindings, recursively for
// nested parameterized and array types; already resolved types are returned
// unchanged
func Substitute(t Type, env map[string]Type) Type {
	if len(env) == 0 {
		return t
	}
	switch actual := t.(type) {
	case *Variable:
		if bound, ok := env[actual.name]; ok {
			return bound
		}
	case *Array:
		component := Substitute(actual.component, env)
		if component != actual.component {
			return &Array{component: component}
		}
	case *Parameterized:
		changed := false
		args := make([]Type, len(actual.args))
		for i, arg := range actual.args {
			args[i] = Substitute(arg, env)
			changed = changed || args[i] != arg
		}
		if changed {
			return &Parameterized{def: actual.def, args: args}
		}
	}
	return t
}

// bindings walks the supertype chain from the enclosing type down to the
// target definition composing variable bindings on the way
func bindings(enclosing Type, target *Definition) map[string]Type {
	env := map[string]Type{}
	cur := RawDefinition(enclosing)
	if parameterized, ok := enclosing.(*Parameterized); ok {
		for i, param := range cur.params {
			if i < len(parameterized.args) {
				env[param] = parameterized.args[i]
			}
		}
	}
	for cur != nil && cur != target {
		super := cur.super
		superDef := RawDefinition(super)
		if superDef == nil {
			return nil
		}
		next := map[string]Type{}
		if parameterized, ok := super.(*Parameterized); ok {
			for i, param := range superDef.params {
				if i < len(parameterized.args) {
					next[param] = Substitute(parameterized.args[i], env)
				}
			}
		}
		env = next
		cur = superDef
	}
	return env
}
