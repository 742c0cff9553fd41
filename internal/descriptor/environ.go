package descriptor

import "mvdan.cc/sh/v3/expand"

// shellEnviron exposes an Environment to the expander with its kinds
// intact: lists as indexed arrays and empty scalars as set variables.
type shellEnviron struct {
	env *Environment
}

var _ expand.Environ = shellEnviron{}

func (e shellEnviron) Get(name string) expand.Variable {
	v := e.env.Lookup(name)
	switch v.Kind {
	case Scalar:
		return expand.Variable{Kind: expand.String, Str: v.Str}
	case List:
		// Never nil, so "${a[@]}" on an empty list yields no fields.
		return expand.Variable{Kind: expand.Indexed, List: append([]string{}, v.Items...)}
	default:
		return expand.Variable{}
	}
}

func (e shellEnviron) Each(fn func(name string, vr expand.Variable) bool) {
	for _, name := range e.env.Names() {
		if !fn(name, e.Get(name)) {
			return
		}
	}
}
