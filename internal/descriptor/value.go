package descriptor

import "slices"

// Kind tags the shape of a descriptor variable.
type Kind int

const (
	Undefined Kind = iota
	Scalar
	List
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case List:
		return "list"
	default:
		return "undefined"
	}
}

// Value is a variable as seen after evaluation. Str is meaningful for
// Scalar values and Items for List values.
type Value struct {
	Kind  Kind
	Str   string
	Items []string
}

// ScalarValue returns a Scalar holding s.
func ScalarValue(s string) Value {
	return Value{Kind: Scalar, Str: s}
}

// ListValue returns a List holding a copy of items. A nil or empty argument
// still produces a defined, empty List.
func ListValue(items ...string) Value {
	return Value{Kind: List, Items: append([]string{}, items...)}
}

// IsDefined reports whether the value was ever assigned.
func (v Value) IsDefined() bool {
	return v.Kind != Undefined
}

// Environment holds the variables and functions declared by a descriptor.
type Environment struct {
	vars  map[string]Value
	order []string
	funcs map[string]*Function
}

// NewEnvironment returns an empty Environment.
func NewEnvironment() *Environment {
	return &Environment{
		vars:  make(map[string]Value),
		funcs: make(map[string]*Function),
	}
}

// Lookup returns the value bound to name, or an Undefined value.
func (e *Environment) Lookup(name string) Value {
	v, ok := e.vars[name]
	if !ok {
		return Value{}
	}
	v.Items = slices.Clone(v.Items)
	return v
}

// Set binds name to v, replacing any previous value.
func (e *Environment) Set(name string, v Value) {
	if v.Kind == Undefined {
		e.Unset(name)
		return
	}
	if _, ok := e.vars[name]; !ok {
		e.order = append(e.order, name)
	}
	if v.Kind == List {
		v.Items = append([]string{}, v.Items...)
	}
	e.vars[name] = v
}

// Append adds items to the list bound to name. An undefined name becomes a
// new list and a scalar becomes a list whose first element is the scalar.
func (e *Environment) Append(name string, items ...string) {
	cur := e.Lookup(name)
	var next []string
	switch cur.Kind {
	case Scalar:
		next = append([]string{cur.Str}, items...)
	case List:
		next = append(cur.Items, items...)
	default:
		next = items
	}
	e.Set(name, ListValue(next...))
}

// Unset removes name.
func (e *Environment) Unset(name string) {
	if _, ok := e.vars[name]; !ok {
		return
	}
	delete(e.vars, name)
	e.order = slices.DeleteFunc(e.order, func(n string) bool { return n == name })
}

// Names returns the defined variable names in declaration order.
func (e *Environment) Names() []string {
	return slices.Clone(e.order)
}

// Function returns the function declared under name.
func (e *Environment) Function(name string) (*Function, bool) {
	fn, ok := e.funcs[name]
	return fn, ok
}

// DefineFunction declares fn, replacing an earlier function of the same name.
func (e *Environment) DefineFunction(fn *Function) {
	e.funcs[fn.Name] = fn
}
