package override

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/hyprcustom/internal/descriptor"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

var stringList = cty.List(cty.String)

// newEvalContext exposes the current descriptor as the `pkg` object and the
// patch as the `patch` object.
func newEvalContext(env *descriptor.Environment, patchName string) *hcl.EvalContext {
	attrs := make(map[string]cty.Value)
	for _, name := range env.Names() {
		attrs[name] = toCty(env.Lookup(name))
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"pkg": cty.ObjectVal(attrs),
			"patch": cty.ObjectVal(map[string]cty.Value{
				"name": cty.StringVal(patchName),
			}),
		},
	}
}

func toCty(v descriptor.Value) cty.Value {
	if v.Kind == descriptor.Scalar {
		return cty.StringVal(v.Str)
	}
	if len(v.Items) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	val, err := gocty.ToCtyValue(v.Items, stringList)
	if err != nil {
		// []string always fits list(string).
		panic(err)
	}
	return val
}

// toValue maps an expression result onto a descriptor value: primitives
// become scalars and sequences become lists.
func toValue(val cty.Value) (descriptor.Value, error) {
	if err := checkKnown(val); err != nil {
		return descriptor.Value{}, err
	}
	ty := val.Type()
	switch {
	case ty.IsPrimitiveType():
		str, err := convert.Convert(val, cty.String)
		if err != nil {
			return descriptor.Value{}, err
		}
		return descriptor.ScalarValue(str.AsString()), nil
	case ty.IsListType(), ty.IsTupleType(), ty.IsSetType():
		items, err := toItems(val)
		if err != nil {
			return descriptor.Value{}, err
		}
		return descriptor.ListValue(items...), nil
	default:
		return descriptor.Value{}, fmt.Errorf("cannot use a value of type %s", ty.FriendlyName())
	}
}

// toItems converts a sequence, or a single primitive, into list items.
func toItems(val cty.Value) ([]string, error) {
	if err := checkKnown(val); err != nil {
		return nil, err
	}
	if val.Type().IsPrimitiveType() {
		v, err := toValue(val)
		if err != nil {
			return nil, err
		}
		return []string{v.Str}, nil
	}

	list, err := convert.Convert(val, stringList)
	if err != nil {
		return nil, fmt.Errorf("cannot convert %s to a list of strings: %w", val.Type().FriendlyName(), err)
	}
	var items []string
	if err := gocty.FromCtyValue(list, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func checkKnown(val cty.Value) error {
	if val.IsNull() {
		return errors.New("value is null")
	}
	if !val.IsWhollyKnown() {
		return errors.New("value is not known")
	}
	return nil
}
