package override

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/hyprcustom/internal/ctxlog"
	"github.com/vk/hyprcustom/internal/descriptor"
)

//go:embed overrides.hcl
var builtinSource []byte

// fileRoot is the top-level shape of an overrides file.
type fileRoot struct {
	Overrides []*Rule `hcl:"override,block"`
}

// Rule is a single `override` block.
type Rule struct {
	Name          string         `hcl:"name,label"`
	Set           hcl.Expression `hcl:"set,optional"`
	Append        hcl.Expression `hcl:"append,optional"`
	OnlyIfDefined bool           `hcl:"only_if_defined,optional"`
}

// Error reports an override that could not be applied.
type Error struct {
	Name string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("override of %q failed: %v", e.Name, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Set is an ordered list of override rules.
type Set struct {
	rules []*Rule
}

// Builtin returns the override set compiled into the binary.
func Builtin() (*Set, error) {
	return Load(builtinSource, "overrides.hcl")
}

// Load parses an overrides file.
func Load(src []byte, filename string) (*Set, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse overrides %s: %w", filename, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode overrides %s: %w", filename, diags)
	}

	for _, rule := range root.Overrides {
		hasSet, hasAppend := present(rule.Set), present(rule.Append)
		switch {
		case hasSet && hasAppend:
			return nil, &Error{Name: rule.Name, Err: errors.New("set and append are mutually exclusive")}
		case !hasSet && !hasAppend:
			return nil, &Error{Name: rule.Name, Err: errors.New("one of set or append is required")}
		}
	}
	return &Set{rules: root.Overrides}, nil
}

// Len returns the number of rules.
func (s *Set) Len() int {
	return len(s.rules)
}

// Apply runs every rule against env. patchName is exposed to expressions as
// patch.name.
func (s *Set) Apply(ctx context.Context, env *descriptor.Environment, patchName string) error {
	logger := ctxlog.FromContext(ctx)

	for _, rule := range s.rules {
		if rule.OnlyIfDefined && !env.Lookup(rule.Name).IsDefined() {
			logger.Debug("Skipping override of undefined variable.", "variable", rule.Name)
			continue
		}
		evalCtx := newEvalContext(env, patchName)

		if present(rule.Set) {
			val, diags := rule.Set.Value(evalCtx)
			if diags.HasErrors() {
				return &Error{Name: rule.Name, Err: diags}
			}
			v, err := toValue(val)
			if err != nil {
				return &Error{Name: rule.Name, Err: err}
			}
			env.Set(rule.Name, v)
			logger.Debug("Variable overridden.", "variable", rule.Name, "kind", v.Kind.String())
			continue
		}

		val, diags := rule.Append.Value(evalCtx)
		if diags.HasErrors() {
			return &Error{Name: rule.Name, Err: diags}
		}
		items, err := toItems(val)
		if err != nil {
			return &Error{Name: rule.Name, Err: err}
		}
		env.Append(rule.Name, items...)
		logger.Debug("Variable appended to.", "variable", rule.Name, "added", len(items))
	}
	return nil
}

// present reports whether an optional attribute was written in the file.
// gohcl fills missing expression attributes with an empty-range null.
func present(expr hcl.Expression) bool {
	return expr != nil && !expr.Range().Empty()
}
