package descriptor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vk/hyprcustom/internal/ctxlog"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

// Evaluate parses descriptor text and builds its Environment. Top-level
// statements are applied in order, the way sourcing the file would apply
// them: later assignments see earlier ones and override them. Only
// assignments, declaration clauses and function definitions are accepted.
func Evaluate(ctx context.Context, r io.Reader, source string) (*Environment, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Evaluating descriptor.", "source", source)

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, &EvaluationError{Source: source, Err: err}
	}

	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	file, err := parser.Parse(bytes.NewReader(src), source)
	if err != nil {
		return nil, &EvaluationError{Source: source, Err: err}
	}

	ev := newEvaluator(src)
	for _, stmt := range file.Stmts {
		if err := ev.stmt(stmt); err != nil {
			return nil, &EvaluationError{Source: source, Line: stmt.Pos().Line(), Err: err}
		}
	}

	logger.Debug("Descriptor evaluated.",
		"source", source,
		"variables", len(ev.env.vars),
		"functions", len(ev.env.funcs),
	)
	return ev.env, nil
}

type evaluator struct {
	src []byte
	env *Environment
	cfg *expand.Config
}

func newEvaluator(src []byte) *evaluator {
	ev := &evaluator{src: src, env: NewEnvironment()}
	ev.cfg = &expand.Config{Env: shellEnviron{env: ev.env}}
	return ev
}

func (ev *evaluator) literal(word *syntax.Word) (string, error) {
	word.Parts = decodeEscapes(word.Parts, false)
	return expand.Literal(ev.cfg, word)
}

func (ev *evaluator) fields(word *syntax.Word) ([]string, error) {
	word.Parts = decodeEscapes(word.Parts, false)
	return expand.Fields(ev.cfg, word)
}

func (ev *evaluator) stmt(stmt *syntax.Stmt) error {
	if stmt.Negated || stmt.Background || stmt.Coprocess || len(stmt.Redirs) > 0 {
		return errors.New("statement modifiers and redirections are not supported at the top level")
	}

	switch cmd := stmt.Cmd.(type) {
	case *syntax.CallExpr:
		if len(cmd.Args) > 0 {
			return fmt.Errorf("command %q is not a declaration", commandName(cmd))
		}
		for _, as := range cmd.Assigns {
			if err := ev.assign(as, false); err != nil {
				return err
			}
		}
		return nil
	case *syntax.DeclClause:
		return ev.decl(cmd)
	case *syntax.FuncDecl:
		return ev.funcDecl(cmd)
	default:
		return fmt.Errorf("unsupported top-level statement %T", cmd)
	}
}

func (ev *evaluator) decl(clause *syntax.DeclClause) error {
	switch variant := clause.Variant.Value; variant {
	case "declare", "typeset", "export", "readonly", "local":
	default:
		return fmt.Errorf("unsupported declaration %q", variant)
	}

	asList := false
	for _, as := range clause.Args {
		if as.Naked && as.Name == nil {
			opt, err := ev.literal(as.Value)
			if err != nil {
				return err
			}
			if !strings.HasPrefix(opt, "-") {
				continue
			}
			if strings.Contains(opt, "A") {
				return errors.New("associative arrays are not supported")
			}
			if strings.Contains(opt, "a") {
				asList = true
			}
			continue
		}
		if as.Naked {
			if asList && !ev.env.Lookup(as.Name.Value).IsDefined() {
				ev.env.Set(as.Name.Value, ListValue())
			}
			continue
		}
		if err := ev.assign(as, asList); err != nil {
			return err
		}
	}
	return nil
}

func (ev *evaluator) assign(as *syntax.Assign, asList bool) error {
	if as.Name == nil {
		return errors.New("assignment without a variable name")
	}
	name := as.Name.Value
	if as.Index != nil {
		return fmt.Errorf("indexed assignment to %q is not supported", name)
	}

	if as.Array != nil {
		items := []string{}
		for _, elem := range as.Array.Elems {
			if elem.Index != nil {
				return fmt.Errorf("indexed list element in %q is not supported", name)
			}
			fields, err := ev.fields(elem.Value)
			if err != nil {
				return fmt.Errorf("failed to expand element of %q: %w", name, err)
			}
			items = append(items, fields...)
		}
		if as.Append {
			ev.env.Append(name, items...)
		} else {
			ev.env.Set(name, ListValue(items...))
		}
		return nil
	}

	str := ""
	if as.Value != nil {
		var err error
		str, err = ev.literal(as.Value)
		if err != nil {
			return fmt.Errorf("failed to expand %q: %w", name, err)
		}
	}

	cur := ev.env.Lookup(name)
	switch {
	case cur.Kind == List || asList:
		// A plain reference to a list addresses its first element.
		items := cur.Items
		if cur.Kind == Scalar {
			items = []string{cur.Str}
		}
		if len(items) == 0 {
			items = []string{""}
		}
		if as.Append {
			items[0] += str
		} else {
			items[0] = str
		}
		ev.env.Set(name, ListValue(items...))
	case as.Append:
		ev.env.Set(name, ScalarValue(cur.Str+str))
	default:
		ev.env.Set(name, ScalarValue(str))
	}
	return nil
}

func (ev *evaluator) funcDecl(decl *syntax.FuncDecl) error {
	name := decl.Name.Value
	block, ok := decl.Body.Cmd.(*syntax.Block)
	if !ok {
		return fmt.Errorf("function %q must have a { ... } body", name)
	}
	start, end := block.Lbrace.Offset()+1, block.Rbrace.Offset()
	if start > end || end > uint(len(ev.src)) {
		return fmt.Errorf("function %q has an unreadable body", name)
	}
	ev.env.DefineFunction(&Function{
		Name: name,
		Body: bodyLines(string(ev.src[start:end])),
	})
	return nil
}

func commandName(call *syntax.CallExpr) string {
	if lit := call.Args[0].Lit(); lit != "" {
		return lit
	}
	return "<expression>"
}
