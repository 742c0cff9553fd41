package descriptor

import (
	"slices"
	"strings"
)

// Function is a named function with its body split into statement lines.
type Function struct {
	Name string
	Body []string
}

// ExtractBody returns a copy of the body lines of the function name.
func ExtractBody(env *Environment, name string) ([]string, error) {
	fn, ok := env.Function(name)
	if !ok {
		return nil, &UndefinedFunctionError{Name: name}
	}
	return slices.Clone(fn.Body), nil
}

// Assemble composes a function declaration from a name and body lines.
// Lines are written unchanged, so heredoc terminators and escaped
// trailing blanks survive. A body with no statements becomes the no-op
// ":" because "name() {}" is not valid shell.
func Assemble(name string, body []string) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString("() {\n")
	if !slices.ContainsFunc(body, func(line string) bool { return !isBlank(line) }) {
		b.WriteString("\t:\n")
	} else {
		for _, line := range body {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	b.WriteString("}")
	return b.String()
}

// Indent returns the leading blanks of the first statement in body, or a
// tab when there is none, for statements added alongside it.
func Indent(body []string) string {
	for _, line := range body {
		if !isBlank(line) {
			return leadingSpace(line)
		}
	}
	return "\t"
}

// bodyLines turns the raw text between a function's braces into statement
// lines. Only the wrapper is removed: the blank remainder of the "{" line,
// the blanks before "}" and, for one-line bodies, the padding inside the
// braces. Every other byte is kept.
func bodyLines(text string) []string {
	if !strings.Contains(text, "\n") {
		return []string{trimPadding(text)}
	}

	lines := strings.Split(text, "\n")
	if isBlank(lines[0]) {
		lines = lines[1:]
	} else {
		lines[0] = strings.TrimLeft(lines[0], " \t")
	}
	if n := len(lines); n > 0 && isBlank(lines[n-1]) {
		lines = lines[:n-1]
	}
	return lines
}

// trimPadding strips the blanks around a one-line body, keeping the blank
// after a trailing backslash since that one is quoted.
func trimPadding(s string) string {
	s = strings.TrimLeft(s, " \t")
	trimmed := strings.TrimRight(s, " \t")
	if strings.HasSuffix(trimmed, `\`) && len(trimmed) < len(s) {
		return s[:len(trimmed)+1]
	}
	return trimmed
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func leadingSpace(s string) string {
	return s[:len(s)-len(strings.TrimLeft(s, " \t"))]
}
