package descriptor

import "strings"

// Serialize renders the variable name as an assignment statement. Scalars
// become name="value" and lists become name=("a" "b"). The second result is
// false when name is undefined, in which case the field is left out.
func Serialize(env *Environment, name string) (string, bool) {
	v := env.Lookup(name)
	switch v.Kind {
	case Scalar:
		return name + "=" + Quote(v.Str), true
	case List:
		quoted := make([]string, len(v.Items))
		for i, item := range v.Items {
			quoted[i] = Quote(item)
		}
		return name + "=(" + strings.Join(quoted, " ") + ")", true
	default:
		return "", false
	}
}

var quoteReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`$`, `\$`,
	"`", "\\`",
)

// Quote wraps s in double quotes, escaping the four characters that keep a
// special meaning inside them.
func Quote(s string) string {
	return `"` + Escape(s) + `"`
}

// Escape returns s escaped for use inside a double-quoted word.
func Escape(s string) string {
	return quoteReplacer.Replace(s)
}
