package descriptor

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// decodeEscapes resolves backslash escapes in the literal parts of a word
// the way bash does and hands the result to the expander as single-quoted
// parts, which it takes verbatim. Outside double quotes a backslash quotes
// any byte; inside them only $, `, ", \ and newline. A backslash-newline
// pair is removed in both.
func decodeEscapes(parts []syntax.WordPart, quoted bool) []syntax.WordPart {
	out := make([]syntax.WordPart, 0, len(parts))
	for _, part := range parts {
		switch x := part.(type) {
		case *syntax.Lit:
			if strings.Contains(x.Value, `\`) {
				out = append(out, splitEscapes(x, quoted)...)
				continue
			}
		case *syntax.DblQuoted:
			x.Parts = decodeEscapes(x.Parts, true)
		case *syntax.ParamExp:
			if x.Exp != nil && x.Exp.Word != nil {
				x.Exp.Word.Parts = decodeEscapes(x.Exp.Word.Parts, quoted)
			}
			if x.Repl != nil && x.Repl.With != nil {
				x.Repl.With.Parts = decodeEscapes(x.Repl.With.Parts, quoted)
			}
		}
		out = append(out, part)
	}
	return out
}

// splitEscapes breaks lit into plain runs, which keep brace and tilde
// expansion, and decoded runs holding every byte that came from an escape.
func splitEscapes(lit *syntax.Lit, quoted bool) []syntax.WordPart {
	var (
		parts          []syntax.WordPart
		plain, decoded strings.Builder
	)
	flushPlain := func() {
		if plain.Len() > 0 {
			parts = append(parts, &syntax.Lit{ValuePos: lit.ValuePos, ValueEnd: lit.ValueEnd, Value: plain.String()})
			plain.Reset()
		}
	}
	flushDecoded := func() {
		if decoded.Len() > 0 {
			parts = append(parts, &syntax.SglQuoted{Left: lit.ValuePos, Right: lit.ValueEnd, Value: decoded.String()})
			decoded.Reset()
		}
	}

	s := lit.Value
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c != '\\':
			flushDecoded()
			plain.WriteByte(c)
		case i+1 == len(s):
			flushPlain()
			decoded.WriteByte(c)
		case s[i+1] == '\n':
			i++
		case !quoted || strings.IndexByte("$`\"\\", s[i+1]) >= 0:
			flushPlain()
			decoded.WriteByte(s[i+1])
			i++
		default:
			// Inside double quotes the backslash itself is literal.
			flushPlain()
			decoded.WriteByte(c)
		}
	}
	flushPlain()
	flushDecoded()
	return parts
}
