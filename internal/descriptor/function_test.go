package descriptor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractBody_Shapes(t *testing.T) {
	testCases := []struct {
		name     string
		src      string
		expected []string
	}{
		{
			name:     "one liner",
			src:      "f() { cd src; }",
			expected: []string{"cd src;"},
		},
		{
			name:     "function keyword",
			src:      "function f {\n    make\n}",
			expected: []string{"    make"},
		},
		{
			name:     "indentation is kept",
			src:      "f() {\n  if [[ -d x ]]; then\n    rm -r x\n  fi\n}",
			expected: []string{"  if [[ -d x ]]; then", "    rm -r x", "  fi"},
		},
		{
			name:     "blank lines and comments are kept",
			src:      "f() {\n\t# configure\n\n\t./configure\n}",
			expected: []string{"\t# configure", "", "\t./configure"},
		},
		{
			name:     "trailing blanks are kept",
			src:      "f() {\n  make   \n}",
			expected: []string{"  make   "},
		},
		{
			name:     "escaped trailing space",
			src:      "f() {\n  echo a\\ \n  echo b\n}",
			expected: []string{"  echo a\\ ", "  echo b"},
		},
		{
			name:     "escaped trailing space in a one liner",
			src:      "f() { echo a\\  }",
			expected: []string{"echo a\\ "},
		},
		{
			name:     "heredoc",
			src:      "f() {\n  cat > x <<EOF\n  body\nEOF\n}",
			expected: []string{"  cat > x <<EOF", "  body", "EOF"},
		},
		{
			name:     "statement on the brace line",
			src:      "f() { cd src\n  make\n}",
			expected: []string{"cd src", "  make"},
		},
		{
			name:     "later definition wins",
			src:      "f() { one; }\nf() { two; }",
			expected: []string{"two;"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := evaluate(t, tc.src)
			body, err := ExtractBody(env, "f")
			require.NoError(t, err)
			require.Equal(t, tc.expected, body)
		})
	}
}

func TestExtractBody_Undefined(t *testing.T) {
	env := evaluate(t, "build() { make; }")

	_, err := ExtractBody(env, "prepare")

	var undefined *UndefinedFunctionError
	require.ErrorAs(t, err, &undefined)
	require.Equal(t, "prepare", undefined.Name)
}

func TestExtractBody_ReturnsCopy(t *testing.T) {
	env := evaluate(t, "f() {\n  a\n}")

	body, err := ExtractBody(env, "f")
	require.NoError(t, err)
	body[0] = "changed"

	again, err := ExtractBody(env, "f")
	require.NoError(t, err)
	require.Equal(t, []string{"  a"}, again)
}

func TestAssemble(t *testing.T) {
	require.Equal(t, "prepare() {\n  cd src\n\n  autoreconf\n}", Assemble("prepare", []string{"  cd src", "", "  autoreconf"}))
	require.Equal(t, "noop() {\n\t:\n}", Assemble("noop", nil))
	require.Equal(t, "noop() {\n\t:\n}", Assemble("noop", []string{"", "  "}))
	require.Equal(t,
		"package() {\n\tcat > x <<EOF\n\ttext\nEOF\n}",
		Assemble("package", []string{"\tcat > x <<EOF", "\ttext", "EOF"}))
}

func TestIndent(t *testing.T) {
	require.Equal(t, "  ", Indent([]string{"", "  cd src", "\tmake"}))
	require.Equal(t, "", Indent([]string{"cd src;"}))
	require.Equal(t, "\t", Indent(nil))
}

func TestAssemble_BodyFidelity(t *testing.T) {
	bodies := [][]string{
		{"cd src", "autoreconf"},
		{"  if [[ -n $x ]]; then", "    echo \"$x\"", "  fi"},
		{"\t# only a comment", "\ttrue"},
		{"\tcat > file <<-EOF", "\tindented", "\tEOF"},
		{"  cat > file <<EOF", "    kept as is", "EOF"},
		{"  echo a\\ ", "  make   "},
		{"", "  make", "", "  make install"},
	}

	for _, body := range bodies {
		env := evaluate(t, Assemble("step", body))
		got, err := ExtractBody(env, "step")
		require.NoError(t, err)
		require.Equal(t, body, got)
	}
}
