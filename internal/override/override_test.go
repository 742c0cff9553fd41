package override

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/hyprcustom/internal/descriptor"
)

func fixtureEnv() *descriptor.Environment {
	env := descriptor.NewEnvironment()
	env.Set("pkgname", descriptor.ScalarValue("orig"))
	env.Set("pkgver", descriptor.ScalarValue("1.0"))
	env.Set("provides", descriptor.ListValue())
	env.Set("source", descriptor.ListValue("orig-1.0.tar.gz::https://example.com/orig-1.0.tar.gz"))
	env.Set("b2sums", descriptor.ListValue("deadbeef"))
	return env
}

func TestBuiltin_AppliesToFixture(t *testing.T) {
	// --- Arrange ---
	set, err := Builtin()
	require.NoError(t, err)
	env := fixtureEnv()

	// --- Act ---
	err = set.Apply(context.Background(), env, "x.patch")

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, descriptor.ScalarValue("hyprland-custom"), env.Lookup("pkgname"))
	require.Equal(t, descriptor.ScalarValue("https://github.com/vk/hyprland-vibrance"), env.Lookup("url"))
	require.Equal(t, descriptor.ScalarValue("hyprland-1.0"), env.Lookup("_archive"))
	require.Equal(t, descriptor.ListValue("hyprland"), env.Lookup("provides"))
	require.Equal(t, descriptor.ListValue("hyprland"), env.Lookup("conflicts"))
	require.Equal(t, descriptor.ListValue("orig-1.0.tar.gz::https://example.com/orig-1.0.tar.gz", "x.patch"), env.Lookup("source"))
	require.Equal(t, descriptor.ListValue("deadbeef", "SKIP"), env.Lookup("b2sums"))

	// Checksum lists the descriptor never declared stay undefined.
	for _, name := range []string{"md5sums", "sha1sums", "sha224sums", "sha256sums", "sha384sums", "sha512sums"} {
		require.False(t, env.Lookup(name).IsDefined(), name)
	}
}

func TestBuiltin_RequiresVersion(t *testing.T) {
	set, err := Builtin()
	require.NoError(t, err)
	env := descriptor.NewEnvironment()
	env.Set("pkgname", descriptor.ScalarValue("orig"))

	err = set.Apply(context.Background(), env, "x.patch")

	var overrideErr *Error
	require.ErrorAs(t, err, &overrideErr)
	require.Equal(t, "_archive", overrideErr.Name)
}

func TestLoad_Validation(t *testing.T) {
	testCases := []struct {
		name      string
		src       string
		expectErr string
	}{
		{
			name:      "both set and append",
			src:       "override \"a\" {\n  set = \"x\"\n  append = [\"y\"]\n}\n",
			expectErr: "mutually exclusive",
		},
		{
			name:      "neither set nor append",
			src:       `override "a" { only_if_defined = true }`,
			expectErr: "one of set or append",
		},
		{
			name:      "syntax error",
			src:       `override "a" {`,
			expectErr: "failed to parse",
		},
		{
			name:      "unknown attribute",
			src:       `override "a" { replace = "x" }`,
			expectErr: "failed to decode",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load([]byte(tc.src), "test.hcl")
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.expectErr)
		})
	}
}

func TestApply_ValueShapes(t *testing.T) {
	src := `
override "count" {
  set = 3
}
override "list" {
  set = ["a", pkg.name]
}
override "name" {
  set = "renamed"
}
override "single" {
  append = "one"
}
override "from_list" {
  set = pkg.items[1]
}
`
	set, err := Load([]byte(src), "test.hcl")
	require.NoError(t, err)
	require.Equal(t, 5, set.Len())

	env := descriptor.NewEnvironment()
	env.Set("name", descriptor.ScalarValue("orig"))
	env.Set("items", descriptor.ListValue("x", "y"))

	require.NoError(t, set.Apply(context.Background(), env, "p.patch"))

	require.Equal(t, descriptor.ScalarValue("3"), env.Lookup("count"))
	require.Equal(t, descriptor.ListValue("a", "orig"), env.Lookup("list"))
	require.Equal(t, descriptor.ScalarValue("renamed"), env.Lookup("name"))
	require.Equal(t, descriptor.ListValue("one"), env.Lookup("single"))
	require.Equal(t, descriptor.ScalarValue("y"), env.Lookup("from_list"))
}

func TestApply_RejectsObjects(t *testing.T) {
	set, err := Load([]byte("override \"a\" {\n  set = { k = \"v\" }\n}\n"), "test.hcl")
	require.NoError(t, err)

	err = set.Apply(context.Background(), descriptor.NewEnvironment(), "p.patch")

	require.ErrorContains(t, err, `override of "a" failed`)
}
