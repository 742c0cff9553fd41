package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name         string
		args         []string
		expectExit   bool
		expectCode   int
		expectErr    string
		expectLevel  string
		expectFormat string
	}{
		{name: "defaults", args: nil, expectLevel: "warn", expectFormat: "text"},
		{name: "debug json", args: []string{"-log-level", "DEBUG", "-log-format", "json"}, expectLevel: "debug", expectFormat: "json"},
		{name: "help", args: []string{"-h"}, expectExit: true},
		{name: "unknown flag", args: []string{"-grid", "x"}, expectCode: 2, expectErr: "flag provided but not defined: -grid"},
		{name: "positional argument", args: []string{"other-dir"}, expectCode: 2, expectErr: "unexpected arguments: other-dir"},
		{name: "bad format", args: []string{"-log-format", "xml"}, expectCode: 2, expectErr: "invalid log-format"},
		{name: "bad level", args: []string{"-log-level", "trace"}, expectCode: 2, expectErr: "invalid log-level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			cfg, shouldExit, err := Parse(tc.args, out)

			if tc.expectErr != "" {
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				require.Equal(t, tc.expectCode, exitErr.Code)
				require.Contains(t, exitErr.Message, tc.expectErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectExit, shouldExit)
			if tc.expectExit {
				require.Contains(t, out.String(), "Usage:")
				return
			}

			require.Equal(t, SourceDir, cfg.SourceDir)
			require.Equal(t, OutputDir, cfg.OutputDir)
			require.Equal(t, PatchFile, cfg.PatchPath)
			require.Equal(t, DescriptorName, cfg.DescriptorName)
			require.Equal(t, tc.expectLevel, cfg.LogLevel)
			require.Equal(t, tc.expectFormat, cfg.LogFormat)
		})
	}
}
