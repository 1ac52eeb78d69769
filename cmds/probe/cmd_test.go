package probe

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-juicedev/argz"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := &cobra.Command{Use: "argzcli", SilenceErrors: true, SilenceUsage: true}
	root.PersistentFlags().Int("capacity", argz.DefaultCapacity, "")
	root.AddCommand(NewCommand())

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(append([]string{"probe"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestProbe(t *testing.T) {
	out, err := run(t,
		"-O", "long:--size=Buffer size in bytes.",
		"-O", "flag:-v=Verbose.",
		"-O", "double:-r",
		"-O", "string:--name",
		"--", "--size", "42abc", "-v", "-r", "0.25", "--unknown", "--name", "Ada",
	)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.Contains(t, lines[1], "NAME")
	assert.Contains(t, lines[1], "DESCRIPTION")
	assert.Regexp(t, `--size\s+│ long\s+│ 42\s+│ Buffer size in bytes\.`, lines[3])
	assert.Regexp(t, `-v\s+│ flag\s+│ 1\s+│ Verbose\.`, lines[4])
	assert.Regexp(t, `-r\s+│ double\s+│ 0\.25`, lines[5])
	assert.Regexp(t, `--name\s+│ string\s+│ Ada`, lines[6])
}

func TestProbeList(t *testing.T) {
	out, err := run(t, "-O", "flag:-a=Short.", "-O", "string:--longoption=Long.", "--list")
	require.NoError(t, err)
	assert.Equal(t, "Options:\n  -a             Short.\n  --longoption   Long.\n\n", out)
}

func TestProbeCapacity(t *testing.T) {
	_, err := run(t, "-O", "flag:-a", "-O", "flag:-b", "--capacity", "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, argz.ErrCapacityExceeded)
	assert.EqualError(t, err, "ARGZ_COUNT=1 exceeded, for option '-b'")
}

func TestProbeErrors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{
			name:    "unknown kind",
			args:    []string{"-O", "int:-n"},
			wantMsg: `unknown option kind "int" for option '-n': expected double, long, flag or string`,
		},
		{
			name:    "malformed declaration",
			args:    []string{"-O", "-n"},
			wantMsg: `invalid option declaration "-n": expected KIND:NAME[=DESCRIPTION]`,
		},
		{
			name:    "empty name",
			args:    []string{"-O", "long:"},
			wantMsg: "option cannot be empty",
		},
		{
			name:    "conversion",
			args:    []string{"-O", "double:-r", "--", "-r", "fast"},
			wantMsg: "Failed to parse option '-r'. Expected double, got 'fast'.",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, tc.args...)
			assert.EqualError(t, err, tc.wantMsg)
		})
	}
}
