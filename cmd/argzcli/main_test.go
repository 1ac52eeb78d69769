package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	logger := slog.Default()
	t.Cleanup(func() {
		color.NoColor = noColor
		slog.SetDefault(logger)
	})

	var stdout, stderr bytes.Buffer
	root := newRootCommand(&stderr)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCopyCommand(t *testing.T) {
	stdout, _, err := execute(t, "copy", "-i", "in.txt", "--size", "10")
	require.NoError(t, err)
	assert.Equal(t, "copy: in.txt => [10] => output.txt\n", stdout)
}

func TestCopyCommandRootFlags(t *testing.T) {
	stdout, stderr, err := execute(t, "--log-level", "debug", "--log-format", "json", "copy", "-i", "in.txt")
	require.NoError(t, err)
	assert.Equal(t, "copy: in.txt => [128] => output.txt\n", stdout)
	assert.Contains(t, stderr, `"msg":"option registered"`)
	assert.Contains(t, stderr, `"msg":"option assigned"`)
	// root flags are not handed to the copy registry
	assert.NotContains(t, stderr, "argument ignored")
}

func TestProbeCommandDebugLog(t *testing.T) {
	_, stderr, err := execute(t, "--log-level", "debug", "probe", "-O", "flag:-v", "--", "-v", "stray")
	require.NoError(t, err)
	assert.Contains(t, stderr, "option registered")
	assert.Contains(t, stderr, "flag set")
	assert.Contains(t, stderr, "argument ignored")
}

func TestProbeCommandJSONLog(t *testing.T) {
	_, stderr, err := execute(t, "--log-level", "debug", "--log-format", "json", "probe", "-O", "flag:-v", "--", "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"flag set"`)
}

func TestRootCommandErrors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{
			name:    "invalid log level",
			args:    []string{"--log-level", "loud", "probe", "-O", "flag:-v"},
			wantMsg: `invalid log-level "loud": must be 'debug', 'info', 'warn', or 'error'`,
		},
		{
			name:    "invalid log format",
			args:    []string{"--log-format", "xml", "probe", "-O", "flag:-v"},
			wantMsg: `invalid log-format "xml": must be 'text' or 'json'`,
		},
		{
			name:    "invalid log level before copy",
			args:    []string{"--log-level", "loud", "copy", "-i", "in.txt"},
			wantMsg: `invalid log-level "loud": must be 'debug', 'info', 'warn', or 'error'`,
		},
		{
			name:    "conversion error",
			args:    []string{"copy", "--size", "abc"},
			wantMsg: "Failed to parse option '--size'. Expected long, got 'abc'.",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, tc.args...)
			assert.EqualError(t, err, tc.wantMsg)
		})
	}
}
