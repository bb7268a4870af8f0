package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDemo(t *testing.T) {
	out, _, err := execute(t, "demo")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{
		"x: float64 [36] | i: int32 [36]",
		"x: float64 [36] | i: int32 [36]",
		"x: float64 [36] | i: int32 [36]",
		"x: float32 [36] | i: int32 [36]",
		"x: float64 [36] | i: int64 [36]",
	}, lines)
}

func TestDemoUnknownKernel(t *testing.T) {
	_, _, err := execute(t, "demo", "--kernel", "median")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kernel")
}

func TestDemoDebugLogging(t *testing.T) {
	_, stderr, err := execute(t, "--log-level", "debug", "--force-generic", "demo")
	require.NoError(t, err)
	assert.Contains(t, stderr, "variant=generic")
	assert.Contains(t, stderr, "tag=f64F_i32F")
}

func TestBench(t *testing.T) {
	out, _, err := execute(t, "bench", "--rows", "50", "--cols", "4", "--iterations", "2", "--parallel", "3", "--kernel", "xcorr")
	require.NoError(t, err)
	assert.Contains(t, out, "VARIANT")
	assert.Contains(t, out, "float32")
	assert.Contains(t, out, "xcorr")
	assert.Contains(t, out, "true")
	assert.NotContains(t, out, "false")
}

func TestBenchRejectsBadFlags(t *testing.T) {
	_, _, err := execute(t, "bench", "--iterations", "0")
	require.Error(t, err)
}

func TestKernels(t *testing.T) {
	out, _, err := execute(t, "kernels")
	require.NoError(t, err)
	for _, name := range []string{"sum", "add", "max", "xcorr", "generic", "fft"} {
		assert.Contains(t, out, name)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, "--log-level", "loud", "kernels")
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(envForceGeneric, "1")
	t.Setenv(envLogLevel, "debug")

	_, stderr, err := execute(t, "demo", "--kernel", "add")
	require.NoError(t, err)
	assert.Contains(t, stderr, "variant=generic")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug", "DEBUG"},
		{"WARN", "WARN"},
		{"-4", "DEBUG"},
		{"info", "INFO"},
	}
	for _, tt := range tests {
		level, err := parseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, level.String())
	}
}
