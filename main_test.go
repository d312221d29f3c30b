package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalOnce(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		stdout   string
		exitCode int
	}{
		{name: "ok", input: "(5 + 3) * 2 - 1", stdout: "Sub(Mul(Add(5.0, 3.0), 2.0), 1.0)\n15\n"},
		{name: "division by zero", input: "8 / 0", stdout: "Div(8.0, 0.0)\n", exitCode: 1},
		{name: "parse error", input: "(3 + 4", stdout: "", exitCode: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout := bytes.NewBuffer(nil)
			exitCode := evalOnce(tt.input, false, stdout)
			assert.Equal(t, tt.exitCode, exitCode, "Exit code mismatch")
			require.Equal(t, tt.stdout, stdout.String(), "Stdout mismatch")
		})
	}
}

func TestEvalOnceDebug(t *testing.T) {
	stdout := bytes.NewBuffer(nil)
	require.Equal(t, 0, evalOnce("1 + 2", true, stdout))
	assert.Contains(t, stdout.String(), "BinaryExpr")
}

func TestDefaultHistoryPath(t *testing.T) {
	t.Setenv("ASTCALC_HISTORY", "/tmp/astcalc-test-history")
	assert.Equal(t, "/tmp/astcalc-test-history", defaultHistoryPath())

	t.Setenv("ASTCALC_HISTORY", "")
	assert.Empty(t, defaultHistoryPath())
}
