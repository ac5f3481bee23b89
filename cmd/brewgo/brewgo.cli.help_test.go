package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunHelp_NoArgsShowsMainUsage(t *testing.T) {
	stdout := &bytes.Buffer{}
	exitCode := runHelp(nil, stdout)

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Contains(t, stdout.String(), CLIName)
}

func TestRunHelp_KnownCommand(t *testing.T) {
	for _, cmd := range []string{CmdNameRun, CmdNameValidate, CmdNameVersion, CmdNameHelp} {
		stdout := &bytes.Buffer{}
		exitCode := runHelp([]string{cmd}, stdout)
		assert.Equal(t, ExitCodeSuccess, exitCode, "command %q", cmd)
		assert.NotEmpty(t, stdout.String())
	}
}

func TestRunHelp_UnknownCommandFallsBackToMainUsage(t *testing.T) {
	stdout := &bytes.Buffer{}
	exitCode := runHelp([]string{"bogus"}, stdout)

	assert.Equal(t, ExitCodeUsageError, exitCode)
	assert.Contains(t, stdout.String(), ErrMsgUnknownCommand)
	assert.Contains(t, stdout.String(), CLIName)
}
