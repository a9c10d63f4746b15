package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"tobin", "toasc", "check", "info", "diff", "config"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestRootCommand_GlobalFlags(t *testing.T) {
	for _, flag := range []string{"json", "no-color", "log-level"} {
		require.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), "missing flag %q", flag)
	}
}

func TestOutputJSON(t *testing.T) {
	// outputJSON writes to stdout; here we only assert it does not error
	// on plain values.
	assert.NoError(t, outputJSON(map[string]any{"records": 29}))
}
