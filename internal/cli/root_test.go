package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd_HasSubcommands(t *testing.T) {
	root := NewRootCmd()

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "compare")
	assert.Contains(t, names, "check")
	assert.Contains(t, names, "init")
	assert.Contains(t, names, "version")
}

func TestCompareCmd_Flags(t *testing.T) {
	cmd := NewCompareCmd()

	for _, flag := range []string{"binary", "fixtures", "tokenizer", "no-cache", "verbose"} {
		require.NotNil(t, cmd.Flags().Lookup(flag), "compare should define --%s", flag)
	}
}

func TestRootCmd_SilencesCobraNoise(t *testing.T) {
	root := NewRootCmd()

	// Errors are printed once, with hints, by Execute.
	assert.True(t, root.SilenceUsage)
	assert.True(t, root.SilenceErrors)
}
