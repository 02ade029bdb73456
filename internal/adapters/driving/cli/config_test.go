package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/csvnorm/internal/core/domain"
)

func TestConfigCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range configCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "show")
	assert.Contains(t, names, "set")
	assert.Contains(t, names, "path")
}

func TestConfigShowCmd_Defaults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Input: "+domain.DefaultInputDir)
	assert.Contains(t, out, "Output: "+domain.DefaultOutputDir)
	assert.Contains(t, out, "Archive pattern: *.zip")
	assert.Contains(t, out, "Delimiter: ','")
	assert.Contains(t, out, "Enabled: yes")
	assert.Contains(t, out, "Stored in :memory:")
}

func TestConfigSetCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "config", "set", "script.enabled", "false")
	require.NoError(t, err)
	assert.Contains(t, out, "script.enabled set to false")

	out, err = execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Enabled: no")
}

func TestConfigSetCmd_Invalid(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "config", "set", "unknown.key", "x")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConfigPathCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "config", "path")

	require.NoError(t, err)
	assert.Equal(t, ":memory:\n", out)
}

func TestConfigCmd_ServiceNotConfigured(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	settingsService = nil

	for _, args := range [][]string{{"config", "show"}, {"config", "set", "a", "b"}, {"config", "path"}} {
		_, err := execute(t, args...)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "settings service not configured")
	}
}
