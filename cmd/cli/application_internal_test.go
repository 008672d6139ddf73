package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitializeConfigurationAppliesEmbeddedDefaults(t *testing.T) {
	application := NewApplication()

	require.NoError(t, application.initializeConfiguration(application.rootCommand))
	require.Equal(t, "origin", application.configuration.Freshen.RemoteName)
	require.Equal(t, "master", application.configuration.Freshen.RootBranch)
	require.Equal(t, "info", application.configuration.Common.LogLevel)
	require.Equal(t, "structured", application.configuration.Common.LogFormat)
	require.False(t, application.humanReadableLoggingEnabled())
}

func TestInitializeConfigurationHonorsConfigurationFile(t *testing.T) {
	configurationPath := filepath.Join(t.TempDir(), "config.yaml")
	configurationContent := "common:\n  log_format: console\nfreshen:\n  remote: upstream\n  root_branch: main\n"
	require.NoError(t, os.WriteFile(configurationPath, []byte(configurationContent), 0o600))

	application := NewApplication()
	application.configurationFilePath = configurationPath

	require.NoError(t, application.initializeConfiguration(application.rootCommand))
	require.Equal(t, "upstream", application.configuration.Freshen.RemoteName)
	require.Equal(t, "main", application.configuration.Freshen.RootBranch)
	require.True(t, application.humanReadableLoggingEnabled())
	require.Equal(t, configurationPath, application.configurationMetadata.ConfigFileUsed)
}

func TestInitializeConfigurationHonorsEnvironmentOverrides(t *testing.T) {
	t.Setenv("FRESHEN_FRESHEN_ROOT_BRANCH", "trunk")
	t.Setenv("FRESHEN_COMMON_LOG_LEVEL", "debug")

	application := NewApplication()

	require.NoError(t, application.initializeConfiguration(application.rootCommand))
	require.Equal(t, "trunk", application.configuration.Freshen.RootBranch)
	require.Equal(t, "debug", application.configuration.Common.LogLevel)
}

func TestLogFormatFlagOverridesConfiguration(t *testing.T) {
	application := NewApplication()
	require.NoError(t, application.rootCommand.PersistentFlags().Set("log-format", "console"))

	require.NoError(t, application.initializeConfiguration(application.rootCommand))
	require.True(t, application.humanReadableLoggingEnabled())
}
