package freshen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommandConfigurationSanitize(t *testing.T) {
	testCases := []struct {
		name     string
		input    CommandConfiguration
		expected CommandConfiguration
	}{
		{
			name:     "BlankValuesReceiveDefaults",
			input:    CommandConfiguration{},
			expected: CommandConfiguration{RemoteName: "origin", RootBranch: "master"},
		},
		{
			name:     "WhitespaceValuesAreTrimmed",
			input:    CommandConfiguration{RemoteName: "  upstream  ", RootBranch: " main ", IgnoreFile: " ~/.freshenignore "},
			expected: CommandConfiguration{RemoteName: "upstream", RootBranch: "main", IgnoreFile: "~/.freshenignore"},
		},
		{
			name:     "ConfiguredValuesAreKept",
			input:    CommandConfiguration{RemoteName: "fork", RootBranch: "trunk"},
			expected: CommandConfiguration{RemoteName: "fork", RootBranch: "trunk"},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expected, testCase.input.Sanitize())
		})
	}
}

func TestDefaultCommandConfiguration(t *testing.T) {
	configuration := DefaultCommandConfiguration()
	require.Equal(t, "origin", configuration.RemoteName)
	require.Equal(t, "master", configuration.RootBranch)
	require.Empty(t, configuration.IgnoreFile)
}
