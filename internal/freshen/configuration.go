package freshen

import (
	"strings"

	"github.com/tavrin/freshen/internal/shared"
)

// CommandConfiguration captures configuration values for the freshen command.
type CommandConfiguration struct {
	RemoteName string `mapstructure:"remote"`
	RootBranch string `mapstructure:"root_branch"`
	IgnoreFile string `mapstructure:"ignore_file"`
}

// DefaultCommandConfiguration provides baseline configuration values for freshening.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		RemoteName: shared.OriginRemoteNameConstant,
		RootBranch: shared.MasterBranchNameConstant,
		IgnoreFile: "",
	}
}

// DefaultConfigurationValues exposes freshen defaults keyed beneath the supplied configuration prefix.
func DefaultConfigurationValues(configurationKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKey + ".remote":      defaults.RemoteName,
		configurationKey + ".root_branch": defaults.RootBranch,
		configurationKey + ".ignore_file": defaults.IgnoreFile,
	}
}

// Sanitize trims configuration values and applies defaults for blank entries.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.RemoteName = strings.TrimSpace(configuration.RemoteName)
	if len(sanitized.RemoteName) == 0 {
		sanitized.RemoteName = shared.OriginRemoteNameConstant
	}

	sanitized.RootBranch = strings.TrimSpace(configuration.RootBranch)
	if len(sanitized.RootBranch) == 0 {
		sanitized.RootBranch = shared.MasterBranchNameConstant
	}

	sanitized.IgnoreFile = strings.TrimSpace(configuration.IgnoreFile)

	return sanitized
}
