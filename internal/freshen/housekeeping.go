package freshen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tavrin/freshen/internal/execshell"
	"github.com/tavrin/freshen/internal/shared"
)

const (
	gcSubcommandConstant                      = "gc"
	gcAutoFlagConstant                        = "--auto"
	gcForceFlagConstant                       = "--force"
	pruneSubcommandConstant                   = "prune"
	gitDirectoryNameConstant                  = ".git"
	gcLogFileNameConstant                     = "gc.log"
	housekeepingPruneWarningTemplateConstant  = "garbage collection failed, pruned unreachable objects instead: %v"
	housekeepingFailedWarningTemplateConstant = "housekeeping skipped, both gc and prune failed: %v"
	gcLogRemovalWarningTemplateConstant       = "failed to remove stale gc log: %v"
	housekeeperExecutorMissingMessageConstant = "housekeeper requires a git executor"
)

// ErrHousekeeperExecutorNotConfigured indicates the housekeeper was constructed without an executor.
var ErrHousekeeperExecutorNotConfigured = errors.New(housekeeperExecutorMissingMessageConstant)

// FileRemover deletes a file from disk, matching the os.Remove signature.
type FileRemover func(path string) error

// Housekeeper runs repository garbage collection with a prune fallback.
type Housekeeper struct {
	executor   shared.GitExecutor
	removeFile FileRemover
}

// NewHousekeeper constructs a Housekeeper backed by the provided executor.
// A nil remover defaults to os.Remove.
func NewHousekeeper(executor shared.GitExecutor, removeFile FileRemover) (*Housekeeper, error) {
	if executor == nil {
		return nil, ErrHousekeeperExecutorNotConfigured
	}
	if removeFile == nil {
		removeFile = os.Remove
	}
	return &Housekeeper{executor: executor, removeFile: removeFile}, nil
}

// Run attempts garbage collection and degrades to object pruning on failure.
// Housekeeping problems never abort a run; they surface as warning strings.
func (housekeeper *Housekeeper) Run(executionContext context.Context, repositoryPath string) []string {
	_, gcError := housekeeper.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gcSubcommandConstant, gcAutoFlagConstant, gcForceFlagConstant},
		WorkingDirectory: repositoryPath,
	})
	if gcError == nil {
		return nil
	}

	warnings := []string{}

	_, pruneError := housekeeper.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{pruneSubcommandConstant},
		WorkingDirectory: repositoryPath,
	})
	if pruneError != nil {
		warnings = append(warnings, fmt.Sprintf(housekeepingFailedWarningTemplateConstant, pruneError))
		return warnings
	}
	warnings = append(warnings, fmt.Sprintf(housekeepingPruneWarningTemplateConstant, gcError))

	gcLogPath := filepath.Join(repositoryPath, gitDirectoryNameConstant, gcLogFileNameConstant)
	removalError := housekeeper.removeFile(gcLogPath)
	if removalError != nil && !os.IsNotExist(removalError) {
		warnings = append(warnings, fmt.Sprintf(gcLogRemovalWarningTemplateConstant, removalError))
	}

	return warnings
}
