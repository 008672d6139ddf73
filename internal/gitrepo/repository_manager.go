package gitrepo

import (
	"context"
	"errors"
	"strings"

	"github.com/tavrin/freshen/internal/execshell"
)

const (
	trueLiteralConstant                    = "true"
	gitTerminalPromptEnvironmentName       = "GIT_TERMINAL_PROMPT"
	gitTerminalPromptDisabledValueConstant = "0"
)

var (
	// ErrExecutorNotConfigured indicates the repository manager was constructed without a git executor.
	ErrExecutorNotConfigured = errors.New("git executor not configured")
)

// GitExecutor captures the shell execution dependency used by RepositoryManager.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// RepositoryManager performs repository-level git interrogations and mutations.
type RepositoryManager struct {
	executor GitExecutor
}

// NewRepositoryManager constructs a RepositoryManager backed by the provided executor.
func NewRepositoryManager(executor GitExecutor) (*RepositoryManager, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}
	return &RepositoryManager{executor: executor}, nil
}

// IsInsideWorkTree reports whether the path resides inside a git working tree.
func (manager *RepositoryManager) IsInsideWorkTree(executionContext context.Context, repositoryPath string) (bool, error) {
	result, executionError := manager.runGit(executionContext, repositoryPath, "rev-parse", "--is-inside-work-tree")
	if executionError != nil {
		if execshell.IsExitError(executionError) {
			return false, nil
		}
		return false, executionError
	}
	return strings.TrimSpace(result.StandardOutput) == trueLiteralConstant, nil
}

// GetCurrentBranch resolves the branch currently checked out at the path.
func (manager *RepositoryManager) GetCurrentBranch(executionContext context.Context, repositoryPath string) (string, error) {
	result, executionError := manager.runGit(executionContext, repositoryPath, "rev-parse", "--abbrev-ref", "HEAD")
	if executionError != nil {
		return "", executionError
	}
	return strings.TrimSpace(result.StandardOutput), nil
}

// CheckCleanWorktree reports whether the repository has no staged or unstaged changes.
func (manager *RepositoryManager) CheckCleanWorktree(executionContext context.Context, repositoryPath string) (bool, error) {
	result, executionError := manager.runGit(executionContext, repositoryPath, "status", "--porcelain")
	if executionError != nil {
		return false, executionError
	}
	return len(strings.TrimSpace(result.StandardOutput)) == 0, nil
}

// ListRemotes returns the names of the remotes configured for the repository.
func (manager *RepositoryManager) ListRemotes(executionContext context.Context, repositoryPath string) ([]string, error) {
	result, executionError := manager.runGit(executionContext, repositoryPath, "remote")
	if executionError != nil {
		return nil, executionError
	}

	remoteNames := []string{}
	for _, outputLine := range strings.Split(result.StandardOutput, "\n") {
		trimmedLine := strings.TrimSpace(outputLine)
		if len(trimmedLine) == 0 {
			continue
		}
		remoteNames = append(remoteNames, trimmedLine)
	}
	return remoteNames, nil
}

// BranchExists reports whether a local branch with the supplied name exists.
func (manager *RepositoryManager) BranchExists(executionContext context.Context, repositoryPath string, branchName string) (bool, error) {
	_, executionError := manager.runGit(executionContext, repositoryPath, "rev-parse", "--verify", "--quiet", "refs/heads/"+branchName)
	if executionError != nil {
		if execshell.IsExitError(executionError) {
			return false, nil
		}
		return false, executionError
	}
	return true, nil
}

// CheckoutBranch switches the repository to the named branch.
func (manager *RepositoryManager) CheckoutBranch(executionContext context.Context, repositoryPath string, branchName string) error {
	_, executionError := manager.runGit(executionContext, repositoryPath, "checkout", branchName)
	return executionError
}

// UpstreamBranch resolves the upstream tracking reference for the named branch.
// The boolean result reports whether an upstream is configured.
func (manager *RepositoryManager) UpstreamBranch(executionContext context.Context, repositoryPath string, branchName string) (string, bool, error) {
	result, executionError := manager.runGit(executionContext, repositoryPath, "rev-parse", "--abbrev-ref", "--symbolic-full-name", branchName+"@{u}")
	if executionError != nil {
		if execshell.IsExitError(executionError) {
			return "", false, nil
		}
		return "", false, executionError
	}

	upstreamReference := strings.TrimSpace(result.StandardOutput)
	if len(upstreamReference) == 0 {
		return "", false, nil
	}
	return upstreamReference, true, nil
}

// RemoteRefExists reports whether the remote-tracking reference is present locally.
func (manager *RepositoryManager) RemoteRefExists(executionContext context.Context, repositoryPath string, remoteReference string) (bool, error) {
	_, executionError := manager.runGit(executionContext, repositoryPath, "rev-parse", "--verify", "--quiet", "refs/remotes/"+remoteReference)
	if executionError != nil {
		if execshell.IsExitError(executionError) {
			return false, nil
		}
		return false, executionError
	}
	return true, nil
}

func (manager *RepositoryManager) runGit(executionContext context.Context, repositoryPath string, arguments ...string) (execshell.ExecutionResult, error) {
	commandDetails := execshell.CommandDetails{
		Arguments:        arguments,
		WorkingDirectory: repositoryPath,
		EnvironmentVariables: map[string]string{
			gitTerminalPromptEnvironmentName: gitTerminalPromptDisabledValueConstant,
		},
	}
	return manager.executor.ExecuteGit(executionContext, commandDetails)
}
