package shared

import (
	"context"
	"time"

	"github.com/tavrin/freshen/internal/execshell"
)

const (
	// OriginRemoteNameConstant identifies the default remote a repository is refreshed against.
	OriginRemoteNameConstant = "origin"
	// MasterBranchNameConstant identifies the default root branch a repository is refreshed onto.
	MasterBranchNameConstant = "master"
)

// Clock abstracts time acquisition for deterministic testing.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the system time source.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// GitExecutor exposes the subset of shell execution used by repository services.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// GitRepositoryManager exposes repository-level git operations.
type GitRepositoryManager interface {
	IsInsideWorkTree(executionContext context.Context, repositoryPath string) (bool, error)
	GetCurrentBranch(executionContext context.Context, repositoryPath string) (string, error)
	CheckCleanWorktree(executionContext context.Context, repositoryPath string) (bool, error)
	ListRemotes(executionContext context.Context, repositoryPath string) ([]string, error)
	BranchExists(executionContext context.Context, repositoryPath string, branchName string) (bool, error)
	CheckoutBranch(executionContext context.Context, repositoryPath string, branchName string) error
	UpstreamBranch(executionContext context.Context, repositoryPath string, branchName string) (string, bool, error)
	RemoteRefExists(executionContext context.Context, repositoryPath string, remoteReference string) (bool, error)
}
