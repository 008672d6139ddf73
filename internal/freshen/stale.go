package freshen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tavrin/freshen/internal/execshell"
	"github.com/tavrin/freshen/internal/shared"
)

const (
	branchSubcommandConstant                    = "branch"
	branchNoColorFlagConstant                   = "--no-color"
	branchMergedFlagConstant                    = "--merged"
	branchRemoteTrackingFlagConstant            = "-r"
	symbolicRefMarkerConstant                   = "->"
	currentBranchMarkerConstant                 = "*"
	remoteNameSeparatorConstant                 = "/"
	mergedLocalListFailureTemplateConstant      = "failed to list local branches merged into %s: %w"
	mergedRemoteListFailureTemplateConstant     = "failed to list remote branches merged into %s: %w"
	staleResolverExecutorMissingMessageConstant = "stale branch resolver requires a git executor"
)

// ErrStaleResolverExecutorNotConfigured indicates the resolver was constructed without an executor.
var ErrStaleResolverExecutorNotConfigured = errors.New(staleResolverExecutorMissingMessageConstant)

// StaleBranches partitions branches merged into root by where they live.
type StaleBranches struct {
	LocalNames  []string
	RemoteNames []string
}

// StaleBranchResolver computes the branches already merged into the root branch.
type StaleBranchResolver struct {
	executor shared.GitExecutor
}

// NewStaleBranchResolver constructs a resolver backed by the provided executor.
func NewStaleBranchResolver(executor shared.GitExecutor) (*StaleBranchResolver, error) {
	if executor == nil {
		return nil, ErrStaleResolverExecutorNotConfigured
	}
	return &StaleBranchResolver{executor: executor}, nil
}

// Resolve lists local and remote-tracking branches fully merged into the root branch,
// excluding the root itself and every ignore-list entry.
func (resolver *StaleBranchResolver) Resolve(executionContext context.Context, repositoryPath string, remoteName string, rootBranch string, ignoreList IgnoreList) (StaleBranches, error) {
	localListResult, localListError := resolver.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{branchSubcommandConstant, branchNoColorFlagConstant, branchMergedFlagConstant, rootBranch},
		WorkingDirectory: repositoryPath,
	})
	if localListError != nil {
		return StaleBranches{}, fmt.Errorf(mergedLocalListFailureTemplateConstant, rootBranch, localListError)
	}

	remoteListResult, remoteListError := resolver.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{branchSubcommandConstant, branchNoColorFlagConstant, branchRemoteTrackingFlagConstant, branchMergedFlagConstant, rootBranch},
		WorkingDirectory: repositoryPath,
	})
	if remoteListError != nil {
		return StaleBranches{}, fmt.Errorf(mergedRemoteListFailureTemplateConstant, rootBranch, remoteListError)
	}

	staleBranches := StaleBranches{
		LocalNames:  parseMergedLocalBranches(localListResult.StandardOutput, rootBranch, ignoreList),
		RemoteNames: parseMergedRemoteBranches(remoteListResult.StandardOutput, remoteName, rootBranch, ignoreList),
	}
	return staleBranches, nil
}

func parseMergedLocalBranches(listOutput string, rootBranch string, ignoreList IgnoreList) []string {
	localNames := []string{}
	for _, outputLine := range strings.Split(listOutput, "\n") {
		branchName := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(outputLine), currentBranchMarkerConstant))
		if len(branchName) == 0 || strings.Contains(branchName, symbolicRefMarkerConstant) {
			continue
		}
		if branchName == rootBranch || ignoreList.Contains(branchName) {
			continue
		}
		localNames = append(localNames, branchName)
	}
	return localNames
}

func parseMergedRemoteBranches(listOutput string, remoteName string, rootBranch string, ignoreList IgnoreList) []string {
	remotePrefix := remoteName + remoteNameSeparatorConstant
	remoteNames := []string{}
	for _, outputLine := range strings.Split(listOutput, "\n") {
		trimmedLine := strings.TrimSpace(outputLine)
		if len(trimmedLine) == 0 || strings.Contains(trimmedLine, symbolicRefMarkerConstant) {
			continue
		}
		if !strings.HasPrefix(trimmedLine, remotePrefix) {
			continue
		}
		branchName := strings.TrimPrefix(trimmedLine, remotePrefix)
		if len(branchName) == 0 || branchName == rootBranch || ignoreList.Contains(branchName) {
			continue
		}
		remoteNames = append(remoteNames, branchName)
	}
	return remoteNames
}
