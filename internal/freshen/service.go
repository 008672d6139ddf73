package freshen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tavrin/freshen/internal/execshell"
	"github.com/tavrin/freshen/internal/shared"
)

const (
	repositoryPathRequiredMessageConstant   = "repository path must be provided"
	gitExecutorMissingMessageConstant       = "git executor not configured"
	repositoryManagerMissingMessageConstant = "repository manager not configured"
	clockMissingMessageConstant             = "clock not configured"
	notARepositoryMessageConstant           = "not inside a git repository"
	branchIgnoredMessageConstant            = "current branch is listed in the ignore file"
	rootBranchUnresolvedMessageConstant     = "root branch could not be resolved or checked out"

	preflightFailureTemplateConstant      = "preflight: %w"
	ignoreLoadFailureTemplateConstant     = "ignore list: %w"
	stashStageFailureTemplateConstant     = "stash: %w"
	remoteSyncFailureTemplateConstant     = "remote sync: %w"
	rootSwitchFailureTemplateConstant     = "root switch: %w"
	staleStageFailureTemplateConstant     = "stale branches: %w"
	upstreamStageFailureTemplateConstant  = "upstream cleanup: %w"
	reconcileStageFailureTemplateConstant = "branch reconcile: %w"
	tagSyncStageFailureTemplateConstant   = "tag sync: %w"
	stashRestoreFailureTemplateConstant   = "stash restore: %w"

	statusLinePrefixConstant                  = "freshen: "
	fastForwardWarningTemplateConstant        = "fast-forward pull of %s from %s failed; pass --reset-root to hard-reset the root branch"
	staleLocalReportHeaderTemplateConstant    = "stale local branches merged into %s (pass --force-delete to remove):"
	staleRemoteReportHeaderTemplateConstant   = "stale remote branches merged into %s (pass --force-delete to remove):"
	staleBranchReportLineTemplateConstant     = "  %s"
	localDeletionWarningTemplateConstant      = "skipped local branch %s: %v"
	originalBranchGoneMessageTemplateConstant = "branch %s no longer exists, staying on %s"
	rebaseMergeConflictWarningMessageConstant = "both --rebase and --merge requested; doing neither"
	stashKeptMessageTemplateConstant          = "stashed changes kept as %s (%s); run 'git stash pop %s' to restore"
	stashMissingWarningTemplateConstant       = "stash entry labeled %s was not found; nothing restored"
	deletedTagsMessageTemplateConstant        = "deleted %d local tag(s) absent from %s"

	remotePruneSubcommandConstant   = "prune"
	remoteSubcommandConstant        = "remote"
	fetchSubcommandConstant         = "fetch"
	cleanSubcommandConstant         = "clean"
	cleanForceFlagsConstant         = "-ffdx"
	resetSubcommandConstant         = "reset"
	resetHardFlagConstant           = "--hard"
	pullSubcommandConstant          = "pull"
	pullFastForwardFlagConstant     = "--ff-only"
	branchDeleteFlagConstant        = "-d"
	branchUnsetUpstreamFlagConstant = "--unset-upstream"
	pushSubcommandConstant          = "push"
	pushDeleteFlagConstant          = "--delete"
	rebaseSubcommandConstant        = "rebase"
	mergeSubcommandConstant         = "merge"
	mergeNoEditFlagConstant         = "--no-edit"
	detachedHeadReferenceConstant   = "HEAD"
)

// ErrRepositoryPathRequired indicates the repository path option was empty.
var ErrRepositoryPathRequired = errors.New(repositoryPathRequiredMessageConstant)

// ErrGitExecutorNotConfigured indicates the git executor dependency was missing.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// ErrRepositoryManagerNotConfigured indicates the repository manager dependency was missing.
var ErrRepositoryManagerNotConfigured = errors.New(repositoryManagerMissingMessageConstant)

// ErrClockNotConfigured indicates the clock dependency was missing.
var ErrClockNotConfigured = errors.New(clockMissingMessageConstant)

// ErrNotARepository indicates the working directory is not inside a git work tree.
var ErrNotARepository = errors.New(notARepositoryMessageConstant)

// ErrBranchIgnored indicates the current branch is exempted by the ignore file.
var ErrBranchIgnored = errors.New(branchIgnoredMessageConstant)

// ErrRootBranchUnresolved indicates the root branch does not exist and cannot be checked out.
var ErrRootBranchUnresolved = errors.New(rootBranchUnresolvedMessageConstant)

// Dependencies enumerates external collaborators required by the freshen service.
type Dependencies struct {
	GitExecutor       shared.GitExecutor
	RepositoryManager shared.GitRepositoryManager
	Clock             shared.Clock
	IgnoreListLoader  *IgnoreListLoader
	Output            io.Writer
}

// Options configures a freshen run. The record is built once by the command
// layer and never mutated afterwards.
type Options struct {
	RepositoryPath string
	RemoteName     string
	RootBranch     string
	IgnoreFilePath string
	ForceDelete    bool
	Merge          bool
	Rebase         bool
	SyncTags       bool
	ResetRoot      bool
	Wipe           bool
	ApplyStash     bool
	LocalOnly      bool
}

// Result captures the observable outcomes of a freshen run.
type Result struct {
	OriginalBranch        string
	FinalBranch           string
	StashCreated          bool
	StashRestored         bool
	StashLabel            string
	StaleLocalBranches    []string
	StaleRemoteBranches   []string
	DeletedLocalBranches  []string
	DeletedRemoteBranches []string
	DeletedTags           []string
	Warnings              []string
}

// Service reconciles a repository against its root branch by sequencing git operations.
type Service struct {
	executor      shared.GitExecutor
	manager       shared.GitRepositoryManager
	clock         shared.Clock
	ignoreLoader  *IgnoreListLoader
	stashKeeper   *StashKeeper
	staleResolver *StaleBranchResolver
	tagSyncer     *TagSyncer
	housekeeper   *Housekeeper
	output        io.Writer
}

// NewService constructs a Service from the provided dependencies.
func NewService(dependencies Dependencies) (*Service, error) {
	if dependencies.GitExecutor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	if dependencies.RepositoryManager == nil {
		return nil, ErrRepositoryManagerNotConfigured
	}
	if dependencies.Clock == nil {
		return nil, ErrClockNotConfigured
	}

	ignoreLoader := dependencies.IgnoreListLoader
	if ignoreLoader == nil {
		ignoreLoader = NewIgnoreListLoader(nil)
	}

	output := dependencies.Output
	if output == nil {
		output = io.Discard
	}

	stashKeeper, stashKeeperError := NewStashKeeper(dependencies.GitExecutor, dependencies.Clock)
	if stashKeeperError != nil {
		return nil, stashKeeperError
	}
	staleResolver, staleResolverError := NewStaleBranchResolver(dependencies.GitExecutor)
	if staleResolverError != nil {
		return nil, staleResolverError
	}
	tagSyncer, tagSyncerError := NewTagSyncer(dependencies.GitExecutor)
	if tagSyncerError != nil {
		return nil, tagSyncerError
	}
	housekeeper, housekeeperError := NewHousekeeper(dependencies.GitExecutor, nil)
	if housekeeperError != nil {
		return nil, housekeeperError
	}

	return &Service{
		executor:      dependencies.GitExecutor,
		manager:       dependencies.RepositoryManager,
		clock:         dependencies.Clock,
		ignoreLoader:  ignoreLoader,
		stashKeeper:   stashKeeper,
		staleResolver: staleResolver,
		tagSyncer:     tagSyncer,
		housekeeper:   housekeeper,
		output:        output,
	}, nil
}

// Freshen runs the full reconciliation workflow against the repository.
func (service *Service) Freshen(executionContext context.Context, options Options) (Result, error) {
	sanitizedOptions, optionsError := sanitizeOptions(options)
	if optionsError != nil {
		return Result{}, optionsError
	}

	result := Result{}

	originalBranch, preflightError := service.preflight(executionContext, sanitizedOptions)
	if preflightError != nil {
		return result, preflightError
	}
	result.OriginalBranch = originalBranch
	result.FinalBranch = originalBranch

	stashHandle, stashCreated, stashError := service.stashDirtyWork(executionContext, sanitizedOptions)
	if stashError != nil {
		return result, fmt.Errorf(stashStageFailureTemplateConstant, stashError)
	}
	result.StashCreated = stashCreated
	result.StashLabel = stashHandle.Label

	remoteConfigured, remoteSyncError := service.syncRemote(executionContext, sanitizedOptions)
	if remoteSyncError != nil {
		return result, fmt.Errorf(remoteSyncFailureTemplateConstant, remoteSyncError)
	}

	rootSwitchError := service.switchToRoot(executionContext, sanitizedOptions, remoteConfigured, &result)
	if rootSwitchError != nil {
		return result, fmt.Errorf(rootSwitchFailureTemplateConstant, rootSwitchError)
	}
	result.FinalBranch = sanitizedOptions.RootBranch

	staleError := service.handleStaleBranches(executionContext, sanitizedOptions, remoteConfigured, &result)
	if staleError != nil {
		return result, fmt.Errorf(staleStageFailureTemplateConstant, staleError)
	}

	upstreamError := service.cleanupGoneUpstream(executionContext, sanitizedOptions, originalBranch)
	if upstreamError != nil {
		return result, fmt.Errorf(upstreamStageFailureTemplateConstant, upstreamError)
	}

	reconcileError := service.reconcileOriginalBranch(executionContext, sanitizedOptions, remoteConfigured, originalBranch, &result)
	if reconcileError != nil {
		return result, fmt.Errorf(reconcileStageFailureTemplateConstant, reconcileError)
	}

	if sanitizedOptions.SyncTags && remoteConfigured {
		deletedTags, tagSyncError := service.tagSyncer.Sync(executionContext, sanitizedOptions.RepositoryPath, sanitizedOptions.RemoteName)
		if tagSyncError != nil {
			return result, fmt.Errorf(tagSyncStageFailureTemplateConstant, tagSyncError)
		}
		result.DeletedTags = deletedTags
		if len(deletedTags) > 0 {
			service.printStatus(fmt.Sprintf(deletedTagsMessageTemplateConstant, len(deletedTags), sanitizedOptions.RemoteName))
		}
	}

	if stashCreated {
		restoreError := service.restoreStash(executionContext, sanitizedOptions, stashHandle, &result)
		if restoreError != nil {
			return result, fmt.Errorf(stashRestoreFailureTemplateConstant, restoreError)
		}
	}

	// Housekeeping degradation is recorded on the result but never shown to the user.
	result.Warnings = append(result.Warnings, service.housekeeper.Run(executionContext, sanitizedOptions.RepositoryPath)...)

	return result, nil
}

func sanitizeOptions(options Options) (Options, error) {
	sanitized := options

	sanitized.RepositoryPath = strings.TrimSpace(options.RepositoryPath)
	if len(sanitized.RepositoryPath) == 0 {
		return Options{}, ErrRepositoryPathRequired
	}

	sanitized.RemoteName = strings.TrimSpace(options.RemoteName)
	if len(sanitized.RemoteName) == 0 {
		sanitized.RemoteName = shared.OriginRemoteNameConstant
	}

	sanitized.RootBranch = strings.TrimSpace(options.RootBranch)
	if len(sanitized.RootBranch) == 0 {
		sanitized.RootBranch = shared.MasterBranchNameConstant
	}

	sanitized.IgnoreFilePath = strings.TrimSpace(options.IgnoreFilePath)

	return sanitized, nil
}

// preflight validates the repository, establishes the original branch, and
// enforces the ignore list before any state is mutated.
func (service *Service) preflight(executionContext context.Context, options Options) (string, error) {
	insideWorkTree, workTreeError := service.manager.IsInsideWorkTree(executionContext, options.RepositoryPath)
	if workTreeError != nil {
		return "", fmt.Errorf(preflightFailureTemplateConstant, workTreeError)
	}
	if !insideWorkTree {
		return "", fmt.Errorf(preflightFailureTemplateConstant, ErrNotARepository)
	}

	originalBranch, branchError := service.manager.GetCurrentBranch(executionContext, options.RepositoryPath)
	if branchError != nil || len(originalBranch) == 0 || originalBranch == detachedHeadReferenceConstant {
		// A repository with no commits has no resolvable HEAD; checking out the
		// root branch is the only way to establish a starting point.
		if branchError != nil && !execshell.IsExitError(branchError) {
			return "", fmt.Errorf(preflightFailureTemplateConstant, branchError)
		}
		checkoutError := service.manager.CheckoutBranch(executionContext, options.RepositoryPath, options.RootBranch)
		if checkoutError != nil {
			return "", fmt.Errorf(preflightFailureTemplateConstant, fmt.Errorf("%w: %s", ErrRootBranchUnresolved, options.RootBranch))
		}
		originalBranch = options.RootBranch
	}

	ignoreList, ignoreLoadError := service.ignoreLoader.Load(options.RepositoryPath, options.IgnoreFilePath)
	if ignoreLoadError != nil {
		return "", fmt.Errorf(ignoreLoadFailureTemplateConstant, ignoreLoadError)
	}
	if ignoreList.Contains(originalBranch) {
		return "", fmt.Errorf(preflightFailureTemplateConstant, fmt.Errorf("%w: %s", ErrBranchIgnored, originalBranch))
	}

	return originalBranch, nil
}

func (service *Service) stashDirtyWork(executionContext context.Context, options Options) (StashHandle, bool, error) {
	worktreeClean, cleanError := service.manager.CheckCleanWorktree(executionContext, options.RepositoryPath)
	if cleanError != nil {
		return StashHandle{}, false, cleanError
	}
	if worktreeClean {
		return StashHandle{}, false, nil
	}

	stashHandle, saveError := service.stashKeeper.Save(executionContext, options.RepositoryPath)
	if saveError != nil {
		return StashHandle{}, false, saveError
	}
	return stashHandle, true, nil
}

// syncRemote prunes, fetches, and prunes again. The second prune covers
// tracking refs the fetch itself invalidated.
func (service *Service) syncRemote(executionContext context.Context, options Options) (bool, error) {
	remoteNames, remoteListError := service.manager.ListRemotes(executionContext, options.RepositoryPath)
	if remoteListError != nil {
		return false, remoteListError
	}

	remoteConfigured := false
	for _, remoteName := range remoteNames {
		if remoteName == options.RemoteName {
			remoteConfigured = true
			break
		}
	}
	if !remoteConfigured {
		return false, nil
	}

	syncCommands := [][]string{
		{remoteSubcommandConstant, remotePruneSubcommandConstant, options.RemoteName},
		{fetchSubcommandConstant, options.RemoteName},
		{remoteSubcommandConstant, remotePruneSubcommandConstant, options.RemoteName},
	}
	for _, syncArguments := range syncCommands {
		_, syncError := service.executor.ExecuteGit(executionContext, execshell.CommandDetails{
			Arguments:        syncArguments,
			WorkingDirectory: options.RepositoryPath,
		})
		if syncError != nil {
			return true, syncError
		}
	}

	return true, nil
}

func (service *Service) switchToRoot(executionContext context.Context, options Options, remoteConfigured bool, result *Result) error {
	if options.Wipe {
		_, wipeError := service.executor.ExecuteGit(executionContext, execshell.CommandDetails{
			Arguments:        []string{cleanSubcommandConstant, cleanForceFlagsConstant},
			WorkingDirectory: options.RepositoryPath,
		})
		if wipeError != nil {
			return wipeError
		}
	}

	checkoutError := service.manager.CheckoutBranch(executionContext, options.RepositoryPath, options.RootBranch)
	if checkoutError != nil {
		return fmt.Errorf("%w: %s", ErrRootBranchUnresolved, options.RootBranch)
	}

	if !remoteConfigured {
		return nil
	}

	remoteRootReference := options.RemoteName + "/" + options.RootBranch
	if options.ResetRoot {
		_, resetError := service.executor.ExecuteGit(executionContext, execshell.CommandDetails{
			Arguments:        []string{resetSubcommandConstant, resetHardFlagConstant, remoteRootReference},
			WorkingDirectory: options.RepositoryPath,
		})
		if resetError != nil {
			return resetError
		}
	}

	_, pullError := service.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{pullSubcommandConstant, pullFastForwardFlagConstant, options.RemoteName, options.RootBranch},
		WorkingDirectory: options.RepositoryPath,
	})
	if pullError != nil {
		if !execshell.IsExitError(pullError) {
			return pullError
		}
		service.warn(result, fmt.Sprintf(fastForwardWarningTemplateConstant, options.RootBranch, options.RemoteName))
	}

	return nil
}

func (service *Service) handleStaleBranches(executionContext context.Context, options Options, remoteConfigured bool, result *Result) error {
	ignoreList, ignoreLoadError := service.ignoreLoader.Load(options.RepositoryPath, options.IgnoreFilePath)
	if ignoreLoadError != nil {
		return ignoreLoadError
	}

	staleBranches, resolveError := service.staleResolver.Resolve(executionContext, options.RepositoryPath, options.RemoteName, options.RootBranch, ignoreList)
	if resolveError != nil {
		return resolveError
	}
	result.StaleLocalBranches = staleBranches.LocalNames
	result.StaleRemoteBranches = staleBranches.RemoteNames

	if !options.ForceDelete {
		if len(staleBranches.LocalNames) > 0 {
			service.printStatus(fmt.Sprintf(staleLocalReportHeaderTemplateConstant, options.RootBranch))
			for _, staleName := range staleBranches.LocalNames {
				service.printStatus(fmt.Sprintf(staleBranchReportLineTemplateConstant, staleName))
			}
		}
		if len(staleBranches.RemoteNames) > 0 {
			service.printStatus(fmt.Sprintf(staleRemoteReportHeaderTemplateConstant, options.RootBranch))
			for _, staleName := range staleBranches.RemoteNames {
				service.printStatus(fmt.Sprintf(staleBranchReportLineTemplateConstant, staleName))
			}
		}
		return nil
	}

	for _, staleName := range staleBranches.LocalNames {
		_, deletionError := service.executor.ExecuteGit(executionContext, execshell.CommandDetails{
			Arguments:        []string{branchSubcommandConstant, branchDeleteFlagConstant, staleName},
			WorkingDirectory: options.RepositoryPath,
		})
		if deletionError != nil {
			// The soft delete refuses branches git does not consider fully merged.
			if execshell.IsExitError(deletionError) {
				service.warn(result, fmt.Sprintf(localDeletionWarningTemplateConstant, staleName, deletionError))
				continue
			}
			return deletionError
		}
		result.DeletedLocalBranches = append(result.DeletedLocalBranches, staleName)
	}

	if options.LocalOnly || !remoteConfigured {
		return nil
	}

	for _, staleName := range staleBranches.RemoteNames {
		_, deletionError := service.executor.ExecuteGit(executionContext, execshell.CommandDetails{
			Arguments:        []string{pushSubcommandConstant, options.RemoteName, pushDeleteFlagConstant, staleName},
			WorkingDirectory: options.RepositoryPath,
		})
		if deletionError != nil {
			return deletionError
		}
		result.DeletedRemoteBranches = append(result.DeletedRemoteBranches, staleName)
	}

	return nil
}

// cleanupGoneUpstream drops the tracking link of the original branch when its
// upstream no longer resolves to a live remote-tracking ref.
func (service *Service) cleanupGoneUpstream(executionContext context.Context, options Options, originalBranch string) error {
	upstreamReference, upstreamConfigured, upstreamError := service.manager.UpstreamBranch(executionContext, options.RepositoryPath, originalBranch)
	if upstreamError != nil {
		return upstreamError
	}
	if !upstreamConfigured {
		return nil
	}

	upstreamAlive, aliveError := service.manager.RemoteRefExists(executionContext, options.RepositoryPath, upstreamReference)
	if aliveError != nil {
		return aliveError
	}
	if upstreamAlive {
		return nil
	}

	_, unsetError := service.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{branchSubcommandConstant, branchUnsetUpstreamFlagConstant, originalBranch},
		WorkingDirectory: options.RepositoryPath,
	})
	return unsetError
}

func (service *Service) reconcileOriginalBranch(executionContext context.Context, options Options, remoteConfigured bool, originalBranch string, result *Result) error {
	if originalBranch != options.RootBranch {
		branchStillExists, existsError := service.manager.BranchExists(executionContext, options.RepositoryPath, originalBranch)
		if existsError != nil {
			return existsError
		}
		if branchStillExists {
			checkoutError := service.manager.CheckoutBranch(executionContext, options.RepositoryPath, originalBranch)
			if checkoutError != nil {
				return checkoutError
			}
			result.FinalBranch = originalBranch
		} else {
			service.printStatus(fmt.Sprintf(originalBranchGoneMessageTemplateConstant, originalBranch, options.RootBranch))
			result.FinalBranch = options.RootBranch
		}
	}

	if options.Rebase && options.Merge {
		service.warn(result, rebaseMergeConflictWarningMessageConstant)
		return nil
	}
	if !remoteConfigured {
		return nil
	}

	if options.Rebase {
		_, rebaseError := service.executor.ExecuteGit(executionContext, execshell.CommandDetails{
			Arguments:        []string{rebaseSubcommandConstant, options.RootBranch},
			WorkingDirectory: options.RepositoryPath,
		})
		return rebaseError
	}
	if options.Merge {
		_, mergeError := service.executor.ExecuteGit(executionContext, execshell.CommandDetails{
			Arguments:        []string{mergeSubcommandConstant, mergeNoEditFlagConstant, options.RootBranch},
			WorkingDirectory: options.RepositoryPath,
		})
		return mergeError
	}

	return nil
}

func (service *Service) restoreStash(executionContext context.Context, options Options, stashHandle StashHandle, result *Result) error {
	stashReference, stashFound, locateError := service.stashKeeper.Locate(executionContext, options.RepositoryPath, stashHandle)
	if locateError != nil {
		return locateError
	}
	if !stashFound {
		service.warn(result, fmt.Sprintf(stashMissingWarningTemplateConstant, stashHandle.Label))
		return nil
	}

	if !options.ApplyStash {
		service.printStatus(fmt.Sprintf(stashKeptMessageTemplateConstant, stashReference, stashHandle.Label, stashReference))
		return nil
	}

	popError := service.stashKeeper.Pop(executionContext, options.RepositoryPath, stashReference)
	if popError != nil {
		return popError
	}
	result.StashRestored = true
	return nil
}

func (service *Service) warn(result *Result, warningMessage string) {
	result.Warnings = append(result.Warnings, warningMessage)
	service.printStatus(warningMessage)
}

func (service *Service) printStatus(statusMessage string) {
	fmt.Fprintln(service.output, statusLinePrefixConstant+statusMessage)
}
