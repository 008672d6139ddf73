package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	commandLabelTemplateConstant            = "%s%s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	commandArgumentsJoinSeparatorConstant   = " "
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	defaultWorkingDirectoryLabelConstant    = "current directory"
	fallbackUnknownValueLabelConstant       = "unknown"
)

const (
	gitRevParseSubcommandNameConstant  = "rev-parse"
	gitWorkTreeFlagConstant            = "--is-inside-work-tree"
	gitAbbrevRefFlagConstant           = "--abbrev-ref"
	gitSymbolicFullNameFlagConstant    = "--symbolic-full-name"
	gitHeadReferenceConstant           = "HEAD"
	gitUpstreamReferenceSuffixConstant = "@{u}"
	gitStatusSubcommandNameConstant    = "status"
	gitCheckoutSubcommandNameConstant  = "checkout"
	gitBranchSubcommandNameConstant    = "branch"
	gitMergedFlagConstant              = "--merged"
	gitRemoteTrackingFlagConstant      = "-r"
	gitUnsetUpstreamFlagConstant       = "--unset-upstream"
	gitDeleteFlagConstant              = "--delete"
	gitSoftDeleteFlagConstant          = "-d"
	gitFetchSubcommandNameConstant     = "fetch"
	gitPullSubcommandNameConstant      = "pull"
	gitPushSubcommandNameConstant      = "push"
	gitRemoteSubcommandNameConstant    = "remote"
	gitRemotePruneSubcommandConstant   = "prune"
	gitStashSubcommandNameConstant     = "stash"
	gitStashPushSubcommandConstant     = "push"
	gitStashListSubcommandConstant     = "list"
	gitStashPopSubcommandConstant      = "pop"
	gitTagSubcommandNameConstant       = "tag"
	gitTagListFlagConstant             = "--list"
	gitLSRemoteSubcommandNameConstant  = "ls-remote"
	gitTagsFlagConstant                = "--tags"
	gitResetSubcommandNameConstant     = "reset"
	gitRebaseSubcommandNameConstant    = "rebase"
	gitMergeSubcommandNameConstant     = "merge"
	gitCleanSubcommandNameConstant     = "clean"
	gitGCSubcommandNameConstant        = "gc"
	gitPruneSubcommandNameConstant     = "prune"
	gitMessageFlagConstant             = "-m"
)

const (
	gitWorkTreeStartTemplateConstant                  = "Analyzing repository at %s"
	gitWorkTreeSuccessTemplateConstant                = "%s is a Git repository"
	gitWorkTreeFailureTemplateConstant                = "Could not confirm %s is a Git repository (exit code %d%s)"
	gitWorkTreeExecutionFailureTemplateConstant       = "Could not analyze %s: %s"
	gitCurrentBranchStartTemplateConstant             = "Identifying current branch in %s"
	gitCurrentBranchSuccessTemplateConstant           = "Current branch in %s is %s"
	gitCurrentBranchDetachedSuccessTemplateConstant   = "%s is in a detached HEAD state"
	gitCurrentBranchFailureTemplateConstant           = "Failed to identify current branch in %s (exit code %d%s)"
	gitCurrentBranchExecutionFailureTemplateConstant  = "Unable to identify current branch in %s: %s"
	gitUpstreamBranchStartTemplateConstant            = "Checking upstream branch configuration in %s"
	gitUpstreamBranchSuccessTemplateConstant          = "Upstream branch in %s is %s"
	gitUpstreamBranchMissingSuccessTemplateConstant   = "No upstream branch configured in %s"
	gitUpstreamBranchFailureTemplateConstant          = "Failed to check upstream branch configuration in %s (exit code %d%s)"
	gitUpstreamBranchExecutionFailureTemplateConstant = "Unable to check upstream branch configuration in %s: %s"
	gitRevisionStartTemplateConstant                  = "Resolving %s in %s"
	gitRevisionSuccessTemplateConstant                = "%s in %s resolved to %s"
	gitRevisionEmptySuccessTemplateConstant           = "%s in %s did not resolve to a revision"
	gitRevisionFailureTemplateConstant                = "Failed to resolve %s in %s (exit code %d%s)"
	gitRevisionExecutionFailureTemplateConstant       = "Unable to resolve %s in %s: %s"
	gitStatusStartTemplateConstant                    = "Reviewing working tree status in %s"
	gitStatusSuccessTemplateConstant                  = "Collected working tree status for %s"
	gitStatusFailureTemplateConstant                  = "Failed to review working tree status in %s (exit code %d%s)"
	gitStatusExecutionFailureTemplateConstant         = "Unable to review working tree status in %s: %s"
	gitCheckoutStartTemplateConstant                  = "Switching %s to branch %s"
	gitCheckoutSuccessTemplateConstant                = "%s now on branch %s"
	gitCheckoutFailureTemplateConstant                = "Failed to switch %s to branch %s (exit code %d%s)"
	gitCheckoutExecutionFailureTemplateConstant       = "Unable to switch %s to branch %s: %s"
)

const (
	gitMergedBranchesStartTemplateConstant            = "Listing branches merged into %s in %s"
	gitMergedBranchesSuccessTemplateConstant          = "Listed branches merged into %s in %s"
	gitMergedBranchesFailureTemplateConstant          = "Failed to list branches merged into %s in %s (exit code %d%s)"
	gitMergedBranchesExecutionFailureTemplateConstant = "Unable to list branches merged into %s in %s: %s"
	gitBranchDeletionStartTemplateConstant            = "Removing local branch %s in %s"
	gitBranchDeletionSuccessTemplateConstant          = "Removed local branch %s in %s"
	gitBranchDeletionFailureTemplateConstant          = "Failed to remove local branch %s in %s (exit code %d%s)"
	gitBranchDeletionExecutionFailureTemplateConstant = "Unable to remove local branch %s in %s: %s"
	gitUnsetUpstreamStartTemplateConstant             = "Dropping upstream tracking configuration in %s"
	gitUnsetUpstreamSuccessTemplateConstant           = "Dropped upstream tracking configuration in %s"
	gitUnsetUpstreamFailureTemplateConstant           = "Failed to drop upstream tracking configuration in %s (exit code %d%s)"
	gitUnsetUpstreamExecutionFailureTemplateConstant  = "Unable to drop upstream tracking configuration in %s: %s"
	gitFetchStartTemplateConstant                     = "Fetching from %s in %s"
	gitFetchSuccessTemplateConstant                   = "Fetched from %s in %s"
	gitFetchFailureTemplateConstant                   = "Failed to fetch from %s in %s (exit code %d%s)"
	gitFetchExecutionFailureTemplateConstant          = "Unable to fetch from %s in %s: %s"
	gitFetchAllRemotesLabelConstant                   = "all remotes"
	gitPullStartTemplateConstant                      = "Pulling %s from %s in %s"
	gitPullSuccessTemplateConstant                    = "Pulled %s from %s in %s"
	gitPullFailureTemplateConstant                    = "Failed to pull %s from %s in %s (exit code %d%s)"
	gitPullExecutionFailureTemplateConstant           = "Unable to pull %s from %s in %s: %s"
	gitPushDeletionStartTemplateConstant              = "Deleting remote branch %s from %s in %s"
	gitPushDeletionSuccessTemplateConstant            = "Deleted remote branch %s from %s in %s"
	gitPushDeletionFailureTemplateConstant            = "Failed to delete remote branch %s from %s in %s (exit code %d%s)"
	gitPushDeletionExecutionFailureTemplateConstant   = "Unable to delete remote branch %s from %s in %s: %s"
	gitRemoteListStartTemplateConstant                = "Listing configured remotes in %s"
	gitRemoteListSuccessTemplateConstant              = "Listed configured remotes in %s"
	gitRemoteListFailureTemplateConstant              = "Failed to list configured remotes in %s (exit code %d%s)"
	gitRemoteListExecutionFailureTemplateConstant     = "Unable to list configured remotes in %s: %s"
	gitRemotePruneStartTemplateConstant               = "Pruning stale tracking references for %s in %s"
	gitRemotePruneSuccessTemplateConstant             = "Pruned stale tracking references for %s in %s"
	gitRemotePruneFailureTemplateConstant             = "Failed to prune stale tracking references for %s in %s (exit code %d%s)"
	gitRemotePruneExecutionFailureTemplateConstant    = "Unable to prune stale tracking references for %s in %s: %s"
)

const (
	gitStashSaveStartTemplateConstant         = "Stashing uncommitted changes in %s as %q"
	gitStashSaveSuccessTemplateConstant       = "Stashed uncommitted changes in %s as %q"
	gitStashSaveFailureTemplateConstant       = "Failed to stash uncommitted changes in %s (exit code %d%s)"
	gitStashSaveExecutionFailureConstant      = "Unable to stash uncommitted changes in %s: %s"
	gitStashListStartTemplateConstant         = "Listing stash entries in %s"
	gitStashListSuccessTemplateConstant       = "Listed stash entries in %s"
	gitStashListFailureTemplateConstant       = "Failed to list stash entries in %s (exit code %d%s)"
	gitStashListExecutionFailureConstant      = "Unable to list stash entries in %s: %s"
	gitStashPopStartTemplateConstant          = "Restoring stash entry %s in %s"
	gitStashPopSuccessTemplateConstant        = "Restored stash entry %s in %s"
	gitStashPopFailureTemplateConstant        = "Failed to restore stash entry %s in %s (exit code %d%s)"
	gitStashPopExecutionFailureConstant       = "Unable to restore stash entry %s in %s: %s"
	gitTagListStartTemplateConstant           = "Listing local tags in %s"
	gitTagListSuccessTemplateConstant         = "Listed local tags in %s"
	gitTagListFailureTemplateConstant         = "Failed to list local tags in %s (exit code %d%s)"
	gitTagListExecutionFailureConstant        = "Unable to list local tags in %s: %s"
	gitTagDeletionStartTemplateConstant       = "Deleting local tag %s in %s"
	gitTagDeletionSuccessTemplateConstant     = "Deleted local tag %s in %s"
	gitTagDeletionFailureTemplateConstant     = "Failed to delete local tag %s in %s (exit code %d%s)"
	gitTagDeletionExecutionFailureConstant    = "Unable to delete local tag %s in %s: %s"
	gitLSRemoteTagsStartTemplateConstant      = "Listing tags on %s from %s"
	gitLSRemoteTagsSuccessTemplateConstant    = "Listed tags on %s from %s"
	gitLSRemoteTagsFailureTemplateConstant    = "Failed to list tags on %s from %s (exit code %d%s)"
	gitLSRemoteTagsExecutionFailureConstant   = "Unable to list tags on %s from %s: %s"
	gitResetStartTemplateConstant             = "Resetting %s to %s"
	gitResetSuccessTemplateConstant           = "Reset %s to %s"
	gitResetFailureTemplateConstant           = "Failed to reset %s to %s (exit code %d%s)"
	gitResetExecutionFailureConstant          = "Unable to reset %s to %s: %s"
	gitRebaseStartTemplateConstant            = "Rebasing current branch onto %s in %s"
	gitRebaseSuccessTemplateConstant          = "Rebased current branch onto %s in %s"
	gitRebaseFailureTemplateConstant          = "Failed to rebase current branch onto %s in %s (exit code %d%s)"
	gitRebaseExecutionFailureConstant         = "Unable to rebase current branch onto %s in %s: %s"
	gitMergeStartTemplateConstant             = "Merging %s into current branch in %s"
	gitMergeSuccessTemplateConstant           = "Merged %s into current branch in %s"
	gitMergeFailureTemplateConstant           = "Failed to merge %s into current branch in %s (exit code %d%s)"
	gitMergeExecutionFailureConstant          = "Unable to merge %s into current branch in %s: %s"
	gitCleanStartTemplateConstant             = "Removing untracked files from %s"
	gitCleanSuccessTemplateConstant           = "Removed untracked files from %s"
	gitCleanFailureTemplateConstant           = "Failed to remove untracked files from %s (exit code %d%s)"
	gitCleanExecutionFailureConstant          = "Unable to remove untracked files from %s: %s"
	gitGCStartTemplateConstant                = "Collecting garbage in %s"
	gitGCSuccessTemplateConstant              = "Collected garbage in %s"
	gitGCFailureTemplateConstant              = "Failed to collect garbage in %s (exit code %d%s)"
	gitGCExecutionFailureConstant             = "Unable to collect garbage in %s: %s"
	gitObjectPruneStartTemplateConstant       = "Pruning unreachable objects in %s"
	gitObjectPruneSuccessTemplateConstant     = "Pruned unreachable objects in %s"
	gitObjectPruneFailureTemplateConstant     = "Failed to prune unreachable objects in %s (exit code %d%s)"
	gitObjectPruneExecutionFailureConstant    = "Unable to prune unreachable objects in %s: %s"
	gitGenericBranchListStartTemplateConstant = "Listing branches in %s"
	gitGenericBranchListSuccessConstant       = "Listed branches in %s"
	gitGenericBranchListFailureConstant       = "Failed to list branches in %s (exit code %d%s)"
	gitGenericBranchListExecutionFailConstant = "Unable to list branches in %s: %s"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	if command.Name != CommandGit || len(command.Details.Arguments) == 0 {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	subcommand := strings.TrimSpace(command.Details.Arguments[0])
	switch subcommand {
	case gitRevParseSubcommandNameConstant:
		return formatter.describeGitRevParseMessage(command, result, failure, stage)
	case gitStatusSubcommandNameConstant:
		return formatter.describeWorkingDirectoryMessage(command, result, failure, stage, workingDirectoryTemplates{
			start: gitStatusStartTemplateConstant, success: gitStatusSuccessTemplateConstant,
			failure: gitStatusFailureTemplateConstant, executionFailure: gitStatusExecutionFailureTemplateConstant,
		})
	case gitCheckoutSubcommandNameConstant:
		return formatter.describeGitCheckoutMessage(command, result, failure, stage)
	case gitBranchSubcommandNameConstant:
		return formatter.describeGitBranchMessage(command, result, failure, stage)
	case gitFetchSubcommandNameConstant:
		return formatter.describeGitFetchMessage(command, result, failure, stage)
	case gitPullSubcommandNameConstant:
		return formatter.describeGitPullMessage(command, result, failure, stage)
	case gitPushSubcommandNameConstant:
		return formatter.describeGitPushMessage(command, result, failure, stage)
	case gitRemoteSubcommandNameConstant:
		return formatter.describeGitRemoteMessage(command, result, failure, stage)
	case gitStashSubcommandNameConstant:
		return formatter.describeGitStashMessage(command, result, failure, stage)
	case gitTagSubcommandNameConstant:
		return formatter.describeGitTagMessage(command, result, failure, stage)
	case gitLSRemoteSubcommandNameConstant:
		return formatter.describeGitLSRemoteMessage(command, result, failure, stage)
	case gitResetSubcommandNameConstant:
		return formatter.describeGitResetMessage(command, result, failure, stage)
	case gitRebaseSubcommandNameConstant:
		return formatter.describeSingleReferenceMessage(command, result, failure, stage, singleReferenceTemplates{
			start: gitRebaseStartTemplateConstant, success: gitRebaseSuccessTemplateConstant,
			failure: gitRebaseFailureTemplateConstant, executionFailure: gitRebaseExecutionFailureConstant,
		})
	case gitMergeSubcommandNameConstant:
		return formatter.describeSingleReferenceMessage(command, result, failure, stage, singleReferenceTemplates{
			start: gitMergeStartTemplateConstant, success: gitMergeSuccessTemplateConstant,
			failure: gitMergeFailureTemplateConstant, executionFailure: gitMergeExecutionFailureConstant,
		})
	case gitCleanSubcommandNameConstant:
		return formatter.describeWorkingDirectoryMessage(command, result, failure, stage, workingDirectoryTemplates{
			start: gitCleanStartTemplateConstant, success: gitCleanSuccessTemplateConstant,
			failure: gitCleanFailureTemplateConstant, executionFailure: gitCleanExecutionFailureConstant,
		})
	case gitGCSubcommandNameConstant:
		return formatter.describeWorkingDirectoryMessage(command, result, failure, stage, workingDirectoryTemplates{
			start: gitGCStartTemplateConstant, success: gitGCSuccessTemplateConstant,
			failure: gitGCFailureTemplateConstant, executionFailure: gitGCExecutionFailureConstant,
		})
	case gitPruneSubcommandNameConstant:
		return formatter.describeWorkingDirectoryMessage(command, result, failure, stage, workingDirectoryTemplates{
			start: gitObjectPruneStartTemplateConstant, success: gitObjectPruneSuccessTemplateConstant,
			failure: gitObjectPruneFailureTemplateConstant, executionFailure: gitObjectPruneExecutionFailureConstant,
		})
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

type workingDirectoryTemplates struct {
	start            string
	success          string
	failure          string
	executionFailure string
}

type singleReferenceTemplates struct {
	start            string
	success          string
	failure          string
	executionFailure string
}

func (formatter CommandMessageFormatter) describeGitRevParseMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)

	if containsArgument(arguments, gitWorkTreeFlagConstant) {
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitWorkTreeStartTemplateConstant, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(gitWorkTreeSuccessTemplateConstant, workingDirectory)
		case messageStageFailure:
			return fmt.Sprintf(gitWorkTreeFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		case messageStageExecutionFailure:
			return fmt.Sprintf(gitWorkTreeExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
		}
	}

	if containsArgument(arguments, gitAbbrevRefFlagConstant) {
		if containsArgument(arguments, gitSymbolicFullNameFlagConstant) || containsUpstreamReference(arguments) {
			switch stage {
			case messageStageStart:
				return fmt.Sprintf(gitUpstreamBranchStartTemplateConstant, workingDirectory)
			case messageStageSuccess:
				trimmedOutput := strings.TrimSpace(result.StandardOutput)
				if len(trimmedOutput) == 0 {
					return fmt.Sprintf(gitUpstreamBranchMissingSuccessTemplateConstant, workingDirectory)
				}
				return fmt.Sprintf(gitUpstreamBranchSuccessTemplateConstant, workingDirectory, trimmedOutput)
			case messageStageFailure:
				return fmt.Sprintf(gitUpstreamBranchFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
			case messageStageExecutionFailure:
				return fmt.Sprintf(gitUpstreamBranchExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
			}
		}

		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitCurrentBranchStartTemplateConstant, workingDirectory)
		case messageStageSuccess:
			trimmedOutput := strings.TrimSpace(result.StandardOutput)
			if len(trimmedOutput) == 0 || strings.EqualFold(trimmedOutput, gitHeadReferenceConstant) {
				return fmt.Sprintf(gitCurrentBranchDetachedSuccessTemplateConstant, workingDirectory)
			}
			return fmt.Sprintf(gitCurrentBranchSuccessTemplateConstant, workingDirectory, trimmedOutput)
		case messageStageFailure:
			return fmt.Sprintf(gitCurrentBranchFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		case messageStageExecutionFailure:
			return fmt.Sprintf(gitCurrentBranchExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
		}
	}

	revisionReference := formatter.ensureValue(formatter.extractLastNonFlagArgument(arguments[1:]))
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitRevisionStartTemplateConstant, revisionReference, workingDirectory)
	case messageStageSuccess:
		trimmedOutput := strings.TrimSpace(result.StandardOutput)
		if len(trimmedOutput) == 0 {
			return fmt.Sprintf(gitRevisionEmptySuccessTemplateConstant, revisionReference, workingDirectory)
		}
		return fmt.Sprintf(gitRevisionSuccessTemplateConstant, revisionReference, workingDirectory, trimmedOutput)
	case messageStageFailure:
		return fmt.Sprintf(gitRevisionFailureTemplateConstant, revisionReference, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitRevisionExecutionFailureTemplateConstant, revisionReference, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitCheckoutMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	branchName := formatter.ensureValue(formatter.extractFirstNonFlagArgument(command.Details.Arguments[1:]))
	workingDirectory := formatter.describeWorkingDirectory(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitCheckoutStartTemplateConstant, workingDirectory, branchName)
	case messageStageSuccess:
		return fmt.Sprintf(gitCheckoutSuccessTemplateConstant, workingDirectory, branchName)
	case messageStageFailure:
		return fmt.Sprintf(gitCheckoutFailureTemplateConstant, workingDirectory, branchName, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitCheckoutExecutionFailureTemplateConstant, workingDirectory, branchName, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitBranchMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)

	if containsArgument(arguments, gitMergedFlagConstant) {
		if containsArgument(arguments, gitRemoteTrackingFlagConstant) {
			return formatter.describeWorkingDirectoryMessage(command, result, failure, stage, workingDirectoryTemplates{
				start: gitGenericBranchListStartTemplateConstant, success: gitGenericBranchListSuccessConstant,
				failure: gitGenericBranchListFailureConstant, executionFailure: gitGenericBranchListExecutionFailConstant,
			})
		}
		mergedTarget := formatter.ensureValue(findFlagValue(arguments, gitMergedFlagConstant))
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitMergedBranchesStartTemplateConstant, mergedTarget, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(gitMergedBranchesSuccessTemplateConstant, mergedTarget, workingDirectory)
		case messageStageFailure:
			return fmt.Sprintf(gitMergedBranchesFailureTemplateConstant, mergedTarget, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		case messageStageExecutionFailure:
			return fmt.Sprintf(gitMergedBranchesExecutionFailureTemplateConstant, mergedTarget, workingDirectory, formatter.describeFailure(failure))
		}
	}

	if containsArgument(arguments, gitUnsetUpstreamFlagConstant) {
		return formatter.describeWorkingDirectoryMessage(command, result, failure, stage, workingDirectoryTemplates{
			start: gitUnsetUpstreamStartTemplateConstant, success: gitUnsetUpstreamSuccessTemplateConstant,
			failure: gitUnsetUpstreamFailureTemplateConstant, executionFailure: gitUnsetUpstreamExecutionFailureTemplateConstant,
		})
	}

	if containsArgument(arguments, gitDeleteFlagConstant) || containsArgument(arguments, gitSoftDeleteFlagConstant) {
		branchName := formatter.ensureValue(formatter.extractLastNonFlagArgument(arguments[1:]))
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitBranchDeletionStartTemplateConstant, branchName, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(gitBranchDeletionSuccessTemplateConstant, branchName, workingDirectory)
		case messageStageFailure:
			return fmt.Sprintf(gitBranchDeletionFailureTemplateConstant, branchName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		case messageStageExecutionFailure:
			return fmt.Sprintf(gitBranchDeletionExecutionFailureTemplateConstant, branchName, workingDirectory, formatter.describeFailure(failure))
		}
	}

	return formatter.buildGenericMessage(command, result, failure, stage)
}

func (formatter CommandMessageFormatter) describeGitFetchMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	remoteName := formatter.extractFirstNonFlagArgument(command.Details.Arguments[1:])
	if len(remoteName) == 0 {
		remoteName = gitFetchAllRemotesLabelConstant
	}

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitFetchStartTemplateConstant, remoteName, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitFetchSuccessTemplateConstant, remoteName, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitFetchFailureTemplateConstant, remoteName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitFetchExecutionFailureTemplateConstant, remoteName, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitPullMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	positionalArguments := formatter.collectNonFlagArguments(command.Details.Arguments[1:])
	remoteName := fallbackUnknownValueLabelConstant
	branchName := fallbackUnknownValueLabelConstant
	if len(positionalArguments) > 0 {
		remoteName = positionalArguments[0]
	}
	if len(positionalArguments) > 1 {
		branchName = positionalArguments[1]
	}

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitPullStartTemplateConstant, branchName, remoteName, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitPullSuccessTemplateConstant, branchName, remoteName, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitPullFailureTemplateConstant, branchName, remoteName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitPullExecutionFailureTemplateConstant, branchName, remoteName, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitPushMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)
	remoteName := formatter.ensureValue(formatter.extractFirstNonFlagArgument(arguments[1:]))
	deletionTarget := findFlagValue(arguments, gitDeleteFlagConstant)

	if len(deletionTarget) > 0 {
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitPushDeletionStartTemplateConstant, deletionTarget, remoteName, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(gitPushDeletionSuccessTemplateConstant, deletionTarget, remoteName, workingDirectory)
		case messageStageFailure:
			return fmt.Sprintf(gitPushDeletionFailureTemplateConstant, deletionTarget, remoteName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		case messageStageExecutionFailure:
			return fmt.Sprintf(gitPushDeletionExecutionFailureTemplateConstant, deletionTarget, remoteName, workingDirectory, formatter.describeFailure(failure))
		}
	}

	return formatter.buildGenericMessage(command, result, failure, stage)
}

func (formatter CommandMessageFormatter) describeGitRemoteMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)

	if len(arguments) > 1 && strings.TrimSpace(arguments[1]) == gitRemotePruneSubcommandConstant {
		remoteName := formatter.ensureValue(formatter.argumentAtIndex(arguments, 2))
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitRemotePruneStartTemplateConstant, remoteName, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(gitRemotePruneSuccessTemplateConstant, remoteName, workingDirectory)
		case messageStageFailure:
			return fmt.Sprintf(gitRemotePruneFailureTemplateConstant, remoteName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		case messageStageExecutionFailure:
			return fmt.Sprintf(gitRemotePruneExecutionFailureTemplateConstant, remoteName, workingDirectory, formatter.describeFailure(failure))
		}
	}

	return formatter.describeWorkingDirectoryMessage(command, result, failure, stage, workingDirectoryTemplates{
		start: gitRemoteListStartTemplateConstant, success: gitRemoteListSuccessTemplateConstant,
		failure: gitRemoteListFailureTemplateConstant, executionFailure: gitRemoteListExecutionFailureTemplateConstant,
	})
}

func (formatter CommandMessageFormatter) describeGitStashMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)
	if len(arguments) < 2 {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	switch strings.TrimSpace(arguments[1]) {
	case gitStashPushSubcommandConstant:
		stashLabel := formatter.ensureValue(findFlagValue(arguments, gitMessageFlagConstant))
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitStashSaveStartTemplateConstant, workingDirectory, stashLabel)
		case messageStageSuccess:
			return fmt.Sprintf(gitStashSaveSuccessTemplateConstant, workingDirectory, stashLabel)
		case messageStageFailure:
			return fmt.Sprintf(gitStashSaveFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		case messageStageExecutionFailure:
			return fmt.Sprintf(gitStashSaveExecutionFailureConstant, workingDirectory, formatter.describeFailure(failure))
		}
	case gitStashListSubcommandConstant:
		return formatter.describeWorkingDirectoryMessage(command, result, failure, stage, workingDirectoryTemplates{
			start: gitStashListStartTemplateConstant, success: gitStashListSuccessTemplateConstant,
			failure: gitStashListFailureTemplateConstant, executionFailure: gitStashListExecutionFailureConstant,
		})
	case gitStashPopSubcommandConstant:
		stashReference := formatter.ensureValue(formatter.extractFirstNonFlagArgument(arguments[2:]))
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitStashPopStartTemplateConstant, stashReference, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(gitStashPopSuccessTemplateConstant, stashReference, workingDirectory)
		case messageStageFailure:
			return fmt.Sprintf(gitStashPopFailureTemplateConstant, stashReference, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		case messageStageExecutionFailure:
			return fmt.Sprintf(gitStashPopExecutionFailureConstant, stashReference, workingDirectory, formatter.describeFailure(failure))
		}
	}

	return formatter.buildGenericMessage(command, result, failure, stage)
}

func (formatter CommandMessageFormatter) describeGitTagMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)

	if containsArgument(arguments, gitSoftDeleteFlagConstant) || containsArgument(arguments, gitDeleteFlagConstant) {
		tagName := formatter.ensureValue(formatter.extractLastNonFlagArgument(arguments[1:]))
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitTagDeletionStartTemplateConstant, tagName, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(gitTagDeletionSuccessTemplateConstant, tagName, workingDirectory)
		case messageStageFailure:
			return fmt.Sprintf(gitTagDeletionFailureTemplateConstant, tagName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		case messageStageExecutionFailure:
			return fmt.Sprintf(gitTagDeletionExecutionFailureConstant, tagName, workingDirectory, formatter.describeFailure(failure))
		}
	}

	if containsArgument(arguments, gitTagListFlagConstant) || len(arguments) == 1 {
		return formatter.describeWorkingDirectoryMessage(command, result, failure, stage, workingDirectoryTemplates{
			start: gitTagListStartTemplateConstant, success: gitTagListSuccessTemplateConstant,
			failure: gitTagListFailureTemplateConstant, executionFailure: gitTagListExecutionFailureConstant,
		})
	}

	return formatter.buildGenericMessage(command, result, failure, stage)
}

func (formatter CommandMessageFormatter) describeGitLSRemoteMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)
	remoteName := formatter.ensureValue(formatter.extractFirstNonFlagArgument(arguments[1:]))

	if containsArgument(arguments, gitTagsFlagConstant) {
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitLSRemoteTagsStartTemplateConstant, remoteName, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(gitLSRemoteTagsSuccessTemplateConstant, remoteName, workingDirectory)
		case messageStageFailure:
			return fmt.Sprintf(gitLSRemoteTagsFailureTemplateConstant, remoteName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		case messageStageExecutionFailure:
			return fmt.Sprintf(gitLSRemoteTagsExecutionFailureConstant, remoteName, workingDirectory, formatter.describeFailure(failure))
		}
	}

	return formatter.buildGenericMessage(command, result, failure, stage)
}

func (formatter CommandMessageFormatter) describeGitResetMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	targetReference := formatter.ensureValue(formatter.extractLastNonFlagArgument(command.Details.Arguments[1:]))
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitResetStartTemplateConstant, workingDirectory, targetReference)
	case messageStageSuccess:
		return fmt.Sprintf(gitResetSuccessTemplateConstant, workingDirectory, targetReference)
	case messageStageFailure:
		return fmt.Sprintf(gitResetFailureTemplateConstant, workingDirectory, targetReference, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitResetExecutionFailureConstant, workingDirectory, targetReference, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeSingleReferenceMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage, templates singleReferenceTemplates) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	reference := formatter.ensureValue(formatter.extractLastNonFlagArgument(command.Details.Arguments[1:]))
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(templates.start, reference, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(templates.success, reference, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(templates.failure, reference, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(templates.executionFailure, reference, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeWorkingDirectoryMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage, templates workingDirectoryTemplates) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(templates.start, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(templates.success, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(templates.failure, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(templates.executionFailure, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := formatter.formatCommandLabel(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.describeFailure(failure))
	default:
		return emptyStringConstant
	}
}

func (formatter CommandMessageFormatter) formatCommandLabel(command ShellCommand) string {
	commandLabel := string(command.Name)
	if len(command.Details.Arguments) > 0 {
		commandLabel = fmt.Sprintf("%s %s", commandLabel, strings.Join(command.Details.Arguments, commandArgumentsJoinSeparatorConstant))
	}
	return fmt.Sprintf(commandLabelTemplateConstant, commandLabel, formatter.formatWorkingDirectorySuffix(command))
}

func (formatter CommandMessageFormatter) formatWorkingDirectorySuffix(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeWorkingDirectory(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return defaultWorkingDirectoryLabelConstant
	}
	return trimmedWorkingDirectory
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

func (formatter CommandMessageFormatter) argumentAtIndex(arguments []string, index int) string {
	if index >= 0 && index < len(arguments) {
		return strings.TrimSpace(arguments[index])
	}
	return emptyStringConstant
}

func (formatter CommandMessageFormatter) ensureValue(value string) string {
	trimmedValue := strings.TrimSpace(value)
	if len(trimmedValue) == 0 {
		return fallbackUnknownValueLabelConstant
	}
	return trimmedValue
}

func (formatter CommandMessageFormatter) extractFirstNonFlagArgument(arguments []string) string {
	for _, argument := range arguments {
		trimmedArgument := strings.TrimSpace(argument)
		if len(trimmedArgument) == 0 || strings.HasPrefix(trimmedArgument, "-") {
			continue
		}
		return trimmedArgument
	}
	return emptyStringConstant
}

func (formatter CommandMessageFormatter) extractLastNonFlagArgument(arguments []string) string {
	for argumentIndex := len(arguments) - 1; argumentIndex >= 0; argumentIndex-- {
		trimmedArgument := strings.TrimSpace(arguments[argumentIndex])
		if len(trimmedArgument) == 0 || strings.HasPrefix(trimmedArgument, "-") {
			continue
		}
		return trimmedArgument
	}
	return emptyStringConstant
}

func (formatter CommandMessageFormatter) collectNonFlagArguments(arguments []string) []string {
	collectedArguments := make([]string, 0, len(arguments))
	for _, argument := range arguments {
		trimmedArgument := strings.TrimSpace(argument)
		if len(trimmedArgument) == 0 || strings.HasPrefix(trimmedArgument, "-") {
			continue
		}
		collectedArguments = append(collectedArguments, trimmedArgument)
	}
	return collectedArguments
}

func containsArgument(arguments []string, value string) bool {
	for _, argument := range arguments {
		if strings.TrimSpace(argument) == value {
			return true
		}
	}
	return false
}

func containsUpstreamReference(arguments []string) bool {
	for _, argument := range arguments {
		if strings.HasSuffix(strings.TrimSpace(argument), gitUpstreamReferenceSuffixConstant) {
			return true
		}
	}
	return false
}

func findFlagValue(arguments []string, flag string) string {
	for argumentIndex := 0; argumentIndex < len(arguments); argumentIndex++ {
		if strings.TrimSpace(arguments[argumentIndex]) != flag {
			continue
		}
		if argumentIndex+1 < len(arguments) {
			return strings.TrimSpace(arguments[argumentIndex+1])
		}
	}
	return emptyStringConstant
}
