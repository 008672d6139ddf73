package freshen

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tavrin/freshen/internal/dependencies"
	"github.com/tavrin/freshen/internal/shared"
	"github.com/tavrin/freshen/internal/utils"
)

const (
	commandUseConstant              = "freshen [remote] [root-branch]"
	commandShortDescriptionConstant = "Bring a repository back in line with its root branch"
	commandLongDescriptionConstant  = "freshen stashes uncommitted work, prunes and fetches the remote, fast-forwards the root branch, reports or deletes branches already merged into it, and returns you to the branch you started on."

	forceDeleteFlagNameConstant        = "force-delete"
	forceDeleteFlagShorthandConstant   = "f"
	forceDeleteFlagDescriptionConstant = "Delete merged branches instead of only reporting them"
	mergeFlagNameConstant              = "merge"
	mergeFlagShorthandConstant         = "m"
	mergeFlagDescriptionConstant       = "Merge the root branch into the original branch after syncing"
	rebaseFlagNameConstant             = "rebase"
	rebaseFlagShorthandConstant        = "r"
	rebaseFlagDescriptionConstant      = "Rebase the original branch onto the root branch after syncing"
	syncTagsFlagNameConstant           = "sync-tags"
	syncTagsFlagShorthandConstant      = "t"
	syncTagsFlagDescriptionConstant    = "Delete local tags that no longer exist on the remote"
	resetRootFlagNameConstant          = "reset-root"
	resetRootFlagShorthandConstant     = "R"
	resetRootFlagDescriptionConstant   = "Hard-reset the root branch to its remote counterpart before pulling"
	wipeFlagNameConstant               = "wipe"
	wipeFlagShorthandConstant          = "W"
	wipeFlagDescriptionConstant        = "Remove untracked and ignored files before switching branches"
	applyStashFlagNameConstant         = "apply-stash"
	applyStashFlagShorthandConstant    = "s"
	applyStashFlagDescriptionConstant  = "Pop the automatic stash after the run instead of leaving it saved"
	localOnlyFlagNameConstant          = "local-only"
	localOnlyFlagShorthandConstant     = "l"
	localOnlyFlagDescriptionConstant   = "Restrict --force-delete to local branches, never pushing deletions"

	remoteArgumentIndexConstant     = 0
	rootBranchArgumentIndexConstant = 1
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the freshen command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	GitExecutor                  shared.GitExecutor
	GitRepositoryManager         shared.GitRepositoryManager
	Clock                        shared.Clock
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
	WorkingDirectoryResolver     func() (string, error)
}

// Build constructs the freshen command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.MaximumNArgs(2),
		RunE:  builder.run,
	}

	command.Flags().BoolP(forceDeleteFlagNameConstant, forceDeleteFlagShorthandConstant, false, forceDeleteFlagDescriptionConstant)
	command.Flags().BoolP(mergeFlagNameConstant, mergeFlagShorthandConstant, false, mergeFlagDescriptionConstant)
	command.Flags().BoolP(rebaseFlagNameConstant, rebaseFlagShorthandConstant, false, rebaseFlagDescriptionConstant)
	command.Flags().BoolP(syncTagsFlagNameConstant, syncTagsFlagShorthandConstant, false, syncTagsFlagDescriptionConstant)
	command.Flags().BoolP(resetRootFlagNameConstant, resetRootFlagShorthandConstant, false, resetRootFlagDescriptionConstant)
	command.Flags().BoolP(wipeFlagNameConstant, wipeFlagShorthandConstant, false, wipeFlagDescriptionConstant)
	command.Flags().BoolP(applyStashFlagNameConstant, applyStashFlagShorthandConstant, false, applyStashFlagDescriptionConstant)
	command.Flags().BoolP(localOnlyFlagNameConstant, localOnlyFlagShorthandConstant, false, localOnlyFlagDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	remoteName := configuration.RemoteName
	rootBranch := configuration.RootBranch
	if len(arguments) > remoteArgumentIndexConstant {
		remoteName = arguments[remoteArgumentIndexConstant]
	}
	if len(arguments) > rootBranchArgumentIndexConstant {
		rootBranch = arguments[rootBranchArgumentIndexConstant]
	}

	forceDelete, forceDeleteError := command.Flags().GetBool(forceDeleteFlagNameConstant)
	if forceDeleteError != nil {
		return forceDeleteError
	}
	mergeRequested, mergeError := command.Flags().GetBool(mergeFlagNameConstant)
	if mergeError != nil {
		return mergeError
	}
	rebaseRequested, rebaseError := command.Flags().GetBool(rebaseFlagNameConstant)
	if rebaseError != nil {
		return rebaseError
	}
	syncTags, syncTagsError := command.Flags().GetBool(syncTagsFlagNameConstant)
	if syncTagsError != nil {
		return syncTagsError
	}
	resetRoot, resetRootError := command.Flags().GetBool(resetRootFlagNameConstant)
	if resetRootError != nil {
		return resetRootError
	}
	wipeRequested, wipeError := command.Flags().GetBool(wipeFlagNameConstant)
	if wipeError != nil {
		return wipeError
	}
	applyStash, applyStashError := command.Flags().GetBool(applyStashFlagNameConstant)
	if applyStashError != nil {
		return applyStashError
	}
	localOnly, localOnlyError := command.Flags().GetBool(localOnlyFlagNameConstant)
	if localOnlyError != nil {
		return localOnlyError
	}

	repositoryPath, workingDirectoryError := builder.resolveWorkingDirectory()
	if workingDirectoryError != nil {
		return workingDirectoryError
	}

	logger := builder.resolveLogger()
	humanReadableLogging := false
	if builder.HumanReadableLoggingProvider != nil {
		humanReadableLogging = builder.HumanReadableLoggingProvider()
	}
	gitExecutor, executorError := dependencies.ResolveGitExecutor(builder.GitExecutor, logger, humanReadableLogging)
	if executorError != nil {
		return executorError
	}

	repositoryManager, managerError := dependencies.ResolveGitRepositoryManager(builder.GitRepositoryManager, gitExecutor)
	if managerError != nil {
		return managerError
	}

	service, serviceCreationError := NewService(Dependencies{
		GitExecutor:       gitExecutor,
		RepositoryManager: repositoryManager,
		Clock:             dependencies.ResolveClock(builder.Clock),
		Output:            utils.NewFlushingWriter(command.ErrOrStderr()),
	})
	if serviceCreationError != nil {
		return serviceCreationError
	}

	_, freshenError := service.Freshen(command.Context(), Options{
		RepositoryPath: repositoryPath,
		RemoteName:     remoteName,
		RootBranch:     rootBranch,
		IgnoreFilePath: configuration.IgnoreFile,
		ForceDelete:    forceDelete,
		Merge:          mergeRequested,
		Rebase:         rebaseRequested,
		SyncTags:       syncTags,
		ResetRoot:      resetRoot,
		Wipe:           wipeRequested,
		ApplyStash:     applyStash,
		LocalOnly:      localOnly,
	})
	return freshenError
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveWorkingDirectory() (string, error) {
	if builder.WorkingDirectoryResolver == nil {
		return os.Getwd()
	}
	return builder.WorkingDirectoryResolver()
}
