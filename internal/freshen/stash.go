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
	stashLabelTemplateConstant          = "freshen-%d"
	stashSaveFailureTemplateConstant    = "failed to stash uncommitted changes: %w"
	stashListFailureTemplateConstant    = "failed to list stash entries: %w"
	stashPopFailureTemplateConstant     = "failed to restore stash entry %s: %w"
	stashEntryFieldSeparatorConstant    = ":"
	stashSubcommandConstant             = "stash"
	stashPushSubcommandConstant         = "push"
	stashListSubcommandConstant         = "list"
	stashPopSubcommandConstant          = "pop"
	stashMessageFlagConstant            = "-m"
	stashExecutorMissingMessageConstant = "stash keeper requires a git executor"
	stashClockMissingMessageConstant    = "stash keeper requires a clock"
)

// ErrStashExecutorNotConfigured indicates the stash keeper was constructed without an executor.
var ErrStashExecutorNotConfigured = errors.New(stashExecutorMissingMessageConstant)

// ErrStashClockNotConfigured indicates the stash keeper was constructed without a clock.
var ErrStashClockNotConfigured = errors.New(stashClockMissingMessageConstant)

// StashHandle identifies a stash entry created by the freshen run.
type StashHandle struct {
	Label string
}

// StashKeeper creates, locates, and restores the single stash entry owned by a run.
type StashKeeper struct {
	executor shared.GitExecutor
	clock    shared.Clock
}

// NewStashKeeper constructs a StashKeeper from the provided collaborators.
func NewStashKeeper(executor shared.GitExecutor, clock shared.Clock) (*StashKeeper, error) {
	if executor == nil {
		return nil, ErrStashExecutorNotConfigured
	}
	if clock == nil {
		return nil, ErrStashClockNotConfigured
	}
	return &StashKeeper{executor: executor, clock: clock}, nil
}

// Save stashes uncommitted changes under a time-derived label and returns a handle to the entry.
func (keeper *StashKeeper) Save(executionContext context.Context, repositoryPath string) (StashHandle, error) {
	stashLabel := fmt.Sprintf(stashLabelTemplateConstant, keeper.clock.Now().Unix())

	_, saveError := keeper.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{stashSubcommandConstant, stashPushSubcommandConstant, stashMessageFlagConstant, stashLabel},
		WorkingDirectory: repositoryPath,
	})
	if saveError != nil {
		return StashHandle{}, fmt.Errorf(stashSaveFailureTemplateConstant, saveError)
	}

	return StashHandle{Label: stashLabel}, nil
}

// Locate searches the stash list for the handle's label and returns the matching stash reference.
func (keeper *StashKeeper) Locate(executionContext context.Context, repositoryPath string, handle StashHandle) (string, bool, error) {
	listResult, listError := keeper.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{stashSubcommandConstant, stashListSubcommandConstant},
		WorkingDirectory: repositoryPath,
	})
	if listError != nil {
		return "", false, fmt.Errorf(stashListFailureTemplateConstant, listError)
	}

	for _, listLine := range strings.Split(listResult.StandardOutput, "\n") {
		if !strings.Contains(listLine, handle.Label) {
			continue
		}
		separatorIndex := strings.Index(listLine, stashEntryFieldSeparatorConstant)
		if separatorIndex <= 0 {
			continue
		}
		return strings.TrimSpace(listLine[:separatorIndex]), true, nil
	}

	return "", false, nil
}

// Pop restores and removes the stash entry identified by the supplied reference.
func (keeper *StashKeeper) Pop(executionContext context.Context, repositoryPath string, stashReference string) error {
	_, popError := keeper.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{stashSubcommandConstant, stashPopSubcommandConstant, stashReference},
		WorkingDirectory: repositoryPath,
	})
	if popError != nil {
		return fmt.Errorf(stashPopFailureTemplateConstant, stashReference, popError)
	}
	return nil
}
