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
	tagSubcommandConstant                   = "tag"
	tagListFlagConstant                     = "--list"
	tagDeleteFlagConstant                   = "-d"
	lsRemoteSubcommandConstant              = "ls-remote"
	lsRemoteTagsFlagConstant                = "--tags"
	tagRefPrefixConstant                    = "refs/tags/"
	peeledTagSuffixConstant                 = "^{}"
	remoteTagListFailureTemplateConstant    = "failed to list tags on remote %s: %w"
	localTagListFailureTemplateConstant     = "failed to list local tags: %w"
	tagDeletionFailureTemplateConstant      = "failed to delete local tag %s: %w"
	tagSyncerExecutorMissingMessageConstant = "tag syncer requires a git executor"
)

// ErrTagSyncerExecutorNotConfigured indicates the tag syncer was constructed without an executor.
var ErrTagSyncerExecutorNotConfigured = errors.New(tagSyncerExecutorMissingMessageConstant)

// TagSyncer removes local tags that no longer exist on the remote.
type TagSyncer struct {
	executor shared.GitExecutor
}

// NewTagSyncer constructs a TagSyncer backed by the provided executor.
func NewTagSyncer(executor shared.GitExecutor) (*TagSyncer, error) {
	if executor == nil {
		return nil, ErrTagSyncerExecutorNotConfigured
	}
	return &TagSyncer{executor: executor}, nil
}

// Sync deletes every local tag absent from the remote and returns the deleted names.
func (syncer *TagSyncer) Sync(executionContext context.Context, repositoryPath string, remoteName string) ([]string, error) {
	remoteListResult, remoteListError := syncer.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{lsRemoteSubcommandConstant, lsRemoteTagsFlagConstant, remoteName},
		WorkingDirectory: repositoryPath,
	})
	if remoteListError != nil {
		return nil, fmt.Errorf(remoteTagListFailureTemplateConstant, remoteName, remoteListError)
	}
	remoteTagNames := parseRemoteTagNames(remoteListResult.StandardOutput)

	localListResult, localListError := syncer.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{tagSubcommandConstant, tagListFlagConstant},
		WorkingDirectory: repositoryPath,
	})
	if localListError != nil {
		return nil, fmt.Errorf(localTagListFailureTemplateConstant, localListError)
	}

	deletedTagNames := []string{}
	for _, outputLine := range strings.Split(localListResult.StandardOutput, "\n") {
		localTagName := strings.TrimSpace(outputLine)
		if len(localTagName) == 0 {
			continue
		}
		if _, presentOnRemote := remoteTagNames[localTagName]; presentOnRemote {
			continue
		}

		_, deletionError := syncer.executor.ExecuteGit(executionContext, execshell.CommandDetails{
			Arguments:        []string{tagSubcommandConstant, tagDeleteFlagConstant, localTagName},
			WorkingDirectory: repositoryPath,
		})
		if deletionError != nil {
			return deletedTagNames, fmt.Errorf(tagDeletionFailureTemplateConstant, localTagName, deletionError)
		}
		deletedTagNames = append(deletedTagNames, localTagName)
	}

	return deletedTagNames, nil
}

func parseRemoteTagNames(listOutput string) map[string]struct{} {
	remoteTagNames := map[string]struct{}{}
	for _, outputLine := range strings.Split(listOutput, "\n") {
		lineFields := strings.Fields(outputLine)
		if len(lineFields) < 2 {
			continue
		}
		tagReference := lineFields[len(lineFields)-1]
		if !strings.HasPrefix(tagReference, tagRefPrefixConstant) {
			continue
		}
		if strings.HasSuffix(tagReference, peeledTagSuffixConstant) {
			continue
		}
		remoteTagNames[strings.TrimPrefix(tagReference, tagRefPrefixConstant)] = struct{}{}
	}
	return remoteTagNames
}
