package freshen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tavrin/freshen/internal/execshell"
)

func TestNewTagSyncerRequiresExecutor(t *testing.T) {
	_, syncerError := NewTagSyncer(nil)
	require.ErrorIs(t, syncerError, ErrTagSyncerExecutorNotConfigured)
}

func TestTagSyncerDeletesTagsAbsentFromRemote(t *testing.T) {
	executor := newScriptedGitExecutor()
	executor.responses["ls-remote --tags origin"] = execshell.ExecutionResult{
		StandardOutput: "aaa111\trefs/tags/v1.0.0\nbbb222\trefs/tags/v1.0.0^{}\nccc333\trefs/tags/v1.1.0\n",
	}
	executor.responses["tag --list"] = execshell.ExecutionResult{StandardOutput: "v0.9.0\nv1.0.0\nv1.1.0\n"}
	syncer, syncerError := NewTagSyncer(executor)
	require.NoError(t, syncerError)

	deletedTags, syncError := syncer.Sync(context.Background(), "/workspace/repo", "origin")
	require.NoError(t, syncError)
	require.Equal(t, []string{"v0.9.0"}, deletedTags)
	require.True(t, executor.executed("tag -d v0.9.0"))
	require.False(t, executor.executed("tag -d v1.0.0"))
	require.False(t, executor.executed("tag -d v1.1.0"))
}

func TestTagSyncerKeepsEverythingWhenRemoteMatches(t *testing.T) {
	executor := newScriptedGitExecutor()
	executor.responses["ls-remote --tags origin"] = execshell.ExecutionResult{
		StandardOutput: "aaa111\trefs/tags/v1.0.0\n",
	}
	executor.responses["tag --list"] = execshell.ExecutionResult{StandardOutput: "v1.0.0\n"}
	syncer, syncerError := NewTagSyncer(executor)
	require.NoError(t, syncerError)

	deletedTags, syncError := syncer.Sync(context.Background(), "/workspace/repo", "origin")
	require.NoError(t, syncError)
	require.Empty(t, deletedTags)
}

func TestTagSyncerReturnsPartialProgressOnDeletionFailure(t *testing.T) {
	executor := newScriptedGitExecutor()
	executor.responses["ls-remote --tags origin"] = execshell.ExecutionResult{}
	executor.responses["tag --list"] = execshell.ExecutionResult{StandardOutput: "v0.1.0\nv0.2.0\n"}
	executor.failures["tag -d v0.2.0"] = exitFailure(1, "error: tag 'v0.2.0' not found.", "tag")
	syncer, syncerError := NewTagSyncer(executor)
	require.NoError(t, syncerError)

	deletedTags, syncError := syncer.Sync(context.Background(), "/workspace/repo", "origin")
	require.Error(t, syncError)
	require.Equal(t, []string{"v0.1.0"}, deletedTags)
}

func TestTagSyncerWrapsRemoteListFailure(t *testing.T) {
	executor := newScriptedGitExecutor()
	executor.failures["ls-remote --tags origin"] = exitFailure(128, "fatal: unable to access remote", "ls-remote")
	syncer, syncerError := NewTagSyncer(executor)
	require.NoError(t, syncerError)

	_, syncError := syncer.Sync(context.Background(), "/workspace/repo", "origin")
	require.Error(t, syncError)
	require.Contains(t, syncError.Error(), "origin")
}
