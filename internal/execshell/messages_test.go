package execshell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func gitCommand(arguments ...string) ShellCommand {
	return ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        arguments,
			WorkingDirectory: "/workspace/repo",
		},
	}
}

func TestBuildStartedMessageDescribesGitSubcommands(t *testing.T) {
	formatter := CommandMessageFormatter{}

	testCases := []struct {
		name            string
		command         ShellCommand
		expectedMessage string
	}{
		{
			name:            "work_tree_probe",
			command:         gitCommand("rev-parse", "--is-inside-work-tree"),
			expectedMessage: "Analyzing repository at /workspace/repo",
		},
		{
			name:            "current_branch",
			command:         gitCommand("rev-parse", "--abbrev-ref", "HEAD"),
			expectedMessage: "Identifying current branch in /workspace/repo",
		},
		{
			name:            "upstream_branch",
			command:         gitCommand("rev-parse", "--abbrev-ref", "--symbolic-full-name", "feature@{u}"),
			expectedMessage: "Checking upstream branch configuration in /workspace/repo",
		},
		{
			name:            "checkout",
			command:         gitCommand("checkout", "master"),
			expectedMessage: "Switching /workspace/repo to branch master",
		},
		{
			name:            "merged_branches",
			command:         gitCommand("branch", "--no-color", "--merged", "master"),
			expectedMessage: "Listing branches merged into master in /workspace/repo",
		},
		{
			name:            "branch_deletion",
			command:         gitCommand("branch", "-d", "feature/login"),
			expectedMessage: "Removing local branch feature/login in /workspace/repo",
		},
		{
			name:            "unset_upstream",
			command:         gitCommand("branch", "--unset-upstream"),
			expectedMessage: "Dropping upstream tracking configuration in /workspace/repo",
		},
		{
			name:            "fetch_with_remote",
			command:         gitCommand("fetch", "origin"),
			expectedMessage: "Fetching from origin in /workspace/repo",
		},
		{
			name:            "fetch_without_remote",
			command:         gitCommand("fetch", "--prune"),
			expectedMessage: "Fetching from all remotes in /workspace/repo",
		},
		{
			name:            "fast_forward_pull",
			command:         gitCommand("pull", "--ff-only", "origin", "master"),
			expectedMessage: "Pulling master from origin in /workspace/repo",
		},
		{
			name:            "remote_branch_deletion",
			command:         gitCommand("push", "origin", "--delete", "feature/login"),
			expectedMessage: "Deleting remote branch feature/login from origin in /workspace/repo",
		},
		{
			name:            "remote_prune",
			command:         gitCommand("remote", "prune", "origin"),
			expectedMessage: "Pruning stale tracking references for origin in /workspace/repo",
		},
		{
			name:            "remote_listing",
			command:         gitCommand("remote"),
			expectedMessage: "Listing configured remotes in /workspace/repo",
		},
		{
			name:            "stash_push",
			command:         gitCommand("stash", "push", "--include-untracked", "-m", "freshen-1700000000"),
			expectedMessage: "Stashing uncommitted changes in /workspace/repo as \"freshen-1700000000\"",
		},
		{
			name:            "stash_pop",
			command:         gitCommand("stash", "pop", "stash@{0}"),
			expectedMessage: "Restoring stash entry stash@{0} in /workspace/repo",
		},
		{
			name:            "tag_listing",
			command:         gitCommand("tag", "--list"),
			expectedMessage: "Listing local tags in /workspace/repo",
		},
		{
			name:            "tag_deletion",
			command:         gitCommand("tag", "-d", "v1.2.3"),
			expectedMessage: "Deleting local tag v1.2.3 in /workspace/repo",
		},
		{
			name:            "remote_tag_listing",
			command:         gitCommand("ls-remote", "--tags", "origin"),
			expectedMessage: "Listing tags on origin from /workspace/repo",
		},
		{
			name:            "hard_reset",
			command:         gitCommand("reset", "--hard", "origin/master"),
			expectedMessage: "Resetting /workspace/repo to origin/master",
		},
		{
			name:            "rebase",
			command:         gitCommand("rebase", "master"),
			expectedMessage: "Rebasing current branch onto master in /workspace/repo",
		},
		{
			name:            "merge",
			command:         gitCommand("merge", "--no-edit", "master"),
			expectedMessage: "Merging master into current branch in /workspace/repo",
		},
		{
			name:            "clean",
			command:         gitCommand("clean", "-ffdx"),
			expectedMessage: "Removing untracked files from /workspace/repo",
		},
		{
			name:            "garbage_collection",
			command:         gitCommand("gc", "--auto", "--force"),
			expectedMessage: "Collecting garbage in /workspace/repo",
		},
		{
			name:            "object_prune",
			command:         gitCommand("prune"),
			expectedMessage: "Pruning unreachable objects in /workspace/repo",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expectedMessage, formatter.BuildStartedMessage(testCase.command))
		})
	}
}

func TestBuildSuccessMessageReportsCurrentBranch(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := gitCommand("rev-parse", "--abbrev-ref", "HEAD")

	message := formatter.buildMessage(command, ExecutionResult{StandardOutput: "feature/login\n"}, nil, messageStageSuccess)
	require.Equal(t, "Current branch in /workspace/repo is feature/login", message)

	detachedMessage := formatter.buildMessage(command, ExecutionResult{StandardOutput: "HEAD\n"}, nil, messageStageSuccess)
	require.Equal(t, "/workspace/repo is in a detached HEAD state", detachedMessage)
}

func TestBuildFailureMessageIncludesExitCodeAndStandardError(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := gitCommand("pull", "--ff-only", "origin", "master")
	result := ExecutionResult{ExitCode: 128, StandardError: "fatal: Not possible to fast-forward, aborting.\n"}

	message := formatter.BuildFailureMessage(command, result)

	require.Equal(t, "Failed to pull master from origin in /workspace/repo (exit code 128: fatal: Not possible to fast-forward, aborting.)", message)
}

func TestBuildGenericMessageUsedForUnknownSubcommands(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := gitCommand("cherry-pick", "abc123")

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, "Running git cherry-pick abc123 (in /workspace/repo)", message)
}
