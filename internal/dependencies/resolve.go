package dependencies

import (
	"go.uber.org/zap"

	"github.com/tavrin/freshen/internal/execshell"
	"github.com/tavrin/freshen/internal/gitrepo"
	"github.com/tavrin/freshen/internal/shared"
	"github.com/tavrin/freshen/internal/ui"
)

// ResolveGitExecutor returns the provided executor or constructs a shell-backed default.
// When humanReadableLogging is enabled, command lifecycle events are echoed through the console observer.
func ResolveGitExecutor(existing shared.GitExecutor, logger *zap.Logger, humanReadableLogging bool) (shared.GitExecutor, error) {
	if existing != nil {
		return existing, nil
	}

	commandRunner := execshell.NewOSCommandRunner()

	observers := []execshell.CommandEventObserver{}
	if humanReadableLogging {
		observers = append(observers, ui.NewConsoleCommandEventLogger(logger))
	}

	shellExecutor, creationError := execshell.NewShellExecutor(logger, commandRunner, observers...)
	if creationError != nil {
		return nil, creationError
	}
	return shellExecutor, nil
}

// ResolveGitRepositoryManager returns the provided repository manager or constructs one from the executor.
func ResolveGitRepositoryManager(existing shared.GitRepositoryManager, executor shared.GitExecutor) (shared.GitRepositoryManager, error) {
	if existing != nil {
		return existing, nil
	}
	return gitrepo.NewRepositoryManager(executor)
}

// ResolveClock returns the provided clock or the system clock.
func ResolveClock(existing shared.Clock) shared.Clock {
	if existing != nil {
		return existing
	}
	return shared.SystemClock{}
}
