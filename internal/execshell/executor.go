package execshell

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

const (
	loggerNotConfiguredMessageConstant        = "logger not configured"
	commandRunnerNotConfiguredMessageConstant = "command runner not configured"
	commandFieldNameConstant                  = "command"
	argumentsFieldNameConstant                = "arguments"
	workingDirectoryFieldNameConstant         = "working_directory"
	exitCodeFieldNameConstant                 = "exit_code"
)

// CommandName identifies an executable invoked through the shell executor.
type CommandName string

// CommandGit names the git binary, the only external collaborator of freshen.
const CommandGit CommandName = "git"

// CommandDetails describes a single invocation of an external command.
type CommandDetails struct {
	Arguments            []string
	WorkingDirectory     string
	EnvironmentVariables map[string]string
	StandardInput        []byte
}

// ShellCommand pairs an executable name with its invocation details.
type ShellCommand struct {
	Name    CommandName
	Details CommandDetails
}

// ExecutionResult captures the observable outcome of a completed command.
type ExecutionResult struct {
	StandardOutput string
	StandardError  string
	ExitCode       int
}

// CommandRunner executes shell commands and reports their results.
type CommandRunner interface {
	Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error)
}

// ErrLoggerNotConfigured indicates a ShellExecutor was constructed without a logger.
var ErrLoggerNotConfigured = errors.New(loggerNotConfiguredMessageConstant)

// ErrCommandRunnerNotConfigured indicates a ShellExecutor was constructed without a runner.
var ErrCommandRunnerNotConfigured = errors.New(commandRunnerNotConfiguredMessageConstant)

// CommandFailedError reports a command that ran to completion with a non-zero exit code.
type CommandFailedError struct {
	Command ShellCommand
	Result  ExecutionResult
}

// Error describes the failed command including its exit code and standard error.
func (failedError CommandFailedError) Error() string {
	formatter := CommandMessageFormatter{}
	return formatter.BuildFailureMessage(failedError.Command, failedError.Result)
}

// CommandExecutionError reports a command that could not be executed at all.
type CommandExecutionError struct {
	Command ShellCommand
	Cause   error
}

// Error describes the execution failure.
func (executionError CommandExecutionError) Error() string {
	formatter := CommandMessageFormatter{}
	return formatter.BuildExecutionFailureMessage(executionError.Command, executionError.Cause)
}

// Unwrap exposes the underlying cause for errors.Is and errors.As inspection.
func (executionError CommandExecutionError) Unwrap() error {
	return executionError.Cause
}

// ShellExecutor runs external commands with structured logging and lifecycle notifications.
type ShellExecutor struct {
	logger    *zap.Logger
	runner    CommandRunner
	formatter CommandMessageFormatter
	observer  CommandEventObserver
}

// NewShellExecutor constructs a ShellExecutor from the provided logger, runner, and optional observers.
func NewShellExecutor(logger *zap.Logger, runner CommandRunner, observers ...CommandEventObserver) (*ShellExecutor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if runner == nil {
		return nil, ErrCommandRunnerNotConfigured
	}

	var observer CommandEventObserver = noopCommandEventObserver{}
	for _, candidate := range observers {
		if candidate != nil {
			observer = candidate
			break
		}
	}

	executor := &ShellExecutor{
		logger:    logger,
		runner:    runner,
		formatter: CommandMessageFormatter{},
		observer:  observer,
	}

	return executor, nil
}

// ExecuteGit runs the git binary with the supplied details.
func (executor *ShellExecutor) ExecuteGit(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	return executor.execute(executionContext, ShellCommand{Name: CommandGit, Details: details})
}

func (executor *ShellExecutor) execute(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	executor.observer.CommandStarted(command)
	executor.logger.Info(
		executor.formatter.BuildStartedMessage(command),
		zap.String(commandFieldNameConstant, string(command.Name)),
		zap.Strings(argumentsFieldNameConstant, command.Details.Arguments),
		zap.String(workingDirectoryFieldNameConstant, command.Details.WorkingDirectory),
	)

	executionResult, runError := executor.runner.Run(executionContext, command)
	if runError != nil {
		executionFailure := CommandExecutionError{Command: command, Cause: runError}
		executor.logger.Error(
			executor.formatter.BuildExecutionFailureMessage(command, runError),
			zap.String(commandFieldNameConstant, string(command.Name)),
			zap.Strings(argumentsFieldNameConstant, command.Details.Arguments),
		)
		executor.observer.CommandExecutionFailed(command, runError)
		return ExecutionResult{}, executionFailure
	}

	executor.observer.CommandCompleted(command, executionResult)

	if executionResult.ExitCode != 0 {
		executor.logger.Warn(
			executor.formatter.BuildFailureMessage(command, executionResult),
			zap.String(commandFieldNameConstant, string(command.Name)),
			zap.Strings(argumentsFieldNameConstant, command.Details.Arguments),
			zap.Int(exitCodeFieldNameConstant, executionResult.ExitCode),
		)
		return executionResult, CommandFailedError{Command: command, Result: executionResult}
	}

	executor.logger.Info(
		executor.formatter.BuildSuccessMessage(command),
		zap.String(commandFieldNameConstant, string(command.Name)),
		zap.Strings(argumentsFieldNameConstant, command.Details.Arguments),
	)

	return executionResult, nil
}

// IsExitError reports whether the supplied error represents a non-zero command exit.
func IsExitError(candidate error) bool {
	var failedError CommandFailedError
	return errors.As(candidate, &failedError)
}
