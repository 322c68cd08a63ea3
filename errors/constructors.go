package errors

import (
	"fmt"
	"os/exec"
)

// RootNotFound creates an invalid scan root error
func RootNotFound(path string) *PatrolError {
	return New(ErrCodeRootNotFound, fmt.Sprintf("scan root does not exist: %s", path)).
		WithDetail("path", path)
}

// RootUnreadable creates an unreadable scan root error
func RootUnreadable(path string, err error) *PatrolError {
	return Wrap(err, ErrCodeRootUnreadable, fmt.Sprintf("scan root is not readable: %s", path)).
		WithDetail("path", path)
}

// NotARepository creates an error for a path that is not a git repository
func NotARepository(path string) *PatrolError {
	return New(ErrCodeNotARepository, fmt.Sprintf("not a git repository: %s", path)).
		WithDetail("path", path)
}

// ProbeFailed creates a per-repository probe failure error
func ProbeFailed(path string, err error) *PatrolError {
	return Wrap(err, ErrCodeProbeFailed, fmt.Sprintf("failed to probe repository: %s", path)).
		WithDetail("path", path)
}

// CommandFailed creates a command execution failure error
func CommandFailed(cmd string, err error) *PatrolError {
	patrolErr := Wrap(err, ErrCodeCommandFailed, fmt.Sprintf("command failed: %s", cmd)).
		WithDetail("command", cmd)

	// Extract exit code if available
	if exitErr, ok := err.(*exec.ExitError); ok {
		patrolErr = patrolErr.WithDetail("exitCode", exitErr.ExitCode())
	}

	return patrolErr
}

// GitNotInstalled creates an error for a missing git binary
func GitNotInstalled(err error) *PatrolError {
	return Wrap(err, ErrCodeGitNotInstalled, "git executable not found in PATH")
}

// DashboardInit creates an error for a failed interactive session start
func DashboardInit(err error) *PatrolError {
	return Wrap(err, ErrCodeDashboardInit, "failed to start interactive dashboard")
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *PatrolError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// InvalidInput creates an invalid input error
func InvalidInput(reason string) *PatrolError {
	return New(ErrCodeInvalidInput, reason)
}
