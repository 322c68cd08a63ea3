package cli

import (
	"fmt"
	"os"

	"github.com/grovetools/patrol/errors"
)

// ErrorHandler turns patrol errors into actionable stderr messages.
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle prints a user-facing message for err and returns it unchanged so
// callers can still exit non-zero.
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeRootNotFound:
		if patrolErr, ok := err.(*errors.PatrolError); ok {
			fmt.Fprintf(os.Stderr, "❌ Scan root '%s' does not exist or is not a directory\n", patrolErr.Details["path"])
		}
		return err

	case errors.ErrCodeRootUnreadable:
		if patrolErr, ok := err.(*errors.PatrolError); ok {
			fmt.Fprintf(os.Stderr, "❌ Cannot read scan root '%s'\n", patrolErr.Details["path"])
			fmt.Fprintf(os.Stderr, "Check directory permissions and try again.\n")
		}
		return err

	case errors.ErrCodeGitNotInstalled:
		fmt.Fprintf(os.Stderr, "❌ git was not found on PATH. Install git and try again.\n")
		return err

	case errors.ErrCodeDashboardInit:
		fmt.Fprintf(os.Stderr, "❌ Could not start the dashboard. Falling back to plain output.\n")
		return err

	case errors.ErrCodeConfigInvalid:
		fmt.Fprintf(os.Stderr, "❌ Invalid configuration: %v\n", err)
		return err

	case errors.ErrCodeInvalidInput:
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		return err

	default:
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)

		if h.Verbose {
			if patrolErr, ok := err.(*errors.PatrolError); ok {
				fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", patrolErr.ToJSON())
			}
		}
		return err
	}
}
