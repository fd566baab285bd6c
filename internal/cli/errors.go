package cli

import (
	"errors"
	"fmt"
	"log/slog"
)

// Error codes for the failure classes the menus can hit
const (
	CodeInvalidInput     = "INVALID_INPUT"
	CodeDatabaseError    = "DATABASE_ERROR"
	CodeNotFound         = "NOT_FOUND"
	CodePermissionDenied = "PERMISSION_DENIED"
)

// CLIError carries a code, a log message and a message safe to print
// to the user.
type CLIError struct {
	Code        string
	Message     string
	UserMessage string
	Details     string
}

func (e *CLIError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
}

func NewCLIError(code, message, userMessage, details string) *CLIError {
	return &CLIError{
		Code:        code,
		Message:     message,
		UserMessage: userMessage,
		Details:     details,
	}
}

// reportError logs the failure and prints the user-facing message.
func (s *Service) reportError(err error) {
	slog.Error("Menu operation failed", "error", err)

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		s.println("Error: " + cliErr.UserMessage)
		return
	}

	s.println("Error: an internal error occurred. Please try again.")
}

// Helpers for the typical failures

func ErrInvalidInputf(details string, args ...interface{}) *CLIError {
	return NewCLIError(
		CodeInvalidInput,
		"Invalid input provided",
		"invalid input. Check the value and try again.",
		fmt.Sprintf(details, args...),
	)
}

func ErrDatabasef(details string, args ...interface{}) *CLIError {
	return NewCLIError(
		CodeDatabaseError,
		"Database operation failed",
		"the operation could not be completed. Please try again.",
		fmt.Sprintf(details, args...),
	)
}

func ErrNotFoundf(details string, args ...interface{}) *CLIError {
	return NewCLIError(
		CodeNotFound,
		"Record not found",
		"the requested record does not exist.",
		fmt.Sprintf(details, args...),
	)
}

func ErrPermission(details string) *CLIError {
	return NewCLIError(
		CodePermissionDenied,
		"Permission denied",
		"you do not have permission for this operation.",
		details,
	)
}
