package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/studydash/internal/logger"
	"github.com/julianstephens/studydash/internal/migration"
	"github.com/julianstephens/studydash/internal/storage"
)

// Is, As and New mirror the standard library helpers.
var (
	Is  = stderrors.Is
	As  = stderrors.As
	New = stderrors.New
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Hint returns a follow-up suggestion for errors the user can fix, or "".
func Hint(err error) string {
	switch {
	case err == nil:
		return ""
	case Is(err, storage.ErrNotInitialized):
		return "Run 'studydash init' to create your planner."
	case Is(err, migration.ErrSchemaTooNew):
		return "This data was written by a newer studydash; upgrade to open it."
	}
	return ""
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		if hint := Hint(err); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
