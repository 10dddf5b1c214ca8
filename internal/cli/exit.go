package cli

import (
	"errors"
	"fmt"
)

// ExitError carries a non-zero exit status whose cause was already reported.
type ExitError struct {
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// exitCode maps a command error to the process exit status, printing errors
// that were not reported yet.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	printError(err)
	return 1
}

// failWith reports err and returns an ExitError with code, or 1 when code is 0.
func failWith(err error, code int) error {
	printErrorMsg(err.Error())
	if code == 0 {
		code = 1
	}
	return &ExitError{Code: code}
}
