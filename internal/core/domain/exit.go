package domain

import "errors"

// exitCoder matches errors that carry a process exit status, such as *exec.ExitError.
type exitCoder interface {
	ExitCode() int
}

// ExitCode maps an error to the exit status makerun should terminate with.
// nil maps to 0. Errors carrying a positive process exit status map to that status;
// everything else, including processes killed by a signal, maps to 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var ec exitCoder
	if errors.As(err, &ec) {
		if code := ec.ExitCode(); code > 0 {
			return code
		}
	}
	return 1
}

// IsExitStatus reports whether err carries a process exit status.
// The child has already reported such failures on its own output.
func IsExitStatus(err error) bool {
	var ec exitCoder
	return errors.As(err, &ec)
}
