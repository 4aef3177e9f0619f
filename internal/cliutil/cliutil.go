// Package cliutil carries small helpers for the command line tools.
package cliutil

import "os"

// IsTty reports whether f is attached to a terminal, as opposed to a pipe
// or a regular file.
func IsTty(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
