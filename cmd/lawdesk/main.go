// Package main provides the lawdesk CLI, the administrative surface for the
// firm's case, user, fee, time, and document records.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lexhall/lawdesk/internal/storage"
)

// Exit codes.
const (
	exitSuccess  = 0
	exitUsrError = 1
	exitSysError = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit code: storage trouble is a
// system error, everything else (validation, unknown ids, unauthenticated)
// a user error.
func exitCode(err error) int {
	if errors.Is(err, storage.ErrStorageUnavailable) {
		return exitSysError
	}
	return exitUsrError
}
