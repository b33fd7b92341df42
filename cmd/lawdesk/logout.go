// Logout command ends the current session.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and discard the local session",
	Long: `Logout revokes the session with the identity service and removes the
local session artifact. The local artifact is removed even when the
remote revocation fails.`,
	RunE: runLogout,
}

func runLogout(cmd *cobra.Command, args []string) error {
	adapter, err := openAdapter()
	if err != nil {
		return err
	}
	defer adapter.Close()

	gate := sessionGate(cmd.Context(), adapter)
	if gate == nil {
		return fmt.Errorf("no identity service configured; set auth.url in config.yaml")
	}

	if err := gate.SignOut(cmd.Context()); err != nil {
		logger := newLogger()
		logger.Warn().Err(err).Msg("remote sign-out failed; local session cleared")
	}
	fmt.Println("Signed out")
	return nil
}
