// Login command authenticates against the configured identity service.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the configured identity service",
	Long: `Login exchanges an email and password for a session with the
identity service named by auth.url in config.yaml. The session artifact
is persisted in the storage backend so later commands reuse it.

Example:
  lawdesk login --email lin@lawfirm.com --password secret`,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email (required)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password (required)")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
}

func runLogin(cmd *cobra.Command, args []string) error {
	adapter, err := openAdapter()
	if err != nil {
		return err
	}
	defer adapter.Close()

	gate := sessionGate(cmd.Context(), adapter)
	if gate == nil {
		return fmt.Errorf("no identity service configured; set auth.url in config.yaml")
	}

	if err := gate.SignIn(cmd.Context(), loginEmail, loginPassword); err != nil {
		return err
	}

	state := gate.State()
	if flagJSON {
		return printJSON(state)
	}
	fmt.Printf("Signed in as %s\n", state.Principal.Email)
	if state.Profile != nil && state.Profile.FullName != "" {
		fmt.Printf("Welcome back, %s\n", state.Profile.FullName)
	}
	return nil
}
