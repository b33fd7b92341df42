// Register command creates a new identity with the external service.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	registerEmail    string
	registerPassword string
	registerFullName string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account with the identity service",
	Long: `Register creates a new account. The account is not signed in
immediately; the identity service sends a verification email and the
first login happens after verification.`,
	RunE: runRegister,
}

func init() {
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "account email (required)")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "account password (required)")
	registerCmd.Flags().StringVar(&registerFullName, "full-name", "", "display name (required)")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")
	_ = registerCmd.MarkFlagRequired("full-name")
}

func runRegister(cmd *cobra.Command, args []string) error {
	adapter, err := openAdapter()
	if err != nil {
		return err
	}
	defer adapter.Close()

	gate := sessionGate(cmd.Context(), adapter)
	if gate == nil {
		return fmt.Errorf("no identity service configured; set auth.url in config.yaml")
	}

	if err := gate.SignUp(cmd.Context(), registerEmail, registerPassword, registerFullName); err != nil {
		return err
	}
	fmt.Printf("Registered %s; check your email to verify the account\n", registerEmail)
	return nil
}
