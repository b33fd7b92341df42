// Whoami command reports the current session state.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session principal and profile",
	RunE:  runWhoami,
}

func runWhoami(cmd *cobra.Command, args []string) error {
	adapter, err := openAdapter()
	if err != nil {
		return err
	}
	defer adapter.Close()

	gate := sessionGate(cmd.Context(), adapter)
	if gate == nil {
		fmt.Println("No identity service configured; running local-only")
		return nil
	}

	state := gate.State()
	if flagJSON {
		return printJSON(state)
	}

	if state.Principal == nil {
		fmt.Println("Not signed in")
		return nil
	}
	fmt.Printf("Signed in as %s (%s)\n", state.Principal.Email, state.Principal.ID)
	if state.Profile != nil {
		fmt.Printf("Name: %s\nRole: %s\n", state.Profile.FullName, state.Profile.Role)
	}
	if state.Err != "" {
		fmt.Printf("Last error: %s\n", state.Err)
	}
	return nil
}
