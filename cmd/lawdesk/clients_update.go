// Clients update command edits an existing client.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexhall/lawdesk/internal/practice"
	"github.com/lexhall/lawdesk/pkg/types"
)

var (
	clientUpdateID         string
	clientUpdateNationalID string
	clientUpdateName       string
	clientUpdatePhone      string
	clientUpdateEmail      string
	clientUpdateAddress    string
)

var clientsUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Edit fields of an existing client",
	Long: `Update overlays the provided fields onto the client with the given
id. Fields not provided are left unchanged. An unknown id is not an error.

Example:
  lawdesk clients update --id CL002 --phone 0928-111-222`,
	RunE: runClientsUpdate,
}

func init() {
	clientsUpdateCmd.Flags().StringVar(&clientUpdateID, "id", "", "client id (required)")
	clientsUpdateCmd.Flags().StringVar(&clientUpdateNationalID, "national-id", "", "government id number")
	clientsUpdateCmd.Flags().StringVar(&clientUpdateName, "name", "", "client name")
	clientsUpdateCmd.Flags().StringVar(&clientUpdatePhone, "phone", "", "phone number")
	clientsUpdateCmd.Flags().StringVar(&clientUpdateEmail, "email", "", "email address")
	clientsUpdateCmd.Flags().StringVar(&clientUpdateAddress, "address", "", "postal address")
	_ = clientsUpdateCmd.MarkFlagRequired("id")
}

func runClientsUpdate(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	values := make(map[string]string)
	for name, v := range map[string]*string{
		"national_id": &clientUpdateNationalID,
		"name":        &clientUpdateName,
		"phone":       &clientUpdatePhone,
		"email":       &clientUpdateEmail,
		"address":     &clientUpdateAddress,
	} {
		flagName := name
		if name == "national_id" {
			flagName = "national-id"
		}
		if flags.Changed(flagName) {
			values[name] = *v
		}
	}
	if errs := practice.ClientForm.ValidatePartial(values); !errs.Ok() {
		return errs
	}

	p, adapter, err := openPractice()
	if err != nil {
		return err
	}
	defer adapter.Close()
	if err := guardSession(cmd.Context(), adapter); err != nil {
		return err
	}

	patch := types.ClientPatch{
		NationalID: strPtrIfChanged(flags.Changed("national-id"), clientUpdateNationalID),
		Name:       strPtrIfChanged(flags.Changed("name"), clientUpdateName),
		Phone:      strPtrIfChanged(flags.Changed("phone"), clientUpdatePhone),
		Email:      strPtrIfChanged(flags.Changed("email"), clientUpdateEmail),
		Address:    strPtrIfChanged(flags.Changed("address"), clientUpdateAddress),
	}

	updated, ok, err := p.Clients.Update(clientUpdateID, patch)
	if err != nil {
		logger := newLogger()
		logger.Warn().Err(err).Msg("client saved in memory only")
	}
	if !ok {
		fmt.Printf("No client with id %s; nothing changed\n", clientUpdateID)
		return nil
	}

	if flagJSON {
		return printJSON(updated)
	}
	fmt.Printf("Updated client %s (%s)\n", updated.Name, updated.ID)
	return nil
}
