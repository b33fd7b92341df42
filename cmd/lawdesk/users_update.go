// Users update command edits an existing staff account.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexhall/lawdesk/internal/practice"
	"github.com/lexhall/lawdesk/pkg/types"
)

var (
	userUpdateID       string
	userUpdateUsername string
	userUpdateName     string
	userUpdateEmail    string
	userUpdateRole     string
	userUpdateStatus   string
)

var usersUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Edit fields of an existing user",
	Long: `Update overlays the provided fields onto the user with the given id.
Fields not provided are left unchanged. An unknown id is not an error.

Example:
  lawdesk users update --id USR004 --status disabled`,
	RunE: runUsersUpdate,
}

func init() {
	usersUpdateCmd.Flags().StringVar(&userUpdateID, "id", "", "user id (required)")
	usersUpdateCmd.Flags().StringVar(&userUpdateUsername, "username", "", "login name")
	usersUpdateCmd.Flags().StringVar(&userUpdateName, "name", "", "display name")
	usersUpdateCmd.Flags().StringVar(&userUpdateEmail, "email", "", "email address")
	usersUpdateCmd.Flags().StringVar(&userUpdateRole, "role", "", "role")
	usersUpdateCmd.Flags().StringVar(&userUpdateStatus, "status", "", "status")
	_ = usersUpdateCmd.MarkFlagRequired("id")
}

func runUsersUpdate(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	values := make(map[string]string)
	for name, v := range map[string]*string{
		"username": &userUpdateUsername,
		"name":     &userUpdateName,
		"email":    &userUpdateEmail,
		"role":     &userUpdateRole,
		"status":   &userUpdateStatus,
	} {
		if flags.Changed(name) {
			values[name] = *v
		}
	}
	if errs := practice.UserForm.ValidatePartial(values); !errs.Ok() {
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

	patch := types.UserPatch{
		Username: strPtrIfChanged(flags.Changed("username"), userUpdateUsername),
		Name:     strPtrIfChanged(flags.Changed("name"), userUpdateName),
		Email:    strPtrIfChanged(flags.Changed("email"), userUpdateEmail),
		Role:     strPtrIfChanged(flags.Changed("role"), userUpdateRole),
		Status:   strPtrIfChanged(flags.Changed("status"), userUpdateStatus),
	}

	updated, ok, err := p.Users.Update(userUpdateID, patch)
	if err != nil {
		logger := newLogger()
		logger.Warn().Err(err).Msg("user saved in memory only")
	}
	if !ok {
		fmt.Printf("No user with id %s; nothing changed\n", userUpdateID)
		return nil
	}

	if flagJSON {
		return printJSON(updated)
	}
	fmt.Printf("Updated user %s (%s)\n", updated.Username, updated.ID)
	return nil
}
