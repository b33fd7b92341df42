// Users add command creates a new staff account.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexhall/lawdesk/internal/practice"
	"github.com/lexhall/lawdesk/pkg/types"
)

var (
	userAddUsername string
	userAddName     string
	userAddEmail    string
	userAddRole     string
	userAddStatus   string
)

var usersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new user",
	Long: `Add creates a new staff account. The user id is assigned by the
store from a persisted sequence.

Example:
  lawdesk users add --username lin.lawyer --name 林律師 \
    --email lin@lawfirm.com --role lawyer`,
	RunE: runUsersAdd,
}

func init() {
	usersAddCmd.Flags().StringVar(&userAddUsername, "username", "", "login name (required)")
	usersAddCmd.Flags().StringVar(&userAddName, "name", "", "display name (required)")
	usersAddCmd.Flags().StringVar(&userAddEmail, "email", "", "email address (required)")
	usersAddCmd.Flags().StringVar(&userAddRole, "role", types.RoleAssistant, "role (admin, lawyer, assistant)")
	usersAddCmd.Flags().StringVar(&userAddStatus, "status", types.UserStatusActive, "status (active, disabled)")
}

func runUsersAdd(cmd *cobra.Command, args []string) error {
	values := map[string]string{
		"username": userAddUsername,
		"name":     userAddName,
		"email":    userAddEmail,
		"role":     userAddRole,
		"status":   userAddStatus,
	}
	if errs := practice.UserForm.Validate(values); !errs.Ok() {
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

	created, err := p.Users.Add(types.UserDraft{
		Username: userAddUsername,
		Name:     userAddName,
		Email:    userAddEmail,
		Role:     userAddRole,
		Status:   userAddStatus,
	})
	if err != nil {
		logger := newLogger()
		logger.Warn().Err(err).Msg("user saved in memory only")
	}

	if flagJSON {
		return printJSON(created)
	}
	fmt.Printf("Created user %s (%s)\n", created.Username, created.ID)
	return nil
}
