// Users command group: list, add, update, delete.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexhall/lawdesk/internal/filter"
	"github.com/lexhall/lawdesk/internal/practice"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage staff accounts",
}

var (
	usersListQuery string
	usersListTab   string
)

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users with optional text and role filtering",
	Long: `List shows the user collection, optionally narrowed by a free-text
query (matched against username, display name, and email) and a role tab.

Example:
  lawdesk users list
  lawdesk users list --tab lawyer
  lawdesk users list --query assistant --json`,
	RunE: runUsersList,
}

func init() {
	usersListCmd.Flags().StringVar(&usersListQuery, "query", "", "free-text filter")
	usersListCmd.Flags().StringVar(&usersListTab, "tab", filter.TabAll, "role tab (all, admin, lawyer, assistant)")

	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersAddCmd)
	usersCmd.AddCommand(usersUpdateCmd)
	usersCmd.AddCommand(usersDeleteCmd)
}

func runUsersList(cmd *cobra.Command, args []string) error {
	p, adapter, err := openPractice()
	if err != nil {
		return err
	}
	defer adapter.Close()
	if err := guardSession(cmd.Context(), adapter); err != nil {
		return err
	}

	visible := practice.UserFilter.Apply(p.Users.Snapshot(), usersListQuery, usersListTab)
	if flagJSON {
		return printJSON(visible)
	}

	rows := make([][]string, 0, len(visible))
	for _, u := range visible {
		rows = append(rows, []string{u.ID, u.Username, u.Name, u.Email, u.Role, u.Status})
	}
	printTable([]string{"ID", "USERNAME", "NAME", "EMAIL", "ROLE", "STATUS"}, rows)
	return nil
}

var usersDeleteID string

var usersDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove a user",
	Long: `Delete removes the user with the given id. Deleting an id that is
not present leaves the collection unchanged and is not an error.

Example:
  lawdesk users delete --id USR005`,
	RunE: runUsersDelete,
}

func init() {
	usersDeleteCmd.Flags().StringVar(&usersDeleteID, "id", "", "user id (required)")
	_ = usersDeleteCmd.MarkFlagRequired("id")
}

func runUsersDelete(cmd *cobra.Command, args []string) error {
	p, adapter, err := openPractice()
	if err != nil {
		return err
	}
	defer adapter.Close()
	if err := guardSession(cmd.Context(), adapter); err != nil {
		return err
	}

	removed, err := p.Users.Remove(usersDeleteID)
	if err != nil {
		logger := newLogger()
		logger.Warn().Err(err).Msg("removal saved in memory only")
	}
	if !removed {
		fmt.Printf("No user with id %s; nothing changed\n", usersDeleteID)
		return nil
	}
	fmt.Printf("Removed user %s\n", usersDeleteID)
	return nil
}
