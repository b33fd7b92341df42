// Clients command group: list, add, update.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/lexhall/lawdesk/internal/practice"
	"github.com/lexhall/lawdesk/pkg/types"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Manage the client registry",
}

var clientsListQuery string

var clientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List clients with optional text filtering",
	Long: `List shows the client registry, optionally narrowed by a free-text
query (matched against name, client code, national id, phone, and email).
The CASES column counts the cases commissioned by each client.

Example:
  lawdesk clients list
  lawdesk clients list --query 王
  lawdesk clients list --query CLT-003 --json`,
	RunE: runClientsList,
}

var (
	clientAddNationalID string
	clientAddName       string
	clientAddPhone      string
	clientAddEmail      string
	clientAddAddress    string
	clientAddCreated    string
)

var clientsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new client",
	Long: `Add registers a new client. The client id and client code are
assigned by the store and never supplied by the caller.

Example:
  lawdesk clients add --national-id G789012345 --name 孫七 \
    --phone 0978-901-234 --email sun@example.com`,
	RunE: runClientsAdd,
}

func init() {
	clientsListCmd.Flags().StringVar(&clientsListQuery, "query", "", "free-text filter")

	clientsAddCmd.Flags().StringVar(&clientAddNationalID, "national-id", "", "government id number (required)")
	clientsAddCmd.Flags().StringVar(&clientAddName, "name", "", "client name (required)")
	clientsAddCmd.Flags().StringVar(&clientAddPhone, "phone", "", "phone number")
	clientsAddCmd.Flags().StringVar(&clientAddEmail, "email", "", "email address")
	clientsAddCmd.Flags().StringVar(&clientAddAddress, "address", "", "postal address")
	clientsAddCmd.Flags().StringVar(&clientAddCreated, "created-date", "", "registration date YYYY-MM-DD (default: today)")

	clientsCmd.AddCommand(clientsListCmd)
	clientsCmd.AddCommand(clientsAddCmd)
	clientsCmd.AddCommand(clientsUpdateCmd)
}

func runClientsList(cmd *cobra.Command, args []string) error {
	p, adapter, err := openPractice()
	if err != nil {
		return err
	}
	defer adapter.Close()
	if err := guardSession(cmd.Context(), adapter); err != nil {
		return err
	}

	visible := practice.ClientFilter.Apply(p.Clients.Snapshot(), clientsListQuery, "")
	if flagJSON {
		return printJSON(visible)
	}

	rows := make([][]string, 0, len(visible))
	for _, c := range visible {
		rows = append(rows, []string{
			c.ID, c.Code, c.Name, c.NationalID, c.Phone, c.Email,
			strconv.Itoa(practice.CountCasesForClient(p, c.Name)),
		})
	}
	printTable([]string{"ID", "CODE", "NAME", "NATIONAL ID", "PHONE", "EMAIL", "CASES"}, rows)
	return nil
}

func runClientsAdd(cmd *cobra.Command, args []string) error {
	if clientAddCreated == "" {
		clientAddCreated = time.Now().Format("2006-01-02")
	}

	values := map[string]string{
		"national_id":  clientAddNationalID,
		"name":         clientAddName,
		"phone":        clientAddPhone,
		"email":        clientAddEmail,
		"address":      clientAddAddress,
		"created_date": clientAddCreated,
	}
	if errs := practice.ClientForm.Validate(values); !errs.Ok() {
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

	created, err := p.Clients.Add(types.ClientDraft{
		NationalID:  clientAddNationalID,
		Name:        clientAddName,
		Phone:       clientAddPhone,
		Email:       clientAddEmail,
		Address:     clientAddAddress,
		CreatedDate: clientAddCreated,
	})
	if err != nil {
		logger := newLogger()
		logger.Warn().Err(err).Msg("client saved in memory only")
	}

	if flagJSON {
		return printJSON(created)
	}
	fmt.Printf("Registered client %s (%s)\n", created.Code, created.ID)
	return nil
}
