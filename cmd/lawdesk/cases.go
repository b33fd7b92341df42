// Cases command group: list, add, update, count.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexhall/lawdesk/internal/filter"
	"github.com/lexhall/lawdesk/internal/practice"
	"github.com/lexhall/lawdesk/pkg/types"
)

var casesCmd = &cobra.Command{
	Use:   "cases",
	Short: "Manage the firm's cases",
}

var (
	casesListQuery string
	casesListTab   string
)

var casesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cases with optional text and status filtering",
	Long: `List shows the case collection, optionally narrowed by a free-text
query (matched against title, case number, client, and category) and a
status tab.

Example:
  lawdesk cases list
  lawdesk cases list --query 專利
  lawdesk cases list --tab active
  lawdesk cases list --query 王 --tab closed --json`,
	RunE: runCasesList,
}

var (
	casesCountStatus string
)

var casesCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Show case counts by status",
	RunE:  runCasesCount,
}

func init() {
	casesListCmd.Flags().StringVar(&casesListQuery, "query", "", "free-text filter")
	casesListCmd.Flags().StringVar(&casesListTab, "tab", filter.TabAll, "status tab (all, consultation, active, suspended, closed)")
	casesCountCmd.Flags().StringVar(&casesCountStatus, "status", "", "count a single status instead of all")

	casesCmd.AddCommand(casesListCmd)
	casesCmd.AddCommand(casesAddCmd)
	casesCmd.AddCommand(casesUpdateCmd)
	casesCmd.AddCommand(casesCountCmd)
}

func runCasesList(cmd *cobra.Command, args []string) error {
	p, adapter, err := openPractice()
	if err != nil {
		return err
	}
	defer adapter.Close()
	if err := guardSession(cmd.Context(), adapter); err != nil {
		return err
	}

	visible := practice.CaseFilter.Apply(p.Cases.Snapshot(), casesListQuery, casesListTab)
	if flagJSON {
		return printJSON(visible)
	}

	rows := make([][]string, 0, len(visible))
	for _, c := range visible {
		rows = append(rows, []string{c.ID, c.Number, c.Title, c.Client, c.ResponsibleUser, c.Status, c.Date})
	}
	printTable([]string{"ID", "NUMBER", "TITLE", "CLIENT", "RESPONSIBLE", "STATUS", "DATE"}, rows)
	return nil
}

func runCasesCount(cmd *cobra.Command, args []string) error {
	p, adapter, err := openPractice()
	if err != nil {
		return err
	}
	defer adapter.Close()
	if err := guardSession(cmd.Context(), adapter); err != nil {
		return err
	}

	if casesCountStatus != "" {
		if !types.ValidCaseStatus(casesCountStatus) {
			return fmt.Errorf("unknown status %q", casesCountStatus)
		}
		fmt.Println(practice.CountCasesByStatus(p, casesCountStatus))
		return nil
	}

	counts := map[string]int{
		"total":                      practice.CountCasesByStatus(p, ""),
		types.CaseStatusConsultation: practice.CountCasesByStatus(p, types.CaseStatusConsultation),
		types.CaseStatusActive:       practice.CountCasesByStatus(p, types.CaseStatusActive),
		types.CaseStatusSuspended:    practice.CountCasesByStatus(p, types.CaseStatusSuspended),
		types.CaseStatusClosed:       practice.CountCasesByStatus(p, types.CaseStatusClosed),
	}
	if flagJSON {
		return printJSON(counts)
	}
	for _, status := range []string{"total", types.CaseStatusConsultation, types.CaseStatusActive, types.CaseStatusSuspended, types.CaseStatusClosed} {
		fmt.Printf("%s\t%d\n", status, counts[status])
	}
	return nil
}
