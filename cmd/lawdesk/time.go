// Time command group: list, add, update.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lexhall/lawdesk/internal/practice"
	"github.com/lexhall/lawdesk/pkg/types"
)

var timeCmd = &cobra.Command{
	Use:   "time",
	Short: "Manage time records",
}

var timeListQuery string

var timeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List time records with optional text filtering",
	RunE:  runTimeList,
}

var (
	timeAddCaseNumber  string
	timeAddUser        string
	timeAddDate        string
	timeAddMinutes     int
	timeAddDescription string
)

var timeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log time against a case",
	Long: `Add logs one time record for a case.

Example:
  lawdesk time add --case-number C-2025-042 --user 張大律師 \
    --date 2025-05-12 --minutes 90 --description 出庭準備`,
	RunE: runTimeAdd,
}

func init() {
	timeListCmd.Flags().StringVar(&timeListQuery, "query", "", "free-text filter")

	timeAddCmd.Flags().StringVar(&timeAddCaseNumber, "case-number", "", "related case number (required)")
	timeAddCmd.Flags().StringVar(&timeAddUser, "user", "", "user who worked the time (required)")
	timeAddCmd.Flags().StringVar(&timeAddDate, "date", "", "work date YYYY-MM-DD (required)")
	timeAddCmd.Flags().IntVar(&timeAddMinutes, "minutes", 0, "duration in minutes (required)")
	timeAddCmd.Flags().StringVar(&timeAddDescription, "description", "", "what the time was spent on (required)")

	timeCmd.AddCommand(timeListCmd)
	timeCmd.AddCommand(timeAddCmd)
	timeCmd.AddCommand(timeUpdateCmd)
}

func runTimeList(cmd *cobra.Command, args []string) error {
	p, adapter, err := openPractice()
	if err != nil {
		return err
	}
	defer adapter.Close()
	if err := guardSession(cmd.Context(), adapter); err != nil {
		return err
	}

	visible := practice.TimeFilter.Apply(p.Time.Snapshot(), timeListQuery, "")
	if flagJSON {
		return printJSON(visible)
	}

	rows := make([][]string, 0, len(visible))
	for _, t := range visible {
		rows = append(rows, []string{
			t.ID, t.CaseNumber, t.User, t.Date, strconv.Itoa(t.Minutes), t.Description,
		})
	}
	printTable([]string{"ID", "CASE", "USER", "DATE", "MINUTES", "DESCRIPTION"}, rows)
	return nil
}

func runTimeAdd(cmd *cobra.Command, args []string) error {
	values := map[string]string{
		"case_number": timeAddCaseNumber,
		"user":        timeAddUser,
		"date":        timeAddDate,
		"minutes":     strconv.Itoa(timeAddMinutes),
		"description": timeAddDescription,
	}
	if errs := practice.TimeForm.Validate(values); !errs.Ok() {
		return errs
	}
	if timeAddMinutes <= 0 {
		return fmt.Errorf("minutes must be positive")
	}

	p, adapter, err := openPractice()
	if err != nil {
		return err
	}
	defer adapter.Close()
	if err := guardSession(cmd.Context(), adapter); err != nil {
		return err
	}

	created, err := p.Time.Add(types.TimeDraft{
		CaseNumber:  timeAddCaseNumber,
		User:        timeAddUser,
		Date:        timeAddDate,
		Minutes:     timeAddMinutes,
		Description: timeAddDescription,
	})
	if err != nil {
		logger := newLogger()
		logger.Warn().Err(err).Msg("time record saved in memory only")
	}

	if flagJSON {
		return printJSON(created)
	}
	fmt.Printf("Logged %d minutes on %s (%s)\n", created.Minutes, created.CaseNumber, created.ID)
	return nil
}
