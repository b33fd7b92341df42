// Fees command group: list, add.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lexhall/lawdesk/internal/filter"
	"github.com/lexhall/lawdesk/internal/practice"
	"github.com/lexhall/lawdesk/pkg/types"
)

var feesCmd = &cobra.Command{
	Use:   "fees",
	Short: "Manage the fee ledger",
}

var (
	feesListQuery string
	feesListTab   string
)

var feesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List fee records with optional text and status filtering",
	RunE:  runFeesList,
}

var (
	feeAddCaseNumber string
	feeAddDirection  string
	feeAddCategory   string
	feeAddAmount     int64
	feeAddRecordDate string
	feeAddDueDate    string
	feeAddNote       string
	feeAddStatus     string
)

var feesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Enter a fee record against a case",
	Long: `Add enters one ledger entry. Receivables may be unpaid, paid, or
overdue; payables never go overdue.

Example:
  lawdesk fees add --case-number C-2025-042 --direction receivable \
    --category 律師費 --amount 50000 --record-date 2025-05-10 \
    --due-date 2025-06-10`,
	RunE: runFeesAdd,
}

func init() {
	feesListCmd.Flags().StringVar(&feesListQuery, "query", "", "free-text filter")
	feesListCmd.Flags().StringVar(&feesListTab, "tab", filter.TabAll, "status tab (all, unpaid, paid, overdue)")

	feesAddCmd.Flags().StringVar(&feeAddCaseNumber, "case-number", "", "related case number (required)")
	feesAddCmd.Flags().StringVar(&feeAddDirection, "direction", types.FeeReceivable, "receivable or payable")
	feesAddCmd.Flags().StringVar(&feeAddCategory, "category", "", "fee category (required)")
	feesAddCmd.Flags().Int64Var(&feeAddAmount, "amount", 0, "amount in whole NT dollars (required)")
	feesAddCmd.Flags().StringVar(&feeAddRecordDate, "record-date", "", "entry date YYYY-MM-DD (required)")
	feesAddCmd.Flags().StringVar(&feeAddDueDate, "due-date", "", "due date YYYY-MM-DD (required)")
	feesAddCmd.Flags().StringVar(&feeAddNote, "note", "", "optional note")
	feesAddCmd.Flags().StringVar(&feeAddStatus, "status", types.FeeStatusUnpaid, "status")

	feesCmd.AddCommand(feesListCmd)
	feesCmd.AddCommand(feesAddCmd)
}

func runFeesList(cmd *cobra.Command, args []string) error {
	p, adapter, err := openPractice()
	if err != nil {
		return err
	}
	defer adapter.Close()
	if err := guardSession(cmd.Context(), adapter); err != nil {
		return err
	}

	visible := practice.FeeFilter.Apply(p.Fees.Snapshot(), feesListQuery, feesListTab)
	if flagJSON {
		return printJSON(visible)
	}

	rows := make([][]string, 0, len(visible))
	for _, f := range visible {
		rows = append(rows, []string{
			f.ID, f.CaseNumber, f.Direction, f.Category,
			strconv.FormatInt(f.Amount, 10), f.DueDate, f.Status,
		})
	}
	printTable([]string{"ID", "CASE", "DIRECTION", "CATEGORY", "AMOUNT", "DUE", "STATUS"}, rows)
	return nil
}

func runFeesAdd(cmd *cobra.Command, args []string) error {
	values := map[string]string{
		"case_number": feeAddCaseNumber,
		"direction":   feeAddDirection,
		"category":    feeAddCategory,
		"amount":      strconv.FormatInt(feeAddAmount, 10),
		"record_date": feeAddRecordDate,
		"due_date":    feeAddDueDate,
		"note":        feeAddNote,
		"status":      feeAddStatus,
	}
	if errs := practice.ValidateFeeDraft(values); !errs.Ok() {
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

	created, err := p.Fees.Add(types.FeeDraft{
		CaseNumber: feeAddCaseNumber,
		Direction:  feeAddDirection,
		Category:   feeAddCategory,
		Amount:     feeAddAmount,
		RecordDate: feeAddRecordDate,
		DueDate:    feeAddDueDate,
		Note:       feeAddNote,
		Status:     feeAddStatus,
	})
	if err != nil {
		logger := newLogger()
		logger.Warn().Err(err).Msg("fee record saved in memory only")
	}

	if flagJSON {
		return printJSON(created)
	}
	fmt.Printf("Recorded fee %s against %s\n", created.ID, created.CaseNumber)
	return nil
}
