// Cases add command creates a new case.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lexhall/lawdesk/internal/practice"
	"github.com/lexhall/lawdesk/pkg/types"
)

var (
	caseAddTitle       string
	caseAddClient      string
	caseAddResponsible string
	caseAddCategory    string
	caseAddStatus      string
	caseAddDate        string
	caseAddCourtNumber string
)

var casesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new case",
	Long: `Add creates a new case. The case id and case number are assigned by
the store and never supplied by the caller.

Example:
  lawdesk cases add --title "Test v. Agency" --client 王大明 \
    --responsible-user 張大律師 --category 行政訴訟 --status active`,
	RunE: runCasesAdd,
}

func init() {
	casesAddCmd.Flags().StringVar(&caseAddTitle, "title", "", "case title (required)")
	casesAddCmd.Flags().StringVar(&caseAddClient, "client", "", "client name (required)")
	casesAddCmd.Flags().StringVar(&caseAddResponsible, "responsible-user", "", "responsible user (required)")
	casesAddCmd.Flags().StringVar(&caseAddCategory, "category", "", "practice area (required)")
	casesAddCmd.Flags().StringVar(&caseAddStatus, "status", types.CaseStatusConsultation, "initial status")
	casesAddCmd.Flags().StringVar(&caseAddDate, "date", "", "commission date YYYY-MM-DD (default: today)")
	casesAddCmd.Flags().StringVar(&caseAddCourtNumber, "court-number", "", "court docket number")
}

func runCasesAdd(cmd *cobra.Command, args []string) error {
	if caseAddDate == "" {
		caseAddDate = time.Now().Format("2006-01-02")
	}

	values := map[string]string{
		"title":            caseAddTitle,
		"client":           caseAddClient,
		"responsible_user": caseAddResponsible,
		"category":         caseAddCategory,
		"status":           caseAddStatus,
		"date":             caseAddDate,
		"court_number":     caseAddCourtNumber,
	}
	if errs := practice.CaseForm.Validate(values); !errs.Ok() {
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

	created, err := p.Cases.Add(types.CaseDraft{
		Title:           caseAddTitle,
		Client:          caseAddClient,
		ResponsibleUser: caseAddResponsible,
		Category:        caseAddCategory,
		Status:          caseAddStatus,
		Date:            caseAddDate,
		CourtNumber:     caseAddCourtNumber,
	})
	if err != nil {
		// The record was added in memory; persistence is degraded.
		logger := newLogger()
		logger.Warn().Err(err).Msg("case saved in memory only")
	}

	if flagJSON {
		return printJSON(created)
	}
	fmt.Printf("Created case %s (%s)\n", created.Number, created.ID)
	return nil
}
