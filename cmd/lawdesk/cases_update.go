// Cases update command edits an existing case.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexhall/lawdesk/internal/practice"
	"github.com/lexhall/lawdesk/pkg/types"
)

var (
	caseUpdateID          string
	caseUpdateTitle       string
	caseUpdateClient      string
	caseUpdateResponsible string
	caseUpdateCategory    string
	caseUpdateStatus      string
	caseUpdateDate        string
	caseUpdateCourtNumber string
)

var casesUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Edit fields of an existing case",
	Long: `Update overlays the provided fields onto the case with the given id.
Fields not provided are left unchanged. An unknown id is not an error: the
collection is simply left as it is.

Example:
  lawdesk cases update --id CS002 --status closed`,
	RunE: runCasesUpdate,
}

func init() {
	casesUpdateCmd.Flags().StringVar(&caseUpdateID, "id", "", "case id (required)")
	casesUpdateCmd.Flags().StringVar(&caseUpdateTitle, "title", "", "case title")
	casesUpdateCmd.Flags().StringVar(&caseUpdateClient, "client", "", "client name")
	casesUpdateCmd.Flags().StringVar(&caseUpdateResponsible, "responsible-user", "", "responsible user")
	casesUpdateCmd.Flags().StringVar(&caseUpdateCategory, "category", "", "practice area")
	casesUpdateCmd.Flags().StringVar(&caseUpdateStatus, "status", "", "status")
	casesUpdateCmd.Flags().StringVar(&caseUpdateDate, "date", "", "commission date YYYY-MM-DD")
	casesUpdateCmd.Flags().StringVar(&caseUpdateCourtNumber, "court-number", "", "court docket number")
	_ = casesUpdateCmd.MarkFlagRequired("id")
}

func runCasesUpdate(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	values := make(map[string]string)
	for name, v := range map[string]*string{
		"title":            &caseUpdateTitle,
		"client":           &caseUpdateClient,
		"responsible_user": &caseUpdateResponsible,
		"category":         &caseUpdateCategory,
		"status":           &caseUpdateStatus,
		"date":             &caseUpdateDate,
		"court_number":     &caseUpdateCourtNumber,
	} {
		flagName := flagNameForField(name)
		if flags.Changed(flagName) {
			values[name] = *v
		}
	}
	if errs := practice.CaseForm.ValidatePartial(values); !errs.Ok() {
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

	patch := types.CasePatch{
		Title:           strPtrIfChanged(flags.Changed("title"), caseUpdateTitle),
		Client:          strPtrIfChanged(flags.Changed("client"), caseUpdateClient),
		ResponsibleUser: strPtrIfChanged(flags.Changed("responsible-user"), caseUpdateResponsible),
		Category:        strPtrIfChanged(flags.Changed("category"), caseUpdateCategory),
		Status:          strPtrIfChanged(flags.Changed("status"), caseUpdateStatus),
		Date:            strPtrIfChanged(flags.Changed("date"), caseUpdateDate),
		CourtNumber:     strPtrIfChanged(flags.Changed("court-number"), caseUpdateCourtNumber),
	}

	updated, ok, err := p.Cases.Update(caseUpdateID, patch)
	if err != nil {
		logger := newLogger()
		logger.Warn().Err(err).Msg("case saved in memory only")
	}
	if !ok {
		fmt.Printf("No case with id %s; nothing changed\n", caseUpdateID)
		return nil
	}

	if flagJSON {
		return printJSON(updated)
	}
	fmt.Printf("Updated case %s (%s)\n", updated.Number, updated.ID)
	return nil
}

// flagNameForField maps schema field names to their CLI flag spellings.
func flagNameForField(field string) string {
	switch field {
	case "responsible_user":
		return "responsible-user"
	case "court_number":
		return "court-number"
	default:
		return field
	}
}
