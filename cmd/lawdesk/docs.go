// Docs command group: list, add, update.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/lexhall/lawdesk/internal/filter"
	"github.com/lexhall/lawdesk/internal/practice"
	"github.com/lexhall/lawdesk/pkg/types"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Manage case documents",
}

var (
	docsListCaseID string
	docsListQuery  string
	docsListTab    string
)

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents with optional case, text, and type filtering",
	Long: `List shows document metadata, optionally narrowed to one case and
by a free-text query (matched against title) and a type tab.

Example:
  lawdesk docs list
  lawdesk docs list --case CS001
  lawdesk docs list --query 起訴 --tab pleading`,
	RunE: runDocsList,
}

var (
	docAddCaseID     string
	docAddTitle      string
	docAddType       string
	docAddUploadedAt string
	docAddSize       int64
)

var docsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a document against a case",
	Long: `Add records document metadata for a case. Document content lives
outside the system; only the metadata is tracked.

Example:
  lawdesk docs add --case CS001 --title 起訴狀 --type pleading`,
	RunE: runDocsAdd,
}

func init() {
	docsListCmd.Flags().StringVar(&docsListCaseID, "case", "", "restrict to one case id")
	docsListCmd.Flags().StringVar(&docsListQuery, "query", "", "free-text filter")
	docsListCmd.Flags().StringVar(&docsListTab, "tab", filter.TabAll, "document type tab")

	docsAddCmd.Flags().StringVar(&docAddCaseID, "case", "", "owning case id (required)")
	docsAddCmd.Flags().StringVar(&docAddTitle, "title", "", "document title (required)")
	docsAddCmd.Flags().StringVar(&docAddType, "type", "", "document type (required)")
	docsAddCmd.Flags().StringVar(&docAddUploadedAt, "uploaded-at", "", "upload date YYYY-MM-DD (default: today)")
	docsAddCmd.Flags().Int64Var(&docAddSize, "size", 0, "size in bytes")

	docsCmd.AddCommand(docsListCmd)
	docsCmd.AddCommand(docsAddCmd)
	docsCmd.AddCommand(docsUpdateCmd)
}

func runDocsList(cmd *cobra.Command, args []string) error {
	p, adapter, err := openPractice()
	if err != nil {
		return err
	}
	defer adapter.Close()
	if err := guardSession(cmd.Context(), adapter); err != nil {
		return err
	}

	docs := p.Documents.Snapshot()
	if docsListCaseID != "" {
		docs = practice.DocumentsForCase(p, docsListCaseID)
	}
	docs = practice.DocumentFilter.Apply(docs, docsListQuery, docsListTab)
	if flagJSON {
		return printJSON(docs)
	}

	rows := make([][]string, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, []string{d.ID, d.Title, d.Type, d.UploadedAt, strconv.FormatInt(d.Size, 10)})
	}
	printTable([]string{"ID", "TITLE", "TYPE", "UPLOADED", "SIZE"}, rows)
	return nil
}

func runDocsAdd(cmd *cobra.Command, args []string) error {
	if docAddUploadedAt == "" {
		docAddUploadedAt = time.Now().Format("2006-01-02")
	}

	values := map[string]string{
		"case_id":     docAddCaseID,
		"title":       docAddTitle,
		"type":        docAddType,
		"uploaded_at": docAddUploadedAt,
		"size":        strconv.FormatInt(docAddSize, 10),
	}
	if errs := practice.DocumentForm.Validate(values); !errs.Ok() {
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

	created, err := p.Documents.Add(types.DocumentDraft{
		CaseID:     docAddCaseID,
		Title:      docAddTitle,
		Type:       docAddType,
		UploadedAt: docAddUploadedAt,
		Size:       docAddSize,
	})
	if err != nil {
		logger := newLogger()
		logger.Warn().Err(err).Msg("document saved in memory only")
	}

	if flagJSON {
		return printJSON(created)
	}
	fmt.Printf("Recorded document %s for case %s\n", created.ID, created.CaseID)
	return nil
}
