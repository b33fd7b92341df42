// Docs update command edits document metadata.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexhall/lawdesk/internal/practice"
	"github.com/lexhall/lawdesk/pkg/types"
)

var (
	docUpdateID    string
	docUpdateTitle string
	docUpdateType  string
)

var docsUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Edit title or type of an existing document",
	Long: `Update overlays the provided fields onto the document with the given
id. The owning case, upload date, and size are fixed at creation. An
unknown id is not an error.

Example:
  lawdesk docs update --id <uuid> --title 起訴狀（修正版）`,
	RunE: runDocsUpdate,
}

func init() {
	docsUpdateCmd.Flags().StringVar(&docUpdateID, "id", "", "document id (required)")
	docsUpdateCmd.Flags().StringVar(&docUpdateTitle, "title", "", "document title")
	docsUpdateCmd.Flags().StringVar(&docUpdateType, "type", "", "document type")
	_ = docsUpdateCmd.MarkFlagRequired("id")
}

func runDocsUpdate(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	values := make(map[string]string)
	if flags.Changed("title") {
		values["title"] = docUpdateTitle
	}
	if flags.Changed("type") {
		values["type"] = docUpdateType
	}
	if errs := practice.DocumentForm.ValidatePartial(values); !errs.Ok() {
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

	patch := types.DocumentPatch{
		Title: strPtrIfChanged(flags.Changed("title"), docUpdateTitle),
		Type:  strPtrIfChanged(flags.Changed("type"), docUpdateType),
	}

	updated, ok, err := p.Documents.Update(docUpdateID, patch)
	if err != nil {
		logger := newLogger()
		logger.Warn().Err(err).Msg("document saved in memory only")
	}
	if !ok {
		fmt.Printf("No document with id %s; nothing changed\n", docUpdateID)
		return nil
	}

	if flagJSON {
		return printJSON(updated)
	}
	fmt.Printf("Updated document %s (%s)\n", updated.Title, updated.ID)
	return nil
}
