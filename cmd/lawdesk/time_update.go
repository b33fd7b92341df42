// Time update command edits an existing time record.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lexhall/lawdesk/internal/practice"
	"github.com/lexhall/lawdesk/pkg/types"
)

var (
	timeUpdateID          string
	timeUpdateDate        string
	timeUpdateMinutes     int
	timeUpdateDescription string
)

var timeUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Edit fields of an existing time record",
	Long: `Update overlays the provided fields onto the time record with the
given id. The related case and user are fixed at creation. An unknown id
is not an error.

Example:
  lawdesk time update --id TR001 --minutes 120`,
	RunE: runTimeUpdate,
}

func init() {
	timeUpdateCmd.Flags().StringVar(&timeUpdateID, "id", "", "time record id (required)")
	timeUpdateCmd.Flags().StringVar(&timeUpdateDate, "date", "", "work date YYYY-MM-DD")
	timeUpdateCmd.Flags().IntVar(&timeUpdateMinutes, "minutes", 0, "duration in minutes")
	timeUpdateCmd.Flags().StringVar(&timeUpdateDescription, "description", "", "what the time was spent on")
	_ = timeUpdateCmd.MarkFlagRequired("id")
}

func runTimeUpdate(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	values := make(map[string]string)
	if flags.Changed("date") {
		values["date"] = timeUpdateDate
	}
	if flags.Changed("minutes") {
		values["minutes"] = strconv.Itoa(timeUpdateMinutes)
	}
	if flags.Changed("description") {
		values["description"] = timeUpdateDescription
	}
	if errs := practice.TimeForm.ValidatePartial(values); !errs.Ok() {
		return errs
	}
	if flags.Changed("minutes") && timeUpdateMinutes <= 0 {
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

	patch := types.TimePatch{
		Date:        strPtrIfChanged(flags.Changed("date"), timeUpdateDate),
		Description: strPtrIfChanged(flags.Changed("description"), timeUpdateDescription),
	}
	if flags.Changed("minutes") {
		patch.Minutes = &timeUpdateMinutes
	}

	updated, ok, err := p.Time.Update(timeUpdateID, patch)
	if err != nil {
		logger := newLogger()
		logger.Warn().Err(err).Msg("time record saved in memory only")
	}
	if !ok {
		fmt.Printf("No time record with id %s; nothing changed\n", timeUpdateID)
		return nil
	}

	if flagJSON {
		return printJSON(updated)
	}
	fmt.Printf("Updated time record %s (%d minutes)\n", updated.ID, updated.Minutes)
	return nil
}
