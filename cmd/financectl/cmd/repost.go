package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var repostCmd = &cobra.Command{
	Use:   "repost <recordID>",
	Short: "Post the journal of a record left unlinked",
	Long: `Retries journal posting for a financial record whose original
posting failed. Records that already have a journal are refused.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		record, err := app.Services.Transaction.RepostJournal(ctx, args[0], operator)
		if err != nil {
			return fmt.Errorf("repost %s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "record %s linked to journal %s\n", record.RecordID, deref(record.JournalEntryID))
		return nil
	},
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
