package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Compare cached account balances with journal history",
	Long: `Recomputes every account balance from posted journal lines and
prints the accounts whose cached balance has drifted. Exits non-zero
when any drift is found.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		discrepancies, err := app.Services.Reporting.ReconcileBalances(ctx)
		if err != nil {
			return fmt.Errorf("reconcile balances: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(discrepancies) == 0 {
			fmt.Fprintln(out, "All account balances match the journal.")
			return nil
		}

		fmt.Fprintf(out, "%-8s %-32s %18s %18s %18s\n", "CODE", "NAME", "CACHED", "REPLAYED", "DIFFERENCE")
		for _, d := range discrepancies {
			fmt.Fprintf(out, "%-8s %-32s %18s %18s %18s\n",
				d.Code, d.Name,
				d.CachedBalance.StringFixed(2), d.ReplayedBalance.StringFixed(2), d.Difference.StringFixed(2))
		}
		slog.Warn("Balance drift detected", slog.Int("accounts", len(discrepancies)))
		return fmt.Errorf("%d account(s) out of balance", len(discrepancies))
	},
}
