package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/selah-app/selah/internal/ui/theme"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Repair the lifetime action counter from the event log",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		res, err := svc.Reconcile(cmd.Context(), resolveUserID(cmd))
		if err != nil {
			return err
		}
		if res.Repaired {
			fmt.Println(theme.Body.Render(fmt.Sprintf("Counter repaired: %d → %d", res.Counter, res.LogCount)))
		} else {
			fmt.Println(theme.Subtitle.Render(fmt.Sprintf("Counter in sync at %d (log has %d qualifying events)", res.Counter, res.LogCount)))
		}
		return nil
	},
}
