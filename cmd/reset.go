package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/selah-app/selah/internal/store"
	"github.com/selah-app/selah/internal/ui/theme"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase a profile's streaks, levels, and progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := resolveUserID(cmd)

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println(theme.Hint.Render(fmt.Sprintf("This erases all data for %q. Re-run with --yes to confirm.", userID)))
			return nil
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.WipeUser(cmd.Context(), userID); err != nil {
			return err
		}
		fmt.Println(theme.Body.Render(fmt.Sprintf("Erased all data for %q.", userID)))
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the erase")
}
