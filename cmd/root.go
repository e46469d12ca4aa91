package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/selah-app/selah/internal/quiz"
	"github.com/selah-app/selah/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "selah",
	Short: "Scripture study companion",
	Long:  "Selah — terminal companion for daily scripture study: trivia sessions, streaks, and growth levels.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SELAH_DB env var)")
	rootCmd.PersistentFlags().String("user", "", "Profile to act as (overrides SELAH_USER env var)")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(reconcileCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SELAH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveUserID returns the acting profile: --user flag, then SELAH_USER,
// then "local" for single-profile installs.
func resolveUserID(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u
	}
	if u := os.Getenv("SELAH_USER"); u != "" {
		return u
	}
	return "local"
}

// openService opens the store and wires the engine service over it. The
// caller owns the returned store and must Close it.
func openService(cmd *cobra.Command) (*quiz.Service, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	svc := quiz.NewService(st.EventRepo(), st.ProfileRepo(), st.ProgressRepo())
	return svc, st, nil
}
