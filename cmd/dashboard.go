package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/selah-app/selah/internal/level"
	"github.com/selah-app/selah/internal/quiz"
	"github.com/selah-app/selah/internal/streak"
	"github.com/selah-app/selah/internal/ui/theme"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your streak and growth level",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd)
	},
}

// runDashboard renders the engagement dashboard. A store failure
// degrades to the zero state rather than erroring: the dashboard is a
// morning glance, not a place for stack traces.
func runDashboard(cmd *cobra.Command) error {
	d, err := loadDashboard(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, theme.Hint.Render("Progress unavailable: "+err.Error()))
		d = &quiz.Dashboard{
			Streak: streak.State{},
			Level:  level.Compute(0),
		}
	}

	fmt.Println(renderDashboard(d))
	return nil
}

func loadDashboard(cmd *cobra.Command) (*quiz.Dashboard, error) {
	svc, st, err := openService(cmd)
	if err != nil {
		return nil, err
	}
	defer st.Close()
	return svc.Dashboard(cmd.Context(), resolveUserID(cmd))
}

func renderDashboard(d *quiz.Dashboard) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(fmt.Sprintf("🔥 %d day streak", d.Streak.Current)))
	b.WriteString("\n")
	b.WriteString(renderWeek(d.Streak.Window))
	b.WriteString("\n\n")

	b.WriteString(theme.Title.Render(fmt.Sprintf("Level %d · %s", d.Level.Level, d.Level.Name)))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(d.Level.Identity))
	b.WriteString("\n")
	b.WriteString(renderProgressBar(d.Level.ProgressPercent, 24))
	if d.Level.IsMax {
		b.WriteString("  " + theme.Body.Render("highest level reached"))
	} else {
		b.WriteString("  " + theme.Subtitle.Render(fmt.Sprintf("%d to next level", d.Level.ActionsToNext)))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render(d.Level.Encouragement))

	return theme.Card.Render(b.String())
}

// renderWeek draws the trailing 7 days, oldest first, today last.
func renderWeek(window []streak.DayStatus) string {
	if len(window) == 0 {
		window = make([]streak.DayStatus, streak.WindowDays)
	}
	marks := make([]string, 0, len(window))
	for _, day := range window {
		if day.Active {
			marks = append(marks, theme.StreakLit.Render("●"))
		} else {
			marks = append(marks, theme.StreakDim.Render("○"))
		}
	}
	return strings.Join(marks, " ")
}

func renderProgressBar(percent, width int) string {
	filled := percent * width / 100
	if filled > width {
		filled = width
	}
	return theme.ProgressFilled.Render(strings.Repeat("█", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat("░", width-filled)) +
		theme.Subtitle.Render(fmt.Sprintf(" %d%%", percent))
}
