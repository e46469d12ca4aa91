package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/selah-app/selah/internal/bank"
	"github.com/selah-app/selah/internal/enrich"
	"github.com/selah-app/selah/internal/quiz"
	"github.com/selah-app/selah/internal/selector"
	"github.com/selah-app/selah/internal/ui/theme"
)

var quizCmd = &cobra.Command{
	Use:   "quiz [topic]",
	Short: "Start a trivia session",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := ""
		if len(args) > 0 {
			topic = args[0]
		}
		size, _ := cmd.Flags().GetInt("size")
		return runQuiz(cmd, topic, size)
	},
}

func init() {
	quizCmd.Flags().Int("size", selector.DefaultSessionSize, "Questions per session")
}

func runQuiz(cmd *cobra.Command, topic string, size int) error {
	ctx := cmd.Context()
	svc, st, err := openService(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	in := bufio.NewReader(os.Stdin)

	if topic == "" {
		topic, err = chooseTopic(in)
		if err != nil {
			return err
		}
	}

	userID := resolveUserID(cmd)
	sess, err := svc.StartSession(ctx, userID, topic, size)
	if err != nil {
		if errors.Is(err, quiz.ErrNoCredits) {
			fmt.Println(theme.Hint.Render("You've used today's free sessions. Come back tomorrow — or keep studying!"))
			return nil
		}
		return err
	}

	// Verse lookups resolve in the background while the learner answers.
	fetcher := enrich.NewFetcher(enrich.NewClient())
	for _, q := range sess.Questions {
		q := q
		fetcher.Resolve(ctx, q.Reference, func(text string) {
			sess.SetVerse(q.ID, text)
		})
	}

	recorder := svc.Recorder()
	fmt.Println(theme.Title.Render(fmt.Sprintf("— %s · %d questions —", topic, len(sess.Questions))))
	fmt.Println()

	for i, q := range sess.Questions {
		fmt.Println(theme.Body.Render(fmt.Sprintf("%d. %s", i+1, q.Prompt)))
		for j, opt := range q.Options {
			fmt.Println(theme.Subtitle.Render(fmt.Sprintf("   %d) %s", j+1, opt)))
		}

		choice, err := readChoice(in, len(q.Options))
		if err != nil {
			return err
		}

		correct := q.Check(choice)
		sess.RecordResult(correct)
		if correct {
			fmt.Println(theme.Correct.Render("✓ Correct"))
		} else {
			fmt.Println(theme.Incorrect.Render("✗ Not quite") + theme.Body.Render(" — "+q.Options[q.Answer]))
		}
		if q.Explain != "" {
			fmt.Println(theme.Subtitle.Render("  " + q.Explain))
		}
		if verse := sess.Verse(q.ID); verse != "" {
			fmt.Println(theme.Verse.Render(fmt.Sprintf("  %q — %s", verse, q.Reference)))
		} else if q.Reference != "" {
			fmt.Println(theme.Subtitle.Render("  " + q.Reference))
		}
		fmt.Println()

		if err := recorder.RecordAnswer(ctx, userID, q.ID, topic, correct); err != nil {
			fmt.Fprintln(os.Stderr, theme.Hint.Render("answer not saved: "+err.Error()))
		}
	}

	fetcher.Wait()

	answered, correctCount, accuracy := sess.Summary()
	fmt.Println(theme.Title.Render(fmt.Sprintf("Session complete: %d/%d (%.0f%%)", correctCount, answered, accuracy*100)))
	fmt.Println()

	// Re-read the dashboard so the learner sees the streak move.
	if d, err := svc.Dashboard(ctx, userID); err == nil {
		fmt.Println(renderDashboard(d))
	}
	return nil
}

func chooseTopic(in *bufio.Reader) (string, error) {
	topics, err := bank.Topics()
	if err != nil {
		return "", fmt.Errorf("load topics: %w", err)
	}
	fmt.Println(theme.Body.Render("Choose a topic:"))
	for i, t := range topics {
		fmt.Println(theme.Subtitle.Render(fmt.Sprintf("   %d) %s", i+1, t)))
	}
	choice, err := readChoice(in, len(topics))
	if err != nil {
		return "", err
	}
	return topics[choice], nil
}

// readChoice reads a 1-based menu selection, reprompting until it gets
// one in range. Returns the 0-based index.
func readChoice(in *bufio.Reader, n int) (int, error) {
	for {
		fmt.Print(theme.Body.Render("> "))
		line, err := in.ReadString('\n')
		if err != nil {
			return 0, fmt.Errorf("read input: %w", err)
		}
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && v >= 1 && v <= n {
			return v - 1, nil
		}
		fmt.Println(theme.Hint.Render(fmt.Sprintf("enter a number from 1 to %d", n)))
	}
}
