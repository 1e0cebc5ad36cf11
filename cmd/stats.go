package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartlearn/smartlearn/internal/analytics"
	"github.com/smartlearn/smartlearn/internal/session"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, sess, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		summary := sess.Summary()

		fmt.Println("Session Summary")
		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("Plan:               %s", summary.Plan)
		if summary.Plan == "Free" {
			fmt.Printf("  (%d of %d quizzes used)", summary.QuizGenerations, summary.FreeQuizLimit)
		}
		fmt.Println()
		fmt.Printf("Questions asked:    %d\n", summary.TotalQuestions)
		fmt.Printf("Quizzes generated:  %d\n", summary.QuizzesGenerated)
		fmt.Printf("Quizzes completed:  %d\n", summary.TotalQuizzes)
		if summary.TotalQuizzes > 0 {
			fmt.Printf("Average score:      %.1f%%\n", summary.AverageQuizScore)
		}
		if summary.MostActiveSubject != "" {
			fmt.Printf("Most active:        %s\n", summary.MostActiveSubject)
		}
		if summary.BestPerformingSubject != "" {
			fmt.Printf("Best performing:    %s\n", summary.BestPerformingSubject)
		}
		fmt.Printf("Session time:       %d min\n", summary.SessionDurationMinutes)

		subjects := sess.SubjectAnalytics()
		if len(subjects) > 0 {
			fmt.Println()
			fmt.Println("By Subject")
			fmt.Println(strings.Repeat("─", 60))
			fmt.Printf("%-14s  %9s  %8s  %7s  %s\n",
				"Subject", "Questions", "Quizzes", "Avg", "Topics")
			for _, sub := range subjects {
				avg := "-"
				if sub.QuizAttempts > 0 {
					avg = fmt.Sprintf("%.0f%%", sub.AverageQuizScore)
				}
				fmt.Printf("%-14s  %9d  %8d  %7s  %s\n",
					sub.Subject, sub.QuestionsAsked, sub.QuizAttempts, avg,
					strings.Join(sub.TopicsCovered, ", "))
			}
		}

		perf := analytics.QuizPerformance(sess)
		if len(perf.TopicAverages) > 0 {
			fmt.Println()
			fmt.Println("Quiz Performance")
			fmt.Println(strings.Repeat("─", 60))
			if len(perf.StrengthAreas) > 0 {
				fmt.Printf("Strengths:     %s\n", strings.Join(perf.StrengthAreas, ", "))
			}
			if len(perf.LowPerformanceAreas) > 0 {
				fmt.Printf("Needs work:    %s\n", strings.Join(perf.LowPerformanceAreas, ", "))
			}
		}

		history := sess.LearningHistory(historyLimit(cmd))
		if len(history) > 0 {
			fmt.Println()
			fmt.Println("Recent Activity")
			fmt.Println(strings.Repeat("─", 60))
			for _, a := range history {
				fmt.Printf("%-16s  %s\n", a.Timestamp.Local().Format("Jan 02 15:04"), describeActivity(a))
			}
		}

		return nil
	},
}

func describeActivity(a session.Activity) string {
	switch a.Kind {
	case session.ActivityQuestion:
		question := a.Question.Question
		if len(question) > 40 {
			question = question[:40] + "…"
		}
		return fmt.Sprintf("asked (%s): %s", a.Question.Subject, question)
	case session.ActivityQuiz:
		return fmt.Sprintf("quiz (%s / %s): %.0f%%", a.Quiz.Subject, a.Quiz.Topic, a.Quiz.Score)
	}
	return string(a.Kind)
}

func historyLimit(cmd *cobra.Command) int {
	limit, _ := cmd.Flags().GetInt("history")
	if limit < 0 {
		return 0
	}
	return limit
}

func init() {
	statsCmd.Flags().Int("history", 5, "Number of recent activities to show")
}
