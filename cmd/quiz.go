package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smartlearn/smartlearn/internal/gate"
	"github.com/smartlearn/smartlearn/internal/llm"
	"github.com/smartlearn/smartlearn/internal/quizgen"
	"github.com/smartlearn/smartlearn/internal/screens/quizplay"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <subject> <topic>",
	Short: "Generate and play a quiz",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		subject, topic := args[0], args[1]

		difficultyFlag, _ := cmd.Flags().GetString("difficulty")
		typeFlag, _ := cmd.Flags().GetString("type")
		count, _ := cmd.Flags().GetInt("questions")
		if count < 1 {
			count = 1
		}

		st, sess, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if !sess.CanGenerateQuiz() {
			fmt.Printf("Free plan limit reached (%d quizzes).\n", sess.FreeQuizLimit)
			fmt.Println("Run `smartlearn upgrade` to unlock unlimited quizzes.")
			return nil
		}

		logger := newLogger()
		provider, err := llm.NewProviderFromEnv(ctx, logger)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "The quiz will come from the built-in question bank.")
			provider = nil
		}
		svc := quizgen.NewService(provider, gate.New(), logger)

		quiz := svc.Generate(ctx, subject, topic,
			quizgen.ParseDifficulty(difficultyFlag),
			quizgen.ParseQuizType(typeFlag),
			count)

		sess.GenerateQuizRecord(quiz)
		if err := saveSession(ctx, st, sess); err != nil {
			return err
		}

		result, err := quizplay.Run(sess, quiz)
		if err != nil {
			return err
		}
		if err := saveSession(ctx, st, sess); err != nil {
			return err
		}

		if result == nil {
			// Quit before the last question; the quiz stays in progress.
			fmt.Println("Quiz left in progress. Your session was saved.")
			return nil
		}
		if remaining := sess.RemainingFreeQuizzes(); remaining >= 0 {
			fmt.Printf("Free quizzes remaining: %d\n", remaining)
		}
		return nil
	},
}

func init() {
	quizCmd.Flags().StringP("difficulty", "d", "intermediate", "Difficulty: beginner, intermediate, or advanced")
	quizCmd.Flags().StringP("type", "t", "concept_check", "Quiz type: concept_check, problem_solving, critical_thinking, or application")
	quizCmd.Flags().IntP("questions", "n", 5, "Number of questions")
}
