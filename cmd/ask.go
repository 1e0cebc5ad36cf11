package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartlearn/smartlearn/internal/gate"
	"github.com/smartlearn/smartlearn/internal/llm"
	"github.com/smartlearn/smartlearn/internal/screens/askform"
	"github.com/smartlearn/smartlearn/internal/tutor"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the AI tutor a question",
	Long: "Ask answers a study question with key points, a step-by-step explanation,\n" +
		"an example, common mistakes, and study tips. With no arguments it opens\n" +
		"the interactive form; with arguments it answers directly.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, sess, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := newTutorService(cmd)

		if len(args) == 0 {
			if _, err := askform.Run(svc, sess); err != nil {
				return err
			}
			return saveSession(ctx, st, sess)
		}

		subject, _ := cmd.Flags().GetString("subject")
		question := strings.Join(args, " ")

		answer := svc.Answer(ctx, subject, question)
		sess.AddQuestion(subject, question, answer.Record)

		fmt.Println(answer.Markdown)
		if answer.Fallback {
			fmt.Println("(offline study notes; the tutor service was unavailable)")
		}
		return saveSession(ctx, st, sess)
	},
}

// newTutorService wires the tutor with whatever provider the environment
// offers. A missing provider is not an error; answers fall back to the
// offline bank.
func newTutorService(cmd *cobra.Command) *tutor.Service {
	logger := newLogger()

	provider, err := llm.NewProviderFromEnv(cmd.Context(), logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Answers will come from the offline study bank.")
		provider = nil
	}
	return tutor.NewService(provider, gate.New(), logger)
}

func init() {
	askCmd.Flags().StringP("subject", "s", "General", "Subject the question belongs to")
}
