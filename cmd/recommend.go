package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartlearn/smartlearn/internal/analytics"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Show personalized study recommendations",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, sess, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		recs := analytics.Recommendations(sess)
		if len(recs) == 0 {
			fmt.Println("No recommendations yet. Ask a few questions or take a quiz first.")
			return nil
		}

		fmt.Println("Recommendations")
		fmt.Println(strings.Repeat("─", 60))
		for i, rec := range recs {
			marker := " "
			if rec.Priority == analytics.PriorityHigh {
				marker = "!"
			}
			fmt.Printf("%d. [%s] %s\n", i+1, marker, rec.Title)
			fmt.Printf("      %s\n", rec.Description)
			fmt.Printf("      → %s\n", rec.Action)
		}

		if gaps := analytics.LearningGaps(sess); len(gaps) > 0 {
			fmt.Println()
			fmt.Printf("Learning gaps: %s\n", strings.Join(gaps, ", "))
		}
		if topics := analytics.UnexploredTopics(sess); len(topics) > 0 {
			fmt.Printf("Topics to explore: %s\n", strings.Join(topics, ", "))
		}
		return nil
	},
}
