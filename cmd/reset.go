package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			fmt.Println("This deletes all progress for the session. Re-run with --yes to confirm.")
			return nil
		}

		st, sess, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Sessions().Delete(cmd.Context(), sess.ID); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
		fmt.Printf("Session %q deleted.\n", sess.ID)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
