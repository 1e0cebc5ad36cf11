package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade the session to the premium plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, sess, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if sess.Premium {
			fmt.Println("Already on the premium plan.")
			return nil
		}

		sess.UpgradeToPremium()
		if err := saveSession(cmd.Context(), st, sess); err != nil {
			return err
		}
		fmt.Println("Upgraded to premium. Quiz generation is now unlimited.")
		return nil
	},
}
