// ABOUTME: CLI command for deleting the logged-in account.
// ABOUTME: Removes every row the account owns across all tables.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var accountDeleteYes bool

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage the logged-in account",
}

var accountDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete your account and all its data",
	Long: `Permanently delete the logged-in account.

This removes the account and everything it owns: profile, bodyweight
history, workout templates, completed sessions, and settings. There is
no undo.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireSession()
		if err != nil {
			return err
		}

		if !accountDeleteYes {
			fmt.Fprintf(os.Stderr, "Delete account %q and ALL its data? Type the username to confirm: ", session.Username)
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read confirmation: %w", err)
			}
			if strings.TrimSpace(line) != session.Username {
				return fmt.Errorf("confirmation did not match, aborting")
			}
		}

		if err := accountSvc.Delete(cmd.Context(), session.ID); err != nil {
			return fmt.Errorf("failed to delete account: %w", err)
		}

		if err := ring.Clear(); err != nil {
			return fmt.Errorf("account deleted but failed to clear session: %w", err)
		}

		color.Green("✓ Deleted account %s", session.Username)
		return nil
	},
}

func init() {
	accountDeleteCmd.Flags().BoolVarP(&accountDeleteYes, "yes", "y", false, "skip the confirmation prompt")

	accountCmd.AddCommand(accountDeleteCmd)
	rootCmd.AddCommand(accountCmd)
}
