// ABOUTME: CLI commands for account registration and login sessions.
// ABOUTME: Sessions persist in the local keyring between invocations.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var authPassword string

var registerCmd = &cobra.Command{
	Use:   "register <username>",
	Short: "Create a new account",
	Long: `Create a new account and log in.

The password is read from --password or prompted on stdin. Credentials
never leave your machine; the password digest is stored locally.

Examples:
  prvault register alice
  prvault register alice --password hunter2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]

		password, err := readPassword()
		if err != nil {
			return err
		}

		id, err := accountSvc.Register(cmd.Context(), username, password)
		if err != nil {
			return fmt.Errorf("failed to register: %w", err)
		}

		session, err := accountSvc.Login(cmd.Context(), username, password)
		if err != nil {
			return fmt.Errorf("registered but failed to log in: %w", err)
		}
		if err := ring.SaveSession(session); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}

		color.Green("✓ Registered %s", username)
		fmt.Printf("  ID: %s\n", id[:8])
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Log in to an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]

		password, err := readPassword()
		if err != nil {
			return err
		}

		session, err := accountSvc.Login(cmd.Context(), username, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		if err := ring.SaveSession(session); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}

		color.Green("✓ Logged in as %s", session.Username)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ring.Clear(); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		color.Green("✓ Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireSession()
		if err != nil {
			return err
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s %s\n", session.Username, faint.Sprint(session.ID[:8]))
		return nil
	},
}

// readPassword returns the --password flag value, or prompts on stdin.
func readPassword() (string, error) {
	if authPassword != "" {
		return authPassword, nil
	}

	fmt.Fprint(os.Stderr, "Password: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func init() {
	registerCmd.Flags().StringVarP(&authPassword, "password", "p", "", "account password (prompted if omitted)")
	loginCmd.Flags().StringVarP(&authPassword, "password", "p", "", "account password (prompted if omitted)")

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
