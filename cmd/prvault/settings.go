// ABOUTME: CLI commands for per-user display settings.
// ABOUTME: Theme, accent color, and notification preference.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/prvault/internal/models"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage display settings",
	Long: `View and change display settings.

THEMES:    dark (default), light
ACCENTS:   original, darkblue, pink, bloodred, lime

Examples:
  prvault settings show
  prvault settings theme light
  prvault settings accent lime
  prvault settings notifications off`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireSession()
		if err != nil {
			return err
		}

		settings, err := settingsSvc.Load(cmd.Context(), session.ID)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		faint := color.New(color.Faint)
		notif := "off"
		if settings.Notifications {
			notif = "on"
		}
		fmt.Printf("Theme:         %s\n", settings.Theme)
		fmt.Printf("Accent:        %s %s\n", settings.Accent, faint.Sprint(models.AccentColors[settings.Accent]))
		fmt.Printf("Notifications: %s\n", notif)
		return nil
	},
}

var settingsThemeCmd = &cobra.Command{
	Use:       "theme <dark|light>",
	Short:     "Set the theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"dark", "light"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateSettings(cmd, func(s *models.Settings) {
			s.Theme = models.Theme(args[0])
		})
	},
}

var settingsAccentCmd = &cobra.Command{
	Use:   "accent <name>",
	Short: "Set the accent color",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidAccent(args[0]) {
			names := make([]string, 0, len(models.AllAccents))
			for _, a := range models.AllAccents {
				names = append(names, string(a))
			}
			return fmt.Errorf("unknown accent %q: choose from %s", args[0], strings.Join(names, ", "))
		}
		return updateSettings(cmd, func(s *models.Settings) {
			s.Accent = models.Accent(args[0])
		})
	},
}

var settingsNotificationsCmd = &cobra.Command{
	Use:       "notifications <on|off>",
	Short:     "Toggle notifications",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] != "on" && args[0] != "off" {
			return fmt.Errorf("expected 'on' or 'off', got %q", args[0])
		}
		return updateSettings(cmd, func(s *models.Settings) {
			s.Notifications = args[0] == "on"
		})
	},
}

// updateSettings loads, mutates, and saves the settings row.
func updateSettings(cmd *cobra.Command, mutate func(*models.Settings)) error {
	session, err := requireSession()
	if err != nil {
		return err
	}

	settings, err := settingsSvc.Load(cmd.Context(), session.ID)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	mutate(settings)

	if err := settingsSvc.Save(cmd.Context(), session.ID, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	color.Green("✓ Settings updated")
	return nil
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsThemeCmd)
	settingsCmd.AddCommand(settingsAccentCmd)
	settingsCmd.AddCommand(settingsNotificationsCmd)
	rootCmd.AddCommand(settingsCmd)
}
