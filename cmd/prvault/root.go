// ABOUTME: Root Cobra command for prvault CLI.
// ABOUTME: Opens config, store, and keyring via PersistentPre/PostRunE.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/harperreed/prvault/internal/config"
	"github.com/harperreed/prvault/internal/keyring"
	"github.com/harperreed/prvault/internal/models"
	"github.com/harperreed/prvault/internal/service"
	"github.com/harperreed/prvault/internal/storage"
)

var (
	cfg    *config.Config
	store  *storage.Store
	ring   *keyring.Keyring
	logger zerolog.Logger

	verbose bool

	accountSvc  *service.AccountService
	statsSvc    *service.StatsService
	workoutSvc  *service.WorkoutService
	sessionSvc  *service.SessionService
	settingsSvc *service.SettingsService
)

var rootCmd = &cobra.Command{
	Use:   "prvault",
	Short: "Personal strength training vault",
	Long: `PRVault is a local-first CLI for tracking strength training.

Everything lives in a SQLite database on your machine: accounts, lift PRs,
bodyweight history, workout templates, and completed sessions.

QUICK START:

  $ prvault register alice              # Create an account (prompts for password)
  $ prvault login alice                 # Log in (session persists between runs)
  $ prvault profile set --bench 100 --squat 140 --deadlift 180
  $ prvault workout create "Push Day" -e "Bench Press:3:10" -e "Dips:3:8"
  $ prvault session <workout-id> --set 0:10:80 --set 1:8:0
  $ prvault stats                       # Streak, PRs, recent bodyweight

PROGRAM GENERATION:

  $ prvault program --week 3            # Five-day split from your current maxes

  Working weights are computed from your PRs and rounded to 1.25 plate
  increments. The deadlift slot follows a seven-week wave.

MCP INTEGRATION:

  Run 'prvault mcp' to start the Model Context Protocol server for use with
  MCP-compatible AI assistants:

  {
    "mcpServers": {
      "prvault": { "command": "prvault", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data is stored at ~/.local/share/prvault/prvault.db (XDG aware).
  The login session is kept in a local keyring next to the database.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).With().Timestamp().Logger()

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		store, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}

		ring, err = keyring.Open(cfg.KeyringDir())
		if err != nil {
			return fmt.Errorf("failed to open keyring: %w", err)
		}

		accountSvc = service.NewAccountService(store, logger)
		statsSvc = service.NewStatsService(store, logger)
		workoutSvc = service.NewWorkoutService(store, logger)
		sessionSvc = service.NewSessionService(store, logger)
		settingsSvc = service.NewSettingsService(store, logger)

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ring != nil {
			if err := ring.Close(); err != nil {
				return err
			}
		}
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// requireSession returns the logged-in session or a friendly error.
func requireSession() (*models.Session, error) {
	session, err := ring.Session()
	if err != nil {
		if errors.Is(err, keyring.ErrNoSession) {
			return nil, fmt.Errorf("not logged in - run 'prvault login <username>'")
		}
		return nil, err
	}
	return session, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
