// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server scoped to the logged-in account.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/prvault/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout and exposes the logged-in
account's training data. Log in before starting it.

ASSISTANT CONFIGURATION:

  {
    "mcpServers": {
      "prvault": {
        "command": "prvault",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_bodyweight   Record today's bodyweight
  get_prs          Current one-rep maxes and bodyweight
  get_streak       Consecutive-day bodyweight logging streak
  list_workouts    Saved workout templates
  get_program      Weekly program from current maxes

AVAILABLE RESOURCES:

  prvault://summary      Training dashboard
  prvault://bodyweight   Bodyweight history`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireSession()
		if err != nil {
			return err
		}

		server, err := mcp.NewServer(store, session, statsSvc, workoutSvc, settingsSvc)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
