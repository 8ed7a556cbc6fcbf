// Package main implements taskctl, a command-line client for the task
// management API. Every command is a single HTTP round-trip against a
// running server; no business logic lives here.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

const defaultServerURL = "http://localhost:8080"

func newRootCommand() *cobra.Command {
	var serverFlag string

	client := newClient(&serverFlag)

	rootCmd := &cobra.Command{
		Use:           "taskctl",
		Short:         "Command-line client for the task management API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	defaultServer := defaultServerURL
	if env := os.Getenv("TASKAPI_SERVER"); env != "" {
		defaultServer = env
	}
	rootCmd.PersistentFlags().
		StringVar(&serverFlag, "server", defaultServer, "Base URL of the task API server")

	rootCmd.AddCommand(newListCommand(client))
	rootCmd.AddCommand(newGetCommand(client))
	rootCmd.AddCommand(newAddCommand(client))
	rootCmd.AddCommand(newUpdateCommand(client))
	rootCmd.AddCommand(newDeleteCommand(client))
	rootCmd.AddCommand(newExportCommand(client))

	return rootCmd
}
