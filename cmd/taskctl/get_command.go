package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newGetCommand(client *apiClient) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid task ID %q", args[0])
			}

			found, err := client.getTask(id)
			if err != nil {
				return err
			}

			cmd.Println(renderTaskTable([]task{*found}))
			return nil
		},
	}
}
