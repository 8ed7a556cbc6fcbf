package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand(client *apiClient) *cobra.Command {
	var statusCode int
	var page int
	var pageSize int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, optionally filtered by status or paginated",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Status filter takes precedence over pagination; the
			// server exposes them as separate endpoints.
			if cmd.Flags().Changed("status") {
				tasks, err := client.listTasksByStatus(statusCode)
				if err != nil {
					return err
				}
				cmd.Println(renderTaskTable(tasks))
				return nil
			}

			if cmd.Flags().Changed("page") || cmd.Flags().Changed("page-size") {
				result, err := client.listTasksPaged(page, pageSize)
				if err != nil {
					return err
				}
				cmd.Println(renderTaskTable(result.Tasks))
				cmd.Println(fmt.Sprintf("page %d of %d (%d tasks total)",
					result.CurrentPage, result.TotalPages, result.TotalCount))
				return nil
			}

			tasks, err := client.listTasks()
			if err != nil {
				return err
			}
			cmd.Println(renderTaskTable(tasks))
			return nil
		},
	}

	cmd.Flags().IntVar(&statusCode, "status", 0,
		"filter by status code (0 pending, 1 in progress, 2 completed, 3 overdue)")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 10, "tasks per page")

	return cmd
}
