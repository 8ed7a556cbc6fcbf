package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newUpdateCommand(client *apiClient) *cobra.Command {
	var title string
	var description string
	var status string
	var dueFlag string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a task's title, description, status, or due date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid task ID %q", args[0])
			}

			// The server requires a full task on update, so start
			// from the current state and overlay the changed flags.
			current, err := client.getTask(id)
			if err != nil {
				return err
			}

			input := taskInput{
				Title:       current.Title,
				Description: current.Description,
				Status:      current.Status,
				DueDate:     &current.DueDate,
			}
			if cmd.Flags().Changed("title") {
				input.Title = title
			}
			if cmd.Flags().Changed("description") {
				input.Description = description
			}
			if cmd.Flags().Changed("status") {
				input.Status = status
			}
			if cmd.Flags().Changed("due") {
				due, err := parseDue(dueFlag)
				if err != nil {
					return err
				}
				input.DueDate = &due
			}

			if err := client.updateTask(id, input); err != nil {
				return err
			}

			cmd.Println(fmt.Sprintf("updated task %d", id))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description")
	cmd.Flags().StringVarP(&status, "status", "s", "",
		"new status (pending, in_progress, completed)")
	cmd.Flags().StringVar(&dueFlag, "due", "", "new due date (2006-01-02 or RFC 3339)")

	return cmd
}
