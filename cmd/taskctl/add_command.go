package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newAddCommand(client *apiClient) *cobra.Command {
	var description string
	var dueFlag string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a new task (always starts pending)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := taskInput{
				Title:       args[0],
				Description: description,
			}

			if dueFlag != "" {
				due, err := parseDue(dueFlag)
				if err != nil {
					return err
				}
				input.DueDate = &due
			}

			created, err := client.createTask(input)
			if err != nil {
				return err
			}

			cmd.Println(fmt.Sprintf("created task %d", created.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "task description")
	cmd.Flags().StringVar(&dueFlag, "due", "", "due date (2006-01-02 or RFC 3339)")

	return cmd
}

// parseDue accepts a plain date or a full RFC 3339 timestamp.
func parseDue(value string) (time.Time, error) {
	if due, err := time.Parse("2006-01-02", value); err == nil {
		return due, nil
	}
	due, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid due date %q (want 2006-01-02 or RFC 3339)", value)
	}
	return due, nil
}
