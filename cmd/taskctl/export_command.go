package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCommand(client *apiClient) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all tasks as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" || output == "-" {
				return client.exportTasks(cmd.OutOrStdout())
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			defer func() {
				_ = f.Close()
			}()

			if err := client.exportTasks(f); err != nil {
				return err
			}

			cmd.Println(fmt.Sprintf("wrote %s", output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
