package main

import (
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderTaskTable renders tasks as an aligned terminal table.
func renderTaskTable(tasks []task) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{"ID", "Title", "Status", "Due", "Description"})
	for _, t := range tasks {
		tw.AppendRow(table.Row{
			strconv.FormatInt(t.ID, 10),
			t.Title,
			t.Status,
			formatDue(t.DueDate),
			t.Description,
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, WidthMax: 40},
	})

	return tw.Render()
}

func formatDue(due time.Time) string {
	if due.IsZero() {
		return "-"
	}
	return due.Format("2006-01-02 15:04")
}
