package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/taskboard/internal/client/models"
)

const unassigned = "Unassigned"

// assigneeName is the presentation-time default for an absent employee
// embed. The data model itself never holds this placeholder.
func assigneeName(t models.Task) string {
	if t.Employee == nil {
		return unassigned
	}
	return t.Employee.Name
}

func dueDateLabel(t models.Task) string {
	if t.DueDate == nil {
		return "-"
	}
	return t.DueDate.Local().Format("2006-01-02 15:04")
}

func renderEmployees(w io.Writer, employees []models.Employee) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE")
	for _, e := range employees {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.ID, e.Name, e.Email, e.Role)
	}
	tw.Flush()
}

func renderTasks(w io.Writer, tasks []models.Task) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tDUE\tEMPLOYEE")
	for _, t := range tasks {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", t.ID, t.Title, t.Status, dueDateLabel(t), assigneeName(t))
	}
	tw.Flush()
}

func renderTaskDetails(w io.Writer, t *models.Task) {
	fmt.Fprintf(w, "Id: %d\n", t.ID)
	fmt.Fprintf(w, "Title: %s\n", t.Title)
	if t.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", t.Description)
	}
	fmt.Fprintf(w, "Status: %s\n", t.Status)
	fmt.Fprintf(w, "Due: %s\n", dueDateLabel(*t))
	fmt.Fprintf(w, "Employee: %s\n", assigneeName(*t))
}
