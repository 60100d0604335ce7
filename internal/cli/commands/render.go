package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/leapstack-labs/students/internal/store"
)

// emptyRosterMessage is printed instead of a table when no rows match.
const emptyRosterMessage = "Список студентов пуст."

// renderRoster writes the student records in the requested format.
func renderRoster(w io.Writer, students []store.Student, format string) error {
	switch format {
	case "json":
		if students == nil {
			students = []store.Student{}
		}
		return renderJSON(w, students)
	case "md", "markdown":
		return renderRosterMarkdown(w, students)
	case "csv":
		return renderRosterCSV(w, students)
	default:
		renderRosterTable(w, students)
		return nil
	}
}

// renderRosterTable renders the bordered fixed-width table: index right in
// 4 columns, name left in 30, group left in 20, grades right in 15.
func renderRosterTable(w io.Writer, students []store.Student) {
	if len(students) == 0 {
		_, _ = fmt.Fprintln(w, emptyRosterMessage)
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleDefault)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignCenter, WidthMin: 4, WidthMax: 4},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignCenter, WidthMin: 30, WidthMax: 30},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignCenter, WidthMin: 20, WidthMax: 20},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignCenter, WidthMin: 15, WidthMax: 15},
	})

	t.AppendHeader(table.Row{"№", "Ф.И.О.", "Группа", "Успеваемость"})
	for i, st := range students {
		t.AppendRow(table.Row{i + 1, st.Name, st.Group, formatGrades(st.Grades)})
	}

	t.Render()
}

func renderRosterMarkdown(w io.Writer, students []store.Student) error {
	if len(students) == 0 {
		_, _ = fmt.Fprintln(w, emptyRosterMessage)
		return nil
	}

	_, _ = fmt.Fprintln(w, "| № | Ф.И.О. | Группа | Успеваемость |")
	_, _ = fmt.Fprintln(w, "| --- | --- | --- | --- |")
	for i, st := range students {
		_, _ = fmt.Fprintf(w, "| %d | %s | %s | %s |\n",
			i+1, st.Name, st.Group, formatGrades(st.Grades))
	}
	return nil
}

func renderRosterCSV(w io.Writer, students []store.Student) error {
	_, _ = fmt.Fprintln(w, "name,group,grade")
	for _, st := range students {
		_, _ = fmt.Fprintln(w, strings.Join([]string{
			escapeCSV(st.Name),
			escapeCSV(st.Group),
			escapeCSV(formatGrades(st.Grades)),
		}, ","))
	}
	return nil
}

// renderGroups writes the group counts in the requested format.
func renderGroups(w io.Writer, groups []store.GroupCount, format string) error {
	switch format {
	case "json":
		if groups == nil {
			groups = []store.GroupCount{}
		}
		return renderJSON(w, groups)
	case "md", "markdown":
		if len(groups) == 0 {
			_, _ = fmt.Fprintln(w, "Список групп пуст.")
			return nil
		}
		_, _ = fmt.Fprintln(w, "| Группа | Студентов |")
		_, _ = fmt.Fprintln(w, "| --- | --- |")
		for _, g := range groups {
			_, _ = fmt.Fprintf(w, "| %s | %d |\n", g.Title, g.Students)
		}
		return nil
	case "csv":
		_, _ = fmt.Fprintln(w, "group,students")
		for _, g := range groups {
			_, _ = fmt.Fprintf(w, "%s,%d\n", escapeCSV(g.Title), g.Students)
		}
		return nil
	default:
		if len(groups) == 0 {
			_, _ = fmt.Fprintln(w, "Список групп пуст.")
			return nil
		}
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleDefault)
		t.AppendHeader(table.Row{"Группа", "Студентов"})
		for _, g := range groups {
			t.AppendRow(table.Row{g.Title, g.Students})
		}
		t.Render()
		return nil
	}
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatGrades joins the grade list with comma-space, the way the table
// column expects it.
func formatGrades(grades []int64) string {
	parts := make([]string, len(grades))
	for i, g := range grades {
		parts[i] = strconv.FormatInt(g, 10)
	}
	return strings.Join(parts, ", ")
}

func escapeCSV(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
