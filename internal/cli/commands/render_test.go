package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leapstack-labs/students/internal/store"
)

func TestRenderRosterTable_Empty(t *testing.T) {
	buf := new(bytes.Buffer)
	if err := renderRoster(buf, nil, "table"); err != nil {
		t.Fatalf("renderRoster() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, emptyRosterMessage) {
		t.Errorf("output should contain %q, got: %s", emptyRosterMessage, out)
	}
	if strings.Contains(out, "+") {
		t.Errorf("empty roster must not render a table, got: %s", out)
	}
}

func TestRenderRosterTable_Geometry(t *testing.T) {
	students := []store.Student{
		{Name: "Ivanov I.I.", Group: "IS-21", Grades: []int64{4, 5, 5}},
	}

	buf := new(bytes.Buffer)
	if err := renderRoster(buf, students, "table"); err != nil {
		t.Fatalf("renderRoster() error = %v", err)
	}
	out := buf.String()

	// Index right-aligned in 4 columns, name left in 30, group left in 20,
	// grades right in 15, comma-space joined.
	for _, want := range []string{
		"|    1 |",
		"| Ivanov I.I.                    |",
		"| IS-21                |",
		"|         4, 5, 5 |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got:\n%s", want, out)
		}
	}

	// Border rows use + and - matching the column widths.
	border := "+------+--------------------------------+----------------------+-----------------+"
	if !strings.Contains(out, border) {
		t.Errorf("output should contain border %q, got:\n%s", border, out)
	}

	for _, header := range []string{"№", "Ф.И.О.", "Группа", "Успеваемость"} {
		if !strings.Contains(out, header) {
			t.Errorf("output should contain header %q, got:\n%s", header, out)
		}
	}
}

func TestRenderRoster_JSON(t *testing.T) {
	students := []store.Student{
		{Name: "Ivanov I.I.", Group: "IS-21", Grades: []int64{4, 5, 5}},
	}

	buf := new(bytes.Buffer)
	if err := renderRoster(buf, students, "json"); err != nil {
		t.Fatalf("renderRoster() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{`"name": "Ivanov I.I."`, `"group": "IS-21"`, `"grade"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got: %s", want, out)
		}
	}
}

func TestRenderRoster_JSONEmptyIsArray(t *testing.T) {
	buf := new(bytes.Buffer)
	if err := renderRoster(buf, nil, "json"); err != nil {
		t.Fatalf("renderRoster() error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("empty roster as json = %q, want []", got)
	}
}

func TestRenderRoster_Markdown(t *testing.T) {
	students := []store.Student{
		{Name: "Ivanov I.I.", Group: "IS-21", Grades: []int64{4, 5}},
	}

	buf := new(bytes.Buffer)
	if err := renderRoster(buf, students, "markdown"); err != nil {
		t.Fatalf("renderRoster() error = %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "| 1 | Ivanov I.I. | IS-21 | 4, 5 |") {
		t.Errorf("unexpected markdown output:\n%s", out)
	}
}

func TestRenderRoster_CSV(t *testing.T) {
	students := []store.Student{
		{Name: "Ivanov I.I.", Group: "IS-21", Grades: []int64{4, 5, 5}},
	}

	buf := new(bytes.Buffer)
	if err := renderRoster(buf, students, "csv"); err != nil {
		t.Fatalf("renderRoster() error = %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "name,group,grade") {
		t.Errorf("csv output missing header: %s", out)
	}
	// The joined grade list contains commas, so the cell must be quoted.
	if !strings.Contains(out, `Ivanov I.I.,IS-21,"4, 5, 5"`) {
		t.Errorf("unexpected csv row:\n%s", out)
	}
}

func TestRenderGroups(t *testing.T) {
	groups := []store.GroupCount{
		{Title: "IS-21", Students: 2},
		{Title: "IS-22", Students: 1},
	}

	tests := []struct {
		format string
		want   string
	}{
		{"table", "IS-21"},
		{"json", `"students": 2`},
		{"markdown", "| IS-21 | 2 |"},
		{"csv", "IS-21,2"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			buf := new(bytes.Buffer)
			if err := renderGroups(buf, groups, tt.format); err != nil {
				t.Fatalf("renderGroups() error = %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output should contain %q, got: %s", tt.want, buf.String())
			}
		})
	}
}

func TestFormatGrades(t *testing.T) {
	tests := []struct {
		name   string
		grades []int64
		want   string
	}{
		{"several", []int64{4, 5, 5}, "4, 5, 5"},
		{"single", []int64{3}, "3"},
		{"none", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatGrades(tt.grades); got != tt.want {
				t.Errorf("formatGrades(%v) = %q, want %q", tt.grades, got, tt.want)
			}
		})
	}
}
