// Package store persists the student roster in an embedded DuckDB database.
// It owns the schema, the group get-or-create lookup, and the join queries
// used by the CLI.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	_ "github.com/marcboeker/go-duckdb" // duckdb driver
)

//go:embed schema.sql
var schemaSQL string

// Student is a roster record as returned by the list queries.
type Student struct {
	Name   string  `json:"name"`
	Group  string  `json:"group"`
	Grades []int64 `json:"grade"`
}

// GroupCount pairs a group title with its number of students.
type GroupCount struct {
	Title    string `json:"group"`
	Students int64  `json:"students"`
}

// Store wraps a single DuckDB database file holding the roster.
type Store struct {
	db   *sql.DB
	path string
}

// New creates a new roster store instance.
func New() *Store {
	return &Store{}
}

// Open opens a connection to the DuckDB database at path.
// Use ":memory:" for an in-memory database.
func (s *Store) Open(ctx context.Context, path string) error {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return fmt.Errorf("failed to open duckdb database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping duckdb database: %w", err)
	}

	s.db = db
	s.path = path
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the database location the store was opened with.
func (s *Store) Path() string {
	return s.path
}

// InitSchema creates the sequences and tables if they do not exist yet.
// Safe to call on every invocation.
func (s *Store) InitSchema(ctx context.Context) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	for _, stmt := range strings.Split(schemaSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}

// ResolveGroup returns the identifier of the group with the given title,
// creating the group if no row matches. The lookup-then-insert pair is not
// atomic; concurrent processes writing the same title can duplicate it.
func (s *Store) ResolveGroup(ctx context.Context, title string) (int64, error) {
	if s.db == nil {
		return 0, fmt.Errorf("database not opened")
	}

	var id int64
	err := s.db.QueryRowContext(ctx,
		`SELECT group_id FROM groups WHERE group_title = ?`, title,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to look up group: %w", err)
	}

	// RETURNING keeps the id read on the same statement; sequence currval
	// is session-scoped and the sql.DB pool gives no session guarantee.
	if err := s.db.QueryRowContext(ctx,
		`INSERT INTO groups VALUES (nextval('group_seq'), ?) RETURNING group_id`, title,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create group: %w", err)
	}
	return id, nil
}

// AddStudent inserts one student row. The grade argument is comma-separated
// text; conversion to INTEGER[] happens inside DuckDB, so malformed input
// fails there and propagates as an ordinary error.
func (s *Store) AddStudent(ctx context.Context, name string, groupID int64, grade string) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	list := strings.TrimSpace(grade)
	if !strings.HasPrefix(list, "[") {
		list = "[" + list + "]"
	}

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO students VALUES (nextval('student_seq'), ?, ?, CAST(? AS INTEGER[]))`,
		name, groupID, list,
	); err != nil {
		return fmt.Errorf("failed to insert student: %w", err)
	}
	return nil
}

const selectStudents = `
	SELECT students.student_name, groups.group_title, students.student_grade
	FROM students
	INNER JOIN groups ON groups.group_id = students.group_id`

// ListStudents returns every student joined with its group title, in
// storage order.
func (s *Store) ListStudents(ctx context.Context) ([]Student, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	rows, err := s.db.QueryContext(ctx, selectStudents)
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	return scanStudents(rows)
}

// ListStudentsByGroup returns the students whose group title equals title.
func (s *Store) ListStudentsByGroup(ctx context.Context, title string) ([]Student, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	rows, err := s.db.QueryContext(ctx,
		selectStudents+` WHERE groups.group_title = ?`, title)
	if err != nil {
		return nil, fmt.Errorf("failed to query students by group: %w", err)
	}
	return scanStudents(rows)
}

// ListGroups returns each group title with its student count.
func (s *Store) ListGroups(ctx context.Context) ([]GroupCount, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT groups.group_title, COUNT(students.student_id)
		FROM groups
		LEFT JOIN students ON students.group_id = groups.group_id
		GROUP BY groups.group_title
		ORDER BY groups.group_title`)
	if err != nil {
		return nil, fmt.Errorf("failed to query groups: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []GroupCount
	for rows.Next() {
		var gc GroupCount
		if err := rows.Scan(&gc.Title, &gc.Students); err != nil {
			return nil, fmt.Errorf("failed to scan group row: %w", err)
		}
		out = append(out, gc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating group rows: %w", err)
	}
	return out, nil
}

func scanStudents(rows *sql.Rows) ([]Student, error) {
	defer func() { _ = rows.Close() }()

	var out []Student
	for rows.Next() {
		var st Student
		var grades any
		if err := rows.Scan(&st.Name, &st.Group, &grades); err != nil {
			return nil, fmt.Errorf("failed to scan student row: %w", err)
		}
		list, err := gradeValues(grades)
		if err != nil {
			return nil, err
		}
		st.Grades = list
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}
	return out, nil
}

// gradeValues converts a scanned INTEGER[] column into an int64 slice.
// The duckdb driver hands list values back as []any with int32 elements.
func gradeValues(v any) ([]int64, error) {
	switch list := v.(type) {
	case nil:
		return nil, nil
	case []int64:
		return list, nil
	case []int32:
		out := make([]int64, len(list))
		for i, n := range list {
			out[i] = int64(n)
		}
		return out, nil
	case []any:
		out := make([]int64, 0, len(list))
		for _, e := range list {
			switch n := e.(type) {
			case int32:
				out = append(out, int64(n))
			case int64:
				out = append(out, n)
			case int:
				out = append(out, int64(n))
			default:
				return nil, fmt.Errorf("unexpected grade element type %T", e)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unexpected grade column type %T", v)
	}
}
