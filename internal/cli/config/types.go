package config

// Defaults applied before any config file, environment variable, or flag.
const (
	// DefaultDBFile is the database location used when --db is not given:
	// students.db in the current working directory.
	DefaultDBFile = "students.db"

	// DefaultOutput is the default rendering mode for read commands.
	DefaultOutput = "table"
)

// Config holds the resolved CLI configuration.
type Config struct {
	// DB is the path to the DuckDB database file.
	DB string `koanf:"db"`

	// Output selects the rendering mode: table, json, markdown, or csv.
	Output string `koanf:"output"`

	// Verbose enables debug logging on stderr.
	Verbose bool `koanf:"verbose"`
}
