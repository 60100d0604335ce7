package commands

import (
	"log/slog"
	"os"

	"github.com/leapstack-labs/students/internal/cli/config"
	"github.com/leapstack-labs/students/internal/store"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger
	Store  *store.Store
}

// NewCommandContext opens the store at the configured path and initializes
// the schema. The returned cleanup closes the connection and must be called
// (typically via defer), so each invocation holds exactly one connection
// for its own lifetime.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, func(), error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	st := store.New()
	if err := st.Open(cmd.Context(), cfg.DB); err != nil {
		return nil, nil, err
	}
	if err := st.InitSchema(cmd.Context()); err != nil {
		_ = st.Close()
		return nil, nil, err
	}

	logger.Debug("database ready", "path", cfg.DB)

	cleanup := func() {
		_ = st.Close()
	}

	return &CommandContext{
		Cfg:    cfg,
		Logger: logger,
		Store:  st,
	}, cleanup, nil
}

// EnsureSchema opens the store, creates the schema if absent, and closes
// the connection again. Used by the bare root invocation.
func EnsureSchema(cmd *cobra.Command) error {
	_, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	cleanup()
	return nil
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to
// environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	return &config.Config{
		DB:      getEnvOrDefault("STUDENTS_DB", config.DefaultDBFile),
		Output:  getEnvOrDefault("STUDENTS_OUTPUT", config.DefaultOutput),
		Verbose: os.Getenv("STUDENTS_VERBOSE") == "true",
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
