// Package cli provides the command-line interface for the students roster
// tool.
package cli

import (
	"fmt"
	"os"

	"github.com/leapstack-labs/students/internal/cli/commands"
	"github.com/leapstack-labs/students/internal/cli/config"
	"github.com/spf13/cobra"
)

var cfgFile string

// Version is set at build time.
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "students",
		Short: "Manage a student roster in an embedded DuckDB database",
		Long: `students records each student's name, group, and grade list in a local
DuckDB file. Groups are created on first use; the roster can be displayed
in full or filtered by group title.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := config.NewLogger(os.Stderr, cfg.Verbose)
			cmd.SetContext(config.WithLogger(cmd.Context(), logger))

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}

			return nil
		},
		// A bare invocation still initializes the schema, so the database
		// file exists afterwards. Not an error.
		RunE: func(cmd *cobra.Command, _ []string) error {
			return commands.EnsureSchema(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./students.yaml)")
	rootCmd.PersistentFlags().String("db", config.DefaultDBFile, "Path to the database file")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (table|json|markdown|csv)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	// Register completion for output flag
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"table", "json", "markdown", "csv"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewAddCommand())
	rootCmd.AddCommand(commands.NewDisplayCommand())
	rootCmd.AddCommand(commands.NewSelectCommand())
	rootCmd.AddCommand(commands.NewGroupsCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
