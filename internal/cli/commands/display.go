package commands

import (
	"github.com/spf13/cobra"
)

// NewDisplayCommand creates the display command.
func NewDisplayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "display",
		Short: "Display all students",
		Long: `Display every student in the roster together with its group title,
as a fixed-width table by default.

Use --output to pick another format: table, json, markdown, csv`,
		Example: `  # Show the full roster
  students display

  # Roster as JSON
  students display --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			students, err := cc.Store.ListStudents(cmd.Context())
			if err != nil {
				return err
			}
			cc.Logger.Debug("roster loaded", "students", len(students))

			return renderRoster(cmd.OutOrStdout(), students, cc.Cfg.Output)
		},
	}

	return cmd
}
