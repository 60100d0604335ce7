package commands

import (
	"github.com/spf13/cobra"
)

// NewSelectCommand creates the select command.
func NewSelectCommand() *cobra.Command {
	var selectValue string

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Select students by group",
		Long: `Select the students whose group title equals the given value and
display them like the display command does.`,
		Example: `  # Students of group IS-21
  students select --select IS-21

  # Same, as markdown
  students select --select IS-21 --output markdown`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			students, err := cc.Store.ListStudentsByGroup(cmd.Context(), selectValue)
			if err != nil {
				return err
			}
			cc.Logger.Debug("roster filtered", "group", selectValue, "students", len(students))

			return renderRoster(cmd.OutOrStdout(), students, cc.Cfg.Output)
		},
	}

	cmd.Flags().StringVarP(&selectValue, "select", "s", "", "The group title to filter by")
	_ = cmd.MarkFlagRequired("select")

	return cmd
}
