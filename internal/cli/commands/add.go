package commands

import (
	"github.com/spf13/cobra"
)

// NewAddCommand creates the add command.
func NewAddCommand() *cobra.Command {
	var (
		name  string
		group string
		grade string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new student",
		Long: `Add a student to the roster.

The group is looked up by exact title and created on first use. The grade
list is comma-separated and stored as an integer array; values are not
validated before storage.`,
		Example: `  # Add a student to group IS-21
  students add --name "Ivanov I.I." --group IS-21 --grade 4,5,5

  # Use a different database file
  students add --name "Petrov P.P." --group IS-22 --grade 3,4 --db archive.db`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			groupID, err := cc.Store.ResolveGroup(cmd.Context(), group)
			if err != nil {
				return err
			}
			cc.Logger.Debug("group resolved", "title", group, "id", groupID)

			return cc.Store.AddStudent(cmd.Context(), name, groupID, grade)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "The student's name")
	cmd.Flags().StringVarP(&group, "group", "g", "", "The student's group")
	cmd.Flags().StringVar(&grade, "grade", "", "The student's grades, comma-separated")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("group")
	_ = cmd.MarkFlagRequired("grade")

	return cmd
}
