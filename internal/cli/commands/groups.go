package commands

import (
	"github.com/spf13/cobra"
)

// NewGroupsCommand creates the groups command.
func NewGroupsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "List groups with student counts",
		Long: `List every group title together with the number of students in it,
sorted by title.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			groups, err := cc.Store.ListGroups(cmd.Context())
			if err != nil {
				return err
			}

			return renderGroups(cmd.OutOrStdout(), groups, cc.Cfg.Output)
		},
	}

	return cmd
}
