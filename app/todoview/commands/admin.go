package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/jrazmi/todoview/core/repositories/todosrepo"
	"github.com/jrazmi/todoview/sdk/logger"
	"github.com/spf13/cobra"
)

func newAdminCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "admin",
		Short: "Print every task with its title, description and completed flag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			log, err := newLogger(logger.WithOutput(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			seed, err := flags.seed()
			if err != nil {
				return err
			}
			repo, _, err := openRepository(ctx, log, seed)
			if err != nil {
				return err
			}

			tasks, err := repo.List(ctx, todosrepo.QueryFilter{})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TITLE\tDESCRIPTION\tCOMPLETED")
			for _, t := range tasks {
				fmt.Fprintf(w, "%s\t%s\t%t\n", t.Title, t.Description, t.Completed)
			}
			return w.Flush()
		},
	}
}
