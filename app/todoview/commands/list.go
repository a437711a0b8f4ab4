package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jrazmi/todoview/core/repositories/todosrepo"
	"github.com/jrazmi/todoview/core/view"
	"github.com/jrazmi/todoview/sdk/logger"
	"github.com/spf13/cobra"
)

func newListCommand(flags *rootFlags) *cobra.Command {
	var completed bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the tasks of the selected view",
		Long: `Print the tasks of one view. Without --completed the Incomplete view is
shown, matching the initial state of the page.`,
		Args: cobra.NoArgs,
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

			state := view.NewState()
			state.Select(completed)

			return writePage(cmd.OutOrStdout(), view.Project(tasks, state))
		},
	}

	cmd.Flags().BoolVar(&completed, "completed", false, "Show the Complete view")

	return cmd
}

// writePage prints the heading, the tab bar and one line per row.
func writePage(out io.Writer, p view.Page) error {
	fmt.Fprintln(out, p.Heading)
	for i, tab := range p.Tabs {
		if i > 0 {
			fmt.Fprint(out, " | ")
		}
		if tab.Active {
			fmt.Fprintf(out, "[%s]", tab.Label)
		} else {
			fmt.Fprint(out, tab.Label)
		}
	}
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, row := range p.Rows {
		mark := "[ ]"
		if row.Completed {
			mark = "[x]"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", mark, row.ID, row.Title, row.Description)
	}
	return w.Flush()
}
