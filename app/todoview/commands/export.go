package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/jrazmi/todoview/core/repositories/todosrepo"
	"github.com/jrazmi/todoview/core/todoexport"
	"github.com/jrazmi/todoview/core/view"
	"github.com/jrazmi/todoview/sdk/logger"
	"github.com/spf13/cobra"
)

func newExportCommand(flags *rootFlags) *cobra.Command {
	var (
		format    string
		output    string
		completed string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the task list as json, yaml, csv or pdf",
		Long: `Write the task list to stdout or a file. The yaml output is a valid
seed file for --source yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var filter todosrepo.QueryFilter
			if cmd.Flags().Changed("completed") {
				v, err := view.ParseSelection(completed)
				if err != nil {
					return err
				}
				filter.Completed = &v
			}

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

			tasks, err := repo.List(ctx, filter)
			if err != nil {
				return err
			}

			data, _, err := todoexport.Export(tasks, format)
			if err != nil {
				return err
			}

			if output != "" {
				if err := os.WriteFile(output, data, 0o644); err != nil {
					return fmt.Errorf("writing export: %w", err)
				}
				log.InfoContextf(ctx, "wrote %d tasks as %s to %s", len(tasks), format, output)
				return nil
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", todoexport.FormatJSON, "Output format: "+strings.Join(todoexport.Formats(), "|"))
	cmd.Flags().StringVarP(&output, "output", "o", "", "File to write (default stdout)")
	cmd.Flags().StringVar(&completed, "completed", "", "Only export tasks with this completed value (true|false)")

	return cmd
}
