// Package commands holds the todoview command line.
package commands

import (
	"context"
	"fmt"

	"github.com/jrazmi/todoview/app/todoview/config"
	"github.com/jrazmi/todoview/sdk/environment"
	"github.com/jrazmi/todoview/sdk/logger"
	"github.com/spf13/cobra"
)

// rootFlags are the persistent flags shared by every command.
type rootFlags struct {
	envFile  string
	source   string
	seedFile string
	table    string
}

// Execute runs the command line against os.Args.
func Execute(build string) error {
	return NewRootCommand(build).ExecuteContext(context.Background())
}

// NewRootCommand builds the todoview command tree.
func NewRootCommand(build string) *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:   "todoview",
		Short: "todoview - a read only to-do list",
		Long: `todoview shows a fixed list of tasks split into a Complete and an
Incomplete view. Tasks are loaded once at startup from the built in sample,
a yaml seed file, or a snapshot of the todo_todo table in PostgreSQL or MySQL.

Examples:
  # Serve the page and the JSON api on :8080
  todoview serve

  # Print the completed tasks of a seed file
  todoview --source yaml --seed-file tasks.yaml list --completed

  # Write the list as a pdf
  todoview export --format pdf > todos.pdf`,
		Version:       build,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return environment.LoadPath(flags.envFile)
		},
	}

	root.PersistentFlags().StringVar(&flags.envFile, "env-file", "", "Env file to load (default ./.env when present)")
	root.PersistentFlags().StringVar(&flags.source, "source", "", "Seed source: sample|yaml|postgres|mysql (default $TODOVIEW_SOURCE or sample)")
	root.PersistentFlags().StringVar(&flags.seedFile, "seed-file", "", "Yaml seed file for --source yaml (default $TODOVIEW_SEED_FILE)")
	root.PersistentFlags().StringVar(&flags.table, "table", "", "Table to snapshot for database sources (default $TODOVIEW_SEED_TABLE or todo_todo)")

	root.AddCommand(
		newServeCommand(build, &flags),
		newListCommand(&flags),
		newAdminCommand(&flags),
		newExportCommand(&flags),
	)

	return root
}

// seed merges the env configuration with any flags given on the command
// line. Flags win.
func (f *rootFlags) seed() (config.Seed, error) {
	s, err := config.LoadSeed(config.AppName)
	if err != nil {
		return config.Seed{}, err
	}
	if f.source != "" {
		s.Source = f.source
	}
	if f.seedFile != "" {
		s.File = f.seedFile
	}
	if f.table != "" {
		s.Table = f.table
	}
	return s, nil
}

func newLogger(opts ...logger.Option) (*logger.Logger, error) {
	log, err := logger.NewFromEnv(config.AppName, opts...)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return log, nil
}
