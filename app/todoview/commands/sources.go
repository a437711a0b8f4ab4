package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/jrazmi/todoview/app/todoview/config"
	"github.com/jrazmi/todoview/core/repositories/todosrepo"
	"github.com/jrazmi/todoview/core/repositories/todosrepo/sources/mysqlsource"
	"github.com/jrazmi/todoview/core/repositories/todosrepo/sources/pgxsource"
	"github.com/jrazmi/todoview/core/repositories/todosrepo/sources/yamlsource"
	"github.com/jrazmi/todoview/core/repositories/todosrepo/stores/todosmemstore"
	"github.com/jrazmi/todoview/infrastructure/mysqldb"
	"github.com/jrazmi/todoview/infrastructure/postgresdb"
	"github.com/jrazmi/todoview/sdk/logger"
)

var errNoSeedFile = errors.New("yaml source needs a seed file")

// loadTasks reads the task list once from the configured source. Database
// connections are closed again before returning.
func loadTasks(ctx context.Context, log *logger.Logger, seed config.Seed) ([]todosrepo.Task, error) {
	switch seed.Source {
	case config.SourceSample, "":
		return todosrepo.SampleTasks(), nil

	case config.SourceYAML:
		if seed.File == "" {
			return nil, errNoSeedFile
		}
		return yamlsource.Load(ctx, seed.File)

	case config.SourcePostgres:
		pool, err := postgresdb.NewFromEnv(ctx, config.AppName, postgresdb.WithLogger(log.Logger))
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		defer pool.Close()
		return pgxsource.Load(ctx, pool, seed.Table)

	case config.SourceMySQL:
		db, err := mysqldb.NewFromEnv(ctx, config.AppName)
		if err != nil {
			return nil, fmt.Errorf("connecting to mysql: %w", err)
		}
		defer db.Close()
		return mysqlsource.Load(ctx, db, seed.Table)

	default:
		return nil, fmt.Errorf("unknown source %q", seed.Source)
	}
}

// openRepository loads the seed into an in-memory store and wraps it in a
// repository.
func openRepository(ctx context.Context, log *logger.Logger, seed config.Seed) (*todosrepo.Repository, int, error) {
	tasks, err := loadTasks(ctx, log, seed)
	if err != nil {
		return nil, 0, fmt.Errorf("loading %s seed: %w", seed.Source, err)
	}

	store, err := todosmemstore.New(tasks)
	if err != nil {
		return nil, 0, fmt.Errorf("building store: %w", err)
	}

	log.InfoContext(ctx, "startup", "status", "tasks loaded", "source", seed.Source, "tasks", store.Len())

	return todosrepo.NewRepository(log, store), store.Len(), nil
}
