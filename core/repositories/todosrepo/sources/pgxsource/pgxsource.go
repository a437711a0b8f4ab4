// Package pgxsource snapshots the task table of a PostgreSQL database.
package pgxsource

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/todoview/core/repositories/todosrepo"
	"github.com/jrazmi/todoview/infrastructure/postgresdb"
)

// DefaultTable is the table the Django todo app writes to.
const DefaultTable = "todo_todo"

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Load reads every row of table ordered by id. An empty table gives zero
// tasks.
func Load(ctx context.Context, q Querier, table string) ([]todosrepo.Task, error) {
	if table == "" {
		table = DefaultTable
	}

	sql := fmt.Sprintf(`
	SELECT
		id, title, description, completed
	FROM
		%s
	ORDER BY
		id`, pgx.Identifier{table}.Sanitize())

	rows, err := q.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", table, postgresdb.HandlePgError(err))
	}

	tasks, err := pgx.CollectRows(rows, pgx.RowToStructByName[todosrepo.Task])
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", table, postgresdb.HandlePgError(err))
	}

	return tasks, nil
}
