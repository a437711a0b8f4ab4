// Package mysqlsource snapshots the task table of a MySQL database.
package mysqlsource

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jrazmi/todoview/core/repositories/todosrepo"
)

// DefaultTable is the table the Django todo app writes to.
const DefaultTable = "todo_todo"

// Load reads every row of table ordered by id.
func Load(ctx context.Context, db *sql.DB, table string) ([]todosrepo.Task, error) {
	if table == "" {
		table = DefaultTable
	}

	query := fmt.Sprintf("SELECT id, title, description, completed FROM %s ORDER BY id", quoteIdent(table))

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", table, err)
	}
	defer rows.Close()

	tasks := []todosrepo.Task{}
	for rows.Next() {
		var t todosrepo.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Completed); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", table, err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", table, err)
	}

	return tasks, nil
}

// quoteIdent quotes a MySQL identifier, doubling embedded backticks.
func quoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
