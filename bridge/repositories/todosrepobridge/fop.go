package todosrepobridge

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/jrazmi/todoview/core/repositories/todosrepo"
	"github.com/jrazmi/todoview/infrastructure/web"
)

// FILTER
func parseFilter(r *http.Request) (todosrepo.QueryFilter, error) {
	var filter todosrepo.QueryFilter

	completed, ok, err := web.QueryBool(r, "completed")
	if err != nil {
		return filter, fmt.Errorf("invalid completed: %q", web.QueryParam(r, "completed"))
	}
	if ok {
		filter.Completed = &completed
	}

	return filter, nil
}

// PATH
func parseID(r *http.Request) (int, error) {
	raw := web.Param(r, "todo_id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid todo id: %q", raw)
	}
	return id, nil
}

// loggedID is the path id of a refused write, or 0 when it is not a number.
// It only reaches the refusal log line.
func loggedID(r *http.Request) int {
	id, err := parseID(r)
	if err != nil {
		return 0
	}
	return id
}
