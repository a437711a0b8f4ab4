package view

import "github.com/jrazmi/todoview/core/repositories/todosrepo"

// Filter returns the tasks whose Completed field equals completed, keeping
// their relative order. tasks is not modified and the result is never nil.
func Filter(tasks []todosrepo.Task, completed bool) []todosrepo.Task {
	f := todosrepo.QueryFilter{Completed: &completed}
	out := make([]todosrepo.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}
