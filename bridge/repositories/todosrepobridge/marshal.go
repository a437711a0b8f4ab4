package todosrepobridge

import "github.com/jrazmi/todoview/core/repositories/todosrepo"

func MarshalToBridge(task todosrepo.Task) Todo {
	return Todo{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
	}
}

// MarshalListToBridge converts a list of core models to bridge models
func MarshalListToBridge(tasks []todosrepo.Task) []Todo {
	out := make([]Todo, len(tasks))
	for i, task := range tasks {
		out[i] = MarshalToBridge(task)
	}
	return out
}
