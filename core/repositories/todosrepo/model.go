package todosrepo

// Task is a single to-do record. Tasks are loaded once at startup and never
// change afterwards.
type Task struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Completed   bool   `json:"completed" yaml:"completed"`
}

// QueryFilter narrows a List call. A nil field matches every task.
type QueryFilter struct {
	Completed *bool
}

// Matches reports whether t passes the filter.
func (f QueryFilter) Matches(t Task) bool {
	if f.Completed != nil && t.Completed != *f.Completed {
		return false
	}
	return true
}

// CreateTask is accepted by the repository only to refuse it; tasks are
// fixed for the lifetime of the process.
type CreateTask struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// UpdateTask mirrors CreateTask with optional fields.
type UpdateTask struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}
