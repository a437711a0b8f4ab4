package todosrepobridge

// Todo is the wire form of a task: id, title, description, completed.
type Todo struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}
