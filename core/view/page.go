package view

import "github.com/jrazmi/todoview/core/repositories/todosrepo"

const (
	Heading        = "Todo app"
	AddTaskLabel   = "Add task"
	completedClass = "completed-todo"
)

// Action is a row control. Actions are drawn but not wired to any operation.
type Action struct {
	Label string
	Kind  string
}

var rowActions = []Action{
	{Label: "Edit", Kind: "secondary"},
	{Label: "Delete", Kind: "danger"},
}

// Row is one displayed task.
type Row struct {
	ID          int
	Title       string
	Description string
	Completed   bool
	TitleClass  string
	Actions     []Action
}

// Page is everything the renderer needs for one draw.
type Page struct {
	Heading  string
	AddLabel string
	Tabs     []Tab
	Rows     []Row
}

// Project filters tasks by the state and builds the page model.
func Project(tasks []todosrepo.Task, s State) Page {
	visible := Filter(tasks, s.Completed())

	rows := make([]Row, len(visible))
	for i, t := range visible {
		rows[i] = NewRow(t)
	}

	return Page{
		Heading:  Heading,
		AddLabel: AddTaskLabel,
		Tabs:     s.Tabs(),
		Rows:     rows,
	}
}

// NewRow builds the row for t. The completed styling follows the task's
// own Completed field.
func NewRow(t todosrepo.Task) Row {
	class := "todo-title mr-2"
	if t.Completed {
		class += " " + completedClass
	}
	return Row{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		TitleClass:  class,
		Actions:     append([]Action(nil), rowActions...),
	}
}
