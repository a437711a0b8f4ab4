package todosrepo

// SampleTasks returns the built in task list. Each call returns a new slice.
func SampleTasks() []Task {
	return []Task{
		{
			ID:          1,
			Title:       "Go to Market",
			Description: "Buy ingredients to prepare dinner",
			Completed:   true,
		},
		{
			ID:          2,
			Title:       "Study",
			Description: "Read Algebra and History textbook for upcoming test",
			Completed:   false,
		},
		{
			ID:          3,
			Title:       "Sally's books",
			Description: "Go to library to rent sally's books",
			Completed:   true,
		},
		{
			ID:          4,
			Title:       "Article",
			Description: "Write article on how to use django with react",
			Completed:   false,
		},
	}
}
