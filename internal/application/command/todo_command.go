package command

type CreateTodoCommand struct {
	Title       string
	Description *string
}

// UpdateTodoCommand is a partial update; nil fields are left untouched.
type UpdateTodoCommand struct {
	Title       *string
	Description *string
	Completed   *bool
}
