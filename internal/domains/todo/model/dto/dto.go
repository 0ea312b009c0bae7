package dto

import "todoapi/internal/domains/todo/model"

// TodoInput is the payload accepted on create and update. Title is a pointer
// so a missing key can be told apart from an empty string.
type TodoInput struct {
	Title *string `json:"title" validate:"required" example:"Buy milk"`
}

// GetTitle returns the submitted title, or "" when none was sent.
func (i TodoInput) GetTitle() string {
	if i.Title == nil {
		return ""
	}

	return *i.Title
}

type Todo struct {
	ID        int    `json:"id"        example:"1"`
	Title     string `json:"title"     example:"Buy milk"`
	Completed bool   `json:"completed" example:"false"`
}

func (r *Todo) FromModel(model model.Todo) {
	r.ID = model.ID
	r.Title = model.Title
	r.Completed = model.Completed
}

// FromModels always returns a non-nil slice so an empty table encodes as [].
func FromModels(models []model.Todo) []Todo {
	todos := make([]Todo, len(models))
	for i, mod := range models {
		todos[i].FromModel(mod)
	}

	return todos
}
