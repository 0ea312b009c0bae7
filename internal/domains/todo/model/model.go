package model

const (
	TableName  = "todos"
	EntityName = "todo"

	FieldID        = "id"
	FieldTitle     = "title"
	FieldCompleted = "completed"
)

// Todo is one row of the todos table.
type Todo struct {
	ID        int    `db:"id"`
	Title     string `db:"title"`
	Completed bool   `db:"completed"`
}
