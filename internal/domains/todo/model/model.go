package model

const (
	TableName     = "todos"
	EntityName    = "todo"
	PrimaryColumn = "id"
)

const (
	FieldID = "id"
)

// Todo is a task row. The id is supplied by the caller, not the store.
type Todo struct {
	ID      int    `db:"id"`
	Task    string `db:"task"`
	Summary string `db:"summary"`
}
