package dto

import "fitlog/internal/domains/todo/model"

type CreateTodoRequest struct {
	Task    string `json:"task"    validate:"required,max=200"`
	Summary string `json:"summary" validate:"required,max=500"`
}

func (d *CreateTodoRequest) ToModel(id int) model.Todo {
	return model.Todo{
		ID:      id,
		Task:    d.Task,
		Summary: d.Summary,
	}
}

// UpdateTodoRequest carries a partial update; zero-value fields are left
// untouched. The db tags drive the column map for the UPDATE statement.
type UpdateTodoRequest struct {
	Task    string `db:"task"    json:"task"    validate:"omitempty,max=200"`
	Summary string `db:"summary" json:"summary" validate:"omitempty,max=500"`
}

type TodoResponse struct {
	ID      int    `json:"id"`
	Task    string `json:"task"`
	Summary string `json:"summary"`
}

func NewTodoResponse(todo model.Todo) TodoResponse {
	return TodoResponse{
		ID:      todo.ID,
		Task:    todo.Task,
		Summary: todo.Summary,
	}
}

type TodoItem struct {
	Task    string `json:"task"`
	Summary string `json:"summary"`
}

// AllTodosResponse maps todo id to its content, mirroring the shape of the
// unpaginated listing endpoint.
type AllTodosResponse map[int]TodoItem

func NewAllTodosResponse(todos []model.Todo) AllTodosResponse {
	response := make(AllTodosResponse, len(todos))

	for _, todo := range todos {
		response[todo.ID] = TodoItem{
			Task:    todo.Task,
			Summary: todo.Summary,
		}
	}

	return response
}
