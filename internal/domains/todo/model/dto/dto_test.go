package dto_test

import (
	"strings"
	"testing"

	"fitlog/internal/domains/todo/model"
	"fitlog/internal/domains/todo/model/dto"
	"fitlog/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTodoRequestValidation(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var req dto.CreateTodoRequest

		err := validator.Validate(strings.NewReader(`{"task":"buy milk","summary":"2 liters"}`), &req)

		require.NoError(t, err)
		assert.Equal(t, "buy milk", req.Task)
	})

	t.Run("missing task", func(t *testing.T) {
		var req dto.CreateTodoRequest

		err := validator.Validate(strings.NewReader(`{"summary":"2 liters"}`), &req)

		require.Error(t, err)
	})

	t.Run("malformed body", func(t *testing.T) {
		var req dto.CreateTodoRequest

		err := validator.Validate(strings.NewReader(`{"task":`), &req)

		require.Error(t, err)
	})
}

func TestCreateTodoRequestToModel(t *testing.T) {
	req := dto.CreateTodoRequest{Task: "buy milk", Summary: "2 liters"}

	assert.Equal(t, model.Todo{ID: 5, Task: "buy milk", Summary: "2 liters"}, req.ToModel(5))
}

func TestNewAllTodosResponse(t *testing.T) {
	res := dto.NewAllTodosResponse([]model.Todo{
		{ID: 1, Task: "a", Summary: "aa"},
		{ID: 9, Task: "b", Summary: "bb"},
	})

	assert.Equal(t, dto.AllTodosResponse{
		1: {Task: "a", Summary: "aa"},
		9: {Task: "b", Summary: "bb"},
	}, res)
}
