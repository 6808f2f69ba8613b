package todo_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "fitlog/infras/otel/mocks"
	"fitlog/internal/domains/todo/model/dto"
	"fitlog/internal/domains/todo/service"
	serviceMocks "fitlog/internal/domains/todo/service/mocks"
	"fitlog/internal/handlers/todo"
	"fitlog/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*chi.Mux, *serviceMocks.MockTodo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := serviceMocks.NewMockTodo(ctrl)

	handler := todo.New(svc, otelMocks.NewOtel())

	mux := chi.NewRouter()
	handler.Router(mux)

	return mux, svc
}

func TestHandlerGet(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mux, svc := newTestRouter(t)

		svc.EXPECT().
			Get(gomock.Any(), 1).
			Return(dto.TodoResponse{ID: 1, Task: "buy milk", Summary: "2 liters"}, nil)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/todos/1", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"id":1,"task":"buy milk","summary":"2 liters"}}`, rec.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		mux, svc := newTestRouter(t)

		svc.EXPECT().
			Get(gomock.Any(), 7).
			Return(dto.TodoResponse{}, failure.NotFound(service.MessageTaskNotFound))

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/todos/7", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Task not found"}`, rec.Body.String())
	})

	t.Run("non numeric id", func(t *testing.T) {
		mux, _ := newTestRouter(t)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/todos/abc", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandlerCreate(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		mux, svc := newTestRouter(t)

		svc.EXPECT().
			Create(gomock.Any(), 1, dto.CreateTodoRequest{Task: "buy milk", Summary: "2 liters"}).
			Return(dto.TodoResponse{ID: 1, Task: "buy milk", Summary: "2 liters"}, nil)

		body := strings.NewReader(`{"task":"buy milk","summary":"2 liters"}`)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/todos/1", body))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("duplicate id", func(t *testing.T) {
		mux, svc := newTestRouter(t)

		svc.EXPECT().
			Create(gomock.Any(), 1, gomock.Any()).
			Return(dto.TodoResponse{}, failure.Conflict(service.MessageTaskExists))

		body := strings.NewReader(`{"task":"buy milk","summary":"2 liters"}`)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/todos/1", body))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"error":"Task already exists"}`, rec.Body.String())
	})

	t.Run("missing task", func(t *testing.T) {
		mux, _ := newTestRouter(t)

		body := strings.NewReader(`{"summary":"2 liters"}`)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/todos/1", body))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandlerUpdate(t *testing.T) {
	t.Run("partial body", func(t *testing.T) {
		mux, svc := newTestRouter(t)

		svc.EXPECT().
			Update(gomock.Any(), 1, dto.UpdateTodoRequest{Task: "buy bread"}).
			Return(dto.TodoResponse{ID: 1, Task: "buy bread", Summary: "2 liters"}, nil)

		body := strings.NewReader(`{"task":"buy bread"}`)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/todos/1", body))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"id":1,"task":"buy bread","summary":"2 liters"}}`, rec.Body.String())
	})
}

func TestHandlerDelete(t *testing.T) {
	t.Run("no content", func(t *testing.T) {
		mux, svc := newTestRouter(t)

		svc.EXPECT().Delete(gomock.Any(), 1).Return(nil)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/todos/1", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestHandlerListAll(t *testing.T) {
	t.Run("keyed by id", func(t *testing.T) {
		mux, svc := newTestRouter(t)

		svc.EXPECT().
			ListAll(gomock.Any()).
			Return(dto.AllTodosResponse{
				1: {Task: "buy milk", Summary: "2 liters"},
			}, nil)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/all-todos", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"1":{"task":"buy milk","summary":"2 liters"}}}`, rec.Body.String())
	})
}
