package router

import (
	"fitlog/internal/handlers/auth"
	"fitlog/internal/handlers/pages"
	"fitlog/internal/handlers/todo"
	"fitlog/internal/handlers/workout"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Pages   pages.Handler
	Auth    auth.Handler
	Todo    todo.Handler
	Workout workout.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts every handler at the root; the paths are part of the
// public contract and carry no version prefix.
func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Pages.Router(router)
	r.DomainHandlers.Auth.Router(router)
	r.DomainHandlers.Todo.Router(router)
	r.DomainHandlers.Workout.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
