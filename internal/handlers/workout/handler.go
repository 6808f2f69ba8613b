package workout

import (
	"net/http"
	"strconv"

	"fitlog/infras/otel"
	"fitlog/internal/domains/workout/model/dto"
	"fitlog/internal/domains/workout/service"
	"fitlog/shared/constant"
	"fitlog/shared/failure"
	"fitlog/shared/validator"
	"fitlog/transport/http/middleware"
	"fitlog/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	MessagePushupsNotNumber = "pushups must be a number"

	messageNewForm = "log a workout: pushups (number) and an optional comment"
)

// Handler exposes the session-guarded workout log. The mutating endpoints are
// form-driven and answer with redirects, keeping the flow a plain HTML form
// can follow.
type Handler struct {
	service     service.Workout
	sessionAuth *middleware.SessionAuth
	otel        otel.Otel
}

func New(service service.Workout, sessionAuth *middleware.SessionAuth, otel otel.Otel) Handler {
	return Handler{
		service:     service,
		sessionAuth: sessionAuth,
		otel:        otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(handler.sessionAuth.Guard)

		r.Get("/new", handler.NewForm)
		r.Post("/new", handler.Create)
		r.Get("/all", handler.List)

		r.Route("/workout/{id}", func(r chi.Router) {
			r.Get("/update", handler.Detail)
			r.Post("/update", handler.Update)
			r.Get("/delete", handler.Delete)
			r.Post("/delete", handler.Delete)
		})
	})
}

func (handler *Handler) NewForm(w http.ResponseWriter, r *http.Request) {
	response.WithMessage(w, http.StatusOK, messageNewForm)
}

// Create logs a workout for the current user and sends them back to the list.
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".workout.Create")
	defer scope.End()

	pushups, comment, err := workoutForm(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.CreateWorkoutRequest{
		Pushups: pushups,
		Comment: comment,
	}

	if err = validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate workout form")

		response.WithError(w, err)

		return
	}

	if err = handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create workout")

		response.WithError(w, err)

		return
	}

	response.WithRedirect(w, r, constant.PathWorkoutList)
}

// List returns one page of the current user's workouts, three per page.
func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".workout.List")
	defer scope.End()

	page := constant.DefaultValuePage

	if raw := r.URL.Query().Get(constant.RequestParamPage); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			scope.TraceError(failure.InvalidPageParam)

			response.WithError(w, failure.InvalidPageParam)

			return
		}

		page = parsed
	}

	res, err := handler.service.List(ctx, page)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list workouts")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Detail returns the record an edit form would be prefilled with.
func (handler *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".workout.Detail")
	defer scope.End()

	id, err := workoutID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Detail(ctx, id)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Update overwrites a workout's pushups and comment, then redirects to the list.
func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".workout.Update")
	defer scope.End()

	id, err := workoutID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	pushups, comment, err := workoutForm(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.UpdateWorkoutRequest{
		Pushups: pushups,
		Comment: comment,
	}

	if err = validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate workout form")

		response.WithError(w, err)

		return
	}

	if err = handler.service.Update(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update workout")

		response.WithError(w, err)

		return
	}

	response.WithRedirect(w, r, constant.PathWorkoutList)
}

// Delete removes a workout and redirects to the list.
func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".workout.Delete")
	defer scope.End()

	id, err := workoutID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err = handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete workout")

		response.WithError(w, err)

		return
	}

	response.WithRedirect(w, r, constant.PathWorkoutList)
}

func workoutID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		return 0, failure.InvalidIDParam
	}

	return id, nil
}

func workoutForm(r *http.Request) (int, string, error) {
	if err := r.ParseForm(); err != nil {
		return 0, "", failure.BadRequest(err)
	}

	pushups, err := strconv.Atoi(r.PostFormValue(constant.FormFieldPushups))
	if err != nil {
		return 0, "", failure.BadRequestFromString(MessagePushupsNotNumber)
	}

	return pushups, r.PostFormValue(constant.FormFieldComment), nil
}
