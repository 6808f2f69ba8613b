package pages

import (
	"fmt"
	"net/http"

	"fitlog/config"
	"fitlog/shared/constant"
	"fitlog/shared/validator"
	"fitlog/transport/http/middleware"
	"fitlog/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type SendDataRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Age  int    `json:"age"  validate:"gte=0,lte=150"`
}

type ProfileResponse struct {
	Name string `json:"name"`
}

// Handler covers the small public surface plus the profile endpoint.
type Handler struct {
	sessionAuth *middleware.SessionAuth
	config      *config.Config
}

func New(sessionAuth *middleware.SessionAuth, config *config.Config) Handler {
	return Handler{
		sessionAuth: sessionAuth,
		config:      config,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/", handler.Home)
	r.Post("/send-data", handler.SendData)

	r.Group(func(r chi.Router) {
		r.Use(handler.sessionAuth.Guard)
		r.Get("/profile", handler.Profile)
	})
}

func (handler *Handler) Home(w http.ResponseWriter, r *http.Request) {
	response.WithMessage(w, http.StatusOK, fmt.Sprintf("welcome to %s", handler.config.App.Name))
}

// SendData echoes the posted payload back, validated against the typed schema.
func (handler *Handler) SendData(w http.ResponseWriter, r *http.Request) {
	req := SendDataRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, req)
}

// Profile returns the name of the currently logged-in user.
func (handler *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	name, _ := r.Context().Value(constant.ContextKeyUserName).(string)

	response.WithJSON(w, http.StatusOK, ProfileResponse{Name: name})
}
