package auth

import (
	"net/http"

	"fitlog/config"
	"fitlog/infras/otel"
	"fitlog/internal/domains/auth/model/dto"
	"fitlog/internal/domains/auth/service"
	"fitlog/shared/constant"
	"fitlog/shared/validator"
	"fitlog/transport/http/middleware"
	"fitlog/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	messageRegistered = "registration successful, you can now log in"
	messageLoginPage  = "log in with email and password"
	messageLoggedOut  = "logged out"
)

type Handler struct {
	service     service.Auth
	sessionAuth *middleware.SessionAuth
	config      *config.Config
	otel        otel.Otel
}

func New(service service.Auth, sessionAuth *middleware.SessionAuth, config *config.Config, otel otel.Otel) Handler {
	return Handler{
		service:     service,
		sessionAuth: sessionAuth,
		config:      config,
		otel:        otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Post("/register", handler.Register)
	r.Get("/login", handler.LoginPage)
	r.Post("/login", handler.Login)

	r.Group(func(r chi.Router) {
		r.Use(handler.sessionAuth.Guard)
		r.Post("/logout", handler.Logout)
	})
}

// Register creates a new account.
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".auth.Register")
	defer scope.End()

	req := dto.RegisterRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Register(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register user")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, messageRegistered)
}

// LoginPage is the target of the session guard's redirect for browsers.
func (handler *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	response.WithMessage(w, http.StatusOK, messageLoginPage)
}

// Login verifies credentials and opens a session, handing the token to the
// client in an HTTP-only cookie.
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".auth.Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	result, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	http.SetCookie(w, handler.sessionCookie(result.Token, handler.config.Session.TTLSeconds))

	response.WithJSON(w, http.StatusOK, result)
}

// Logout destroys the current session and expires the cookie.
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".auth.Logout")
	defer scope.End()

	token := ""
	if cookie, err := r.Cookie(handler.config.Session.CookieName); err == nil {
		token = cookie.Value
	}

	if err := handler.service.Logout(ctx, token); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to log out")

		response.WithError(w, err)

		return
	}

	http.SetCookie(w, handler.sessionCookie("", -1))

	response.WithMessage(w, http.StatusOK, messageLoggedOut)
}

func (handler *Handler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     handler.config.Session.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   handler.config.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
