package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"fitlog/config"
	"fitlog/infras/session"
	userRepository "fitlog/internal/domains/user/repository"
	"fitlog/shared/constant"
	"fitlog/shared/failure"
	"fitlog/shared/repository"
	"fitlog/transport/http/response"
)

const MessageAuthRequired = "authentication required"

// SessionAuth guards routes behind a live session cookie. On success the
// user's id, email and name are placed on the request context; the user row
// is re-loaded on every request so deleted accounts lose access immediately.
type SessionAuth struct {
	sessions session.Store
	users    userRepository.User
	config   *config.Config
}

func ProvideSessionAuth(sessions session.Store, users userRepository.User, conf *config.Config) *SessionAuth {
	return &SessionAuth{
		sessions: sessions,
		users:    users,
		config:   conf,
	}
}

func (a *SessionAuth) Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(a.config.Session.CookieName)
		if err != nil || cookie.Value == "" {
			a.reject(w, r)

			return
		}

		userID, err := a.sessions.Resolve(r.Context(), cookie.Value)
		if err != nil {
			a.reject(w, r)

			return
		}

		user, err := a.users.GetByID(r.Context(), userID)
		if errors.Is(err, repository.ErrNotFound) {
			a.reject(w, r)

			return
		}

		if err != nil {
			response.WithError(w, err)

			return
		}

		ctx := context.WithValue(r.Context(), constant.ContextKeyUserID, user.ID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, user.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserName, user.Name)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// reject sends browsers to the login page and everything else a 401.
func (a *SessionAuth) reject(w http.ResponseWriter, r *http.Request) {
	if strings.Contains(r.Header.Get(constant.RequestHeaderAccept), constant.ContentTypeHTML) {
		response.WithRedirect(w, r, constant.PathLogin)

		return
	}

	response.WithError(w, failure.Unauthorized(MessageAuthRequired))
}
