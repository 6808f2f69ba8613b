package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fitlog/config"
	"fitlog/infras/session"
	sessionMocks "fitlog/infras/session/mocks"
	userMocks "fitlog/internal/domains/user/mocks"
	userModel "fitlog/internal/domains/user/model"
	"fitlog/shared/constant"
	"fitlog/shared/repository"
	"fitlog/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const cookieName = "fitlog_session"

func newTestGuard(t *testing.T) (*middleware.SessionAuth, *sessionMocks.MockStore, *userMocks.MockUser) {
	t.Helper()

	ctrl := gomock.NewController(t)
	sessions := sessionMocks.NewMockStore(ctrl)
	users := userMocks.NewMockUser(ctrl)

	conf := &config.Config{}
	conf.Session.CookieName = cookieName

	return middleware.ProvideSessionAuth(sessions, users, conf), sessions, users
}

func TestGuard(t *testing.T) {
	t.Run("valid session populates the request context", func(t *testing.T) {
		guard, sessions, users := newTestGuard(t)

		sessions.EXPECT().Resolve(gomock.Any(), "token-1").Return(42, nil)
		users.EXPECT().
			GetByID(gomock.Any(), 42).
			Return(userModel.User{ID: 42, Email: "jane@example.com", Name: "Jane"}, nil)

		var seenID, seenEmail, seenName any

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenID = r.Context().Value(constant.ContextKeyUserID)
			seenEmail = r.Context().Value(constant.ContextKeyUserEmail)
			seenName = r.Context().Value(constant.ContextKeyUserName)
		})

		req := httptest.NewRequest(http.MethodGet, "/all", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: "token-1"})

		rec := httptest.NewRecorder()
		guard.Guard(next).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 42, seenID)
		assert.Equal(t, "jane@example.com", seenEmail)
		assert.Equal(t, "Jane", seenName)
	})

	t.Run("missing cookie gets a 401", func(t *testing.T) {
		guard, _, _ := newTestGuard(t)

		rec := httptest.NewRecorder()
		guard.Guard(failOnCall(t)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/all", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"authentication required"}`, rec.Body.String())
	})

	t.Run("missing cookie redirects browsers to login", func(t *testing.T) {
		guard, _, _ := newTestGuard(t)

		req := httptest.NewRequest(http.MethodGet, "/all", nil)
		req.Header.Set(constant.RequestHeaderAccept, "text/html,application/xhtml+xml")

		rec := httptest.NewRecorder()
		guard.Guard(failOnCall(t)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, constant.PathLogin, rec.Header().Get("Location"))
	})

	t.Run("expired session gets a 401", func(t *testing.T) {
		guard, sessions, _ := newTestGuard(t)

		sessions.EXPECT().Resolve(gomock.Any(), "stale").Return(0, session.ErrNoSession)

		req := httptest.NewRequest(http.MethodGet, "/all", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: "stale"})

		rec := httptest.NewRecorder()
		guard.Guard(failOnCall(t)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("deleted account loses access", func(t *testing.T) {
		guard, sessions, users := newTestGuard(t)

		sessions.EXPECT().Resolve(gomock.Any(), "token-1").Return(42, nil)
		users.EXPECT().GetByID(gomock.Any(), 42).Return(userModel.User{}, repository.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/all", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: "token-1"})

		rec := httptest.NewRecorder()
		guard.Guard(failOnCall(t)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func failOnCall(t *testing.T) http.Handler {
	t.Helper()

	return http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("next handler should not be reached")
	})
}
