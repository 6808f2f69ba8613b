package middleware

import (
	"fmt"
	"net/http"

	"fitlog/infras/otel"
	"fitlog/shared/constant"
)

// Tracing opens a span per request, named after the method and path pattern.
func Tracing(otl otel.Otel) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, scope := otl.NewScope(r.Context(), constant.OtelHandlerScopeName, fmt.Sprintf("%s %s", r.Method, r.URL.Path))
			defer scope.End()

			scope.SetAttributes(map[string]any{
				"http.method":     r.Method,
				"http.target":     r.URL.Path,
				"http.user_agent": r.Header.Get(constant.RequestHeaderUserAgent),
			})

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
