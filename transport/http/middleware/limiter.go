package middleware

import (
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"

	"fitlog/config"
	"fitlog/shared"
	"fitlog/shared/cache"
	"fitlog/shared/constant"
	"fitlog/transport/http/response"

	"github.com/rs/zerolog/log"
)

const limiterKeyPrefix = "ratelimit"

// RateLimiter is a fixed-window request limiter keyed by client IP and
// user agent, with counters in Redis so limits hold across replicas.
type RateLimiter struct {
	cache  cache.RedisCache
	config *config.Config
}

func ProvideRateLimiter(redisCache cache.RedisCache, conf *config.Config) *RateLimiter {
	return &RateLimiter{
		cache:  redisCache,
		config: conf,
	}
}

func (l *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.config.App.RateLimiter.Enable {
			next.ServeHTTP(w, r)

			return
		}

		maxRequests := l.config.App.RateLimiter.MaxRequests
		window := l.config.App.RateLimiter.WindowSeconds

		key := shared.BuildCacheKey(limiterKeyPrefix, clientIP(r), r.Header.Get(constant.RequestHeaderUserAgent))

		count := 0

		err := l.cache.Get(r.Context(), key, &count)
		if err != nil && !errors.Is(err, cache.Nil) {
			// Never let a cache outage lock everyone out.
			log.Error().Err(err).Msg("rate limiter cache read failed, letting request through")
			next.ServeHTTP(w, r)

			return
		}

		w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxRequests))
		w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(window))

		if count >= maxRequests {
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, "0")
			response.WithRequestLimitExceeded(w)

			return
		}

		if err = l.cache.Save(r.Context(), key, strconv.Itoa(count+1), window); err != nil {
			log.Error().Err(err).Msg("rate limiter cache write failed")
		}

		w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(maxRequests-count-1))

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get(constant.RequestHeaderForwardedFor); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	if realIP := r.Header.Get(constant.RequestHeaderRealIP); realIP != "" {
		return realIP
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
