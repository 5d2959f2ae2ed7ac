package api

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/selfhq/internal/error_values"
	"github.com/limbo/selfhq/pkg/httputil"
	"golang.org/x/time/rate"
)

type contextKey string

const (
	requestIDKContextKey contextKey = "Request-ID"
	loggerContextKey     contextKey = "Logger"
	uidContextKey        contextKey = "User-ID"
	claimsContextKey     contextKey = "Claims"

	requestIDHeader = "X-Request-ID"
	authTimeout     = 5 * time.Second
)

func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New()
		w.Header().Set(requestIDHeader, reqID.String())
		ctx := context.WithValue(r.Context(), requestIDKContextKey, reqID.String())
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default()
		reqID, ok := r.Context().Value(requestIDKContextKey).(string)
		if ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		logger = logger.With(slog.String("from", r.RemoteAddr))
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) LoggerExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		userID, ok := r.Context().Value(uidContextKey).(uuid.UUID)
		if ok && userID != uuid.Nil {
			logger = logger.With(slog.String("uid", userID.String()))
		}
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		tokenString, err := GetTokenFromHeader(r)
		if err != nil {
			logger.Error("auth failed: no bearer token")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
			return
		}
		claims, uid, err := s.authenticate(r.Context(), tokenString)
		if err != nil {
			switch {
			case errors.Is(err, errorvalues.ErrInvalidToken), errors.Is(err, errorvalues.ErrTokenRevoked):
				logger.Error("auth failed", slog.String("error", err.Error()))
				httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
			case errors.Is(err, errorvalues.ErrUserNotFound):
				logger.Error("auth failed: user doesn't exist")
				httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: user not found", nil)
			default:
				logger.Error("auth failed: internal error", slog.String("error", err.Error()))
				httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during authorization", nil)
			}
			return
		}
		ctx := context.WithValue(r.Context(), uidContextKey, uid)
		ctx = context.WithValue(ctx, claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuthMiddleware identifies the caller when a valid token is sent and lets
// anonymous requests through otherwise.
func (s *Server) OptionalAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := GetTokenFromHeader(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		claims, uid, err := s.authenticate(r.Context(), tokenString)
		if err != nil {
			GetLoggerFromCtx(r.Context()).Warn("ignoring unusable token", slog.String("error", err.Error()))
			next.ServeHTTP(w, r)
			return
		}
		ctx := context.WithValue(r.Context(), uidContextKey, uid)
		ctx = context.WithValue(ctx, claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authenticate checks signature and lifetime of the token, that it wasn't revoked
// and that its user still exists.
func (s *Server) authenticate(parent context.Context, tokenString string) (*JWTClaims, uuid.UUID, error) {
	claims, err := s.jwtService.ParseToken(tokenString)
	if err != nil {
		return nil, uuid.Nil, err
	}
	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, uuid.Nil, errorvalues.ErrInvalidToken
	}
	ctx, cancel := context.WithTimeout(parent, authTimeout)
	defer cancel()
	if claims.ID != "" {
		revoked, err := s.authService.IsTokenRevoked(ctx, claims.ID)
		if err != nil {
			return nil, uuid.Nil, err
		}
		if revoked {
			return nil, uuid.Nil, errorvalues.ErrTokenRevoked
		}
	}
	if _, err = s.authService.CurrentUser(ctx, uid); err != nil {
		return nil, uuid.Nil, err
	}
	return claims, uid, nil
}

func (s *Server) RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !s.limiter.Allow(ip) {
			GetLoggerFromCtx(r.Context()).Warn("rate limit exceeded")
			s.metrics.rateLimited.Inc()
			httputil.WriteErrorResponse(w, http.StatusTooManyRequests, "too many requests", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitorLimiter keeps one token bucket per client address.
type visitorLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
}

func newVisitorLimiter(limit rate.Limit, burst int) *visitorLimiter {
	return &visitorLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		burst:    burst,
	}
}

func (vl *visitorLimiter) Allow(key string) bool {
	vl.mu.Lock()
	v, ok := vl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(vl.limit, vl.burst)}
		vl.visitors[key] = v
	}
	v.lastSeen = time.Now()
	vl.mu.Unlock()
	return v.limiter.Allow()
}

// Sweep forgets visitors idle for longer than idle, every period, until ctx is done.
func (vl *visitorLimiter) Sweep(ctx context.Context, period, idle time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			vl.sweep(time.Now().Add(-idle))
		}
	}
}

func (vl *visitorLimiter) sweep(before time.Time) {
	vl.mu.Lock()
	defer vl.mu.Unlock()
	for key, v := range vl.visitors {
		if v.lastSeen.Before(before) {
			delete(vl.visitors, key)
		}
	}
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if ok {
		return logger
	}
	return slog.Default()
}

func GetTokenFromHeader(r *http.Request) (string, error) {
	token := r.Header.Get("Authorization")
	if token == "" {
		return "", errorvalues.ErrInvalidToken
	}
	parts := strings.Split(token, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errorvalues.ErrInvalidToken
	}
	return parts[1], nil
}

func GetUIDFromContext(r *http.Request) (uuid.UUID, error) {
	uid, ok := r.Context().Value(uidContextKey).(uuid.UUID)
	if !ok {
		return uuid.UUID{}, errorvalues.ErrNotAuthenticated
	}
	return uid, nil
}

// WithUID returns a copy of ctx carrying uid as the authenticated user.
func WithUID(ctx context.Context, uid uuid.UUID) context.Context {
	return context.WithValue(ctx, uidContextKey, uid)
}

// WithClaims returns a copy of ctx carrying the claims of the request's token.
func WithClaims(ctx context.Context, claims *JWTClaims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

func getClaimsFromContext(r *http.Request) (*JWTClaims, bool) {
	claims, ok := r.Context().Value(claimsContextKey).(*JWTClaims)
	return claims, ok
}

// optionalUID returns the caller's id, nil for anonymous requests.
func optionalUID(r *http.Request) *uuid.UUID {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		return nil
	}
	return &uid
}
