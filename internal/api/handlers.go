package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/selfhq/internal/service"
	"github.com/limbo/selfhq/pkg/httputil"
)

const (
	handlerTimeout = 10 * time.Second
	listTimeout    = 15 * time.Second
	healthTimeout  = 2 * time.Second
)

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type AuthResponse struct {
	UserID string `json:"uid"`
	Token  string `json:"token"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Server) SignUp(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.SignUpRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		logger.Error("sign up error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	user, err := s.authService.SignUp(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "sign up", err)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("sign up error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, AuthResponse{UserID: user.ID.String(), Token: token})
	logger.Info("successful sign up")
}

func (s *Server) SignIn(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req SignInRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		logger.Error("sign in error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	user, err := s.authService.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, logger, "sign in", err)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("sign in error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, AuthResponse{UserID: user.ID.String(), Token: token})
	logger.Info("successful sign in")
}

func (s *Server) SignOut(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	claims, ok := getClaimsFromContext(r)
	if !ok || claims.ExpiresAt == nil {
		logger.Error("sign out error: no token claims")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	if err := s.authService.SignOut(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		writeServiceError(w, logger, "sign out", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("signed out")
}

func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	user, err := s.authService.CurrentUser(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "current user", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, UserResponse{ID: user.ID, Email: user.Email, CreatedAt: user.CreatedAt})
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	var req DeleteAccountRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		logger.Error("account deletion error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	if err := s.authService.DeleteAccount(ctx, uid, req.Password); err != nil {
		writeServiceError(w, logger, "account deletion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("account deleted")
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()
		if err := s.db.Ping(ctx); err != nil {
			GetLoggerFromCtx(r.Context()).Error("health check failed", slog.String("error", err.Error()))
			httputil.WriteJSONResponse(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// requireUID writes 401 and returns false when the request carries no user.
func (s *Server) requireUID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error("unauthorized request")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return uuid.Nil, false
	}
	return uid, true
}

// pathID parses the {id} path value, writing 400 when it isn't a uuid.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error("invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid id in path value", nil)
		return uuid.Nil, false
	}
	return id, true
}

// queryInt returns 0 for a missing or malformed parameter, services apply defaults.
func queryInt(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return v
}

func queryList(r *http.Request, key string) []string {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

func badBody(w http.ResponseWriter, r *http.Request, op string) {
	GetLoggerFromCtx(r.Context()).Error(op + " error: invalid body")
	httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
}
