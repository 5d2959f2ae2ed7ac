package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/limbo/selfhq/internal/service"
	"github.com/limbo/selfhq/pkg/entity"
	"github.com/limbo/selfhq/pkg/httputil"
)

type UsernameAvailabilityResponse struct {
	Username  string `json:"username"`
	Available bool   `json:"available"`
}

type BulkUsersRequest struct {
	UserIDs []uuid.UUID `json:"user_ids"`
}

const maxBulkUsers = 100

func (s *Server) GetCurrentProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	profile, err := s.profilesService.GetCurrentProfile(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get current profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, profile)
}

func (s *Server) GetProfileByUsername(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	profile, err := s.profilesService.GetProfileByUsername(ctx, uid, r.PathValue("username"))
	if err != nil {
		writeServiceError(w, logger, "get profile by username", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, profile)
}

func (s *Server) GetProfileByUserID(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	profile, err := s.profilesService.GetProfileByUserID(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "get profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, profile)
}

func (s *Server) GetPublicUser(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	user, err := s.profilesService.GetPublicUser(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "get public user", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
}

func (s *Server) GetBulkPublicUsers(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req BulkUsersRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		badBody(w, r, "bulk users")
		return
	}
	if len(req.UserIDs) > maxBulkUsers {
		logger.Error("bulk users error: too many ids")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "too many user ids", nil)
		return
	}
	if len(req.UserIDs) == 0 {
		httputil.WriteJSONResponse(w, http.StatusOK, map[string]*entity.PublicUser{})
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	users, err := s.profilesService.GetBulkPublicUsers(ctx, req.UserIDs)
	if err != nil {
		writeServiceError(w, logger, "bulk users", err)
		return
	}
	resp := make(map[string]*entity.PublicUser, len(users))
	for id, u := range users {
		resp[id.String()] = u
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
}

func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	var req service.UpdateProfileRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		badBody(w, r, "update profile")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	profile, err := s.profilesService.UpdateProfile(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "update profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, profile)
	logger.Info("profile updated")
}

// CheckUsername answers whether the username may be taken by the caller. The
// caller's own username counts as available.
func (s *Server) CheckUsername(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	username := strings.TrimSpace(r.URL.Query().Get("username"))
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	available, err := s.profilesService.IsUsernameAvailable(ctx, username, &uid)
	if err != nil {
		writeServiceError(w, logger, "username check", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, UsernameAvailabilityResponse{
		Username:  strings.ToLower(username),
		Available: available,
	})
}

func (s *Server) SearchUsers(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	users, err := s.profilesService.SearchUsers(ctx, r.URL.Query().Get("q"), queryInt(r, "limit"))
	if err != nil {
		writeServiceError(w, logger, "search users", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, users)
}

func (s *Server) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	if err := s.profilesService.CompleteOnboarding(ctx, uid); err != nil {
		writeServiceError(w, logger, "complete onboarding", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("onboarding completed")
}
