package api

import (
	"context"
	"net/http"

	"github.com/limbo/selfhq/internal/service"
	"github.com/limbo/selfhq/pkg/httputil"
)

type SaveReflectionBody struct {
	service.SaveReflectionRequest
	IsDraft bool `json:"is_draft"`
}

func (s *Server) SaveReflection(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	var req SaveReflectionBody
	if err := httputil.ReadJSON(r, &req); err != nil {
		badBody(w, r, "save reflection")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	reflection, err := s.reflectionsService.SaveReflection(ctx, uid, &req.SaveReflectionRequest, req.IsDraft)
	if err != nil {
		writeServiceError(w, logger, "save reflection", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reflection)
	logger.Info("reflection saved")
}

func (s *Server) GetCurrentWeekReflection(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	reflection, err := s.reflectionsService.GetCurrentWeekReflection(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get current reflection", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reflection)
}

func (s *Server) GetReflectionForWeek(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	reflection, err := s.reflectionsService.GetReflectionForWeek(ctx, uid, r.PathValue("week"))
	if err != nil {
		writeServiceError(w, logger, "get reflection", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reflection)
}

func (s *Server) GetUserReflections(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	reflections, err := s.reflectionsService.GetUserReflections(ctx, uid, queryInt(r, "limit"))
	if err != nil {
		writeServiceError(w, logger, "get reflections", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reflections)
}

func (s *Server) GetReflectionStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	stats, err := s.reflectionsService.GetReflectionStats(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get reflection stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func (s *Server) DeleteReflection(w http.ResponseWriter, r *http.Request) {
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
	if err := s.reflectionsService.DeleteReflection(ctx, uid, id); err != nil {
		writeServiceError(w, logger, "delete reflection", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("reflection deleted")
}
