package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/limbo/selfhq/internal/service"
	"github.com/limbo/selfhq/pkg/entity"
	"github.com/limbo/selfhq/pkg/httputil"
)

type RespondChallengeBody struct {
	Status entity.ParticipantStatus `json:"status"`
}

type ProgressBody struct {
	Progress json.RawMessage `json:"progress"`
}

func (s *Server) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	var req service.CreateChallengeRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		badBody(w, r, "create challenge")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	ch, err := s.challengesService.CreateChallenge(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "create challenge", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, ch)
	logger.Info("challenge created", slog.String("challenge_id", ch.ID.String()))
}

func (s *Server) GetChallenge(w http.ResponseWriter, r *http.Request) {
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
	ch, err := s.challengesService.GetChallenge(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "get challenge", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ch)
}

func (s *Server) GetUserChallenges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	challenges, err := s.challengesService.GetUserChallenges(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get user challenges", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, challenges)
}

func (s *Server) GetPublicChallenges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	challenges, err := s.challengesService.GetPublicChallenges(ctx, queryInt(r, "limit"))
	if err != nil {
		writeServiceError(w, logger, "get public challenges", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, challenges)
}

func (s *Server) GetPendingChallengeInvitations(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	challenges, err := s.challengesService.GetPendingChallengeInvitations(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get challenge invitations", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, challenges)
}

func (s *Server) JoinChallenge(w http.ResponseWriter, r *http.Request) {
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
	p, err := s.challengesService.JoinChallenge(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "join challenge", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, p)
	logger.Info("joined challenge", slog.String("status", string(p.Status)))
}

func (s *Server) RespondToChallengeInvitation(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req RespondChallengeBody
	if err := httputil.ReadJSON(r, &req); err != nil {
		badBody(w, r, "respond to challenge")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	p, err := s.challengesService.RespondToChallengeInvitation(ctx, uid, id, req.Status)
	if err != nil {
		writeServiceError(w, logger, "respond to challenge", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, p)
}

func (s *Server) CompleteChallenge(w http.ResponseWriter, r *http.Request) {
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
	p, err := s.challengesService.CompleteChallenge(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "complete challenge", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, p)
	logger.Info("challenge completed")
}

func (s *Server) UpdateChallengeProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req ProgressBody
	if err := httputil.ReadJSON(r, &req); err != nil {
		badBody(w, r, "update progress")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	p, err := s.challengesService.UpdateChallengeProgress(ctx, uid, id, req.Progress)
	if err != nil {
		writeServiceError(w, logger, "update progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, p)
}

func (s *Server) GetChallengeParticipants(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	participants, err := s.challengesService.GetChallengeParticipants(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "get participants", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, participants)
}

func (s *Server) DeleteChallenge(w http.ResponseWriter, r *http.Request) {
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
	if err := s.challengesService.DeleteChallenge(ctx, uid, id); err != nil {
		writeServiceError(w, logger, "delete challenge", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("challenge deleted")
}
