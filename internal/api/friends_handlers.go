package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/limbo/selfhq/internal/service"
	"github.com/limbo/selfhq/pkg/entity"
	"github.com/limbo/selfhq/pkg/httputil"
)

type FriendRequestBody struct {
	UserID uuid.UUID `json:"user_id"`
}

type RespondFriendRequestBody struct {
	Status entity.FriendStatus `json:"status"`
}

type AcceptInvitationBody struct {
	Code string `json:"invitation_code"`
}

func (s *Server) GetFriends(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	friends, err := s.friendsService.GetUserFriends(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get friends", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, friends)
}

func (s *Server) GetPendingFriendRequests(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	requests, err := s.friendsService.GetPendingRequests(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get friend requests", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, requests)
}

func (s *Server) SendFriendRequest(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	var req FriendRequestBody
	if err := httputil.ReadJSON(r, &req); err != nil || req.UserID == uuid.Nil {
		badBody(w, r, "send friend request")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	fc, err := s.friendsService.SendFriendRequest(ctx, uid, req.UserID)
	if err != nil {
		writeServiceError(w, logger, "send friend request", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, fc)
	logger.Info("friend request sent")
}

func (s *Server) RespondToFriendRequest(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req RespondFriendRequestBody
	if err := httputil.ReadJSON(r, &req); err != nil {
		badBody(w, r, "respond to friend request")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	fc, err := s.friendsService.RespondToFriendRequest(ctx, uid, id, req.Status)
	if err != nil {
		writeServiceError(w, logger, "respond to friend request", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, fc)
	logger.Info("friend request answered", slog.String("status", string(req.Status)))
}

func (s *Server) InviteFriend(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	var req service.InviteFriendRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		badBody(w, r, "invite friend")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	inv, err := s.friendsService.InviteFriendByEmail(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "invite friend", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, inv)
	logger.Info("invitation recorded")
}

func (s *Server) GetSentInvitations(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	invitations, err := s.friendsService.GetSentInvitations(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get invitations", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, invitations)
}

func (s *Server) AcceptInvitation(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	var req AcceptInvitationBody
	if err := httputil.ReadJSON(r, &req); err != nil {
		badBody(w, r, "accept invitation")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	fc, err := s.friendsService.AcceptInvitationByCode(ctx, uid, req.Code)
	if err != nil {
		writeServiceError(w, logger, "accept invitation", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, fc)
	logger.Info("invitation accepted")
}
