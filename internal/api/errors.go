package api

import (
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/limbo/selfhq/internal/error_values"
	"github.com/limbo/selfhq/pkg/httputil"
)

type errorMapping struct {
	err     error
	status  int
	message string
}

// serviceErrors is checked in order, the first sentinel found in the chain wins.
var serviceErrors = []errorMapping{
	{errorvalues.ErrValidation, http.StatusBadRequest, "invalid request"},
	{errorvalues.ErrCheckDateNotAllowed, http.StatusBadRequest, "habit can't be checked for a future date"},

	{errorvalues.ErrNotAuthenticated, http.StatusUnauthorized, "not authenticated"},
	{errorvalues.ErrInvalidToken, http.StatusUnauthorized, "invalid token"},
	{errorvalues.ErrTokenRevoked, http.StatusUnauthorized, "token has been revoked"},
	{errorvalues.ErrWrongCredentials, http.StatusForbidden, "invalid email or password"},

	{errorvalues.ErrNotChallengeCreator, http.StatusForbidden, "only the creator can do this"},
	{errorvalues.ErrWrongOwner, http.StatusForbidden, "it belongs to another user"},
	{errorvalues.ErrFriendRequestsDisabled, http.StatusForbidden, "user doesn't accept friend requests"},

	{errorvalues.ErrUserNotFound, http.StatusNotFound, "user not found"},
	{errorvalues.ErrProfileNotFound, http.StatusNotFound, "profile not found"},
	{errorvalues.ErrConnectionNotFound, http.StatusNotFound, "friend request not found"},
	{errorvalues.ErrInvitationNotFound, http.StatusNotFound, "invitation not found"},
	{errorvalues.ErrChallengeNotFound, http.StatusNotFound, "challenge not found"},
	{errorvalues.ErrParticipantNotFound, http.StatusNotFound, "not participating in this challenge"},
	{errorvalues.ErrReflectionNotFound, http.StatusNotFound, "reflection not found"},
	{errorvalues.ErrResourceNotFound, http.StatusNotFound, "resource not found"},
	{errorvalues.ErrHabitNotFound, http.StatusNotFound, "habit not found"},
	{errorvalues.ErrCheckNotFound, http.StatusNotFound, "habit is not checked for this date"},

	{errorvalues.ErrInvitationExpired, http.StatusGone, "invitation has expired"},

	{errorvalues.ErrUserExists, http.StatusConflict, "user with such email already exists"},
	{errorvalues.ErrUsernameTaken, http.StatusConflict, "username is already taken"},
	{errorvalues.ErrConnectionExists, http.StatusConflict, "friend connection already exists"},
	{errorvalues.ErrAlreadyParticipating, http.StatusConflict, "already participating in this challenge"},
	{errorvalues.ErrChallengeFull, http.StatusConflict, "challenge is full"},
	{errorvalues.ErrInvalidTransition, http.StatusConflict, "not allowed in the current status"},
	{errorvalues.ErrHabitExists, http.StatusConflict, "habit with such title already exists"},
	{errorvalues.ErrCheckExists, http.StatusConflict, "habit is already checked for this date"},
}

// writeServiceError logs err and answers with the status its sentinel maps to.
// Validation details are passed to the client, anything unknown is a 500.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	for _, m := range serviceErrors {
		if !errors.Is(err, m.err) {
			continue
		}
		logger.Error(op+" error", slog.String("error", err.Error()), slog.Int("status", m.status))
		var details error
		if m.status == http.StatusBadRequest {
			details = err
		}
		httputil.WriteErrorResponse(w, m.status, m.message, details)
		return
	}
	logger.Error(op+" error: service error", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+op, nil)
}
