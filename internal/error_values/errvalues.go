package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenRevoked     = errors.New("token has been revoked")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrValidation       = errors.New("validation error")
	ErrWrongOwner       = errors.New("entity belongs to another user")

	ErrProfileNotFound = errors.New("profile doesn't exist")
	ErrUsernameTaken   = errors.New("username is already taken")

	ErrConnectionExists       = errors.New("friend connection already exists")
	ErrConnectionNotFound     = errors.New("friend connection doesn't exist")
	ErrFriendRequestsDisabled = errors.New("user doesn't accept friend requests")
	ErrInvitationNotFound     = errors.New("invalid or already used invitation")
	ErrInvitationExpired      = errors.New("invitation has expired")

	ErrChallengeNotFound    = errors.New("challenge doesn't exist")
	ErrNotChallengeCreator  = errors.New("only the creator can modify this challenge")
	ErrAlreadyParticipating = errors.New("already participating in this challenge")
	ErrChallengeFull        = errors.New("challenge is full")
	ErrParticipantNotFound  = errors.New("not participating in this challenge")
	ErrInvalidChallengeType = errors.New("unknown challenge type")

	// Returned when a status change is not allowed from the current status.
	ErrInvalidTransition = errors.New("status transition not allowed")

	ErrReflectionNotFound = errors.New("reflection doesn't exist")

	ErrResourceNotFound = errors.New("resource doesn't exist")

	ErrHabitNotFound       = errors.New("habit doesn't exist")
	ErrHabitExists         = errors.New("user already has habit with such title")
	ErrCheckExists         = errors.New("habit is already checked on this date")
	ErrCheckNotFound       = errors.New("habit isn't checked on this date")
	ErrCheckDateNotAllowed = errors.New("habit can't be checked in the future")
)
