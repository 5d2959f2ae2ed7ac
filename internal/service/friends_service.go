package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/selfhq/internal/error_values"
	"github.com/limbo/selfhq/internal/repository"
	"github.com/limbo/selfhq/pkg/entity"
	"github.com/limbo/selfhq/pkg/sanitize"
)

const invitationTTL = 7 * 24 * time.Hour

type FriendsService struct {
	friendsRepo  repository.FriendsRepositoryI
	profilesRepo repository.ProfilesRepositoryI
	now          func() time.Time
}

func NewFriendsService(friendsRepo repository.FriendsRepositoryI, profilesRepo repository.ProfilesRepositoryI) *FriendsService {
	return NewFriendsServiceWithClock(friendsRepo, profilesRepo, time.Now)
}

func NewFriendsServiceWithClock(friendsRepo repository.FriendsRepositoryI, profilesRepo repository.ProfilesRepositoryI, now func() time.Time) *FriendsService {
	if friendsRepo == nil || profilesRepo == nil {
		log.Fatal("on friends service provided nil repos")
	}
	return &FriendsService{
		friendsRepo:  friendsRepo,
		profilesRepo: profilesRepo,
		now:          now,
	}
}

func (fs *FriendsService) SendFriendRequest(ctx context.Context, uid, targetID uuid.UUID) (*entity.FriendConnection, error) {
	if uid == targetID {
		return nil, fmt.Errorf("%w: cannot send a friend request to yourself", errorvalues.ErrValidation)
	}
	target, err := fs.profilesRepo.GetByUserID(ctx, targetID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, fmt.Errorf("profiles repository error: %w", err)
	}
	if !target.AllowFriendRequests {
		return nil, errorvalues.ErrFriendRequestsDisabled
	}
	fc, err := fs.friendsRepo.CreateRequest(ctx, uid, targetID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrConnectionExists) || errors.Is(err, errorvalues.ErrUserNotFound) ||
			errors.Is(err, errorvalues.ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("friends repository error: %w", err)
	}
	return fc, nil
}

func (fs *FriendsService) RespondToFriendRequest(ctx context.Context, uid, connectionID uuid.UUID, status entity.FriendStatus) (*entity.FriendConnection, error) {
	if status != entity.FriendAccepted && status != entity.FriendDeclined {
		return nil, fmt.Errorf("%w: status must be accepted or declined", errorvalues.ErrValidation)
	}
	fc, err := fs.friendsRepo.Respond(ctx, connectionID, uid, status)
	if err != nil {
		if errors.Is(err, errorvalues.ErrConnectionNotFound) || errors.Is(err, errorvalues.ErrWrongOwner) ||
			errors.Is(err, errorvalues.ErrInvalidTransition) {
			return nil, err
		}
		return nil, fmt.Errorf("friends repository error: %w", err)
	}
	return fc, nil
}

// GetUserFriends resolves the other side of every accepted connection of uid.
func (fs *FriendsService) GetUserFriends(ctx context.Context, uid uuid.UUID) ([]*entity.Friend, error) {
	connections, err := fs.friendsRepo.ListAccepted(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("friends repository error: %w", err)
	}
	friends := make([]*entity.Friend, 0, len(connections))
	for _, fc := range connections {
		other := fc.Other(uid)
		if other == nil {
			continue
		}
		friends = append(friends, &entity.Friend{
			PublicUser:   *other.Public(),
			ConnectionID: fc.ID,
			Since:        fc.UpdatedAt,
		})
	}
	return friends, nil
}

func (fs *FriendsService) GetPendingRequests(ctx context.Context, uid uuid.UUID) ([]*entity.FriendRequest, error) {
	connections, err := fs.friendsRepo.ListPendingFor(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("friends repository error: %w", err)
	}
	requests := make([]*entity.FriendRequest, 0, len(connections))
	for _, fc := range connections {
		req := &entity.FriendRequest{
			ConnectionID: fc.ID,
			CreatedAt:    fc.CreatedAt,
		}
		if fc.Requester != nil {
			req.Requester = fc.Requester.Public()
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// InviteFriendByEmail only records the invitation, nothing is sent.
func (fs *FriendsService) InviteFriendByEmail(ctx context.Context, uid uuid.UUID, req *InviteFriendRequest) (*entity.FriendInvitation, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	inv, err := fs.friendsRepo.CreateInvitation(ctx, &entity.FriendInvitation{
		InviterID:      uid,
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		InvitationCode: newInvitationCode(),
		Message:        sanitize.Text(req.Message),
		ExpiresAt:      fs.now().Add(invitationTTL),
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("friends repository error: %w", err)
	}
	return inv, nil
}

func (fs *FriendsService) GetSentInvitations(ctx context.Context, uid uuid.UUID) ([]*entity.FriendInvitation, error) {
	invitations, err := fs.friendsRepo.ListInvitations(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("friends repository error: %w", err)
	}
	return invitations, nil
}

func (fs *FriendsService) AcceptInvitationByCode(ctx context.Context, uid uuid.UUID, code string) (*entity.FriendConnection, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errorvalues.ErrInvitationNotFound
	}
	fc, err := fs.friendsRepo.AcceptInvitation(ctx, code, uid, fs.now())
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvitationNotFound) || errors.Is(err, errorvalues.ErrInvitationExpired) ||
			errors.Is(err, errorvalues.ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("friends repository error: %w", err)
	}
	return fc, nil
}

// newInvitationCode returns 32 hex digits.
func newInvitationCode() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
