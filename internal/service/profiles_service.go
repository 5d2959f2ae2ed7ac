package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/selfhq/internal/error_values"
	"github.com/limbo/selfhq/internal/repository"
	"github.com/limbo/selfhq/pkg/entity"
	"github.com/limbo/selfhq/pkg/sanitize"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

type ProfilesService struct {
	repo repository.ProfilesRepositoryI
}

func NewProfilesService(profilesRepo repository.ProfilesRepositoryI) *ProfilesService {
	if profilesRepo == nil {
		log.Fatal("provided nil profilesRepo")
	}
	return &ProfilesService{
		repo: profilesRepo,
	}
}

func (ps *ProfilesService) GetCurrentProfile(ctx context.Context, uid uuid.UUID) (*entity.UserProfile, error) {
	profile, err := ps.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, wrapProfileErr(err)
	}
	return profile, nil
}

func (ps *ProfilesService) GetProfileByUsername(ctx context.Context, viewerID uuid.UUID, username string) (*entity.UserProfile, error) {
	profile, err := ps.repo.GetByUsername(ctx, strings.ToLower(username))
	if err != nil {
		return nil, wrapProfileErr(err)
	}
	return visibleTo(profile, viewerID)
}

func (ps *ProfilesService) GetProfileByUserID(ctx context.Context, viewerID, uid uuid.UUID) (*entity.UserProfile, error) {
	profile, err := ps.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, wrapProfileErr(err)
	}
	return visibleTo(profile, viewerID)
}

func (ps *ProfilesService) UpdateProfile(ctx context.Context, uid uuid.UUID, req *UpdateProfileRequest) (*entity.UserProfile, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	upd := entity.ProfileUpdate{
		FirstName:           sanitize.TextPtr(req.FirstName),
		LastName:            sanitize.TextPtr(req.LastName),
		Bio:                 sanitize.TextPtr(req.Bio),
		Location:            sanitize.TextPtr(req.Location),
		Website:             req.Website,
		DateOfBirth:         req.DateOfBirth,
		AvatarURL:           req.AvatarURL,
		IsPublic:            req.IsPublic,
		ShowRealName:        req.ShowRealName,
		ShowLocation:        req.ShowLocation,
		ShowStats:           req.ShowStats,
		ThemePreference:     req.ThemePreference,
		AllowFriendRequests: req.AllowFriendRequests,
		AllowChallenges:     req.AllowChallenges,
		ShowInLeaderboards:  req.ShowInLeaderboards,
	}
	if req.Username != nil {
		username := strings.ToLower(*req.Username)
		taken, err := ps.repo.UsernameTaken(ctx, username, &uid)
		if err != nil {
			return nil, fmt.Errorf("profiles repository error: %w", err)
		}
		if taken {
			return nil, errorvalues.ErrUsernameTaken
		}
		upd.Username = &username
	}
	profile, err := ps.repo.Update(ctx, uid, &upd)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUsernameTaken) || errors.Is(err, errorvalues.ErrValidation) {
			return nil, err
		}
		return nil, wrapProfileErr(err)
	}
	return profile, nil
}

func (ps *ProfilesService) IsUsernameAvailable(ctx context.Context, username string, currentUserID *uuid.UUID) (bool, error) {
	if err := ValidateUsername(username); err != nil {
		return false, err
	}
	taken, err := ps.repo.UsernameTaken(ctx, strings.ToLower(username), currentUserID)
	if err != nil {
		return false, fmt.Errorf("profiles repository error: %w", err)
	}
	return !taken, nil
}

func (ps *ProfilesService) SearchUsers(ctx context.Context, query string, limit int) ([]*entity.PublicUser, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*entity.PublicUser{}, nil
	}
	switch {
	case limit <= 0:
		limit = defaultSearchLimit
	case limit > maxSearchLimit:
		limit = maxSearchLimit
	}
	profiles, err := ps.repo.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("profiles repository error: %w", err)
	}
	users := make([]*entity.PublicUser, len(profiles))
	for i, p := range profiles {
		users[i] = p.Public()
	}
	return users, nil
}

func (ps *ProfilesService) GetPublicUser(ctx context.Context, uid uuid.UUID) (*entity.PublicUser, error) {
	profile, err := ps.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, wrapProfileErr(err)
	}
	return profile.Public(), nil
}

func (ps *ProfilesService) GetBulkPublicUsers(ctx context.Context, uids []uuid.UUID) (map[uuid.UUID]*entity.PublicUser, error) {
	profiles, err := ps.repo.GetByUserIDs(ctx, uids)
	if err != nil {
		return nil, fmt.Errorf("profiles repository error: %w", err)
	}
	users := make(map[uuid.UUID]*entity.PublicUser, len(profiles))
	for _, p := range profiles {
		users[p.UserID] = p.Public()
	}
	return users, nil
}

func (ps *ProfilesService) CompleteOnboarding(ctx context.Context, uid uuid.UUID) error {
	if err := ps.repo.CompleteOnboarding(ctx, uid); err != nil {
		return wrapProfileErr(err)
	}
	return nil
}

// visibleTo hides non-public profiles from everyone but their owner.
func visibleTo(profile *entity.UserProfile, viewerID uuid.UUID) (*entity.UserProfile, error) {
	if !profile.IsPublic && profile.UserID != viewerID {
		return nil, errorvalues.ErrProfileNotFound
	}
	return profile, nil
}

func wrapProfileErr(err error) error {
	if errors.Is(err, errorvalues.ErrProfileNotFound) {
		return err
	}
	return fmt.Errorf("profiles repository error: %w", err)
}
