package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/selfhq/internal/error_values"
	"github.com/limbo/selfhq/internal/repository"
	"github.com/limbo/selfhq/pkg/entity"
	"github.com/limbo/selfhq/pkg/sanitize"
)

const (
	defaultPublicChallengesLimit = 20
	maxPublicChallengesLimit     = 100
)

// strictJSON rejects fields that don't belong to the decoded variant, so progress of
// one challenge type can't be stored on a challenge of another.
var strictJSON = sonic.Config{DisallowUnknownFields: true}.Froze()

type ChallengesService struct {
	repo repository.ChallengesRepositoryI
	now  func() time.Time
}

func NewChallengesService(challengesRepo repository.ChallengesRepositoryI) *ChallengesService {
	return NewChallengesServiceWithClock(challengesRepo, time.Now)
}

func NewChallengesServiceWithClock(challengesRepo repository.ChallengesRepositoryI, now func() time.Time) *ChallengesService {
	if challengesRepo == nil {
		log.Fatal("provided nil challengesRepo")
	}
	return &ChallengesService{
		repo: challengesRepo,
		now:  now,
	}
}

func (cs *ChallengesService) CreateChallenge(ctx context.Context, uid uuid.UUID, req *CreateChallengeRequest) (*entity.Challenge, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	start, _ := time.Parse(time.DateOnly, req.StartDate)
	end, _ := time.Parse(time.DateOnly, req.EndDate)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end_date is before start_date", errorvalues.ErrValidation)
	}
	params, err := decodeParams(req.Type, req.Parameters)
	if err != nil {
		return nil, err
	}
	ch := entity.Challenge{
		CreatorID:        uid,
		Title:            sanitize.Text(req.Title),
		Description:      sanitize.Text(req.Description),
		Type:             req.Type,
		Parameters:       params,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		IsPublic:         req.IsPublic,
		MaxParticipants:  req.MaxParticipants,
		RequiresApproval: req.RequiresApproval,
	}
	if ch.Title == "" {
		return nil, fmt.Errorf("%w: title is empty", errorvalues.ErrValidation)
	}
	created, err := cs.repo.Create(ctx, &ch, inviteesOf(uid, req.InvitedFriends))
	if err != nil {
		if errors.Is(err, errorvalues.ErrValidation) || errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("challenges repository error: %w", err)
	}
	return created, nil
}

func (cs *ChallengesService) GetChallenge(ctx context.Context, uid, challengeID uuid.UUID) (*entity.Challenge, error) {
	ch, err := cs.repo.GetByID(ctx, challengeID)
	if err != nil {
		return nil, wrapChallengeErr(err)
	}
	if ch.IsPublic || ch.CreatorID == uid {
		return ch, nil
	}
	ok, err := cs.repo.IsParticipant(ctx, challengeID, uid)
	if err != nil {
		return nil, wrapChallengeErr(err)
	}
	if !ok {
		return nil, errorvalues.ErrChallengeNotFound
	}
	return ch, nil
}

func (cs *ChallengesService) GetUserChallenges(ctx context.Context, uid uuid.UUID) ([]*entity.Challenge, error) {
	challenges, err := cs.repo.ListForUser(ctx, uid)
	if err != nil {
		return nil, wrapChallengeErr(err)
	}
	return challenges, nil
}

func (cs *ChallengesService) GetPublicChallenges(ctx context.Context, limit int) ([]*entity.Challenge, error) {
	switch {
	case limit <= 0:
		limit = defaultPublicChallengesLimit
	case limit > maxPublicChallengesLimit:
		limit = maxPublicChallengesLimit
	}
	challenges, err := cs.repo.ListPublic(ctx, cs.now().Format(time.DateOnly), limit)
	if err != nil {
		return nil, wrapChallengeErr(err)
	}
	return challenges, nil
}

func (cs *ChallengesService) JoinChallenge(ctx context.Context, uid, challengeID uuid.UUID) (*entity.ChallengeParticipant, error) {
	p, err := cs.repo.Join(ctx, challengeID, uid)
	if err != nil {
		return nil, wrapChallengeErr(err)
	}
	return p, nil
}

func (cs *ChallengesService) RespondToChallengeInvitation(ctx context.Context, uid, challengeID uuid.UUID, status entity.ParticipantStatus) (*entity.ChallengeParticipant, error) {
	if status != entity.ParticipantAccepted && status != entity.ParticipantDeclined {
		return nil, fmt.Errorf("%w: status must be accepted or declined", errorvalues.ErrValidation)
	}
	p, err := cs.repo.UpdateStatus(ctx, challengeID, uid, entity.ParticipantPending, status)
	if err != nil {
		return nil, wrapChallengeErr(err)
	}
	return p, nil
}

// CompleteChallenge is self-reported, the goal itself is not verified.
func (cs *ChallengesService) CompleteChallenge(ctx context.Context, uid, challengeID uuid.UUID) (*entity.ChallengeParticipant, error) {
	p, err := cs.repo.UpdateStatus(ctx, challengeID, uid, entity.ParticipantAccepted, entity.ParticipantCompleted)
	if err != nil {
		return nil, wrapChallengeErr(err)
	}
	return p, nil
}

func (cs *ChallengesService) UpdateChallengeProgress(ctx context.Context, uid, challengeID uuid.UUID, raw json.RawMessage) (*entity.ChallengeParticipant, error) {
	current, err := cs.repo.GetParticipant(ctx, challengeID, uid)
	if err != nil {
		return nil, wrapChallengeErr(err)
	}
	if current.Status != entity.ParticipantAccepted {
		return nil, errorvalues.ErrInvalidTransition
	}
	progress, err := decodeProgress(current.Progress.ChallengeType(), raw)
	if err != nil {
		return nil, err
	}
	encoded, err := sonic.Marshal(progress)
	if err != nil {
		return nil, errors.New("marshalling progress error: " + err.Error())
	}
	p, err := cs.repo.UpdateProgress(ctx, challengeID, uid, encoded)
	if err != nil {
		return nil, wrapChallengeErr(err)
	}
	return p, nil
}

func (cs *ChallengesService) GetChallengeParticipants(ctx context.Context, uid, challengeID uuid.UUID) ([]*entity.ChallengeParticipant, error) {
	if _, err := cs.GetChallenge(ctx, uid, challengeID); err != nil {
		return nil, err
	}
	participants, err := cs.repo.ListParticipants(ctx, challengeID)
	if err != nil {
		return nil, wrapChallengeErr(err)
	}
	return participants, nil
}

func (cs *ChallengesService) GetPendingChallengeInvitations(ctx context.Context, uid uuid.UUID) ([]*entity.Challenge, error) {
	challenges, err := cs.repo.ListPendingInvitations(ctx, uid)
	if err != nil {
		return nil, wrapChallengeErr(err)
	}
	return challenges, nil
}

func (cs *ChallengesService) DeleteChallenge(ctx context.Context, uid, challengeID uuid.UUID) error {
	if err := cs.repo.Delete(ctx, challengeID, uid); err != nil {
		return wrapChallengeErr(err)
	}
	return nil
}

// inviteesOf drops duplicates and the creator from invited.
func inviteesOf(creatorID uuid.UUID, invited []uuid.UUID) []uuid.UUID {
	if len(invited) == 0 {
		return nil
	}
	seen := make(map[uuid.UUID]struct{}, len(invited))
	out := make([]uuid.UUID, 0, len(invited))
	for _, id := range invited {
		if _, ok := seen[id]; ok || id == creatorID || id == uuid.Nil {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func decodeParams(t entity.ChallengeType, raw []byte) (entity.ChallengeParams, error) {
	switch t {
	case entity.ChallengeHabitStreak:
		return decodeVariant[entity.HabitStreakParams](raw)
	case entity.ChallengeCustomGoal:
		return decodeVariant[entity.CustomGoalParams](raw)
	case entity.ChallengeActivityCount:
		return decodeVariant[entity.ActivityCountParams](raw)
	case entity.ChallengeDuration:
		return decodeVariant[entity.DurationParams](raw)
	}
	return nil, fmt.Errorf("%w: %w", errorvalues.ErrValidation, errorvalues.ErrInvalidChallengeType)
}

func decodeProgress(t entity.ChallengeType, raw []byte) (entity.ChallengeProgress, error) {
	switch t {
	case entity.ChallengeHabitStreak:
		return decodeVariant[entity.HabitStreakProgress](raw)
	case entity.ChallengeCustomGoal:
		return decodeVariant[entity.CustomGoalProgress](raw)
	case entity.ChallengeActivityCount:
		return decodeVariant[entity.ActivityCountProgress](raw)
	case entity.ChallengeDuration:
		return decodeVariant[entity.DurationProgress](raw)
	}
	return nil, fmt.Errorf("%w: %w", errorvalues.ErrValidation, errorvalues.ErrInvalidChallengeType)
}

func decodeVariant[T any](raw []byte) (T, error) {
	var v T
	if len(raw) == 0 {
		return v, fmt.Errorf("%w: empty %T", errorvalues.ErrValidation, v)
	}
	if err := strictJSON.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("%w: decoding %T: %s", errorvalues.ErrValidation, v, err.Error())
	}
	if err := validateStruct(v); err != nil {
		return v, err
	}
	return v, nil
}

func wrapChallengeErr(err error) error {
	for _, known := range []error{
		errorvalues.ErrChallengeNotFound,
		errorvalues.ErrNotChallengeCreator,
		errorvalues.ErrAlreadyParticipating,
		errorvalues.ErrChallengeFull,
		errorvalues.ErrParticipantNotFound,
		errorvalues.ErrInvalidTransition,
		errorvalues.ErrUserNotFound,
		errorvalues.ErrValidation,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("challenges repository error: %w", err)
}
