package entity

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/selfhq/internal/error_values"
)

type ChallengeType string

const (
	ChallengeHabitStreak   ChallengeType = "habit_streak"
	ChallengeCustomGoal    ChallengeType = "custom_goal"
	ChallengeActivityCount ChallengeType = "activity_count"
	ChallengeDuration      ChallengeType = "duration_based"
)

type ParticipantStatus string

const (
	ParticipantPending   ParticipantStatus = "pending"
	ParticipantAccepted  ParticipantStatus = "accepted"
	ParticipantDeclined  ParticipantStatus = "declined"
	ParticipantCompleted ParticipantStatus = "completed"
	// Present in the schema, no operation sets it yet.
	ParticipantFailed ParticipantStatus = "failed"
)

// ChallengeParams is the goal definition of a challenge. Every challenge type has
// exactly one implementation.
type ChallengeParams interface {
	ChallengeType() ChallengeType
}

// ChallengeProgress is a participant's self-reported progress, shaped by the
// challenge type.
type ChallengeProgress interface {
	ChallengeType() ChallengeType
}

type HabitStreakParams struct {
	Habit      string `json:"habit" validate:"required,max=200"`
	TargetDays int    `json:"target_days" validate:"required,min=1,max=366"`
}

type CustomGoalParams struct {
	Goal     string `json:"goal" validate:"required,max=500"`
	Criteria string `json:"criteria,omitempty" validate:"max=1000"`
}

type ActivityCountParams struct {
	Activity    string `json:"activity" validate:"required,max=200"`
	TargetCount int    `json:"target_count" validate:"required,min=1"`
	Unit        string `json:"unit,omitempty" validate:"max=50"`
}

type DurationParams struct {
	Activity      string `json:"activity" validate:"required,max=200"`
	TargetMinutes int    `json:"target_minutes" validate:"required,min=1"`
}

func (HabitStreakParams) ChallengeType() ChallengeType   { return ChallengeHabitStreak }
func (CustomGoalParams) ChallengeType() ChallengeType    { return ChallengeCustomGoal }
func (ActivityCountParams) ChallengeType() ChallengeType { return ChallengeActivityCount }
func (DurationParams) ChallengeType() ChallengeType      { return ChallengeDuration }

type HabitStreakProgress struct {
	CurrentStreak int    `json:"current_streak" validate:"min=0"`
	LongestStreak int    `json:"longest_streak" validate:"min=0,gtefield=CurrentStreak"`
	LastCheckIn   string `json:"last_check_in,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type CustomGoalProgress struct {
	Percent int    `json:"percent" validate:"min=0,max=100"`
	Notes   string `json:"notes,omitempty" validate:"max=2000"`
}

type ActivityCountProgress struct {
	Count int `json:"count" validate:"min=0"`
}

type DurationProgress struct {
	Minutes int `json:"minutes" validate:"min=0"`
}

func (HabitStreakProgress) ChallengeType() ChallengeType   { return ChallengeHabitStreak }
func (CustomGoalProgress) ChallengeType() ChallengeType    { return ChallengeCustomGoal }
func (ActivityCountProgress) ChallengeType() ChallengeType { return ChallengeActivityCount }
func (DurationProgress) ChallengeType() ChallengeType      { return ChallengeDuration }

// DecodeChallengeParams decodes raw JSON parameters into the variant for t.
func DecodeChallengeParams(t ChallengeType, raw []byte) (ChallengeParams, error) {
	switch t {
	case ChallengeHabitStreak:
		return decodeInto[HabitStreakParams](raw)
	case ChallengeCustomGoal:
		return decodeInto[CustomGoalParams](raw)
	case ChallengeActivityCount:
		return decodeInto[ActivityCountParams](raw)
	case ChallengeDuration:
		return decodeInto[DurationParams](raw)
	}
	return nil, fmt.Errorf("%w: %q", errorvalues.ErrInvalidChallengeType, t)
}

// DecodeChallengeProgress decodes raw JSON progress into the variant for t.
// Empty input yields the zero progress of that variant.
func DecodeChallengeProgress(t ChallengeType, raw []byte) (ChallengeProgress, error) {
	switch t {
	case ChallengeHabitStreak:
		return decodeInto[HabitStreakProgress](raw)
	case ChallengeCustomGoal:
		return decodeInto[CustomGoalProgress](raw)
	case ChallengeActivityCount:
		return decodeInto[ActivityCountProgress](raw)
	case ChallengeDuration:
		return decodeInto[DurationProgress](raw)
	}
	return nil, fmt.Errorf("%w: %q", errorvalues.ErrInvalidChallengeType, t)
}

func decodeInto[T any](raw []byte) (T, error) {
	var v T
	if len(raw) == 0 {
		return v, nil
	}
	if err := sonic.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("decoding %T: %w", v, err)
	}
	return v, nil
}

type Challenge struct {
	ID               uuid.UUID       `json:"id"`
	CreatorID        uuid.UUID       `json:"creator_id"`
	Title            string          `json:"title"`
	Description      string          `json:"description,omitempty"`
	Type             ChallengeType   `json:"challenge_type"`
	Parameters       ChallengeParams `json:"parameters"`
	StartDate        string          `json:"start_date"`
	EndDate          string          `json:"end_date"`
	IsPublic         bool            `json:"is_public"`
	MaxParticipants  *int            `json:"max_participants,omitempty"`
	RequiresApproval bool            `json:"requires_approval"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`

	Creator          *PublicUser             `json:"creator,omitempty"`
	Participants     []*ChallengeParticipant `json:"participants,omitempty"`
	ParticipantCount int                     `json:"participant_count"`
}

type ChallengeParticipant struct {
	ID          uuid.UUID         `json:"id"`
	ChallengeID uuid.UUID         `json:"challenge_id"`
	UserID      uuid.UUID         `json:"user_id"`
	Status      ParticipantStatus `json:"status"`
	Progress    ChallengeProgress `json:"progress"`
	JoinedAt    time.Time         `json:"joined_at"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
	User        *PublicUser       `json:"user,omitempty"`
}

// NewChallenge is what the creator submits; InvitedFriends get pending rows.
type NewChallenge struct {
	Challenge      Challenge
	InvitedFriends []uuid.UUID
}
