package service

//go:generate mockgen -source=interfaces.go -destination=mocks/service_mocks.go -package=mocks

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/selfhq/pkg/entity"
)

type SignUpRequest struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FirstName string `json:"first_name" validate:"max=50"`
	LastName  string `json:"last_name" validate:"max=50"`
	// Generated when empty
	Username string `json:"username" validate:"omitempty,username"`
}

type UpdateProfileRequest struct {
	Username            *string                 `json:"username" validate:"omitempty,username"`
	FirstName           *string                 `json:"first_name" validate:"omitempty,max=50"`
	LastName            *string                 `json:"last_name" validate:"omitempty,max=50"`
	Bio                 *string                 `json:"bio" validate:"omitempty,max=500"`
	Location            *string                 `json:"location" validate:"omitempty,max=100"`
	Website             *string                 `json:"website" validate:"omitempty,url,max=200"`
	DateOfBirth         *string                 `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	AvatarURL           *string                 `json:"avatar_url" validate:"omitempty,url,max=500"`
	IsPublic            *bool                   `json:"is_public"`
	ShowRealName        *bool                   `json:"show_real_name"`
	ShowLocation        *bool                   `json:"show_location"`
	ShowStats           *bool                   `json:"show_stats"`
	ThemePreference     *entity.ThemePreference `json:"theme_preference" validate:"omitempty,oneof=light dark system"`
	AllowFriendRequests *bool                   `json:"allow_friend_requests"`
	AllowChallenges     *bool                   `json:"allow_challenges"`
	ShowInLeaderboards  *bool                   `json:"show_in_leaderboards"`
}

type InviteFriendRequest struct {
	Email   string `json:"email" validate:"required,email,max=254"`
	Message string `json:"message" validate:"max=500"`
}

type CreateChallengeRequest struct {
	Title            string               `json:"title" validate:"required,max=200"`
	Description      string               `json:"description" validate:"max=2000"`
	Type             entity.ChallengeType `json:"challenge_type" validate:"required,oneof=habit_streak custom_goal activity_count duration_based"`
	Parameters       json.RawMessage      `json:"parameters" validate:"required"`
	StartDate        string               `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate          string               `json:"end_date" validate:"required,datetime=2006-01-02"`
	IsPublic         bool                 `json:"is_public"`
	MaxParticipants  *int                 `json:"max_participants" validate:"omitempty,min=1,max=10000"`
	RequiresApproval bool                 `json:"requires_approval"`
	InvitedFriends   []uuid.UUID          `json:"invited_friends" validate:"max=100"`
}

type SaveReflectionRequest struct {
	ValuesAlignment        *int     `json:"values_alignment" validate:"omitempty,min=1,max=10"`
	ValuesReflection       string   `json:"values_reflection" validate:"max=5000"`
	MissionProgress        *int     `json:"mission_progress" validate:"omitempty,min=1,max=10"`
	MissionReflection      string   `json:"mission_reflection" validate:"max=5000"`
	WeekProgressReflection string   `json:"week_progress_reflection" validate:"max=5000"`
	WeekChallenges         string   `json:"week_challenges" validate:"max=5000"`
	WeekWins               string   `json:"week_wins" validate:"max=5000"`
	VisionProgress         *int     `json:"vision_progress" validate:"omitempty,min=1,max=10"`
	VisionReflection       string   `json:"vision_reflection" validate:"max=5000"`
	GratitudeItems         []string `json:"gratitude_items" validate:"max=20,dive,max=500"`
}

type ResourceRequest struct {
	Title           string                  `json:"title" validate:"required,max=200"`
	Description     string                  `json:"description" validate:"max=2000"`
	Author          string                  `json:"author" validate:"max=200"`
	Host            string                  `json:"host" validate:"max=200"`
	Type            entity.ResourceType     `json:"resource_type" validate:"required,oneof=book audiobook podcast video article course tool other"`
	CategoryID      *uuid.UUID              `json:"category_id"`
	URL             string                  `json:"url" validate:"omitempty,url,max=500"`
	AffiliateLink   string                  `json:"affiliate_link" validate:"omitempty,url,max=500"`
	Rating          *int                    `json:"rating" validate:"omitempty,min=1,max=5"`
	DifficultyLevel *entity.DifficultyLevel `json:"difficulty_level" validate:"omitempty,oneof=beginner intermediate advanced"`
	EstimatedTime   string                  `json:"estimated_time" validate:"max=100"`
	Tags            []string                `json:"tags" validate:"max=20,dive,max=50"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type CreateHabitRequest struct {
	Title       string     `json:"title" validate:"required,max=100"`
	Description string     `json:"description" validate:"max=1000"`
	CategoryID  *uuid.UUID `json:"category_id"`
	IsPrivate   bool       `json:"is_private"`
}

type UpdateHabitRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=100"`
	Description *string    `json:"description" validate:"omitempty,max=1000"`
	CategoryID  *uuid.UUID `json:"category_id"`
	IsPrivate   *bool      `json:"is_private"`
}

type AuthServiceI interface {
	// Validates request, creates user with its profile. Returns user's data with ID
	SignUp(ctx context.Context, req *SignUpRequest) (*entity.User, error)
	// Compares given credentials. If ok, gives back user's data with ID
	SignIn(ctx context.Context, email, password string) (*entity.User, error)
	// Revokes token with given id until it expires
	SignOut(ctx context.Context, jti string, expiresAt time.Time) error
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
	CurrentUser(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	DeleteAccount(ctx context.Context, uid uuid.UUID, password string) error
	// Drops revocations of tokens that are expired anyway
	PurgeRevokedTokens(ctx context.Context) (int64, error)
}

type ProfilesServiceI interface {
	GetCurrentProfile(ctx context.Context, uid uuid.UUID) (*entity.UserProfile, error)
	// Non-public profiles are visible to their owner only
	GetProfileByUsername(ctx context.Context, viewerID uuid.UUID, username string) (*entity.UserProfile, error)
	GetProfileByUserID(ctx context.Context, viewerID, uid uuid.UUID) (*entity.UserProfile, error)
	UpdateProfile(ctx context.Context, uid uuid.UUID, req *UpdateProfileRequest) (*entity.UserProfile, error)
	// Validates username first. currentUserID's own username counts as available
	IsUsernameAvailable(ctx context.Context, username string, currentUserID *uuid.UUID) (bool, error)
	SearchUsers(ctx context.Context, query string, limit int) ([]*entity.PublicUser, error)
	GetPublicUser(ctx context.Context, uid uuid.UUID) (*entity.PublicUser, error)
	GetBulkPublicUsers(ctx context.Context, uids []uuid.UUID) (map[uuid.UUID]*entity.PublicUser, error)
	CompleteOnboarding(ctx context.Context, uid uuid.UUID) error
}

type FriendsServiceI interface {
	SendFriendRequest(ctx context.Context, uid, targetID uuid.UUID) (*entity.FriendConnection, error)
	// Only the addressee of a pending request may respond
	RespondToFriendRequest(ctx context.Context, uid, connectionID uuid.UUID, status entity.FriendStatus) (*entity.FriendConnection, error)
	GetUserFriends(ctx context.Context, uid uuid.UUID) ([]*entity.Friend, error)
	GetPendingRequests(ctx context.Context, uid uuid.UUID) ([]*entity.FriendRequest, error)
	InviteFriendByEmail(ctx context.Context, uid uuid.UUID, req *InviteFriendRequest) (*entity.FriendInvitation, error)
	GetSentInvitations(ctx context.Context, uid uuid.UUID) ([]*entity.FriendInvitation, error)
	AcceptInvitationByCode(ctx context.Context, uid uuid.UUID, code string) (*entity.FriendConnection, error)
}

type ChallengesServiceI interface {
	CreateChallenge(ctx context.Context, uid uuid.UUID, req *CreateChallengeRequest) (*entity.Challenge, error)
	// Public challenges are visible to everyone, private ones to creator and participants
	GetChallenge(ctx context.Context, uid, challengeID uuid.UUID) (*entity.Challenge, error)
	GetUserChallenges(ctx context.Context, uid uuid.UUID) ([]*entity.Challenge, error)
	GetPublicChallenges(ctx context.Context, limit int) ([]*entity.Challenge, error)
	JoinChallenge(ctx context.Context, uid, challengeID uuid.UUID) (*entity.ChallengeParticipant, error)
	RespondToChallengeInvitation(ctx context.Context, uid, challengeID uuid.UUID, status entity.ParticipantStatus) (*entity.ChallengeParticipant, error)
	CompleteChallenge(ctx context.Context, uid, challengeID uuid.UUID) (*entity.ChallengeParticipant, error)
	// Replaces caller's progress. raw must be the progress variant of the challenge type
	UpdateChallengeProgress(ctx context.Context, uid, challengeID uuid.UUID, raw json.RawMessage) (*entity.ChallengeParticipant, error)
	GetChallengeParticipants(ctx context.Context, uid, challengeID uuid.UUID) ([]*entity.ChallengeParticipant, error)
	GetPendingChallengeInvitations(ctx context.Context, uid uuid.UUID) ([]*entity.Challenge, error)
	DeleteChallenge(ctx context.Context, uid, challengeID uuid.UUID) error
}

type ReflectionsServiceI interface {
	// Saves reflection of the current week, creating or replacing it
	SaveReflection(ctx context.Context, uid uuid.UUID, req *SaveReflectionRequest, isDraft bool) (*entity.Reflection, error)
	GetReflectionForWeek(ctx context.Context, uid uuid.UUID, weekOf string) (*entity.Reflection, error)
	GetCurrentWeekReflection(ctx context.Context, uid uuid.UUID) (*entity.Reflection, error)
	GetUserReflections(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.Reflection, error)
	GetReflectionStats(ctx context.Context, uid uuid.UUID) (*entity.ReflectionStats, error)
	DeleteReflection(ctx context.Context, uid, id uuid.UUID) error
}

type ResourcesServiceI interface {
	GetResources(ctx context.Context, filters *entity.ResourceFilters) ([]*entity.Resource, error)
	GetResource(ctx context.Context, id uuid.UUID) (*entity.Resource, error)
	GetFeaturedResources(ctx context.Context, limit int) ([]*entity.Resource, error)
	GetPopularResources(ctx context.Context, limit int) ([]*entity.Resource, error)
	// Includes caller's unapproved submissions
	GetUserResources(ctx context.Context, uid uuid.UUID) ([]*entity.Resource, error)
	SubmitResource(ctx context.Context, uid uuid.UUID, req *ResourceRequest) (*entity.Resource, error)
	UpdateResource(ctx context.Context, uid, id uuid.UUID, req *ResourceRequest) (*entity.Resource, error)
	DeleteResource(ctx context.Context, uid, id uuid.UUID) error
	VoteOnResource(ctx context.Context, uid, id uuid.UUID, vote entity.VoteType) (*entity.VoteResult, error)
	GetUserVote(ctx context.Context, uid, id uuid.UUID) (*entity.VoteType, error)
	// uid is nil for anonymous viewers
	RecordResourceView(ctx context.Context, id uuid.UUID, uid *uuid.UUID) error
	GetCategories(ctx context.Context) ([]*entity.Category, error)
	GetResourceStats(ctx context.Context) (*entity.ResourceStats, error)
}

type HabitsServiceI interface {
	CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error)
	// Private habits are visible to their owner only
	GetHabit(ctx context.Context, uid, habitID uuid.UUID) (*entity.Habit, error)
	GetUserHabits(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Habit, error)
	GetPublicHabits(ctx context.Context, query string, limit int) ([]*entity.Habit, error)
	UpdateHabit(ctx context.Context, uid, habitID uuid.UUID, req *UpdateHabitRequest) (*entity.Habit, error)
	DeleteHabit(ctx context.Context, uid, habitID uuid.UUID) error
}

type HabitChecksServiceI interface {
	// date is YYYY-MM-DD, empty means today. Future dates are rejected
	CheckHabit(ctx context.Context, uid, habitID uuid.UUID, date string) error
	UncheckHabit(ctx context.Context, uid, habitID uuid.UUID, date string) error
	// Empty bounds default to the 30 days ending today
	GetHabitChecks(ctx context.Context, uid, habitID uuid.UUID, from, to string) ([]*entity.HabitCheck, error)
	GetHabitStats(ctx context.Context, uid, habitID uuid.UUID) (*entity.HabitStats, error)
}
