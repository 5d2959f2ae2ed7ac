package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/repository_mocks.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/selfhq/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates user and its profile in one transaction. Returns the new user's id
	CreateWithProfile(ctx context.Context, user *entity.User, profile *entity.UserProfile) (uuid.UUID, error)
	// Looks up user by email. Used for sign in
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid. Used by authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user, everything owned by the user is removed by cascade
	Delete(ctx context.Context, uid uuid.UUID) error
	// Marks token id as unusable until expiresAt
	RevokeToken(ctx context.Context, jti string, expiresAt time.Time) error
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
	// Removes revocations whose tokens expired before now
	PurgeRevokedTokens(ctx context.Context, now time.Time) (int64, error)
}

type ProfilesRepositoryI interface {
	GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.UserProfile, error)
	GetByUsername(ctx context.Context, username string) (*entity.UserProfile, error)
	// Lists profiles of given users. Unknown ids are skipped
	GetByUserIDs(ctx context.Context, uids []uuid.UUID) ([]*entity.UserProfile, error)
	// Applies non-nil fields of upd to the profile of uid and returns the result
	Update(ctx context.Context, uid uuid.UUID, upd *entity.ProfileUpdate) (*entity.UserProfile, error)
	// Reports whether username belongs to a profile other than exclude's
	UsernameTaken(ctx context.Context, username string, exclude *uuid.UUID) (bool, error)
	// Searches public profiles by username or real name
	Search(ctx context.Context, query string, limit int) ([]*entity.UserProfile, error)
	CompleteOnboarding(ctx context.Context, uid uuid.UUID) error
}

type FriendsRepositoryI interface {
	// Inserts pending connection. Fails with ErrConnectionExists if the pair is already connected in any direction
	CreateRequest(ctx context.Context, requesterID, addresseeID uuid.UUID) (*entity.FriendConnection, error)
	GetConnection(ctx context.Context, id uuid.UUID) (*entity.FriendConnection, error)
	// Moves a pending connection addressed to addresseeID into status
	Respond(ctx context.Context, id, addresseeID uuid.UUID, status entity.FriendStatus) (*entity.FriendConnection, error)
	// Lists accepted connections of uid with both profiles loaded
	ListAccepted(ctx context.Context, uid uuid.UUID) ([]*entity.FriendConnection, error)
	// Lists pending connections addressed to uid with requester profiles loaded
	ListPendingFor(ctx context.Context, uid uuid.UUID) ([]*entity.FriendConnection, error)
	CreateInvitation(ctx context.Context, inv *entity.FriendInvitation) (*entity.FriendInvitation, error)
	ListInvitations(ctx context.Context, inviterID uuid.UUID) ([]*entity.FriendInvitation, error)
	// Accepts a pending invitation and connects inviter with acceptor
	AcceptInvitation(ctx context.Context, code string, acceptorID uuid.UUID, now time.Time) (*entity.FriendConnection, error)
}

type ChallengesRepositoryI interface {
	// Creates challenge and pending participant rows for invitees in one transaction
	Create(ctx context.Context, ch *entity.Challenge, invitees []uuid.UUID) (*entity.Challenge, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error)
	// Lists challenges uid created or participates in
	ListForUser(ctx context.Context, uid uuid.UUID) ([]*entity.Challenge, error)
	// Lists public challenges that end on or after today
	ListPublic(ctx context.Context, today string, limit int) ([]*entity.Challenge, error)
	// Deletes challenge if creatorID created it
	Delete(ctx context.Context, id, creatorID uuid.UUID) error
	IsParticipant(ctx context.Context, challengeID, uid uuid.UUID) (bool, error)
	// Adds uid to the challenge respecting max participants
	Join(ctx context.Context, challengeID, uid uuid.UUID) (*entity.ChallengeParticipant, error)
	GetParticipant(ctx context.Context, challengeID, uid uuid.UUID) (*entity.ChallengeParticipant, error)
	ListParticipants(ctx context.Context, challengeID uuid.UUID) ([]*entity.ChallengeParticipant, error)
	// Lists pending invitations of uid with their challenges
	ListPendingInvitations(ctx context.Context, uid uuid.UUID) ([]*entity.Challenge, error)
	// Changes participant status only if it's currently from
	UpdateStatus(ctx context.Context, challengeID, uid uuid.UUID, from, to entity.ParticipantStatus) (*entity.ChallengeParticipant, error)
	// Overwrites progress of an accepted participant
	UpdateProgress(ctx context.Context, challengeID, uid uuid.UUID, progress []byte) (*entity.ChallengeParticipant, error)
}

type ReflectionsRepositoryI interface {
	// Inserts or updates reflection for (UserID, WeekOf)
	Upsert(ctx context.Context, r *entity.Reflection) (*entity.Reflection, error)
	GetByWeek(ctx context.Context, uid uuid.UUID, weekOf string) (*entity.Reflection, error)
	// Lists reflections of uid, newest week first
	ListByUser(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.Reflection, error)
	// Lists submitted (non draft) reflections of uid, newest week first
	ListSubmitted(ctx context.Context, uid uuid.UUID) ([]*entity.Reflection, error)
	Delete(ctx context.Context, id, uid uuid.UUID) error
}

type ResourcesRepositoryI interface {
	Create(ctx context.Context, res *entity.Resource) (*entity.Resource, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Resource, error)
	// Lists approved resources matching filters, newest first
	List(ctx context.Context, filters *entity.ResourceFilters) ([]*entity.Resource, error)
	ListFeatured(ctx context.Context, limit int) ([]*entity.Resource, error)
	ListPopular(ctx context.Context, limit int) ([]*entity.Resource, error)
	ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Resource, error)
	// Updates resource if uid owns it
	Update(ctx context.Context, res *entity.Resource) (*entity.Resource, error)
	Delete(ctx context.Context, id, uid uuid.UUID) error
	// Toggles or replaces the vote of uid and recomputes counters
	Vote(ctx context.Context, resourceID, uid uuid.UUID, vote entity.VoteType) (*entity.VoteResult, error)
	GetUserVote(ctx context.Context, resourceID, uid uuid.UUID) (*entity.VoteType, error)
	RecordView(ctx context.Context, resourceID uuid.UUID, uid *uuid.UUID) error
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	Stats(ctx context.Context) (*entity.ResourceStats, error)
}

type HabitsRepositoryI interface {
	// Fails with ErrHabitExists if the user already has a habit with the title
	Create(ctx context.Context, habit *entity.Habit) (*entity.Habit, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	ListByUser(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Habit, error)
	// Lists habits that aren't private, matching query in title or description
	ListPublic(ctx context.Context, query string, limit int) ([]*entity.Habit, error)
	// Updates habit if habit.UserID owns it
	Update(ctx context.Context, habit *entity.Habit) (*entity.Habit, error)
	Delete(ctx context.Context, id, uid uuid.UUID) error
}

type HabitChecksRepositoryI interface {
	// Dates are YYYY-MM-DD. Fails with ErrCheckExists for a date already checked
	Create(ctx context.Context, habitID uuid.UUID, date string) error
	Delete(ctx context.Context, habitID uuid.UUID, date string) error
	// Lists checks within [from, to], oldest first
	ListByDateRange(ctx context.Context, habitID uuid.UUID, from, to string) ([]*entity.HabitCheck, error)
	// Lists every checked date, newest first
	ListDates(ctx context.Context, habitID uuid.UUID) ([]string, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	SSLMode  string
}

func (pgcfg *PGCfg) ConnString() string {
	connStr := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.SSLMode != "" {
		connStr += "?sslmode=" + pgcfg.SSLMode
	}
	return connStr
}
