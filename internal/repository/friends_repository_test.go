package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/selfhq/internal/error_values"
	"github.com/limbo/selfhq/internal/repository"
	"github.com/limbo/selfhq/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	connectionRowColumns = []string{"id", "requester_id", "addressee_id", "status", "created_at", "updated_at"}
	publicRowColumns     = []string{"user_id", "username", "first_name", "last_name", "show_real_name", "avatar_url", "is_public"}
)

func connectionRow(fc entity.FriendConnection) *pgxmock.Rows {
	return pgxmock.NewRows(connectionRowColumns).
		AddRow(fc.ID, fc.RequesterID, fc.AddresseeID, fc.Status, fc.CreatedAt, fc.UpdatedAt)
}

func publicValues(p entity.UserProfile) []any {
	return []any{p.UserID, p.Username, p.FirstName, p.LastName, p.ShowRealName, p.AvatarURL, p.IsPublic}
}

func TestCreateFriendRequest(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewFriendsRepoWithConn(conn)
	ctx := context.Background()
	fc := entity.FriendConnection{
		ID:          uuid.New(),
		RequesterID: uuid.New(),
		AddresseeID: uuid.New(),
		Status:      entity.FriendPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	query := regexp.QuoteMeta(`INSERT INTO friend_connections AS fc (requester_id, addressee_id) VALUES ($1, $2)`)
	testCases := []struct {
		Desc            string
		Error           error
		MockPrepareFunc func()
	}{
		{
			Desc:  "created",
			Error: nil,
			MockPrepareFunc: func() {
				conn.ExpectQuery(query).WithArgs(fc.RequesterID, fc.AddresseeID).WillReturnRows(connectionRow(fc))
			},
		},
		{
			Desc:  "pair already connected",
			Error: errorvalues.ErrConnectionExists,
			MockPrepareFunc: func() {
				conn.ExpectQuery(query).WithArgs(fc.RequesterID, fc.AddresseeID).WillReturnError(&pgconn.PgError{Code: "23505"})
			},
		},
		{
			Desc:  "unknown user",
			Error: errorvalues.ErrUserNotFound,
			MockPrepareFunc: func() {
				conn.ExpectQuery(query).WithArgs(fc.RequesterID, fc.AddresseeID).WillReturnError(&pgconn.PgError{Code: "23503"})
			},
		},
		{
			Desc:  "self request",
			Error: errorvalues.ErrValidation,
			MockPrepareFunc: func() {
				conn.ExpectQuery(query).WithArgs(fc.RequesterID, fc.AddresseeID).WillReturnError(&pgconn.PgError{Code: "23514"})
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			result, err := repo.CreateRequest(ctx, fc.RequesterID, fc.AddresseeID)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, fc, *result)
		})
	}
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestRespondToFriendRequest(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewFriendsRepoWithConn(conn)
	ctx := context.Background()
	fc := entity.FriendConnection{
		ID:          uuid.New(),
		RequesterID: uuid.New(),
		AddresseeID: uuid.New(),
		Status:      entity.FriendAccepted,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	updateQuery := regexp.QuoteMeta(`UPDATE friend_connections fc SET status = $3, updated_at = NOW()`)
	selectQuery := regexp.QuoteMeta(`FROM friend_connections fc WHERE fc.id = $1;`)

	t.Run("accepted by addressee", func(t *testing.T) {
		conn.ExpectQuery(updateQuery).WithArgs(fc.ID, fc.AddresseeID, entity.FriendAccepted).WillReturnRows(connectionRow(fc))
		result, err := repo.Respond(ctx, fc.ID, fc.AddresseeID, entity.FriendAccepted)
		assert.NoError(t, err)
		assert.Equal(t, entity.FriendAccepted, result.Status)
	})
	t.Run("not the addressee", func(t *testing.T) {
		pending := fc
		pending.Status = entity.FriendPending
		conn.ExpectQuery(updateQuery).WithArgs(fc.ID, fc.RequesterID, entity.FriendAccepted).WillReturnError(pgx.ErrNoRows)
		conn.ExpectQuery(selectQuery).WithArgs(fc.ID).WillReturnRows(connectionRow(pending))
		_, err := repo.Respond(ctx, fc.ID, fc.RequesterID, entity.FriendAccepted)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("already answered", func(t *testing.T) {
		conn.ExpectQuery(updateQuery).WithArgs(fc.ID, fc.AddresseeID, entity.FriendDeclined).WillReturnError(pgx.ErrNoRows)
		conn.ExpectQuery(selectQuery).WithArgs(fc.ID).WillReturnRows(connectionRow(fc))
		_, err := repo.Respond(ctx, fc.ID, fc.AddresseeID, entity.FriendDeclined)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidTransition)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(updateQuery).WithArgs(fc.ID, fc.AddresseeID, entity.FriendAccepted).WillReturnError(pgx.ErrNoRows)
		conn.ExpectQuery(selectQuery).WithArgs(fc.ID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.Respond(ctx, fc.ID, fc.AddresseeID, entity.FriendAccepted)
		assert.ErrorIs(t, err, errorvalues.ErrConnectionNotFound)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestListAcceptedFriends(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewFriendsRepoWithConn(conn)
	ctx := context.Background()
	alice := testProfile("alice")
	bob := testProfile("bob")
	fc := entity.FriendConnection{
		ID:          uuid.New(),
		RequesterID: alice.UserID,
		AddresseeID: bob.UserID,
		Status:      entity.FriendAccepted,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	columns := append(append(append([]string{}, connectionRowColumns...), publicRowColumns...), publicRowColumns...)
	values := append([]any{fc.ID, fc.RequesterID, fc.AddresseeID, fc.Status, fc.CreatedAt, fc.UpdatedAt}, publicValues(alice)...)
	values = append(values, publicValues(bob)...)

	t.Run("both sides loaded", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`WHERE (fc.requester_id = $1 OR fc.addressee_id = $1) AND fc.status = 'accepted'`)).
			WithArgs(alice.UserID).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(values...))
		result, err := repo.ListAccepted(ctx, alice.UserID)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "bob", result[0].Other(alice.UserID).Username)
		assert.Equal(t, "alice", result[0].Other(bob.UserID).Username)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`FROM friend_connections fc`)).
			WithArgs(alice.UserID).
			WillReturnError(errors.New("db error"))
		_, err := repo.ListAccepted(ctx, alice.UserID)
		assert.Error(t, err)
	})
}

func TestListPendingFor(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewFriendsRepoWithConn(conn)
	ctx := context.Background()
	alice := testProfile("alice")
	bobID := uuid.New()
	columns := append(append([]string{}, connectionRowColumns...), publicRowColumns...)
	values := append([]any{uuid.New(), alice.UserID, bobID, entity.FriendPending, time.Now(), time.Now()}, publicValues(alice)...)

	conn.ExpectQuery(regexp.QuoteMeta(`WHERE fc.addressee_id = $1 AND fc.status = 'pending'`)).
		WithArgs(bobID).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(values...))
	result, err := repo.ListPendingFor(ctx, bobID)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, alice.UserID, result[0].Requester.UserID)
	assert.Nil(t, result[0].Addressee)
}

func TestAcceptInvitation(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewFriendsRepoWithConn(conn)
	ctx := context.Background()
	now := time.Now()
	invitationID := uuid.New()
	inviterID := uuid.New()
	acceptorID := uuid.New()
	code := "abc123"
	lockQuery := regexp.QuoteMeta(`SELECT id, inviter_id, expires_at FROM friend_invitations`)
	connectQuery := regexp.QuoteMeta(`INSERT INTO friend_connections AS fc (requester_id, addressee_id, status) VALUES ($1, $2, 'accepted')`)
	lockRow := func(expiresAt time.Time) *pgxmock.Rows {
		return pgxmock.NewRows([]string{"id", "inviter_id", "expires_at"}).AddRow(invitationID, inviterID, expiresAt)
	}

	t.Run("accepted", func(t *testing.T) {
		fc := entity.FriendConnection{
			ID:          uuid.New(),
			RequesterID: inviterID,
			AddresseeID: acceptorID,
			Status:      entity.FriendAccepted,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		conn.ExpectBegin()
		conn.ExpectQuery(lockQuery).WithArgs(code).WillReturnRows(lockRow(now.Add(time.Hour)))
		conn.ExpectQuery(connectQuery).WithArgs(inviterID, acceptorID).WillReturnRows(connectionRow(fc))
		conn.ExpectExec(regexp.QuoteMeta(`UPDATE friend_invitations SET status = 'accepted' WHERE id = $1;`)).
			WithArgs(invitationID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectCommit()
		result, err := repo.AcceptInvitation(ctx, code, acceptorID, now)
		assert.NoError(t, err)
		assert.Equal(t, fc, *result)
	})
	t.Run("expired", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectQuery(lockQuery).WithArgs(code).WillReturnRows(lockRow(now.Add(-time.Minute)))
		conn.ExpectExec(regexp.QuoteMeta(`UPDATE friend_invitations SET status = 'expired' WHERE id = $1;`)).
			WithArgs(invitationID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectCommit()
		_, err := repo.AcceptInvitation(ctx, code, acceptorID, now)
		assert.ErrorIs(t, err, errorvalues.ErrInvitationExpired)
	})
	t.Run("unknown or used code", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectQuery(lockQuery).WithArgs(code).WillReturnError(pgx.ErrNoRows)
		conn.ExpectRollback()
		_, err := repo.AcceptInvitation(ctx, code, acceptorID, now)
		assert.ErrorIs(t, err, errorvalues.ErrInvitationNotFound)
	})
	t.Run("own invitation", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectQuery(lockQuery).WithArgs(code).WillReturnRows(lockRow(now.Add(time.Hour)))
		conn.ExpectRollback()
		_, err := repo.AcceptInvitation(ctx, code, inviterID, now)
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}

func TestInvitations(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewFriendsRepoWithConn(conn)
	ctx := context.Background()
	inv := entity.FriendInvitation{
		ID:             uuid.New(),
		InviterID:      uuid.New(),
		Email:          "friend@example.com",
		InvitationCode: "code",
		Message:        "join me",
		Status:         entity.InvitationPending,
		ExpiresAt:      time.Now().Add(7 * 24 * time.Hour),
		CreatedAt:      time.Now(),
	}
	columns := []string{"id", "inviter_id", "email", "invitation_code", "message", "status", "expires_at", "created_at"}
	row := func() *pgxmock.Rows {
		return pgxmock.NewRows(columns).AddRow(inv.ID, inv.InviterID, inv.Email, inv.InvitationCode, inv.Message, inv.Status, inv.ExpiresAt, inv.CreatedAt)
	}

	t.Run("create", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`INSERT INTO friend_invitations (inviter_id, email, invitation_code, message, expires_at)`)).
			WithArgs(inv.InviterID, inv.Email, inv.InvitationCode, inv.Message, inv.ExpiresAt).
			WillReturnRows(row())
		result, err := repo.CreateInvitation(ctx, &inv)
		assert.NoError(t, err)
		assert.Equal(t, inv, *result)
	})
	t.Run("list", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`FROM friend_invitations WHERE inviter_id = $1 ORDER BY created_at DESC;`)).
			WithArgs(inv.InviterID).
			WillReturnRows(row())
		result, err := repo.ListInvitations(ctx, inv.InviterID)
		assert.NoError(t, err)
		assert.Len(t, result, 1)
	})
}
