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

// anyArgs matches n arguments of any value.
func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func TestCreateWithProfile(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUsersRepoWithConn(conn)
	ctx := context.Background()
	user := entity.User{
		Email:        "jane@example.com",
		PasswordHash: "test_password_hash",
	}
	profile := entity.UserProfile{Username: "jane", FirstName: "Jane", LastName: "Doe"}
	uid := uuid.New()
	userQuery := regexp.QuoteMeta(`INSERT INTO users (email, password_hash) VALUES ($1, $2) RETURNING id;`)
	profileQuery := regexp.QuoteMeta(`INSERT INTO user_profiles (user_id, username, first_name, last_name) VALUES ($1, $2, $3, $4);`)

	t.Run("successfully created", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectQuery(userQuery).WithArgs(user.Email, user.PasswordHash).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(uid))
		conn.ExpectExec(profileQuery).WithArgs(uid, profile.Username, profile.FirstName, profile.LastName).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		conn.ExpectCommit()
		id, err := repo.CreateWithProfile(ctx, &user, &profile)
		assert.NoError(t, err)
		assert.Equal(t, uid, id)
	})
	t.Run("email taken", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectQuery(userQuery).WithArgs(user.Email, user.PasswordHash).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		conn.ExpectRollback()
		_, err := repo.CreateWithProfile(ctx, &user, &profile)
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("username taken", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectQuery(userQuery).WithArgs(user.Email, user.PasswordHash).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(uid))
		conn.ExpectExec(profileQuery).WithArgs(uid, profile.Username, profile.FirstName, profile.LastName).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		conn.ExpectRollback()
		_, err := repo.CreateWithProfile(ctx, &user, &profile)
		assert.ErrorIs(t, err, errorvalues.ErrUsernameTaken)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectBegin().WillReturnError(errors.New("db error"))
		_, err := repo.CreateWithProfile(ctx, &user, &profile)
		assert.Error(t, err)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestFindByEmail(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := entity.User{
		ID:           uuid.New(),
		Email:        "jane@example.com",
		PasswordHash: "test_password_hash",
		CreatedAt:    time.Now(),
	}
	query := regexp.QuoteMeta(`SELECT id, email, password_hash, created_at FROM users WHERE email = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Email).
			WillReturnRows(pgxmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
				AddRow(user.ID, user.Email, user.PasswordHash, user.CreatedAt))
		result, err := repo.FindByEmail(ctx, user.Email)
		assert.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Email).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByEmail(ctx, user.Email)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Email).
			WillReturnError(errors.New("db error"))
		_, err := repo.FindByEmail(ctx, user.Email)
		assert.Error(t, err)
	})
}

func TestFindByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := entity.User{
		ID:           uuid.New(),
		Email:        "jane@example.com",
		PasswordHash: "test_password_hash",
		CreatedAt:    time.Now(),
	}
	query := regexp.QuoteMeta(`SELECT id, email, password_hash, created_at FROM users WHERE id = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
				AddRow(user.ID, user.Email, user.PasswordHash, user.CreatedAt))
		result, err := repo.FindByID(ctx, user.ID)
		assert.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestDeleteUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM users WHERE id = $1;`)
	t.Run("deleted", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(uid).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		err := repo.Delete(ctx, uid)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(uid).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.Delete(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(uid).
			WillReturnError(errors.New("db error"))
		err := repo.Delete(ctx, uid)
		assert.Error(t, err)
	})
}

func TestRevokedTokens(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	jti := uuid.NewString()
	expiresAt := time.Now().Add(time.Hour)

	t.Run("revoke", func(t *testing.T) {
		conn.ExpectExec(regexp.QuoteMeta(`INSERT INTO revoked_tokens (jti, expires_at) VALUES ($1, $2) ON CONFLICT (jti) DO NOTHING;`)).
			WithArgs(jti, expiresAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.RevokeToken(ctx, jti, expiresAt))
	})
	t.Run("is revoked", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE jti = $1);`)).
			WithArgs(jti).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		revoked, err := repo.IsTokenRevoked(ctx, jti)
		assert.NoError(t, err)
		assert.True(t, revoked)
	})
	t.Run("purge", func(t *testing.T) {
		now := time.Now()
		conn.ExpectExec(regexp.QuoteMeta(`DELETE FROM revoked_tokens WHERE expires_at < $1;`)).
			WithArgs(now).
			WillReturnResult(pgxmock.NewResult("DELETE", 3))
		n, err := repo.PurgeRevokedTokens(ctx, now)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}
