package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/selfhq/internal/error_values"
	"github.com/limbo/selfhq/pkg/entity"
)

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	mustPing(conn, "usersRepo")
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) CreateWithProfile(ctx context.Context, user *entity.User, profile *entity.UserProfile) (id uuid.UUID, err error) {
	if user == nil || profile == nil {
		return uuid.UUID{}, errors.New("user or profile is nil")
	}
	tx, err := ur.conn.Begin(ctx)
	if err != nil {
		return uuid.UUID{}, errors.New("beginning tx error: " + err.Error())
	}
	defer rollback(ctx, tx, &err)

	row := tx.QueryRow(ctx, `INSERT INTO users (email, password_hash) VALUES ($1, $2) RETURNING id;`, user.Email, user.PasswordHash)
	if err = row.Scan(&id); err != nil {
		if pgErrCode(err) == codeUniqueViolation {
			return uuid.UUID{}, errorvalues.ErrUserExists
		}
		return uuid.UUID{}, errors.New("creating user db error: " + err.Error())
	}
	_, err = tx.Exec(ctx, `INSERT INTO user_profiles (user_id, username, first_name, last_name) VALUES ($1, $2, $3, $4);`,
		id, profile.Username, profile.FirstName, profile.LastName,
	)
	if err != nil {
		switch pgErrCode(err) {
		case codeUniqueViolation:
			return uuid.UUID{}, errorvalues.ErrUsernameTaken
		case codeCheckViolation:
			return uuid.UUID{}, errorvalues.ErrValidation
		}
		return uuid.UUID{}, errors.New("creating profile db error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return uuid.UUID{}, errors.New("committing sign up error: " + err.Error())
	}
	return id, nil
}

func (ur *UsersRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT id, email, password_hash, created_at FROM users WHERE email = $1;`, email)
	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by email error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT id, email, password_hash, created_at FROM users WHERE id = $1;`, uid)
	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	ct, err := ur.conn.Exec(ctx, `DELETE FROM users WHERE id = $1;`, uid)
	if err != nil {
		return errors.New("deleting user error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) RevokeToken(ctx context.Context, jti string, expiresAt time.Time) error {
	_, err := ur.conn.Exec(ctx, `INSERT INTO revoked_tokens (jti, expires_at) VALUES ($1, $2) ON CONFLICT (jti) DO NOTHING;`, jti, expiresAt)
	if err != nil {
		return errors.New("revoking token error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	var revoked bool
	row := ur.conn.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE jti = $1);`, jti)
	if err := row.Scan(&revoked); err != nil {
		return false, errors.New("checking revoked token error: " + err.Error())
	}
	return revoked, nil
}

func (ur *UsersRepository) PurgeRevokedTokens(ctx context.Context, now time.Time) (int64, error) {
	ct, err := ur.conn.Exec(ctx, `DELETE FROM revoked_tokens WHERE expires_at < $1;`, now)
	if err != nil {
		return 0, errors.New("purging revoked tokens error: " + err.Error())
	}
	return ct.RowsAffected(), nil
}
