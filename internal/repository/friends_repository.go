package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/selfhq/internal/error_values"
	"github.com/limbo/selfhq/pkg/entity"
)

const (
	connectionColumns = `fc.id, fc.requester_id, fc.addressee_id, fc.status, fc.created_at, fc.updated_at`
	invitationColumns = `id, inviter_id, email, invitation_code, message, status, expires_at, created_at`
)

func connectionDest(fc *entity.FriendConnection) []any {
	return []any{&fc.ID, &fc.RequesterID, &fc.AddresseeID, &fc.Status, &fc.CreatedAt, &fc.UpdatedAt}
}

func scanConnection(row rowScanner) (*entity.FriendConnection, error) {
	var fc entity.FriendConnection
	if err := row.Scan(connectionDest(&fc)...); err != nil {
		return nil, err
	}
	return &fc, nil
}

func scanInvitation(row rowScanner) (*entity.FriendInvitation, error) {
	var inv entity.FriendInvitation
	err := row.Scan(&inv.ID, &inv.InviterID, &inv.Email, &inv.InvitationCode, &inv.Message, &inv.Status, &inv.ExpiresAt, &inv.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

type FriendsRepository struct {
	conn PgConnection
}

func NewFriendsRepoWithConn(conn PgConnection) *FriendsRepository {
	mustPing(conn, "friendsRepo")
	return &FriendsRepository{
		conn: conn,
	}
}

func (fr *FriendsRepository) CreateRequest(ctx context.Context, requesterID, addresseeID uuid.UUID) (*entity.FriendConnection, error) {
	row := fr.conn.QueryRow(ctx, `INSERT INTO friend_connections AS fc (requester_id, addressee_id) VALUES ($1, $2)
		RETURNING `+connectionColumns+`;`, requesterID, addresseeID)
	fc, err := scanConnection(row)
	if err != nil {
		switch pgErrCode(err) {
		// Unique violation on the unordered pair index
		case codeUniqueViolation:
			return nil, errorvalues.ErrConnectionExists
		case codeForeignKeyViolation:
			return nil, errorvalues.ErrUserNotFound
		case codeCheckViolation:
			return nil, fmt.Errorf("%w: can't befriend yourself", errorvalues.ErrValidation)
		}
		return nil, errors.New("creating friend request error: " + err.Error())
	}
	return fc, nil
}

func (fr *FriendsRepository) GetConnection(ctx context.Context, id uuid.UUID) (*entity.FriendConnection, error) {
	row := fr.conn.QueryRow(ctx, `SELECT `+connectionColumns+` FROM friend_connections fc WHERE fc.id = $1;`, id)
	fc, err := scanConnection(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrConnectionNotFound
		}
		return nil, errors.New("getting friend connection error: " + err.Error())
	}
	return fc, nil
}

func (fr *FriendsRepository) Respond(ctx context.Context, id, addresseeID uuid.UUID, status entity.FriendStatus) (*entity.FriendConnection, error) {
	row := fr.conn.QueryRow(ctx, `UPDATE friend_connections fc SET status = $3, updated_at = NOW()
		WHERE fc.id = $1 AND fc.addressee_id = $2 AND fc.status = 'pending'
		RETURNING `+connectionColumns+`;`, id, addresseeID, status)
	fc, err := scanConnection(row)
	if err == nil {
		return fc, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, errors.New("responding to friend request error: " + err.Error())
	}
	// Nothing matched, find out why
	current, err := fr.GetConnection(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.AddresseeID != addresseeID {
		return nil, errorvalues.ErrWrongOwner
	}
	return nil, errorvalues.ErrInvalidTransition
}

func (fr *FriendsRepository) ListAccepted(ctx context.Context, uid uuid.UUID) ([]*entity.FriendConnection, error) {
	rows, err := fr.conn.Query(ctx, `SELECT `+connectionColumns+`, `+publicColumns("rp")+`, `+publicColumns("ap")+`
		FROM friend_connections fc
		JOIN user_profiles rp ON rp.user_id = fc.requester_id
		JOIN user_profiles ap ON ap.user_id = fc.addressee_id
		WHERE (fc.requester_id = $1 OR fc.addressee_id = $1) AND fc.status = 'accepted'
		ORDER BY fc.updated_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("listing friends error: " + err.Error())
	}
	defer rows.Close()
	connections := make([]*entity.FriendConnection, 0)
	for rows.Next() {
		fc := entity.FriendConnection{Requester: &entity.UserProfile{}, Addressee: &entity.UserProfile{}}
		dest := append(connectionDest(&fc), publicDest(fc.Requester)...)
		dest = append(dest, publicDest(fc.Addressee)...)
		if err = rows.Scan(dest...); err != nil {
			return nil, errors.New("unmarshalling friend connection error: " + err.Error())
		}
		connections = append(connections, &fc)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning friends: " + err.Error())
	}
	return connections, nil
}

func (fr *FriendsRepository) ListPendingFor(ctx context.Context, uid uuid.UUID) ([]*entity.FriendConnection, error) {
	rows, err := fr.conn.Query(ctx, `SELECT `+connectionColumns+`, `+publicColumns("rp")+`
		FROM friend_connections fc
		JOIN user_profiles rp ON rp.user_id = fc.requester_id
		WHERE fc.addressee_id = $1 AND fc.status = 'pending'
		ORDER BY fc.created_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("listing friend requests error: " + err.Error())
	}
	defer rows.Close()
	connections := make([]*entity.FriendConnection, 0)
	for rows.Next() {
		fc := entity.FriendConnection{Requester: &entity.UserProfile{}}
		if err = rows.Scan(append(connectionDest(&fc), publicDest(fc.Requester)...)...); err != nil {
			return nil, errors.New("unmarshalling friend request error: " + err.Error())
		}
		connections = append(connections, &fc)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning friend requests: " + err.Error())
	}
	return connections, nil
}

func (fr *FriendsRepository) CreateInvitation(ctx context.Context, inv *entity.FriendInvitation) (*entity.FriendInvitation, error) {
	row := fr.conn.QueryRow(ctx, `INSERT INTO friend_invitations (inviter_id, email, invitation_code, message, expires_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING `+invitationColumns+`;`,
		inv.InviterID, inv.Email, inv.InvitationCode, inv.Message, inv.ExpiresAt,
	)
	created, err := scanInvitation(row)
	if err != nil {
		if pgErrCode(err) == codeForeignKeyViolation {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("creating invitation error: " + err.Error())
	}
	return created, nil
}

func (fr *FriendsRepository) ListInvitations(ctx context.Context, inviterID uuid.UUID) ([]*entity.FriendInvitation, error) {
	rows, err := fr.conn.Query(ctx, `SELECT `+invitationColumns+` FROM friend_invitations WHERE inviter_id = $1 ORDER BY created_at DESC;`, inviterID)
	if err != nil {
		return nil, errors.New("listing invitations error: " + err.Error())
	}
	defer rows.Close()
	invitations := make([]*entity.FriendInvitation, 0)
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, errors.New("unmarshalling invitation error: " + err.Error())
		}
		invitations = append(invitations, inv)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning invitations: " + err.Error())
	}
	return invitations, nil
}

// AcceptInvitation locks the pending invitation with code. An expired invitation is
// marked expired and ErrInvitationExpired is returned. Otherwise the invitation is
// accepted and inviter and acceptor become friends, upgrading any connection the
// pair already has.
func (fr *FriendsRepository) AcceptInvitation(ctx context.Context, code string, acceptorID uuid.UUID, now time.Time) (fc *entity.FriendConnection, err error) {
	tx, err := fr.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("beginning tx error: " + err.Error())
	}
	defer rollback(ctx, tx, &err)

	var (
		invitationID uuid.UUID
		inviterID    uuid.UUID
		expiresAt    time.Time
	)
	row := tx.QueryRow(ctx, `SELECT id, inviter_id, expires_at FROM friend_invitations
		WHERE invitation_code = $1 AND status = 'pending' FOR UPDATE;`, code)
	if err = row.Scan(&invitationID, &inviterID, &expiresAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrInvitationNotFound
		}
		return nil, errors.New("locking invitation error: " + err.Error())
	}
	if inviterID == acceptorID {
		return nil, fmt.Errorf("%w: can't accept your own invitation", errorvalues.ErrValidation)
	}
	if expiresAt.Before(now) {
		if _, err = tx.Exec(ctx, `UPDATE friend_invitations SET status = 'expired' WHERE id = $1;`, invitationID); err != nil {
			return nil, errors.New("expiring invitation error: " + err.Error())
		}
		if err = tx.Commit(ctx); err != nil {
			return nil, errors.New("committing expired invitation error: " + err.Error())
		}
		return nil, errorvalues.ErrInvitationExpired
	}
	row = tx.QueryRow(ctx, `INSERT INTO friend_connections AS fc (requester_id, addressee_id, status) VALUES ($1, $2, 'accepted')
		ON CONFLICT ((LEAST(requester_id, addressee_id)), (GREATEST(requester_id, addressee_id)))
		DO UPDATE SET status = 'accepted', updated_at = NOW()
		RETURNING `+connectionColumns+`;`, inviterID, acceptorID)
	if fc, err = scanConnection(row); err != nil {
		if pgErrCode(err) == codeForeignKeyViolation {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("connecting invited users error: " + err.Error())
	}
	if _, err = tx.Exec(ctx, `UPDATE friend_invitations SET status = 'accepted' WHERE id = $1;`, invitationID); err != nil {
		return nil, errors.New("accepting invitation error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing invitation error: " + err.Error())
	}
	return fc, nil
}
