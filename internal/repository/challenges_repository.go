package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/selfhq/internal/error_values"
	"github.com/limbo/selfhq/pkg/entity"
)

const (
	challengeColumns = `c.id, c.creator_id, c.title, c.description, c.challenge_type, c.parameters,
		c.start_date::text, c.end_date::text, c.is_public, c.max_participants, c.requires_approval,
		c.created_at, c.updated_at`
	// Participants that occupy a seat in a challenge
	seatCount = `(SELECT COUNT(*) FROM challenge_participants s WHERE s.challenge_id = c.id AND s.status IN ('accepted', 'pending'))`

	participantColumns = `cp.id, cp.challenge_id, cp.user_id, cp.status, cp.progress, cp.joined_at, cp.completed_at, c.challenge_type`
)

// scanChallenge reads challengeColumns, the seat count and the creator's public columns.
func scanChallenge(row rowScanner) (*entity.Challenge, error) {
	var (
		c       entity.Challenge
		params  []byte
		creator entity.UserProfile
	)
	dest := []any{
		&c.ID, &c.CreatorID, &c.Title, &c.Description, &c.Type, &params,
		&c.StartDate, &c.EndDate, &c.IsPublic, &c.MaxParticipants, &c.RequiresApproval,
		&c.CreatedAt, &c.UpdatedAt, &c.ParticipantCount,
	}
	if err := row.Scan(append(dest, publicDest(&creator)...)...); err != nil {
		return nil, err
	}
	var err error
	if c.Parameters, err = entity.DecodeChallengeParams(c.Type, params); err != nil {
		return nil, err
	}
	c.Creator = creator.Public()
	return &c, nil
}

// scanParticipant reads participantColumns followed by extra destinations.
func scanParticipant(row rowScanner, extra ...any) (*entity.ChallengeParticipant, error) {
	var (
		p        entity.ChallengeParticipant
		progress []byte
		chType   entity.ChallengeType
	)
	dest := []any{&p.ID, &p.ChallengeID, &p.UserID, &p.Status, &progress, &p.JoinedAt, &p.CompletedAt, &chType}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	var err error
	if p.Progress, err = entity.DecodeChallengeProgress(chType, progress); err != nil {
		return nil, err
	}
	return &p, nil
}

type ChallengesRepository struct {
	conn PgConnection
}

func NewChallengesRepoWithConn(conn PgConnection) *ChallengesRepository {
	mustPing(conn, "challengesRepo")
	return &ChallengesRepository{
		conn: conn,
	}
}

func (cr *ChallengesRepository) Create(ctx context.Context, ch *entity.Challenge, invitees []uuid.UUID) (created *entity.Challenge, err error) {
	params, err := sonic.Marshal(ch.Parameters)
	if err != nil {
		return nil, errors.New("marshalling challenge parameters error: " + err.Error())
	}
	tx, err := cr.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("beginning tx error: " + err.Error())
	}
	defer rollback(ctx, tx, &err)

	row := tx.QueryRow(ctx, `INSERT INTO challenges (creator_id, title, description, challenge_type, parameters,
		start_date, end_date, is_public, max_participants, requires_approval)
		VALUES ($1, $2, $3, $4, $5, $6::date, $7::date, $8, $9, $10)
		RETURNING id, created_at, updated_at;`,
		ch.CreatorID, ch.Title, ch.Description, ch.Type, params,
		ch.StartDate, ch.EndDate, ch.IsPublic, ch.MaxParticipants, ch.RequiresApproval,
	)
	result := *ch
	if err = row.Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt); err != nil {
		switch pgErrCode(err) {
		case codeForeignKeyViolation:
			return nil, errorvalues.ErrUserNotFound
		case codeCheckViolation:
			return nil, fmt.Errorf("%w: invalid challenge dates or capacity", errorvalues.ErrValidation)
		}
		return nil, errors.New("creating challenge error: " + err.Error())
	}
	if len(invitees) > 0 {
		// Invitees that opted out of challenges, and the creator, are skipped
		ct, err := tx.Exec(ctx, `INSERT INTO challenge_participants (challenge_id, user_id, status)
			SELECT $1, p.user_id, 'pending' FROM user_profiles p
			WHERE p.user_id = ANY($2) AND p.allow_challenges AND p.user_id <> $3
			ON CONFLICT (challenge_id, user_id) DO NOTHING;`, result.ID, invitees, ch.CreatorID)
		if err != nil {
			return nil, errors.New("inviting participants error: " + err.Error())
		}
		result.ParticipantCount = int(ct.RowsAffected())
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing challenge error: " + err.Error())
	}
	return &result, nil
}

func (cr *ChallengesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error) {
	row := cr.conn.QueryRow(ctx, `SELECT `+challengeColumns+`, `+seatCount+`, `+publicColumns("p")+`
		FROM challenges c JOIN user_profiles p ON p.user_id = c.creator_id
		WHERE c.id = $1;`, id)
	c, err := scanChallenge(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrChallengeNotFound
		}
		return nil, errors.New("getting challenge error: " + err.Error())
	}
	return c, nil
}

func (cr *ChallengesRepository) ListForUser(ctx context.Context, uid uuid.UUID) ([]*entity.Challenge, error) {
	challenges, err := cr.listChallenges(ctx, `c.creator_id = $1
		OR EXISTS (SELECT 1 FROM challenge_participants m WHERE m.challenge_id = c.id AND m.user_id = $1)
		ORDER BY c.created_at DESC`, uid)
	if err != nil || len(challenges) == 0 {
		return challenges, err
	}
	ids := make([]uuid.UUID, len(challenges))
	byID := make(map[uuid.UUID]*entity.Challenge, len(challenges))
	for i, c := range challenges {
		ids[i] = c.ID
		byID[c.ID] = c
	}
	participants, err := cr.listParticipants(ctx, `cp.challenge_id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range participants {
		c := byID[p.ChallengeID]
		c.Participants = append(c.Participants, p)
	}
	return challenges, nil
}

func (cr *ChallengesRepository) ListPublic(ctx context.Context, today string, limit int) ([]*entity.Challenge, error) {
	return cr.listChallenges(ctx, `c.is_public AND c.end_date >= $1::date ORDER BY c.created_at DESC LIMIT $2`, today, limit)
}

func (cr *ChallengesRepository) ListPendingInvitations(ctx context.Context, uid uuid.UUID) ([]*entity.Challenge, error) {
	return cr.listChallenges(ctx, `EXISTS (SELECT 1 FROM challenge_participants m
		WHERE m.challenge_id = c.id AND m.user_id = $1 AND m.status = 'pending')
		ORDER BY c.created_at DESC`, uid)
}

func (cr *ChallengesRepository) listChallenges(ctx context.Context, where string, args ...any) ([]*entity.Challenge, error) {
	rows, err := cr.conn.Query(ctx, `SELECT `+challengeColumns+`, `+seatCount+`, `+publicColumns("p")+`
		FROM challenges c JOIN user_profiles p ON p.user_id = c.creator_id
		WHERE `+where+`;`, args...)
	if err != nil {
		return nil, errors.New("listing challenges error: " + err.Error())
	}
	defer rows.Close()
	challenges := make([]*entity.Challenge, 0)
	for rows.Next() {
		c, err := scanChallenge(rows)
		if err != nil {
			return nil, errors.New("unmarshalling challenge error: " + err.Error())
		}
		challenges = append(challenges, c)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning challenges: " + err.Error())
	}
	return challenges, nil
}

func (cr *ChallengesRepository) Delete(ctx context.Context, id, creatorID uuid.UUID) error {
	ct, err := cr.conn.Exec(ctx, `DELETE FROM challenges WHERE id = $1 AND creator_id = $2;`, id, creatorID)
	if err != nil {
		return errors.New("deleting challenge error: " + err.Error())
	}
	if ct.RowsAffected() > 0 {
		return nil
	}
	var exists bool
	row := cr.conn.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM challenges WHERE id = $1);`, id)
	if err = row.Scan(&exists); err != nil {
		return errors.New("checking challenge existence error: " + err.Error())
	}
	if exists {
		return errorvalues.ErrNotChallengeCreator
	}
	return errorvalues.ErrChallengeNotFound
}

func (cr *ChallengesRepository) IsParticipant(ctx context.Context, challengeID, uid uuid.UUID) (bool, error) {
	var exists bool
	row := cr.conn.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM challenge_participants WHERE challenge_id = $1 AND user_id = $2);`, challengeID, uid)
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("checking participation error: " + err.Error())
	}
	return exists, nil
}

// Join holds a lock on the challenge row while counting seats, so concurrent
// joiners of a nearly full challenge are serialized.
func (cr *ChallengesRepository) Join(ctx context.Context, challengeID, uid uuid.UUID) (p *entity.ChallengeParticipant, err error) {
	tx, err := cr.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("beginning tx error: " + err.Error())
	}
	defer rollback(ctx, tx, &err)

	var (
		maxParticipants  *int
		requiresApproval bool
	)
	row := tx.QueryRow(ctx, `SELECT max_participants, requires_approval FROM challenges WHERE id = $1 FOR UPDATE;`, challengeID)
	if err = row.Scan(&maxParticipants, &requiresApproval); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrChallengeNotFound
		}
		return nil, errors.New("locking challenge error: " + err.Error())
	}
	var participating bool
	row = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM challenge_participants WHERE challenge_id = $1 AND user_id = $2);`, challengeID, uid)
	if err = row.Scan(&participating); err != nil {
		return nil, errors.New("checking participation error: " + err.Error())
	}
	if participating {
		return nil, errorvalues.ErrAlreadyParticipating
	}
	if maxParticipants != nil {
		var taken int
		row = tx.QueryRow(ctx, `SELECT COUNT(*) FROM challenge_participants WHERE challenge_id = $1 AND status IN ('accepted', 'pending');`, challengeID)
		if err = row.Scan(&taken); err != nil {
			return nil, errors.New("counting participants error: " + err.Error())
		}
		if taken >= *maxParticipants {
			return nil, errorvalues.ErrChallengeFull
		}
	}
	status := entity.ParticipantAccepted
	if requiresApproval {
		status = entity.ParticipantPending
	}
	row = tx.QueryRow(ctx, `INSERT INTO challenge_participants AS cp (challenge_id, user_id, status) VALUES ($1, $2, $3)
		RETURNING cp.id, cp.challenge_id, cp.user_id, cp.status, cp.progress, cp.joined_at, cp.completed_at,
		(SELECT c.challenge_type FROM challenges c WHERE c.id = cp.challenge_id);`, challengeID, uid, status)
	if p, err = scanParticipant(row); err != nil {
		switch pgErrCode(err) {
		case codeUniqueViolation:
			return nil, errorvalues.ErrAlreadyParticipating
		case codeForeignKeyViolation:
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("joining challenge error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing join error: " + err.Error())
	}
	return p, nil
}

func (cr *ChallengesRepository) GetParticipant(ctx context.Context, challengeID, uid uuid.UUID) (*entity.ChallengeParticipant, error) {
	row := cr.conn.QueryRow(ctx, `SELECT `+participantColumns+`
		FROM challenge_participants cp JOIN challenges c ON c.id = cp.challenge_id
		WHERE cp.challenge_id = $1 AND cp.user_id = $2;`, challengeID, uid)
	p, err := scanParticipant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrParticipantNotFound
		}
		return nil, errors.New("getting participant error: " + err.Error())
	}
	return p, nil
}

func (cr *ChallengesRepository) ListParticipants(ctx context.Context, challengeID uuid.UUID) ([]*entity.ChallengeParticipant, error) {
	return cr.listParticipants(ctx, `cp.challenge_id = $1`, challengeID)
}

func (cr *ChallengesRepository) listParticipants(ctx context.Context, where string, args ...any) ([]*entity.ChallengeParticipant, error) {
	rows, err := cr.conn.Query(ctx, `SELECT `+participantColumns+`, `+publicColumns("p")+`
		FROM challenge_participants cp
		JOIN challenges c ON c.id = cp.challenge_id
		JOIN user_profiles p ON p.user_id = cp.user_id
		WHERE `+where+` ORDER BY cp.joined_at DESC;`, args...)
	if err != nil {
		return nil, errors.New("listing participants error: " + err.Error())
	}
	defer rows.Close()
	participants := make([]*entity.ChallengeParticipant, 0)
	for rows.Next() {
		var user entity.UserProfile
		p, err := scanParticipant(rows, publicDest(&user)...)
		if err != nil {
			return nil, errors.New("unmarshalling participant error: " + err.Error())
		}
		p.User = user.Public()
		participants = append(participants, p)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning participants: " + err.Error())
	}
	return participants, nil
}

func (cr *ChallengesRepository) UpdateStatus(ctx context.Context, challengeID, uid uuid.UUID, from, to entity.ParticipantStatus) (*entity.ChallengeParticipant, error) {
	row := cr.conn.QueryRow(ctx, `UPDATE challenge_participants cp SET status = $4::text,
		completed_at = CASE WHEN $4::text = 'completed' THEN NOW() ELSE cp.completed_at END
		FROM challenges c
		WHERE c.id = cp.challenge_id AND cp.challenge_id = $1 AND cp.user_id = $2 AND cp.status = $3
		RETURNING `+participantColumns+`;`, challengeID, uid, from, to)
	p, err := scanParticipant(row)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, errors.New("updating participant status error: " + err.Error())
	}
	return nil, cr.explainMissedUpdate(ctx, challengeID, uid)
}

func (cr *ChallengesRepository) UpdateProgress(ctx context.Context, challengeID, uid uuid.UUID, progress []byte) (*entity.ChallengeParticipant, error) {
	row := cr.conn.QueryRow(ctx, `UPDATE challenge_participants cp SET progress = $3
		FROM challenges c
		WHERE c.id = cp.challenge_id AND cp.challenge_id = $1 AND cp.user_id = $2 AND cp.status = 'accepted'
		RETURNING `+participantColumns+`;`, challengeID, uid, progress)
	p, err := scanParticipant(row)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, errors.New("updating participant progress error: " + err.Error())
	}
	return nil, cr.explainMissedUpdate(ctx, challengeID, uid)
}

// explainMissedUpdate tells apart a missing participant from one in the wrong status.
func (cr *ChallengesRepository) explainMissedUpdate(ctx context.Context, challengeID, uid uuid.UUID) error {
	ok, err := cr.IsParticipant(ctx, challengeID, uid)
	if err != nil {
		return err
	}
	if !ok {
		return errorvalues.ErrParticipantNotFound
	}
	return errorvalues.ErrInvalidTransition
}
