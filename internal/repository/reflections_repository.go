package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/selfhq/internal/error_values"
	"github.com/limbo/selfhq/pkg/entity"
)

const reflectionColumns = `id, user_id, week_of::text, values_alignment, values_reflection, mission_progress,
	mission_reflection, week_progress_reflection, week_challenges, week_wins, vision_progress,
	vision_reflection, gratitude_items, is_draft, submitted_at, created_at, updated_at`

func scanReflection(row rowScanner) (*entity.Reflection, error) {
	var r entity.Reflection
	err := row.Scan(&r.ID, &r.UserID, &r.WeekOf, &r.ValuesAlignment, &r.ValuesReflection, &r.MissionProgress,
		&r.MissionReflection, &r.WeekProgressReflection, &r.WeekChallenges, &r.WeekWins, &r.VisionProgress,
		&r.VisionReflection, &r.GratitudeItems, &r.IsDraft, &r.SubmittedAt, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

type ReflectionsRepository struct {
	conn PgConnection
}

func NewReflectionsRepoWithConn(conn PgConnection) *ReflectionsRepository {
	mustPing(conn, "reflectionsRepo")
	return &ReflectionsRepository{
		conn: conn,
	}
}

// Upsert writes the reflection for its week in a single statement, so two saves of
// the same week never produce two rows.
func (rr *ReflectionsRepository) Upsert(ctx context.Context, r *entity.Reflection) (*entity.Reflection, error) {
	gratitude := r.GratitudeItems
	if gratitude == nil {
		gratitude = []string{}
	}
	row := rr.conn.QueryRow(ctx, `INSERT INTO reflections (user_id, week_of, values_alignment, values_reflection,
		mission_progress, mission_reflection, week_progress_reflection, week_challenges, week_wins,
		vision_progress, vision_reflection, gratitude_items, is_draft, submitted_at)
		VALUES ($1, $2::date, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (user_id, week_of) DO UPDATE SET
		values_alignment = EXCLUDED.values_alignment,
		values_reflection = EXCLUDED.values_reflection,
		mission_progress = EXCLUDED.mission_progress,
		mission_reflection = EXCLUDED.mission_reflection,
		week_progress_reflection = EXCLUDED.week_progress_reflection,
		week_challenges = EXCLUDED.week_challenges,
		week_wins = EXCLUDED.week_wins,
		vision_progress = EXCLUDED.vision_progress,
		vision_reflection = EXCLUDED.vision_reflection,
		gratitude_items = EXCLUDED.gratitude_items,
		is_draft = EXCLUDED.is_draft,
		submitted_at = EXCLUDED.submitted_at,
		updated_at = NOW()
		RETURNING `+reflectionColumns+`;`,
		r.UserID, r.WeekOf, r.ValuesAlignment, r.ValuesReflection,
		r.MissionProgress, r.MissionReflection, r.WeekProgressReflection, r.WeekChallenges, r.WeekWins,
		r.VisionProgress, r.VisionReflection, gratitude, r.IsDraft, r.SubmittedAt,
	)
	saved, err := scanReflection(row)
	if err != nil {
		switch pgErrCode(err) {
		case codeCheckViolation:
			return nil, fmt.Errorf("%w: rating or week out of range", errorvalues.ErrValidation)
		case codeForeignKeyViolation:
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("saving reflection error: " + err.Error())
	}
	return saved, nil
}

func (rr *ReflectionsRepository) GetByWeek(ctx context.Context, uid uuid.UUID, weekOf string) (*entity.Reflection, error) {
	row := rr.conn.QueryRow(ctx, `SELECT `+reflectionColumns+` FROM reflections WHERE user_id = $1 AND week_of = $2::date;`, uid, weekOf)
	r, err := scanReflection(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrReflectionNotFound
		}
		return nil, errors.New("getting reflection error: " + err.Error())
	}
	return r, nil
}

func (rr *ReflectionsRepository) ListByUser(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.Reflection, error) {
	rows, err := rr.conn.Query(ctx, `SELECT `+reflectionColumns+` FROM reflections WHERE user_id = $1 ORDER BY week_of DESC LIMIT $2;`, uid, limit)
	if err != nil {
		return nil, errors.New("listing reflections error: " + err.Error())
	}
	return collectReflections(rows)
}

func (rr *ReflectionsRepository) ListSubmitted(ctx context.Context, uid uuid.UUID) ([]*entity.Reflection, error) {
	rows, err := rr.conn.Query(ctx, `SELECT `+reflectionColumns+` FROM reflections WHERE user_id = $1 AND NOT is_draft ORDER BY week_of DESC;`, uid)
	if err != nil {
		return nil, errors.New("listing submitted reflections error: " + err.Error())
	}
	return collectReflections(rows)
}

func (rr *ReflectionsRepository) Delete(ctx context.Context, id, uid uuid.UUID) error {
	ct, err := rr.conn.Exec(ctx, `DELETE FROM reflections WHERE id = $1 AND user_id = $2;`, id, uid)
	if err != nil {
		return errors.New("deleting reflection error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrReflectionNotFound
	}
	return nil
}

func collectReflections(rows pgx.Rows) ([]*entity.Reflection, error) {
	defer rows.Close()
	reflections := make([]*entity.Reflection, 0)
	for rows.Next() {
		r, err := scanReflection(rows)
		if err != nil {
			return nil, errors.New("unmarshalling reflection error: " + err.Error())
		}
		reflections = append(reflections, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning reflections: " + err.Error())
	}
	return reflections, nil
}
