package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/selfhq/internal/error_values"
	"github.com/limbo/selfhq/pkg/entity"
)

type HabitChecksRepository struct {
	conn PgConnection
}

func NewHabitChecksRepoWithConn(conn PgConnection) *HabitChecksRepository {
	mustPing(conn, "habitChecksRepo")
	return &HabitChecksRepository{
		conn: conn,
	}
}

func (checksRepo *HabitChecksRepository) Create(ctx context.Context, habitID uuid.UUID, date string) error {
	_, err := checksRepo.conn.Exec(
		ctx,
		`INSERT INTO habit_checks (habit_id, check_date) VALUES ($1, $2::date);`,
		habitID,
		date,
	)
	if err != nil {
		switch pgErrCode(err) {
		case codeUniqueViolation:
			return errorvalues.ErrCheckExists
		case codeForeignKeyViolation:
			return errorvalues.ErrHabitNotFound
		}
		return errors.New("creating check error: " + err.Error())
	}
	return nil
}

func (checksRepo *HabitChecksRepository) Delete(ctx context.Context, habitID uuid.UUID, date string) error {
	ct, err := checksRepo.conn.Exec(
		ctx,
		`DELETE FROM habit_checks WHERE habit_id = $1 AND check_date = $2::date;`,
		habitID,
		date,
	)
	if err != nil {
		return errors.New("deleting check error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrCheckNotFound
	}
	return nil
}

func (checksRepo *HabitChecksRepository) ListByDateRange(ctx context.Context, habitID uuid.UUID, from, to string) ([]*entity.HabitCheck, error) {
	rows, err := checksRepo.conn.Query(
		ctx,
		`SELECT id, habit_id, check_date::text, created_at FROM habit_checks
		WHERE habit_id = $1 AND check_date >= $2::date AND check_date <= $3::date ORDER BY check_date;`,
		habitID,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting checks for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.HabitCheck, 0)
	for rows.Next() {
		check := entity.HabitCheck{}
		err = rows.Scan(&check.ID, &check.HabitID, &check.CheckDate, &check.CreatedAt)
		if err != nil {
			return nil, errors.New("check row parsing error: " + err.Error())
		}
		result = append(result, &check)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected check rows error: " + err.Error())
	}
	return result, nil
}

func (checksRepo *HabitChecksRepository) ListDates(ctx context.Context, habitID uuid.UUID) ([]string, error) {
	rows, err := checksRepo.conn.Query(
		ctx,
		`SELECT check_date::text FROM habit_checks WHERE habit_id = $1 ORDER BY check_date DESC;`,
		habitID,
	)
	if err != nil {
		return nil, errors.New("getting check dates error: " + err.Error())
	}
	dates, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, errors.New("check dates parsing error: " + err.Error())
	}
	return dates, nil
}
