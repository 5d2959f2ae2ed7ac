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

const habitColumns = `id, user_id, title, description, category_id, is_private, created_at, updated_at`

func scanHabit(row rowScanner) (*entity.Habit, error) {
	var h entity.Habit
	err := row.Scan(&h.ID, &h.UserID, &h.Title, &h.Description, &h.CategoryID, &h.IsPrivate, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

type HabitsRepository struct {
	conn PgConnection
}

func NewHabitsRepoWithConn(conn PgConnection) *HabitsRepository {
	mustPing(conn, "habitsRepo")
	return &HabitsRepository{
		conn: conn,
	}
}

func (hr *HabitsRepository) Create(ctx context.Context, habit *entity.Habit) (*entity.Habit, error) {
	row := hr.conn.QueryRow(ctx, `INSERT INTO habits (user_id, title, description, category_id, is_private)
		VALUES ($1, $2, $3, $4, $5) RETURNING `+habitColumns+`;`,
		habit.UserID,
		habit.Title,
		habit.Description,
		habit.CategoryID,
		habit.IsPrivate,
	)
	created, err := scanHabit(row)
	if err != nil {
		return nil, habitWriteErr("creating habit", err)
	}
	return created, nil
}

func (hr *HabitsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	row := hr.conn.QueryRow(ctx, `SELECT `+habitColumns+` FROM habits WHERE id = $1;`, id)
	habit, err := scanHabit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, errors.New("getting habit by id error: " + err.Error())
	}
	return habit, nil
}

func (hr *HabitsRepository) ListByUser(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Habit, error) {
	rows, err := hr.conn.Query(ctx, `SELECT `+habitColumns+` FROM habits WHERE user_id = $1
		ORDER BY created_at LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting habits by uid error: " + err.Error())
	}
	return collectHabits(rows)
}

func (hr *HabitsRepository) ListPublic(ctx context.Context, query string, limit int) ([]*entity.Habit, error) {
	rows, err := hr.conn.Query(ctx, `SELECT `+habitColumns+` FROM habits WHERE NOT is_private
		AND ($1 = '' OR title ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		ORDER BY created_at DESC LIMIT $2;`, query, limit)
	if err != nil {
		return nil, errors.New("listing public habits error: " + err.Error())
	}
	return collectHabits(rows)
}

func (hr *HabitsRepository) Update(ctx context.Context, habit *entity.Habit) (*entity.Habit, error) {
	row := hr.conn.QueryRow(ctx, `UPDATE habits SET title = $1, description = $2, category_id = $3, is_private = $4,
		updated_at = NOW() WHERE id = $5 AND user_id = $6 RETURNING `+habitColumns+`;`,
		habit.Title, habit.Description, habit.CategoryID, habit.IsPrivate, habit.ID, habit.UserID,
	)
	updated, err := scanHabit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, habitWriteErr("updating habit", err)
	}
	return updated, nil
}

func (hr *HabitsRepository) Delete(ctx context.Context, id, uid uuid.UUID) error {
	ct, err := hr.conn.Exec(ctx, `DELETE FROM habits WHERE id = $1 AND user_id = $2;`, id, uid)
	if err != nil {
		return errors.New("error deleting habit: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func habitWriteErr(op string, err error) error {
	switch pgErrCode(err) {
	case codeUniqueViolation:
		return errorvalues.ErrHabitExists
	case codeForeignKeyViolation:
		return fmt.Errorf("%w: unknown category", errorvalues.ErrValidation)
	}
	return errors.New(op + " db error: " + err.Error())
}

func collectHabits(rows pgx.Rows) ([]*entity.Habit, error) {
	defer rows.Close()
	habits := make([]*entity.Habit, 0)
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, errors.New("unmarshalling habit error: " + err.Error())
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning habits: " + err.Error())
	}
	return habits, nil
}
