package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/selfhq/internal/error_values"
	"github.com/limbo/selfhq/internal/repository"
	"github.com/limbo/selfhq/pkg/entity"
	"github.com/limbo/selfhq/pkg/sanitize"
)

const (
	defaultHabitsLimit = 50
	maxHabitsLimit     = 100
)

type HabitsService struct {
	repo repository.HabitsRepositoryI
}

func NewHabitsService(habitsRepo repository.HabitsRepositoryI) *HabitsService {
	if habitsRepo == nil {
		log.Fatal("provided nil habitsRepo")
	}
	return &HabitsService{
		repo: habitsRepo,
	}
}

func (hs *HabitsService) CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	h := entity.Habit{
		UserID:      uid,
		Title:       sanitize.Text(req.Title),
		Description: sanitize.Text(req.Description),
		CategoryID:  req.CategoryID,
		IsPrivate:   req.IsPrivate,
	}
	if h.Title == "" {
		return nil, fmt.Errorf("%w: title is empty", errorvalues.ErrValidation)
	}
	habit, err := hs.repo.Create(ctx, &h)
	if err != nil {
		return nil, wrapHabitErr(err)
	}
	return habit, nil
}

func (hs *HabitsService) GetHabit(ctx context.Context, uid, habitID uuid.UUID) (*entity.Habit, error) {
	habit, err := hs.repo.GetByID(ctx, habitID)
	if err != nil {
		return nil, wrapHabitErr(err)
	}
	if habit.IsPrivate && habit.UserID != uid {
		return nil, errorvalues.ErrHabitNotFound
	}
	return habit, nil
}

func (hs *HabitsService) GetUserHabits(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Habit, error) {
	offset := max(pagination.Offset, 0)
	habits, err := hs.repo.ListByUser(ctx, uid, clampLimit(pagination.Limit, defaultHabitsLimit, maxHabitsLimit), offset)
	if err != nil {
		return nil, fmt.Errorf("habits repository error: %w", err)
	}
	return habits, nil
}

func (hs *HabitsService) GetPublicHabits(ctx context.Context, query string, limit int) ([]*entity.Habit, error) {
	habits, err := hs.repo.ListPublic(ctx, sanitize.Text(query), clampLimit(limit, defaultHabitsLimit, maxHabitsLimit))
	if err != nil {
		return nil, fmt.Errorf("habits repository error: %w", err)
	}
	return habits, nil
}

func (hs *HabitsService) UpdateHabit(ctx context.Context, uid, habitID uuid.UUID, req *UpdateHabitRequest) (*entity.Habit, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	habit, err := ownedHabit(ctx, hs.repo, uid, habitID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		habit.Title = sanitize.Text(*req.Title)
		if habit.Title == "" {
			return nil, fmt.Errorf("%w: title is empty", errorvalues.ErrValidation)
		}
	}
	if req.Description != nil {
		habit.Description = sanitize.Text(*req.Description)
	}
	if req.CategoryID != nil {
		habit.CategoryID = req.CategoryID
	}
	if req.IsPrivate != nil {
		habit.IsPrivate = *req.IsPrivate
	}
	updated, err := hs.repo.Update(ctx, habit)
	if err != nil {
		return nil, wrapHabitErr(err)
	}
	return updated, nil
}

func (hs *HabitsService) DeleteHabit(ctx context.Context, uid, habitID uuid.UUID) error {
	if _, err := ownedHabit(ctx, hs.repo, uid, habitID); err != nil {
		return err
	}
	if err := hs.repo.Delete(ctx, habitID, uid); err != nil {
		return wrapHabitErr(err)
	}
	return nil
}

// ownedHabit loads the habit and checks uid owns it. Someone else's private habit
// is reported as missing.
func ownedHabit(ctx context.Context, repo repository.HabitsRepositoryI, uid, habitID uuid.UUID) (*entity.Habit, error) {
	habit, err := repo.GetByID(ctx, habitID)
	if err != nil {
		return nil, wrapHabitErr(err)
	}
	if habit.UserID != uid {
		if habit.IsPrivate {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, errorvalues.ErrWrongOwner
	}
	return habit, nil
}

func wrapHabitErr(err error) error {
	if errors.Is(err, errorvalues.ErrHabitNotFound) || errors.Is(err, errorvalues.ErrHabitExists) ||
		errors.Is(err, errorvalues.ErrValidation) {
		return err
	}
	return fmt.Errorf("habits repository error: %w", err)
}
