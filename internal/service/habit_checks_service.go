package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/selfhq/internal/error_values"
	"github.com/limbo/selfhq/internal/repository"
	"github.com/limbo/selfhq/pkg/entity"
)

const (
	defaultChecksWindow = 30
	maxChecksWindow     = 366
)

type HabitChecksService struct {
	habitsRepo repository.HabitsRepositoryI
	checksRepo repository.HabitChecksRepositoryI
	now        func() time.Time
}

func NewHabitChecksService(habitsRepo repository.HabitsRepositoryI, checksRepo repository.HabitChecksRepositoryI) *HabitChecksService {
	return NewHabitChecksServiceWithClock(habitsRepo, checksRepo, time.Now)
}

func NewHabitChecksServiceWithClock(habitsRepo repository.HabitsRepositoryI, checksRepo repository.HabitChecksRepositoryI, now func() time.Time) *HabitChecksService {
	if habitsRepo == nil || checksRepo == nil {
		log.Fatal("on habit checks service provided nil repos")
	}
	return &HabitChecksService{
		habitsRepo: habitsRepo,
		checksRepo: checksRepo,
		now:        now,
	}
}

func (serv *HabitChecksService) CheckHabit(ctx context.Context, uid, habitID uuid.UUID, date string) error {
	date, err := serv.checkDate(date)
	if err != nil {
		return err
	}
	if _, err = ownedHabit(ctx, serv.habitsRepo, uid, habitID); err != nil {
		return err
	}
	if err = serv.checksRepo.Create(ctx, habitID, date); err != nil {
		if errors.Is(err, errorvalues.ErrCheckExists) || errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return fmt.Errorf("checks repository error: %w", err)
	}
	return nil
}

func (serv *HabitChecksService) UncheckHabit(ctx context.Context, uid, habitID uuid.UUID, date string) error {
	date, err := serv.checkDate(date)
	if err != nil {
		return err
	}
	if _, err = ownedHabit(ctx, serv.habitsRepo, uid, habitID); err != nil {
		return err
	}
	if err = serv.checksRepo.Delete(ctx, habitID, date); err != nil {
		if errors.Is(err, errorvalues.ErrCheckNotFound) {
			return err
		}
		return fmt.Errorf("checks repository error: %w", err)
	}
	return nil
}

func (serv *HabitChecksService) GetHabitChecks(ctx context.Context, uid, habitID uuid.UUID, from, to string) ([]*entity.HabitCheck, error) {
	toDate := serv.today()
	if to != "" {
		d, err := time.Parse(time.DateOnly, to)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid end date", errorvalues.ErrValidation)
		}
		toDate = d
	}
	fromDate := toDate.AddDate(0, 0, -(defaultChecksWindow - 1))
	if from != "" {
		d, err := time.Parse(time.DateOnly, from)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid start date", errorvalues.ErrValidation)
		}
		fromDate = d
	}
	if fromDate.After(toDate) {
		return nil, fmt.Errorf("%w: start date is after end date", errorvalues.ErrValidation)
	}
	if toDate.Sub(fromDate) >= maxChecksWindow*24*time.Hour {
		return nil, fmt.Errorf("%w: period is longer than %d days", errorvalues.ErrValidation, maxChecksWindow)
	}
	if _, err := ownedHabit(ctx, serv.habitsRepo, uid, habitID); err != nil {
		return nil, err
	}
	checks, err := serv.checksRepo.ListByDateRange(ctx, habitID, fromDate.Format(time.DateOnly), toDate.Format(time.DateOnly))
	if err != nil {
		return nil, fmt.Errorf("checks repository error: %w", err)
	}
	return checks, nil
}

func (serv *HabitChecksService) GetHabitStats(ctx context.Context, uid, habitID uuid.UUID) (*entity.HabitStats, error) {
	if _, err := ownedHabit(ctx, serv.habitsRepo, uid, habitID); err != nil {
		return nil, err
	}
	dates, err := serv.checksRepo.ListDates(ctx, habitID)
	if err != nil {
		return nil, fmt.Errorf("checks repository error: %w", err)
	}
	stats := &entity.HabitStats{
		HabitID:     habitID,
		TotalChecks: len(dates),
	}
	if len(dates) == 0 {
		return stats, nil
	}
	today := serv.today()
	stats.LastCheck = &dates[0]
	stats.CheckedToday = dates[0] == today.Format(time.DateOnly)
	stats.CurrentStreak, stats.LongestStreak = streaks(dates, today)
	return stats, nil
}

// checkDate defaults an empty date to today and rejects malformed or future ones.
func (serv *HabitChecksService) checkDate(date string) (string, error) {
	today := serv.today()
	if date == "" {
		return today.Format(time.DateOnly), nil
	}
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return "", fmt.Errorf("%w: date must be YYYY-MM-DD", errorvalues.ErrValidation)
	}
	if d.After(today) {
		return "", errorvalues.ErrCheckDateNotAllowed
	}
	return date, nil
}

func (serv *HabitChecksService) today() time.Time {
	y, m, d := serv.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// streaks counts runs of consecutive days in dates, which are distinct and newest
// first. The current run is still alive if its last day is today or yesterday.
func streaks(dates []string, today time.Time) (current, longest int) {
	var (
		prev      time.Time
		run       int
		inCurrent bool
	)
	for _, s := range dates {
		d, err := time.Parse(time.DateOnly, s)
		if err != nil {
			continue
		}
		switch {
		case run == 0:
			run = 1
			inCurrent = !d.Before(today.AddDate(0, 0, -1))
		case prev.AddDate(0, 0, -1).Equal(d):
			run++
		default:
			run = 1
			inCurrent = false
		}
		if inCurrent {
			current = run
		}
		longest = max(longest, run)
		prev = d
	}
	return current, longest
}
