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
	"github.com/limbo/selfhq/pkg/sanitize"
	"github.com/limbo/selfhq/pkg/week"
)

const (
	defaultReflectionsLimit = 10
	maxReflectionsLimit     = 104
)

type ReflectionsService struct {
	repo repository.ReflectionsRepositoryI
	now  func() time.Time
}

func NewReflectionsService(reflectionsRepo repository.ReflectionsRepositoryI) *ReflectionsService {
	return NewReflectionsServiceWithClock(reflectionsRepo, time.Now)
}

func NewReflectionsServiceWithClock(reflectionsRepo repository.ReflectionsRepositoryI, now func() time.Time) *ReflectionsService {
	if reflectionsRepo == nil {
		log.Fatal("provided nil reflectionsRepo")
	}
	return &ReflectionsService{
		repo: reflectionsRepo,
		now:  now,
	}
}

// SaveReflection keys the reflection on the Monday of the current week. Saving
// again in the same week replaces the earlier version.
func (rs *ReflectionsService) SaveReflection(ctx context.Context, uid uuid.UUID, req *SaveReflectionRequest, isDraft bool) (*entity.Reflection, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	now := rs.now()
	r := entity.Reflection{
		UserID:                 uid,
		WeekOf:                 week.Of(now),
		ValuesAlignment:        req.ValuesAlignment,
		ValuesReflection:       sanitize.Text(req.ValuesReflection),
		MissionProgress:        req.MissionProgress,
		MissionReflection:      sanitize.Text(req.MissionReflection),
		WeekProgressReflection: sanitize.Text(req.WeekProgressReflection),
		WeekChallenges:         sanitize.Text(req.WeekChallenges),
		WeekWins:               sanitize.Text(req.WeekWins),
		VisionProgress:         req.VisionProgress,
		VisionReflection:       sanitize.Text(req.VisionReflection),
		GratitudeItems:         sanitize.Lines(req.GratitudeItems),
		IsDraft:                isDraft,
	}
	if !isDraft {
		r.SubmittedAt = &now
	}
	saved, err := rs.repo.Upsert(ctx, &r)
	if err != nil {
		if errors.Is(err, errorvalues.ErrValidation) || errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("reflections repository error: %w", err)
	}
	return saved, nil
}

func (rs *ReflectionsService) GetReflectionForWeek(ctx context.Context, uid uuid.UUID, weekOf string) (*entity.Reflection, error) {
	if !week.Valid(weekOf) {
		return nil, fmt.Errorf("%w: week_of must be a Monday formatted as YYYY-MM-DD", errorvalues.ErrValidation)
	}
	r, err := rs.repo.GetByWeek(ctx, uid, weekOf)
	if err != nil {
		if errors.Is(err, errorvalues.ErrReflectionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("reflections repository error: %w", err)
	}
	return r, nil
}

func (rs *ReflectionsService) GetCurrentWeekReflection(ctx context.Context, uid uuid.UUID) (*entity.Reflection, error) {
	return rs.GetReflectionForWeek(ctx, uid, week.Of(rs.now()))
}

func (rs *ReflectionsService) GetUserReflections(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.Reflection, error) {
	switch {
	case limit <= 0:
		limit = defaultReflectionsLimit
	case limit > maxReflectionsLimit:
		limit = maxReflectionsLimit
	}
	reflections, err := rs.repo.ListByUser(ctx, uid, limit)
	if err != nil {
		return nil, fmt.Errorf("reflections repository error: %w", err)
	}
	return reflections, nil
}

// GetReflectionStats averages ratings over submitted reflections. A missing rating
// counts as zero. The most recent reflection may be a draft.
func (rs *ReflectionsService) GetReflectionStats(ctx context.Context, uid uuid.UUID) (*entity.ReflectionStats, error) {
	reflections, err := rs.repo.ListSubmitted(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("reflections repository error: %w", err)
	}
	stats := entity.ReflectionStats{TotalReflections: len(reflections)}
	latest, err := rs.repo.ListByUser(ctx, uid, 1)
	if err != nil {
		return nil, fmt.Errorf("reflections repository error: %w", err)
	}
	if len(latest) > 0 {
		stats.MostRecent = latest[0]
	}
	if len(reflections) == 0 {
		return &stats, nil
	}
	var values, mission, vision int
	for _, r := range reflections {
		values += rating(r.ValuesAlignment)
		mission += rating(r.MissionProgress)
		vision += rating(r.VisionProgress)
	}
	n := float64(len(reflections))
	stats.AverageValuesAlignment = float64(values) / n
	stats.AverageMissionProgress = float64(mission) / n
	stats.AverageVisionProgress = float64(vision) / n
	return &stats, nil
}

func (rs *ReflectionsService) DeleteReflection(ctx context.Context, uid, id uuid.UUID) error {
	if err := rs.repo.Delete(ctx, id, uid); err != nil {
		if errors.Is(err, errorvalues.ErrReflectionNotFound) {
			return err
		}
		return fmt.Errorf("reflections repository error: %w", err)
	}
	return nil
}

func rating(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
