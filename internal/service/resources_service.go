package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/selfhq/internal/error_values"
	"github.com/limbo/selfhq/internal/repository"
	"github.com/limbo/selfhq/pkg/entity"
	"github.com/limbo/selfhq/pkg/sanitize"
)

const (
	defaultFeaturedLimit = 5
	defaultPopularLimit  = 10
	maxResourcesLimit    = 100
)

type ResourcesService struct {
	repo repository.ResourcesRepositoryI
}

func NewResourcesService(resourcesRepo repository.ResourcesRepositoryI) *ResourcesService {
	if resourcesRepo == nil {
		log.Fatal("provided nil resourcesRepo")
	}
	return &ResourcesService{
		repo: resourcesRepo,
	}
}

func (rs *ResourcesService) GetResources(ctx context.Context, filters *entity.ResourceFilters) ([]*entity.Resource, error) {
	if filters == nil {
		filters = &entity.ResourceFilters{}
	}
	if filters.Limit < 0 || filters.Limit > maxResourcesLimit {
		filters.Limit = maxResourcesLimit
	}
	filters.Search = strings.TrimSpace(filters.Search)
	tags := make([]string, 0, len(filters.Tags))
	for _, t := range filters.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	filters.Tags = tags
	resources, err := rs.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("resources repository error: %w", err)
	}
	return resources, nil
}

func (rs *ResourcesService) GetResource(ctx context.Context, id uuid.UUID) (*entity.Resource, error) {
	res, err := rs.repo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapResourceErr(err)
	}
	return res, nil
}

func (rs *ResourcesService) GetFeaturedResources(ctx context.Context, limit int) ([]*entity.Resource, error) {
	resources, err := rs.repo.ListFeatured(ctx, clampLimit(limit, defaultFeaturedLimit, maxResourcesLimit))
	if err != nil {
		return nil, fmt.Errorf("resources repository error: %w", err)
	}
	return resources, nil
}

func (rs *ResourcesService) GetPopularResources(ctx context.Context, limit int) ([]*entity.Resource, error) {
	resources, err := rs.repo.ListPopular(ctx, clampLimit(limit, defaultPopularLimit, maxResourcesLimit))
	if err != nil {
		return nil, fmt.Errorf("resources repository error: %w", err)
	}
	return resources, nil
}

func (rs *ResourcesService) GetUserResources(ctx context.Context, uid uuid.UUID) ([]*entity.Resource, error) {
	resources, err := rs.repo.ListByUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("resources repository error: %w", err)
	}
	return resources, nil
}

// SubmitResource stores the resource unapproved, it's listed once a moderator
// approves it.
func (rs *ResourcesService) SubmitResource(ctx context.Context, uid uuid.UUID, req *ResourceRequest) (*entity.Resource, error) {
	res, err := resourceFromRequest(req)
	if err != nil {
		return nil, err
	}
	res.UserID = uid
	created, err := rs.repo.Create(ctx, res)
	if err != nil {
		return nil, wrapResourceErr(err)
	}
	return created, nil
}

func (rs *ResourcesService) UpdateResource(ctx context.Context, uid, id uuid.UUID, req *ResourceRequest) (*entity.Resource, error) {
	res, err := resourceFromRequest(req)
	if err != nil {
		return nil, err
	}
	res.ID = id
	res.UserID = uid
	updated, err := rs.repo.Update(ctx, res)
	if err != nil {
		return nil, wrapResourceErr(err)
	}
	return updated, nil
}

func (rs *ResourcesService) DeleteResource(ctx context.Context, uid, id uuid.UUID) error {
	if err := rs.repo.Delete(ctx, id, uid); err != nil {
		return wrapResourceErr(err)
	}
	return nil
}

func (rs *ResourcesService) VoteOnResource(ctx context.Context, uid, id uuid.UUID, vote entity.VoteType) (*entity.VoteResult, error) {
	if vote != entity.Upvote && vote != entity.Downvote {
		return nil, fmt.Errorf("%w: vote_type must be upvote or downvote", errorvalues.ErrValidation)
	}
	result, err := rs.repo.Vote(ctx, id, uid, vote)
	if err != nil {
		return nil, wrapResourceErr(err)
	}
	return result, nil
}

func (rs *ResourcesService) GetUserVote(ctx context.Context, uid, id uuid.UUID) (*entity.VoteType, error) {
	vote, err := rs.repo.GetUserVote(ctx, id, uid)
	if err != nil {
		return nil, fmt.Errorf("resources repository error: %w", err)
	}
	return vote, nil
}

func (rs *ResourcesService) RecordResourceView(ctx context.Context, id uuid.UUID, uid *uuid.UUID) error {
	if err := rs.repo.RecordView(ctx, id, uid); err != nil {
		return wrapResourceErr(err)
	}
	return nil
}

func (rs *ResourcesService) GetCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := rs.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("resources repository error: %w", err)
	}
	return categories, nil
}

func (rs *ResourcesService) GetResourceStats(ctx context.Context) (*entity.ResourceStats, error) {
	stats, err := rs.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("resources repository error: %w", err)
	}
	return stats, nil
}

func resourceFromRequest(req *ResourceRequest) (*entity.Resource, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	res := entity.Resource{
		Title:           sanitize.Text(req.Title),
		Description:     sanitize.Text(req.Description),
		Author:          sanitize.Text(req.Author),
		Host:            sanitize.Text(req.Host),
		Type:            req.Type,
		CategoryID:      req.CategoryID,
		URL:             req.URL,
		AffiliateLink:   req.AffiliateLink,
		Rating:          req.Rating,
		DifficultyLevel: req.DifficultyLevel,
		EstimatedTime:   sanitize.Text(req.EstimatedTime),
		Tags:            sanitize.Lines(req.Tags),
	}
	if res.Title == "" {
		return nil, fmt.Errorf("%w: title is empty", errorvalues.ErrValidation)
	}
	return &res, nil
}

func clampLimit(limit, def, upper int) int {
	switch {
	case limit <= 0:
		return def
	case limit > upper:
		return upper
	}
	return limit
}

func wrapResourceErr(err error) error {
	if errors.Is(err, errorvalues.ErrResourceNotFound) || errors.Is(err, errorvalues.ErrWrongOwner) ||
		errors.Is(err, errorvalues.ErrValidation) || errors.Is(err, errorvalues.ErrUserNotFound) {
		return err
	}
	return fmt.Errorf("resources repository error: %w", err)
}
