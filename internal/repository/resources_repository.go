package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/selfhq/internal/error_values"
	"github.com/limbo/selfhq/pkg/entity"
)

const (
	resourceColumns = `r.id, r.user_id, r.title, r.description, r.author, r.host, r.resource_type, r.category_id,
		r.url, r.affiliate_link, r.rating, r.difficulty_level, r.estimated_time, r.tags, r.is_approved,
		r.is_featured, r.upvotes, r.downvotes, r.view_count, r.created_at, r.updated_at,
		cat.id, cat.name, cat.icon, cat.color`
	resourceFrom = ` FROM resources r LEFT JOIN categories cat ON cat.id = r.category_id`
)

func scanResource(row rowScanner) (*entity.Resource, error) {
	var (
		r        entity.Resource
		catID    *uuid.UUID
		catName  *string
		catIcon  *string
		catColor *string
	)
	err := row.Scan(&r.ID, &r.UserID, &r.Title, &r.Description, &r.Author, &r.Host, &r.Type, &r.CategoryID,
		&r.URL, &r.AffiliateLink, &r.Rating, &r.DifficultyLevel, &r.EstimatedTime, &r.Tags, &r.IsApproved,
		&r.IsFeatured, &r.Upvotes, &r.Downvotes, &r.ViewCount, &r.CreatedAt, &r.UpdatedAt,
		&catID, &catName, &catIcon, &catColor,
	)
	if err != nil {
		return nil, err
	}
	if catID != nil {
		r.Category = &entity.Category{ID: *catID}
		if catName != nil {
			r.Category.Name = *catName
		}
		if catIcon != nil {
			r.Category.Icon = *catIcon
		}
		if catColor != nil {
			r.Category.Color = *catColor
		}
	}
	return &r, nil
}

type ResourcesRepository struct {
	conn PgConnection
}

func NewResourcesRepoWithConn(conn PgConnection) *ResourcesRepository {
	mustPing(conn, "resourcesRepo")
	return &ResourcesRepository{
		conn: conn,
	}
}

func (rr *ResourcesRepository) Create(ctx context.Context, res *entity.Resource) (*entity.Resource, error) {
	var id uuid.UUID
	row := rr.conn.QueryRow(ctx, `INSERT INTO resources (user_id, title, description, author, host, resource_type,
		category_id, url, affiliate_link, rating, difficulty_level, estimated_time, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id;`,
		res.UserID, res.Title, res.Description, res.Author, res.Host, res.Type,
		res.CategoryID, res.URL, res.AffiliateLink, res.Rating, res.DifficultyLevel, res.EstimatedTime, tagsOrEmpty(res.Tags),
	)
	if err := row.Scan(&id); err != nil {
		return nil, mapResourceWriteError("creating resource error: ", err)
	}
	return rr.GetByID(ctx, id)
}

func (rr *ResourcesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Resource, error) {
	row := rr.conn.QueryRow(ctx, `SELECT `+resourceColumns+resourceFrom+` WHERE r.id = $1;`, id)
	r, err := scanResource(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrResourceNotFound
		}
		return nil, errors.New("getting resource error: " + err.Error())
	}
	return r, nil
}

// List builds its WHERE clause from the non-empty filters. Only approved resources
// are listed.
func (rr *ResourcesRepository) List(ctx context.Context, filters *entity.ResourceFilters) ([]*entity.Resource, error) {
	conds := []string{"r.is_approved"}
	args := make([]any, 0)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filters.Type != nil {
		add("r.resource_type = $%d", *filters.Type)
	}
	if filters.CategoryID != nil {
		add("r.category_id = $%d", *filters.CategoryID)
	}
	if filters.DifficultyLevel != nil {
		add("r.difficulty_level = $%d", *filters.DifficultyLevel)
	}
	if filters.RatingMin != nil {
		add("r.rating >= $%d", *filters.RatingMin)
	}
	if filters.FeaturedOnly {
		conds = append(conds, "r.is_featured")
	}
	if filters.Search != "" {
		add("(r.title ILIKE $%[1]d OR r.description ILIKE $%[1]d OR r.author ILIKE $%[1]d)", "%"+escapeLike(filters.Search)+"%")
	}
	if len(filters.Tags) > 0 {
		patterns := make([]string, len(filters.Tags))
		for i, t := range filters.Tags {
			patterns[i] = "%" + escapeLike(t) + "%"
		}
		add("EXISTS (SELECT 1 FROM unnest(r.tags) t WHERE t ILIKE ANY($%d::text[]))", patterns)
	}
	query := `SELECT ` + resourceColumns + resourceFrom + ` WHERE ` + strings.Join(conds, " AND ") + ` ORDER BY r.created_at DESC`
	if filters.Limit > 0 {
		args = append(args, filters.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	return rr.list(ctx, query+";", args...)
}

func (rr *ResourcesRepository) ListFeatured(ctx context.Context, limit int) ([]*entity.Resource, error) {
	return rr.list(ctx, `SELECT `+resourceColumns+resourceFrom+` WHERE r.is_approved AND r.is_featured
		ORDER BY r.created_at DESC LIMIT $1;`, limit)
}

func (rr *ResourcesRepository) ListPopular(ctx context.Context, limit int) ([]*entity.Resource, error) {
	return rr.list(ctx, `SELECT `+resourceColumns+resourceFrom+` WHERE r.is_approved
		ORDER BY r.upvotes DESC, r.created_at DESC LIMIT $1;`, limit)
}

func (rr *ResourcesRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Resource, error) {
	return rr.list(ctx, `SELECT `+resourceColumns+resourceFrom+` WHERE r.user_id = $1 ORDER BY r.created_at DESC;`, uid)
}

func (rr *ResourcesRepository) list(ctx context.Context, query string, args ...any) ([]*entity.Resource, error) {
	rows, err := rr.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("listing resources error: " + err.Error())
	}
	defer rows.Close()
	resources := make([]*entity.Resource, 0)
	for rows.Next() {
		r, err := scanResource(rows)
		if err != nil {
			return nil, errors.New("unmarshalling resource error: " + err.Error())
		}
		resources = append(resources, r)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning resources: " + err.Error())
	}
	return resources, nil
}

func (rr *ResourcesRepository) Update(ctx context.Context, res *entity.Resource) (*entity.Resource, error) {
	ct, err := rr.conn.Exec(ctx, `UPDATE resources SET title = $3, description = $4, author = $5, host = $6,
		resource_type = $7, category_id = $8, url = $9, affiliate_link = $10, rating = $11,
		difficulty_level = $12, estimated_time = $13, tags = $14, updated_at = NOW()
		WHERE id = $1 AND user_id = $2;`,
		res.ID, res.UserID, res.Title, res.Description, res.Author, res.Host,
		res.Type, res.CategoryID, res.URL, res.AffiliateLink, res.Rating,
		res.DifficultyLevel, res.EstimatedTime, tagsOrEmpty(res.Tags),
	)
	if err != nil {
		return nil, mapResourceWriteError("updating resource error: ", err)
	}
	if ct.RowsAffected() == 0 {
		return nil, rr.explainMissedWrite(ctx, res.ID)
	}
	return rr.GetByID(ctx, res.ID)
}

func (rr *ResourcesRepository) Delete(ctx context.Context, id, uid uuid.UUID) error {
	ct, err := rr.conn.Exec(ctx, `DELETE FROM resources WHERE id = $1 AND user_id = $2;`, id, uid)
	if err != nil {
		return errors.New("deleting resource error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return rr.explainMissedWrite(ctx, id)
	}
	return nil
}

// explainMissedWrite tells apart a missing resource from someone else's.
func (rr *ResourcesRepository) explainMissedWrite(ctx context.Context, id uuid.UUID) error {
	var exists bool
	row := rr.conn.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM resources WHERE id = $1);`, id)
	if err := row.Scan(&exists); err != nil {
		return errors.New("checking resource existence error: " + err.Error())
	}
	if exists {
		return errorvalues.ErrWrongOwner
	}
	return errorvalues.ErrResourceNotFound
}

// Vote applies toggle semantics: repeating the current vote removes it, the opposite
// vote replaces it. Counters are recomputed from resource_votes in the same
// transaction while the resource row is locked.
func (rr *ResourcesRepository) Vote(ctx context.Context, resourceID, uid uuid.UUID, vote entity.VoteType) (result *entity.VoteResult, err error) {
	tx, err := rr.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("beginning tx error: " + err.Error())
	}
	defer rollback(ctx, tx, &err)

	var locked uuid.UUID
	if err = tx.QueryRow(ctx, `SELECT id FROM resources WHERE id = $1 FOR UPDATE;`, resourceID).Scan(&locked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrResourceNotFound
		}
		return nil, errors.New("locking resource error: " + err.Error())
	}
	var current entity.VoteType
	err = tx.QueryRow(ctx, `SELECT vote_type FROM resource_votes WHERE resource_id = $1 AND user_id = $2;`, resourceID, uid).Scan(&current)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, errors.New("getting current vote error: " + err.Error())
	}
	result = &entity.VoteResult{ResourceID: resourceID}
	switch {
	case current == vote:
		_, err = tx.Exec(ctx, `DELETE FROM resource_votes WHERE resource_id = $1 AND user_id = $2;`, resourceID, uid)
	case current != "":
		_, err = tx.Exec(ctx, `UPDATE resource_votes SET vote_type = $3 WHERE resource_id = $1 AND user_id = $2;`, resourceID, uid, vote)
		result.UserVote = &vote
	default:
		_, err = tx.Exec(ctx, `INSERT INTO resource_votes (resource_id, user_id, vote_type) VALUES ($1, $2, $3);`, resourceID, uid, vote)
		result.UserVote = &vote
	}
	if err != nil {
		if pgErrCode(err) == codeForeignKeyViolation {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("changing vote error: " + err.Error())
	}
	row := tx.QueryRow(ctx, `UPDATE resources SET
		upvotes = (SELECT COUNT(*) FROM resource_votes WHERE resource_id = $1 AND vote_type = 'upvote'),
		downvotes = (SELECT COUNT(*) FROM resource_votes WHERE resource_id = $1 AND vote_type = 'downvote')
		WHERE id = $1 RETURNING upvotes, downvotes;`, resourceID)
	if err = row.Scan(&result.Upvotes, &result.Downvotes); err != nil {
		return nil, errors.New("recounting votes error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing vote error: " + err.Error())
	}
	return result, nil
}

func (rr *ResourcesRepository) GetUserVote(ctx context.Context, resourceID, uid uuid.UUID) (*entity.VoteType, error) {
	var vote entity.VoteType
	err := rr.conn.QueryRow(ctx, `SELECT vote_type FROM resource_votes WHERE resource_id = $1 AND user_id = $2;`, resourceID, uid).Scan(&vote)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting user vote error: " + err.Error())
	}
	return &vote, nil
}

func (rr *ResourcesRepository) RecordView(ctx context.Context, resourceID uuid.UUID, uid *uuid.UUID) error {
	_, err := rr.conn.Exec(ctx, `WITH v AS (INSERT INTO resource_views (user_id, resource_id) VALUES ($1, $2))
		UPDATE resources SET view_count = view_count + 1 WHERE id = $2;`, uid, resourceID)
	if err != nil {
		if pgErrCode(err) == codeForeignKeyViolation {
			return errorvalues.ErrResourceNotFound
		}
		return errors.New("recording view error: " + err.Error())
	}
	return nil
}

func (rr *ResourcesRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	rows, err := rr.conn.Query(ctx, `SELECT id, name, icon, color FROM categories ORDER BY name;`)
	if err != nil {
		return nil, errors.New("listing categories error: " + err.Error())
	}
	defer rows.Close()
	categories := make([]*entity.Category, 0)
	for rows.Next() {
		var c entity.Category
		if err = rows.Scan(&c.ID, &c.Name, &c.Icon, &c.Color); err != nil {
			return nil, errors.New("unmarshalling category error: " + err.Error())
		}
		categories = append(categories, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning categories: " + err.Error())
	}
	return categories, nil
}

const (
	statsPopularLimit = 5
	statsRecentLimit  = 5
)

// Stats summarizes approved resources.
func (rr *ResourcesRepository) Stats(ctx context.Context) (*entity.ResourceStats, error) {
	stats := entity.ResourceStats{
		TotalByType:     make(map[entity.ResourceType]int),
		TotalByCategory: make(map[string]int),
	}
	rows, err := rr.conn.Query(ctx, `SELECT resource_type, COUNT(*) FROM resources WHERE is_approved GROUP BY resource_type;`)
	if err != nil {
		return nil, errors.New("counting resources by type error: " + err.Error())
	}
	for rows.Next() {
		var (
			t entity.ResourceType
			n int
		)
		if err = rows.Scan(&t, &n); err != nil {
			rows.Close()
			return nil, errors.New("unmarshalling type count error: " + err.Error())
		}
		stats.TotalByType[t] = n
		stats.TotalResources += n
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after counting by type: " + err.Error())
	}

	rows, err = rr.conn.Query(ctx, `SELECT COALESCE(cat.name, 'uncategorized'), COUNT(*)`+resourceFrom+`
		WHERE r.is_approved GROUP BY 1;`)
	if err != nil {
		return nil, errors.New("counting resources by category error: " + err.Error())
	}
	for rows.Next() {
		var (
			name string
			n    int
		)
		if err = rows.Scan(&name, &n); err != nil {
			rows.Close()
			return nil, errors.New("unmarshalling category count error: " + err.Error())
		}
		stats.TotalByCategory[name] = n
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after counting by category: " + err.Error())
	}

	if stats.MostPopular, err = rr.ListPopular(ctx, statsPopularLimit); err != nil {
		return nil, err
	}
	if stats.RecentlyAdded, err = rr.List(ctx, &entity.ResourceFilters{Limit: statsRecentLimit}); err != nil {
		return nil, err
	}
	return &stats, nil
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func mapResourceWriteError(prefix string, err error) error {
	switch pgErrCode(err) {
	case codeForeignKeyViolation:
		return fmt.Errorf("%w: unknown category", errorvalues.ErrValidation)
	case codeCheckViolation:
		return fmt.Errorf("%w: rating, type or difficulty out of range", errorvalues.ErrValidation)
	}
	return errors.New(prefix + err.Error())
}
