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

const profileColumns = `id, user_id, username, first_name, last_name, bio, location, website,
	COALESCE(date_of_birth::text, ''), avatar_url, is_public, show_real_name, show_location,
	show_stats, theme_preference, allow_friend_requests, allow_challenges, show_in_leaderboards,
	onboarding_completed, created_at, updated_at`

// publicColumns selects the part of a profile needed to build a PublicUser.
func publicColumns(alias string) string {
	return fmt.Sprintf("%[1]s.user_id, %[1]s.username, %[1]s.first_name, %[1]s.last_name, %[1]s.show_real_name, %[1]s.avatar_url, %[1]s.is_public", alias)
}

func publicDest(p *entity.UserProfile) []any {
	return []any{&p.UserID, &p.Username, &p.FirstName, &p.LastName, &p.ShowRealName, &p.AvatarURL, &p.IsPublic}
}

func profileDest(p *entity.UserProfile) []any {
	return []any{
		&p.ID, &p.UserID, &p.Username, &p.FirstName, &p.LastName, &p.Bio, &p.Location, &p.Website,
		&p.DateOfBirth, &p.AvatarURL, &p.IsPublic, &p.ShowRealName, &p.ShowLocation,
		&p.ShowStats, &p.ThemePreference, &p.AllowFriendRequests, &p.AllowChallenges, &p.ShowInLeaderboards,
		&p.OnboardingCompleted, &p.CreatedAt, &p.UpdatedAt,
	}
}

func scanProfile(row rowScanner) (*entity.UserProfile, error) {
	var p entity.UserProfile
	if err := row.Scan(profileDest(&p)...); err != nil {
		return nil, err
	}
	return &p, nil
}

type ProfilesRepository struct {
	conn PgConnection
}

func NewProfilesRepoWithConn(conn PgConnection) *ProfilesRepository {
	mustPing(conn, "profilesRepo")
	return &ProfilesRepository{
		conn: conn,
	}
}

func (pr *ProfilesRepository) GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.UserProfile, error) {
	row := pr.conn.QueryRow(ctx, `SELECT `+profileColumns+` FROM user_profiles WHERE user_id = $1;`, uid)
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProfileNotFound
		}
		return nil, errors.New("getting profile by uid error: " + err.Error())
	}
	return p, nil
}

func (pr *ProfilesRepository) GetByUsername(ctx context.Context, username string) (*entity.UserProfile, error) {
	row := pr.conn.QueryRow(ctx, `SELECT `+profileColumns+` FROM user_profiles WHERE username = $1;`, username)
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProfileNotFound
		}
		return nil, errors.New("getting profile by username error: " + err.Error())
	}
	return p, nil
}

func (pr *ProfilesRepository) GetByUserIDs(ctx context.Context, uids []uuid.UUID) ([]*entity.UserProfile, error) {
	profiles := make([]*entity.UserProfile, 0, len(uids))
	if len(uids) == 0 {
		return profiles, nil
	}
	rows, err := pr.conn.Query(ctx, `SELECT `+profileColumns+` FROM user_profiles WHERE user_id = ANY($1);`, uids)
	if err != nil {
		return nil, errors.New("getting profiles by uids error: " + err.Error())
	}
	return collectProfiles(rows, profiles)
}

func (pr *ProfilesRepository) Update(ctx context.Context, uid uuid.UUID, upd *entity.ProfileUpdate) (*entity.UserProfile, error) {
	row := pr.conn.QueryRow(ctx, `UPDATE user_profiles SET
		username = COALESCE($2, username),
		first_name = COALESCE($3, first_name),
		last_name = COALESCE($4, last_name),
		bio = COALESCE($5, bio),
		location = COALESCE($6, location),
		website = COALESCE($7, website),
		date_of_birth = COALESCE($8::date, date_of_birth),
		avatar_url = COALESCE($9, avatar_url),
		is_public = COALESCE($10, is_public),
		show_real_name = COALESCE($11, show_real_name),
		show_location = COALESCE($12, show_location),
		show_stats = COALESCE($13, show_stats),
		theme_preference = COALESCE($14, theme_preference),
		allow_friend_requests = COALESCE($15, allow_friend_requests),
		allow_challenges = COALESCE($16, allow_challenges),
		show_in_leaderboards = COALESCE($17, show_in_leaderboards),
		updated_at = NOW()
		WHERE user_id = $1 RETURNING `+profileColumns+`;`,
		uid, upd.Username, upd.FirstName, upd.LastName, upd.Bio, upd.Location, upd.Website,
		upd.DateOfBirth, upd.AvatarURL, upd.IsPublic, upd.ShowRealName, upd.ShowLocation,
		upd.ShowStats, upd.ThemePreference, upd.AllowFriendRequests, upd.AllowChallenges, upd.ShowInLeaderboards,
	)
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProfileNotFound
		}
		switch pgErrCode(err) {
		case codeUniqueViolation:
			return nil, errorvalues.ErrUsernameTaken
		case codeCheckViolation:
			return nil, errorvalues.ErrValidation
		}
		return nil, errors.New("updating profile error: " + err.Error())
	}
	return p, nil
}

func (pr *ProfilesRepository) UsernameTaken(ctx context.Context, username string, exclude *uuid.UUID) (bool, error) {
	var taken bool
	row := pr.conn.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM user_profiles WHERE username = $1 AND ($2::uuid IS NULL OR user_id <> $2));`,
		username, exclude,
	)
	if err := row.Scan(&taken); err != nil {
		return false, errors.New("checking username error: " + err.Error())
	}
	return taken, nil
}

func (pr *ProfilesRepository) Search(ctx context.Context, query string, limit int) ([]*entity.UserProfile, error) {
	rows, err := pr.conn.Query(ctx, `SELECT `+profileColumns+` FROM user_profiles
		WHERE is_public AND (username ILIKE $1 OR first_name ILIKE $1 OR last_name ILIKE $1)
		ORDER BY username LIMIT $2;`, "%"+escapeLike(query)+"%", limit)
	if err != nil {
		return nil, errors.New("searching profiles error: " + err.Error())
	}
	return collectProfiles(rows, make([]*entity.UserProfile, 0))
}

func (pr *ProfilesRepository) CompleteOnboarding(ctx context.Context, uid uuid.UUID) error {
	ct, err := pr.conn.Exec(ctx, `UPDATE user_profiles SET onboarding_completed = TRUE, updated_at = NOW() WHERE user_id = $1;`, uid)
	if err != nil {
		return errors.New("completing onboarding error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrProfileNotFound
	}
	return nil
}

func collectProfiles(rows pgx.Rows, profiles []*entity.UserProfile) ([]*entity.UserProfile, error) {
	defer rows.Close()
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, errors.New("unmarshalling profile error: " + err.Error())
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning profiles: " + err.Error())
	}
	return profiles, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
