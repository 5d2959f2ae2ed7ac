package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type ThemePreference string

const (
	ThemeLight  ThemePreference = "light"
	ThemeDark   ThemePreference = "dark"
	ThemeSystem ThemePreference = "system"
)

type UserProfile struct {
	ID                  uuid.UUID       `json:"id"`
	UserID              uuid.UUID       `json:"user_id"`
	Username            string          `json:"username"`
	FirstName           string          `json:"first_name,omitempty"`
	LastName            string          `json:"last_name,omitempty"`
	Bio                 string          `json:"bio,omitempty"`
	Location            string          `json:"location,omitempty"`
	Website             string          `json:"website,omitempty"`
	DateOfBirth         string          `json:"date_of_birth,omitempty"`
	AvatarURL           string          `json:"avatar_url,omitempty"`
	IsPublic            bool            `json:"is_public"`
	ShowRealName        bool            `json:"show_real_name"`
	ShowLocation        bool            `json:"show_location"`
	ShowStats           bool            `json:"show_stats"`
	ThemePreference     ThemePreference `json:"theme_preference"`
	AllowFriendRequests bool            `json:"allow_friend_requests"`
	AllowChallenges     bool            `json:"allow_challenges"`
	ShowInLeaderboards  bool            `json:"show_in_leaderboards"`
	OnboardingCompleted bool            `json:"onboarding_completed"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// ProfileUpdate carries a partial profile change. Nil fields are left untouched.
type ProfileUpdate struct {
	Username            *string
	FirstName           *string
	LastName            *string
	Bio                 *string
	Location            *string
	Website             *string
	DateOfBirth         *string
	AvatarURL           *string
	IsPublic            *bool
	ShowRealName        *bool
	ShowLocation        *bool
	ShowStats           *bool
	ThemePreference     *ThemePreference
	AllowFriendRequests *bool
	AllowChallenges     *bool
	ShowInLeaderboards  *bool
}

// PublicUser is the outward-facing summary of a profile used in friend lists,
// participant lists and search results.
type PublicUser struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	IsPublic    bool      `json:"is_public"`
}

// DisplayName returns the real name when the profile owner opted into showing it
// and has one, the username otherwise.
func DisplayName(p *UserProfile) string {
	if p.ShowRealName && p.FirstName != "" {
		return strings.TrimSpace(p.FirstName + " " + p.LastName)
	}
	return p.Username
}

func (p *UserProfile) Public() *PublicUser {
	return &PublicUser{
		ID:          p.UserID,
		Username:    p.Username,
		DisplayName: DisplayName(p),
		AvatarURL:   p.AvatarURL,
		IsPublic:    p.IsPublic,
	}
}
