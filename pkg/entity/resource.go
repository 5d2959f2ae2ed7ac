package entity

import (
	"time"

	"github.com/google/uuid"
)

type ResourceType string

const (
	ResourceBook      ResourceType = "book"
	ResourceAudiobook ResourceType = "audiobook"
	ResourcePodcast   ResourceType = "podcast"
	ResourceVideo     ResourceType = "video"
	ResourceArticle   ResourceType = "article"
	ResourceCourse    ResourceType = "course"
	ResourceTool      ResourceType = "tool"
	ResourceOther     ResourceType = "other"
)

type DifficultyLevel string

const (
	DifficultyBeginner     DifficultyLevel = "beginner"
	DifficultyIntermediate DifficultyLevel = "intermediate"
	DifficultyAdvanced     DifficultyLevel = "advanced"
)

type VoteType string

const (
	Upvote   VoteType = "upvote"
	Downvote VoteType = "downvote"
)

type Category struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Icon  string    `json:"icon,omitempty"`
	Color string    `json:"color,omitempty"`
}

type Resource struct {
	ID              uuid.UUID        `json:"id"`
	UserID          uuid.UUID        `json:"user_id"`
	Title           string           `json:"title"`
	Description     string           `json:"description,omitempty"`
	Author          string           `json:"author,omitempty"`
	Host            string           `json:"host,omitempty"`
	Type            ResourceType     `json:"resource_type"`
	CategoryID      *uuid.UUID       `json:"category_id,omitempty"`
	URL             string           `json:"url,omitempty"`
	AffiliateLink   string           `json:"affiliate_link,omitempty"`
	Rating          *int             `json:"rating,omitempty"`
	DifficultyLevel *DifficultyLevel `json:"difficulty_level,omitempty"`
	EstimatedTime   string           `json:"estimated_time,omitempty"`
	Tags            []string         `json:"tags"`
	IsApproved      bool             `json:"is_approved"`
	IsFeatured      bool             `json:"is_featured"`
	Upvotes         int              `json:"upvotes"`
	Downvotes       int              `json:"downvotes"`
	ViewCount       int              `json:"view_count"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	Category        *Category        `json:"category,omitempty"`
}

type ResourceFilters struct {
	Type            *ResourceType
	CategoryID      *uuid.UUID
	DifficultyLevel *DifficultyLevel
	RatingMin       *int
	FeaturedOnly    bool
	Search          string
	Tags            []string
	Limit           int
}

type VoteResult struct {
	ResourceID uuid.UUID `json:"resource_id"`
	Upvotes    int       `json:"upvotes"`
	Downvotes  int       `json:"downvotes"`
	UserVote   *VoteType `json:"user_vote"`
}

type ResourceStats struct {
	TotalResources  int                  `json:"total_resources"`
	TotalByType     map[ResourceType]int `json:"total_by_type"`
	TotalByCategory map[string]int       `json:"total_by_category"`
	MostPopular     []*Resource          `json:"most_popular"`
	RecentlyAdded   []*Resource          `json:"recently_added"`
}
