package entity

import (
	"time"

	"github.com/google/uuid"
)

// Reflection is a weekly review. WeekOf is the Monday of the week, YYYY-MM-DD.
type Reflection struct {
	ID                     uuid.UUID  `json:"id"`
	UserID                 uuid.UUID  `json:"user_id"`
	WeekOf                 string     `json:"week_of"`
	ValuesAlignment        *int       `json:"values_alignment,omitempty"`
	ValuesReflection       string     `json:"values_reflection,omitempty"`
	MissionProgress        *int       `json:"mission_progress,omitempty"`
	MissionReflection      string     `json:"mission_reflection,omitempty"`
	WeekProgressReflection string     `json:"week_progress_reflection,omitempty"`
	WeekChallenges         string     `json:"week_challenges,omitempty"`
	WeekWins               string     `json:"week_wins,omitempty"`
	VisionProgress         *int       `json:"vision_progress,omitempty"`
	VisionReflection       string     `json:"vision_reflection,omitempty"`
	GratitudeItems         []string   `json:"gratitude_items"`
	IsDraft                bool       `json:"is_draft"`
	SubmittedAt            *time.Time `json:"submitted_at,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

type ReflectionStats struct {
	TotalReflections       int         `json:"total_reflections"`
	AverageValuesAlignment float64     `json:"average_values_alignment"`
	AverageMissionProgress float64     `json:"average_mission_progress"`
	AverageVisionProgress  float64     `json:"average_vision_progress"`
	MostRecent             *Reflection `json:"most_recent_reflection,omitempty"`
}
