package entity

import (
	"time"

	"github.com/google/uuid"
)

type Habit struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	IsPrivate   bool       `json:"is_private"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// HabitCheck marks a habit as done on CheckDate (YYYY-MM-DD).
type HabitCheck struct {
	ID        int64     `json:"-"`
	HabitID   uuid.UUID `json:"habit_id"`
	CheckDate string    `json:"check_date"`
	CreatedAt time.Time `json:"created_at"`
}

type HabitStats struct {
	HabitID       uuid.UUID `json:"habit_id"`
	TotalChecks   int       `json:"total_checks"`
	CurrentStreak int       `json:"current_streak"`
	LongestStreak int       `json:"longest_streak"`
	LastCheck     *string   `json:"last_check,omitempty"`
	CheckedToday  bool      `json:"checked_today"`
}
