package entity

import "time"

type LearningPlan struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Topics      []string   `json:"topics"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	UserID      string     `json:"user_id"`
	CreatedAt   time.Time  `json:"created_at"`
}
