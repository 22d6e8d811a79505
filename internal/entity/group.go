package entity

import "time"

type Group struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	CreatedBy     string    `json:"created_by"`
	CoverMediaID  string    `json:"cover_media_id,omitempty"`
	CoverImageURL string    `json:"cover_image_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
