package entity

import "time"

// MediaURLPrefix is the retrieval URL convention: every stored blob is served
// at MediaURLPrefix + id. Image and video URLs recorded on a post are pure
// functions of its media ids and this prefix.
const MediaURLPrefix = "/api/media/"

type Post struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id"`
	Content    string            `json:"content"`
	MediaIDs   []string          `json:"media_ids"`
	MediaTypes map[string]string `json:"media_types"`
	ImageURLs  []string          `json:"image_urls"`
	VideoURL   string            `json:"video_url,omitempty"`
	Likes      int               `json:"likes"`
	Comments   []string          `json:"comments"`
	CreatedAt  time.Time         `json:"created_at"`
}

// MediaURL maps a media id to its retrieval URL.
func MediaURL(id string) string {
	return MediaURLPrefix + id
}

// PostResponse is the outward-facing projection of a post: the persisted
// fields plus the resolved owner and optional engagement counts.
type PostResponse struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id"`
	UserName   string            `json:"user_name"`
	UserAvatar string            `json:"user_avatar,omitempty"`
	Content    string            `json:"content"`
	MediaIDs   []string          `json:"media_ids"`
	MediaTypes map[string]string `json:"media_types"`
	ImageURLs  []string          `json:"image_urls"`
	VideoURL   string            `json:"video_url,omitempty"`
	Likes      int               `json:"likes"`
	Comments   []string          `json:"comments"`
	CreatedAt  time.Time         `json:"created_at"`

	CommentCount  *int64 `json:"comment_count,omitempty"`
	ReactionCount *int64 `json:"reaction_count,omitempty"`
}

// MediaUpload carries one uploaded file from the transport layer into the
// post aggregate. Size mirrors the multipart header and is validated before
// the bytes ever reach a store.
type MediaUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}
