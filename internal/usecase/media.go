package usecase

import (
	"fmt"
	"strings"

	"skillsphere/internal/apperr"
	"skillsphere/internal/entity"
)

const MaxVideoSize = 15 << 20 // 15 MiB

var allowedVideoTypes = []string{"video/mp4", "video/quicktime"}

// validateVideo enforces the video upload policy: allow-listed MIME type and
// the size ceiling. Duration is not checked server-side; the client enforces
// its own clip length limit.
func validateVideo(file *entity.MediaUpload) error {
	allowed := false
	for _, t := range allowedVideoTypes {
		if file.ContentType == t {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("%w: invalid video format %q, allowed formats: %s",
			apperr.ErrInvalidRequest, file.ContentType, strings.Join(allowedVideoTypes, ", "))
	}

	if file.Size > MaxVideoSize {
		return fmt.Errorf("%w: video size must not exceed %d MiB", apperr.ErrInvalidRequest, MaxVideoSize>>20)
	}
	return nil
}

// validateImage accepts any image/* MIME type with no size ceiling.
func validateImage(file *entity.MediaUpload) error {
	if !strings.HasPrefix(file.ContentType, "image/") {
		return fmt.Errorf("%w: only image files are supported, got %q", apperr.ErrInvalidRequest, file.ContentType)
	}
	return nil
}

// validateImageBatch checks every file up front so a single bad file rejects
// the whole request before any store write happens.
func validateImageBatch(files []*entity.MediaUpload) error {
	for _, f := range files {
		if err := validateImage(f); err != nil {
			return err
		}
	}
	return nil
}

// videoContentType records a video upload as video/{subtype} from its
// declared MIME type.
func videoContentType(declared string) string {
	if idx := strings.Index(declared, "/"); idx >= 0 {
		return "video/" + declared[idx+1:]
	}
	return "video/" + declared
}
