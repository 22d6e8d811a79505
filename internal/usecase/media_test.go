package usecase

import (
	"testing"

	"skillsphere/internal/apperr"
	"skillsphere/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestValidateVideo(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		size        int64
		wantErr     bool
	}{
		{"mp4 within limit", "video/mp4", MaxVideoSize, false},
		{"quicktime within limit", "video/quicktime", 1024, false},
		{"mp4 over limit", "video/mp4", MaxVideoSize + 1, true},
		{"avi rejected", "video/x-msvideo", 1024, true},
		{"webm rejected", "video/webm", 1024, true},
		{"image rejected", "image/png", 1024, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateVideo(&entity.MediaUpload{ContentType: tt.contentType, Size: tt.size})
			if tt.wantErr {
				assert.ErrorIs(t, err, apperr.ErrInvalidRequest)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateImage(t *testing.T) {
	assert.NoError(t, validateImage(&entity.MediaUpload{ContentType: "image/png"}))
	assert.NoError(t, validateImage(&entity.MediaUpload{ContentType: "image/webp"}))
	assert.ErrorIs(t, validateImage(&entity.MediaUpload{ContentType: "application/pdf"}), apperr.ErrInvalidRequest)
	assert.ErrorIs(t, validateImage(&entity.MediaUpload{ContentType: "video/mp4"}), apperr.ErrInvalidRequest)
}

func TestVideoContentType(t *testing.T) {
	assert.Equal(t, "video/mp4", videoContentType("video/mp4"))
	assert.Equal(t, "video/quicktime", videoContentType("video/quicktime"))
	assert.Equal(t, "video/mp4", videoContentType("mp4"))
}
