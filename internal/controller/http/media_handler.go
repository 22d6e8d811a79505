package http

import (
	"errors"
	"io"
	"net/http"
	"os"

	"skillsphere/pkg/logger"
	"skillsphere/pkg/mirror"
	"skillsphere/pkg/storage"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	store  storage.ObjectStore
	mirror *mirror.Writer
	logger *logger.Logger
}

func NewMediaHandler(store storage.ObjectStore, mirrorWriter *mirror.Writer, log *logger.Logger) *MediaHandler {
	return &MediaHandler{
		store:  store,
		mirror: mirrorWriter,
		logger: log,
	}
}

// GetMedia godoc
// @Summary      Fetch a media blob
// @Description  Stream a stored blob by id. Falls back to the local mirror when the object store read fails.
// @Tags         media
// @Produce      octet-stream
// @Param        id path string true "Media ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  map[string]string
// @Router       /api/media/{id} [get]
func (h *MediaHandler) GetMedia(c *gin.Context) {
	id := c.Param("id")

	rc, contentType, err := h.store.Get(c.Request.Context(), id)
	if err == nil {
		defer rc.Close()
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		c.Header("Content-Type", contentType)
		c.Status(http.StatusOK)
		if _, err := io.Copy(c.Writer, rc); err != nil {
			h.logger.Error("Failed to stream media %s: %v", id, err)
		}
		return
	}

	if !errors.Is(err, storage.ErrNotFound) {
		h.logger.Warn("Object store read failed for media %s, trying mirror: %v", id, err)
	}

	// Mirror fallback: the local copy may still hold the blob
	if h.mirror != nil {
		if _, statErr := os.Stat(h.mirror.Path(id)); statErr == nil {
			c.File(h.mirror.Path(id))
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
}
