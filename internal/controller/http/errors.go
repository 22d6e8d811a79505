package http

import (
	"errors"
	"net/http"

	"skillsphere/internal/apperr"

	"github.com/gin-gonic/gin"
)

// respondError maps the usecase error taxonomy onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
