package handlers

import (
	"errors"
	"net/http"

	"pairbook/internal/service"

	"github.com/gin-gonic/gin"
)

// writeServiceError maps service errors to HTTP statuses: 404 for an
// absent id, 403 for a record owned by someone else, generic 500
// otherwise (no internals leaked).
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
