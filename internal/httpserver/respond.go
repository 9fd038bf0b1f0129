package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopease/internal/domain"
)

// respondError maps domain errors onto the JSON error envelope. Unexpected
// failures become a generic 500 with no internal detail leaked.
func (h *handlers) respondError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		body := gin.H{"message": verr.Message}
		if len(verr.Fields) > 0 {
			body["errors"] = verr.Fields
		}
		c.JSON(http.StatusBadRequest, body)
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	default:
		h.logger.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}
