package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/apperr"
	"github.com/rs/zerolog"
)

// writeError maps a failure to its response. Typed errors carry their own
// status and client-facing message; anything else is logged and reported as
// a generic 500 so no internal detail leaks.
func writeError(c *gin.Context, log zerolog.Logger, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus(), gin.H{"message": appErr.Message})
		return
	}

	log.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("Unhandled error")
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
}
