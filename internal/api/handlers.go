package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elitecards/admin-console/internal/platform"
)

// respondError converts a gateway error into the console's JSON error
// shape. The user-facing message is always a plain string; no structured
// error codes leak out.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	var apiErr *platform.APIError
	switch {
	case errors.Is(err, platform.ErrAuthExpired):
		status = http.StatusUnauthorized
	case errors.Is(err, platform.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, platform.ErrNetwork):
		status = http.StatusBadGateway
	case errors.As(err, &apiErr):
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"error": platform.ToUserMessage(err)})
}
