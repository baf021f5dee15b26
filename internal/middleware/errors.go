package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/forgecast/internal/domain/dto"
	"github.com/guttosm/forgecast/internal/logger"
)

// ErrorHandler renders the last error attached with c.Error as a JSON 500,
// unless a handler already wrote a response.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}
	last := c.Errors.Last()
	logger.L().Error().Err(last.Err).Str("path", c.Request.URL.Path).Msg("request error")

	if c.Writer.Written() {
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", last.Err))
}

// AbortWithError logs err and aborts with a standardized error body.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	logger.L().Warn().Err(err).Int("status", status).Str("path", c.Request.URL.Path).Msg(message)
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
