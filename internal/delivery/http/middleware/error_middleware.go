package middleware

import (
	"errors"
	"net/http"

	"go-tailoresume-backend/internal/delivery/http/response"
	"go-tailoresume-backend/pkg/apperror"
	"go-tailoresume-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Code >= http.StatusInternalServerError && appErr.Err != nil {
					logger.Log.Error("Request failed",
						"path", c.FullPath(),
						"status", appErr.Code,
						"error", appErr.Err.Error())
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				// SECURITY: Never expose internal error details to clients.
				// Log the actual error server-side, send a generic message out.
				logger.Log.Error("Unhandled internal error",
					"path", c.FullPath(),
					"error", err.Error())
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
