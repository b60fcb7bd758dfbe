package middleware

import (
	"net/http"

	"cms-api/logger"
	"cms-api/models"

	"github.com/gin-gonic/gin"
)

// Recovery catches panics that escaped the service layer.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.FromContext(c.Request.Context()).Error("panic recovered",
					"path", c.Request.URL.Path,
					"error", err,
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"code":         http.StatusInternalServerError,
					"code_type":    models.TitleSystemError,
					"code_message": "An unexpected error occurred",
					"data":         gin.H{},
				})
			}
		}()

		c.Next()
	}
}
