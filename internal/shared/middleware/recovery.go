package middleware

import (
	"fmt"

	"blogicum-backend/internal/shared/response"
	"blogicum-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panicking handler into a 500 response instead of a
// dropped connection.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if v := recover(); v != nil {
				logger.Error("panic recovered", fmt.Errorf("%v", v))
				response.InternalServerError(c, "internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
