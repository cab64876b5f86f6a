package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Recovery turns panics into the generic JSON 500 response after gin has
// logged the stack trace. Unexpected errors are never swallowed silently,
// but the client only ever sees the generic message.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
	})
}
