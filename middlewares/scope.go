package middlewares

import (
	"storefront/hooks"

	"github.com/gin-gonic/gin"
)

// AdminScope marks the request as an admin request. XMLHttpRequest calls are
// treated as async.
func AdminScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		scope := hooks.RequestScope{
			Admin: true,
			Async: c.GetHeader("X-Requested-With") == "XMLHttpRequest",
		}
		c.Request = c.Request.WithContext(hooks.WithScope(c.Request.Context(), scope))
		c.Next()
	}
}
