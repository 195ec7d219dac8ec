package utils

import "github.com/gin-gonic/gin"

const (
	ctxUserID    = "userId"
	ctxRole      = "role"
	ctxCartToken = "cartToken"
)

func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get(ctxUserID)
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

func SetIdentity(c *gin.Context, userID uint, role string) {
	c.Set(ctxUserID, userID)
	c.Set(ctxRole, role)
}

// CartToken is the cart session token resolved by the cart session middleware.
func CartToken(c *gin.Context) string {
	return c.GetString(ctxCartToken)
}

func SetCartToken(c *gin.Context, token string) {
	c.Set(ctxCartToken, token)
}
