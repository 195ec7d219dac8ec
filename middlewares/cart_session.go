package middlewares

import (
	"net/http"

	"storefront/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const CartCookie = "cart_session"

const cartCookieMaxAge = 60 * 60 * 24 * 30

// CartSession resolves the shopper's cart token from the cookie and issues a
// new one when it is missing or malformed.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CartCookie)
		if err != nil || uuid.Validate(token) != nil {
			token = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CartCookie, token, cartCookieMaxAge, "/", "", false, true)
		}
		utils.SetCartToken(c, token)
		c.Next()
	}
}
