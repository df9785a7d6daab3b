package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminCookie holds the admin session token.
const AdminCookie = "admin_token"

// TokenValidator checks admin session tokens.
type TokenValidator interface {
	ValidToken(token string) bool
}

// AdminAuth redirects to the login page unless the request carries a valid
// admin session cookie.
func AdminAuth(v TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AdminCookie)
		if err != nil || !v.ValidToken(token) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
