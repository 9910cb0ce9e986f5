package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dberestov/microblog/internal/auth"
	"github.com/dberestov/microblog/internal/common"
)

const claimsKey = "claims"

// Auth gates a route group behind the session token cookie. A request
// without the cookie is redirected to the login page before any
// verification work happens; a cookie that fails verification (bad
// signature, foreign issuer, expired) is redirected the same way.
// Verified claims are stored in the gin context for handlers.
func Auth(jwt *auth.Jwt) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(common.TokenCookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		claims, err := jwt.VerifyAndGet(token)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// Claims returns the verified claims stored by Auth.
func Claims(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
