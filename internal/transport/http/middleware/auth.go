package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/JamesLawwd/BITSA/internal/core/auth"
	"github.com/JamesLawwd/BITSA/internal/domain"
	"github.com/JamesLawwd/BITSA/internal/repo"
	resp "github.com/JamesLawwd/BITSA/internal/transport/http/response"
)

const (
	// session cookie set by the auth endpoints
	TokenCookie = "token"

	ctxUserKey = "currentUser"
)

// Auth recovers the caller's identity from the session cookie or a bearer
// header and loads the live user record, so a deleted account loses access
// immediately and role changes apply without re-login. Any failure ends the
// request with 401.
func Auth(j *auth.JWTer, users *repo.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			resp.AbortFail(c, http.StatusUnauthorized, "Not authorized to access this route")
			return
		}

		claims, err := j.Parse(token)
		if err != nil {
			resp.AbortFail(c, http.StatusUnauthorized, "Not authorized to access this route")
			return
		}

		u, err := users.FindByID(c.Request.Context(), claims.UID)
		if err != nil {
			resp.AbortFail(c, http.StatusInternalServerError, "Server error")
			return
		}
		if u == nil {
			resp.AbortFail(c, http.StatusUnauthorized, "Not authorized to access this route")
			return
		}

		c.Set(ctxUserKey, u)
		c.Next()
	}
}

// RequireRole gates a route on an exact role match. Ownership checks stay in
// the services because the required identity there depends on the record.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			resp.AbortFail(c, http.StatusUnauthorized, "Not authorized to access this route")
			return
		}
		if u.Role != role {
			resp.AbortFail(c, http.StatusForbidden, "User role '"+u.Role+"' is not authorized to access this route")
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*domain.User)
	return u
}

func extractToken(c *gin.Context) string {
	if tok, err := c.Cookie(TokenCookie); err == nil && tok != "" && tok != "none" {
		return tok
	}
	ah := c.GetHeader("Authorization")
	if strings.HasPrefix(ah, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(ah, "Bearer "))
	}
	return ""
}
