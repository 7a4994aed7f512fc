package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"courseroom/api/internal/models"
	"courseroom/api/internal/repository"
)

const SessionKey = "session"

// Session resolves the opaque cookie identifier to the server-side session
// snapshot and injects it into the request context. Requests without a
// live session are sent back to the login page.
func Session(cookieName string, sessions *repository.SessionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cookieName)
		if err != nil || id == "" {
			redirectToLogin(c)
			return
		}

		session, err := sessions.GetByID(c.Request.Context(), id)
		if err != nil {
			redirectToLogin(c)
			return
		}

		if session.Expired(time.Now()) {
			_ = sessions.DeleteByID(c.Request.Context(), session.ID)
			redirectToLogin(c)
			return
		}

		c.Set(SessionKey, session)
		c.Next()
	}
}

// RequireRole gates a route group on the session's role attribute.
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]struct{}, len(roles))
	for _, role := range roles {
		roleSet[role] = struct{}{}
	}

	return func(c *gin.Context) {
		session, ok := CurrentSession(c)
		if !ok {
			redirectToLogin(c)
			return
		}

		if _, ok := roleSet[session.Role]; !ok {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Next()
	}
}

func CurrentSession(c *gin.Context) (models.Session, bool) {
	val, exists := c.Get(SessionKey)
	if !exists {
		return models.Session{}, false
	}
	session, ok := val.(models.Session)
	return session, ok
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/login")
	c.Abort()
}
