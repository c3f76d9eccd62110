package middleware

import (
	"net/http"
	"time"

	"profile-editor/internal/domain"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookieName holds the editor session ID
	SessionCookieName = "profile_session"
	// KeySessionID is the gin context key of the resolved session ID
	KeySessionID = "SessionID"
)

// Session resolves the caller's editor session from its cookie, starting a
// new one when the cookie is missing or the session has expired. The cookie
// is re-issued on every request so its lifetime tracks the idle timeout.
func Session(profileUC domain.ProfileUsecase, ttl time.Duration, secure bool) gin.HandlerFunc {
	maxAge := int(ttl.Seconds())
	if maxAge <= 0 {
		maxAge = 0 // browser session cookie
	}

	return func(c *gin.Context) {
		cookie, _ := c.Cookie(SessionCookieName)

		id, err := profileUC.EnsureSession(c.Request.Context(), cookie)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookieName, id, maxAge, "/", "", secure, true)
		c.Set(KeySessionID, id)
		c.Next()
	}
}
