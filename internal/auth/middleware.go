package auth

import (
	"net/http"

	"github.com/endoclin/admin/internal"
	"github.com/endoclin/admin/internal/session"
	"github.com/endoclin/admin/internal/storage"
	"github.com/gin-gonic/gin"
)

const sessionContextKey = "session"

// SessionMiddleware resolves the browser namespace and loads its session for the
// rest of the chain.
func SessionMiddleware(identity *session.Identity, store storage.SessionStore, logger internal.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ns, err := identity.Namespace(c.Writer, c.Request)
		if err != nil {
			logger.Errorf("[request_id=%s] failed to resolve session namespace: %v", c.GetString("request_id"), err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Session unavailable"})
			return
		}
		sess, err := session.Load(c.Request.Context(), store, ns)
		if err != nil {
			logger.Errorf("[request_id=%s] failed to load session: %v", c.GetString("request_id"), err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Session unavailable"})
			return
		}
		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// RequireAuth rejects requests whose session is not authenticated and passes the
// session token on to repositories.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if sess == nil || !sess.IsAuthenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Request = c.Request.WithContext(storage.ContextWithToken(c.Request.Context(), sess.Token()))
		c.Next()
	}
}

func CurrentSession(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}
