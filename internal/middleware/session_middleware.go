package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrek/campusconnect/internal/app/models"
	"github.com/emrek/campusconnect/internal/pkg/session"
)

// Context keys populated by the session middleware.
const (
	ContextKeyRole      = "userRole"
	ContextKeyStudentID = "studentID"
)

// SessionMiddleware gates routes on the session role.
type SessionMiddleware struct {
	sessions *session.Manager
}

// NewSessionMiddleware creates a new SessionMiddleware
func NewSessionMiddleware(sessions *session.Manager) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// RoleRequired redirects to the entry page when the session role does not
// match, without performing the operation. The authorization failure is
// deliberately silent: the browser just lands back on the login page.
func (m *SessionMiddleware) RoleRequired(required models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := m.sessions.Get(c, session.KeyUserRole)
		if !ok || role != string(required) {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Set(ContextKeyRole, role)

		if required == models.RoleStudent {
			studentID, ok := m.sessions.Get(c, session.KeyStudentID)
			if !ok || studentID == "" {
				c.Redirect(http.StatusFound, "/")
				c.Abort()
				return
			}
			c.Set(ContextKeyStudentID, studentID)
		}

		c.Next()
	}
}

// StudentID returns the authenticated student's enrollment number from the
// request context.
func StudentID(c *gin.Context) string {
	return c.GetString(ContextKeyStudentID)
}
