package middleware

import (
	"github.com/gin-gonic/gin"
)

// UserRecorder receives the identity to attribute store mutations to
type UserRecorder interface {
	SetCurrentUser(user string)
}

// AuditUser propagates the authenticated username to the entity stores so
// their audit trails attribute mutations to the caller. Unauthenticated
// requests leave the previous identity untouched; those paths never mutate.
func AuditUser(recorder UserRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := GetJWTUsername(c); user != "" {
			recorder.SetCurrentUser(user)
		}
		c.Next()
	}
}
