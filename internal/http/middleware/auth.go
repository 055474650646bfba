package middleware

import (
	"errors"
	"net/http"

	"modernband/internal/domain/models"
	"modernband/internal/session"

	"github.com/gin-gonic/gin"
)

const adminKey = "admin"

// RequireAdmin rejects requests without a valid admin session and clears stale cookies.
func RequireAdmin(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, err := store.Get(c.Request)
		if err != nil {
			if !errors.Is(err, session.ErrNoSession) {
				store.Clear(c.Writer)
			}
			msg := "Please log in to continue"
			if errors.Is(err, session.ErrExpired) {
				msg = "Your session has expired. Please log in again."
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      msg,
				"code":       "unauthorized",
				"request_id": GetRequestID(c),
				"message":    msg,
			})
			return
		}
		c.Set(adminKey, admin)
		c.Next()
	}
}

// CurrentAdmin returns the admin placed on the context by RequireAdmin.
func CurrentAdmin(c *gin.Context) (models.Admin, bool) {
	v, ok := c.Get(adminKey)
	if !ok {
		return models.Admin{}, false
	}
	admin, ok := v.(models.Admin)
	return admin, ok
}
