// Package middleware provides the access-control guards composed in front of
// route handlers.
package middleware

import (
	"net/http"

	"github.com/filmstash/filmstash/database"
	"github.com/filmstash/filmstash/database/model"
	"github.com/filmstash/filmstash/logger"
	"github.com/filmstash/filmstash/web/session"

	"github.com/gin-gonic/gin"
)

const userKey = "user"

// IsModerator reports whether the user may perform moderator actions.
// A nil user (anonymous session) is never a moderator; this must stay a
// total function over an optionally-present user.
func IsModerator(user *model.User) bool {
	return user != nil && user.Role > model.RoleNormal
}

// CanAdminister reports whether the user may enter the admin area.
func CanAdminister(user *model.User) bool {
	return user != nil && (user.Role == model.RoleModerator || user.Role == model.RoleAdmin)
}

// LoginRequired redirects anonymous requests to the login page. For
// authenticated requests the user record is re-read from the store, so role
// changes take effect without re-login, and attached to the context.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionUser := session.GetLoginUser(c)
		if sessionUser == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		user := &model.User{}
		err := database.GetDB().First(user, sessionUser.Id).Error
		if err != nil {
			if !database.IsNotFound(err) {
				logger.Warning("load session user:", err)
			}
			// account deleted since login
			_ = session.ClearSession(c)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// AdminRequired rejects users below moderator with a notice and sends them
// back to the listing instead of the protected page. Must run after
// LoginRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CanAdminister(CurrentUser(c)) {
			session.AddNotice(c, "Invalid permissions.")
			c.Redirect(http.StatusFound, "/index")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user attached by LoginRequired, or nil.
func CurrentUser(c *gin.Context) *model.User {
	if obj, ok := c.Get(userKey); ok {
		if user, ok := obj.(*model.User); ok {
			return user
		}
	}
	return nil
}
