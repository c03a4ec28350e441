package handlers

import (
	"tund/internal/middleware"
	"tund/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Render helper to inject common variables like 'current user'
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	// Inject Current User
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		obj["CurrentUser"] = user
		if count, ok := c.Get(middleware.SharedCountKey); ok {
			obj["SharedCount"] = int(count.(int64))
		} else {
			obj["SharedCount"] = 0
		}
	}

	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// Error helper
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Message": message})
}

// currentUser returns the logged-in user loaded by the middleware, or nil.
func currentUser(c *gin.Context) *models.User {
	user, exists := c.Get(middleware.CheckUserKey)
	if !exists {
		return nil
	}
	return user.(*models.User)
}

// setFlash stores a one-shot message shown after a redirect.
func setFlash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	session.Save()
}

// takeFlash pops the pending flash message, if any.
func takeFlash(c *gin.Context) string {
	session := sessions.Default(c)
	flashes := session.Flashes()
	if len(flashes) == 0 {
		return ""
	}
	session.Save()
	if msg, ok := flashes[0].(string); ok {
		return msg
	}
	return ""
}
