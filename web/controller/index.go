// Package controller provides the HTTP request handlers for the filmstash
// web panel. Handlers stay thin: they bind forms, call services, and render
// templates or redirect with a notice.
package controller

import (
	"net/http"

	"github.com/filmstash/filmstash/logger"
	"github.com/filmstash/filmstash/web/service"
	"github.com/filmstash/filmstash/web/session"

	"github.com/gin-gonic/gin"
)

// Session lifetime when "remember me" is ticked, in seconds.
const rememberMeMaxAge = 30 * 24 * 60 * 60

// LoginForm represents the login request.
type LoginForm struct {
	Username   string `form:"username"`
	Password   string `form:"password"`
	RememberMe bool   `form:"remember_me"`
}

// SignupForm is shared by first-run setup and admin-invoked signup.
type SignupForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// IndexController handles login, logout, and first-run setup.
type IndexController struct {
	userService service.UserService
}

func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/login", a.loginPage)
	g.POST("/login", a.login)
	g.GET("/logout", a.logout)
	g.GET("/setup", a.setupPage)
	g.POST("/setup", a.setup)
}

func (a *IndexController) loginPage(c *gin.Context) {
	if session.IsLogin(c) {
		redirectWithNotice(c, "/index", "Already logged in.")
		return
	}
	html(c, "login.html", "Sign in", nil)
}

func (a *IndexController) login(c *gin.Context) {
	if session.IsLogin(c) {
		redirectWithNotice(c, "/index", "Already logged in.")
		return
	}

	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithNotice(c, "/login", "Invalid username or password")
		return
	}

	user := a.userService.CheckUser(form.Username, form.Password)
	if user == nil {
		logger.Warningf("failed login for %q from %s", form.Username, getRemoteIp(c))
		redirectWithNotice(c, "/login", "Invalid username or password")
		return
	}

	if form.RememberMe {
		if err := session.SetMaxAge(c, rememberMeMaxAge); err != nil {
			logger.Warning("unable to set session max age:", err)
		}
	}
	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("unable to save session:", err)
	}

	logger.Infof("%s logged in from %s", user.Username, getRemoteIp(c))
	next := c.Query("next")
	if next == "" || next[0] != '/' {
		next = "/index"
	}
	c.Redirect(http.StatusFound, next)
}

func (a *IndexController) logout(c *gin.Context) {
	if user := session.GetLoginUser(c); user != nil {
		logger.Infof("%s logged out", user.Username)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	c.Redirect(http.StatusFound, "/login")
}

func (a *IndexController) setupPage(c *gin.Context) {
	hasUsers, err := a.userService.HasUsers()
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if hasUsers {
		redirectWithNotice(c, "/index", "Setup already completed.")
		return
	}
	html(c, "setup.html", "First-run setup", nil)
}

func (a *IndexController) setup(c *gin.Context) {
	var form SignupForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusFound, "/setup")
		return
	}

	user, err := a.userService.Setup(form.Username, form.Password)
	if err == service.ErrSetupCompleted {
		redirectWithNotice(c, "/index", "Setup already completed.")
		return
	} else if err != nil {
		redirectWithNotice(c, "/setup", err.Error())
		return
	}

	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("unable to save session:", err)
	}
	redirectWithNotice(c, "/index", "Account created! You are now logged in!")
}
