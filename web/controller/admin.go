package controller

import (
	"net/http"
	"strconv"

	"github.com/filmstash/filmstash/database"
	"github.com/filmstash/filmstash/database/model"
	"github.com/filmstash/filmstash/logger"
	"github.com/filmstash/filmstash/web/middleware"
	"github.com/filmstash/filmstash/web/service"
	"github.com/filmstash/filmstash/web/session"

	"github.com/gin-gonic/gin"
)

// AdminController hosts the moderation area: the user listing, the
// delete/promote/demote actions, and admin-invoked signup.
type AdminController struct {
	userService service.UserService
}

func NewAdminController(g *gin.RouterGroup) *AdminController {
	a := &AdminController{}
	a.initRouter(g)
	return a
}

func (a *AdminController) initRouter(g *gin.RouterGroup) {
	admin := g.Group("/admin")
	admin.Use(middleware.LoginRequired(), middleware.AdminRequired())
	{
		admin.GET("/", a.adminPage)
		admin.GET("/logs", a.logsPage)
		admin.GET("/:what/:who", a.action)
	}

	signup := g.Group("/signup")
	signup.Use(middleware.LoginRequired(), middleware.AdminRequired())
	{
		signup.GET("", a.signupPage)
		signup.POST("", a.signup)
	}
}

func (a *AdminController) adminPage(c *gin.Context) {
	users, err := a.userService.ListUsers()
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	html(c, "admin.html", "Administration", gin.H{"users": users})
}

func (a *AdminController) logsPage(c *gin.Context) {
	count, err := strconv.Atoi(c.Query("count"))
	if err != nil || count <= 0 {
		count = 100
	}
	html(c, "logs.html", "Server logs", gin.H{"logs": logger.GetLogs(count, "DEBUG")})
}

// action dispatches delete/promote/demote on the target account. The
// primary admin seat is refused before dispatching, whatever the action.
func (a *AdminController) action(c *gin.Context) {
	who, err := strconv.Atoi(c.Param("who"))
	if err != nil {
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	username, err := a.userService.AdminAction(who, c.Param("what"))
	switch {
	case err == service.ErrPrimaryAdmin:
		redirectWithNotice(c, "/admin", "Deleting of admin account is not possible.")
	case err == service.ErrUnknownAction:
		c.Redirect(http.StatusFound, "/admin")
	case database.IsNotFound(err):
		redirectWithNotice(c, "/admin", "User not found.")
	case err != nil:
		c.AbortWithStatus(http.StatusInternalServerError)
	default:
		redirectWithNotice(c, "/admin", actionMessage(c.Param("what"), username))
	}
}

func actionMessage(action string, username string) string {
	switch action {
	case service.ActionDelete:
		return "User " + username + " deleted."
	case service.ActionPromote:
		return "User " + username + " promoted to moderator."
	case service.ActionDemote:
		return "User " + username + " demoted to normal user."
	}
	return ""
}

func (a *AdminController) signupPage(c *gin.Context) {
	html(c, "signup.html", "Create account", nil)
}

// signup creates an account with the normal role and logs the new user in,
// mirroring the original flow where an admin creates accounts at a shared
// terminal.
func (a *AdminController) signup(c *gin.Context) {
	var form SignupForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	user, err := a.userService.CreateUser(form.Username, form.Password, model.RoleNormal)
	if err != nil {
		redirectWithNotice(c, "/signup", err.Error())
		return
	}

	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("unable to save session:", err)
	}
	redirectWithNotice(c, "/index", "Account created!")
}
