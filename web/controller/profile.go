package controller

import (
	"github.com/filmstash/filmstash/web/middleware"
	"github.com/filmstash/filmstash/web/service"

	"github.com/gin-gonic/gin"
)

// PasswordForm carries a password change request.
type PasswordForm struct {
	Password    string `form:"password"`
	NewPassword string `form:"newpassword"`
}

// ProfileController lets users change their own password.
type ProfileController struct {
	userService service.UserService
}

func NewProfileController(g *gin.RouterGroup) *ProfileController {
	a := &ProfileController{}
	a.initRouter(g)
	return a
}

func (a *ProfileController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/profile")
	g.Use(middleware.LoginRequired())

	g.GET("/", a.profilePage)
	g.POST("/", a.changePassword)
}

func (a *ProfileController) profilePage(c *gin.Context) {
	html(c, "profile.html", "Profile", nil)
}

func (a *ProfileController) changePassword(c *gin.Context) {
	var form PasswordForm
	if err := c.ShouldBind(&form); err != nil || form.NewPassword == "" {
		redirectWithNotice(c, "/profile", "Invalid form data.")
		return
	}

	user := middleware.CurrentUser(c)
	err := a.userService.ChangePassword(user.Id, form.Password, form.NewPassword)
	if err == service.ErrInvalidCredentials {
		redirectWithNotice(c, "/profile", "Wrong current password.")
		return
	} else if err != nil {
		redirectWithNotice(c, "/profile", "Could not change password.")
		return
	}

	redirectWithNotice(c, "/profile", "Password changed!")
}
