package controller

import (
	"net"
	"net/http"
	"strings"

	"github.com/filmstash/filmstash/config"
	"github.com/filmstash/filmstash/web/middleware"
	"github.com/filmstash/filmstash/web/session"

	"github.com/gin-gonic/gin"
)

// getRemoteIp extracts the real client address from proxy headers or the
// remote address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return ips[0]
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

// html renders a template with the shared page context: pending notices,
// the current user and moderator flag, and the panel version.
func html(c *gin.Context, name string, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	user := middleware.CurrentUser(c)
	data["title"] = title
	data["user"] = user
	data["isModerator"] = middleware.IsModerator(user)
	data["notices"] = session.TakeNotices(c)
	data["cur_ver"] = config.GetVersion()
	c.HTML(http.StatusOK, name, data)
}

// redirectWithNotice queues a one-shot notice and redirects.
func redirectWithNotice(c *gin.Context, target string, notice string) {
	session.AddNotice(c, notice)
	c.Redirect(http.StatusFound, target)
}
