package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/filmstash/filmstash/database"
	"github.com/filmstash/filmstash/web/middleware"
	"github.com/filmstash/filmstash/web/service"

	"github.com/gin-gonic/gin"
)

// ModifyForm carries the pending movie id and the title to query the
// ratings API with.
type ModifyForm struct {
	Id   int    `form:"id"`
	Name string `form:"name"`
}

// ModifyController drives the enrichment workflow: moderators pick a
// pending movie, supply a title, and the record is published with the
// fetched metadata.
type ModifyController struct {
	movieService      service.MovieService
	enrichmentService *service.EnrichmentService
}

func NewModifyController(g *gin.RouterGroup) *ModifyController {
	a := &ModifyController{
		enrichmentService: service.NewEnrichmentService(),
	}
	a.initRouter(g)
	return a
}

func (a *ModifyController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/modify")
	g.Use(middleware.LoginRequired(), middleware.AdminRequired())

	g.GET("/", a.modifyPage)
	g.POST("/", a.modify)
}

func (a *ModifyController) modifyPage(c *gin.Context) {
	items, err := a.movieService.ListPending()
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	html(c, "modify.html", "Add metadata", gin.H{"items": items})
}

func (a *ModifyController) modify(c *gin.Context) {
	var form ModifyForm
	if err := c.ShouldBind(&form); err != nil || form.Name == "" {
		c.Redirect(http.StatusFound, "/modify")
		return
	}

	movie, err := a.enrichmentService.Enrich(c.Request.Context(), form.Id, form.Name)
	if err != nil {
		switch {
		case database.IsNotFound(err):
			redirectWithNotice(c, "/modify", "Movie "+strconv.Itoa(form.Id)+" not found.")
		case errors.Is(err, service.ErrEnrichmentFailed):
			redirectWithNotice(c, "/modify", "Could not fetch metadata for "+form.Name+".")
		default:
			c.AbortWithStatus(http.StatusInternalServerError)
		}
		return
	}

	redirectWithNotice(c, "/modify", movie.Name+" added!")
}
