package controller

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/filmstash/filmstash/config"
	"github.com/filmstash/filmstash/database"
	"github.com/filmstash/filmstash/web/middleware"
	"github.com/filmstash/filmstash/web/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/encoding/charmap"
)

// MovieController serves the catalog listing, tag search, and playback
// routes. Video bytes themselves are handed off to the fronting HTTP server
// via X-Accel-Redirect.
type MovieController struct {
	movieService service.MovieService
}

func NewMovieController(g *gin.RouterGroup) *MovieController {
	a := &MovieController{}
	a.initRouter(g)
	return a
}

func (a *MovieController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/")
	g.Use(middleware.LoginRequired())

	g.GET("/", a.index)
	g.GET("/index", a.index)
	g.GET("/genre/:tag", a.genre)
	g.GET("/movies/watch/:id", a.watch)
	g.GET("/videos/:movie", a.video)
	g.GET("/subtitles", a.subtitles)
}

// index lists published movies, sorted per the query parameters, along with
// the pending queue. way=1 means descending, anything else ascending.
func (a *MovieController) index(c *gin.Context) {
	direction := "asc"
	if c.Query("way") == "1" {
		direction = "desc"
	}

	movies, newMovies, err := a.movieService.ListMovies(c.Query("sort"), direction)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	html(c, "movies.html", "Movies", gin.H{
		"movies":    movies,
		"newMovies": newMovies,
	})
}

func (a *MovieController) genre(c *gin.Context) {
	tag := c.Param("tag")
	hits, err := a.movieService.SearchByTag(tag)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	html(c, "movies.html", "Movies", gin.H{
		"movies": hits,
		"search": tag,
	})
}

func (a *MovieController) watch(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	movie, err := a.movieService.GetMovie(id)
	if err != nil {
		if database.IsNotFound(err) {
			c.AbortWithStatus(http.StatusNotFound)
		} else {
			c.AbortWithStatus(http.StatusInternalServerError)
		}
		return
	}
	html(c, "watch.html", movie.Name, gin.H{"movie": movie})
}

// video resolves "<id>.<extension>" to the stored file and delegates the
// transfer to the reverse proxy with an X-Accel-Redirect header.
func (a *MovieController) video(c *gin.Context) {
	name := c.Param("movie")
	split := strings.SplitN(name, ".", 2)
	if len(split) != 2 {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	id, err := strconv.Atoi(split[0])
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	extension := split[1]

	movie, err := a.movieService.GetMovie(id)
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	// The stored reference may carry its original container extension;
	// strip it and append the one the player asked for.
	url := movie.Url
	url = strings.ReplaceAll(url, ".mp4", "")
	url = strings.ReplaceAll(url, ".avi", "")
	url = strings.ReplaceAll(url, ".mkv", "")
	url = strings.ReplaceAll(url, ".webm", "")
	redirectPath := "/raw_videos/" + url + "." + extension

	var mimetype string
	switch extension {
	case "webm":
		mimetype = "video/webm"
	case "mkv":
		mimetype = "video/h264"
	case "mp4":
		mimetype = "video/mp4"
	default:
		mimetype = "application/octet-stream"
	}

	c.Header("Content-Type", mimetype)
	c.Header("X-Accel-Redirect", redirectPath)
	c.Status(http.StatusOK)
}

// subtitles re-encodes an .srt file from ISO-8859-1 to UTF-8 so that
// scandinavian letters render correctly.
func (a *MovieController) subtitles(c *gin.Context) {
	name := c.Query("movie")
	if !strings.HasSuffix(name, ".srt") {
		redirectWithNotice(c, "/index", "Not a subtitle file.")
		return
	}

	folder := config.GetVideoFolderPath()
	path := filepath.Join(folder, filepath.Clean("/"+name))
	data, err := os.ReadFile(path)
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", decoded)
}
