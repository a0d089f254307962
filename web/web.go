// Package web provides the filmstash web server: HTTP/HTTPS serving,
// routing, session setup, embedded templates, and background job scheduling.
package web

import (
	"context"
	"crypto/tls"
	"embed"
	"html/template"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/filmstash/filmstash/config"
	"github.com/filmstash/filmstash/logger"
	"github.com/filmstash/filmstash/util/common"
	"github.com/filmstash/filmstash/web/controller"
	"github.com/filmstash/filmstash/web/job"
	"github.com/filmstash/filmstash/web/network"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

//go:embed html/*
var htmlFS embed.FS

// Server is the filmstash web server with its controllers and scheduled
// jobs.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	index   *controller.IndexController
	movies  *controller.MovieController
	modify  *controller.ModifyController
	profile *controller.ProfileController
	admin   *controller.AdminController

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

func (s *Server) getHtmlTemplate() (*template.Template, error) {
	return template.New("").ParseFS(htmlFS, "html/*.html")
}

// initRouter initializes Gin, registers middleware, templates and
// controllers and returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	secret := config.GetSessionSecret()
	if secret == "" {
		// Sessions won't survive a restart without a configured secret.
		secret = uuid.NewString()
		logger.Notice("FILMSTASH_SESSION_SECRET not set, using a random session secret")
	}
	store := cookie.NewStore([]byte(secret))
	engine.Use(sessions.Sessions("filmstash", store))

	// Video responses are empty bodies handed to the reverse proxy; no
	// point compressing them.
	engine.Use(gzip.Gzip(
		gzip.DefaultCompression,
		gzip.WithExcludedPaths([]string{"/videos/"}),
	))

	if config.IsDebug() {
		engine.LoadHTMLGlob("web/html/*.html")
	} else {
		tpl, err := s.getHtmlTemplate()
		if err != nil {
			return nil, err
		}
		engine.SetHTMLTemplate(tpl)
	}

	g := engine.Group("/")
	s.index = controller.NewIndexController(g)
	s.movies = controller.NewMovieController(g)
	s.modify = controller.NewModifyController(g)
	s.profile = controller.NewProfileController(g)
	s.admin = controller.NewAdminController(g)

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine, nil
}

// startTask schedules the background library scan and runs one scan right
// away so freshly added files show up without waiting for the first tick.
func (s *Server) startTask() {
	scanJob := job.NewScanMovieJob()
	go scanJob.Run()
	s.cron.AddJob("@every 5m", scanJob)
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.cron = cron.New()
	s.cron.Start()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(config.GetListen(), config.GetPort())
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}

	certFile := config.GetCertFile()
	keyFile := config.GetKeyFile()
	if certFile != "" || keyFile != "" {
		if cert, err := tls.LoadX509KeyPair(certFile, keyFile); err == nil {
			cfg := &tls.Config{Certificates: []tls.Certificate{cert}}
			listener = network.NewAutoHttpsListener(listener)
			listener = tls.NewListener(listener, cfg)
			logger.Info("Web server running HTTPS on", listener.Addr())
		} else {
			logger.Error("Error loading certificates:", err)
			logger.Info("Web server running HTTP on", listener.Addr())
		}
	} else {
		logger.Info("Web server running HTTP on", listener.Addr())
	}

	s.listener = listener
	s.httpServer = &http.Server{
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		_ = s.httpServer.Serve(listener)
	}()

	s.startTask()

	return nil
}

// Stop gracefully shuts down the web server and its cron jobs.
func (s *Server) Stop() error {
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}
	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}
