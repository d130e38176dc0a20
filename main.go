package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/herobg"
	"github.com/Zachkp/portfolio/internal/ratelimit"
	"github.com/Zachkp/portfolio/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("load config", "err", err)
	}
	logger := cfg.NewLogger(os.Stderr)
	log.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg.DatabasePath, logger)
	if err != nil {
		logger.Fatal("open database", "path", cfg.DatabasePath, "err", err)
	}
	defer st.Close()

	srv := newServer(cfg, logger, st)
	srv.logStartup()
	go srv.cleanupLoop(ctx)

	httpSrv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", "err", err)
		}
	}()

	logger.Info("listening", "addr", httpSrv.Addr)
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("serve", "err", err)
	}
}

// server holds everything the handlers share.
type server struct {
	cfg     *config.Config
	logger  *log.Logger
	store   *store.Store
	contact *contact.Service
	palette herobg.Palette

	adminToken string
	now        func() time.Time
}

func newServer(cfg *config.Config, logger *log.Logger, st *store.Store) *server {
	limiter := ratelimit.New(st, ratelimit.WithLimit(cfg.Contact.MaxPerWindow, cfg.Contact.Window))
	svc := contact.NewService(contact.NewSMTPRelay(cfg.SMTP), limiter,
		contact.WithArchive(st),
		contact.WithLogger(logger.WithPrefix("contact")),
	)
	return &server{
		cfg:        cfg,
		logger:     logger,
		store:      st,
		contact:    svc,
		palette:    herobg.ResolvePalette(cfg.Theme),
		adminToken: generateAdminToken(),
		now:        time.Now,
	}
}

func (s *server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.SetHTMLTemplate(mustParseTemplates())
	r.StaticFS("/static", staticFS())
	r.Use(s.visitorTrackingMiddleware())

	r.GET("/", s.handleIndex)
	r.GET("/lang/:code", s.handleLang)
	r.GET("/projects", s.handleProjects)
	r.GET("/contact-form", s.handleContactForm)
	r.POST("/contact", s.handleContact)

	hero := r.Group("/hero")
	hero.GET("/styles.css", s.handleHeroStyles)
	hero.GET("/background.png", s.handleHeroFrame)
	hero.GET("/stream", s.handleHeroStream)

	s.setupAdminRoutes(r)
	return r
}

func (s *server) logStartup() {
	s.logger.Info("admin access available", "path", "/admin/login")
	if s.cfg.Admin.Defaulted {
		s.logger.Warn("using default admin credentials; set ADMIN_USERNAME and ADMIN_PASSWORD")
	}
	if s.cfg.GeneratedHashSalt {
		s.logger.Warn("HASH_SALT not set; hashed addresses and rate limits reset on restart")
	}
	if !s.cfg.SMTP.Configured() {
		s.logger.Warn("SMTP not configured; contact form messages will fail")
	}
	s.logger.Info("privacy: visitor tracking enabled with hashed IP addresses")
}
