// admin.go - privacy-conscious visitor tracking and the admin dashboard
package main

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Zachkp/portfolio/internal/store"
)

const (
	adminCookie      = "admin_token"
	visitorRetention = 12 // months
	chartDays        = 30
)

func generateAdminToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("generate admin token: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// hashIP hashes a client address with the site salt. The same address always
// maps to the same 16 hex characters.
func hashIP(ip, salt string) string {
	sum := sha256.Sum256([]byte(ip + salt))
	return hex.EncodeToString(sum[:])[:16]
}

// senderID identifies the client for rate limiting and visitor stats.
func (s *server) senderID(c *gin.Context) string {
	return hashIP(c.ClientIP(), s.cfg.HashSalt)
}

func (s *server) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

var untrackedPrefixes = []string{"/static/", "/hero/", "/admin/", "/favicon", "/privacy", "/lang/"}

// visitorTrackingMiddleware records page views with hashed addresses only
// and honours Do Not Track.
func (s *server) visitorTrackingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}
		for _, p := range untrackedPrefixes {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}

		visit := store.Visit{
			HashedIP:  s.senderID(c),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      path,
			Timestamp: s.now(),
		}
		go s.trackVisit(visit)
		c.Next()
	}
}

func (s *server) trackVisit(v store.Visit) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.store.RecordVisit(ctx, v); err != nil {
		s.logger.Error("record visitor", "err", err)
	}
}

func (s *server) cleanupOldVisitorData(ctx context.Context) {
	cutoff := s.now().AddDate(0, -visitorRetention, 0)
	if _, err := s.store.CleanupVisits(ctx, cutoff); err != nil {
		s.logger.Error("cleanup old visitor data", "err", err)
	}
}

// cleanupLoop runs the retention cleanup at start and then daily.
func (s *server) cleanupLoop(ctx context.Context) {
	s.cleanupOldVisitorData(ctx)
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.cleanupOldVisitorData(ctx)
		}
	}
}

func (s *server) adminStats(ctx context.Context) (*store.Stats, error) {
	return s.store.Stats(ctx, s.now(), s.cfg.Contact.MaxPerWindow, s.cfg.Contact.Window)
}

// visitorsChart renders visits per day for the last days as a standalone
// echarts page.
func (s *server) visitorsChart(ctx context.Context, days int) ([]byte, error) {
	counts, err := s.store.VisitsPerDay(ctx, s.now(), max(days, 1))
	if err != nil {
		return nil, err
	}
	x := make([]string, 0, len(counts))
	y := make([]opts.BarData, 0, len(counts))
	for _, d := range counts {
		x = append(x, d.Day.Format("Jan 2"))
		y = append(y, opts.BarData{Value: d.Visits})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Visitors", Width: "100%", Height: "360px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Visitors per day",
			Subtitle: counts[0].Day.Format(time.DateOnly) + " to " + counts[len(counts)-1].Day.Format(time.DateOnly),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(x).AddSeries("visits", y,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: s.palette.Primary.WithAlpha(1).String()}),
	)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *server) setupAdminRoutes(r *gin.Engine) {
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title":           "Privacy Policy",
			"retentionMonths": visitorRetention,
		})
	})

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.Admin.Username)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.Admin.Password)) == 1
		if userOK && passOK {
			c.SetCookie(adminCookie, s.adminToken, 3600*24, "/admin", "", false, true)
			s.logger.Info("admin login", "from", s.senderID(c))
			c.Redirect(http.StatusFound, "/admin/dashboard")
			return
		}
		s.logger.Warn("failed admin login", "from", s.senderID(c))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid credentials",
		})
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		s.logger.Info("admin logout", "from", s.senderID(c))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin")
	admin.Use(s.adminAuthMiddleware())

	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.adminStats(c.Request.Context())
		if err != nil {
			s.logger.Error("load admin stats", "err", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		msgs, err := s.store.Messages(c.Request.Context(), 10)
		if err != nil {
			s.logger.Error("load messages", "err", err)
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats":     stats,
			"messages":  msgs,
			"chartDays": chartDays,
		})
	})

	admin.GET("/chart/visitors", func(c *gin.Context) {
		page, err := s.visitorsChart(c.Request.Context(), chartDays)
		if err != nil {
			s.logger.Error("render visitors chart", "err", err)
			c.String(http.StatusInternalServerError, "chart unavailable")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.adminStats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/messages", func(c *gin.Context) {
		msgs, err := s.store.Messages(c.Request.Context(), 200)
		if err != nil {
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load messages",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-messages.html", gin.H{
			"messages": msgs,
		})
	})

	admin.GET("/visitors", func(c *gin.Context) {
		visitors, err := s.store.RecentVisits(c.Request.Context(), 200)
		if err != nil {
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load visitors",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
			"visitors": visitors,
		})
	})

	admin.DELETE("/messages/:id", func(c *gin.Context) {
		id := c.Param("id")
		err := s.store.DeleteMessage(c.Request.Context(), id)
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		case err != nil:
			s.logger.Error("delete message", "id", id, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
			return
		}
		s.logger.Info("message deleted by admin", "id", id, "from", s.senderID(c))
		c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
	})

	admin.POST("/privacy/delete-visitor-data", func(c *gin.Context) {
		go s.cleanupOldVisitorData(context.Background())
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup initiated"})
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.adminStats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		s.logger.Info("admin stats exported", "from", s.senderID(c))
		c.JSON(http.StatusOK, stats)
	})
}
