package main

import (
	"bytes"
	"math"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/herobg"
)

const (
	defaultHeroWidth  = 1280
	defaultHeroHeight = 720
)

func (s *server) handleHeroStyles(c *gin.Context) {
	herobg.EnsureStyles()
	var b strings.Builder
	for _, st := range herobg.Styles() {
		b.WriteString("/* " + st.ID + " */\n")
		b.WriteString(st.CSS)
		b.WriteString("\n")
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(b.String()))
}

// heroSize reads ?w= and ?h= clamped to the configured maxima.
func (s *server) heroSize(c *gin.Context) (int, int) {
	return queryInt(c, "w", defaultHeroWidth, s.cfg.Hero.MaxWidth),
		queryInt(c, "h", defaultHeroHeight, s.cfg.Hero.MaxHeight)
}

func queryInt(c *gin.Context, key string, def, limit int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		v = def
	}
	return min(max(v, 1), limit)
}

// handleHeroFrame renders one frame at ?t= seconds as PNG. Static clients
// get the placeholder.
func (s *server) handleHeroFrame(c *gin.Context) {
	w, h := s.heroSize(c)
	t, err := strconv.ParseFloat(c.Query("t"), 64)
	if err != nil || math.IsNaN(t) || math.IsInf(t, 0) {
		t = 0
	}

	surface := herobg.NewCanvasSurface(w, h)
	defer surface.Close()

	tier := herobg.Classify(w, c.GetHeader("User-Agent"))
	if tier != herobg.TierStatic {
		tier = tier.ForWidth(w)
		vp := herobg.Viewport{Width: w, Height: h, Tier: tier}
		if _, err := herobg.RenderFrame(surface, vp, s.palette, herobg.ConfigFor(tier), t); err != nil {
			s.logger.Warn("hero frame failed, serving placeholder", "err", err)
			tier = herobg.TierStatic
		}
	}
	if tier == herobg.TierStatic {
		if err := herobg.DrawPlaceholder(surface, s.palette); err != nil {
			s.logger.Error("hero placeholder failed", "err", err)
		}
	}

	var buf bytes.Buffer
	if err := surface.EncodePNG(&buf); err != nil {
		s.logger.Error("encode hero frame", "err", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Header("X-Hero-Tier", tier.String())
	c.Header("Cache-Control", "public, max-age=3600")
	c.Header("Vary", "User-Agent")
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// handleHeroStream mounts a controller for the client and streams every
// frame it draws as a multipart/x-mixed-replace PNG sequence. The stream
// ends on disconnect, after the configured maximum, or after the
// placeholder replaced a failed animation.
func (s *server) handleHeroStream(c *gin.Context) {
	w, h := s.heroSize(c)
	surface := herobg.NewCanvasSurface(w, h)
	defer surface.Close()

	frames := make(chan []byte, 1)
	final := make(chan []byte, 1)
	encode := func() []byte {
		var buf bytes.Buffer
		if err := surface.EncodePNG(&buf); err != nil {
			s.logger.Warn("encode hero frame", "err", err)
			return nil
		}
		return buf.Bytes()
	}

	ctrl := herobg.NewController(surface, herobg.NewTickerScheduler(s.cfg.Hero.FPS),
		herobg.WithLogger(s.logger.WithPrefix("hero")),
		herobg.WithFrameHook(func(herobg.Surface, herobg.Stats) {
			png := encode()
			if png == nil {
				return
			}
			// Drop frames while the client is still reading the previous one.
			select {
			case frames <- png:
			default:
			}
		}),
		herobg.WithFallbackHook(func(herobg.Surface) {
			if png := encode(); png != nil {
				final <- png
			}
		}),
	)
	ctrl.Mount(herobg.Environment{
		Width:     w,
		Height:    h,
		UserAgent: c.GetHeader("User-Agent"),
		Theme:     s.cfg.Theme,
	})
	defer ctrl.Unmount()

	mw := multipart.NewWriter(c.Writer)
	c.Header("Content-Type", "multipart/x-mixed-replace; boundary="+mw.Boundary())
	c.Header("Cache-Control", "no-store")
	c.Header("X-Hero-Tier", ctrl.Viewport().Tier.String())
	c.Status(http.StatusOK)

	writePart := func(png []byte) error {
		part, err := mw.CreatePart(textproto.MIMEHeader{
			"Content-Type":   {"image/png"},
			"Content-Length": {strconv.Itoa(len(png))},
		})
		if err != nil {
			return err
		}
		if _, err := part.Write(png); err != nil {
			return err
		}
		c.Writer.Flush()
		return nil
	}

	closeStream := func() {
		if err := mw.Close(); err != nil {
			s.logger.Debug("hero stream closed", "err", err)
		}
	}
	writeLast := func(png []byte) {
		if png != nil {
			if err := writePart(png); err != nil {
				s.logger.Debug("hero stream closed", "err", err)
				return
			}
		}
		closeStream()
	}

	if ctrl.State() == herobg.StateStatic {
		select {
		case png := <-final:
			writeLast(png)
		default:
			writeLast(encode())
		}
		return
	}

	limit := time.NewTimer(s.cfg.Hero.MaxStream)
	defer limit.Stop()
	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-limit.C:
			closeStream()
			return
		case png := <-final:
			writeLast(png)
			return
		case png := <-frames:
			if err := writePart(png); err != nil {
				s.logger.Debug("hero stream closed", "err", err)
				return
			}
		}
	}
}
