package main

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/i18n"
)

const langCookie = "lang"

type langOption struct {
	Code   i18n.Lang
	Name   string
	Active bool
}

type techCategoryView struct {
	ID    string
	Label string
	Color string
	Items []TechItem
}

type projectsView struct {
	T         *i18n.Text
	Cards     []projectCard
	Tags      []string
	ActiveTag string
}

type contactView struct {
	T             *i18n.Text
	Remaining     int
	RemainingText string
	Limited       bool
}

type pageData struct {
	T        *i18n.Text
	Lang     i18n.Lang
	Langs    []langOption
	Tech     []techCategoryView
	Projects projectsView
	Contact  contactView
	Email    Link
	Phone    Link
	Social   []Link
}

// language picks the request language and remembers an explicit ?lang=.
func (s *server) language(c *gin.Context) i18n.Lang {
	cookie, _ := c.Cookie(langCookie)
	lang := i18n.Negotiate(c.Query("lang"), cookie, c.GetHeader("Accept-Language"))
	if q, ok := i18n.Parse(c.Query("lang")); ok && q.String() != cookie {
		c.SetCookie(langCookie, q.String(), 365*24*3600, "/", "", false, false)
	}
	return lang
}

func (s *server) projectsView(t *i18n.Text, tag string) projectsView {
	filtered, active := FilterProjects(Projects, tag)
	return projectsView{
		T:         t,
		Cards:     projectCards(filtered, t),
		Tags:      ProjectTags(Projects),
		ActiveTag: active,
	}
}

func (s *server) contactView(c *gin.Context, t *i18n.Text) contactView {
	remaining, err := s.contact.Remaining(c.Request.Context(), s.senderID(c))
	if err != nil {
		s.logger.Error("load message allowance", "err", err)
		remaining = s.contact.Limit()
	}
	return contactView{
		T:             t,
		Remaining:     remaining,
		RemainingText: t.Contact.Form.RemainingMessages(remaining),
		Limited:       remaining == 0,
	}
}

func (s *server) handleIndex(c *gin.Context) {
	lang := s.language(c)
	t := i18n.For(lang)

	langs := make([]langOption, 0, len(i18n.Supported))
	for _, l := range i18n.Supported {
		langs = append(langs, langOption{Code: l, Name: l.Name(), Active: l == lang})
	}

	grouped := TechByCategory(TechStack)
	tech := make([]techCategoryView, 0, len(TechCategories))
	for _, cat := range TechCategories {
		tech = append(tech, techCategoryView{
			ID:    cat.ID,
			Label: t.Skills.Categories[cat.ID],
			Color: cat.Color,
			Items: grouped[cat.ID],
		})
	}

	c.HTML(http.StatusOK, "index.html", pageData{
		T:        t,
		Lang:     lang,
		Langs:    langs,
		Tech:     tech,
		Projects: s.projectsView(t, c.Query("tag")),
		Contact:  s.contactView(c, t),
		Email:    ContactEmail,
		Phone:    ContactPhone,
		Social:   SocialLinks,
	})
}

// handleLang stores the chosen language and sends the visitor back.
func (s *server) handleLang(c *gin.Context) {
	lang, ok := i18n.Parse(c.Param("code"))
	if !ok {
		lang = i18n.Default
	}
	c.SetCookie(langCookie, lang.String(), 365*24*3600, "/", "", false, false)
	c.Redirect(http.StatusFound, safeRedirect(c.GetHeader("Referer"), c.Request.Host))
}

// HTMX fragment for the tag filter.
func (s *server) handleProjects(c *gin.Context) {
	t := i18n.For(s.language(c))
	c.HTML(http.StatusOK, "projects.html", s.projectsView(t, c.Query("tag")))
}

// HTMX fragment with a fresh contact form.
func (s *server) handleContactForm(c *gin.Context) {
	t := i18n.For(s.language(c))
	c.HTML(http.StatusOK, "contact-form.html", s.contactView(c, t))
}

// safeRedirect keeps redirects on this host.
func safeRedirect(referer, host string) string {
	u, err := url.Parse(referer)
	if err != nil || referer == "" || (u.Host != "" && u.Host != host) {
		return "/"
	}
	path := u.EscapedPath()
	if path == "" || !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		path = "/"
	}
	if u.RawQuery != "" {
		q := u.Query()
		q.Del("lang")
		if enc := q.Encode(); enc != "" {
			path += "?" + enc
		}
	}
	return path
}
