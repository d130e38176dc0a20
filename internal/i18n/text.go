package i18n

import (
	"strconv"
	"strings"
)

// Text is the full set of strings for one language.
type Text struct {
	Lang     Lang
	Title    string
	Nav      Nav
	Hero     Hero
	About    About
	Skills   Skills
	Projects Projects
	Contact  Contact
	Footer   Footer
}

type Nav struct {
	Home, About, Skills, Projects, Contact string
}

type Hero struct {
	TitleStart string
	Highlight  string
	TitleEnd   string
	Subtitle   string
	ViewWork   string
	ContactMe  string
	ScrollDown string
}

type About struct {
	TitleStart     string
	TitleHighlight string
	TitleEnd       string
	Content        string
	BioTitle       string
	BioContent     string
}

type Skills struct {
	Title       string
	Description string
	Categories  map[string]string
}

type Projects struct {
	Title           string
	Description     string
	AllTechnologies string
	NoProjects      string
	SourceCode      string
	LiveProject     string
	MoreProjects    string
	Items           map[string]ProjectText
}

type ProjectText struct {
	Title       string
	Description string
}

type Contact struct {
	Title         string
	ReachMe       string
	Availability  string
	Description   string
	Email         string
	Phone         string
	Location      string
	LocationValue string
	Form          ContactForm
}

type ContactForm struct {
	Name                 string
	NamePlaceholder      string
	Email                string
	EmailPlaceholder     string
	Subject              string
	SubjectPlaceholder   string
	Message              string
	MessagePlaceholder   string
	Send                 string
	Sending              string
	Success              string
	Error                string
	Invalid              string
	RateLimit            string
	RateLimitExplanation string
	Remaining            string
}

type Footer struct {
	Rights   string
	Designed string
}

// RemainingMessages fills the remaining-messages template with n.
func (f ContactForm) RemainingMessages(n int) string {
	return strings.ReplaceAll(f.Remaining, "{count}", strconv.Itoa(n))
}

// Paragraphs splits copy on blank lines.
func Paragraphs(s string) []string {
	var out []string
	for _, p := range strings.Split(s, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

var dictionary = map[Lang]*Text{
	English: &en,
	Swedish: &sv,
}

// For returns the copy for l, falling back to English.
func For(l Lang) *Text {
	if t, ok := dictionary[l]; ok {
		return t
	}
	return dictionary[Default]
}
