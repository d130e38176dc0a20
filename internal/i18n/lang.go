// Package i18n holds the site copy in English and Swedish and picks the
// language for a request.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

type Lang string

const (
	English Lang = "en"
	Swedish Lang = "sv"

	Default = English
)

// Supported lists the site languages in switcher order.
var Supported = []Lang{English, Swedish}

var (
	tags    = []language.Tag{language.English, language.Swedish}
	matcher = language.NewMatcher(tags)
)

// Parse returns the supported language for code, accepting region variants
// such as "sv-SE".
func Parse(code string) (Lang, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", false
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	for _, l := range Supported {
		if base.String() == string(l) {
			return l, true
		}
	}
	return "", false
}

// Negotiate picks the language from, in order, an explicit query value, the
// stored cookie value and the Accept-Language header.
func Negotiate(query, cookie, acceptLanguage string) Lang {
	if l, ok := Parse(query); ok {
		return l
	}
	if l, ok := Parse(cookie); ok {
		return l
	}
	if acceptLanguage == "" {
		return Default
	}
	wanted, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(wanted) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(wanted...)
	if conf == language.No {
		return Default
	}
	return Supported[idx]
}

// Tag returns the BCP 47 tag, used for the html lang attribute.
func (l Lang) Tag() language.Tag {
	for i, s := range Supported {
		if s == l {
			return tags[i]
		}
	}
	return language.English
}

// Name returns the language's name in itself ("English", "svenska").
func (l Lang) Name() string {
	return display.Self.Name(l.Tag())
}

func (l Lang) String() string { return string(l) }
