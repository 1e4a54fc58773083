// Package i18n resolves the request locale and its message printer.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Localizer provides translated strings.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

var (
	english = language.AmericanEnglish
	italian = language.MustParse("it-IT")

	supported = []language.Tag{english, italian}
	matcher   = language.NewMatcher(supported)
)

// Default returns the fallback locale.
func Default() language.Tag {
	return english
}

// Supported returns the locales with a message catalog.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Match returns the supported locale closest to an Accept-Language header.
func Match(acceptLanguage string) language.Tag {
	acceptLanguage = strings.TrimSpace(acceptLanguage)
	if acceptLanguage == "" {
		return english
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return english
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return english
	}
	return supported[idx]
}

// ResolveTag returns the request locale.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return english
	}
	return Match(r.Header.Get("Accept-Language"))
}

// Printer returns a message printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveLocalizer returns the printer and locale for the request.
func ResolveLocalizer(r *http.Request) (*message.Printer, language.Tag) {
	tag := ResolveTag(r)
	return Printer(tag), tag
}

// FormatDateTime renders t in loc using the locale's date-time layout.
// A zero time renders as "".
func FormatDateTime(tag language.Tag, t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(dateTimeLayout(tag))
}

func dateTimeLayout(tag language.Tag) string {
	if base, _ := tag.Base(); base.String() == "it" {
		return "2/1/2006, 15:04:05"
	}
	return "1/2/2006, 3:04:05 PM"
}
