// Package i18n resolves message printers for the widget's supported locales.
package i18n

import (
	"strings"

	"github.com/louisbranch/citymap/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ResolveTag matches a requested locale (a BCP 47 tag or an Accept-Language
// style list) against the embedded catalogs, falling back to the base locale.
func ResolveTag(locale string) language.Tag {
	bundle := catalog.Default()
	supported := bundle.Tags()
	requested := strings.TrimSpace(locale)
	if requested == "" {
		return supported[0]
	}
	matcher := language.NewMatcher(supported)
	_, index, confidence := matcher.Match(parseRequested(requested)...)
	if confidence == language.No {
		return supported[0]
	}
	return supported[index]
}

// NewPrinter returns a printer bound to the resolved locale.
func NewPrinter(locale string) *message.Printer {
	return message.NewPrinter(ResolveTag(locale))
}

func parseRequested(requested string) []language.Tag {
	tags, _, err := language.ParseAcceptLanguage(requested)
	if err != nil || len(tags) == 0 {
		return []language.Tag{language.Make(requested)}
	}
	return tags
}
