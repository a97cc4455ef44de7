// Package localization maps (culture, key) pairs to display strings and
// carries the request culture through a context.Context.
package localization

import (
	"context"
	"strings"

	"golang.org/x/text/language"
)

// DefaultCulture is used when a request carries no usable language
const DefaultCulture = "en"

// Movie category keys
const (
	DramaKey  = "DramaKey"
	HorrorKey = "HorrorKey"
	ComedyKey = "ComedyKey"
)

// ReportRows are the keys of the report row headers, in display order
var ReportRows = []string{"Header1", "Header2", "Header3"}

var resources = map[string]map[string]string{
	"en": {
		DramaKey:  "Drama",
		HorrorKey: "Horror",
		ComedyKey: "Comedy",
		"Header1": "Title",
		"Header2": "Summary",
		"Header3": "Total",
	},
	"ru": {
		DramaKey:  "Драма",
		HorrorKey: "Ужасы",
		ComedyKey: "Комедия",
		"Header1": "Заголовок",
		"Header2": "Сводка",
		"Header3": "Итого",
	},
	"it": {
		DramaKey:  "Dramma",
		HorrorKey: "Orrore",
		ComedyKey: "Commedia",
		"Header1": "Titolo",
		"Header2": "Riepilogo",
		"Header3": "Totale",
	},
}

// Translate returns the display string for key in culture, or "" when either is unknown.
func Translate(culture, key string) string {
	table, ok := resources[culture]
	if !ok {
		return ""
	}
	return table[key]
}

// TranslateAll translates keys in order
func TranslateAll(culture string, keys []string) []string {
	out := make([]string, len(keys))
	for i, key := range keys {
		out[i] = Translate(culture, key)
	}
	return out
}

// Cultures lists the cultures present in the table
func Cultures() []string {
	return []string{"en", "ru", "it"}
}

// ParseCulture extracts the base language of the highest priority tag in an
// Accept-Language header value. ok is false when the header is present but
// cannot be parsed.
func ParseCulture(header string) (culture string, ok bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return DefaultCulture, true
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}

	base, confidence := tags[0].Base()
	if confidence == language.No {
		return "", false
	}
	return base.String(), true
}

type cultureKey struct{}

// WithCulture returns a copy of ctx carrying culture
func WithCulture(ctx context.Context, culture string) context.Context {
	return context.WithValue(ctx, cultureKey{}, culture)
}

// CultureFrom returns the culture stored in ctx, or DefaultCulture
func CultureFrom(ctx context.Context) string {
	if ctx == nil {
		return DefaultCulture
	}
	if culture, ok := ctx.Value(cultureKey{}).(string); ok && culture != "" {
		return culture
	}
	return DefaultCulture
}
