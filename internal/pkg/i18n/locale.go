package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is one of the site languages. The zero value is not a valid locale.
type Locale string

const (
	English   Locale = "en"
	Mongolian Locale = "mn"
)

var supported = []Locale{English, Mongolian}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.MustParse("mn"),
})

func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

func (l Locale) String() string {
	return string(l)
}

func (l Locale) IsValid() bool {
	switch l {
	case English, Mongolian:
		return true
	default:
		return false
	}
}

func (l Locale) Tag() language.Tag {
	if l == Mongolian {
		return language.MustParse("mn")
	}
	return language.English
}

// Parse accepts BCP 47 tags and maps them onto a site locale by base language.
func Parse(s string) (Locale, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	switch base.String() {
	case "en":
		return English, true
	case "mn":
		return Mongolian, true
	default:
		return "", false
	}
}

// Resolve picks the locale from an explicit choice, then the Accept-Language
// header, then fallback.
func Resolve(explicit, acceptLanguage string, fallback Locale) Locale {
	if l, ok := Parse(explicit); ok {
		return l
	}
	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			_, idx, conf := matcher.Match(tags...)
			if conf != language.No && idx >= 0 && idx < len(supported) {
				return supported[idx]
			}
		}
	}
	if fallback.IsValid() {
		return fallback
	}
	return English
}
