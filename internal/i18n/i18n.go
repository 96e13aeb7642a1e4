// Package i18n holds every user-facing string in a message table keyed by
// id, one table per locale. Spanish is the default locale; English is the
// second one the product ships.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

var supported = []language.Tag{
	language.Spanish, // default
	language.English,
}

var matcher = language.NewMatcher(supported)

type Bundle struct {
	tag  language.Tag
	msgs map[string]string
}

// New resolves locale ("es", "en", "en-US", ...) against the supported
// locales and returns the bundle for the best match.
func New(locale string) *Bundle {
	tag, _ := language.MatchStrings(matcher, locale)
	base, _ := tag.Base()
	msgs := messagesES
	if base.String() == "en" {
		msgs = messagesEN
	}
	return &Bundle{tag: tag, msgs: msgs}
}

func (b *Bundle) Tag() language.Tag { return b.tag }

// T formats the message with the given id. Unknown ids fall back to the
// Spanish table, then to the id itself so a missing entry is visible rather
// than blank.
func (b *Bundle) T(id string, args ...any) string {
	s, ok := b.msgs[id]
	if !ok {
		if s, ok = messagesES[id]; !ok {
			return id
		}
	}
	if len(args) == 0 {
		return s
	}
	return fmt.Sprintf(s, args...)
}
