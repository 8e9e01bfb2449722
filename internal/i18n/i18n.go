// Package i18n holds the two supported UI languages and their message
// catalog. Message keys are the English strings.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Lang is a supported UI language code as persisted.
type Lang string

const (
	English Lang = "en"
	Arabic  Lang = "ar"
)

// Langs lists the selectable languages in display order.
var Langs = []Lang{English, Arabic}

// Parse validates a persisted language code.
func Parse(s string) (Lang, error) {
	switch Lang(s) {
	case English, Arabic:
		return Lang(s), nil
	}
	return "", fmt.Errorf("unsupported language %q", s)
}

// Tag returns the BCP 47 tag for l.
func (l Lang) Tag() language.Tag {
	if l == Arabic {
		return language.Arabic
	}
	return language.English
}

// RTL reports whether l is written right to left.
func (l Lang) RTL() bool { return l == Arabic }

// SelfName returns the language's name written in that language.
func (l Lang) SelfName() string {
	return display.Self.Name(l.Tag())
}

// Other returns the language that is not l.
func (l Lang) Other() Lang {
	if l == Arabic {
		return English
	}
	return Arabic
}

// T formats the message key in language l.
func T(l Lang, key string, args ...any) string {
	return printers[l.normalize()].Sprintf(key, args...)
}

func (l Lang) normalize() Lang {
	if l == Arabic {
		return Arabic
	}
	return English
}

var printers = newPrinters()

func newPrinters() map[Lang]*message.Printer {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, ar := range arabic {
		if err := b.SetString(language.Arabic, key, ar); err != nil {
			panic("i18n: " + err.Error())
		}
	}

	return map[Lang]*message.Printer{
		English: message.NewPrinter(language.English, message.Catalog(b)),
		Arabic:  message.NewPrinter(language.Arabic, message.Catalog(b)),
	}
}
