// Package translate formats diagnostic text for the host locale.
package translate

//go:generate go tool gotext -srclang=en-US update -out=catalog.go -lang=en-US github.com/shinrabansyo/assembler/...

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("shinasm: locale: %v", err)
	}

	Use(locales...)
}

// Use selects the printer for the first locale name that parses as a
// BCP 47 tag. If none does, en-US is used.
func Use(locales ...string) {
	tag := language.AmericanEnglish
	for _, name := range locales {
		parsed, err := language.Parse(name)
		if err == nil {
			tag = parsed
			break
		}
	}

	printer = message.NewPrinter(tag)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
