package cli

import (
	"baseconv/internal/core/radix"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// message keys; the English text doubles as the key
const (
	msgInvalidInput = "Invalid input"
	msgBadBase      = "Base must be 2, 8, 10, or 16"
	msgDetail       = "%s: %v"
	msgUsage        = "Error: %v (see baseconv --help)"
)

var english = map[string]string{
	msgInvalidInput: "Invalid input",
	msgBadBase:      "Base must be 2, 8, 10, or 16",
	msgDetail:       "%s: %v",
	msgUsage:        "Error: %v (see baseconv --help)",
}

func newPrinter() *message.Printer {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range english {
		if err := b.SetString(language.English, key, msg); err != nil {
			panic(err)
		}
	}
	return message.NewPrinter(language.English, message.Catalog(b))
}

// failure maps a radix error to the user facing line; verbose keeps the detail
func (s *session) failure(err error) error {
	msg := s.p.Sprintf(msgInvalidInput)
	if kind, ok := radix.KindOf(err); ok && kind == radix.KindUnsupportedBase {
		msg = s.p.Sprintf(msgBadBase)
	}
	if s.verbose {
		msg = s.p.Sprintf(msgDetail, msg, err)
	}
	return &exitError{code: ExitConversion, msg: msg}
}

// baseTitle renders "hexadecimal" as "Hexadecimal"
func baseTitle(r radix.Radix) string {
	return cases.Title(language.English).String(r.Name())
}
