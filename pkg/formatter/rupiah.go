// Package formatter renders plain integer amounts and ISO dates the way the
// recap UI presents them. Presentation only: nothing in here feeds back into
// stored records.
package formatter

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Indonesian)

// Rupiah formats an amount as Indonesian currency, e.g. 1500000 -> "Rp 1.500.000".
func Rupiah(amount int64) string {
	return printer.Sprintf("Rp %d", amount)
}

// GroupDigits formats an amount with id-ID thousands separators, no symbol.
func GroupDigits(amount int64) string {
	return printer.Sprintf("%d", amount)
}
