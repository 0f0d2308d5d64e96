package common

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencyPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders an amount in cents as a US dollar string with
// two decimal places and thousands separators, e.g. 123456 -> "$1,234.56".
// The locale is fixed so output is stable across environments.
func FormatCurrency(cents int64) string {
	return currencyPrinter.Sprintf("$%.2f", float64(cents)/100)
}
