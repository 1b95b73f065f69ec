// Package money formatea importes en francos ruandeses (RWF) para los
// widgets del dashboard, con separador de miles en inglés ("RWF 456,000").
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency código de moneda mostrado en todos los importes.
const Currency = "RWF"

var printer = message.NewPrinter(language.English)

// FormatRWF redondea a entero y devuelve "RWF 1,234,567".
func FormatRWF(amount decimal.Decimal) string {
	return Currency + " " + FormatInt(amount.Round(0).IntPart())
}

// FormatInt devuelve el entero con separador de miles ("1,245").
func FormatInt(n int64) string {
	return printer.Sprintf("%d", n)
}
