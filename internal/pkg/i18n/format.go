package i18n

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatAmount renders an amount with locale-aware grouping followed by the
// currency code, e.g. "300,000 MNT".
func FormatAmount(l Locale, amount decimal.Decimal, currency string) string {
	p := message.NewPrinter(l.Tag())
	f, _ := amount.Round(2).Float64()
	return p.Sprintf("%v %s", number.Decimal(f, number.MaxFractionDigits(2)), currency)
}
