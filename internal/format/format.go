// Package format renders amounts and tip rates for display in the user's
// locale. Formatting is presentation only; it never changes stored values.
package format

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/mmynk/tipsplitter/internal/models"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en-US"

// Formatter renders values for one locale and currency.
type Formatter struct {
	tag     language.Tag
	unit    currency.Unit
	printer *message.Printer
}

// New returns a Formatter for the BCP 47 locale. An empty currencyCode
// selects the locale's own currency, falling back to USD when the locale
// has no region.
func New(locale, currencyCode string) (*Formatter, error) {
	if strings.TrimSpace(locale) == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}

	unit := currency.USD
	if code := strings.TrimSpace(currencyCode); code != "" {
		unit, err = currency.ParseISO(code)
		if err != nil {
			return nil, fmt.Errorf("parse currency %q: %w", code, err)
		}
	} else if u, conf := currency.FromTag(tag); conf != language.No {
		unit = u
	}

	return &Formatter{
		tag:     tag,
		unit:    unit,
		printer: message.NewPrinter(tag),
	}, nil
}

// Locale returns the formatter's language tag.
func (f *Formatter) Locale() language.Tag {
	return f.tag
}

// Currency returns the ISO 4217 unit amounts are shown in.
func (f *Formatter) Currency() currency.Unit {
	return f.unit
}

// CurrencyAmount renders v with the currency symbol, digit grouping and
// the currency's standard number of fraction digits.
func (f *Formatter) CurrencyAmount(v float64) string {
	return f.printer.Sprint(currency.NarrowSymbol(f.unit.Amount(v)))
}

// Percent renders a tip rate, e.g. "20%".
func (f *Formatter) Percent(r models.TipRate) string {
	return f.printer.Sprint(number.Percent(float64(r) / 100))
}

// People renders a party size selector label, e.g. "4 people".
func (f *Formatter) People(p models.PartySize) string {
	return f.printer.Sprintf("%d people", int(p))
}
